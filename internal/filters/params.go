// Package filters translates list-endpoint query parameters into typed
// filter structs the repositories can apply. Every filter key is a
// repeated-key integer list (?route=1&route=2); identifiers within one key
// are OR-combined, distinct keys are AND-combined.
package filters

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParamError reports the first query-parameter token that failed to parse.
// The whole request is rejected; no partial filtering happens.
type ParamError struct {
	Param string
	Token string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: invalid value %q, integer required", e.Param, e.Token)
}

// IDList collects every occurrence of key as an int64. A missing key yields
// an empty list, which repositories treat as "no restriction".
func IDList(q url.Values, key string) ([]int64, error) {
	raw := q[key]
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(raw))
	for _, token := range raw {
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, &ParamError{Param: key, Token: token}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type CityFilter struct {
	CountryIDs []int64
}

func ParseCityFilter(q url.Values) (CityFilter, error) {
	ids, err := IDList(q, "country")
	return CityFilter{CountryIDs: ids}, err
}

type AirportFilter struct {
	CityIDs []int64
}

func ParseAirportFilter(q url.Values) (AirportFilter, error) {
	ids, err := IDList(q, "city")
	return AirportFilter{CityIDs: ids}, err
}

type AirplaneFilter struct {
	TypeIDs []int64
}

func ParseAirplaneFilter(q url.Values) (AirplaneFilter, error) {
	ids, err := IDList(q, "airplane_types")
	return AirplaneFilter{TypeIDs: ids}, err
}

type RouteFilter struct {
	SourceIDs      []int64
	DestinationIDs []int64
}

func ParseRouteFilter(q url.Values) (RouteFilter, error) {
	var f RouteFilter
	var err error
	if f.SourceIDs, err = IDList(q, "source"); err != nil {
		return f, err
	}
	f.DestinationIDs, err = IDList(q, "destination")
	return f, err
}

type FlightFilter struct {
	RouteIDs    []int64
	AirplaneIDs []int64
}

func ParseFlightFilter(q url.Values) (FlightFilter, error) {
	var f FlightFilter
	var err error
	if f.RouteIDs, err = IDList(q, "route"); err != nil {
		return f, err
	}
	f.AirplaneIDs, err = IDList(q, "airplane")
	return f, err
}

type TicketFilter struct {
	FlightIDs []int64
	OrderIDs  []int64
}

func ParseTicketFilter(q url.Values) (TicketFilter, error) {
	var f TicketFilter
	var err error
	if f.FlightIDs, err = IDList(q, "flight"); err != nil {
		return f, err
	}
	f.OrderIDs, err = IDList(q, "order")
	return f, err
}
