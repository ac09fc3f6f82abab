package filters

import (
	"errors"
	"net/url"
	"testing"
)

func TestIDListRepeatedKeys(t *testing.T) {
	q := url.Values{}
	q.Add("country", "1")
	q.Add("country", "42")

	ids, err := IDList(q, "country")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 42 {
		t.Errorf("Expected [1 42], got %v", ids)
	}
}

func TestIDListMissingKey(t *testing.T) {
	ids, err := IDList(url.Values{}, "country")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ids != nil {
		t.Errorf("Expected nil ids for absent key, got %v", ids)
	}
}

func TestIDListRejectsNonInteger(t *testing.T) {
	q := url.Values{}
	q.Add("route", "1")
	q.Add("route", "abc")

	_, err := IDList(q, "route")
	if err == nil {
		t.Fatal("Expected error for non-integer token")
	}

	var perr *ParamError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *ParamError, got %T", err)
	}
	if perr.Param != "route" || perr.Token != "abc" {
		t.Errorf("Unexpected error detail: %+v", perr)
	}
}

func TestParseFlightFilter(t *testing.T) {
	q := url.Values{}
	q.Add("route", "3")
	q.Add("airplane", "7")
	q.Add("airplane", "8")

	f, err := ParseFlightFilter(q)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(f.RouteIDs) != 1 || f.RouteIDs[0] != 3 {
		t.Errorf("Unexpected route ids: %v", f.RouteIDs)
	}
	if len(f.AirplaneIDs) != 2 {
		t.Errorf("Unexpected airplane ids: %v", f.AirplaneIDs)
	}
}

func TestParseRouteFilterFailsWholeRequest(t *testing.T) {
	q := url.Values{}
	q.Add("source", "1")
	q.Add("destination", "oops")

	if _, err := ParseRouteFilter(q); err == nil {
		t.Fatal("Expected error when any token is malformed")
	}
}
