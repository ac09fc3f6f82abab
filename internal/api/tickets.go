package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
	"skyward/airport-api/internal/models/dtos"
)

// ListTickets handles GET /api/flights/tickets
//
// @Summary      List tickets with nested flight and order payloads
// @Tags         Tickets
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/flights/tickets [get]
func (h *Handlers) ListTickets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		f, err := filters.ParseTicketFilter(r.URL.Query())
		if err != nil {
			respondFilterError(w, initTime, err)
			return
		}

		tickets, err := h.deps.Repo.Tickets.List(r.Context(), f)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		resp := make([]dtos.TicketListItem, 0, len(tickets))
		for _, t := range tickets {
			resp = append(resp, dtos.NewTicketListItem(t))
		}
		RespondSuccess(w, initTime, "Tickets fetched", resp)
	}
}

func (h *Handlers) GetTicket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		ticket, err := h.deps.Repo.Tickets.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Ticket fetched", dtos.NewTicketDetail(*ticket))
	}
}

func (h *Handlers) CreateTicket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.TicketWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(false); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		_, err := h.deps.Repo.Flights.GetByID(r.Context(), *req.FlightID)
		if checkRef(w, initTime, "flight_id", err) {
			return
		}
		_, err = h.deps.Repo.Orders.GetByID(r.Context(), *req.OrderID)
		if checkRef(w, initTime, "order_id", err) {
			return
		}

		ticket := models.Ticket{
			Row:      *req.Row,
			Seat:     *req.Seat,
			FlightID: *req.FlightID,
			OrderID:  *req.OrderID,
		}
		if err := h.deps.Repo.Tickets.Create(r.Context(), &ticket); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Ticket created", dtos.NewTicketDetail(ticket), http.StatusCreated)
	}
}

func (h *Handlers) UpdateTicket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		partial := r.Method == http.MethodPatch
		var req dtos.TicketWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(partial); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		ticket, err := h.deps.Repo.Tickets.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		if req.FlightID != nil {
			_, err := h.deps.Repo.Flights.GetByID(r.Context(), *req.FlightID)
			if checkRef(w, initTime, "flight_id", err) {
				return
			}
			ticket.FlightID = *req.FlightID
		}
		if req.OrderID != nil {
			_, err := h.deps.Repo.Orders.GetByID(r.Context(), *req.OrderID)
			if checkRef(w, initTime, "order_id", err) {
				return
			}
			ticket.OrderID = *req.OrderID
		}
		if req.Row != nil {
			ticket.Row = *req.Row
		}
		if req.Seat != nil {
			ticket.Seat = *req.Seat
		}

		if err := h.deps.Repo.Tickets.Update(r.Context(), ticket); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Ticket updated", dtos.NewTicketDetail(*ticket))
	}
}

func (h *Handlers) DeleteTicket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.Tickets.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondNoContent(w)
	}
}
