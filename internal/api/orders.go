package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/auth"
	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/models"
	"skyward/airport-api/internal/models/dtos"
)

func (h *Handlers) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		orders, err := h.deps.Repo.Orders.List(r.Context())
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		resp := make([]dtos.OrderListItem, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, dtos.NewOrderListItem(o))
		}
		RespondSuccess(w, initTime, "Orders fetched", resp)
	}
}

func (h *Handlers) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		order, err := h.deps.Repo.Orders.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Order fetched", dtos.NewOrderDetail(*order))
	}
}

// CreateOrder stamps the order with the authenticated user; the body
// carries no fields.
func (h *Handlers) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			RespondError(w, initTime, nil, constants.MsgUnauthenticated, http.StatusUnauthorized)
			return
		}

		order := models.Order{UserID: claims.UserID}
		if err := h.deps.Repo.Orders.Create(r.Context(), &order); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Order created", dtos.NewOrderDetail(order), http.StatusCreated)
	}
}

func (h *Handlers) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.Orders.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondNoContent(w)
	}
}
