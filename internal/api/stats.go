package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/logging"
)

var statTables = []string{
	"country", "city", "airport", "airplane_type", "airplane",
	"route", "crew", "flight", "order", "ticket",
}

var statQueries = map[string]string{
	"country":       `SELECT COUNT(*) FROM countries`,
	"city":          `SELECT COUNT(*) FROM cities`,
	"airport":       `SELECT COUNT(*) FROM airports`,
	"airplane_type": `SELECT COUNT(*) FROM airplane_types`,
	"airplane":      `SELECT COUNT(*) FROM airplanes`,
	"route":         `SELECT COUNT(*) FROM routes`,
	"crew":          `SELECT COUNT(*) FROM crew`,
	"flight":        `SELECT COUNT(*) FROM flights`,
	"order":         `SELECT COUNT(*) FROM orders`,
	"ticket":        `SELECT COUNT(*) FROM tickets`,
}

// AdminStats handles GET /api/flights/admin/stats (staff only)
//
// @Summary Row counts per resource
// @Tags Admin
// @Produce json
// @Success 200 {object} dtos.APIResponse
// @Router /api/flights/admin/stats [get]
func (h *Handlers) AdminStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		counts := make(map[string]int64, len(statQueries))
		for _, name := range statTables {
			var n int64
			if err := h.deps.RawDB.GetContext(r.Context(), &n, statQueries[name]); err != nil {
				logging.Error("Stats query failed", "resource", name, "error", err)
				RespondError(w, initTime, err, "Internal error", http.StatusInternalServerError)
				return
			}
			counts[name] = n
		}
		RespondSuccess(w, initTime, "Stats fetched", counts)
	}
}
