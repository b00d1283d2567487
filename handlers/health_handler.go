package handlers

import (
	"net/http"
)

type healthResponse struct {
	Status string          `json:"status"`
	Sheets map[string]bool `json:"sheets"`
}

// GetDetailedHealth reports per-sheet load status. A sheet that failed to
// load (or produced no rows) shows false; the service still answers, its
// affected queries just return empty tables.
// Endpoint: GET /api/v1/health/detailed
func (h *Handlers) GetDetailedHealth(w http.ResponseWriter, r *http.Request) {
	sheets := h.store.Status()

	status := "ok"
	for _, loaded := range sheets {
		if !loaded {
			status = "degraded"
			break
		}
	}

	writeJSON(w, healthResponse{
		Status: status,
		Sheets: sheets,
	})
}
