package handlers

import (
	"log"
	"net/http"

	"github.com/oru-pavam-nair/BJPMission2025-sub001/config"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/models"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/resolver"
)

type targetResponse struct {
	Level  models.Level          `json:"level"`
	Rows   []models.TargetRecord `json:"rows"`
	Rollup models.TargetRecord   `json:"rollup"`
	Total  int                   `json:"total"`
}

// GetTargets returns the 2025 target table for the posted navigation
// context, with a grand-total rollup across the returned rows.
// Endpoint: POST /api/v1/targets
func (h *Handlers) GetTargets(w http.ResponseWriter, r *http.Request) {
	ctx, ok := decodeContext(w, r)
	if !ok {
		return
	}

	cacheKey := config.GetCacheKey("targets", ctx.Level, ctx.Zone, ctx.Org, ctx.AC, ctx.Mandal)
	if cached, found := config.ResultCache.Get(cacheKey); found {
		writeJSON(w, cached)
		return
	}

	rows := h.resolver.Targets(ctx)
	if rows == nil {
		rows = []models.TargetRecord{}
	}
	rollup := resolver.AggregateTargets(rows)
	rollup.Name = "Total"
	log.Printf("Target lookup level=%s zone=%q org=%q ac=%q rows=%d",
		ctx.Level, ctx.Zone, ctx.Org, ctx.AC, len(rows))

	response := targetResponse{
		Level:  ctx.Level,
		Rows:   rows,
		Rollup: rollup,
		Total:  len(rows),
	}
	config.ResultCache.SetDefault(cacheKey, response)
	writeJSON(w, response)
}
