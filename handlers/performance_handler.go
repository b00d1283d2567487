package handlers

import (
	"log"
	"net/http"

	"github.com/oru-pavam-nair/BJPMission2025-sub001/config"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/models"
)

type performanceResponse struct {
	Level models.Level             `json:"level"`
	Rows  []models.VoteShareRecord `json:"rows"`
	Total int                      `json:"total"`
}

// GetPerformance returns the vote-share table for the posted navigation
// context. Endpoint: POST /api/v1/performance
func (h *Handlers) GetPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, ok := decodeContext(w, r)
	if !ok {
		return
	}

	cacheKey := config.GetCacheKey("performance", ctx.Level, ctx.Zone, ctx.Org, ctx.AC, ctx.Mandal)
	if cached, found := config.ResultCache.Get(cacheKey); found {
		writeJSON(w, cached)
		return
	}

	rows := h.resolver.VoteShare(ctx)
	if rows == nil {
		rows = []models.VoteShareRecord{}
	}
	log.Printf("Performance lookup level=%s zone=%q org=%q ac=%q mandal=%q rows=%d",
		ctx.Level, ctx.Zone, ctx.Org, ctx.AC, ctx.Mandal, len(rows))

	response := performanceResponse{
		Level: ctx.Level,
		Rows:  rows,
		Total: len(rows),
	}
	config.ResultCache.SetDefault(cacheKey, response)
	writeJSON(w, response)
}
