package handlers

import (
	"log"
	"net/http"

	"github.com/oru-pavam-nair/BJPMission2025-sub001/config"
)

// GetReportBundle builds the payload the PDF/print renderer consumes for
// the posted navigation context: title plus whichever of the vote-share,
// target and contact row sets are non-empty at that level. Bundles are
// cached briefly since the renderer may request the same context several
// times while the user adjusts print options.
// Endpoint: POST /api/v1/report/bundle
func (h *Handlers) GetReportBundle(w http.ResponseWriter, r *http.Request) {
	ctx, ok := decodeContext(w, r)
	if !ok {
		return
	}

	cacheKey := config.GetCacheKey("report", ctx.Level, ctx.Zone, ctx.Org, ctx.AC, ctx.Mandal)
	if cached, found := config.ReportCache.Get(cacheKey); found {
		writeJSON(w, cached)
		return
	}

	bundle := h.resolver.Bundle(ctx)
	log.Printf("Report bundle built: %q", bundle.Title)

	config.ReportCache.SetDefault(cacheKey, bundle)
	writeJSON(w, bundle)
}
