// Package handlers exposes the drill-down data resolution over the REST
// API the map dashboard consumes. Handlers validate the navigation
// context, route it through the resolver and answer JSON; per the data
// layer's contract, a context that resolves to nothing yields empty rows
// with a 200, never an error.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/oru-pavam-nair/BJPMission2025-sub001/loaders"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/models"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/resolver"
)

// Handlers carries the injected data dependencies for every endpoint.
type Handlers struct {
	store    *loaders.Store
	resolver *resolver.Resolver
}

func NewHandlers(store *loaders.Store) *Handlers {
	return &Handlers{
		store:    store,
		resolver: resolver.New(store),
	}
}

// decodeContext reads a MapContext request body. A missing or unknown
// level is a client error; everything else is left to the resolver.
func decodeContext(w http.ResponseWriter, r *http.Request) (models.MapContext, bool) {
	var ctx models.MapContext
	if err := json.NewDecoder(r.Body).Decode(&ctx); err != nil {
		log.Printf("Error decoding request: %v", err)
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return ctx, false
	}
	if ctx.Level == "" {
		http.Error(w, "Level is required", http.StatusBadRequest)
		return ctx, false
	}
	return ctx, true
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
