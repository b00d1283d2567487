package handlers

import (
	"log"
	"net/http"

	"github.com/oru-pavam-nair/BJPMission2025-sub001/config"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/models"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/resolver"
)

type contactResponse struct {
	Level models.Level         `json:"level"`
	Kind  resolver.ContactKind `json:"kind"`
	Rows  interface{}          `json:"rows"`
}

// GetContacts returns the leadership directory for the posted navigation
// context. The row shape depends on the level, tagged by "kind".
// Endpoint: POST /api/v1/contacts
func (h *Handlers) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, ok := decodeContext(w, r)
	if !ok {
		return
	}

	cacheKey := config.GetCacheKey("contacts", ctx.Level, ctx.Zone, ctx.Org, ctx.AC, ctx.Mandal)
	if cached, found := config.ResultCache.Get(cacheKey); found {
		writeJSON(w, cached)
		return
	}

	contacts := h.resolver.Contacts(ctx)
	log.Printf("Contact lookup level=%s zone=%q org=%q ac=%q mandal=%q kind=%s",
		ctx.Level, ctx.Zone, ctx.Org, ctx.AC, ctx.Mandal, contacts.Kind)

	response := contactResponse{
		Level: ctx.Level,
		Kind:  contacts.Kind,
		Rows:  contacts.Rows(),
	}
	config.ResultCache.SetDefault(cacheKey, response)
	writeJSON(w, response)
}
