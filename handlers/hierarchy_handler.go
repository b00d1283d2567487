package handlers

import (
	"net/http"

	"github.com/oru-pavam-nair/BJPMission2025-sub001/models"
)

// Hierarchy listing endpoints: the dashboard's drill-down pickers walk
// the tree one tier at a time with these. Names are accepted in any of
// the known spelling variants; the loaders normalize before descending.

// GetZones lists the five zones.
// Endpoint: GET /api/v1/hierarchy/zones
func (h *Handlers) GetZones(w http.ResponseWriter, r *http.Request) {
	zones := h.store.ACData.Zones()
	if zones == nil {
		zones = []string{}
	}
	writeJSON(w, map[string]interface{}{"zones": zones})
}

// GetOrgs lists the org districts under a zone.
// Endpoint: GET /api/v1/hierarchy/orgs?zone=
func (h *Handlers) GetOrgs(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")
	if zone == "" {
		http.Error(w, "Zone is required", http.StatusBadRequest)
		return
	}

	orgs := h.store.ACData.OrgsUnder(zone)
	if orgs == nil {
		orgs = []string{}
	}
	writeJSON(w, map[string]interface{}{"orgs": orgs})
}

// GetACs lists the assembly constituencies under an org district.
// Endpoint: GET /api/v1/hierarchy/acs?zone=&org=
func (h *Handlers) GetACs(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")
	org := r.URL.Query().Get("org")
	if zone == "" || org == "" {
		http.Error(w, "Zone and org are required", http.StatusBadRequest)
		return
	}

	acs := h.store.ACData.ACsUnder(zone, org)
	if acs == nil {
		acs = []string{}
	}
	writeJSON(w, map[string]interface{}{"acs": acs})
}

// GetMandals lists the mandals under an AC.
// Endpoint: GET /api/v1/hierarchy/mandals?zone=&org=&ac=
func (h *Handlers) GetMandals(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")
	org := r.URL.Query().Get("org")
	ac := r.URL.Query().Get("ac")
	if zone == "" || org == "" || ac == "" {
		http.Error(w, "Zone, org and ac are required", http.StatusBadRequest)
		return
	}

	mandals := h.store.MandalData.MandalsUnder(zone, org, ac)
	if mandals == nil {
		mandals = []string{}
	}
	writeJSON(w, map[string]interface{}{"mandals": mandals})
}

// GetLocalBodies lists the local bodies under a mandal with their tier.
// Endpoint: GET /api/v1/hierarchy/localbodies?zone=&org=&ac=&mandal=
func (h *Handlers) GetLocalBodies(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")
	org := r.URL.Query().Get("org")
	ac := r.URL.Query().Get("ac")
	mandal := r.URL.Query().Get("mandal")
	if zone == "" || org == "" || ac == "" || mandal == "" {
		http.Error(w, "Zone, org, ac and mandal are required", http.StatusBadRequest)
		return
	}

	bodies := h.store.MandalData.LocalBodiesUnder(zone, org, ac, mandal)
	if bodies == nil {
		bodies = []models.LocalBody{}
	}
	writeJSON(w, map[string]interface{}{"localBodies": bodies})
}
