// Package resolver routes a map navigation context to the right loader
// and returns the rows for the active drill-down level. It holds no state
// of its own: every call re-reads the context, and any context that does
// not match a supported level/field combination resolves to empty rows,
// never an error.
package resolver

import (
	"github.com/oru-pavam-nair/BJPMission2025-sub001/loaders"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/models"
)

type Resolver struct {
	store *loaders.Store
}

func New(store *loaders.Store) *Resolver {
	return &Resolver{store: store}
}

// effectiveVoteShareLevel is the one place the historical aliasing quirk
// lives: when the map reports level "orgs" but an org district is already
// selected, the vote-share table behaves exactly as if the level were
// "acs". The dashboard has always shown AC rows in that state, so the
// behavior is preserved here deliberately; do not widen it to the other
// categories.
func effectiveVoteShareLevel(ctx models.MapContext) models.Level {
	if ctx.Level == models.LevelOrgs && ctx.Org != "" {
		return models.LevelACs
	}
	return ctx.Level
}

// VoteShare returns the vote-share rows for the context's level.
func (r *Resolver) VoteShare(ctx models.MapContext) []models.VoteShareRecord {
	switch effectiveVoteShareLevel(ctx) {
	case models.LevelZones:
		return loaders.ZoneVoteShare()
	case models.LevelOrgs:
		return r.orgVoteShare(ctx)
	case models.LevelACs:
		return r.acVoteShare(ctx)
	case models.LevelMandals:
		return r.mandalVoteShare(ctx)
	case models.LevelPanchayats, models.LevelWards:
		return r.localBodyVoteShare(ctx)
	}
	return nil
}

func (r *Resolver) orgVoteShare(ctx models.MapContext) []models.VoteShareRecord {
	if ctx.Zone == "" {
		return nil
	}
	return r.store.OrgVoteShare.Under(ctx.Zone)
}

func (r *Resolver) acVoteShare(ctx models.MapContext) []models.VoteShareRecord {
	if ctx.Zone == "" || ctx.Org == "" {
		return nil
	}
	return r.store.ACVoteShare.Under(ctx.Zone, ctx.Org)
}

func (r *Resolver) mandalVoteShare(ctx models.MapContext) []models.VoteShareRecord {
	if ctx.Zone == "" || ctx.Org == "" || ctx.AC == "" {
		return nil
	}
	return r.store.MandalVoteShare.Under(ctx.Zone, ctx.Org, ctx.AC)
}

func (r *Resolver) localBodyVoteShare(ctx models.MapContext) []models.VoteShareRecord {
	if ctx.Zone == "" || ctx.Org == "" || ctx.AC == "" || ctx.Mandal == "" {
		return nil
	}
	return r.store.LocalBodyVoteShare.Under(ctx.Zone, ctx.Org, ctx.AC, ctx.Mandal)
}

// Targets returns the target rows for the context's level. Local bodies
// carry no target sheet, so the deepest levels resolve to empty rows.
func (r *Resolver) Targets(ctx models.MapContext) []models.TargetRecord {
	switch ctx.Level {
	case models.LevelZones:
		return loaders.ZoneTargets()
	case models.LevelOrgs:
		if ctx.Zone == "" {
			return nil
		}
		return r.store.OrgTargets.Under(ctx.Zone)
	case models.LevelACs:
		if ctx.Zone == "" || ctx.Org == "" {
			return nil
		}
		return r.store.ACTargets.Under(ctx.Zone, ctx.Org)
	case models.LevelMandals:
		if ctx.Zone == "" || ctx.Org == "" || ctx.AC == "" {
			return nil
		}
		return r.store.MandalTargets.Under(ctx.Zone, ctx.Org, ctx.AC)
	}
	return nil
}

// ContactKind tags which row shape a contact resolution produced.
type ContactKind string

const (
	ContactKindNone      ContactKind = "none"
	ContactKindOrg       ContactKind = "org"
	ContactKindMandal    ContactKind = "mandal"
	ContactKindLocalBody ContactKind = "localbody"
)

// ContactRows is the discriminated result of a contact resolution: the
// directory shape differs per level, so exactly one of the row slices is
// populated, named by Kind.
type ContactRows struct {
	Kind          ContactKind
	OrgRows       []models.OrgContactRecord
	MandalRows    []models.MandalContactRecord
	LocalBodyRows []models.LocalBodyContactRecord
}

// Empty reports whether the resolution produced no rows.
func (c ContactRows) Empty() bool {
	return len(c.OrgRows) == 0 && len(c.MandalRows) == 0 && len(c.LocalBodyRows) == 0
}

// Rows returns the populated slice for JSON encoding. An empty result
// encodes as an empty list, not null.
func (c ContactRows) Rows() interface{} {
	switch c.Kind {
	case ContactKindOrg:
		if c.OrgRows == nil {
			return []models.OrgContactRecord{}
		}
		return c.OrgRows
	case ContactKindMandal:
		if c.MandalRows == nil {
			return []models.MandalContactRecord{}
		}
		return c.MandalRows
	case ContactKindLocalBody:
		if c.LocalBodyRows == nil {
			return []models.LocalBodyContactRecord{}
		}
		return c.LocalBodyRows
	}
	return []models.OrgContactRecord{}
}

// Contacts returns the leadership directory rows for the context's level.
// There is no AC-level directory; the "acs" level resolves to empty rows.
func (r *Resolver) Contacts(ctx models.MapContext) ContactRows {
	switch ctx.Level {
	case models.LevelZones:
		return ContactRows{Kind: ContactKindOrg, OrgRows: r.store.ZoneContacts.All()}
	case models.LevelOrgs:
		if ctx.Zone == "" {
			return ContactRows{Kind: ContactKindOrg}
		}
		return ContactRows{Kind: ContactKindOrg, OrgRows: r.store.OrgContacts.Under(ctx.Zone)}
	case models.LevelMandals:
		if ctx.Zone == "" || ctx.Org == "" || ctx.AC == "" {
			return ContactRows{Kind: ContactKindMandal}
		}
		return ContactRows{
			Kind:       ContactKindMandal,
			MandalRows: r.store.MandalContacts.Under(ctx.Zone, ctx.Org, ctx.AC),
		}
	case models.LevelPanchayats, models.LevelWards:
		if ctx.Zone == "" || ctx.Org == "" || ctx.AC == "" || ctx.Mandal == "" {
			return ContactRows{Kind: ContactKindLocalBody}
		}
		return ContactRows{
			Kind:          ContactKindLocalBody,
			LocalBodyRows: r.store.LocalBodyContacts.Under(ctx.Zone, ctx.Org, ctx.AC, ctx.Mandal),
		}
	}
	return ContactRows{Kind: ContactKindNone}
}
