package resolver

import (
	"strings"

	"github.com/oru-pavam-nair/BJPMission2025-sub001/models"
)

const reportTitleBase = "Kerala Map Report"

// BundleTitle builds the report heading from the non-empty context
// fields, deepest selection last.
func BundleTitle(ctx models.MapContext) string {
	parts := []string{reportTitleBase}
	for _, field := range []string{ctx.Zone, ctx.Org, ctx.AC, ctx.Mandal} {
		if strings.TrimSpace(field) != "" {
			parts = append(parts, strings.TrimSpace(field))
		}
	}
	return strings.Join(parts, " - ")
}

// BuildBundle packages whichever row sets are non-empty, with the title,
// into the payload the report renderer consumes. The three row sets are
// assumed to have been resolved for the same context; no cross-checking
// happens here.
func BuildBundle(ctx models.MapContext, voteShare []models.VoteShareRecord, targets []models.TargetRecord, contacts ContactRows) models.ReportBundle {
	bundle := models.ReportBundle{
		Context: ctx,
		Title:   BundleTitle(ctx),
	}
	if len(voteShare) > 0 {
		bundle.VoteShareData = voteShare
	}
	if len(targets) > 0 {
		bundle.TargetData = targets
	}
	if !contacts.Empty() {
		bundle.ContactData = contacts.Rows()
	}
	return bundle
}

// Bundle resolves all three categories for the context and builds the
// report payload in one step.
func (r *Resolver) Bundle(ctx models.MapContext) models.ReportBundle {
	return BuildBundle(ctx, r.VoteShare(ctx), r.Targets(ctx), r.Contacts(ctx))
}
