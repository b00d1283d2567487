package resolver

import "github.com/oru-pavam-nair/BJPMission2025-sub001/models"

// AggregateTargets rolls child target rows up into one parent record by
// summing every tier column independently. Pure function; the result is
// the same for any ordering of rows.
func AggregateTargets(rows []models.TargetRecord) models.TargetRecord {
	var out models.TargetRecord
	for _, row := range rows {
		out.Panchayat = addTier(out.Panchayat, row.Panchayat)
		out.Municipality = addTier(out.Municipality, row.Municipality)
		out.Corporation = addTier(out.Corporation, row.Corporation)
	}
	return out
}

func addTier(a, b models.TierTarget) models.TierTarget {
	return models.TierTarget{
		Total:            a.Total + b.Total,
		TargetWin:        a.TargetWin + b.TargetWin,
		TargetOpposition: a.TargetOpposition + b.TargetOpposition,
	}
}
