package models

// TierTarget is the seat arithmetic for one local-body tier: how many
// bodies exist, how many are targeted to win and how many conceded to the
// opposition. Win + opposition is not clamped to total; the source sheets
// occasionally exceed it and the numbers are carried verbatim.
type TierTarget struct {
	Total            int `json:"total"`
	TargetWin        int `json:"targetWin"`
	TargetOpposition int `json:"targetOpposition"`
}

// TargetRecord is one entity's 2025 local-body targets split by tier.
type TargetRecord struct {
	Name         string     `json:"name"`
	Panchayat    TierTarget `json:"panchayat"`
	Municipality TierTarget `json:"municipality"`
	Corporation  TierTarget `json:"corporation"`
}
