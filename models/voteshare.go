package models

// PeriodShare is the vote performance of one entity in one election cycle.
// VS is a percentage string ("19.13%") and Votes a locale-formatted count
// ("9,20,488") taken verbatim from the source sheets; "NA" cells arrive
// here already coerced to "0%" / "0".
type PeriodShare struct {
	VS    string `json:"vs"`
	Votes string `json:"votes"`
}

// VoteShareRecord carries one entity's performance across the three cycles
// the dashboard compares: LSG 2020, GE 2024 and the 2025 target.
type VoteShareRecord struct {
	Name       string      `json:"name"`
	LSG2020    PeriodShare `json:"lsg2020"`
	GE2024     PeriodShare `json:"ge2024"`
	Target2025 PeriodShare `json:"target2025"`
}
