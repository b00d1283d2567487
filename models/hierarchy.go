package models

// LocalBodyTier distinguishes the three kinds of local self-government
// bodies under a mandal.
type LocalBodyTier string

const (
	TierPanchayat    LocalBodyTier = "panchayat"
	TierMunicipality LocalBodyTier = "municipality"
	TierCorporation  LocalBodyTier = "corporation"
)

// LocalBody is the fifth hierarchy tier: a panchayat, municipality or
// corporation nested under an organizational mandal.
type LocalBody struct {
	Name string        `json:"name"`
	Tier LocalBodyTier `json:"tier"`
}
