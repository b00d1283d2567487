package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// The map iframe labels and the campaign spreadsheets are maintained by
// different teams and disagree on the spelling of a known, finite set of
// place names. These tables map every variant we have seen to the spelling
// the data sheets use. Lookups that miss the table fall back to a
// case-folded scan; anything still unmatched is returned unchanged so an
// unknown name degrades to an empty lookup instead of an error.

var acNameVariants = map[string]string{
	"Kazhakoottam":   "Kazhakkoottam",
	"Vattiyurkavu":   "Vattiyoorkavu",
	"Nemom ":         "Nemom",
	"Chathannur":     "Chathannoor",
	"Kovalam ":       "Kovalam",
	"Parassala":      "Parasala",
	"Aruvikara":      "Aruvikkara",
	"Neyyatinkara":   "Neyyattinkara",
	"Kattakkada":     "Kattakada",
	"Varkkala":       "Varkala",
	"Attingal ":      "Attingal",
	"Chirayinkeezhu": "Chirayinkeezh",
	"Vamanapuram ":   "Vamanapuram",
	"Punalur ":       "Punalur",
}

var orgNameVariants = map[string]string{
	"Thiruvananthapuram city": "Thiruvananthapuram City",
	"TVM City":                "Thiruvananthapuram City",
	"TVM North":               "Thiruvananthapuram North",
	"TVM South":               "Thiruvananthapuram South",
	"Trivandrum City":         "Thiruvananthapuram City",
	"Kollam East ":            "Kollam East",
	"Kollam West ":            "Kollam West",
	"Pathanamthitta ":         "Pathanamthitta",
	"Alapuzha North":          "Alappuzha North",
	"Alapuzha South":          "Alappuzha South",
	"Eranakulam City":         "Ernakulam City",
	"Eranakulam East":         "Ernakulam East",
	"Eranakulam North":        "Ernakulam North",
	"Calicut City":            "Kozhikode City",
	"Calicut Rural":           "Kozhikode Rural",
	"Kannur North ":           "Kannur North",
	"Kasargod":                "Kasaragod",
	"Trichur City":            "Thrissur City",
	"Trichur Rural":           "Thrissur Rural",
	"Palghat East":            "Palakkad East",
	"Palghat West":            "Palakkad West",
	"Malappuram East ":        "Malappuram East",
	"Malappuram West ":        "Malappuram West",
	"Idukki North ":           "Idukki North",
	"Idukki South ":           "Idukki South",
	"Kottayam East ":          "Kottayam East",
	"Kottayam West ":          "Kottayam West",
	"Wayanad ":                "Wayanad",
}

var zoneNameVariants = map[string]string{
	"Trivandrum":          "Thiruvananthapuram",
	"Quilon":              "Kollam",
	"Cochin":              "Ernakulam",
	"Kochi":               "Ernakulam",
	"Calicut":             "Kozhikode",
	"Palghat":             "Palakkad",
	"Thiruvananthapuram ": "Thiruvananthapuram",
	"Kollam ":             "Kollam",
	"Ernakulam ":          "Ernakulam",
	"Kozhikode ":          "Kozhikode",
	"Palakkad ":           "Palakkad",
}

// NormalizeAC maps known AC name variants to the canonical spelling used
// by the data sheets. Unknown names pass through unchanged.
func NormalizeAC(raw string) string {
	return normalizeWith(acNameVariants, raw)
}

// NormalizeOrg maps known org-district name variants to the canonical
// spelling used by the data sheets. Unknown names pass through unchanged.
func NormalizeOrg(raw string) string {
	return normalizeWith(orgNameVariants, raw)
}

// NormalizeZone maps known zone name variants to the canonical spelling
// used by the data sheets. Unknown names pass through unchanged.
func NormalizeZone(raw string) string {
	return normalizeWith(zoneNameVariants, raw)
}

func normalizeWith(variants map[string]string, raw string) string {
	if canonical, ok := variants[raw]; ok {
		return strings.TrimSpace(canonical)
	}

	// Case-folded fallback over both sides of the table so that a label
	// differing only in case still resolves to the sheet spelling. Casers
	// may carry state, so each call gets its own; the loaders normalize
	// from concurrent goroutines.
	folder := cases.Fold()
	folded := folder.String(strings.TrimSpace(raw))
	for variant, canonical := range variants {
		if folder.String(strings.TrimSpace(variant)) == folded ||
			folder.String(strings.TrimSpace(canonical)) == folded {
			return strings.TrimSpace(canonical)
		}
	}

	return raw
}
