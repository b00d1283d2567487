package models

// Level identifies the active drill-down depth on the Kerala map.
type Level string

const (
	LevelZones      Level = "zones"
	LevelOrgs       Level = "orgs"
	LevelACs        Level = "acs"
	LevelMandals    Level = "mandals"
	LevelPanchayats Level = "panchayats"
	LevelWards      Level = "wards"
)

// MapContext is the navigation state the map client sends with every data
// request: the current level plus the names selected along the drill-down
// path. Names are display names; there are no numeric IDs in the hierarchy.
type MapContext struct {
	Level  Level  `json:"level"`
	Zone   string `json:"zone"`
	Org    string `json:"org"`
	AC     string `json:"ac"`
	Mandal string `json:"mandal"`
}

// KnownLevel reports whether l is one of the levels the map emits.
func KnownLevel(l Level) bool {
	switch l {
	case LevelZones, LevelOrgs, LevelACs, LevelMandals, LevelPanchayats, LevelWards:
		return true
	}
	return false
}
