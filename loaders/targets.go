package loaders

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/oru-pavam-nair/BJPMission2025-sub001/models"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/parser"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/utils"
)

// The target sheets all end with the same nine count columns:
// Panchayat total/win/opposition, Municipality total/win/opposition,
// Corporation total/win/opposition. Win plus opposition is carried
// verbatim even where the sheet exceeds the total.
func parseTiers(row parser.Row, start int) (pan, mun, corp models.TierTarget) {
	pan = models.TierTarget{
		Total:            parser.CellInt(row[start]),
		TargetWin:        parser.CellInt(row[start+1]),
		TargetOpposition: parser.CellInt(row[start+2]),
	}
	mun = models.TierTarget{
		Total:            parser.CellInt(row[start+3]),
		TargetWin:        parser.CellInt(row[start+4]),
		TargetOpposition: parser.CellInt(row[start+5]),
	}
	corp = models.TierTarget{
		Total:            parser.CellInt(row[start+6]),
		TargetWin:        parser.CellInt(row[start+7]),
		TargetOpposition: parser.CellInt(row[start+8]),
	}
	return
}

// zoneTargetTable is the fixed zone-level table the dashboard shows before
// any drill-down. It is maintained here rather than in a sheet: the five
// rows change only when the state-level plan is revised.
var zoneTargetTable = []models.TargetRecord{
	{
		Name:         "Thiruvananthapuram",
		Panchayat:    models.TierTarget{Total: 243, TargetWin: 84, TargetOpposition: 159},
		Municipality: models.TierTarget{Total: 17, TargetWin: 6, TargetOpposition: 11},
		Corporation:  models.TierTarget{Total: 2, TargetWin: 1, TargetOpposition: 1},
	},
	{
		Name:         "Kollam",
		Panchayat:    models.TierTarget{Total: 180, TargetWin: 52, TargetOpposition: 128},
		Municipality: models.TierTarget{Total: 16, TargetWin: 4, TargetOpposition: 12},
		Corporation:  models.TierTarget{Total: 1, TargetWin: 0, TargetOpposition: 1},
	},
	{
		Name:         "Ernakulam",
		Panchayat:    models.TierTarget{Total: 178, TargetWin: 49, TargetOpposition: 129},
		Municipality: models.TierTarget{Total: 21, TargetWin: 7, TargetOpposition: 14},
		Corporation:  models.TierTarget{Total: 1, TargetWin: 0, TargetOpposition: 1},
	},
	{
		Name:         "Palakkad",
		Panchayat:    models.TierTarget{Total: 172, TargetWin: 58, TargetOpposition: 114},
		Municipality: models.TierTarget{Total: 18, TargetWin: 8, TargetOpposition: 10},
		Corporation:  models.TierTarget{Total: 1, TargetWin: 1, TargetOpposition: 0},
	},
	{
		Name:         "Kozhikode",
		Panchayat:    models.TierTarget{Total: 168, TargetWin: 41, TargetOpposition: 127},
		Municipality: models.TierTarget{Total: 15, TargetWin: 3, TargetOpposition: 12},
		Corporation:  models.TierTarget{Total: 1, TargetWin: 0, TargetOpposition: 1},
	},
}

// ZoneTargets returns the fixed zone-level target rows.
func ZoneTargets() []models.TargetRecord {
	out := make([]models.TargetRecord, len(zoneTargetTable))
	copy(out, zoneTargetTable)
	return out
}

// OrgTargetLoader indexes org-district target rows by zone. Sheet columns:
// Zone, OrgDistrict, then the nine count columns.
type OrgTargetLoader struct {
	fetcher Fetcher
	once    sync.Once

	byZone map[string][]models.TargetRecord
}

func NewOrgTargetLoader(fetcher Fetcher) *OrgTargetLoader {
	return &OrgTargetLoader{fetcher: fetcher}
}

func (l *OrgTargetLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.byZone = map[string][]models.TargetRecord{}

		raw, err := l.fetcher.Fetch(ctx, orgTargetSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", orgTargetSource.Name, err)
			return
		}

		for _, row := range parser.Parse(orgTargetSource, raw) {
			zone := utils.NormalizeZone(row[0])
			rec := models.TargetRecord{Name: utils.NormalizeOrg(row[1])}
			rec.Panchayat, rec.Municipality, rec.Corporation = parseTiers(row, 2)
			l.byZone[zone] = append(l.byZone[zone], rec)
		}
		log.Printf("Loaded %s: %d zones", orgTargetSource.Name, len(l.byZone))
	})
}

// Under returns all org-district target rows of a zone in file order.
func (l *OrgTargetLoader) Under(zone string) []models.TargetRecord {
	return l.byZone[utils.NormalizeZone(zone)]
}

func (l *OrgTargetLoader) Loaded() bool {
	return len(l.byZone) > 0
}

// ACTargetLoader indexes AC target rows by zone and org district. Sheet
// columns: Zone, OrgDistrict, AC, then the nine count columns.
type ACTargetLoader struct {
	fetcher Fetcher
	once    sync.Once

	byZoneOrg map[string]map[string][]models.TargetRecord
}

func NewACTargetLoader(fetcher Fetcher) *ACTargetLoader {
	return &ACTargetLoader{fetcher: fetcher}
}

func (l *ACTargetLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.byZoneOrg = map[string]map[string][]models.TargetRecord{}

		raw, err := l.fetcher.Fetch(ctx, acTargetSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", acTargetSource.Name, err)
			return
		}

		count := 0
		for _, row := range parser.Parse(acTargetSource, raw) {
			zone := utils.NormalizeZone(row[0])
			org := utils.NormalizeOrg(row[1])
			rec := models.TargetRecord{Name: utils.NormalizeAC(row[2])}
			rec.Panchayat, rec.Municipality, rec.Corporation = parseTiers(row, 3)

			if l.byZoneOrg[zone] == nil {
				l.byZoneOrg[zone] = map[string][]models.TargetRecord{}
			}
			l.byZoneOrg[zone][org] = append(l.byZoneOrg[zone][org], rec)
			count++
		}
		log.Printf("Loaded %s: %d ACs", acTargetSource.Name, count)
	})
}

// Under returns all AC target rows of an org district in file order.
func (l *ACTargetLoader) Under(zone, org string) []models.TargetRecord {
	byOrg := l.byZoneOrg[utils.NormalizeZone(zone)]
	if byOrg == nil {
		return nil
	}
	return byOrg[utils.NormalizeOrg(org)]
}

func (l *ACTargetLoader) Loaded() bool {
	return len(l.byZoneOrg) > 0
}

// MandalTargetLoader indexes mandal target rows by zone, org district and
// AC. Sheet columns: Zone, OrgDistrict, AC, Mandal, then the nine count
// columns.
type MandalTargetLoader struct {
	fetcher Fetcher
	once    sync.Once

	byPath map[string]map[string]map[string][]models.TargetRecord
}

func NewMandalTargetLoader(fetcher Fetcher) *MandalTargetLoader {
	return &MandalTargetLoader{fetcher: fetcher}
}

func (l *MandalTargetLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.byPath = map[string]map[string]map[string][]models.TargetRecord{}

		raw, err := l.fetcher.Fetch(ctx, mandalTargetSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", mandalTargetSource.Name, err)
			return
		}

		count := 0
		for _, row := range parser.Parse(mandalTargetSource, raw) {
			zone := utils.NormalizeZone(row[0])
			org := utils.NormalizeOrg(row[1])
			ac := utils.NormalizeAC(row[2])
			rec := models.TargetRecord{Name: strings.TrimSpace(row[3])}
			rec.Panchayat, rec.Municipality, rec.Corporation = parseTiers(row, 4)

			if l.byPath[zone] == nil {
				l.byPath[zone] = map[string]map[string][]models.TargetRecord{}
			}
			if l.byPath[zone][org] == nil {
				l.byPath[zone][org] = map[string][]models.TargetRecord{}
			}
			l.byPath[zone][org][ac] = append(l.byPath[zone][org][ac], rec)
			count++
		}
		log.Printf("Loaded %s: %d mandals", mandalTargetSource.Name, count)
	})
}

// Under returns all mandal target rows of an AC in file order.
func (l *MandalTargetLoader) Under(zone, org, ac string) []models.TargetRecord {
	byOrg := l.byPath[utils.NormalizeZone(zone)]
	if byOrg == nil {
		return nil
	}
	byAC := byOrg[utils.NormalizeOrg(org)]
	if byAC == nil {
		return nil
	}
	return byAC[utils.NormalizeAC(ac)]
}

func (l *MandalTargetLoader) Loaded() bool {
	return len(l.byPath) > 0
}
