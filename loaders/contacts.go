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

// Contact cells use the literal "NA" for missing names and phones; the
// directories render it as-is, so the loaders keep it instead of blanking.

// ZoneContactLoader holds the five zone leadership rows. Sheet columns:
// Zone, InchargeName, InchargePhone, PresidentName, PresidentPhone.
type ZoneContactLoader struct {
	fetcher Fetcher
	once    sync.Once

	rows []models.OrgContactRecord
}

func NewZoneContactLoader(fetcher Fetcher) *ZoneContactLoader {
	return &ZoneContactLoader{fetcher: fetcher}
}

func (l *ZoneContactLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		raw, err := l.fetcher.Fetch(ctx, zoneContactSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", zoneContactSource.Name, err)
			return
		}

		for _, row := range parser.Parse(zoneContactSource, raw) {
			l.rows = append(l.rows, models.OrgContactRecord{
				Name:           utils.NormalizeZone(row[0]),
				InchargeName:   parser.CellText(row[1]),
				InchargePhone:  parser.CellText(row[2]),
				PresidentName:  parser.CellText(row[3]),
				PresidentPhone: parser.CellText(row[4]),
			})
		}
		log.Printf("Loaded %s: %d zones", zoneContactSource.Name, len(l.rows))
	})
}

// All returns every zone contact row in file order.
func (l *ZoneContactLoader) All() []models.OrgContactRecord {
	return l.rows
}

func (l *ZoneContactLoader) Loaded() bool {
	return len(l.rows) > 0
}

// OrgContactLoader indexes org-district leadership rows by zone. Sheet
// columns: Zone, OrgDistrict, InchargeName, InchargePhone, PresidentName,
// PresidentPhone.
type OrgContactLoader struct {
	fetcher Fetcher
	once    sync.Once

	byZone map[string][]models.OrgContactRecord
}

func NewOrgContactLoader(fetcher Fetcher) *OrgContactLoader {
	return &OrgContactLoader{fetcher: fetcher}
}

func (l *OrgContactLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.byZone = map[string][]models.OrgContactRecord{}

		raw, err := l.fetcher.Fetch(ctx, orgContactSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", orgContactSource.Name, err)
			return
		}

		for _, row := range parser.Parse(orgContactSource, raw) {
			zone := utils.NormalizeZone(row[0])
			l.byZone[zone] = append(l.byZone[zone], models.OrgContactRecord{
				Name:           utils.NormalizeOrg(row[1]),
				InchargeName:   parser.CellText(row[2]),
				InchargePhone:  parser.CellText(row[3]),
				PresidentName:  parser.CellText(row[4]),
				PresidentPhone: parser.CellText(row[5]),
			})
		}
		log.Printf("Loaded %s: %d zones", orgContactSource.Name, len(l.byZone))
	})
}

// Under returns all org-district contact rows of a zone in file order.
func (l *OrgContactLoader) Under(zone string) []models.OrgContactRecord {
	return l.byZone[utils.NormalizeZone(zone)]
}

func (l *OrgContactLoader) Loaded() bool {
	return len(l.byZone) > 0
}

// MandalContactLoader indexes mandal leadership rows by zone, org district
// and AC. Sheet columns: Zone, OrgDistrict, AC, Mandal, PresidentName,
// PresidentPhone, PrabhariName, PrabhariPhone.
type MandalContactLoader struct {
	fetcher Fetcher
	once    sync.Once

	byPath map[string]map[string]map[string][]models.MandalContactRecord
}

func NewMandalContactLoader(fetcher Fetcher) *MandalContactLoader {
	return &MandalContactLoader{fetcher: fetcher}
}

func (l *MandalContactLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.byPath = map[string]map[string]map[string][]models.MandalContactRecord{}

		raw, err := l.fetcher.Fetch(ctx, mandalContactSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", mandalContactSource.Name, err)
			return
		}

		count := 0
		for _, row := range parser.Parse(mandalContactSource, raw) {
			zone := utils.NormalizeZone(row[0])
			org := utils.NormalizeOrg(row[1])
			ac := utils.NormalizeAC(row[2])
			rec := models.MandalContactRecord{
				Name:      strings.TrimSpace(row[3]),
				President: models.Person{Name: parser.CellText(row[4]), Phone: parser.CellText(row[5])},
				Prabhari:  models.Person{Name: parser.CellText(row[6]), Phone: parser.CellText(row[7])},
			}

			if l.byPath[zone] == nil {
				l.byPath[zone] = map[string]map[string][]models.MandalContactRecord{}
			}
			if l.byPath[zone][org] == nil {
				l.byPath[zone][org] = map[string][]models.MandalContactRecord{}
			}
			l.byPath[zone][org][ac] = append(l.byPath[zone][org][ac], rec)
			count++
		}
		log.Printf("Loaded %s: %d mandals", mandalContactSource.Name, count)
	})
}

// Under returns all mandal contact rows of an AC in file order.
func (l *MandalContactLoader) Under(zone, org, ac string) []models.MandalContactRecord {
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

func (l *MandalContactLoader) Loaded() bool {
	return len(l.byPath) > 0
}

// LocalBodyContactLoader indexes local-body leadership rows by the full
// hierarchy path. Sheet columns: Zone, OrgDistrict, AC, Mandal, LocalBody,
// PresidentName, PresidentPhone, InchargeName, InchargePhone,
// SecretaryName, SecretaryPhone.
type LocalBodyContactLoader struct {
	fetcher Fetcher
	once    sync.Once

	byPath map[string]map[string]map[string]map[string][]models.LocalBodyContactRecord
}

func NewLocalBodyContactLoader(fetcher Fetcher) *LocalBodyContactLoader {
	return &LocalBodyContactLoader{fetcher: fetcher}
}

func (l *LocalBodyContactLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.byPath = map[string]map[string]map[string]map[string][]models.LocalBodyContactRecord{}

		raw, err := l.fetcher.Fetch(ctx, localBodyContactSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", localBodyContactSource.Name, err)
			return
		}

		count := 0
		for _, row := range parser.Parse(localBodyContactSource, raw) {
			zone := utils.NormalizeZone(row[0])
			org := utils.NormalizeOrg(row[1])
			ac := utils.NormalizeAC(row[2])
			mandal := strings.TrimSpace(row[3])
			rec := models.LocalBodyContactRecord{
				Name:      strings.TrimSpace(row[4]),
				President: models.Person{Name: parser.CellText(row[5]), Phone: parser.CellText(row[6])},
				Incharge:  models.Person{Name: parser.CellText(row[7]), Phone: parser.CellText(row[8])},
				Secretary: models.Person{Name: parser.CellText(row[9]), Phone: parser.CellText(row[10])},
			}

			if l.byPath[zone] == nil {
				l.byPath[zone] = map[string]map[string]map[string][]models.LocalBodyContactRecord{}
			}
			if l.byPath[zone][org] == nil {
				l.byPath[zone][org] = map[string]map[string][]models.LocalBodyContactRecord{}
			}
			if l.byPath[zone][org][ac] == nil {
				l.byPath[zone][org][ac] = map[string][]models.LocalBodyContactRecord{}
			}
			l.byPath[zone][org][ac][mandal] = append(l.byPath[zone][org][ac][mandal], rec)
			count++
		}
		log.Printf("Loaded %s: %d local bodies", localBodyContactSource.Name, count)
	})
}

// Under returns all local-body contact rows of a mandal in file order.
func (l *LocalBodyContactLoader) Under(zone, org, ac, mandal string) []models.LocalBodyContactRecord {
	byOrg := l.byPath[utils.NormalizeZone(zone)]
	if byOrg == nil {
		return nil
	}
	byAC := byOrg[utils.NormalizeOrg(org)]
	if byAC == nil {
		return nil
	}
	byMandal := byAC[utils.NormalizeAC(ac)]
	if byMandal == nil {
		return nil
	}
	return byMandal[strings.TrimSpace(mandal)]
}

func (l *LocalBodyContactLoader) Loaded() bool {
	return len(l.byPath) > 0
}
