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

// ACDataLoader holds the hierarchy skeleton down to assembly
// constituencies: which org districts sit under each zone and which ACs
// under each org district. Sheet columns: Zone, OrgDistrict, AC.
type ACDataLoader struct {
	fetcher Fetcher
	once    sync.Once

	zones []string
	orgs  map[string][]string            // zone -> org districts, file order
	acs   map[string]map[string][]string // zone -> org -> ACs, file order
}

func NewACDataLoader(fetcher Fetcher) *ACDataLoader {
	return &ACDataLoader{fetcher: fetcher}
}

// Load fetches and indexes the AC data sheet. Idempotent; a failure is
// logged and leaves the loader empty, it is never surfaced to callers.
func (l *ACDataLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.orgs = map[string][]string{}
		l.acs = map[string]map[string][]string{}

		raw, err := l.fetcher.Fetch(ctx, acDataSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", acDataSource.Name, err)
			return
		}

		for _, row := range parser.Parse(acDataSource, raw) {
			zone := utils.NormalizeZone(row[0])
			org := utils.NormalizeOrg(row[1])
			ac := utils.NormalizeAC(row[2])

			if l.acs[zone] == nil {
				l.zones = append(l.zones, zone)
				l.acs[zone] = map[string][]string{}
			}
			if l.acs[zone][org] == nil {
				l.orgs[zone] = append(l.orgs[zone], org)
			}
			l.acs[zone][org] = append(l.acs[zone][org], ac)
		}
		log.Printf("Loaded %s: %d zones", acDataSource.Name, len(l.zones))
	})
}

// Zones returns the zone names in file order.
func (l *ACDataLoader) Zones() []string {
	return l.zones
}

// OrgsUnder returns the org districts of a zone in file order.
func (l *ACDataLoader) OrgsUnder(zone string) []string {
	return l.orgs[utils.NormalizeZone(zone)]
}

// ACsUnder returns the assembly constituencies of an org district.
func (l *ACDataLoader) ACsUnder(zone, org string) []string {
	byOrg := l.acs[utils.NormalizeZone(zone)]
	if byOrg == nil {
		return nil
	}
	return byOrg[utils.NormalizeOrg(org)]
}

// Loaded reports whether the sheet produced any rows.
func (l *ACDataLoader) Loaded() bool {
	return len(l.zones) > 0
}

// MandalDataLoader holds the lower hierarchy: mandals under each AC and
// local bodies under each mandal, with the local-body tier. Sheet columns:
// Zone, OrgDistrict, AC, Mandal, LocalBody, Tier.
type MandalDataLoader struct {
	fetcher Fetcher
	once    sync.Once

	mandals     map[string]map[string]map[string][]string
	localBodies map[string]map[string]map[string]map[string][]models.LocalBody
}

func NewMandalDataLoader(fetcher Fetcher) *MandalDataLoader {
	return &MandalDataLoader{fetcher: fetcher}
}

func (l *MandalDataLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.mandals = map[string]map[string]map[string][]string{}
		l.localBodies = map[string]map[string]map[string]map[string][]models.LocalBody{}

		raw, err := l.fetcher.Fetch(ctx, mandalDataSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", mandalDataSource.Name, err)
			return
		}

		count := 0
		for _, row := range parser.Parse(mandalDataSource, raw) {
			zone := utils.NormalizeZone(row[0])
			org := utils.NormalizeOrg(row[1])
			ac := utils.NormalizeAC(row[2])
			mandal := strings.TrimSpace(row[3])
			body := models.LocalBody{
				Name: strings.TrimSpace(row[4]),
				Tier: parseTier(row[5]),
			}

			if l.mandals[zone] == nil {
				l.mandals[zone] = map[string]map[string][]string{}
				l.localBodies[zone] = map[string]map[string]map[string][]models.LocalBody{}
			}
			if l.mandals[zone][org] == nil {
				l.mandals[zone][org] = map[string][]string{}
				l.localBodies[zone][org] = map[string]map[string][]models.LocalBody{}
			}
			if l.localBodies[zone][org][ac] == nil {
				l.localBodies[zone][org][ac] = map[string][]models.LocalBody{}
			}
			if l.localBodies[zone][org][ac][mandal] == nil {
				l.mandals[zone][org][ac] = append(l.mandals[zone][org][ac], mandal)
			}
			l.localBodies[zone][org][ac][mandal] = append(l.localBodies[zone][org][ac][mandal], body)
			count++
		}
		log.Printf("Loaded %s: %d local bodies", mandalDataSource.Name, count)
	})
}

// MandalsUnder returns the mandals of an AC in file order.
func (l *MandalDataLoader) MandalsUnder(zone, org, ac string) []string {
	byOrg := l.mandals[utils.NormalizeZone(zone)]
	if byOrg == nil {
		return nil
	}
	byAC := byOrg[utils.NormalizeOrg(org)]
	if byAC == nil {
		return nil
	}
	return byAC[utils.NormalizeAC(ac)]
}

// LocalBodiesUnder returns the local bodies of a mandal in file order.
func (l *MandalDataLoader) LocalBodiesUnder(zone, org, ac, mandal string) []models.LocalBody {
	byOrg := l.localBodies[utils.NormalizeZone(zone)]
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

func (l *MandalDataLoader) Loaded() bool {
	return len(l.mandals) > 0
}

func parseTier(cell string) models.LocalBodyTier {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "municipality":
		return models.TierMunicipality
	case "corporation":
		return models.TierCorporation
	default:
		return models.TierPanchayat
	}
}
