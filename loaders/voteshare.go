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

// The vote-share sheets all end with the same six performance columns:
// LSG 2020 VS, LSG 2020 votes, GE 2024 VS, GE 2024 votes, Target 2025 VS,
// Target 2025 votes. "NA" cells become "0%" / "0".
func parsePeriods(row parser.Row, start int) (lsg, ge, target models.PeriodShare) {
	lsg = models.PeriodShare{VS: parser.CellPercent(row[start]), Votes: parser.CellVotes(row[start+1])}
	ge = models.PeriodShare{VS: parser.CellPercent(row[start+2]), Votes: parser.CellVotes(row[start+3])}
	target = models.PeriodShare{VS: parser.CellPercent(row[start+4]), Votes: parser.CellVotes(row[start+5])}
	return
}

// zoneVoteShareTable is the fixed zone-level performance table shown
// before any drill-down, kept in code alongside the zone target table.
var zoneVoteShareTable = []models.VoteShareRecord{
	{
		Name:       "Thiruvananthapuram",
		LSG2020:    models.PeriodShare{VS: "19.13%", Votes: "9,20,488"},
		GE2024:     models.PeriodShare{VS: "25.23%", Votes: "10,78,764"},
		Target2025: models.PeriodShare{VS: "31.99%", Votes: "18,89,715"},
	},
	{
		Name:       "Kollam",
		LSG2020:    models.PeriodShare{VS: "12.41%", Votes: "6,12,970"},
		GE2024:     models.PeriodShare{VS: "16.02%", Votes: "7,41,386"},
		Target2025: models.PeriodShare{VS: "22.50%", Votes: "11,42,203"},
	},
	{
		Name:       "Ernakulam",
		LSG2020:    models.PeriodShare{VS: "10.86%", Votes: "7,08,351"},
		GE2024:     models.PeriodShare{VS: "14.47%", Votes: "8,95,602"},
		Target2025: models.PeriodShare{VS: "20.10%", Votes: "13,60,440"},
	},
	{
		Name:       "Palakkad",
		LSG2020:    models.PeriodShare{VS: "15.67%", Votes: "8,01,914"},
		GE2024:     models.PeriodShare{VS: "19.89%", Votes: "9,62,330"},
		Target2025: models.PeriodShare{VS: "26.75%", Votes: "14,12,878"},
	},
	{
		Name:       "Kozhikode",
		LSG2020:    models.PeriodShare{VS: "9.24%", Votes: "6,04,226"},
		GE2024:     models.PeriodShare{VS: "12.11%", Votes: "7,44,915"},
		Target2025: models.PeriodShare{VS: "17.80%", Votes: "11,96,502"},
	},
}

// ZoneVoteShare returns the fixed zone-level performance rows.
func ZoneVoteShare() []models.VoteShareRecord {
	out := make([]models.VoteShareRecord, len(zoneVoteShareTable))
	copy(out, zoneVoteShareTable)
	return out
}

// OrgVoteShareLoader indexes org-district performance rows by zone.
// Sheet columns: Zone, OrgDistrict, then the six performance columns.
type OrgVoteShareLoader struct {
	fetcher Fetcher
	once    sync.Once

	byZone map[string][]models.VoteShareRecord
}

func NewOrgVoteShareLoader(fetcher Fetcher) *OrgVoteShareLoader {
	return &OrgVoteShareLoader{fetcher: fetcher}
}

func (l *OrgVoteShareLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.byZone = map[string][]models.VoteShareRecord{}

		raw, err := l.fetcher.Fetch(ctx, orgVoteShareSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", orgVoteShareSource.Name, err)
			return
		}

		for _, row := range parser.Parse(orgVoteShareSource, raw) {
			zone := utils.NormalizeZone(row[0])
			rec := models.VoteShareRecord{Name: utils.NormalizeOrg(row[1])}
			rec.LSG2020, rec.GE2024, rec.Target2025 = parsePeriods(row, 2)
			l.byZone[zone] = append(l.byZone[zone], rec)
		}
		log.Printf("Loaded %s: %d zones", orgVoteShareSource.Name, len(l.byZone))
	})
}

// Under returns all org-district rows of a zone in file order.
func (l *OrgVoteShareLoader) Under(zone string) []models.VoteShareRecord {
	return l.byZone[utils.NormalizeZone(zone)]
}

func (l *OrgVoteShareLoader) Loaded() bool {
	return len(l.byZone) > 0
}

// ACVoteShareLoader indexes assembly-constituency performance rows by
// zone and org district. Sheet columns: Zone, OrgDistrict, AC, then the
// six performance columns.
type ACVoteShareLoader struct {
	fetcher Fetcher
	once    sync.Once

	byZoneOrg map[string]map[string][]models.VoteShareRecord
}

func NewACVoteShareLoader(fetcher Fetcher) *ACVoteShareLoader {
	return &ACVoteShareLoader{fetcher: fetcher}
}

func (l *ACVoteShareLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.byZoneOrg = map[string]map[string][]models.VoteShareRecord{}

		raw, err := l.fetcher.Fetch(ctx, acVoteShareSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", acVoteShareSource.Name, err)
			return
		}

		count := 0
		for _, row := range parser.Parse(acVoteShareSource, raw) {
			zone := utils.NormalizeZone(row[0])
			org := utils.NormalizeOrg(row[1])
			rec := models.VoteShareRecord{Name: utils.NormalizeAC(row[2])}
			rec.LSG2020, rec.GE2024, rec.Target2025 = parsePeriods(row, 3)

			if l.byZoneOrg[zone] == nil {
				l.byZoneOrg[zone] = map[string][]models.VoteShareRecord{}
			}
			l.byZoneOrg[zone][org] = append(l.byZoneOrg[zone][org], rec)
			count++
		}
		log.Printf("Loaded %s: %d ACs", acVoteShareSource.Name, count)
	})
}

// Under returns all AC rows of an org district in file order.
func (l *ACVoteShareLoader) Under(zone, org string) []models.VoteShareRecord {
	byOrg := l.byZoneOrg[utils.NormalizeZone(zone)]
	if byOrg == nil {
		return nil
	}
	return byOrg[utils.NormalizeOrg(org)]
}

// Get returns the single row for one AC, or an empty slice when the path
// does not resolve. Key order mirrors the drill-up the map client sends:
// AC first, then its org district and zone.
func (l *ACVoteShareLoader) Get(ac, org, zone string) []models.VoteShareRecord {
	want := utils.NormalizeAC(ac)
	for _, rec := range l.Under(zone, org) {
		if rec.Name == want {
			return []models.VoteShareRecord{rec}
		}
	}
	return nil
}

func (l *ACVoteShareLoader) Loaded() bool {
	return len(l.byZoneOrg) > 0
}

// MandalVoteShareLoader indexes mandal performance rows by zone, org
// district and AC. Sheet columns: Zone, OrgDistrict, AC, Mandal, then the
// six performance columns.
type MandalVoteShareLoader struct {
	fetcher Fetcher
	once    sync.Once

	byPath map[string]map[string]map[string][]models.VoteShareRecord
}

func NewMandalVoteShareLoader(fetcher Fetcher) *MandalVoteShareLoader {
	return &MandalVoteShareLoader{fetcher: fetcher}
}

func (l *MandalVoteShareLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.byPath = map[string]map[string]map[string][]models.VoteShareRecord{}

		raw, err := l.fetcher.Fetch(ctx, mandalVoteShareSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", mandalVoteShareSource.Name, err)
			return
		}

		count := 0
		for _, row := range parser.Parse(mandalVoteShareSource, raw) {
			zone := utils.NormalizeZone(row[0])
			org := utils.NormalizeOrg(row[1])
			ac := utils.NormalizeAC(row[2])
			rec := models.VoteShareRecord{Name: strings.TrimSpace(row[3])}
			rec.LSG2020, rec.GE2024, rec.Target2025 = parsePeriods(row, 4)

			if l.byPath[zone] == nil {
				l.byPath[zone] = map[string]map[string][]models.VoteShareRecord{}
			}
			if l.byPath[zone][org] == nil {
				l.byPath[zone][org] = map[string][]models.VoteShareRecord{}
			}
			l.byPath[zone][org][ac] = append(l.byPath[zone][org][ac], rec)
			count++
		}
		log.Printf("Loaded %s: %d mandals", mandalVoteShareSource.Name, count)
	})
}

// Under returns all mandal rows of an AC in file order.
func (l *MandalVoteShareLoader) Under(zone, org, ac string) []models.VoteShareRecord {
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

func (l *MandalVoteShareLoader) Loaded() bool {
	return len(l.byPath) > 0
}

// LocalBodyVoteShareLoader indexes local-body performance rows by the full
// hierarchy path. Sheet columns: Zone, OrgDistrict, AC, Mandal, LocalBody,
// then the six performance columns.
type LocalBodyVoteShareLoader struct {
	fetcher Fetcher
	once    sync.Once

	byPath map[string]map[string]map[string]map[string][]models.VoteShareRecord
}

func NewLocalBodyVoteShareLoader(fetcher Fetcher) *LocalBodyVoteShareLoader {
	return &LocalBodyVoteShareLoader{fetcher: fetcher}
}

func (l *LocalBodyVoteShareLoader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.byPath = map[string]map[string]map[string]map[string][]models.VoteShareRecord{}

		raw, err := l.fetcher.Fetch(ctx, localBodyVoteShareSource.Path)
		if err != nil {
			log.Printf("Error loading %s: %v", localBodyVoteShareSource.Name, err)
			return
		}

		count := 0
		for _, row := range parser.Parse(localBodyVoteShareSource, raw) {
			zone := utils.NormalizeZone(row[0])
			org := utils.NormalizeOrg(row[1])
			ac := utils.NormalizeAC(row[2])
			mandal := strings.TrimSpace(row[3])
			rec := models.VoteShareRecord{Name: strings.TrimSpace(row[4])}
			rec.LSG2020, rec.GE2024, rec.Target2025 = parsePeriods(row, 5)

			if l.byPath[zone] == nil {
				l.byPath[zone] = map[string]map[string]map[string][]models.VoteShareRecord{}
			}
			if l.byPath[zone][org] == nil {
				l.byPath[zone][org] = map[string]map[string][]models.VoteShareRecord{}
			}
			if l.byPath[zone][org][ac] == nil {
				l.byPath[zone][org][ac] = map[string][]models.VoteShareRecord{}
			}
			l.byPath[zone][org][ac][mandal] = append(l.byPath[zone][org][ac][mandal], rec)
			count++
		}
		log.Printf("Loaded %s: %d local bodies", localBodyVoteShareSource.Name, count)
	})
}

// Under returns all local-body rows of a mandal in file order.
func (l *LocalBodyVoteShareLoader) Under(zone, org, ac, mandal string) []models.VoteShareRecord {
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

func (l *LocalBodyVoteShareLoader) Loaded() bool {
	return len(l.byPath) > 0
}
