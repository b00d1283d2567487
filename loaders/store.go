// Package loaders fetches the campaign's delimited data sheets once per
// process and answers synchronous hierarchy-path lookups against the
// resulting in-memory indexes. There is no invalidation: the sheets are
// immutable for the lifetime of a deployment and the caches live until
// the process restarts.
package loaders

import (
	"context"
	"log"
	"sync"
	"time"
)

// Store bundles every loader behind one injected value so handlers and
// tests never reach for package globals.
type Store struct {
	ACData     *ACDataLoader
	MandalData *MandalDataLoader

	OrgVoteShare       *OrgVoteShareLoader
	ACVoteShare        *ACVoteShareLoader
	MandalVoteShare    *MandalVoteShareLoader
	LocalBodyVoteShare *LocalBodyVoteShareLoader

	OrgTargets    *OrgTargetLoader
	ACTargets     *ACTargetLoader
	MandalTargets *MandalTargetLoader

	ZoneContacts      *ZoneContactLoader
	OrgContacts       *OrgContactLoader
	MandalContacts    *MandalContactLoader
	LocalBodyContacts *LocalBodyContactLoader
}

func NewStore(fetcher Fetcher) *Store {
	return &Store{
		ACData:     NewACDataLoader(fetcher),
		MandalData: NewMandalDataLoader(fetcher),

		OrgVoteShare:       NewOrgVoteShareLoader(fetcher),
		ACVoteShare:        NewACVoteShareLoader(fetcher),
		MandalVoteShare:    NewMandalVoteShareLoader(fetcher),
		LocalBodyVoteShare: NewLocalBodyVoteShareLoader(fetcher),

		OrgTargets:    NewOrgTargetLoader(fetcher),
		ACTargets:     NewACTargetLoader(fetcher),
		MandalTargets: NewMandalTargetLoader(fetcher),

		ZoneContacts:      NewZoneContactLoader(fetcher),
		OrgContacts:       NewOrgContactLoader(fetcher),
		MandalContacts:    NewMandalContactLoader(fetcher),
		LocalBodyContacts: NewLocalBodyContactLoader(fetcher),
	}
}

// LoadAll fetches every sheet concurrently and waits for all of them.
// It must complete before the server starts answering data requests;
// the lookup methods take no locks. A sheet that fails to load leaves
// its loader empty and the affected queries return empty rows.
func (s *Store) LoadAll(ctx context.Context) {
	start := time.Now()

	loads := []func(context.Context){
		s.ACData.Load,
		s.MandalData.Load,
		s.OrgVoteShare.Load,
		s.ACVoteShare.Load,
		s.MandalVoteShare.Load,
		s.LocalBodyVoteShare.Load,
		s.OrgTargets.Load,
		s.ACTargets.Load,
		s.MandalTargets.Load,
		s.ZoneContacts.Load,
		s.OrgContacts.Load,
		s.MandalContacts.Load,
		s.LocalBodyContacts.Load,
	}

	var wg sync.WaitGroup
	for _, load := range loads {
		wg.Add(1)
		go func(load func(context.Context)) {
			defer wg.Done()
			load(ctx)
		}(load)
	}
	wg.Wait()

	log.Printf("Data sheets loaded in %v", time.Since(start))
}

// Status reports, per sheet, whether its loader holds any rows. Used by
// the detailed health endpoint.
func (s *Store) Status() map[string]bool {
	return map[string]bool{
		acDataSource.Name:             s.ACData.Loaded(),
		mandalDataSource.Name:         s.MandalData.Loaded(),
		orgVoteShareSource.Name:       s.OrgVoteShare.Loaded(),
		acVoteShareSource.Name:        s.ACVoteShare.Loaded(),
		mandalVoteShareSource.Name:    s.MandalVoteShare.Loaded(),
		localBodyVoteShareSource.Name: s.LocalBodyVoteShare.Loaded(),
		orgTargetSource.Name:          s.OrgTargets.Loaded(),
		acTargetSource.Name:           s.ACTargets.Loaded(),
		mandalTargetSource.Name:       s.MandalTargets.Loaded(),
		zoneContactSource.Name:        s.ZoneContacts.Loaded(),
		orgContactSource.Name:         s.OrgContacts.Loaded(),
		mandalContactSource.Name:      s.MandalContacts.Loaded(),
		localBodyContactSource.Name:   s.LocalBodyContacts.Loaded(),
	}
}
