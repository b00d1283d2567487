package loaders

import "github.com/oru-pavam-nair/BJPMission2025-sub001/parser"

// Every sheet the service consumes, with its per-source parse settings.
// The vote-share exports are tab-delimited while the target and contact
// sheets are comma-delimited; all carry two fixed header lines (a title
// row and a column-label row). The column order of each file is hard
// agreement with the spreadsheet maintainers and is documented next to
// the loader that consumes it.
var (
	acDataSource = parser.SourceSpec{
		Name:       "ac-data",
		Path:       "csv/acdata.csv",
		Delimiter:  parser.DelimiterComma,
		HeaderRows: 2,
		MinColumns: 3,
	}

	mandalDataSource = parser.SourceSpec{
		Name:       "mandal-data",
		Path:       "csv/mandaldata.csv",
		Delimiter:  parser.DelimiterComma,
		HeaderRows: 2,
		MinColumns: 6,
	}

	orgVoteShareSource = parser.SourceSpec{
		Name:       "org-voteshare",
		Path:       "data/votesharetarget/org_voteshare.tsv",
		Delimiter:  parser.DelimiterTab,
		HeaderRows: 2,
		MinColumns: 8,
	}

	acVoteShareSource = parser.SourceSpec{
		Name:       "ac-voteshare",
		Path:       "data/votesharetarget/ac_voteshare.tsv",
		Delimiter:  parser.DelimiterTab,
		HeaderRows: 2,
		MinColumns: 9,
	}

	mandalVoteShareSource = parser.SourceSpec{
		Name:       "mandal-voteshare",
		Path:       "data/votesharetarget/mandal_voteshare.tsv",
		Delimiter:  parser.DelimiterTab,
		HeaderRows: 2,
		MinColumns: 10,
	}

	localBodyVoteShareSource = parser.SourceSpec{
		Name:       "localbody-voteshare",
		Path:       "data/votesharetarget/localbody_voteshare.tsv",
		Delimiter:  parser.DelimiterTab,
		HeaderRows: 2,
		MinColumns: 11,
	}

	orgTargetSource = parser.SourceSpec{
		Name:       "org-targets",
		Path:       "data/targetdata/org_targets.csv",
		Delimiter:  parser.DelimiterComma,
		HeaderRows: 2,
		MinColumns: 11,
	}

	acTargetSource = parser.SourceSpec{
		Name:       "ac-targets",
		Path:       "data/targetdata/ac_targets.csv",
		Delimiter:  parser.DelimiterComma,
		HeaderRows: 2,
		MinColumns: 12,
	}

	mandalTargetSource = parser.SourceSpec{
		Name:       "mandal-targets",
		Path:       "data/targetdata/mandal_targets.csv",
		Delimiter:  parser.DelimiterComma,
		HeaderRows: 2,
		MinColumns: 13,
	}

	zoneContactSource = parser.SourceSpec{
		Name:       "zone-contacts",
		Path:       "data/contacts/zone_contacts.csv",
		Delimiter:  parser.DelimiterComma,
		HeaderRows: 2,
		MinColumns: 5,
	}

	orgContactSource = parser.SourceSpec{
		Name:       "org-contacts",
		Path:       "data/contacts/org_contacts.csv",
		Delimiter:  parser.DelimiterComma,
		HeaderRows: 2,
		MinColumns: 6,
	}

	mandalContactSource = parser.SourceSpec{
		Name:       "mandal-contacts",
		Path:       "data/contacts/mandal_contacts.csv",
		Delimiter:  parser.DelimiterComma,
		HeaderRows: 2,
		MinColumns: 8,
	}

	localBodyContactSource = parser.SourceSpec{
		Name:       "localbody-contacts",
		Path:       "data/contacts/localbody_contacts.csv",
		Delimiter:  parser.DelimiterComma,
		HeaderRows: 2,
		MinColumns: 11,
	}
)
