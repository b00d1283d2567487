package loaders

import (
	"context"
	"fmt"
)

// fakeFetcher serves fixture sheets by path, standing in for the static
// file host.
type fakeFetcher struct {
	files map[string]string
}

func (f fakeFetcher) Fetch(_ context.Context, path string) (string, error) {
	raw, ok := f.files[path]
	if !ok {
		return "", fmt.Errorf("no such sheet: %s", path)
	}
	return raw, nil
}

const acVoteShareFixture = "Vote Share Target 2025\n" +
	"Zone\tOrg\tAC\tLSG VS\tLSG Votes\tGE VS\tGE Votes\tTarget VS\tTarget Votes\n" +
	"Thiruvananthapuram\tTVM City\tTVM North\t19.13%\t920488\t25.23%\t1078764\t31.99%\t1889715\n" +
	"Thiruvananthapuram\tTVM City\tKazhakkoottam\t21.05%\t84210\t24.80%\t99120\t30.00%\t120540\n" +
	"Thiruvananthapuram\tTVM City\tNemom\tNA\tNA\t28.12%\t88450\t33.50%\t105300\n"

const mandalVoteShareFixture = "Vote Share Target 2025\n" +
	"Zone\tOrg\tAC\tMandal\tLSG VS\tLSG Votes\tGE VS\tGE Votes\tTarget VS\tTarget Votes\n" +
	"Thiruvananthapuram\tTVM City\tKazhakkoottam\tKulathoor\t18.20%\t15230\t22.10%\t18470\t27.00%\t22900\n" +
	"Thiruvananthapuram\tTVM City\tKazhakkoottam\tSreekaryam\t16.75%\t14020\t20.95%\t17510\t26.50%\t22110\n"

const localBodyVoteShareFixture = "Vote Share Target 2025\n" +
	"Zone\tOrg\tAC\tMandal\tLocal Body\tLSG VS\tLSG Votes\tGE VS\tGE Votes\tTarget VS\tTarget Votes\n" +
	"Thiruvananthapuram\tTVM City\tKazhakkoottam\tKulathoor\tKulathoor Panchayat\t17.90%\t5120\t21.30%\t6080\t26.00%\t7420\n"

const orgVoteShareFixture = "Vote Share Target 2025\n" +
	"Zone\tOrg\tLSG VS\tLSG Votes\tGE VS\tGE Votes\tTarget VS\tTarget Votes\n" +
	"Thiruvananthapuram\tTVM City\t17.22%\t310540\t21.40%\t385900\t27.30%\t492300\n" +
	"Thiruvananthapuram\tTVM North\t15.84%\t289770\t19.05%\t348510\t24.80%\t453680\n"

const orgTargetFixture = "Target 2025\n" +
	"Zone,Org,Pan Total,Pan Win,Pan Opp,Mun Total,Mun Win,Mun Opp,Corp Total,Corp Win,Corp Opp\n" +
	"Thiruvananthapuram,TVM City,12,5,7,3,1,2,1,1,0\n" +
	"Thiruvananthapuram,TVM North,20,8,12,2,1,1,0,0,0\n"

const acTargetFixture = "Target 2025\n" +
	"Zone,Org,AC,Pan Total,Pan Win,Pan Opp,Mun Total,Mun Win,Mun Opp,Corp Total,Corp Win,Corp Opp\n" +
	"Thiruvananthapuram,TVM City,Kazhakkoottam,6,2,4,1,0,1,0,0,0\n" +
	"Thiruvananthapuram,TVM City,Nemom,5,3,2,1,1,0,0,0,0\n"

const mandalTargetFixture = "Target 2025\n" +
	"Zone,Org,AC,Mandal,Pan Total,Pan Win,Pan Opp,Mun Total,Mun Win,Mun Opp,Corp Total,Corp Win,Corp Opp\n" +
	"Thiruvananthapuram,TVM City,Kazhakkoottam,Kulathoor,3,1,2,NA,NA,NA,0,0,0\n" +
	"Thiruvananthapuram,TVM City,Kazhakkoottam,Sreekaryam,2,2,0,1,0,1,0,0,0\n"

const zoneContactFixture = "Zone Contacts\n" +
	"Zone,Incharge Name,Incharge Phone,President Name,President Phone\n" +
	"Thiruvananthapuram,V Suresh,9447000001,S Kumari,9447000002\n" +
	"Kollam,NA,NA,R Nair,9447000003\n"

const orgContactFixture = "Org Contacts\n" +
	"Zone,Org,Incharge Name,Incharge Phone,President Name,President Phone\n" +
	"Thiruvananthapuram,TVM City,P Ramesh,9447000004,L Devi,NA\n"

const mandalContactFixture = "Mandal Contacts\n" +
	"Zone,Org,AC,Mandal,President Name,President Phone,Prabhari Name,Prabhari Phone\n" +
	"Thiruvananthapuram,TVM City,Kazhakkoottam,Kulathoor,A Vijayan,9447000005,B Sindhu,NA\n"

const localBodyContactFixture = "Local Body Contacts\n" +
	"Zone,Org,AC,Mandal,Local Body,President Name,President Phone,Incharge Name,Incharge Phone,Secretary Name,Secretary Phone\n" +
	"Thiruvananthapuram,TVM City,Kazhakkoottam,Kulathoor,Kulathoor Panchayat,C Mohan,9447000006,D Latha,9447000007,NA,NA\n"

const acDataFixture = "AC Data\n" +
	"Zone,Org,AC\n" +
	"Thiruvananthapuram,TVM City,TVM North\n" +
	"Thiruvananthapuram,TVM City,Kazhakkoottam\n" +
	"Thiruvananthapuram,TVM City,Nemom\n" +
	"Thiruvananthapuram,Thiruvananthapuram North,Attingal\n" +
	"Kollam,Kollam East,Punalur\n"

const mandalDataFixture = "Mandal Data\n" +
	"Zone,Org,AC,Mandal,Local Body,Tier\n" +
	"Thiruvananthapuram,TVM City,Kazhakkoottam,Kulathoor,Kulathoor Panchayat,Panchayat\n" +
	"Thiruvananthapuram,TVM City,Kazhakkoottam,Kulathoor,Attipra,Panchayat\n" +
	"Thiruvananthapuram,TVM City,Kazhakkoottam,Sreekaryam,Sreekaryam Municipality,Municipality\n"

func testFixtures() map[string]string {
	return map[string]string{
		acDataSource.Path:             acDataFixture,
		mandalDataSource.Path:         mandalDataFixture,
		orgVoteShareSource.Path:       orgVoteShareFixture,
		acVoteShareSource.Path:        acVoteShareFixture,
		mandalVoteShareSource.Path:    mandalVoteShareFixture,
		localBodyVoteShareSource.Path: localBodyVoteShareFixture,
		orgTargetSource.Path:          orgTargetFixture,
		acTargetSource.Path:           acTargetFixture,
		mandalTargetSource.Path:       mandalTargetFixture,
		zoneContactSource.Path:        zoneContactFixture,
		orgContactSource.Path:         orgContactFixture,
		mandalContactSource.Path:      mandalContactFixture,
		localBodyContactSource.Path:   localBodyContactFixture,
	}
}

func loadedTestStore() *Store {
	store := NewStore(fakeFetcher{files: testFixtures()})
	store.LoadAll(context.Background())
	return store
}
