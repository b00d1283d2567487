package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeACKnownVariant(t *testing.T) {
	assert.Equal(t, "Kazhakkoottam", NormalizeAC("Kazhakoottam"))
	assert.Equal(t, "Vattiyoorkavu", NormalizeAC("Vattiyurkavu"))
	assert.Equal(t, "Nemom", NormalizeAC("Nemom "))
}

func TestNormalizeACUnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "XYZ", NormalizeAC("XYZ"))
	assert.Equal(t, "", NormalizeAC(""))
}

func TestNormalizeACCaseInsensitiveFallback(t *testing.T) {
	assert.Equal(t, "Kazhakkoottam", NormalizeAC("kazhakoottam"))
	assert.Equal(t, "Kazhakkoottam", NormalizeAC("KAZHAKKOOTTAM"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Kazhakoottam", "Kazhakkoottam", "XYZ", "TVM City",
		"Thiruvananthapuram", "Trivandrum", "kollam east",
	}
	for _, in := range inputs {
		assert.Equal(t, NormalizeAC(NormalizeAC(in)), NormalizeAC(in), "AC: %q", in)
		assert.Equal(t, NormalizeOrg(NormalizeOrg(in)), NormalizeOrg(in), "Org: %q", in)
		assert.Equal(t, NormalizeZone(NormalizeZone(in)), NormalizeZone(in), "Zone: %q", in)
	}
}

func TestNormalizeOrg(t *testing.T) {
	assert.Equal(t, "Thiruvananthapuram City", NormalizeOrg("TVM City"))
	assert.Equal(t, "Thiruvananthapuram City", NormalizeOrg("Thiruvananthapuram city"))
	assert.Equal(t, "Ernakulam City", NormalizeOrg("Eranakulam City"))
	assert.Equal(t, "Kollam East", NormalizeOrg("Kollam East "))
	assert.Equal(t, "Some New Org", NormalizeOrg("Some New Org"))
}

// The loaders normalize names from concurrent goroutines during startup;
// run under -race.
func TestNormalizeConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 13; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "Kazhakkoottam", NormalizeAC("kazhakoottam"))
				assert.Equal(t, "Thiruvananthapuram City", NormalizeOrg("TVM City"))
				assert.Equal(t, "Thiruvananthapuram", NormalizeZone("Trivandrum"))
			}
		}()
	}
	wg.Wait()
}

func TestNormalizeZone(t *testing.T) {
	assert.Equal(t, "Thiruvananthapuram", NormalizeZone("Trivandrum"))
	assert.Equal(t, "Kozhikode", NormalizeZone("Calicut"))
	assert.Equal(t, "Ernakulam", NormalizeZone("Kochi"))
	assert.Equal(t, "Wayanad", NormalizeZone("Wayanad"))
}
