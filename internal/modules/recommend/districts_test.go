package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistrictOf(t *testing.T) {
	cases := map[string]string{
		"Legazpi City":     "2nd District",
		"tabaco":           "1st District",
		"Polangui, Albay":  "3rd District",
		"Santo Domingo":    "1st District",
		"Rapu-Rapu Island": "2nd District",
		"Somewhere Else":   "",
		"":                 "",
	}
	for municipality, want := range cases {
		assert.Equal(t, want, DistrictOf(municipality), "municipality %q", municipality)
	}
}

func TestDistrictsCoverEveryTableEntry(t *testing.T) {
	assert.Len(t, Districts(), len(districtMunicipalities))
	for _, name := range Districts() {
		fragments := districtMunicipalities[name]
		assert.NotEmpty(t, fragments, name)
		for _, fragment := range fragments {
			assert.True(t, matchesDistrict(name, fragment), "%s should match its own entry %q", name, fragment)
		}
	}
}
