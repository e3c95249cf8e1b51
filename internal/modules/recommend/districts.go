package recommend

import "strings"

// AnyDistrict is the survey value meaning "no district preference".
const AnyDistrict = "Any District"

// districtMunicipalities is the canonical district table for the province.
// Both the scorer and the nearby filter consume this single copy; entity
// municipality/location strings are matched case-insensitively against
// these fragments, so "City" suffixes in stored data still match.
var districtMunicipalities = map[string][]string{
	"1st District": {"Tabaco", "Malilipot", "Malinao", "Tiwi", "Bacacay", "Santo Domingo"},
	"2nd District": {"Legazpi", "Daraga", "Camalig", "Manito", "Rapu-Rapu"},
	"3rd District": {"Ligao", "Oas", "Polangui", "Libon", "Pio Duran", "Guinobatan", "Jovellar"},
}

// Districts returns the known district names.
func Districts() []string {
	return []string{"1st District", "2nd District", "3rd District"}
}

// DistrictOf returns the district whose municipality list matches the given
// municipality or location string, or "" when none matches.
func DistrictOf(municipality string) string {
	for _, name := range Districts() {
		if matchesDistrict(name, municipality) {
			return name
		}
	}
	return ""
}

// matchesDistrict reports whether the entity's municipality/location string
// contains one of the district's municipality fragments.
func matchesDistrict(district, municipality string) bool {
	fragments, ok := districtMunicipalities[district]
	if !ok {
		return false
	}
	haystack := strings.ToLower(strings.TrimSpace(municipality))
	if haystack == "" {
		return false
	}
	for _, fragment := range fragments {
		if strings.Contains(haystack, strings.ToLower(fragment)) {
			return true
		}
	}
	return false
}
