package ingest

import "strings"

// BoroughUnknown buckets locations whose prefix is not in the borough map.
const BoroughUnknown = "Unknown"

// boroughByPrefix maps the first letter of a location code to its borough.
var boroughByPrefix = map[rune]string{
	'M': "Manhattan",
	'K': "Brooklyn",
	'Q': "Queens",
	'X': "Bronx",
	'R': "Staten Island",
}

// BoroughForLocation derives the borough from a school location code. Unknown
// prefixes and empty locations map to the Unknown bucket rather than failing.
func BoroughForLocation(location string) string {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return BoroughUnknown
	}
	first := []rune(strings.ToUpper(trimmed))[0]
	if b, ok := boroughByPrefix[first]; ok {
		return b
	}
	return BoroughUnknown
}
