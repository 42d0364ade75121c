package services

import (
	"strings"
)

// SplitFullName derives given and family names from a single full-name field:
//
//	4+ tokens: first two given, next two family (anything after is dropped)
//	3 tokens:  first two given, third family
//	2 tokens:  first given, second family
//	otherwise: the whole string is the given name
//
// The split is lossy for compound names; callers that can ask for the two parts
// separately should do so.
func SplitFullName(fullName string) (given, family string) {
	tokens := strings.Fields(fullName)
	switch {
	case len(tokens) >= 4:
		return tokens[0] + " " + tokens[1], tokens[2] + " " + tokens[3]
	case len(tokens) == 3:
		return tokens[0] + " " + tokens[1], tokens[2]
	case len(tokens) == 2:
		return tokens[0], tokens[1]
	default:
		return strings.TrimSpace(fullName), ""
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
