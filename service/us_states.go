package services

import "strings"

var usStateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
	"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

// usStateCodes is the reverse of usStateNames, keyed by lower-case name.
var usStateCodes = func() map[string]string {
	m := make(map[string]string, len(usStateNames))
	for code, name := range usStateNames {
		m[strings.ToLower(name)] = code
	}
	return m
}()

// resolveState accepts either a postal code or a full name and returns both.
// Unknown values come back as the name with an empty code.
func resolveState(s string) (name, code string) {
	s = strings.TrimSpace(s)
	if n, ok := usStateNames[strings.ToUpper(s)]; ok {
		return n, strings.ToUpper(s)
	}
	if c, ok := usStateCodes[strings.ToLower(s)]; ok {
		return usStateNames[c], c
	}
	return s, ""
}
