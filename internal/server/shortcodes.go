package server

import (
	"fmt"
	"strings"
)

// shortCodes maps the query-parameter short codes to catalog show names.
var shortCodes = map[string]string{
	"dclot": "DC Legends of Tomorrow",
	"tf":    "The Flash",
	"a":     "Arrow",
	"sg":    "Supergirl",
	"bw":    "Batwoman",
	"bl":    "Black Lightning",
}

// mapShortCodes resolves a comma-separated shownames parameter to the set of
// full show names it selects. Codes match case-insensitively; an unknown code
// is an error.
func mapShortCodes(raw string) (map[string]bool, error) {
	selected := make(map[string]bool)
	for _, code := range strings.Split(raw, ",") {
		name, ok := shortCodes[strings.ToLower(strings.TrimSpace(code))]
		if !ok {
			return nil, fmt.Errorf("unknown show code %q", code)
		}
		selected[name] = true
	}
	return selected, nil
}
