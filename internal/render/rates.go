package render

import (
	"encoding/json"
	"strings"
)

// Rates renders the reference-rates bag verbatim: the table as indented JSON,
// no interpretation of the values, metadata through the usual alias probing.
func Rates(body map[string]any) string {
	lines := []string{"Taux actuels:"}

	table := placeholder
	if raw, ok := probeAny(body, "taux", "rates", "current_rates"); ok {
		if pretty, err := json.MarshalIndent(raw, "", "  "); err == nil {
			table = string(pretty)
		}
	}
	lines = append(lines, table)

	source := placeholder
	if s, ok := probeString(body, "rate_source", "source"); ok {
		source = s
	}
	lines = append(lines, "Source: "+source)

	updated := placeholder
	if s, ok := probeString(body, "rate_last_update", "date_maj", "last_update"); ok {
		updated = s
	}
	lines = append(lines, "Dernière mise à jour: "+updated)

	return strings.Join(lines, "\n")
}
