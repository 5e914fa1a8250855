package render

import (
	"strings"
	"testing"
)

func TestRates_TableAndMetadata(t *testing.T) {
	body := map[string]any{
		"taux":             map[string]any{"20_years": 0.035},
		"rate_source":      "Banque X",
		"rate_last_update": "2024-01-01",
	}

	text := Rates(body)

	for _, want := range []string{
		`"20_years": 0.035`,
		"Source: Banque X",
		"Dernière mise à jour: 2024-01-01",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered text missing %q:\n%s", want, text)
		}
	}
}

func TestRates_LegacyMetadataAliases(t *testing.T) {
	body := map[string]any{
		"rates":    map[string]any{"15": 0.0303},
		"source":   "seloger.com",
		"date_maj": "2024-06-01T09:00:00",
	}

	text := Rates(body)

	if !strings.Contains(text, "Source: seloger.com") {
		t.Errorf("source alias not probed:\n%s", text)
	}
	if !strings.Contains(text, "Dernière mise à jour: 2024-06-01T09:00:00") {
		t.Errorf("date alias not probed:\n%s", text)
	}
}

func TestRates_MissingEverything(t *testing.T) {
	text := Rates(map[string]any{})

	for _, want := range []string{
		"Taux actuels:\n—",
		"Source: —",
		"Dernière mise à jour: —",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered text missing %q:\n%s", want, text)
		}
	}
}
