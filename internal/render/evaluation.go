package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Evaluation renders a success body into the result-region text block.
// Headline facts are always present, with a placeholder when the service
// omitted them; optional facts produce no line at all when absent.
func Evaluation(body map[string]any) string {
	var lines []string

	score := placeholder
	if n, ok := probeNumber(body, "feasibility_score", "score"); ok {
		score = trimFloat(n)
	}
	label := placeholder
	if s, ok := probeString(body, "status", "rating"); ok {
		label = s
	}
	lines = append(lines, fmt.Sprintf("Score: %s/100 (%s)", score, label))

	if n, ok := probeNumber(body, "monthly_payment", "mensualite"); ok {
		lines = append(lines, fmt.Sprintf("Mensualité (estimée): %.2f €", n))
	} else {
		lines = append(lines, "Mensualité (estimée): "+placeholder)
	}

	// Budget and debt ratio were never both returned; the newer budget field
	// takes precedence when they are.
	if n, ok := probeNumber(body, "total_budget"); ok {
		lines = append(lines, fmt.Sprintf("Budget total: %.2f €", n))
	} else if n, ok := probeNumber(body, "debt_ratio"); ok {
		lines = append(lines, fmt.Sprintf("Taux d'endettement: %.2f %%", n*100))
	}

	if n, ok := probeNumber(body, "current_interest_rate", "interest_rate", "rate"); ok {
		lines = append(lines, fmt.Sprintf("Taux utilisé: %.2f %%", n*100))
	}

	if recs, ok := probeList(body, "recommendations"); ok {
		lines = append(lines, "Recommandations: "+strings.Join(recs, ", "))
	}

	if id, ok := probeString(body, "application_id", "dossier_id", "id"); ok {
		lines = append(lines, "Dossier: "+id)
		lines = append(lines, "Rapport PDF: /api/dossier/"+id+"/pdf")
	}

	return strings.Join(lines, "\n")
}

// ServiceError renders a validation failure (HTTP status >= 400) with the
// structured body as received, re-indented when it parses as JSON. It is
// never mapped onto the success line format.
func ServiceError(status int, body []byte) string {
	text := strings.TrimSpace(string(body))

	var parsed any
	if err := json.Unmarshal(body, &parsed); err == nil {
		if pretty, err := json.MarshalIndent(parsed, "", "  "); err == nil {
			text = string(pretty)
		}
	}

	return fmt.Sprintf("Erreur (%d): %s", status, text)
}

// TransportError renders a failure where no response was obtained at all.
func TransportError(err error) string {
	return "Erreur: " + err.Error()
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
