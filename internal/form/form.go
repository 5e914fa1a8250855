package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/dossierimmo/form-gateway/internal/contract"
)

// Field names as the dossier page names its inputs.
const (
	FieldPropertyPrice    = "prix_bien"
	FieldPropertyType     = "type_bien"
	FieldContribution     = "apport"
	FieldDuration         = "duree"
	FieldEmploymentStatus = "statut_emploi"
	FieldMonthlyIncome    = "revenus"
	FieldYearsExperience  = "anciennete"
	FieldAge              = "age"
	FieldChildren         = "enfants"
	FieldCreditPayment    = "credit_mensualite"

	FieldCoStatus          = "co_statut"
	FieldCoMonthlyIncome   = "co_revenus"
	FieldCoYearsExperience = "co_anciennete"
	FieldCoAge             = "co_age"
	FieldCoCreditPayment   = "co_credit_mensualite"
)

// CoBorrowerNone is the sentinel on FieldCoStatus meaning "no second
// borrower". An absent field reads as empty and counts as the sentinel too.
const CoBorrowerNone = "aucun"

// Values returns the current string value of a named form field.
// url.Values satisfies it directly.
type Values interface {
	Get(name string) string
}

// MapValues adapts a plain map for tests and one-shot invocations.
type MapValues map[string]string

func (m MapValues) Get(name string) string {
	return m[name]
}

// Number coerces a field the way the page did: empty or malformed input
// becomes NaN and is forwarded as-is, never rejected locally.
func Number(v Values, name string) contract.Number {
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Get(name)), 64)
	if err != nil {
		return contract.Number(math.NaN())
	}
	return contract.Number(f)
}
