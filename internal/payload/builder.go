// Package payload maps a form snapshot onto the evaluation service's
// current request envelope.
package payload

import (
	"github.com/dossierimmo/form-gateway/internal/contract"
	"github.com/dossierimmo/form-gateway/internal/form"
)

// Build produces the evaluation envelope from the current field values.
// Pure: same snapshot in, structurally identical envelope out. Enumerated
// fields pass through as opaque strings; the service owns their vocabulary.
func Build(v form.Values) *contract.EvaluationRequest {
	req := &contract.EvaluationRequest{
		Project: contract.Project{
			PropertyPrice:        form.Number(v, form.FieldPropertyPrice),
			PropertyType:         v.Get(form.FieldPropertyType),
			PersonalContribution: form.Number(v, form.FieldContribution),
			LoanDuration:         form.Number(v, form.FieldDuration),
		},
		Household: contract.Household{
			BorrowersCount: 1,
			MainBorrower: borrower(v,
				form.FieldEmploymentStatus,
				form.FieldMonthlyIncome,
				form.FieldYearsExperience,
				form.FieldAge,
			),
			Children: form.Number(v, form.FieldChildren),
		},
		Housing:   contract.DefaultHousing(),
		Financial: contract.DefaultFinancial(),
	}

	// The sentinel keeps the co-borrower group entirely out of the envelope;
	// its fields are not even read in that case.
	if status := v.Get(form.FieldCoStatus); status != "" && status != form.CoBorrowerNone {
		co := borrower(v,
			form.FieldCoStatus,
			form.FieldCoMonthlyIncome,
			form.FieldCoYearsExperience,
			form.FieldCoAge,
		)
		req.Household.CoBorrower = &co
		req.Household.BorrowersCount = 2
	}

	req.Financial.ConsumerLoans = consumerLoans(v, req.Household.CoBorrower != nil)

	return req
}

func borrower(v form.Values, statusField, incomeField, experienceField, ageField string) contract.Borrower {
	return contract.Borrower{
		Employment: contract.Employment{
			Status:           v.Get(statusField),
			NetMonthlyIncome: form.Number(v, incomeField),
			YearsExperience:  form.Number(v, experienceField),
			// Trial period is not asked on the form; always submitted as false.
			TrialPeriod: false,
		},
		Age: form.Number(v, ageField),
	}
}

// consumerLoans collects the declared monthly credit payments. Empty or zero
// fields leave the default "no existing loans" shape intact; the co-borrower
// credit field is only read when a co-borrower is included.
func consumerLoans(v form.Values, withCoBorrower bool) []contract.ConsumerLoan {
	loans := []contract.ConsumerLoan{}

	fields := []string{form.FieldCreditPayment}
	if withCoBorrower {
		fields = append(fields, form.FieldCoCreditPayment)
	}

	for _, field := range fields {
		if v.Get(field) == "" {
			continue
		}
		if payment := form.Number(v, field); float64(payment) > 0 {
			loans = append(loans, contract.ConsumerLoan{MonthlyPayment: payment})
		}
	}

	return loans
}
