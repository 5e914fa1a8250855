package contract

// Request envelope for POST /api/evaluate.
//
// The evaluation service changed its contract over time: the first shape was
// a flat project+borrowers object, the second introduced
// household.borrowers_count, and the current one also mandates the housing
// and financial groups. Only the current shape is emitted here; the builder
// must never mix field sets from different generations.

// EvaluationRequest is the complete application envelope.
type EvaluationRequest struct {
	Project   Project   `json:"project"`
	Household Household `json:"household"`
	Housing   Housing   `json:"housing"`
	Financial Financial `json:"financial"`
}

// Project describes the property purchase.
type Project struct {
	PropertyPrice        Number `json:"property_price"`
	PropertyType         string `json:"property_type"`
	PersonalContribution Number `json:"personal_contribution"`
	LoanDuration         Number `json:"loan_duration"`
}

// Employment describes one borrower's work situation.
type Employment struct {
	Status           string `json:"status"`
	NetMonthlyIncome Number `json:"net_monthly_income"`
	YearsExperience  Number `json:"years_experience"`
	TrialPeriod      bool   `json:"trial_period"`
}

// Borrower is an applicant, main or co-.
type Borrower struct {
	Employment Employment `json:"employment"`
	Age        Number     `json:"age"`
}

// Household groups the applicants. CoBorrower must be absent (not null) when
// there is a single applicant, and BorrowersCount must match its presence.
type Household struct {
	BorrowersCount int       `json:"borrowers_count"`
	MainBorrower   Borrower  `json:"main_borrower"`
	CoBorrower     *Borrower `json:"co_borrower,omitempty"`
	Children       Number    `json:"children"`
}

// Housing is mandated by the contract but not user-editable on the form.
type Housing struct {
	CurrentStatus         string `json:"current_status"`
	MonthlyRent           Number `json:"monthly_rent"`
	CurrentMortgage       Number `json:"current_mortgage"`
	ChangingMainResidence bool   `json:"changing_main_residence"`
}

// ConsumerLoan is one existing consumer credit line.
type ConsumerLoan struct {
	MonthlyPayment Number `json:"monthly_payment"`
}

// Financial groups existing credits and extra income.
type Financial struct {
	ConsumerLoans []ConsumerLoan `json:"consumer_loans"`
	RentalIncome  Number         `json:"rental_income"`
	OtherIncome   Number         `json:"other_income"`
}

// DefaultHousing is the fixed "renting, relocating, no current mortgage"
// group the contract requires even though the form never asks for it.
func DefaultHousing() Housing {
	return Housing{
		CurrentStatus:         "locataire",
		MonthlyRent:           0,
		CurrentMortgage:       0,
		ChangingMainResidence: true,
	}
}

// DefaultFinancial is the fixed "no existing loans, no extra income" group.
func DefaultFinancial() Financial {
	return Financial{
		ConsumerLoans: []ConsumerLoan{},
		RentalIncome:  0,
		OtherIncome:   0,
	}
}
