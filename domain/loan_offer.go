package domain

// LoanOffer is one row of a bank rate sheet. Field order matches the
// positional CSV layout: lender, max loan amount, max LTV, max DTI,
// min credit score, interest rate. Offers are immutable once loaded.
type LoanOffer struct {
	Lender          string  `json:"lender"`
	MaxLoanAmount   float64 `json:"max_loan_amount"`
	MaxLoanToValue  float64 `json:"max_loan_to_value"`
	MaxDebtToIncome float64 `json:"max_debt_to_income"`
	MinCreditScore  int     `json:"min_credit_score"`
	InterestRate    float64 `json:"interest_rate"`
}
