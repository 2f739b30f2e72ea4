package domain

// ApplicantProfile holds the financial information collected for one
// qualification run. It is never persisted.
type ApplicantProfile struct {
	CreditScore       int     `json:"credit_score"`
	MonthlyDebt       float64 `json:"monthly_debt"`
	MonthlyIncome     float64 `json:"monthly_income"`
	DesiredLoanAmount float64 `json:"desired_loan_amount"`
	HomeValue         float64 `json:"home_value"`
}

// QualifiedOffer is a rate-sheet offer the applicant qualifies for,
// annotated with the estimated monthly payment for the desired amount.
type QualifiedOffer struct {
	LoanOffer
	EstimatedMonthlyPayment float64 `json:"estimated_monthly_payment"`
}

type Qualification struct {
	DebtToIncome float64          `json:"debt_to_income"`
	LoanToValue  float64          `json:"loan_to_value"`
	Offers       []QualifiedOffer `json:"offers"`
}

// LoanOffers returns the qualifying offers without payment annotations,
// in rate-sheet row form.
func (q Qualification) LoanOffers() []LoanOffer {
	offers := make([]LoanOffer, 0, len(q.Offers))
	for _, o := range q.Offers {
		offers = append(offers, o.LoanOffer)
	}
	return offers
}
