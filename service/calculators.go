package service

import "errors"

var (
	ErrZeroIncome    = errors.New("monthly income is zero")
	ErrZeroHomeValue = errors.New("home value is zero")
)

// DebtToIncome returns the applicant's monthly debt-to-income ratio.
// Negative inputs are the caller's responsibility to validate.
func DebtToIncome(monthlyDebt, monthlyIncome float64) (float64, error) {
	if monthlyIncome == 0 {
		return 0, ErrZeroIncome
	}
	return monthlyDebt / monthlyIncome, nil
}

// LoanToValue returns the loan-to-value ratio for the desired loan
// against the estimated home value.
func LoanToValue(loanAmount, homeValue float64) (float64, error) {
	if homeValue == 0 {
		return 0, ErrZeroHomeValue
	}
	return loanAmount / homeValue, nil
}
