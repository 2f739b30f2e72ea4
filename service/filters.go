package service

import "loan-qualifier/domain"

// Filter narrows a candidate set of offers. Implementations return a new
// slice, never mutate the input and never add rows, so any composition of
// filters is order-independent.
type Filter func(offers []domain.LoanOffer) []domain.LoanOffer

// FilterMaxLoanSize retains offers whose maximum loan amount covers the
// desired loan.
func FilterMaxLoanSize(loanAmount float64) Filter {
	return func(offers []domain.LoanOffer) []domain.LoanOffer {
		kept := make([]domain.LoanOffer, 0, len(offers))
		for _, offer := range offers {
			if loanAmount <= offer.MaxLoanAmount {
				kept = append(kept, offer)
			}
		}
		return kept
	}
}

// FilterCreditScore retains offers whose minimum credit score the
// applicant meets.
func FilterCreditScore(creditScore int) Filter {
	return func(offers []domain.LoanOffer) []domain.LoanOffer {
		kept := make([]domain.LoanOffer, 0, len(offers))
		for _, offer := range offers {
			if creditScore >= offer.MinCreditScore {
				kept = append(kept, offer)
			}
		}
		return kept
	}
}

// FilterDebtToIncome retains offers whose DTI ceiling allows the
// applicant's computed ratio.
func FilterDebtToIncome(debtToIncome float64) Filter {
	return func(offers []domain.LoanOffer) []domain.LoanOffer {
		kept := make([]domain.LoanOffer, 0, len(offers))
		for _, offer := range offers {
			if debtToIncome <= offer.MaxDebtToIncome {
				kept = append(kept, offer)
			}
		}
		return kept
	}
}

// FilterLoanToValue retains offers whose LTV ceiling allows the
// applicant's computed ratio.
func FilterLoanToValue(loanToValue float64) Filter {
	return func(offers []domain.LoanOffer) []domain.LoanOffer {
		kept := make([]domain.LoanOffer, 0, len(offers))
		for _, offer := range offers {
			if loanToValue <= offer.MaxLoanToValue {
				kept = append(kept, offer)
			}
		}
		return kept
	}
}

// ApplyFilters runs each filter in order. An empty result at any stage is
// valid and simply carries through.
func ApplyFilters(offers []domain.LoanOffer, filters ...Filter) []domain.LoanOffer {
	filtered := offers
	for _, filter := range filters {
		filtered = filter(filtered)
	}
	return filtered
}
