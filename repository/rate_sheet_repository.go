package repository

import "loan-qualifier/domain"

// RateSheetRepository loads bank rate sheets and saves qualifying results.
type RateSheetRepository interface {
	Load(path string) ([]domain.LoanOffer, error)
	Save(path string, offers []domain.LoanOffer) error
}
