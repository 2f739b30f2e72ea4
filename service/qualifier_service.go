package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"loan-qualifier/domain"
	"loan-qualifier/repository"
)

type QualifierService struct {
	sheets     repository.RateSheetRepository
	cache      repository.CacheRepository
	cacheTTL   time.Duration
	termMonths int
}

// NewQualifierService creates a QualifierService with the given rate-sheet
// repository and cache. A non-positive termMonths falls back to
// DefaultTermMonths.
func NewQualifierService(sheets repository.RateSheetRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	termMonths int,
) *QualifierService {
	if termMonths <= 0 {
		termMonths = DefaultTermMonths
	}
	return &QualifierService{
		sheets:     sheets,
		cache:      cache,
		cacheTTL:   cacheTTL,
		termMonths: termMonths,
	}
}

// Qualify computes the applicant's ratios and narrows offers through the
// four eligibility filters. An empty result is a valid outcome, not an
// error.
func (s *QualifierService) Qualify(
	profile domain.ApplicantProfile,
	offers []domain.LoanOffer,
) (domain.Qualification, error) {

	debtToIncome, err := DebtToIncome(profile.MonthlyDebt, profile.MonthlyIncome)
	if err != nil {
		return domain.Qualification{}, err
	}

	loanToValue, err := LoanToValue(profile.DesiredLoanAmount, profile.HomeValue)
	if err != nil {
		return domain.Qualification{}, err
	}

	filtered := ApplyFilters(offers,
		FilterMaxLoanSize(profile.DesiredLoanAmount),
		FilterCreditScore(profile.CreditScore),
		FilterDebtToIncome(debtToIncome),
		FilterLoanToValue(loanToValue),
	)

	qualified := make([]domain.QualifiedOffer, 0, len(filtered))
	for _, offer := range filtered {
		payment, err := EstimateMonthlyPayment(profile.DesiredLoanAmount, offer.InterestRate, s.termMonths)
		if err != nil {
			// La estimación no es crítica para la calificación
			log.Printf("Warning: failed to estimate payment for %s: %v", offer.Lender, err)
		}
		qualified = append(qualified, domain.QualifiedOffer{
			LoanOffer:               offer,
			EstimatedMonthlyPayment: payment,
		})
	}

	return domain.Qualification{
		DebtToIncome: debtToIncome,
		LoanToValue:  loanToValue,
		Offers:       qualified,
	}, nil
}

// QualifyFromSheet loads the rate sheet at path and qualifies the
// applicant against it, consulting the cache first.
func (s *QualifierService) QualifyFromSheet(
	ctx context.Context,
	path string,
	profile domain.ApplicantProfile,
) (domain.Qualification, error) {

	key := cacheKey(path, profile)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.Qualification
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		// Entradas corruptas se recalculan
		log.Printf("Warning: discarding unreadable cache entry %s", key)
	}

	offers, err := s.sheets.Load(path)
	if err != nil {
		return domain.Qualification{}, err
	}

	result, err := s.Qualify(profile, offers)
	if err != nil {
		return domain.Qualification{}, err
	}

	// Guardar en cache (no crítico si falla)
	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache qualification: %v", err)
		}
	}

	return result, nil
}

func cacheKey(path string, profile domain.ApplicantProfile) string {
	return fmt.Sprintf("qualify:%s:%d:%.2f:%.2f:%.2f:%.2f",
		path,
		profile.CreditScore,
		profile.MonthlyDebt,
		profile.MonthlyIncome,
		profile.DesiredLoanAmount,
		profile.HomeValue,
	)
}
