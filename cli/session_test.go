package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"loan-qualifier/config"
	"loan-qualifier/domain"
	"loan-qualifier/repository"
	"loan-qualifier/service"
)

type scriptPrompter struct {
	texts    []string
	confirms []bool
}

func (p *scriptPrompter) Text(message string) (string, error) {
	if len(p.texts) == 0 {
		return "", errors.New("unexpected text prompt: " + message)
	}
	answer := p.texts[0]
	p.texts = p.texts[1:]
	return answer, nil
}

func (p *scriptPrompter) Confirm(message string) (bool, error) {
	if len(p.confirms) == 0 {
		return false, errors.New("unexpected confirm prompt: " + message)
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

type fakeRateSheets struct {
	offers   []domain.LoanOffer
	loadPath string
	savePath string
	saved    []domain.LoanOffer
}

func (f *fakeRateSheets) Load(path string) ([]domain.LoanOffer, error) {
	f.loadPath = path
	return f.offers, nil
}

func (f *fakeRateSheets) Save(path string, offers []domain.LoanOffer) error {
	f.savePath = path
	f.saved = offers
	return nil
}

func testConfig() config.AppConfig {
	return config.AppConfig{
		RateSheet: "data/daily_rate_sheet.csv",
		Output:    "my_bank_loans.csv",
	}
}

func qualifyingOffers() []domain.LoanOffer {
	return []domain.LoanOffer{
		{Lender: "Bank of Big", MaxLoanAmount: 200000, MaxLoanToValue: 0.85, MaxDebtToIncome: 0.47, MinCreditScore: 650, InterestRate: 4.35},
		{Lender: "iBank", MaxLoanAmount: 100000, MaxLoanToValue: 0.9, MaxDebtToIncome: 0.4, MinCreditScore: 720, InterestRate: 3.9},
	}
}

func newTestSession(prompter Prompter, sheets repository.RateSheetRepository, out *bytes.Buffer) *Session {
	qualifier := service.NewQualifierService(sheets, repository.NewMockCache(), time.Minute, 360)
	return NewSession(prompter, sheets, qualifier, testConfig(), out)
}

func TestSessionRun_SaveFlow(t *testing.T) {

	prompter := &scriptPrompter{
		// sheet path (blank = default), applicant answers, output path (blank = default)
		texts:    []string{"", "700", "1000", "4000", "150000", "200000", ""},
		confirms: []bool{true},
	}
	sheets := &fakeRateSheets{offers: qualifyingOffers()}
	out := &bytes.Buffer{}

	session := newTestSession(prompter, sheets, out)

	if err := session.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sheets.loadPath != "data/daily_rate_sheet.csv" {
		t.Errorf("expected default rate-sheet path, got %q", sheets.loadPath)
	}
	if sheets.savePath != "my_bank_loans.csv" {
		t.Errorf("expected default output path, got %q", sheets.savePath)
	}
	if len(sheets.saved) != 1 || sheets.saved[0].Lender != "Bank of Big" {
		t.Errorf("expected Bank of Big saved, got %+v", sheets.saved)
	}
	if !strings.Contains(out.String(), "Found 1 qualifying loans.") {
		t.Errorf("missing count line in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "The monthly debt to income ratio is 0.25") {
		t.Errorf("missing DTI line in output:\n%s", out.String())
	}
}

func TestSessionRun_CustomPaths(t *testing.T) {

	prompter := &scriptPrompter{
		texts:    []string{"sheets/today.csv", "700", "1000", "4000", "150000", "200000", "picked.csv"},
		confirms: []bool{true},
	}
	sheets := &fakeRateSheets{offers: qualifyingOffers()}
	out := &bytes.Buffer{}

	session := newTestSession(prompter, sheets, out)

	if err := session.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sheets.loadPath != "sheets/today.csv" {
		t.Errorf("expected prompted rate-sheet path, got %q", sheets.loadPath)
	}
	if sheets.savePath != "picked.csv" {
		t.Errorf("expected prompted output path, got %q", sheets.savePath)
	}
}

// The empty qualifying set skips the save prompt entirely; an unexpected
// confirm would fail through the script prompter.
func TestSessionRun_NoQualifyingLoans(t *testing.T) {

	prompter := &scriptPrompter{
		texts: []string{"", "500", "3000", "4000", "150000", "200000"},
	}
	sheets := &fakeRateSheets{offers: qualifyingOffers()}
	out := &bytes.Buffer{}

	session := newTestSession(prompter, sheets, out)

	if err := session.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sheets.saved != nil {
		t.Errorf("expected no save, got %+v", sheets.saved)
	}
	if !strings.Contains(out.String(), "There are no qualifying loans to save.") {
		t.Errorf("missing empty-set notice in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Thank you for using the Loan Qualifier Application.") {
		t.Errorf("missing farewell in output:\n%s", out.String())
	}
}

func TestSessionRun_DeclineSave(t *testing.T) {

	prompter := &scriptPrompter{
		texts:    []string{"", "700", "1000", "4000", "150000", "200000"},
		confirms: []bool{false},
	}
	sheets := &fakeRateSheets{offers: qualifyingOffers()}
	out := &bytes.Buffer{}

	session := newTestSession(prompter, sheets, out)

	if err := session.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sheets.saved != nil {
		t.Errorf("expected no save, got %+v", sheets.saved)
	}
}

func TestSessionRun_NonNumericAnswer(t *testing.T) {

	prompter := &scriptPrompter{
		texts: []string{"", "not-a-number"},
	}
	sheets := &fakeRateSheets{offers: qualifyingOffers()}
	out := &bytes.Buffer{}

	session := newTestSession(prompter, sheets, out)

	err := session.Run()

	if err == nil {
		t.Fatalf("expected error for non-numeric answer")
	}
	if sheets.saved != nil {
		t.Errorf("expected no save after input error")
	}
}

func TestSessionRun_ZeroIncome(t *testing.T) {

	prompter := &scriptPrompter{
		texts: []string{"", "700", "1000", "0", "150000", "200000"},
	}
	sheets := &fakeRateSheets{offers: qualifyingOffers()}
	out := &bytes.Buffer{}

	session := newTestSession(prompter, sheets, out)

	err := session.Run()

	if !errors.Is(err, service.ErrZeroIncome) {
		t.Errorf("expected ErrZeroIncome, got %v", err)
	}
}
