package cli

import (
	"fmt"
	"io"
	"strconv"

	"loan-qualifier/config"
	"loan-qualifier/domain"
	"loan-qualifier/repository"
	"loan-qualifier/service"
)

// Session drives one interactive qualification run: load the rate sheet,
// collect the applicant profile, filter, report and optionally save.
type Session struct {
	prompter  Prompter
	sheets    repository.RateSheetRepository
	qualifier *service.QualifierService
	cfg       config.AppConfig
	out       io.Writer
}

func NewSession(prompter Prompter,
	sheets repository.RateSheetRepository,
	qualifier *service.QualifierService,
	cfg config.AppConfig,
	out io.Writer,
) *Session {
	return &Session{
		prompter:  prompter,
		sheets:    sheets,
		qualifier: qualifier,
		cfg:       cfg,
		out:       out,
	}
}

// Run executes the session. Input errors are terminal: a non-numeric
// answer or a zero income/home value propagates out without a retry
// prompt.
func (s *Session) Run() error {
	offers, err := s.loadRateSheet()
	if err != nil {
		return err
	}

	profile, err := s.collectApplicant()
	if err != nil {
		return err
	}

	qualification, err := s.qualifier.Qualify(profile, offers)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "The monthly debt to income ratio is %.2f\n", qualification.DebtToIncome)
	fmt.Fprintf(s.out, "The loan to value ratio is %.2f.\n", qualification.LoanToValue)
	fmt.Fprintf(s.out, "Found %d qualifying loans.\n", len(qualification.Offers))

	for _, offer := range qualification.Offers {
		fmt.Fprintf(s.out, "  %s: rate %.2f%%, est. monthly payment $%.2f\n",
			offer.Lender, offer.InterestRate, offer.EstimatedMonthlyPayment)
	}

	if len(qualification.Offers) == 0 {
		fmt.Fprintln(s.out, "There are no qualifying loans to save.")
		s.farewell()
		return nil
	}

	save, err := s.prompter.Confirm("Do you want to save your qualifying loans results?")
	if err != nil {
		return err
	}
	if !save {
		s.farewell()
		return nil
	}

	path, err := s.prompter.Text("Enter a file path to save the qualifying loans (.csv):")
	if err != nil {
		return err
	}
	if path == "" {
		path = s.cfg.Output
	}

	if err := s.sheets.Save(path, qualification.LoanOffers()); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Saved %d qualifying loans to %s.\n", len(qualification.Offers), path)

	s.farewell()
	return nil
}

func (s *Session) loadRateSheet() ([]domain.LoanOffer, error) {
	path, err := s.prompter.Text("Enter a file path to a rate-sheet (.csv):")
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = s.cfg.RateSheet
	}
	return s.sheets.Load(path)
}

func (s *Session) collectApplicant() (domain.ApplicantProfile, error) {
	creditScore, err := s.askInt("What's your credit score?")
	if err != nil {
		return domain.ApplicantProfile{}, err
	}
	monthlyDebt, err := s.askFloat("What's your current amount of monthly debt?")
	if err != nil {
		return domain.ApplicantProfile{}, err
	}
	monthlyIncome, err := s.askFloat("What's your total monthly income?")
	if err != nil {
		return domain.ApplicantProfile{}, err
	}
	loanAmount, err := s.askFloat("What's your desired loan amount?")
	if err != nil {
		return domain.ApplicantProfile{}, err
	}
	homeValue, err := s.askFloat("What's your home value?")
	if err != nil {
		return domain.ApplicantProfile{}, err
	}

	return domain.ApplicantProfile{
		CreditScore:       creditScore,
		MonthlyDebt:       monthlyDebt,
		MonthlyIncome:     monthlyIncome,
		DesiredLoanAmount: loanAmount,
		HomeValue:         homeValue,
	}, nil
}

func (s *Session) askInt(message string) (int, error) {
	answer, err := s.prompter.Text(message)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid answer %q: %w", answer, err)
	}
	return value, nil
}

func (s *Session) askFloat(message string) (float64, error) {
	answer, err := s.prompter.Text(message)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid answer %q: %w", answer, err)
	}
	return value, nil
}

func (s *Session) farewell() {
	fmt.Fprintln(s.out, "Thank you for using the Loan Qualifier Application.")
}
