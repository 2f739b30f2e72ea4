package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"loan-qualifier/domain"
)

// offerFieldCount is the positional column count of a rate-sheet row.
const offerFieldCount = 6

// csvHeader is emitted on save and skipped (not validated) on load.
var csvHeader = []string{
	"Lender",
	"Max Loan Amount",
	"Max LTV",
	"Max DTI",
	"Min Credit Score",
	"Interest Rate",
}

// CSVRateSheet is a RateSheetRepository backed by delimited text files.
type CSVRateSheet struct{}

func NewCSVRateSheet() *CSVRateSheet {
	return &CSVRateSheet{}
}

// Load reads the rate sheet at path. The first row is a header and is
// skipped; every following row maps positionally to a LoanOffer.
func (c *CSVRateSheet) Load(path string) ([]domain.LoanOffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rate sheet %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = offerFieldCount

	// Saltar la cabecera
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return []domain.LoanOffer{}, nil
		}
		return nil, fmt.Errorf("reading rate sheet header: %w", err)
	}

	offers := []domain.LoanOffer{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading rate sheet %s: %w", path, err)
		}
		offer, err := parseOffer(record)
		if err != nil {
			return nil, fmt.Errorf("rate sheet %s line %d: %w", path, line, err)
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// Save writes offers to path as a rate sheet, header row included.
func (c *CSVRateSheet) Save(path string, offers []domain.LoanOffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, offer := range offers {
		record := []string{
			offer.Lender,
			formatFloat(offer.MaxLoanAmount),
			formatFloat(offer.MaxLoanToValue),
			formatFloat(offer.MaxDebtToIncome),
			strconv.Itoa(offer.MinCreditScore),
			formatFloat(offer.InterestRate),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing offer %s: %w", offer.Lender, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing output file %s: %w", path, err)
	}
	return nil
}

func parseOffer(record []string) (domain.LoanOffer, error) {
	maxAmount, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return domain.LoanOffer{}, fmt.Errorf("invalid max loan amount %q: %w", record[1], err)
	}
	maxLTV, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return domain.LoanOffer{}, fmt.Errorf("invalid max LTV %q: %w", record[2], err)
	}
	maxDTI, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return domain.LoanOffer{}, fmt.Errorf("invalid max DTI %q: %w", record[3], err)
	}
	minScore, err := strconv.Atoi(record[4])
	if err != nil {
		return domain.LoanOffer{}, fmt.Errorf("invalid min credit score %q: %w", record[4], err)
	}
	rate, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return domain.LoanOffer{}, fmt.Errorf("invalid interest rate %q: %w", record[5], err)
	}
	return domain.LoanOffer{
		Lender:          record[0],
		MaxLoanAmount:   maxAmount,
		MaxLoanToValue:  maxLTV,
		MaxDebtToIncome: maxDTI,
		MinCreditScore:  minScore,
		InterestRate:    rate,
	}, nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
