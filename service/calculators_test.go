package service

import (
	"errors"
	"testing"
)

func TestDebtToIncome(t *testing.T) {

	ratio, err := DebtToIncome(2000, 8000)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ratio != 0.25 {
		t.Errorf("expected 0.25, got %v", ratio)
	}
}

func TestDebtToIncome_ZeroIncome(t *testing.T) {

	_, err := DebtToIncome(2000, 0)

	if !errors.Is(err, ErrZeroIncome) {
		t.Errorf("expected ErrZeroIncome, got %v", err)
	}
}

func TestLoanToValue(t *testing.T) {

	ratio, err := LoanToValue(150000, 200000)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ratio != 0.75 {
		t.Errorf("expected 0.75, got %v", ratio)
	}
}

func TestLoanToValue_ZeroHomeValue(t *testing.T) {

	_, err := LoanToValue(150000, 0)

	if !errors.Is(err, ErrZeroHomeValue) {
		t.Errorf("expected ErrZeroHomeValue, got %v", err)
	}
}
