package service

import (
	"errors"
	"fmt"
	"math"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// EstimateMonthlyPayment returns the monthly payment for amount at the
// given annual interest rate (percent) amortized over termMonths.
func EstimateMonthlyPayment(amount, interestRate float64, termMonths int) (float64, error) {

	// Validar entrada
	if amount <= 0 {
		return 0, errors.New("monto inválido")
	}
	if interestRate < 0 {
		return 0, errors.New("tasa inválida")
	}
	if termMonths < MinTermMonths {
		return 0, errors.New("plazo inválido")
	}
	if termMonths > MaxTermMonths {
		return 0, fmt.Errorf("plazo excede el máximo permitido de %d meses", MaxTermMonths)
	}

	var cuota float64

	if interestRate == 0 {
		cuota = amount / float64(termMonths)
	} else {
		tasaMensual := (interestRate / 100) / 12
		n := float64(termMonths)

		cuota = amount * (tasaMensual /
			(1 - math.Pow(1+tasaMensual, -n)))
	}

	return roundTo2Decimals(cuota), nil
}
