package service

const (
	// DefaultTermMonths is the amortization horizon for payment estimates
	// when none is configured.
	DefaultTermMonths = 360 // 30 años

	MaxTermMonths = 600 // 50 años
	MinTermMonths = 1
)
