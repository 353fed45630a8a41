package calc

import "errors"

var (
	// ErrInvalidInput marks loan parameters that make the calculation
	// undefined: non-positive principal or term, negative rate.
	ErrInvalidInput = errors.New("invalid loan input")

	// ErrInvalidPayment marks a payment too small to cover the first
	// period's interest, so the balance can never amortize to zero.
	ErrInvalidPayment = errors.New("payment does not cover interest")
)
