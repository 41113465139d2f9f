package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrNoCheckoutURL   = errors.New("backend returned no checkout url")
	ErrAlreadyPaid     = errors.New("booking already paid")
)
