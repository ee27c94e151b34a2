package domain

import (
	"context"
	"errors"
)

// Order is a payment-gateway-issued record representing an intended charge.
// Amount is in the gateway's minor unit (paise).
type Order struct {
	ID       string         `json:"id"`
	Amount   int64          `json:"amount"`
	Currency string         `json:"currency"`
	Receipt  string         `json:"receipt"`
	Status   string         `json:"status"`
	Notes    map[string]any `json:"notes,omitempty"`
}

// Gateway abstracts the payment provider so tests can substitute a double.
// Amounts are already converted to minor units by the caller.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]any) (Order, error)
}

var (
	// ErrAmountRequired is returned when an order is requested without a positive amount.
	ErrAmountRequired = errors.New("amount is required")
)
