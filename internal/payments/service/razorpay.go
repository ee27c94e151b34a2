package service

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	"github.com/Madhusudhan63dag/astro-api/internal/payments/domain"
)

// Ensure Razorpay implements domain.Gateway
var _ domain.Gateway = (*Razorpay)(nil)

type Razorpay struct {
	client *razorpay.Client
}

func NewRazorpay(cfg config.Config) *Razorpay {
	return &Razorpay{client: razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)}
}

// CreateOrder forwards to the Razorpay Orders API. The SDK does not take a
// context; outbound timeouts are whatever its HTTP client enforces.
func (r *Razorpay) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string, notes map[string]any) (domain.Order, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}
	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("razorpay order create: %w", err)
	}
	return orderFromResponse(body), nil
}

func orderFromResponse(body map[string]interface{}) domain.Order {
	o := domain.Order{
		ID:       asString(body["id"]),
		Currency: asString(body["currency"]),
		Receipt:  asString(body["receipt"]),
		Status:   asString(body["status"]),
	}
	if amt, ok := body["amount"].(float64); ok {
		o.Amount = int64(amt)
	}
	if notes, ok := body["notes"].(map[string]interface{}); ok && len(notes) > 0 {
		o.Notes = notes
	}
	return o
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
