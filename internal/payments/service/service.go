package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Madhusudhan63dag/astro-api/internal/payments/domain"
)

const defaultCurrency = "INR"

type Service struct {
	gw  domain.Gateway
	now func() time.Time
}

func New(gw domain.Gateway) *Service {
	return &Service{gw: gw, now: time.Now}
}

// CreateOrder converts amount (rupees) to the gateway's minor unit, applies the
// currency and receipt defaults, and forwards to the gateway. Failures are
// surfaced to the caller untouched; there is no retry.
func (s *Service) CreateOrder(ctx context.Context, amount float64, currency, receipt string, notes map[string]any) (domain.Order, error) {
	if amount <= 0 {
		return domain.Order{}, domain.ErrAmountRequired
	}
	if currency == "" {
		currency = defaultCurrency
	}
	if receipt == "" {
		receipt = fmt.Sprintf("receipt_%d", s.now().UnixMilli())
	}
	amountMinor := int64(math.Round(amount * 100))
	return s.gw.CreateOrder(ctx, amountMinor, currency, receipt, notes)
}
