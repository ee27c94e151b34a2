package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhusudhan63dag/astro-api/internal/payments/domain"
)

// fakeGateway implements domain.Gateway and records the last request.
type fakeGateway struct {
	amountMinor int64
	currency    string
	receipt     string
	notes       map[string]any
	err         error
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]any) (domain.Order, error) {
	f.amountMinor = amountMinor
	f.currency = currency
	f.receipt = receipt
	f.notes = notes
	if f.err != nil {
		return domain.Order{}, f.err
	}
	return domain.Order{
		ID:       "order_fake",
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func TestCreateOrder_ConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw)

	order, err := s.CreateOrder(context.Background(), 599, "INR", "receipt_1", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(59900), gw.amountMinor)
	assert.Equal(t, int64(59900), order.Amount)

	_, err = s.CreateOrder(context.Background(), 599.99, "INR", "receipt_2", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(59999), gw.amountMinor, "fractional rupees round to the nearest paisa")
}

func TestCreateOrder_Defaults(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw)
	s.now = func() time.Time { return time.UnixMilli(1741945800123) }

	_, err := s.CreateOrder(context.Background(), 100, "", "", map[string]any{"source": "web"})
	require.NoError(t, err)
	assert.Equal(t, "INR", gw.currency)
	assert.Equal(t, "receipt_1741945800123", gw.receipt)
	assert.Equal(t, map[string]any{"source": "web"}, gw.notes)
}

func TestCreateOrder_ExplicitValuesKept(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw)

	_, err := s.CreateOrder(context.Background(), 100, "USD", "custom_receipt", nil)
	require.NoError(t, err)
	assert.Equal(t, "USD", gw.currency)
	assert.Equal(t, "custom_receipt", gw.receipt)
}

func TestCreateOrder_RejectsNonPositiveAmount(t *testing.T) {
	gw := &fakeGateway{}
	s := New(gw)

	_, err := s.CreateOrder(context.Background(), 0, "", "", nil)
	assert.ErrorIs(t, err, domain.ErrAmountRequired)

	_, err = s.CreateOrder(context.Background(), -10, "", "", nil)
	assert.ErrorIs(t, err, domain.ErrAmountRequired)
	assert.Empty(t, gw.receipt, "gateway is never called for invalid amounts")
}

func TestCreateOrder_GatewayErrorSurfaced(t *testing.T) {
	gw := &fakeGateway{err: fmt.Errorf("gateway down")}
	s := New(gw)

	_, err := s.CreateOrder(context.Background(), 100, "", "", nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "gateway down"))
}
