package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	evdomain "github.com/Madhusudhan63dag/astro-api/internal/events/domain"
	"github.com/Madhusudhan63dag/astro-api/internal/metrics"
	"github.com/Madhusudhan63dag/astro-api/internal/payments/service"
	"github.com/Madhusudhan63dag/astro-api/internal/platform/validation"
)

type Controller struct {
	svc *service.Service
	cfg config.Config
	pub evdomain.Publisher
}

func New(svc *service.Service, cfg config.Config) *Controller {
	return &Controller{svc: svc, cfg: cfg}
}

func (h *Controller) WithPublisher(pub evdomain.Publisher) *Controller {
	h.pub = pub
	return h
}

func (h *Controller) Register(e *echo.Echo) {
	e.POST("/create-order", h.createOrder)
	e.POST("/verify-payment", h.verifyPayment)
}

type createOrderReq struct {
	Amount   float64        `json:"amount" validate:"required,gt=0"`
	Currency string         `json:"currency"`
	Receipt  string         `json:"receipt"`
	Notes    map[string]any `json:"notes"`
}

// Create Order godoc
// @Summary      Create payment order
// @Description  Creates a Razorpay order for checkout initialization
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  createOrderReq  true  "amount in rupees"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /create-order [post]
func (h *Controller) createOrder(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid JSON format in request body",
			"error":   err.Error(),
		})
	}
	if err := c.Validate(&req); err != nil {
		metrics.IncOrder("failure")
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Amount is required",
			"error":   validation.ErrorResponse(err).Error,
		})
	}

	order, err := h.svc.CreateOrder(c.Request().Context(), req.Amount, req.Currency, req.Receipt, req.Notes)
	if err != nil {
		metrics.IncOrder("failure")
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to create order",
			"error":   err.Error(),
		})
	}
	metrics.IncOrder("success")
	h.publish(c, "payments.order.created", map[string]string{
		"order_id": order.ID,
		"receipt":  order.Receipt,
		"currency": order.Currency,
	})
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"order":   order,
		"key":     h.cfg.RazorpayKeyID,
	})
}

type verifyPaymentReq struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// Verify Payment godoc
// @Summary      Verify payment signature
// @Description  Recomputes the checkout callback HMAC and compares with the supplied signature
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  verifyPaymentReq  true  "gateway callback fields"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /verify-payment [post]
func (h *Controller) verifyPayment(c echo.Context) error {
	var req verifyPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid JSON format in request body",
			"error":   err.Error(),
		})
	}

	if !service.VerifySignature(req.OrderID, req.PaymentID, req.Signature, h.cfg.RazorpayKeySecret) {
		metrics.IncVerify("failure")
		h.publish(c, "payments.verify.failed", map[string]string{
			"order_id":   req.OrderID,
			"payment_id": req.PaymentID,
		})
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Payment verification failed",
		})
	}
	metrics.IncVerify("success")
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Payment verification successful",
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}

func (h *Controller) publish(c echo.Context, eventType string, meta map[string]string) {
	if h.pub == nil {
		return
	}
	_ = h.pub.Publish(c.Request().Context(), evdomain.New(eventType, meta))
}
