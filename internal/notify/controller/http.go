package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	"github.com/Madhusudhan63dag/astro-api/internal/notify/domain"
	"github.com/Madhusudhan63dag/astro-api/internal/notify/service"
	"github.com/Madhusudhan63dag/astro-api/internal/platform/validation"
)

type Controller struct {
	comp *service.Composer
	disp *service.Dispatcher
	cfg  config.Config
}

func New(comp *service.Composer, disp *service.Dispatcher, cfg config.Config) *Controller {
	return &Controller{comp: comp, disp: disp, cfg: cfg}
}

func (h *Controller) Register(e *echo.Echo) {
	e.POST("/send-email", h.sendEmail)
	e.POST("/send-astro-email", h.sendAstroEmail)
	e.POST("/pending-payment-email", h.pendingPaymentEmail)
	e.POST("/abandoned-payment-email", h.abandonedPaymentEmail)
	e.POST("/abandoned-match-email", h.abandonedMatchEmail)
	e.POST("/send-match-horoscope", h.sendMatchHoroscope)
}

type contactReq struct {
	Subject     string `json:"subject"`
	Message     string `json:"message" validate:"required"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Domain      string `json:"domain"`
	ProductName string `json:"productName"`
}

// Send Email godoc
// @Summary      Relay contact form submission
// @Description  Forwards a contact form message to the admin inbox
// @Tags         notify
// @Accept       json
// @Produce      json
// @Param        body  body  contactReq  true  "contact form fields"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /send-email [post]
func (h *Controller) sendEmail(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return badJSON(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Message is required",
			"error":   validation.ErrorResponse(err).Error,
		})
	}

	note, err := h.comp.Contact(service.ContactInput{
		Subject:     req.Subject,
		Message:     req.Message,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Domain:      req.Domain,
		ProductName: req.ProductName,
	})
	if err == nil {
		err = h.disp.Dispatch(c.Request().Context(), "send-email", []domain.Notification{note})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Email sending failed!",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Email sent successfully!",
	})
}

type astroReq struct {
	Name            string                 `json:"name" validate:"required"`
	Email           string                 `json:"email" validate:"required"`
	Phone           string                 `json:"phone" validate:"required"`
	Service         string                 `json:"service"`
	ReportType      string                 `json:"reportType"`
	BirthDetails    *domain.BirthDetails   `json:"birthDetails"`
	Language        string                 `json:"language"`
	AdditionalInfo  string                 `json:"additionalInfo"`
	SpecialRequests string                 `json:"specialRequests"`
	PaymentDetails  *domain.PaymentDetails `json:"paymentDetails"`
}

// Send Astro Email godoc
// @Summary      Confirm paid astrology service request
// @Description  Sends the admin work order and the customer order confirmation
// @Tags         notify
// @Accept       json
// @Produce      json
// @Param        body  body  astroReq  true  "service request fields"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /send-astro-email [post]
func (h *Controller) sendAstroEmail(c echo.Context) error {
	var req astroReq
	if err := c.Bind(&req); err != nil {
		return badJSON(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Name, email, and phone are required fields",
		})
	}

	svc := domain.Resolve(req.Service, domain.DefaultConsultation)
	requestID := req.PaymentDetails.OrderRef()
	if requestID == "" {
		requestID = domain.NewRequestID(time.Now())
	}

	notes, err := h.comp.AstroConfirmation(service.AstroInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Service:         svc,
		ReportType:      req.ReportType,
		Language:        req.Language,
		AdditionalInfo:  req.AdditionalInfo,
		SpecialRequests: req.SpecialRequests,
		BirthDetails:    req.BirthDetails,
		PaymentDetails:  req.PaymentDetails,
		RequestID:       requestID,
	})
	if err == nil {
		err = h.disp.Dispatch(c.Request().Context(), "send-astro-email", notes)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to process astrology service request!",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"message":     "Astrology service request submitted successfully!",
		"serviceType": svc.Name,
		"requestId":   requestID,
		"emailsSent": map[string]any{
			"adminEmail":    h.cfg.AdminEmail,
			"customerEmail": req.Email,
		},
	})
}

type pendingReq struct {
	Name           string                 `json:"name" validate:"required"`
	Email          string                 `json:"email" validate:"required"`
	Phone          string                 `json:"phone" validate:"required"`
	Service        string                 `json:"service"`
	BirthDetails   *domain.BirthDetails   `json:"birthDetails"`
	Language       string                 `json:"language"`
	PaymentDetails *domain.PaymentDetails `json:"paymentDetails"`
}

// Pending Payment Email godoc
// @Summary      Alert admin of a processing failure after payment
// @Description  Sends a critical alert when a paid request could not be processed automatically
// @Tags         notify
// @Accept       json
// @Produce      json
// @Param        body  body  pendingReq  true  "failed request fields"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /pending-payment-email [post]
func (h *Controller) pendingPaymentEmail(c echo.Context) error {
	var req pendingReq
	if err := c.Bind(&req); err != nil {
		return badJSON(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Name, email, and phone are required fields",
		})
	}

	svc := domain.Resolve(req.Service, domain.DefaultBirthChart)
	requestID := req.PaymentDetails.OrderRef()
	if requestID == "" {
		requestID = domain.NewRequestID(time.Now())
	}

	note, err := h.comp.PendingPayment(service.AstroInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Service:        svc,
		Language:       req.Language,
		BirthDetails:   req.BirthDetails,
		PaymentDetails: req.PaymentDetails,
		RequestID:      requestID,
	})
	if err == nil {
		err = h.disp.Dispatch(c.Request().Context(), "pending-payment-email", []domain.Notification{note})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to send critical failure notification!",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Critical processing failure notification sent successfully!",
		"requestId": requestID,
	})
}

type abandonedReq struct {
	Name              string               `json:"name" validate:"required"`
	Email             string               `json:"email" validate:"required"`
	Phone             string               `json:"phone" validate:"required"`
	Service           string               `json:"service"`
	BirthDetails      *domain.BirthDetails `json:"birthDetails"`
	Language          string               `json:"language"`
	AbandonmentReason string               `json:"abandonmentReason"`
	SessionData       *domain.SessionData  `json:"sessionData"`
}

// Abandoned Payment Email godoc
// @Summary      Alert admin of an abandoned checkout
// @Description  Captures a lead whose customer left before paying
// @Tags         notify
// @Accept       json
// @Produce      json
// @Param        body  body  abandonedReq  true  "abandoned checkout fields"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /abandoned-payment-email [post]
func (h *Controller) abandonedPaymentEmail(c echo.Context) error {
	var req abandonedReq
	if err := c.Bind(&req); err != nil {
		return badJSON(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Name, email, and phone are required fields",
		})
	}

	leadID := domain.NewRequestID(time.Now())
	note, err := h.comp.AbandonedPayment(service.AbandonedInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Service:      domain.Resolve(req.Service, domain.DefaultConsultation),
		Language:     req.Language,
		BirthDetails: req.BirthDetails,
		Reason:       req.AbandonmentReason,
		Session:      req.SessionData,
		LeadID:       leadID,
	})
	if err == nil {
		err = h.disp.Dispatch(c.Request().Context(), "abandoned-payment-email", []domain.Notification{note})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to send abandoned payment notification!",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":          true,
		"message":          "Abandoned payment notification sent successfully!",
		"customerName":     req.Name,
		"customerEmail":    req.Email,
		"followUpRequired": true,
		"leadId":           leadID,
	})
}

type matchLeadReq struct {
	FormData          *domain.MatchFormData `json:"formData" validate:"required"`
	AbandonmentReason string                `json:"abandonmentReason"`
	SessionData       *domain.SessionData   `json:"sessionData"`
}

// Abandoned Match Email godoc
// @Summary      Alert admin of an abandoned match horoscope flow
// @Description  Captures a compatibility-analysis lead that was never completed
// @Tags         notify
// @Accept       json
// @Produce      json
// @Param        body  body  matchLeadReq  true  "abandoned match fields"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /abandoned-match-email [post]
func (h *Controller) abandonedMatchEmail(c echo.Context) error {
	var req matchLeadReq
	if err := c.Bind(&req); err != nil {
		return badJSON(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Form data is required",
			"error":   validation.ErrorResponse(err).Error,
		})
	}

	leadID := domain.NewRequestID(time.Now())
	note, err := h.comp.AbandonedMatch(service.MatchLeadInput{
		FormData: req.FormData,
		Reason:   req.AbandonmentReason,
		Session:  req.SessionData,
		LeadID:   leadID,
	})
	if err == nil {
		err = h.disp.Dispatch(c.Request().Context(), "abandoned-match-email", []domain.Notification{note})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to send abandoned match notification!",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":          true,
		"message":          "Abandoned match notification sent successfully!",
		"partner1":         partnerName(req.FormData.Partner1),
		"partner2":         partnerName(req.FormData.Partner2),
		"followUpRequired": true,
		"leadId":           leadID,
	})
}

type matchReq struct {
	FormData       *domain.MatchFormData  `json:"formData"`
	CustomerEmail  string                 `json:"customerEmail"`
	CustomerPhone  string                 `json:"customerPhone"`
	Language       string                 `json:"language"`
	PaymentDetails *domain.PaymentDetails `json:"paymentDetails"`
}

// Send Match Horoscope godoc
// @Summary      Process a horoscope matching submission
// @Description  Sends the admin notification and, for customers with an address, the confirmation
// @Tags         notify
// @Accept       json
// @Produce      json
// @Param        body  body  matchReq  true  "match submission fields"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /send-match-horoscope [post]
func (h *Controller) sendMatchHoroscope(c echo.Context) error {
	var req matchReq
	if err := c.Bind(&req); err != nil {
		return badJSON(c, err)
	}
	if err := service.ValidatePartners(req.FormData); err != nil {
		var verr *domain.ValidationError
		resp := map[string]any{
			"success": false,
			"message": "All mandatory partner fields are required",
		}
		if errors.As(err, &verr) {
			resp["error"] = verr.Field
		}
		return c.JSON(http.StatusBadRequest, resp)
	}

	paid := req.PaymentDetails.Paid()
	requestID := req.PaymentDetails.OrderRef()
	if requestID == "" {
		requestID = domain.NewRequestID(time.Now())
	}

	notes, err := h.comp.Match(service.MatchInput{
		FormData:       req.FormData,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		Language:       req.Language,
		PaymentDetails: req.PaymentDetails,
		RequestID:      requestID,
	})
	if err == nil {
		err = h.disp.Dispatch(c.Request().Context(), "send-match-horoscope", notes)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to process match-horoscope request",
			"error":   err.Error(),
		})
	}

	message := "Match-horoscope request received successfully"
	serviceType := "Free Horoscope Matching"
	if paid {
		message = "Paid horoscope matching request processed successfully!"
		serviceType = "Paid Horoscope Matching"
	}
	resp := map[string]any{
		"success":         true,
		"message":         message,
		"serviceType":     serviceType,
		"partner1":        req.FormData.Partner1.Name,
		"partner2":        req.FormData.Partner2.Name,
		"contactProvided": req.CustomerEmail != "" || req.CustomerPhone != "",
		"requestId":       requestID,
	}
	if paid {
		resp["emailsSent"] = map[string]any{
			"adminEmail":    h.cfg.AdminEmail,
			"customerEmail": req.CustomerEmail,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func badJSON(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		"success": false,
		"message": "Invalid JSON format in request body",
		"error":   err.Error(),
	})
}

func partnerName(p *domain.Partner) string {
	if p == nil || p.Name == "" {
		return "Unknown"
	}
	return p.Name
}
