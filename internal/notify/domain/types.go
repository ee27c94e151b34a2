package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Placeholder text rendered for absent optional fields. Templates always see a
// fully populated record; nothing is conditionally omitted at render time.
const (
	NotProvided  = "Not provided"
	NotSpecified = "Not specified"
	NotAvailable = "N/A"
)

// BirthDetails is display-only data collected with astrology service requests.
type BirthDetails struct {
	DateOfBirth  string `json:"dateOfBirth"`
	TimeOfBirth  string `json:"timeOfBirth"`
	PlaceOfBirth string `json:"placeOfBirth"`
	Gender       string `json:"gender"`
}

// PaymentDetails is display-only payment data echoed into notifications. It is
// never re-verified here; verification happens only on the dedicated route.
type PaymentDetails struct {
	Status    string      `json:"status"`
	Amount    json.Number `json:"amount"`
	PaymentID string      `json:"paymentId"`
	OrderID   string      `json:"orderId"`
}

// Paid reports whether the details represent a completed payment.
func (p *PaymentDetails) Paid() bool {
	return p != nil && p.Status == "paid"
}

// OrderRef returns the gateway order id, or "" when absent.
func (p *PaymentDetails) OrderRef() string {
	if p == nil {
		return ""
	}
	return p.OrderID
}

// AmountOr returns the display amount, or def when absent.
func (p *PaymentDetails) AmountOr(def string) string {
	if p == nil || p.Amount.String() == "" {
		return def
	}
	return p.Amount.String()
}

// SessionData is optional frontend telemetry attached to abandonment alerts.
type SessionData struct {
	TimeOnPage        string `json:"timeOnPage"`
	CompletionLevel   int    `json:"completionLevel"`
	HasUserInteracted bool   `json:"hasUserInteracted"`
}

// TimeOr returns the tracked time on page, or def when absent.
func (s *SessionData) TimeOr(def string) string {
	if s == nil || s.TimeOnPage == "" {
		return def
	}
	return s.TimeOnPage
}

// Completion returns the tracked form completion percentage, or 0.
func (s *SessionData) Completion() int {
	if s == nil {
		return 0
	}
	return s.CompletionLevel
}

// Interacted reports whether the visitor actively engaged with the form.
func (s *SessionData) Interacted() bool {
	return s != nil && s.HasUserInteracted
}

// Partner holds one side of a match-horoscope request.
type Partner struct {
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	TimeOfBirth  string `json:"timeOfBirth"`
	PlaceOfBirth string `json:"placeOfBirth"`
}

// MatchFormData is the nested payload of the match-horoscope routes.
type MatchFormData struct {
	Partner1      *Partner `json:"partner1"`
	Partner2      *Partner `json:"partner2"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
}

// Notification is one composed outbound email. Built fresh per send; it has no
// identity beyond the in-flight request.
type Notification struct {
	To        string
	CC        []string
	ReplyTo   string
	Subject   string
	Body      string
	HTML      bool
	Recipient string // admin | customer, for metrics labels
}

// ValidationError names the first missing required field of a request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// NewRequestID derives the short reference embedded in emails and responses:
// "SAV" followed by the last 8 digits of the unix-millisecond clock.
func NewRequestID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "SAV" + ms
}
