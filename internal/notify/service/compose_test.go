package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	"github.com/Madhusudhan63dag/astro-api/internal/notify/domain"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	}
}

func testComposer() *Composer {
	return NewComposer(config.Config{
		AdminEmail:     "admin@example.com",
		SupportCCEmail: "support@example.com",
		BrandName:      "SriAstroVeda",
	}).WithClock(fixedClock())
}

func TestContact_SubjectSourceSuffix(t *testing.T) {
	c := testComposer()

	n, err := c.Contact(ContactInput{Subject: "Question", Message: "hi", Domain: "example.in"})
	require.NoError(t, err)
	assert.Equal(t, "Question - example.in", n.Subject)

	n, err = c.Contact(ContactInput{Subject: "Question about example.in", Message: "hi", Domain: "example.in"})
	require.NoError(t, err)
	assert.Equal(t, "Question about example.in", n.Subject, "subject already naming the source stays untouched")

	n, err = c.Contact(ContactInput{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Contact Form Submission - SriAstroVeda", n.Subject)
}

func TestContact_ContactBlockDefaults(t *testing.T) {
	c := testComposer()

	n, err := c.Contact(ContactInput{Message: "need help", Name: "Ravi"})
	require.NoError(t, err)
	assert.Contains(t, n.Body, "Name: Ravi")
	assert.Contains(t, n.Body, "Email: Not provided")
	assert.Contains(t, n.Body, "Phone: Not provided")
	assert.Contains(t, n.Body, "Message:\nneed help")

	n, err = c.Contact(ContactInput{Message: "raw only"})
	require.NoError(t, err)
	assert.Equal(t, "raw only", n.Body, "no contact fields means the raw message passes through")
}

func TestAstroConfirmation_DualAndSingle(t *testing.T) {
	c := testComposer()
	in := AstroInput{
		Name:    "Priya",
		Email:   "priya@example.com",
		Phone:   "8888888888",
		Service: domain.Resolve("numerology", domain.DefaultConsultation),
		PaymentDetails: &domain.PaymentDetails{
			Status: "paid", Amount: "599", PaymentID: "pay_1", OrderID: "order_1",
		},
		RequestID: "order_1",
	}

	notes, err := c.AstroConfirmation(in)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "admin", notes[0].Recipient)
	assert.Equal(t, "customer", notes[1].Recipient)
	assert.Equal(t, "priya@example.com", notes[0].ReplyTo)
	assert.Equal(t, []string{"admin@example.com"}, notes[1].CC)
	assert.True(t, notes[0].HTML)

	in.Email = ""
	notes, err = c.AstroConfirmation(in)
	require.NoError(t, err)
	require.Len(t, notes, 1, "without a customer address only admin is notified")
	assert.Equal(t, "admin", notes[0].Recipient)
}

func TestAstroConfirmation_Deterministic(t *testing.T) {
	c := testComposer()
	in := AstroInput{
		Name:      "Priya",
		Email:     "priya@example.com",
		Phone:     "8888888888",
		Service:   domain.Resolve("horoscope", domain.DefaultConsultation),
		RequestID: "SAV12345678",
	}

	a, err := c.AstroConfirmation(in)
	require.NoError(t, err)
	b, err := c.AstroConfirmation(in)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same input and clock must render identical notifications")
}

func TestAstroConfirmation_EscapesUserInput(t *testing.T) {
	c := testComposer()
	in := AstroInput{
		Name:    `<script>alert("x")</script>`,
		Email:   "x@example.com",
		Phone:   "1",
		Service: domain.Resolve("", domain.DefaultConsultation),
	}

	notes, err := c.AstroConfirmation(in)
	require.NoError(t, err)
	assert.NotContains(t, notes[0].Body, "<script>")
	assert.Contains(t, notes[0].Body, "&lt;script&gt;")
}

func TestAstroConfirmation_TimestampIsIST(t *testing.T) {
	c := testComposer()
	notes, err := c.AstroConfirmation(AstroInput{
		Name: "A", Email: "a@example.com", Phone: "1",
		Service: domain.Resolve("", domain.DefaultConsultation),
	})
	require.NoError(t, err)
	// 09:30 UTC is 15:00 IST.
	assert.Contains(t, notes[0].Body, "14/03/2025, 3:00:00 pm")
}

func TestPendingPayment_SubjectAndFallbacks(t *testing.T) {
	c := testComposer()
	n, err := c.PendingPayment(AstroInput{
		Name:    "Sunita",
		Email:   "sunita@example.com",
		Phone:   "2",
		Service: domain.Resolve("", domain.DefaultBirthChart),
		PaymentDetails: &domain.PaymentDetails{
			Status: "paid", Amount: "599", OrderID: "order_crit",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "CRITICAL ALERT - Payment Successful, Processing Failed - Sunita - Order: order_crit", n.Subject)
	assert.Contains(t, n.Body, "Birth Chart Generation")
	assert.Contains(t, n.Body, "Not provided", "absent birth details render placeholders")
}

func TestPendingPayment_NoPaymentDetails(t *testing.T) {
	c := testComposer()
	n, err := c.PendingPayment(AstroInput{
		Name:    "Sunita",
		Email:   "sunita@example.com",
		Phone:   "2",
		Service: domain.Resolve("", domain.DefaultBirthChart),
	})
	require.NoError(t, err)
	assert.Contains(t, n.Subject, "Order: N/A")
}

func TestAbandonedPayment_ReasonDefault(t *testing.T) {
	c := testComposer()
	n, err := c.AbandonedPayment(AbandonedInput{
		Name:    "Kiran",
		Email:   "kiran@example.com",
		Phone:   "3",
		Service: domain.Resolve("career-guidance", domain.DefaultConsultation),
		LeadID:  "SAV00000001",
	})
	require.NoError(t, err)
	assert.Equal(t, "PAYMENT ABANDONMENT ALERT - Kiran - ₹599 - High Priority Lead Recovery Required", n.Subject)
	assert.Contains(t, n.Body, "Not provided")
	assert.Contains(t, n.Body, "Data not available", "untracked sessions render the placeholder")
	assert.Contains(t, n.Body, "SAV00000001")
}

func TestAbandonedPayment_SessionData(t *testing.T) {
	c := testComposer()
	n, err := c.AbandonedPayment(AbandonedInput{
		Name:    "Kiran",
		Email:   "kiran@example.com",
		Phone:   "3",
		Service: domain.Resolve("", domain.DefaultConsultation),
		Session: &domain.SessionData{TimeOnPage: "4 minutes"},
		LeadID:  "SAV00000002",
	})
	require.NoError(t, err)
	assert.Contains(t, n.Body, "4 minutes")
}

func TestAbandonedMatch_NilFormData(t *testing.T) {
	c := testComposer()
	n, err := c.AbandonedMatch(MatchLeadInput{LeadID: "SAV1"})
	require.NoError(t, err)
	assert.Equal(t, "MATCH HOROSCOPE ABANDONMENT - Partner 1 & Partner 2 - Lead Development Opportunity", n.Subject)
	assert.Empty(t, n.ReplyTo)
	assert.Contains(t, n.Body, "0% Complete")
	assert.Contains(t, n.Body, "Not tracked")
	assert.Contains(t, n.Body, "Limited Interaction")
}

func TestAbandonedMatch_SessionTelemetry(t *testing.T) {
	c := testComposer()
	n, err := c.AbandonedMatch(MatchLeadInput{
		FormData: &domain.MatchFormData{
			Partner1:      &domain.Partner{Name: "Arjun"},
			CustomerEmail: "arjun@example.com",
		},
		Session: &domain.SessionData{TimeOnPage: "7 minutes", CompletionLevel: 80, HasUserInteracted: true},
		LeadID:  "SAV2",
	})
	require.NoError(t, err)
	assert.Equal(t, "arjun@example.com", n.ReplyTo)
	assert.Contains(t, n.Body, "80% Complete")
	assert.Contains(t, n.Body, "7 minutes")
	assert.Contains(t, n.Body, "Active Engagement")
}

func TestMatch_PaidVersusFree(t *testing.T) {
	c := testComposer()
	fd := &domain.MatchFormData{
		Partner1: &domain.Partner{Name: "Arjun", DateOfBirth: "1992-05-05", TimeOfBirth: "10:00", PlaceOfBirth: "Pune"},
		Partner2: &domain.Partner{Name: "Meera", DateOfBirth: "1994-08-12", TimeOfBirth: "06:45", PlaceOfBirth: "Nashik"},
	}

	notes, err := c.Match(MatchInput{FormData: fd, RequestID: "SAV2"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "FREE Match-Horoscope Request - Arjun & Meera", notes[0].Subject)

	notes, err = c.Match(MatchInput{
		FormData:      fd,
		CustomerEmail: "arjun@example.com",
		PaymentDetails: &domain.PaymentDetails{
			Status: "paid", Amount: "999", PaymentID: "pay_7", OrderID: "order_m",
		},
		RequestID: "order_m",
	})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "PAID Horoscope Matching - Arjun & Meera - ₹999 - SriAstroVeda", notes[0].Subject)
	assert.Equal(t, "Order Confirmed - Horoscope Matching Analysis - SriAstroVeda (Order: order_m)", notes[1].Subject)
	assert.Equal(t, "arjun@example.com", notes[1].To)
}

func TestMatch_UnpaidStatusIsFree(t *testing.T) {
	c := testComposer()
	fd := &domain.MatchFormData{
		Partner1: &domain.Partner{Name: "A", DateOfBirth: "1", TimeOfBirth: "2", PlaceOfBirth: "3"},
		Partner2: &domain.Partner{Name: "B", DateOfBirth: "1", TimeOfBirth: "2", PlaceOfBirth: "3"},
	}
	notes, err := c.Match(MatchInput{
		FormData:       fd,
		CustomerEmail:  "a@example.com",
		PaymentDetails: &domain.PaymentDetails{Status: "created", OrderID: "order_x"},
		RequestID:      "order_x",
	})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Contains(t, notes[0].Subject, "FREE Match-Horoscope Request")
	assert.Equal(t, "Compatibility Analysis Request Received - SriAstroVeda", notes[1].Subject)
}
