package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	"github.com/Madhusudhan63dag/astro-api/internal/notify/domain"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// ist matches the original notification timestamps (en-IN, Asia/Kolkata).
// A fixed zone avoids depending on the host tz database.
var ist = time.FixedZone("IST", 5*3600+30*60)

// Composer builds recipient-specific notifications from normalized request
// data. Bodies are rendered from typed view records through html/template, so
// user-supplied fields are escaped before they reach the email body.
type Composer struct {
	cfg config.Config
	tpl *template.Template
	now func() time.Time
}

func NewComposer(cfg config.Config) *Composer {
	tpl := template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))
	return &Composer{cfg: cfg, tpl: tpl, now: time.Now}
}

// WithClock overrides the timestamp source, used by tests to pin rendering.
func (c *Composer) WithClock(now func() time.Time) *Composer {
	c.now = now
	return c
}

func (c *Composer) timestamp() string {
	return c.now().In(ist).Format("02/01/2006, 3:04:05 pm")
}

func (c *Composer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := c.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// finalize enforces the outgoing-notification invariant: a notification
// without recipient or subject fails the request instead of being sent.
func finalize(n domain.Notification) (domain.Notification, error) {
	if n.To == "" {
		return domain.Notification{}, fmt.Errorf("notification has no recipient")
	}
	if n.Subject == "" {
		return domain.Notification{}, fmt.Errorf("notification has no subject")
	}
	return n, nil
}

// ContactInput is a generic contact-form relay submission.
type ContactInput struct {
	Subject     string
	Message     string
	Name        string
	Email       string
	Phone       string
	Domain      string
	ProductName string
}

// Contact builds the single admin notification for the contact-form relay.
// The body stays plain text.
func (c *Composer) Contact(in ContactInput) (domain.Notification, error) {
	source := firstNonEmpty(in.Domain, in.ProductName, c.cfg.BrandName)

	body := in.Message
	if in.Name != "" || in.Email != "" || in.Phone != "" {
		var b strings.Builder
		fmt.Fprintf(&b, "Contact Form Submission from: %s\n\n", source)
		fmt.Fprintf(&b, "Name: %s\n", firstNonEmpty(in.Name, domain.NotProvided))
		fmt.Fprintf(&b, "Email: %s\n", firstNonEmpty(in.Email, domain.NotProvided))
		fmt.Fprintf(&b, "Phone: %s\n", firstNonEmpty(in.Phone, domain.NotProvided))
		fmt.Fprintf(&b, "Source Domain/Product: %s\n\n", source)
		fmt.Fprintf(&b, "Message:\n%s\n", in.Message)
		body = b.String()
	}

	subject := firstNonEmpty(in.Subject, "Contact Form Submission")
	if !strings.Contains(subject, source) {
		subject = subject + " - " + source
	}

	return finalize(domain.Notification{
		To:        c.cfg.AdminEmail,
		CC:        []string{c.cfg.SupportCCEmail},
		ReplyTo:   in.Email,
		Subject:   subject,
		Body:      body,
		Recipient: "admin",
	})
}

// AstroInput is a validated paid-service confirmation request.
type AstroInput struct {
	Name            string
	Email           string
	Phone           string
	Service         domain.Service
	ReportType      string
	Language        string
	AdditionalInfo  string
	SpecialRequests string
	BirthDetails    *domain.BirthDetails
	PaymentDetails  *domain.PaymentDetails
	RequestID       string
}

type astroAdminView struct {
	Brand           string
	ServiceName     string
	Name            string
	Email           string
	Phone           string
	Language        string
	ShowBirth       bool
	Birth           birthView
	ReportType      string
	Payment         paymentView
	AdditionalInfo  string
	SpecialRequests string
	ReceivedAt      string
	RequestID       string
}

type astroCustomerView struct {
	Brand       string
	Name        string
	ServiceName string
	Amount      string
	OrderRef    string
	PaymentRef  string
	Timestamp   string
	AdminEmail  string
}

// AstroConfirmation builds the dual notifications for a paid astrology
// service: one to admin (customer reply-to) and, when the customer address is
// present, one to the customer (CC admin).
func (c *Composer) AstroConfirmation(in AstroInput) ([]domain.Notification, error) {
	pay := paymentViewOf(in.PaymentDetails, domain.NotAvailable)
	adminBody, err := c.render("astro_admin.gohtml", astroAdminView{
		Brand:       c.cfg.BrandName,
		ServiceName: in.Service.Name,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Language:    firstNonEmpty(in.Language, "English"),
		// The birth section only applies to birth-chart requests.
		ShowBirth:       in.Service.Code == "birth-chart" && in.BirthDetails != nil,
		Birth:           birthViewOf(in.BirthDetails),
		ReportType:      in.ReportType,
		Payment:         pay,
		AdditionalInfo:  firstNonEmpty(in.AdditionalInfo, "No additional information provided by the customer."),
		SpecialRequests: in.SpecialRequests,
		ReceivedAt:      c.timestamp(),
		RequestID:       in.RequestID,
	})
	if err != nil {
		return nil, err
	}

	admin, err := finalize(domain.Notification{
		To:      c.cfg.AdminEmail,
		ReplyTo: in.Email,
		Subject: fmt.Sprintf("PAID %s Request - %s - ₹%s - %s",
			in.Service.Name, in.Name, in.PaymentDetails.AmountOr("599"), c.cfg.BrandName),
		Body:      adminBody,
		HTML:      true,
		Recipient: "admin",
	})
	if err != nil {
		return nil, err
	}
	notes := []domain.Notification{admin}

	if in.Email != "" {
		orderRef := firstNonEmpty(in.PaymentDetails.OrderRef(), domain.NotAvailable)
		customerBody, err := c.render("astro_customer.gohtml", astroCustomerView{
			Brand:       c.cfg.BrandName,
			Name:        in.Name,
			ServiceName: in.Service.Name,
			Amount:      in.PaymentDetails.AmountOr("599"),
			OrderRef:    orderRef,
			PaymentRef:  paymentViewOf(in.PaymentDetails, domain.NotAvailable).PaymentID,
			Timestamp:   c.timestamp(),
			AdminEmail:  c.cfg.AdminEmail,
		})
		if err != nil {
			return nil, err
		}
		customer, err := finalize(domain.Notification{
			To: in.Email,
			CC: []string{c.cfg.AdminEmail},
			Subject: fmt.Sprintf("Order Confirmation - %s - %s (%s)",
				in.Service.Name, c.cfg.BrandName, orderRef),
			Body:      customerBody,
			HTML:      true,
			Recipient: "customer",
		})
		if err != nil {
			return nil, err
		}
		notes = append(notes, customer)
	}
	return notes, nil
}

type criticalView struct {
	Brand       string
	Name        string
	Email       string
	Phone       string
	ServiceName string
	Language    string
	Birth       birthView
	Payment     paymentView
	ReceivedAt  string
	RequestID   string
}

// PendingPayment builds the critical-failure alert sent to admin when a
// payment succeeded but automated processing failed.
func (c *Composer) PendingPayment(in AstroInput) (domain.Notification, error) {
	body, err := c.render("critical_admin.gohtml", criticalView{
		Brand:       c.cfg.BrandName,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		ServiceName: in.Service.Name,
		Language:    firstNonEmpty(in.Language, "English"),
		Birth:       birthViewOf(in.BirthDetails),
		Payment:     paymentViewOf(in.PaymentDetails, domain.NotAvailable),
		ReceivedAt:  c.timestamp(),
		RequestID:   in.RequestID,
	})
	if err != nil {
		return domain.Notification{}, err
	}
	orderRef := firstNonEmpty(in.PaymentDetails.OrderRef(), domain.NotAvailable)
	return finalize(domain.Notification{
		To:      c.cfg.AdminEmail,
		ReplyTo: in.Email,
		Subject: fmt.Sprintf("CRITICAL ALERT - Payment Successful, Processing Failed - %s - Order: %s",
			in.Name, orderRef),
		Body:      body,
		HTML:      true,
		Recipient: "admin",
	})
}

// AbandonedInput is a lead-recovery alert request.
type AbandonedInput struct {
	Name         string
	Email        string
	Phone        string
	Service      domain.Service
	Language     string
	BirthDetails *domain.BirthDetails
	Reason       string
	Session      *domain.SessionData
	LeadID       string
}

type abandonedView struct {
	Brand       string
	Name        string
	Email       string
	Phone       string
	ServiceName string
	Language    string
	Birth       birthView
	Reason      string
	TimeOnPage  string
	ReceivedAt  string
	LeadID      string
}

// AbandonedPayment builds the admin alert for a checkout the customer walked
// away from.
func (c *Composer) AbandonedPayment(in AbandonedInput) (domain.Notification, error) {
	body, err := c.render("abandoned_payment.gohtml", abandonedView{
		Brand:       c.cfg.BrandName,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		ServiceName: in.Service.Name,
		Language:    firstNonEmpty(in.Language, "English"),
		Birth:       birthViewOf(in.BirthDetails),
		Reason:      firstNonEmpty(in.Reason, domain.NotProvided),
		TimeOnPage:  in.Session.TimeOr("Data not available"),
		ReceivedAt:  c.timestamp(),
		LeadID:      in.LeadID,
	})
	if err != nil {
		return domain.Notification{}, err
	}
	return finalize(domain.Notification{
		To:      c.cfg.AdminEmail,
		ReplyTo: in.Email,
		Subject: fmt.Sprintf("PAYMENT ABANDONMENT ALERT - %s - ₹599 - High Priority Lead Recovery Required", in.Name),
		Body:    body,
		HTML:    true,
		Recipient: "admin",
	})
}

// MatchLeadInput is an abandoned free match-horoscope flow.
type MatchLeadInput struct {
	FormData *domain.MatchFormData
	Reason   string
	Session  *domain.SessionData
	LeadID   string
}

type matchLeadView struct {
	Brand           string
	Partner1        partnerView
	Partner2        partnerView
	CustomerEmail   string
	CustomerPhone   string
	Reason          string
	CompletionLevel int
	TimeOnPage      string
	Interacted      bool
	ReceivedAt      string
	LeadID          string
}

// AbandonedMatch builds the admin alert for an abandoned compatibility
// analysis. Reply-to is only set when the lead left a real address.
func (c *Composer) AbandonedMatch(in MatchLeadInput) (domain.Notification, error) {
	fd := in.FormData
	if fd == nil {
		fd = &domain.MatchFormData{}
	}
	p1 := partnerViewOf(fd.Partner1, "Partner 1")
	p2 := partnerViewOf(fd.Partner2, "Partner 2")
	body, err := c.render("abandoned_match.gohtml", matchLeadView{
		Brand:         c.cfg.BrandName,
		Partner1:      p1,
		Partner2:      p2,
		CustomerEmail:   firstNonEmpty(fd.CustomerEmail, domain.NotProvided),
		CustomerPhone:   firstNonEmpty(fd.CustomerPhone, domain.NotProvided),
		Reason:          firstNonEmpty(in.Reason, domain.NotProvided),
		CompletionLevel: in.Session.Completion(),
		TimeOnPage:      in.Session.TimeOr("Not tracked"),
		Interacted:      in.Session.Interacted(),
		ReceivedAt:      c.timestamp(),
		LeadID:          in.LeadID,
	})
	if err != nil {
		return domain.Notification{}, err
	}
	subjectName := func(v partnerView, def string) string {
		if v.Present {
			return v.Name
		}
		return def
	}
	return finalize(domain.Notification{
		To:      c.cfg.AdminEmail,
		ReplyTo: fd.CustomerEmail,
		Subject: fmt.Sprintf("MATCH HOROSCOPE ABANDONMENT - %s & %s - Lead Development Opportunity",
			subjectName(p1, "Partner 1"), subjectName(p2, "Partner 2")),
		Body:      body,
		HTML:      true,
		Recipient: "admin",
	})
}

// MatchInput is a validated match-horoscope submission.
type MatchInput struct {
	FormData       *domain.MatchFormData
	CustomerEmail  string
	CustomerPhone  string
	Language       string
	PaymentDetails *domain.PaymentDetails
	RequestID      string
}

type matchAdminView struct {
	Brand         string
	Paid          bool
	Partner1      partnerView
	Partner2      partnerView
	CustomerEmail string
	CustomerPhone string
	Language      string
	Payment       paymentView
	ReceivedAt    string
	RequestID     string
}

type matchCustomerView struct {
	Brand        string
	Paid         bool
	Partner1Name string
	Partner2Name string
	Amount       string
	OrderRef     string
	Timestamp    string
	AdminEmail   string
}

// Match builds the admin notification and, when a customer address is
// present, the customer confirmation. Template selection depends only on the
// route and on whether the payment details mark the request paid.
func (c *Composer) Match(in MatchInput) ([]domain.Notification, error) {
	paid := in.PaymentDetails.Paid()
	p1 := partnerViewOf(in.FormData.Partner1, "Partner 1")
	p2 := partnerViewOf(in.FormData.Partner2, "Partner 2")

	adminBody, err := c.render("match_admin.gohtml", matchAdminView{
		Brand:         c.cfg.BrandName,
		Paid:          paid,
		Partner1:      p1,
		Partner2:      p2,
		CustomerEmail: firstNonEmpty(in.CustomerEmail, domain.NotProvided),
		CustomerPhone: firstNonEmpty(in.CustomerPhone, domain.NotProvided),
		Language:      firstNonEmpty(in.Language, "English"),
		Payment:       paymentViewOf(in.PaymentDetails, "599"),
		ReceivedAt:    c.timestamp(),
		RequestID:     in.RequestID,
	})
	if err != nil {
		return nil, err
	}

	var adminSubject string
	if paid {
		adminSubject = fmt.Sprintf("PAID Horoscope Matching - %s & %s - ₹%s - %s",
			in.FormData.Partner1.Name, in.FormData.Partner2.Name, in.PaymentDetails.AmountOr("599"), c.cfg.BrandName)
	} else {
		adminSubject = fmt.Sprintf("FREE Match-Horoscope Request - %s & %s",
			in.FormData.Partner1.Name, in.FormData.Partner2.Name)
	}
	admin, err := finalize(domain.Notification{
		To:        c.cfg.AdminEmail,
		ReplyTo:   in.CustomerEmail,
		Subject:   adminSubject,
		Body:      adminBody,
		HTML:      true,
		Recipient: "admin",
	})
	if err != nil {
		return nil, err
	}
	notes := []domain.Notification{admin}

	if in.CustomerEmail != "" {
		orderRef := firstNonEmpty(in.PaymentDetails.OrderRef(), domain.NotAvailable)
		customerBody, err := c.render("match_customer.gohtml", matchCustomerView{
			Brand:        c.cfg.BrandName,
			Paid:         paid,
			Partner1Name: in.FormData.Partner1.Name,
			Partner2Name: in.FormData.Partner2.Name,
			Amount:       in.PaymentDetails.AmountOr("599"),
			OrderRef:     orderRef,
			Timestamp:    c.timestamp(),
			AdminEmail:   c.cfg.AdminEmail,
		})
		if err != nil {
			return nil, err
		}
		var customerSubject string
		if paid {
			customerSubject = fmt.Sprintf("Order Confirmed - Horoscope Matching Analysis - %s (Order: %s)", c.cfg.BrandName, orderRef)
		} else {
			customerSubject = fmt.Sprintf("Compatibility Analysis Request Received - %s", c.cfg.BrandName)
		}
		customer, err := finalize(domain.Notification{
			To:        in.CustomerEmail,
			CC:        []string{c.cfg.AdminEmail},
			Subject:   customerSubject,
			Body:      customerBody,
			HTML:      true,
			Recipient: "customer",
		})
		if err != nil {
			return nil, err
		}
		notes = append(notes, customer)
	}
	return notes, nil
}
