package service

import (
	"github.com/Madhusudhan63dag/astro-api/internal/notify/domain"
)

// View records are fully defaulted before rendering so every template field is
// always present in the output.

type birthView struct {
	DateOfBirth  string
	TimeOfBirth  string
	PlaceOfBirth string
	Gender       string
}

type paymentView struct {
	Present   bool
	Status    string
	Amount    string
	PaymentID string
	OrderID   string
}

type partnerView struct {
	Present      bool
	Label        string
	Name         string
	Gender       string
	DateOfBirth  string
	TimeOfBirth  string
	PlaceOfBirth string
}

func birthViewOf(b *domain.BirthDetails) birthView {
	v := birthView{
		DateOfBirth:  domain.NotProvided,
		TimeOfBirth:  domain.NotProvided,
		PlaceOfBirth: domain.NotProvided,
		Gender:       domain.NotSpecified,
	}
	if b == nil {
		return v
	}
	if b.DateOfBirth != "" {
		v.DateOfBirth = b.DateOfBirth
	}
	if b.TimeOfBirth != "" {
		v.TimeOfBirth = b.TimeOfBirth
	}
	if b.PlaceOfBirth != "" {
		v.PlaceOfBirth = b.PlaceOfBirth
	}
	if b.Gender != "" {
		v.Gender = b.Gender
	}
	return v
}

func paymentViewOf(p *domain.PaymentDetails, amountDefault string) paymentView {
	v := paymentView{
		Status:    "COMPLETED",
		Amount:    amountDefault,
		PaymentID: domain.NotAvailable,
		OrderID:   domain.NotAvailable,
	}
	if p == nil {
		return v
	}
	v.Present = true
	if p.Status != "" {
		v.Status = p.Status
	}
	v.Amount = p.AmountOr(amountDefault)
	if p.PaymentID != "" {
		v.PaymentID = p.PaymentID
	}
	if p.OrderID != "" {
		v.OrderID = p.OrderID
	}
	return v
}

func partnerViewOf(p *domain.Partner, label string) partnerView {
	v := partnerView{
		Label:        label,
		Name:         domain.NotProvided,
		Gender:       domain.NotSpecified,
		DateOfBirth:  domain.NotProvided,
		TimeOfBirth:  domain.NotProvided,
		PlaceOfBirth: domain.NotProvided,
	}
	if p == nil || p.Name == "" {
		return v
	}
	v.Present = true
	v.Name = p.Name
	if p.Gender != "" {
		v.Gender = p.Gender
	}
	if p.DateOfBirth != "" {
		v.DateOfBirth = p.DateOfBirth
	}
	if p.TimeOfBirth != "" {
		v.TimeOfBirth = p.TimeOfBirth
	}
	if p.PlaceOfBirth != "" {
		v.PlaceOfBirth = p.PlaceOfBirth
	}
	return v
}

// ValidatePartners checks the nested mandatory fields of a match-horoscope
// submission with the same rigor as top-level fields. Returns a
// *domain.ValidationError naming the first missing field.
func ValidatePartners(fd *domain.MatchFormData) error {
	if fd == nil {
		return &domain.ValidationError{Field: "formData"}
	}
	partners := []struct {
		label string
		p     *domain.Partner
	}{
		{"formData.partner1", fd.Partner1},
		{"formData.partner2", fd.Partner2},
	}
	for _, pc := range partners {
		if pc.p == nil {
			return &domain.ValidationError{Field: pc.label}
		}
		fields := []struct {
			name  string
			value string
		}{
			{"name", pc.p.Name},
			{"dateOfBirth", pc.p.DateOfBirth},
			{"timeOfBirth", pc.p.TimeOfBirth},
			{"placeOfBirth", pc.p.PlaceOfBirth},
		}
		for _, f := range fields {
			if f.value == "" {
				return &domain.ValidationError{Field: pc.label + "." + f.name}
			}
		}
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
