package domain

// Service is a resolved catalog entry. Known is false for codes outside the
// catalog; Name then carries the raw code, or the caller's fallback label when
// the code is empty.
type Service struct {
	Code  string
	Name  string
	Known bool
}

// Route-specific fallback labels.
const (
	DefaultConsultation = "General Astrology Consultation"
	DefaultBirthChart   = "Birth Chart Generation"
)

// catalog maps short service codes to display names. Read-only after init.
// The odd-cased aliases come from historical frontend payloads and stay
// resolvable on purpose.
var catalog = map[string]string{
	"numerology":                     "Numerology Reading",
	"nakshatra":                      "Nakshatra Reading",
	"dasha-period":                   "Dasha Period Reading",
	"Dasha-period":                   "Dasha Period Reading",
	"ascendant-analysis":             "Ascendant Analysis",
	"your-life":                      "Your Life Path Reading",
	"personalized":                   "Personalized Astrology Report",
	"year-analysis":                  "Year Analysis",
	"daily-horoscope":                "Daily Horoscope",
	"are-we-compatible-for-marriage": "Are We Compatible for Marriage",
	"career-guidance":                "Career Guidance",
	"birth-chart":                    "Birth Chart Generation",
	"horoscope":                      "Horoscope Reading",
	"nature-analysis":                "Nature Analysis",
	"health-index":                   "Health Index",
	"lal-kitab":                      "Lal Kitab Analysis",
	"lal_kitab":                      "Lal Kitab Analysis",
	"sade-sati-life":                 "Sade Sati Life Analysis",
	"gemstone-consultation":          "Gemstone Consultation",
	"love-report":                    "Love Report",
	"PersonalizedReport2025":         "Personalized Astrology Report for 2025",
	"kundli":                         "Kundli Analysis 200+ Pages",
}

// Resolve maps a short code to its catalog entry. Resolution order: exact
// catalog match, then the raw code itself when non-empty, then fallback.
// Total over all inputs; never panics.
func Resolve(code, fallback string) Service {
	if name, ok := catalog[code]; ok {
		return Service{Code: code, Name: name, Known: true}
	}
	if code != "" {
		return Service{Code: code, Name: code}
	}
	return Service{Name: fallback}
}
