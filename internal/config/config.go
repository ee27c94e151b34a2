package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv             string
	AppAddr            string
	CORSAllowedOrigins []string
	BodyLimit          string

	RazorpayKeyID     string
	RazorpayKeySecret string

	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string
	EmailProvider string // smtp | brevo
	BrevoAPIKey   string
	BrevoSender   string

	// Fixed business contacts baked into every notification.
	AdminEmail     string
	SupportCCEmail string
	SupportPhone   string
	BrandName      string
}

func Load() (Config, error) {
	c := Config{}

	c.AppEnv = getEnv("APP_ENV", "development")
	c.AppAddr = getEnv("APP_ADDR", ":5000")
	c.CORSAllowedOrigins = splitCSV(getEnv("CORS_ALLOWED_ORIGINS",
		"https://astro-snowy-five.vercel.app,https://sriastroveda.com,https://www.sriastroveda.com,http://localhost:3000,http://localhost:3001"))
	c.BodyLimit = getEnv("BODY_LIMIT", "10M")

	c.RazorpayKeyID = getEnv("RAZORPAY_KEY_ID", "")
	c.RazorpayKeySecret = getEnv("RAZORPAY_KEY_SECRET", "")

	c.SMTPHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	c.SMTPPort = getInt("SMTP_PORT", 587)
	c.SMTPUsername = getEnv("EMAIL_USER", "")
	c.SMTPPassword = getEnv("EMAIL_PASS", "")
	c.SMTPFrom = getEnv("SMTP_FROM", c.SMTPUsername)
	c.EmailProvider = strings.ToLower(getEnv("EMAIL_PROVIDER", "smtp"))
	c.BrevoAPIKey = getEnv("BREVO_API_KEY", "")
	c.BrevoSender = getEnv("BREVO_SENDER", c.SMTPFrom)

	c.AdminEmail = getEnv("ADMIN_EMAIL", "israelitesshopping171@gmail.com")
	c.SupportCCEmail = getEnv("SUPPORT_CC_EMAIL", "customercareproductcenter@gmail.com")
	c.SupportPhone = getEnv("SUPPORT_PHONE", "")
	c.BrandName = getEnv("BRAND_NAME", "SriAstroVeda")

	return c, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	if len(res) == 0 {
		return []string{"*"}
	}
	return res
}

func (c Config) String() string {
	return fmt.Sprintf("env=%s addr=%s provider=%s admin=%s", c.AppEnv, c.AppAddr, c.EmailProvider, c.AdminEmail)
}
