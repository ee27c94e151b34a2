package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	edomain "github.com/Madhusudhan63dag/astro-api/internal/email/domain"
)

// Ensure Brevo implements domain.Sender
var _ edomain.Sender = (*Brevo)(nil)

type Brevo struct {
	cfg  config.Config
	http *http.Client
}

func NewBrevo(cfg config.Config) *Brevo {
	return &Brevo{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}}
}

type brevoEmail struct {
	To          []map[string]string `json:"to"`
	CC          []map[string]string `json:"cc,omitempty"`
	ReplyTo     map[string]string   `json:"replyTo,omitempty"`
	Sender      map[string]string   `json:"sender"`
	Subject     string              `json:"subject"`
	TextContent string              `json:"textContent,omitempty"`
	HTMLContent string              `json:"htmlContent,omitempty"`
}

func (b *Brevo) Send(ctx context.Context, m edomain.Message) error {
	if b.cfg.BrevoAPIKey == "" || b.cfg.BrevoSender == "" {
		return fmt.Errorf("brevo not configured")
	}
	if m.To == "" || m.Subject == "" {
		return fmt.Errorf("brevo: message requires recipient and subject")
	}
	payload := brevoEmail{
		To:      []map[string]string{{"email": m.To}},
		Sender:  map[string]string{"email": b.cfg.BrevoSender},
		Subject: m.Subject,
	}
	for _, cc := range m.CC {
		payload.CC = append(payload.CC, map[string]string{"email": cc})
	}
	if m.ReplyTo != "" {
		payload.ReplyTo = map[string]string{"email": m.ReplyTo}
	}
	if m.HTML {
		payload.HTMLContent = m.Body
	} else {
		payload.TextContent = m.Body
	}
	buf, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.brevo.com/v3/smtp/email", bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", b.cfg.BrevoAPIKey)
	resp, err := b.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("brevo send failed: %s", resp.Status)
	}
	return nil
}
