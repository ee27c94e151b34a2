package service

import (
	"context"
	"strings"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	edomain "github.com/Madhusudhan63dag/astro-api/internal/email/domain"
)

// Ensure Router implements domain.Sender
var _ edomain.Sender = (*Router)(nil)

type Router struct {
	cfg   config.Config
	smtp  edomain.Sender
	brevo edomain.Sender
}

func NewRouter(cfg config.Config) *Router {
	return &Router{cfg: cfg, smtp: NewSMTP(cfg), brevo: NewBrevo(cfg)}
}

func (r *Router) Send(ctx context.Context, m edomain.Message) error {
	switch strings.ToLower(r.cfg.EmailProvider) {
	case "brevo":
		return r.brevo.Send(ctx, m)
	default:
		return r.smtp.Send(ctx, m)
	}
}
