package main

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	evsvc "github.com/Madhusudhan63dag/astro-api/internal/events/service"
	emailsvc "github.com/Madhusudhan63dag/astro-api/internal/email/service"
	"github.com/Madhusudhan63dag/astro-api/internal/logger"
	"github.com/Madhusudhan63dag/astro-api/internal/platform/validation"

	// Notify DDD slice (factory)
	notify "github.com/Madhusudhan63dag/astro-api/internal/notify"
	// Payments DDD slice (factory)
	payments "github.com/Madhusudhan63dag/astro-api/internal/payments"
)

// @title           SriAstroVeda Relay API
// @version         1.0
// @description     Payment and transactional-email backend for astrology consultation services.
// @BasePath        /
// @schemes         http

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.AppEnv)
	log.Info().Str("addr", cfg.AppAddr).Str("provider", cfg.EmailProvider).Msg("starting api server")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middlewares
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	// Attach the app logger to request contexts so event publishing and
	// handlers can use log.Ctx.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := log.WithContext(c.Request().Context())
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return matchCORSOrigin(origin, cfg.CORSAllowedOrigins), nil
		},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Validator
	e.Validator = validation.New()

	// Shared infrastructure: mail transport and event publisher
	sender := emailsvc.NewRouter(cfg)
	pub := evsvc.NewLogger()

	// Register domain routes via factories
	notify.Register(e, cfg, sender, pub, log)
	payments.Register(e, cfg, pub)

	// Health endpoint; the service holds no connections, so this only
	// reports process liveness.
	start := time.Now()
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
			"uptime": time.Since(start).Truncate(time.Second).String(),
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Start server
	go func() {
		if err := e.Start(cfg.AppAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("server stopped")
}

// matchCORSOrigin reports whether origin is allowed by any configured pattern.
// Patterns are exact origins, "*", or wildcard-subdomain forms such as
// "https://*.sriastroveda.com".
func matchCORSOrigin(origin string, patterns []string) bool {
	u, uerr := url.Parse(origin)
	for _, p := range patterns {
		if p == "*" || p == origin {
			return true
		}
		scheme, domain, ok := strings.Cut(p, "://*.")
		if !ok {
			continue
		}
		if uerr != nil || u.Scheme != scheme {
			continue
		}
		if strings.HasSuffix(u.Host, "."+domain) {
			return true
		}
	}
	return false
}
