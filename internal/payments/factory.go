package payments

import (
	"github.com/labstack/echo/v4"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	evdomain "github.com/Madhusudhan63dag/astro-api/internal/events/domain"
	ctrl "github.com/Madhusudhan63dag/astro-api/internal/payments/controller"
	svc "github.com/Madhusudhan63dag/astro-api/internal/payments/service"
)

// Register wires the payments module and registers HTTP routes.
func Register(e *echo.Echo, cfg config.Config, pub evdomain.Publisher) {
	gw := svc.NewRazorpay(cfg)
	s := svc.New(gw)
	ctrl.New(s, cfg).WithPublisher(pub).Register(e)
}
