package notify

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Madhusudhan63dag/astro-api/internal/config"
	edomain "github.com/Madhusudhan63dag/astro-api/internal/email/domain"
	evdomain "github.com/Madhusudhan63dag/astro-api/internal/events/domain"
	ctrl "github.com/Madhusudhan63dag/astro-api/internal/notify/controller"
	svc "github.com/Madhusudhan63dag/astro-api/internal/notify/service"
)

// Register wires the notify module and registers HTTP routes.
func Register(e *echo.Echo, cfg config.Config, sender edomain.Sender, pub evdomain.Publisher, log zerolog.Logger) {
	comp := svc.NewComposer(cfg)
	disp := svc.NewDispatcher(sender).WithPublisher(pub)
	disp.SetLogger(log)
	ctrl.New(comp, disp, cfg).Register(e)
}
