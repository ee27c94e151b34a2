package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	edomain "github.com/Madhusudhan63dag/astro-api/internal/email/domain"
	evdomain "github.com/Madhusudhan63dag/astro-api/internal/events/domain"
	"github.com/Madhusudhan63dag/astro-api/internal/metrics"
	"github.com/Madhusudhan63dag/astro-api/internal/notify/domain"
)

// Dispatcher hands composed notifications to the mail transport. All sends of
// a set are issued concurrently with no ordering between them; the caller only
// observes their joint completion. One attempt per notification; a failure is
// surfaced once and never retried or queued.
type Dispatcher struct {
	sender edomain.Sender
	pub    evdomain.Publisher
	log    zerolog.Logger
}

func NewDispatcher(sender edomain.Sender) *Dispatcher {
	return &Dispatcher{sender: sender, log: zerolog.Nop()}
}

func (d *Dispatcher) WithPublisher(pub evdomain.Publisher) *Dispatcher {
	d.pub = pub
	return d
}

func (d *Dispatcher) SetLogger(log zerolog.Logger) {
	d.log = log
}

// Dispatch sends every notification and waits for the whole set. If any send
// fails the dispatch as a whole is reported failed; there is no partial
// success at the request level.
func (d *Dispatcher) Dispatch(ctx context.Context, route string, notes []domain.Notification) error {
	if len(notes) == 0 {
		return fmt.Errorf("dispatch %s: no notifications composed", route)
	}
	for _, n := range notes {
		if n.To == "" || n.Subject == "" {
			metrics.IncDispatch(route, "failure")
			return fmt.Errorf("dispatch %s: malformed notification", route)
		}
	}

	var g errgroup.Group
	for _, n := range notes {
		n := n
		g.Go(func() error {
			err := d.sender.Send(ctx, edomain.Message{
				To:      n.To,
				CC:      n.CC,
				ReplyTo: n.ReplyTo,
				Subject: n.Subject,
				Body:    n.Body,
				HTML:    n.HTML,
			})
			if err != nil {
				metrics.IncMessage(n.Recipient, "failure")
				d.log.Error().Err(err).Str("route", route).Str("recipient", n.Recipient).Msg("send failed")
				return err
			}
			metrics.IncMessage(n.Recipient, "success")
			return nil
		})
	}

	err := g.Wait()
	result := "success"
	if err != nil {
		result = "failure"
	}
	metrics.IncDispatch(route, result)
	if d.pub != nil {
		_ = d.pub.Publish(ctx, evdomain.New("notify.dispatched", map[string]string{
			"route":  route,
			"count":  strconv.Itoa(len(notes)),
			"result": result,
		}))
	}
	return err
}
