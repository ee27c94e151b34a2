package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	edomain "github.com/Madhusudhan63dag/astro-api/internal/email/domain"
	evdomain "github.com/Madhusudhan63dag/astro-api/internal/events/domain"
	"github.com/Madhusudhan63dag/astro-api/internal/notify/domain"
)

// senderFunc adapts a func to edomain.Sender.
type senderFunc func(ctx context.Context, m edomain.Message) error

func (f senderFunc) Send(ctx context.Context, m edomain.Message) error { return f(ctx, m) }

// publisherFunc adapts a func to evdomain.Publisher.
type publisherFunc func(ctx context.Context, e evdomain.Event) error

func (f publisherFunc) Publish(ctx context.Context, e evdomain.Event) error { return f(ctx, e) }

func note(to, subject string) domain.Notification {
	return domain.Notification{To: to, Subject: subject, Body: "b", Recipient: "admin"}
}

func TestDispatch_EmptySet(t *testing.T) {
	d := NewDispatcher(senderFunc(func(ctx context.Context, m edomain.Message) error { return nil }))
	err := d.Dispatch(context.Background(), "send-email", nil)
	require.Error(t, err)
}

func TestDispatch_MalformedNotification(t *testing.T) {
	var calls int
	d := NewDispatcher(senderFunc(func(ctx context.Context, m edomain.Message) error {
		calls++
		return nil
	}))

	err := d.Dispatch(context.Background(), "send-email", []domain.Notification{
		note("a@example.com", "ok"),
		{Subject: "no recipient", Body: "b"},
	})
	require.Error(t, err)
	assert.Zero(t, calls, "nothing is sent when any notification is malformed")
}

func TestDispatch_AllSendsAttempted(t *testing.T) {
	var mu sync.Mutex
	var sent []string
	d := NewDispatcher(senderFunc(func(ctx context.Context, m edomain.Message) error {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, m.To)
		if m.To == "fail@example.com" {
			return fmt.Errorf("boom")
		}
		return nil
	}))

	err := d.Dispatch(context.Background(), "send-astro-email", []domain.Notification{
		note("ok@example.com", "s1"),
		note("fail@example.com", "s2"),
	})
	require.Error(t, err, "any failed send fails the dispatch")
	assert.Len(t, sent, 2, "every send is attempted even when one fails")
}

func TestDispatch_PublishesEvent(t *testing.T) {
	var got evdomain.Event
	d := NewDispatcher(senderFunc(func(ctx context.Context, m edomain.Message) error { return nil })).
		WithPublisher(publisherFunc(func(ctx context.Context, e evdomain.Event) error {
			got = e
			return nil
		}))

	err := d.Dispatch(context.Background(), "send-match-horoscope", []domain.Notification{
		note("a@example.com", "s1"),
		note("b@example.com", "s2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "notify.dispatched", got.Type)
	assert.Equal(t, "send-match-horoscope", got.Meta["route"])
	assert.Equal(t, "2", got.Meta["count"])
	assert.Equal(t, "success", got.Meta["result"])
}
