package controller

import (
	"context"
	"fmt"
	"sync"

	edomain "github.com/Madhusudhan63dag/astro-api/internal/email/domain"
)

// fakeEmail implements edomain.Sender for testing. Sends run concurrently, so
// access is guarded.
type fakeEmail struct {
	mu   sync.Mutex
	sent []edomain.Message
	fail bool
}

func (f *fakeEmail) Send(ctx context.Context, m edomain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("smtp unavailable")
	}
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeEmail) messages() []edomain.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]edomain.Message, len(f.sent))
	copy(out, f.sent)
	return out
}

// byRecipient returns the first captured message addressed to the given
// address, either directly or via CC.
func (f *fakeEmail) byRecipient(addr string) (edomain.Message, bool) {
	for _, m := range f.messages() {
		if m.To == addr {
			return m, true
		}
	}
	return edomain.Message{}, false
}

var _ edomain.Sender = (*fakeEmail)(nil)
