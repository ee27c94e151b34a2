package domain

import "context"

// Message is a single outbound email. To and Subject must be non-empty; senders
// are free to reject messages that violate that.
// Body is HTML when HTML is true, plain text otherwise.
type Message struct {
	To      string
	CC      []string
	ReplyTo string
	Subject string
	Body    string
	HTML    bool
}

// Sender is a pluggable email sending interface.
// Implementations read transport credentials from config internally.
type Sender interface {
	Send(ctx context.Context, m Message) error
}
