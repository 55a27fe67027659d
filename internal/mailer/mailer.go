package mailer

import "context"

// Message is a plain-text notification email.
type Message struct {
	ToName    string
	ToAddress string
	Subject   string
	Body      string
}

// Mailer delivers notification emails (e.g. the password-setup notice sent
// after an access request is approved). Delivery failures are reported to the
// caller, which decides whether they are fatal.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
