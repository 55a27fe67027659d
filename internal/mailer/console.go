package mailer

import (
	"context"
	"log"
)

type consoleMailer struct{}

// NewConsoleMailer returns a Mailer that just logs messages. Used in
// development when no SendGrid key is configured.
func NewConsoleMailer() Mailer {
	return consoleMailer{}
}

func (consoleMailer) Send(_ context.Context, msg Message) error {
	log.Printf("mail to %s <%s>: %s\n%s", msg.ToName, msg.ToAddress, msg.Subject, msg.Body)
	return nil
}
