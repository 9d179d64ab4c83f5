package mailer

import "context"

// Service delivers a single message and returns the provider message id when
// one is available.
type Service interface {
	Send(ctx context.Context, toEmail, toName, subject, text, html string) (string, error)
}
