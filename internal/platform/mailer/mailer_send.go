package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

const mailerSendTimeout = 10 * time.Second

var errMailerSendDisabled = errors.New("mailersend: disabled (missing MAILERSEND_API_KEY or SMTP_FROM_EMAIL)")

// MailerSend delivers booking mail through the MailerSend API. Every message
// carries the configured tags so hotel mail can be filtered in the dashboard.
type MailerSend struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	tags    []string
	Enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string, tags ...string) *MailerSend {
	m := &MailerSend{
		Enabled: apiKey != "" && fromEmail != "",
		from:    mailersend.From{Name: fromName, Email: fromEmail},
		tags:    tags,
	}
	if m.Enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}
	return m
}

func (m *MailerSend) Send(ctx context.Context, toEmail, toName, subject, text, html string) (string, error) {
	if !m.Enabled {
		return "", errMailerSendDisabled
	}
	if strings.TrimSpace(toEmail) == "" {
		return "", errors.New("mailersend: empty recipient")
	}

	ctx, cancel := context.WithTimeout(ctx, mailerSendTimeout)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)
	if len(m.tags) > 0 {
		msg.SetTags(m.tags)
	}
	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("mailersend: send %q: %w", subject, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return "", fmt.Errorf("mailersend: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return res.Header.Get("X-Message-Id"), nil
}
