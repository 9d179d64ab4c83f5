// Package notify sends the guest confirmation and the front-desk notice for
// accepted bookings.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/diagnosis/luxehaven/internal/domain"
	"github.com/diagnosis/luxehaven/internal/platform/mailer"
	"github.com/diagnosis/luxehaven/pkg/logger"
)

type Hotel struct {
	Name      string
	LegalName string
	Address   string
	Phone     string
	Email     string
}

var DefaultHotel = Hotel{
	Name:      "LuxeHaven",
	LegalName: "LuxeHaven Luxury Hotel & Resort",
	Address:   "123 Luxury Boulevard, Downtown District, NY 10001",
	Phone:     "+1 (555) 123-4567",
	Email:     "hello@luxehaven.com",
}

type EmailNotifier struct {
	mailer     mailer.Service
	adminEmail string
	hotel      Hotel
}

func NewEmailNotifier(m mailer.Service, adminEmail string, hotel Hotel) *EmailNotifier {
	return &EmailNotifier{mailer: m, adminEmail: adminEmail, hotel: hotel}
}

type templateData struct {
	Booking      domain.Booking
	Hotel        Hotel
	ServiceLabel string
	CheckIn      string
	CheckOut     string
}

func (n *EmailNotifier) data(b domain.Booking) templateData {
	return templateData{
		Booking:      b,
		Hotel:        n.hotel,
		ServiceLabel: b.ServiceType.Label(),
		CheckIn:      displayDate(b.CheckInDate),
		CheckOut:     displayDate(b.CheckOutDate),
	}
}

// RenderConfirmation returns the guest subject, plain text and HTML bodies.
func (n *EmailNotifier) RenderConfirmation(b domain.Booking) (subject, text, html string, err error) {
	subject = fmt.Sprintf("Booking Confirmation - %s | %s", b.ID, n.hotel.Name)
	text, html, err = render(confirmationText, confirmationHTML, n.data(b))
	return subject, text, html, err
}

func (n *EmailNotifier) RenderAdminNotification(b domain.Booking) (subject, text, html string, err error) {
	subject = fmt.Sprintf("New Booking Received - %s", b.ID)
	text, html, err = render(adminText, adminHTML, n.data(b))
	return subject, text, html, err
}

func (n *EmailNotifier) SendConfirmation(ctx context.Context, b domain.Booking) error {
	subject, text, html, err := n.RenderConfirmation(b)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}
	msgID, err := n.mailer.Send(ctx, b.Email, b.FullName, subject, text, html)
	if err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}
	logger.InfoContext(ctx, "Confirmation email sent", "to", b.Email, "message_id", msgID)
	return nil
}

func (n *EmailNotifier) SendAdminNotification(ctx context.Context, b domain.Booking) error {
	if n.adminEmail == "" {
		return nil
	}
	subject, text, html, err := n.RenderAdminNotification(b)
	if err != nil {
		return fmt.Errorf("render admin notification: %w", err)
	}
	if _, err := n.mailer.Send(ctx, n.adminEmail, n.hotel.Name+" Front Desk", subject, text, html); err != nil {
		return fmt.Errorf("send admin notification: %w", err)
	}
	logger.InfoContext(ctx, "Admin notification sent")
	return nil
}

type executor interface {
	Execute(w io.Writer, data any) error
}

func render(text, html executor, data templateData) (string, string, error) {
	var tb, hb bytes.Buffer
	if err := text.Execute(&tb, data); err != nil {
		return "", "", err
	}
	if err := html.Execute(&hb, data); err != nil {
		return "", "", err
	}
	return tb.String(), hb.String(), nil
}

// displayDate renders YYYY-MM-DD or RFC 3339 input as "January 2, 2006" and
// leaves anything else untouched.
func displayDate(s string) string {
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t.Format(domain.DisplayDate)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(domain.DisplayDate)
	}
	return s
}
