// Package notification delivers booking emails over unauthenticated SMTP
// (Mailpit-compatible). Failures are logged, never returned: booking state is
// already committed by the time a notification goes out.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/timezone"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
)

type EmailNotifier struct {
	addr        string
	from        string
	sendTimeout time.Duration
}

func NewEmailNotifier(cfg config.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{
		addr:        fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		from:        cfg.From,
		sendTimeout: cfg.SendTimeout,
	}
}

var _ commands.Notifier = (*EmailNotifier)(nil)

func (n *EmailNotifier) BookingConfirmed(ctx context.Context, b *queries.BookingView, et *queries.EventTypeView) {
	subject := fmt.Sprintf("Confirmed: %s", et.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking is confirmed.\n\nEvent: %s\nWhen: %s\nDuration: %d minutes\n\nSee you there.\n",
		b.InviteeName, et.Name, n.formatWhen(b), et.DurationMinutes,
	)
	n.send(ctx, b, subject, body)
}

func (n *EmailNotifier) BookingCancelled(ctx context.Context, b *queries.BookingView, et *queries.EventTypeView, reason string) {
	subject := fmt.Sprintf("Cancelled: %s", et.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking has been cancelled.\n\nEvent: %s\nWhen: %s\n",
		b.InviteeName, et.Name, n.formatWhen(b),
	)
	if reason != "" {
		body += fmt.Sprintf("Reason: %s\n", reason)
	}
	n.send(ctx, b, subject, body)
}

// formatWhen renders the meeting time in the invitee's own zone, e.g.
// "Monday, June 1, 2026, 2:00 PM - 2:30 PM EDT". An unresolvable zone falls
// back to UTC rather than dropping the email.
func (n *EmailNotifier) formatWhen(b *queries.BookingView) string {
	loc, err := timezone.LoadLocation(b.InviteeTimezone)
	if err != nil {
		loc = time.UTC
	}
	return fmt.Sprintf("%s, %s - %s %s",
		timezone.LongDate(b.StartTime, loc),
		timezone.Clock(b.StartTime, loc),
		timezone.Clock(b.EndTime, loc),
		timezone.Abbreviation(b.StartTime, loc),
	)
}

func (n *EmailNotifier) send(ctx context.Context, b *queries.BookingView, subject, body string) {
	ctx, cancel := context.WithTimeout(ctx, n.sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		msg := buildMessage(n.from, b.InviteeEmail, subject, body)
		done <- smtp.SendMail(n.addr, nil, n.from, []string{b.InviteeEmail}, []byte(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			slog.Error("booking email delivery failed",
				"booking_id", b.ID, "to", b.InviteeEmail, "error", err.Error())
			return
		}
		slog.Info("booking email sent", "booking_id", b.ID, "to", b.InviteeEmail)
	case <-ctx.Done():
		slog.Error("booking email delivery timed out",
			"booking_id", b.ID, "to", b.InviteeEmail, "timeout", n.sendTimeout)
	}
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, to, subject, body,
	)
}
