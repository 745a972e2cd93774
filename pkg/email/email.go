// Package email sends notification mails through Resend.
//
// Services depend on the Sender interface; the Resend implementation is
// wired in main.
package email

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/resend/resend-go/v3"
)

// Sender sends notification mails.
type Sender interface {
	// SendMeetingEnded tells the given addresses that the meeting of a chat
	// room has ended.
	SendMeetingEnded(ctx context.Context, to []string, roomName string, endedAt time.Time) error
}

type resendSender struct {
	client    *resend.Client
	fromEmail string
	appURL    string
}

// NewResendSender creates a Sender backed by the Resend API. fromEmail must
// belong to a domain verified in Resend.
func NewResendSender(apiKey, fromEmail, appURL string) Sender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		appURL:    appURL,
	}
}

func (s *resendSender) SendMeetingEnded(ctx context.Context, to []string, roomName string, endedAt time.Time) error {
	if len(to) == 0 {
		return nil
	}

	subject := "Meeting ended"
	if roomName != "" {
		subject = fmt.Sprintf("Meeting ended in %s", roomName)
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      to,
		Subject: subject,
		Html:    renderMeetingEnded(roomName, endedAt, s.appURL),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send meeting ended email: %w", err)
	}
	return nil
}

func renderMeetingEnded(roomName string, endedAt time.Time, appURL string) string {
	if roomName == "" {
		roomName = "your room"
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:24px;background-color:#1a1a2e;font-family:Arial,Helvetica,sans-serif;">
  <h2 style="color:#e2e8f0;font-size:18px;margin:0 0 16px 0;">The meeting in %s has ended</h2>
  <p style="color:#94a3b8;font-size:15px;line-height:1.6;margin:0 0 16px 0;">Ended at %s (UTC).</p>
  <a href="%s" style="color:#6366f1;font-size:15px;">Open huddle</a>
</body>
</html>`,
		html.EscapeString(roomName),
		endedAt.UTC().Format("2006-01-02 15:04"),
		html.EscapeString(appURL),
	)
}
