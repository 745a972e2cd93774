package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderMeetingEnded(t *testing.T) {
	req := require.New(t)

	out := renderMeetingEnded("<standup>", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), "https://app.example")

	req.Contains(out, "&lt;standup&gt;")
	req.Contains(out, "2026-03-01 09:30")
	req.Contains(out, `href="https://app.example"`)
}

func TestSendMeetingEnded_NoRecipients(t *testing.T) {
	s := NewResendSender("re_test", "noreply@example.com", "https://app.example")
	require.NoError(t, s.SendMeetingEnded(context.Background(), nil, "room", time.Now()))
}
