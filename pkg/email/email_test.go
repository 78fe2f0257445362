package email

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMail struct {
	addr string
	to   []string
	msg  string
}

func newTestService(t *testing.T) (*EmailService, *capturedMail) {
	t.Helper()
	svc := NewEmailService(&config.Config{
		SMTPHost:      "smtp.local",
		SMTPPort:      "587",
		SMTPUsername:  "user",
		SMTPPassword:  "pass",
		SMTPFromEmail: "noreply@jobs.local",
		SMTPFromName:  "Jobs",
		FrontendURL:   "http://app.local",
		PublicBaseURL: "http://api.local",
	})
	got := &capturedMail{}
	svc.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		got.addr, got.to, got.msg = addr, to, string(msg)
		return nil
	}
	return svc, got
}

func TestSendPasswordResetEmail(t *testing.T) {
	svc, got := newTestService(t)
	require.NoError(t, svc.SendPasswordResetEmail(context.Background(), "a@x.com", "Alice", "tok123"))

	assert.Equal(t, "smtp.local:587", got.addr)
	assert.Equal(t, []string{"a@x.com"}, got.to)
	assert.Contains(t, got.msg, "Subject: Password reset request")
	assert.Contains(t, got.msg, "http://app.local/reset-password/tok123")
}

func TestSendApplicationStatusEmail(t *testing.T) {
	svc, got := newTestService(t)
	err := svc.SendApplicationStatusEmail(context.Background(), domain.StatusChangeNotice{
		To:               "c@x.com",
		CandidateName:    "Cara",
		JobTitle:         "Go Engineer",
		OldStatus:        domain.ApplicationStatusPending,
		NewStatus:        domain.ApplicationStatusInterview,
		Note:             "See you Monday",
		UnsubscribeToken: "unsub",
	})
	require.NoError(t, err)
	assert.Contains(t, got.msg, "<em>pending</em>")
	assert.Contains(t, got.msg, "<strong>interview</strong>")
	assert.Contains(t, got.msg, "See you Monday")
	assert.Contains(t, got.msg, "http://api.local/api/email-preferences/unsubscribe/unsub")
}

func TestTemplateEscapesInput(t *testing.T) {
	svc, got := newTestService(t)
	err := svc.SendNewApplicationEmail(context.Background(), domain.NewApplicationNotice{
		To:            "e@x.com",
		CandidateName: "<script>alert(1)</script>",
		JobTitle:      "Ops",
	})
	require.NoError(t, err)
	assert.NotContains(t, got.msg, "<script>")
}

func TestNotConfigured(t *testing.T) {
	svc := NewEmailService(&config.Config{})
	err := svc.SendVerificationEmail(context.Background(), "a@x.com", "A", "t")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}
