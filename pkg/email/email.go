package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
)

// ErrNotConfigured is returned when SMTP settings are missing.
var ErrNotConfigured = errors.New("email: SMTP not configured")

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailService renders HTML templates and delivers them over SMTP.
type EmailService struct {
	host        string
	port        string
	username    string
	password    string
	fromEmail   string
	fromName    string
	frontendURL string
	apiURL      string
	templates   *template.Template
	send        sendFunc
}

var _ domain.Mailer = (*EmailService)(nil)

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:        cfg.SMTPHost,
		port:        cfg.SMTPPort,
		username:    cfg.SMTPUsername,
		password:    cfg.SMTPPassword,
		fromEmail:   cfg.SMTPFromEmail,
		fromName:    cfg.SMTPFromName,
		frontendURL: cfg.FrontendURL,
		apiURL:      cfg.PublicBaseURL + "/api",
		templates:   template.Must(template.New("email").Parse(templates)),
		send:        smtp.SendMail,
	}
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func (s *EmailService) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	return s.deliver(ctx, to, "Verify your email address", "verify", map[string]string{
		"Name": name,
		"Link": s.frontendURL + "/verify-email/" + token,
	})
}

func (s *EmailService) SendPasswordResetEmail(ctx context.Context, to, name, token string) error {
	return s.deliver(ctx, to, "Password reset request", "reset", map[string]string{
		"Name": name,
		"Link": s.frontendURL + "/reset-password/" + token,
	})
}

func (s *EmailService) SendNewApplicationEmail(ctx context.Context, n domain.NewApplicationNotice) error {
	return s.deliver(ctx, n.To, "New application for "+n.JobTitle, "new_application", map[string]string{
		"EmployerName":  n.EmployerName,
		"CandidateName": n.CandidateName,
		"JobTitle":      n.JobTitle,
		"Link":          fmt.Sprintf("%s/employer/applications/%d", s.frontendURL, n.ApplicationID),
		"Unsubscribe":   s.unsubscribeLink(n.UnsubscribeToken),
	})
}

func (s *EmailService) SendApplicationStatusEmail(ctx context.Context, n domain.StatusChangeNotice) error {
	return s.deliver(ctx, n.To, "Application update: "+n.JobTitle, "status_change", map[string]string{
		"CandidateName": n.CandidateName,
		"JobTitle":      n.JobTitle,
		"CompanyName":   n.CompanyName,
		"OldStatus":     string(n.OldStatus),
		"NewStatus":     string(n.NewStatus),
		"Note":          n.Note,
		"Link":          s.frontendURL + "/candidate/applications",
		"Unsubscribe":   s.unsubscribeLink(n.UnsubscribeToken),
	})
}

func (s *EmailService) unsubscribeLink(token string) string {
	if token == "" {
		return ""
	}
	return s.apiURL + "/email-preferences/unsubscribe/" + token
}

func (s *EmailService) deliver(ctx context.Context, to, subject, tmpl string, data map[string]string) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return fmt.Errorf("failed to execute email template %s: %w", tmpl, err)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromName, s.fromEmail, to, subject, body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.send(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
