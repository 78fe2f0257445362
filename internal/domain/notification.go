package domain

import "context"

// NewApplicationNotice is sent to an employer when a candidate applies.
type NewApplicationNotice struct {
	To               string
	EmployerName     string
	CandidateName    string
	JobTitle         string
	ApplicationID    int64
	UnsubscribeToken string
}

// StatusChangeNotice is sent to a candidate when an application moves.
type StatusChangeNotice struct {
	To               string
	CandidateName    string
	JobTitle         string
	CompanyName      string
	OldStatus        ApplicationStatus
	NewStatus        ApplicationStatus
	Note             string
	UnsubscribeToken string
}

// Mailer delivers transactional email. Callers treat failures as
// non-fatal unless stated otherwise.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, name, token string) error
	SendPasswordResetEmail(ctx context.Context, to, name, token string) error
	SendNewApplicationEmail(ctx context.Context, n NewApplicationNotice) error
	SendApplicationStatusEmail(ctx context.Context, n StatusChangeNotice) error
}
