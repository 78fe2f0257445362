package domain

import (
	"context"
	"time"
)

type EmailPreference struct {
	ID                    int64     `json:"id"`
	UserID                string    `json:"user_id"`
	ApplicationUpdates    bool      `json:"application_updates"`
	NewApplications       bool      `json:"new_applications"`
	WeeklyRecommendations bool      `json:"weekly_recommendations"`
	MarketingEmails       bool      `json:"marketing_emails"`
	UnsubscribeToken      string    `json:"-"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// DefaultEmailPreference is what a user gets before changing anything.
func DefaultEmailPreference(userID, token string) *EmailPreference {
	return &EmailPreference{
		UserID:                userID,
		ApplicationUpdates:    true,
		NewApplications:       true,
		WeeklyRecommendations: true,
		MarketingEmails:       false,
		UnsubscribeToken:      token,
	}
}

type EmailPreferenceUpdate struct {
	ApplicationUpdates    *bool
	NewApplications       *bool
	WeeklyRecommendations *bool
	MarketingEmails       *bool
}

func (u EmailPreferenceUpdate) Apply(p *EmailPreference) {
	if u.ApplicationUpdates != nil {
		p.ApplicationUpdates = *u.ApplicationUpdates
	}
	if u.NewApplications != nil {
		p.NewApplications = *u.NewApplications
	}
	if u.WeeklyRecommendations != nil {
		p.WeeklyRecommendations = *u.WeeklyRecommendations
	}
	if u.MarketingEmails != nil {
		p.MarketingEmails = *u.MarketingEmails
	}
}

type EmailPreferenceRepository interface {
	GetByUserID(ctx context.Context, userID string) (*EmailPreference, error)
	GetByToken(ctx context.Context, token string) (*EmailPreference, error)
	// Create inserts pref unless the user already has one, then loads the stored row into pref.
	Create(ctx context.Context, pref *EmailPreference) error
	Update(ctx context.Context, pref *EmailPreference) error
}

type EmailPreferenceUsecase interface {
	Get(ctx context.Context, userID string) (*EmailPreference, error)
	Update(ctx context.Context, userID string, in EmailPreferenceUpdate) (*EmailPreference, error)
	Unsubscribe(ctx context.Context, token string) error
}
