package domain

import (
	"context"
	"math"
	"time"
)

const DefaultCompanyLogo = "default-company-logo.jpg"

type EmployerSocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

type Location struct {
	ID             string `json:"id"`
	Address        string `json:"address"`
	IsHeadquarters bool   `json:"is_headquarters"`
}

type EmployerProfile struct {
	ID            int64               `json:"id"`
	UserID        string              `json:"user_id"`
	CompanyName   string              `json:"company_name"`
	LogoURL       string              `json:"logo_url"`
	CoverImageURL string              `json:"cover_image_url"`
	Website       string              `json:"website"`
	Industry      string              `json:"industry"`
	CompanySize   string              `json:"company_size"`
	FoundedYear   *int                `json:"founded_year,omitempty"`
	Description   string              `json:"description"`
	Locations     []Location          `json:"locations"`
	SocialLinks   EmployerSocialLinks `json:"social_links"`
	ContactEmail  string              `json:"contact_email"`
	ContactPhone  string              `json:"contact_phone"`
	// At most one location is the headquarters; the flag on Location is derived from this.
	HeadquartersLocationID *string `json:"headquarters_location_id,omitempty"`

	CompletionPercentage int       `json:"completion_percentage"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

const employerTrackedFields = 10

// Completion is the share of the 10 tracked fields that are filled. The
// default logo does not count.
func (p *EmployerProfile) Completion() int {
	filled := 0
	for _, ok := range []bool{
		p.CompanyName != "",
		p.LogoURL != "" && p.LogoURL != DefaultCompanyLogo,
		p.CoverImageURL != "",
		p.Website != "",
		p.Industry != "",
		p.CompanySize != "",
		p.FoundedYear != nil,
		p.Description != "",
		len(p.Locations) > 0,
		p.ContactEmail != "",
	} {
		if ok {
			filled++
		}
	}
	return int(math.Round(float64(filled) / employerTrackedFields * 100))
}

// MarkHeadquarters sets IsHeadquarters on locations from HeadquartersLocationID.
func (p *EmployerProfile) MarkHeadquarters() {
	for i := range p.Locations {
		p.Locations[i].IsHeadquarters = p.HeadquartersLocationID != nil && p.Locations[i].ID == *p.HeadquartersLocationID
	}
}

type EmployerProfileUpdate struct {
	CompanyName  *string
	Website      *string
	Industry     *string
	CompanySize  *string
	FoundedYear  *int
	Description  *string
	SocialLinks  *EmployerSocialLinks
	ContactEmail *string
	ContactPhone *string
}

func (u EmployerProfileUpdate) Apply(p *EmployerProfile) {
	if u.CompanyName != nil {
		p.CompanyName = *u.CompanyName
	}
	if u.Website != nil {
		p.Website = *u.Website
	}
	if u.Industry != nil {
		p.Industry = *u.Industry
	}
	if u.CompanySize != nil {
		p.CompanySize = *u.CompanySize
	}
	if u.FoundedYear != nil {
		p.FoundedYear = u.FoundedYear
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.SocialLinks != nil {
		p.SocialLinks = *u.SocialLinks
	}
	if u.ContactEmail != nil {
		p.ContactEmail = *u.ContactEmail
	}
	if u.ContactPhone != nil {
		p.ContactPhone = *u.ContactPhone
	}
}

type EmployerProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*EmployerProfile, error)
	Create(ctx context.Context, profile *EmployerProfile) error
	// Update writes the company fields, logo and cover image.
	Update(ctx context.Context, profile *EmployerProfile) error
	// AddLocation inserts the location and, when headquarters is set, points
	// the profile at it in the same transaction.
	AddLocation(ctx context.Context, profileID int64, loc *Location, headquarters bool) error
	// SetHeadquarters returns ErrNotFound when the location is not on the profile.
	SetHeadquarters(ctx context.Context, profileID int64, locationID string) error
	DeleteLocation(ctx context.Context, profileID int64, locationID string) error
}

type EmployerProfileUsecase interface {
	GetMine(ctx context.Context, userID string) (*EmployerProfile, error)
	Upsert(ctx context.Context, userID string, in EmployerProfileUpdate) (*EmployerProfile, error)
	GetByUserID(ctx context.Context, userID string) (*EmployerProfile, error)
	UploadLogo(ctx context.Context, userID, filename string, data []byte) (*EmployerProfile, error)
	UploadCover(ctx context.Context, userID, filename string, data []byte) (*EmployerProfile, error)
	AddLocation(ctx context.Context, userID, address string, headquarters bool) (*EmployerProfile, error)
	SetHeadquarters(ctx context.Context, userID, locationID string) (*EmployerProfile, error)
	DeleteLocation(ctx context.Context, userID, locationID string) (*EmployerProfile, error)
}
