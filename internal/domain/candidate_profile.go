package domain

import (
	"context"
	"math"
	"time"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

type Experience struct {
	ID          string     `json:"id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

type CandidateSocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

func (s CandidateSocialLinks) IsEmpty() bool {
	return s.LinkedIn == "" && s.GitHub == "" && s.Website == ""
}

type JobPreferences struct {
	JobType        []string `json:"job_type,omitempty"`
	ExpectedSalary *float64 `json:"expected_salary,omitempty"`
	Location       string   `json:"location,omitempty"`
	Industries     []string `json:"industries,omitempty"`
}

func (p JobPreferences) IsEmpty() bool {
	return len(p.JobType) == 0 && p.ExpectedSalary == nil && p.Location == "" && len(p.Industries) == 0
}

type CandidateProfile struct {
	ID             int64                `json:"id"`
	UserID         string               `json:"user_id"`
	User           *UserSummary         `json:"user,omitempty"`
	DateOfBirth    *time.Time           `json:"date_of_birth,omitempty"`
	Phone          string               `json:"phone"`
	Address        string               `json:"address"`
	Bio            string               `json:"bio"`
	Headline       string               `json:"headline"`
	ResumeURL      string               `json:"resume_url"`
	SocialLinks    CandidateSocialLinks `json:"social_links"`
	JobPreferences JobPreferences       `json:"job_preferences"`
	// Education and Experience are most recent first; Skills keep insertion order.
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     []Skill      `json:"skills"`

	CompletionPercentage int       `json:"completion_percentage"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

const candidateTrackedFields = 11

// Completion is the share of the 11 tracked fields that are filled, as a
// rounded percentage.
func (p *CandidateProfile) Completion() int {
	filled := 0
	for _, ok := range []bool{
		p.DateOfBirth != nil,
		p.Phone != "",
		p.Address != "",
		p.Bio != "",
		p.Headline != "",
		len(p.Education) > 0,
		len(p.Experience) > 0,
		len(p.Skills) > 0,
		p.ResumeURL != "",
		!p.SocialLinks.IsEmpty(),
		!p.JobPreferences.IsEmpty(),
	} {
		if ok {
			filled++
		}
	}
	return int(math.Round(float64(filled) / candidateTrackedFields * 100))
}

// CandidateProfileUpdate carries a partial update; nil fields are left alone.
type CandidateProfileUpdate struct {
	DateOfBirth    *time.Time
	Phone          *string
	Address        *string
	Bio            *string
	Headline       *string
	SocialLinks    *CandidateSocialLinks
	JobPreferences *JobPreferences
}

// Apply copies the set fields of u onto p.
func (u CandidateProfileUpdate) Apply(p *CandidateProfile) {
	if u.DateOfBirth != nil {
		p.DateOfBirth = u.DateOfBirth
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Headline != nil {
		p.Headline = *u.Headline
	}
	if u.SocialLinks != nil {
		p.SocialLinks = *u.SocialLinks
	}
	if u.JobPreferences != nil {
		p.JobPreferences = *u.JobPreferences
	}
}

type CandidateProfileRepository interface {
	// GetByUserID returns the profile with its entries, or ErrNotFound.
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	// Upsert inserts or updates the scalar columns keyed by UserID and
	// fills in ID and timestamps.
	Upsert(ctx context.Context, profile *CandidateProfile) error
	UpdateResume(ctx context.Context, profileID int64, resumeURL string) error
	AddEducation(ctx context.Context, profileID int64, e *Education) error
	DeleteEducation(ctx context.Context, profileID int64, entryID string) error
	AddExperience(ctx context.Context, profileID int64, e *Experience) error
	DeleteExperience(ctx context.Context, profileID int64, entryID string) error
	// AddSkill returns ErrDuplicate when the profile already has the skill name.
	AddSkill(ctx context.Context, profileID int64, s *Skill) error
	DeleteSkill(ctx context.Context, profileID int64, entryID string) error
}

type CandidateProfileUsecase interface {
	GetMine(ctx context.Context, userID string) (*CandidateProfile, error)
	Upsert(ctx context.Context, userID string, in CandidateProfileUpdate) (*CandidateProfile, error)
	GetByUserID(ctx context.Context, viewer Actor, userID string) (*CandidateProfile, error)
	AddEducation(ctx context.Context, userID string, e Education) (*CandidateProfile, error)
	DeleteEducation(ctx context.Context, userID, entryID string) (*CandidateProfile, error)
	AddExperience(ctx context.Context, userID string, e Experience) (*CandidateProfile, error)
	DeleteExperience(ctx context.Context, userID, entryID string) (*CandidateProfile, error)
	AddSkill(ctx context.Context, userID string, s Skill) (*CandidateProfile, error)
	DeleteSkill(ctx context.Context, userID, entryID string) (*CandidateProfile, error)
	UploadResume(ctx context.Context, userID, filename string, data []byte) (*CandidateProfile, error)
}
