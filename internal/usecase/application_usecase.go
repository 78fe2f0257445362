package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateProfileRepository
	userRepo        domain.UserRepository
	preferences     domain.EmailPreferenceUsecase
	mailer          domain.Mailer
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateProfileRepository,
	userRepo domain.UserRepository,
	preferences domain.EmailPreferenceUsecase,
	mailer domain.Mailer,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		userRepo:        userRepo,
		preferences:     preferences,
		mailer:          mailer,
	}
}

// Apply submits the candidate's current résumé to an open job.
func (uc *applicationUsecase) Apply(ctx context.Context, candidateID string, jobID int64, coverLetter string) (*domain.Application, error) {
	// 1. Validate job exists and is accepting applications
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsPublic() {
		return nil, apperror.BadRequest("This job is not accepting applications")
	}

	// 2. Check for duplicate application
	exists, err := uc.applicationRepo.Exists(ctx, jobID, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Duplicate("You have already applied for this job")
	}

	// 3. Résumé must be on the profile
	profile, err := uc.candidateRepo.GetByUserID(ctx, candidateID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if profile == nil || profile.ResumeURL == "" {
		return nil, apperror.BadRequest("Please upload your resume before applying")
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		ResumeURL:   profile.ResumeURL,
		CoverLetter: strings.TrimSpace(coverLetter),
		Status:      domain.ApplicationStatusPending,
		Notes:       []domain.Note{},
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Duplicate("You have already applied for this job")
		}
		return nil, apperror.Internal(err)
	}

	uc.notifyEmployer(ctx, job, app)
	return app, nil
}

// ListMine returns all applications for the current candidate
func (uc *applicationUsecase) ListMine(ctx context.Context, candidateID string) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListForJob returns all applications for a job (employer only, validated by ownership)
func (uc *applicationUsecase) ListForJob(ctx context.Context, employerID string, jobID int64) ([]domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.EmployerID != employerID {
		return nil, apperror.Forbidden("You are not authorized to view applications for this job")
	}

	apps, err := uc.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// Get is open to the applicant, the employer owning the job and admins.
func (uc *applicationUsecase) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Application, error) {
	app, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	switch actor.Role {
	case domain.RoleAdmin:
		return app, nil
	case domain.RoleCandidate:
		if app.CandidateID == actor.UserID {
			return app, nil
		}
	case domain.RoleEmployer:
		owns, err := uc.employerOwns(ctx, app, actor.UserID)
		if err != nil {
			return nil, err
		}
		if owns {
			return app, nil
		}
	}
	return nil, apperror.Forbidden("You are not authorized to view this application")
}

// UpdateStatus moves the application to any status. The candidate is only
// notified when the status actually changed.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, employerID string, id int64, status domain.ApplicationStatus, note string) (*domain.Application, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid application status")
	}
	app, err := uc.ownedByEmployer(ctx, employerID, id)
	if err != nil {
		return nil, err
	}

	previous := app.Status
	if status != previous {
		if err := uc.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if note = strings.TrimSpace(note); note != "" {
		if err := uc.applicationRepo.AddNote(ctx, &domain.Note{ApplicationID: id, AuthorID: employerID, Text: note}); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	updated, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if status != previous {
		uc.notifyCandidate(ctx, updated, previous)
	}
	return updated, nil
}

// AddNote records an employer note; notes are returned newest first.
func (uc *applicationUsecase) AddNote(ctx context.Context, employerID string, id int64, text string) (*domain.Application, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.BadRequest("Note text is required")
	}
	if _, err := uc.ownedByEmployer(ctx, employerID, id); err != nil {
		return nil, err
	}
	if err := uc.applicationRepo.AddNote(ctx, &domain.Note{ApplicationID: id, AuthorID: employerID, Text: text}); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.load(ctx, id)
}

func (uc *applicationUsecase) load(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (uc *applicationUsecase) ownedByEmployer(ctx context.Context, employerID string, id int64) (*domain.Application, error) {
	app, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	owns, err := uc.employerOwns(ctx, app, employerID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, apperror.Forbidden("You are not authorized to manage this application")
	}
	return app, nil
}

func (uc *applicationUsecase) employerOwns(ctx context.Context, app *domain.Application, employerID string) (bool, error) {
	if app.Job != nil {
		return app.Job.EmployerID == employerID, nil
	}
	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, apperror.Internal(err)
	}
	return job.EmployerID == employerID, nil
}

func (uc *applicationUsecase) notifyEmployer(ctx context.Context, job *domain.Job, app *domain.Application) {
	pref, err := uc.preferences.Get(ctx, job.EmployerID)
	if err != nil {
		logger.Log.Warn("Email preference lookup failed", "user_id", job.EmployerID, "error", err)
		return
	}
	if !pref.NewApplications {
		return
	}
	employer, err := uc.userRepo.GetByID(ctx, job.EmployerID)
	if err != nil {
		logger.Log.Warn("Employer lookup failed", "user_id", job.EmployerID, "error", err)
		return
	}
	candidate, err := uc.userRepo.GetByID(ctx, app.CandidateID)
	if err != nil {
		logger.Log.Warn("Candidate lookup failed", "user_id", app.CandidateID, "error", err)
		return
	}

	err = uc.mailer.SendNewApplicationEmail(ctx, domain.NewApplicationNotice{
		To:               employer.Email,
		EmployerName:     employer.Name,
		CandidateName:    candidate.Name,
		JobTitle:         job.Title,
		ApplicationID:    app.ID,
		UnsubscribeToken: pref.UnsubscribeToken,
	})
	if err != nil {
		logger.Log.Warn("New application email not sent", "application_id", app.ID, "error", err)
	}
}

func (uc *applicationUsecase) notifyCandidate(ctx context.Context, app *domain.Application, previous domain.ApplicationStatus) {
	pref, err := uc.preferences.Get(ctx, app.CandidateID)
	if err != nil {
		logger.Log.Warn("Email preference lookup failed", "user_id", app.CandidateID, "error", err)
		return
	}
	if !pref.ApplicationUpdates {
		return
	}

	notice := domain.StatusChangeNotice{
		OldStatus:        previous,
		NewStatus:        app.Status,
		UnsubscribeToken: pref.UnsubscribeToken,
	}
	if app.Candidate != nil {
		notice.To, notice.CandidateName = app.Candidate.Email, app.Candidate.Name
	} else {
		candidate, err := uc.userRepo.GetByID(ctx, app.CandidateID)
		if err != nil {
			logger.Log.Warn("Candidate lookup failed", "user_id", app.CandidateID, "error", err)
			return
		}
		notice.To, notice.CandidateName = candidate.Email, candidate.Name
	}
	if app.Job != nil {
		notice.JobTitle, notice.CompanyName = app.Job.Title, app.Job.CompanyName
	}
	if len(app.Notes) > 0 {
		notice.Note = app.Notes[0].Text
	}

	if err := uc.mailer.SendApplicationStatusEmail(ctx, notice); err != nil {
		logger.Log.Warn("Status change email not sent", "application_id", app.ID, "error", err)
	}
}
