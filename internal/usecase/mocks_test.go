package usecase_test

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByResetToken(ctx context.Context, hash string, now time.Time) (*domain.User, error) {
	args := m.Called(ctx, hash, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByVerificationToken(ctx context.Context, hash string, now time.Time) (*domain.User, error) {
	args := m.Called(ctx, hash, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockCandidateRepo) Upsert(ctx context.Context, p *domain.CandidateProfile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockCandidateRepo) UpdateResume(ctx context.Context, profileID int64, url string) error {
	return m.Called(ctx, profileID, url).Error(0)
}
func (m *MockCandidateRepo) AddEducation(ctx context.Context, profileID int64, e *domain.Education) error {
	return m.Called(ctx, profileID, e).Error(0)
}
func (m *MockCandidateRepo) DeleteEducation(ctx context.Context, profileID int64, id string) error {
	return m.Called(ctx, profileID, id).Error(0)
}
func (m *MockCandidateRepo) AddExperience(ctx context.Context, profileID int64, e *domain.Experience) error {
	return m.Called(ctx, profileID, e).Error(0)
}
func (m *MockCandidateRepo) DeleteExperience(ctx context.Context, profileID int64, id string) error {
	return m.Called(ctx, profileID, id).Error(0)
}
func (m *MockCandidateRepo) AddSkill(ctx context.Context, profileID int64, s *domain.Skill) error {
	return m.Called(ctx, profileID, s).Error(0)
}
func (m *MockCandidateRepo) DeleteSkill(ctx context.Context, profileID int64, id string) error {
	return m.Called(ctx, profileID, id).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerRepo) Create(ctx context.Context, p *domain.EmployerProfile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockEmployerRepo) Update(ctx context.Context, p *domain.EmployerProfile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockEmployerRepo) AddLocation(ctx context.Context, profileID int64, loc *domain.Location, hq bool) error {
	return m.Called(ctx, profileID, loc, hq).Error(0)
}
func (m *MockEmployerRepo) SetHeadquarters(ctx context.Context, profileID int64, locationID string) error {
	return m.Called(ctx, profileID, locationID).Error(0)
}
func (m *MockEmployerRepo) DeleteLocation(ctx context.Context, profileID int64, locationID string) error {
	return m.Called(ctx, profileID, locationID).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) SetModeration(ctx context.Context, id int64, status domain.JobStatus, approved bool) error {
	return m.Called(ctx, id, status, approved).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) IncrementViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Latest(ctx context.Context, limit int) ([]domain.Job, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Popular(ctx context.Context, limit int) ([]domain.Job, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) ListByEmployer(ctx context.Context, employerID string, page domain.Page) ([]domain.Job, int64, error) {
	args := m.Called(ctx, employerID, page)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobID int64, candidateID string) (bool, error) {
	args := m.Called(ctx, jobID, candidateID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockApplicationRepo) AddNote(ctx context.Context, note *domain.Note) error {
	return m.Called(ctx, note).Error(0)
}

type MockWishlistRepo struct {
	mock.Mock
}

func (m *MockWishlistRepo) Add(ctx context.Context, e *domain.WishlistEntry) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockWishlistRepo) Remove(ctx context.Context, candidateID string, jobID int64) error {
	return m.Called(ctx, candidateID, jobID).Error(0)
}
func (m *MockWishlistRepo) List(ctx context.Context, candidateID string) ([]domain.WishlistEntry, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]domain.WishlistEntry), args.Error(1)
}
func (m *MockWishlistRepo) Exists(ctx context.Context, candidateID string, jobID int64) (bool, error) {
	args := m.Called(ctx, candidateID, jobID)
	return args.Bool(0), args.Error(1)
}

type MockPreferenceRepo struct {
	mock.Mock
}

func (m *MockPreferenceRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmailPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailPreference), args.Error(1)
}
func (m *MockPreferenceRepo) GetByToken(ctx context.Context, token string) (*domain.EmailPreference, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailPreference), args.Error(1)
}
func (m *MockPreferenceRepo) Create(ctx context.Context, p *domain.EmailPreference) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPreferenceRepo) Update(ctx context.Context, p *domain.EmailPreference) error {
	return m.Called(ctx, p).Error(0)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Stats(ctx context.Context, since time.Time) (*domain.AdminStats, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}
func (m *MockAdminRepo) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}
func (m *MockAdminRepo) ListJobs(ctx context.Context, filter domain.AdminJobFilter) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockAdminRepo) UpdateUserStatus(ctx context.Context, userID string, status domain.UserStatus) (*domain.User, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Mock collaborators

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	return m.Called(ctx, to, name, token).Error(0)
}
func (m *MockMailer) SendPasswordResetEmail(ctx context.Context, to, name, token string) error {
	return m.Called(ctx, to, name, token).Error(0)
}
func (m *MockMailer) SendNewApplicationEmail(ctx context.Context, n domain.NewApplicationNotice) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockMailer) SendApplicationStatusEmail(ctx context.Context, n domain.StatusChangeNotice) error {
	return m.Called(ctx, n).Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, userID string, kind domain.UploadKind, folder, filename string, data []byte) (string, error) {
	args := m.Called(ctx, userID, kind, folder, filename, data)
	return args.String(0), args.Error(1)
}

type MockLoginGuard struct {
	mock.Mock
}

func (m *MockLoginGuard) IsBlocked(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockLoginGuard) RecordFailedAttempt(ctx context.Context, email, ip, requestID string) (bool, error) {
	args := m.Called(ctx, email, ip, requestID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLoginGuard) ClearAttempts(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type MockPreferences struct {
	mock.Mock
}

func (m *MockPreferences) Get(ctx context.Context, userID string) (*domain.EmailPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailPreference), args.Error(1)
}
func (m *MockPreferences) Update(ctx context.Context, userID string, in domain.EmailPreferenceUpdate) (*domain.EmailPreference, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailPreference), args.Error(1)
}
func (m *MockPreferences) Unsubscribe(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
