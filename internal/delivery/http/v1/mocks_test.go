package v1

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockJobUsecase struct{ mock.Mock }

func (m *mockJobUsecase) Create(ctx context.Context, employerID string, in domain.JobInput) (*domain.Job, error) {
	args := m.Called(ctx, employerID, in)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

func (m *mockJobUsecase) Get(ctx context.Context, viewer *domain.Actor, id int64) (*domain.Job, error) {
	args := m.Called(ctx, viewer, id)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

func (m *mockJobUsecase) Update(ctx context.Context, employerID string, id int64, in domain.JobInput) (*domain.Job, error) {
	args := m.Called(ctx, employerID, id, in)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

func (m *mockJobUsecase) UpdateStatus(ctx context.Context, employerID string, id int64, status domain.JobStatus) (*domain.Job, error) {
	args := m.Called(ctx, employerID, id, status)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

func (m *mockJobUsecase) Delete(ctx context.Context, employerID string, id int64) error {
	return m.Called(ctx, employerID, id).Error(0)
}

func (m *mockJobUsecase) Search(ctx context.Context, filter domain.JobFilter) (*domain.PaginatedResult[domain.Job], error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).(*domain.PaginatedResult[domain.Job])
	return res, args.Error(1)
}

func (m *mockJobUsecase) Latest(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, args.Error(1)
}

func (m *mockJobUsecase) Popular(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, args.Error(1)
}

func (m *mockJobUsecase) ListMine(ctx context.Context, employerID string, page domain.Page) (*domain.PaginatedResult[domain.Job], error) {
	args := m.Called(ctx, employerID, page)
	res, _ := args.Get(0).(*domain.PaginatedResult[domain.Job])
	return res, args.Error(1)
}

type mockApplicationUsecase struct{ mock.Mock }

func (m *mockApplicationUsecase) Apply(ctx context.Context, candidateID string, jobID int64, coverLetter string) (*domain.Application, error) {
	args := m.Called(ctx, candidateID, jobID, coverLetter)
	app, _ := args.Get(0).(*domain.Application)
	return app, args.Error(1)
}

func (m *mockApplicationUsecase) ListMine(ctx context.Context, candidateID string) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	apps, _ := args.Get(0).([]domain.Application)
	return apps, args.Error(1)
}

func (m *mockApplicationUsecase) ListForJob(ctx context.Context, employerID string, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, employerID, jobID)
	apps, _ := args.Get(0).([]domain.Application)
	return apps, args.Error(1)
}

func (m *mockApplicationUsecase) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Application, error) {
	args := m.Called(ctx, actor, id)
	app, _ := args.Get(0).(*domain.Application)
	return app, args.Error(1)
}

func (m *mockApplicationUsecase) UpdateStatus(ctx context.Context, employerID string, id int64, status domain.ApplicationStatus, note string) (*domain.Application, error) {
	args := m.Called(ctx, employerID, id, status, note)
	app, _ := args.Get(0).(*domain.Application)
	return app, args.Error(1)
}

func (m *mockApplicationUsecase) AddNote(ctx context.Context, employerID string, id int64, text string) (*domain.Application, error) {
	args := m.Called(ctx, employerID, id, text)
	app, _ := args.Get(0).(*domain.Application)
	return app, args.Error(1)
}

type mockEmailPreferenceUsecase struct{ mock.Mock }

func (m *mockEmailPreferenceUsecase) Get(ctx context.Context, userID string) (*domain.EmailPreference, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*domain.EmailPreference)
	return p, args.Error(1)
}

func (m *mockEmailPreferenceUsecase) Update(ctx context.Context, userID string, in domain.EmailPreferenceUpdate) (*domain.EmailPreference, error) {
	args := m.Called(ctx, userID, in)
	p, _ := args.Get(0).(*domain.EmailPreference)
	return p, args.Error(1)
}

func (m *mockEmailPreferenceUsecase) Unsubscribe(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockAdminUsecase struct{ mock.Mock }

func (m *mockAdminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.AdminStats)
	return s, args.Error(1)
}

func (m *mockAdminUsecase) ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.PaginatedResult[domain.User], error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).(*domain.PaginatedResult[domain.User])
	return res, args.Error(1)
}

func (m *mockAdminUsecase) UpdateUserStatus(ctx context.Context, adminID, userID string, status domain.UserStatus) (*domain.User, error) {
	args := m.Called(ctx, adminID, userID, status)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockAdminUsecase) ListJobs(ctx context.Context, filter domain.AdminJobFilter) (*domain.PaginatedResult[domain.Job], error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).(*domain.PaginatedResult[domain.Job])
	return res, args.Error(1)
}

func (m *mockAdminUsecase) ApproveJob(ctx context.Context, adminID string, jobID int64) (*domain.Job, error) {
	args := m.Called(ctx, adminID, jobID)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

func (m *mockAdminUsecase) RejectJob(ctx context.Context, adminID string, jobID int64) (*domain.Job, error) {
	args := m.Called(ctx, adminID, jobID)
	job, _ := args.Get(0).(*domain.Job)
	return job, args.Error(1)
}

func (m *mockAdminUsecase) ExportUsers(ctx context.Context, filter domain.UserFilter) ([]byte, error) {
	args := m.Called(ctx, filter)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockAdminUsecase) ExportJobs(ctx context.Context, filter domain.AdminJobFilter) ([]byte, error) {
	args := m.Called(ctx, filter)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}
