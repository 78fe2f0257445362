package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validJobInput() domain.JobInput {
	return domain.JobInput{
		Title:        "Go Engineer",
		Description:  "Build services",
		Requirements: "Go",
		JobType:      []string{"Full-time"},
		Location:     "Hanoi",
		Deadline:     time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("requires employer profile", func(t *testing.T) {
		jobs, employers := new(MockJobRepo), new(MockEmployerRepo)
		employers.On("GetByUserID", ctx, "emp").Return(nil, domain.ErrNotFound)
		uc := usecase.NewJobUsecase(jobs, employers)

		_, err := uc.Create(ctx, "emp", validJobInput())
		assertAppError(t, err, http.StatusBadRequest)
		jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("open request on new job is stored as pending with company snapshot", func(t *testing.T) {
		jobs, employers := new(MockJobRepo), new(MockEmployerRepo)
		employers.On("GetByUserID", ctx, "emp").Return(&domain.EmployerProfile{ID: 1, CompanyName: "Acme", LogoURL: "logo.png"}, nil)
		jobs.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		uc := usecase.NewJobUsecase(jobs, employers)

		in := validJobInput()
		in.Status = domain.JobStatusOpen
		job, err := uc.Create(ctx, "emp", in)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusPending, job.Status)
		assert.False(t, job.IsApproved)
		assert.Equal(t, domain.CompanySnapshot{Name: "Acme", Logo: "logo.png"}, job.Company)
		assert.Equal(t, "VND", job.Salary.Currency)
		assert.Equal(t, "emp", job.EmployerID)
	})

	t.Run("salary range must be ordered", func(t *testing.T) {
		jobs, employers := new(MockJobRepo), new(MockEmployerRepo)
		employers.On("GetByUserID", ctx, "emp").Return(&domain.EmployerProfile{CompanyName: "Acme"}, nil)
		uc := usecase.NewJobUsecase(jobs, employers)

		in := validJobInput()
		in.Salary.Min, in.Salary.Max = ptr(2000.0), ptr(1000.0)
		_, err := uc.Create(ctx, "emp", in)
		assertAppError(t, err, http.StatusBadRequest)
	})
}

func TestUpdateJobStatusModeration(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cannot publish unapproved job", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(7)).Return(&domain.Job{ID: 7, EmployerID: "emp", Status: domain.JobStatusDraft}, nil)
		jobs.On("SetModeration", ctx, int64(7), domain.JobStatusPending, false).Return(nil)
		uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

		job, err := uc.UpdateStatus(ctx, "emp", 7, domain.JobStatusOpen)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusPending, job.Status)
		jobs.AssertExpectations(t)
	})

	t.Run("approved job toggles open and closed", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(7)).Return(&domain.Job{ID: 7, EmployerID: "emp", Status: domain.JobStatusOpen, IsApproved: true}, nil)
		jobs.On("SetModeration", ctx, int64(7), domain.JobStatusClosed, true).Return(nil).Once()
		jobs.On("SetModeration", ctx, int64(7), domain.JobStatusOpen, true).Return(nil).Once()
		uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

		job, err := uc.UpdateStatus(ctx, "emp", 7, domain.JobStatusClosed)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusClosed, job.Status)

		job, err = uc.UpdateStatus(ctx, "emp", 7, domain.JobStatusOpen)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusOpen, job.Status)
	})

	t.Run("owner cannot set rejected", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(7)).Return(&domain.Job{ID: 7, EmployerID: "emp"}, nil)
		uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

		_, err := uc.UpdateStatus(ctx, "emp", 7, domain.JobStatusRejected)
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("non owner forbidden", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(7)).Return(&domain.Job{ID: 7, EmployerID: "emp"}, nil)
		uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

		_, err := uc.UpdateStatus(ctx, "other", 7, domain.JobStatusClosed)
		assertAppError(t, err, http.StatusForbidden)
	})
}

func TestUpdateJobKeepsApproval(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	existing := &domain.Job{ID: 7, EmployerID: "emp", Status: domain.JobStatusOpen, IsApproved: true}
	jobs.On("GetByID", ctx, int64(7)).Return(existing, nil)
	jobs.On("Update", ctx, existing).Return(nil)
	uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

	in := validJobInput()
	in.Title = "Senior Go Engineer"
	job, err := uc.Update(ctx, "emp", 7, in)
	require.NoError(t, err)
	assert.True(t, job.IsApproved)
	assert.Equal(t, domain.JobStatusOpen, job.Status)
	assert.Equal(t, "Senior Go Engineer", job.Title)
}

func TestGetJobVisibilityAndViews(t *testing.T) {
	ctx := context.Background()
	public := func() *domain.Job {
		return &domain.Job{ID: 1, EmployerID: "emp", Status: domain.JobStatusOpen, IsApproved: true, Views: 3}
	}
	draft := func() *domain.Job {
		return &domain.Job{ID: 2, EmployerID: "emp", Status: domain.JobStatusDraft}
	}

	t.Run("anonymous read of public job counts a view", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(1)).Return(public(), nil)
		jobs.On("IncrementViews", ctx, int64(1)).Return(nil)
		uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

		job, err := uc.Get(ctx, nil, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(4), job.Views)
	})

	t.Run("owner read does not count", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(1)).Return(public(), nil)
		uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

		_, err := uc.Get(ctx, &domain.Actor{UserID: "emp", Role: domain.RoleEmployer}, 1)
		require.NoError(t, err)
		jobs.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	})

	t.Run("draft hidden from others", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(2)).Return(draft(), nil)
		uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

		_, err := uc.Get(ctx, &domain.Actor{UserID: "cand", Role: domain.RoleCandidate}, 2)
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("admin sees draft", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(2)).Return(draft(), nil)
		jobs.On("IncrementViews", ctx, int64(2)).Return(nil)
		uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

		_, err := uc.Get(ctx, &domain.Actor{UserID: "adm", Role: domain.RoleAdmin}, 2)
		require.NoError(t, err)
	})
}

func TestSearchJobsPagination(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	jobs.On("Search", ctx, mock.MatchedBy(func(f domain.JobFilter) bool {
		return f.Page == domain.Page{Page: 1, Limit: 10} && f.Keyword == "go"
	})).Return([]domain.Job{{ID: 1}}, int64(25), nil)
	uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

	res, err := uc.Search(ctx, domain.JobFilter{Keyword: "go"})
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 10, res.PageSize)
}

func TestLatestAndPopularLimits(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	jobs.On("Latest", ctx, 8).Return([]domain.Job{}, nil)
	jobs.On("Popular", ctx, 5).Return([]domain.Job{}, nil)
	uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

	_, err := uc.Latest(ctx)
	require.NoError(t, err)
	_, err = uc.Popular(ctx)
	require.NoError(t, err)
	jobs.AssertExpectations(t)
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	jobs.On("GetByID", ctx, int64(7)).Return(&domain.Job{ID: 7, EmployerID: "emp"}, nil)
	jobs.On("Delete", ctx, int64(7)).Return(nil)
	uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo))

	assertAppError(t, uc.Delete(ctx, "other", 7), http.StatusForbidden)
	require.NoError(t, uc.Delete(ctx, "emp", 7))
	jobs.AssertNumberOfCalls(t, "Delete", 1)
}
