package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type applicationFixture struct {
	apps       *MockApplicationRepo
	jobs       *MockJobRepo
	candidates *MockCandidateRepo
	users      *MockUserRepo
	prefs      *MockPreferences
	mailer     *MockMailer
	uc         domain.ApplicationUsecase
}

func newApplicationFixture() *applicationFixture {
	f := &applicationFixture{
		apps:       new(MockApplicationRepo),
		jobs:       new(MockJobRepo),
		candidates: new(MockCandidateRepo),
		users:      new(MockUserRepo),
		prefs:      new(MockPreferences),
		mailer:     new(MockMailer),
	}
	f.uc = usecase.NewApplicationUsecase(f.apps, f.jobs, f.candidates, f.users, f.prefs, f.mailer)
	return f
}

func openJob() *domain.Job {
	return &domain.Job{ID: 10, EmployerID: "emp", Title: "Go Engineer", Status: domain.JobStatusOpen, IsApproved: true}
}

func allPrefs(userID string) *domain.EmailPreference {
	return domain.DefaultEmailPreference(userID, "tok-"+userID)
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("closed job rejected before anything else", func(t *testing.T) {
		f := newApplicationFixture()
		job := openJob()
		job.Status = domain.JobStatusClosed
		f.jobs.On("GetByID", ctx, int64(10)).Return(job, nil)

		_, err := f.uc.Apply(ctx, "cand", 10, "")
		assertAppError(t, err, http.StatusBadRequest)
		f.apps.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown job", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(10)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.Apply(ctx, "cand", 10, "")
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("duplicate checked before resume", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		f.apps.On("Exists", ctx, int64(10), "cand").Return(true, nil)

		_, err := f.uc.Apply(ctx, "cand", 10, "")
		assertAppError(t, err, http.StatusBadRequest)
		f.candidates.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})

	t.Run("resume required", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		f.apps.On("Exists", ctx, int64(10), "cand").Return(false, nil)
		f.candidates.On("GetByUserID", ctx, "cand").Return(nil, domain.ErrNotFound)

		_, err := f.uc.Apply(ctx, "cand", 10, "")
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("success snapshots resume and notifies employer", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		f.apps.On("Exists", ctx, int64(10), "cand").Return(false, nil)
		f.candidates.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{ResumeURL: "cv.pdf"}, nil)
		f.apps.On("Create", ctx, mock.AnythingOfType("*domain.Application")).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.Application).ID = 99 }).
			Return(nil)
		f.prefs.On("Get", ctx, "emp").Return(allPrefs("emp"), nil)
		f.users.On("GetByID", ctx, "emp").Return(&domain.User{ID: "emp", Name: "Boss", Email: "boss@acme.io"}, nil)
		f.users.On("GetByID", ctx, "cand").Return(&domain.User{ID: "cand", Name: "Ann"}, nil)
		f.mailer.On("SendNewApplicationEmail", ctx, mock.MatchedBy(func(n domain.NewApplicationNotice) bool {
			return n.To == "boss@acme.io" && n.CandidateName == "Ann" && n.ApplicationID == 99 && n.UnsubscribeToken == "tok-emp"
		})).Return(nil)

		app, err := f.uc.Apply(ctx, "cand", 10, "  hello  ")
		require.NoError(t, err)
		assert.Equal(t, "cv.pdf", app.ResumeURL)
		assert.Equal(t, "hello", app.CoverLetter)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		f.mailer.AssertExpectations(t)
	})

	t.Run("email failure does not fail apply", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		f.apps.On("Exists", ctx, int64(10), "cand").Return(false, nil)
		f.candidates.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{ResumeURL: "cv.pdf"}, nil)
		f.apps.On("Create", ctx, mock.Anything).Return(nil)
		f.prefs.On("Get", ctx, "emp").Return(allPrefs("emp"), nil)
		f.users.On("GetByID", ctx, mock.Anything).Return(&domain.User{Email: "x@y.z"}, nil)
		f.mailer.On("SendNewApplicationEmail", ctx, mock.Anything).Return(errors.New("smtp down"))

		_, err := f.uc.Apply(ctx, "cand", 10, "")
		require.NoError(t, err)
	})

	t.Run("employer opted out", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		f.apps.On("Exists", ctx, int64(10), "cand").Return(false, nil)
		f.candidates.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{ResumeURL: "cv.pdf"}, nil)
		f.apps.On("Create", ctx, mock.Anything).Return(nil)
		pref := allPrefs("emp")
		pref.NewApplications = false
		f.prefs.On("Get", ctx, "emp").Return(pref, nil)

		_, err := f.uc.Apply(ctx, "cand", 10, "")
		require.NoError(t, err)
		f.mailer.AssertNotCalled(t, "SendNewApplicationEmail", mock.Anything, mock.Anything)
	})

	t.Run("race on unique index reports duplicate", func(t *testing.T) {
		f := newApplicationFixture()
		f.jobs.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		f.apps.On("Exists", ctx, int64(10), "cand").Return(false, nil)
		f.candidates.On("GetByUserID", ctx, "cand").Return(&domain.CandidateProfile{ResumeURL: "cv.pdf"}, nil)
		f.apps.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicate)

		_, err := f.uc.Apply(ctx, "cand", 10, "")
		assertAppError(t, err, http.StatusBadRequest)
	})
}

func storedApplication(status domain.ApplicationStatus) *domain.Application {
	return &domain.Application{
		ID:          5,
		JobID:       10,
		CandidateID: "cand",
		Status:      status,
		Job:         &domain.JobSummary{ID: 10, EmployerID: "emp", Title: "Go Engineer", CompanyName: "Acme"},
		Candidate:   &domain.UserSummary{ID: "cand", Name: "Ann", Email: "ann@example.com"},
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid status", func(t *testing.T) {
		f := newApplicationFixture()
		_, err := f.uc.UpdateStatus(ctx, "emp", 5, "archived", "")
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("other employer forbidden", func(t *testing.T) {
		f := newApplicationFixture()
		f.apps.On("GetByID", ctx, int64(5)).Return(storedApplication(domain.ApplicationStatusPending), nil)

		_, err := f.uc.UpdateStatus(ctx, "intruder", 5, domain.ApplicationStatusReviewed, "")
		assertAppError(t, err, http.StatusForbidden)
		f.apps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("change notifies candidate with note", func(t *testing.T) {
		f := newApplicationFixture()
		after := storedApplication(domain.ApplicationStatusInterview)
		after.Notes = []domain.Note{{Text: "See you Monday"}}
		f.apps.On("GetByID", ctx, int64(5)).Return(storedApplication(domain.ApplicationStatusPending), nil).Once()
		f.apps.On("GetByID", ctx, int64(5)).Return(after, nil).Once()
		f.apps.On("UpdateStatus", ctx, int64(5), domain.ApplicationStatusInterview).Return(nil)
		f.apps.On("AddNote", ctx, mock.MatchedBy(func(n *domain.Note) bool {
			return n.Text == "See you Monday" && n.AuthorID == "emp" && n.ApplicationID == 5
		})).Return(nil)
		f.prefs.On("Get", ctx, "cand").Return(allPrefs("cand"), nil)
		f.mailer.On("SendApplicationStatusEmail", ctx, mock.MatchedBy(func(n domain.StatusChangeNotice) bool {
			return n.To == "ann@example.com" &&
				n.OldStatus == domain.ApplicationStatusPending &&
				n.NewStatus == domain.ApplicationStatusInterview &&
				n.Note == "See you Monday" &&
				n.CompanyName == "Acme"
		})).Return(nil)

		app, err := f.uc.UpdateStatus(ctx, "emp", 5, domain.ApplicationStatusInterview, " See you Monday ")
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusInterview, app.Status)
		f.mailer.AssertExpectations(t)
	})

	t.Run("same status sends nothing", func(t *testing.T) {
		f := newApplicationFixture()
		f.apps.On("GetByID", ctx, int64(5)).Return(storedApplication(domain.ApplicationStatusReviewed), nil)

		_, err := f.uc.UpdateStatus(ctx, "emp", 5, domain.ApplicationStatusReviewed, "")
		require.NoError(t, err)
		f.apps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		f.mailer.AssertNotCalled(t, "SendApplicationStatusEmail", mock.Anything, mock.Anything)
	})

	t.Run("candidate opted out", func(t *testing.T) {
		f := newApplicationFixture()
		f.apps.On("GetByID", ctx, int64(5)).Return(storedApplication(domain.ApplicationStatusPending), nil).Once()
		f.apps.On("GetByID", ctx, int64(5)).Return(storedApplication(domain.ApplicationStatusRejected), nil).Once()
		f.apps.On("UpdateStatus", ctx, int64(5), domain.ApplicationStatusRejected).Return(nil)
		pref := allPrefs("cand")
		pref.ApplicationUpdates = false
		f.prefs.On("Get", ctx, "cand").Return(pref, nil)

		_, err := f.uc.UpdateStatus(ctx, "emp", 5, domain.ApplicationStatusRejected, "")
		require.NoError(t, err)
		f.mailer.AssertNotCalled(t, "SendApplicationStatusEmail", mock.Anything, mock.Anything)
	})
}

func TestGetApplicationAccess(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name  string
		actor domain.Actor
		code  int
	}{
		{"applicant", domain.Actor{UserID: "cand", Role: domain.RoleCandidate}, 0},
		{"owning employer", domain.Actor{UserID: "emp", Role: domain.RoleEmployer}, 0},
		{"admin", domain.Actor{UserID: "adm", Role: domain.RoleAdmin}, 0},
		{"other candidate", domain.Actor{UserID: "cand2", Role: domain.RoleCandidate}, http.StatusForbidden},
		{"other employer", domain.Actor{UserID: "emp2", Role: domain.RoleEmployer}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newApplicationFixture()
			f.apps.On("GetByID", ctx, int64(5)).Return(storedApplication(domain.ApplicationStatusPending), nil)

			app, err := f.uc.Get(ctx, tc.actor, 5)
			if tc.code == 0 {
				require.NoError(t, err)
				assert.Equal(t, int64(5), app.ID)
				return
			}
			assertAppError(t, err, tc.code)
		})
	}
}

func TestListApplicationsForJob(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture()
	f.jobs.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
	f.apps.On("ListByJob", ctx, int64(10)).Return([]domain.Application{{ID: 1}, {ID: 2}}, nil)

	_, err := f.uc.ListForJob(ctx, "emp2", 10)
	assertAppError(t, err, http.StatusForbidden)

	apps, err := f.uc.ListForJob(ctx, "emp", 10)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestAddNoteRequiresText(t *testing.T) {
	f := newApplicationFixture()
	_, err := f.uc.AddNote(context.Background(), "emp", 5, "   ")
	assertAppError(t, err, http.StatusBadRequest)
}
