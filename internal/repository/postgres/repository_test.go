package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPool connects to TEST_DATABASE_URL and applies the migrations.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, url))
	pool, err := database.NewPostgresConnection(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) *domain.User {
	t.Helper()
	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         "Test " + string(role),
		Email:        uuid.NewString() + "@example.test",
		PasswordHash: "x",
		Role:         role,
		Status:       domain.UserStatusActive,
		AvatarURL:    domain.DefaultAvatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, postgres.NewUserRepository(pool).Create(context.Background(), user))
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, user.ID)
	})
	return user
}

func seedJob(t *testing.T, pool *pgxpool.Pool, employerID, location string, status domain.JobStatus, approved bool, age time.Duration) *domain.Job {
	t.Helper()
	ctx := context.Background()
	job := &domain.Job{
		EmployerID:   employerID,
		Title:        "Backend Engineer",
		Description:  "Build services",
		Requirements: "Go",
		JobType:      []string{"Full-time"},
		Location:     location,
		Salary:       domain.Salary{Currency: "VND"},
		Skills:       []string{"go"},
		Deadline:     time.Now().Add(30 * 24 * time.Hour),
		Status:       status,
		IsApproved:   approved,
		Company:      domain.CompanySnapshot{Name: "Acme"},
	}
	require.NoError(t, postgres.NewJobRepository(pool).Create(ctx, job))
	_, err := pool.Exec(ctx, `UPDATE jobs SET created_at = now() - make_interval(secs => $2) WHERE id = $1`,
		job.ID, age.Seconds())
	require.NoError(t, err)
	return job
}

func TestJobSearchPublicNewestFirst(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	employer := seedUser(t, pool, domain.RoleEmployer)
	// Unique location keeps the result set to this test's rows.
	location := "Town-" + uuid.NewString()

	older := seedJob(t, pool, employer.ID, location, domain.JobStatusOpen, true, 2*time.Hour)
	newer := seedJob(t, pool, employer.ID, location, domain.JobStatusOpen, true, time.Hour)
	seedJob(t, pool, employer.ID, location, domain.JobStatusDraft, false, 0)
	seedJob(t, pool, employer.ID, location, domain.JobStatusPending, false, 0)
	seedJob(t, pool, employer.ID, location, domain.JobStatusOpen, false, 0)

	jobs, total, err := postgres.NewJobRepository(pool).Search(ctx, domain.JobFilter{
		Location: location,
		Page:     domain.NewPage(1, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, jobs, 2)
	assert.Equal(t, newer.ID, jobs[0].ID)
	assert.Equal(t, older.ID, jobs[1].ID)
}

func TestApplicationNotesNewestFirst(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	employer := seedUser(t, pool, domain.RoleEmployer)
	candidate := seedUser(t, pool, domain.RoleCandidate)
	job := seedJob(t, pool, employer.ID, "Hanoi", domain.JobStatusOpen, true, 0)

	repo := postgres.NewApplicationRepository(pool)
	app := &domain.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		ResumeURL:   "/uploads/resumes/cv.pdf",
		Status:      domain.ApplicationStatusPending,
	}
	require.NoError(t, repo.Create(ctx, app))

	for _, text := range []string{"A", "B"} {
		require.NoError(t, repo.AddNote(ctx, &domain.Note{ApplicationID: app.ID, AuthorID: employer.ID, Text: text}))
	}

	got, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, got.Notes, 2)
	assert.Equal(t, "B", got.Notes[0].Text)
	assert.Equal(t, "A", got.Notes[1].Text)
	assert.Equal(t, employer.Name, got.Notes[0].Author.Name)
}
