package sqlite_test

import (
	"context"
	"testing"
	"time"

	"job-board-backend/internal/domain"
	"job-board-backend/internal/repository/sqlite"
	"job-board-backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) domain.JobRepository {
	t.Helper()
	db, err := database.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return sqlite.NewJobRepository(db)
}

func seed(t *testing.T, repo domain.JobRepository) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{Title: "Frontend Engineer", Company: "Acme", Location: "Remote", Type: domain.JobTypeFullTime, Tags: []string{"React", "TypeScript"}, CreatedAt: base},
		{Title: "Contract SRE", Company: "Globex", Location: "Berlin", Type: domain.JobTypeContract, Tags: []string{"Kubernetes"}, CreatedAt: base.Add(time.Hour)},
		{Title: "Intern", Company: "Initech", Location: "Remote (EU)", Type: domain.JobTypeInternship, Tags: []string{}, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "RN Dev", Company: "Hooli", Location: "NYC", Type: domain.JobTypeContract, Tags: []string{"react-native", "50%_off"}, CreatedAt: base.Add(3 * time.Hour)},
	}
	for i := range jobs {
		require.NoError(t, repo.Create(context.Background(), &jobs[i]))
		require.NotEmpty(t, jobs[i].ID)
	}
}

func titles(jobs []domain.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func TestFetchOrdersNewestFirst(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo)

	jobs, err := repo.Fetch(context.Background(), domain.JobFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"RN Dev", "Intern", "Contract SRE", "Frontend Engineer"}, titles(jobs))
}

func TestFetchFilters(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo)

	tests := []struct {
		name   string
		filter domain.JobFilter
		want   []string
	}{
		{"type exact", domain.JobFilter{Type: "Contract"}, []string{"RN Dev", "Contract SRE"}},
		{"type is not a substring match", domain.JobFilter{Type: "Contr"}, []string{}},
		{"location substring ignores case", domain.JobFilter{Location: "remo"}, []string{"Intern", "Frontend Engineer"}},
		{"tag substring ignores case", domain.JobFilter{Tag: "react"}, []string{"RN Dev", "Frontend Engineer"}},
		{"tag wildcards are literal", domain.JobFilter{Tag: "%_o"}, []string{"RN Dev"}},
		{"tag wildcard does not match everything", domain.JobFilter{Tag: "%"}, []string{"RN Dev"}},
		{"filters combine", domain.JobFilter{Type: "Full Time", Tag: "react"}, []string{"Frontend Engineer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := repo.Fetch(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(jobs))
		})
	}
}

func TestCreateKeepsTagOrderAndFields(t *testing.T) {
	repo := newRepo(t)
	created := time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)

	job := &domain.Job{
		Title:       "Go Dev",
		Company:     "Acme",
		Location:    "Remote",
		Link:        "https://acme.test/go",
		Description: "Write Go",
		Type:        domain.JobTypePartTime,
		Tags:        []string{"zeta", "alpha", "mid"},
		CreatedAt:   created,
	}
	require.NoError(t, repo.Create(context.Background(), job))

	jobs, err := repo.Fetch(context.Background(), domain.JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	got := jobs[0]
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, got.Tags)
	assert.Equal(t, domain.JobTypePartTime, got.Type)
	assert.Equal(t, "https://acme.test/go", got.Link)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestFetchReturnsEmptyTagsAsSlice(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.Create(context.Background(), &domain.Job{Title: "No tags", CreatedAt: time.Now()}))

	jobs, err := repo.Fetch(context.Background(), domain.JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.NotNil(t, jobs[0].Tags)
	assert.Empty(t, jobs[0].Tags)
}

func TestFetchFoldsNonASCIICase(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.Create(context.Background(), &domain.Job{
		Title: "Elixir Dev", Location: "MÜNCHEN", Tags: []string{"ÉLIXIR"}, CreatedAt: time.Now(),
	}))

	for _, f := range []domain.JobFilter{{Location: "münchen"}, {Tag: "élixir"}, {Location: "Ünch", Tag: "Lix"}} {
		jobs, err := repo.Fetch(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, []string{"Elixir Dev"}, titles(jobs), "filter %+v", f)
	}
}

func TestMigrateBackfillsLoweredColumns(t *testing.T) {
	db, err := database.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, sqlite.Migrate(db))

	// rows as an older schema wrote them, without the lowered columns
	require.NoError(t, db.Exec(`INSERT INTO jobs (id, title, company, location, link, description, type, created_at)
		VALUES ('old-1', 'Legacy', '', 'ZÜRICH', '', '', 'Contract', ?)`, time.Now().UTC()).Error)
	require.NoError(t, db.Exec(`INSERT INTO job_tags (job_id, position, value) VALUES ('old-1', 0, 'ÖKO')`).Error)

	require.NoError(t, sqlite.Migrate(db))

	repo := sqlite.NewJobRepository(db)
	jobs, err := repo.Fetch(context.Background(), domain.JobFilter{Location: "zürich", Tag: "öko"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Legacy"}, titles(jobs))
	assert.Equal(t, []string{"ÖKO"}, jobs[0].Tags)
}
