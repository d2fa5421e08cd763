package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/execmatch/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestCreateAndGetRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "https://acme.com")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "https://acme.com", got.CompanyURL)
	assert.Equal(t, model.RunStatusRunning, got.Status)
	assert.Nil(t, got.Result)
}

func TestGetRunNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetRun(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCompleteRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "https://acme.com")
	require.NoError(t, err)

	result := &model.ResolutionResult{
		Matches: []model.Match{{
			Candidate:  model.EntityRecord{FullName: "Jane Doe"},
			Tier:       model.TierExact,
			Confidence: 0.95,
		}},
		DiscoveryRate:   100.0,
		AttributionRate: 50.0,
	}
	require.NoError(t, s.CompleteRun(ctx, run.ID, result))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	require.NotNil(t, got.Result)
	assert.Equal(t, 100.0, got.Result.DiscoveryRate)
	assert.Equal(t, 50.0, got.Result.AttributionRate)
	require.Len(t, got.Result.Matches, 1)
	assert.Equal(t, model.TierExact, got.Result.Matches[0].Tier)
}

func TestCompleteRunNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.CompleteRun(context.Background(), "nonexistent", &model.ResolutionResult{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFailRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "https://acme.com")
	require.NoError(t, err)
	require.NoError(t, s.FailRun(ctx, run.ID, errors.New("scrape timed out")))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
	assert.Equal(t, "scrape timed out", got.Error)
}

func TestListRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateRun(ctx, "https://acme.com")
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, "https://other.com")
	require.NoError(t, err)
	require.NoError(t, s.CompleteRun(ctx, first.ID, &model.ResolutionResult{DiscoveryRate: 100.0}))

	all, err := s.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	complete, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, first.ID, complete[0].ID)

	byCompany, err := s.ListRuns(ctx, RunFilter{CompanyURL: "https://other.com"})
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "https://other.com", byCompany[0].CompanyURL)

	limited, err := s.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
