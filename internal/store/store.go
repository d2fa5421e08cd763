// Package store persists validation runs locally so accuracy numbers can
// be compared across scraper revisions.
package store

import (
	"context"

	"github.com/sells-group/execmatch/internal/model"
)

// RunFilter specifies criteria for listing validation runs.
type RunFilter struct {
	Status     model.RunStatus `json:"status,omitempty"`
	CompanyURL string          `json:"company_url,omitempty"`
	Limit      int             `json:"limit,omitempty"`
	Offset     int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for validation runs.
type Store interface {
	CreateRun(ctx context.Context, companyURL string) (*model.ValidationRun, error)
	CompleteRun(ctx context.Context, runID string, result *model.ResolutionResult) error
	FailRun(ctx context.Context, runID string, runErr error) error
	GetRun(ctx context.Context, runID string) (*model.ValidationRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.ValidationRun, error)

	Migrate(ctx context.Context) error
	Close() error
}
