package model

import "time"

// RunStatus represents the current state of a validation run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// ValidationRun records one resolution pass for one company/URL, persisted
// so past accuracy numbers can be compared across scraper revisions.
type ValidationRun struct {
	ID         string            `json:"id"`
	CompanyURL string            `json:"company_url"`
	Status     RunStatus         `json:"status"`
	Result     *ResolutionResult `json:"result,omitempty"`
	Error      string            `json:"error,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
