package driven

import (
	"context"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

// RunStore persists run history.
type RunStore interface {
	// SaveRun records a finished run and its per-case outcomes.
	SaveRun(ctx context.Context, run domain.Run, records []domain.CaseRecord) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)

	// GetRun retrieves one run with its per-case outcomes.
	GetRun(ctx context.Context, runID string) (*domain.Run, []domain.CaseRecord, error)

	// Close releases the store.
	Close() error
}
