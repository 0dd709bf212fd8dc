package domain

import "time"

// Run is one completed batch execution, as recorded in run history.
type Run struct {
	// ID is the run's unique identifier.
	ID string

	// InputFile is the path of the workbook the identifiers came from.
	InputFile string

	// StartedAt is when the batch began.
	StartedAt time.Time

	// FinishedAt is when the batch ended, whether it completed or was
	// interrupted.
	FinishedAt time.Time

	// Stats aggregates the per-case outcomes of the run.
	Stats RunStatistics
}

// Duration returns the wall-clock length of the run.
func (r Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
