package driving

import (
	"context"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

// BatchRunner executes a lookup over a list of filing identifiers.
type BatchRunner interface {
	// Run looks up every identifier in order and returns one record
	// per identifier, in input order, plus the run's statistics. When
	// ctx is cancelled mid-run the records gathered so far are
	// returned together with domain.ErrRunAborted.
	Run(ctx context.Context, identifiers []string) ([]domain.CaseRecord, domain.RunStatistics, error)
}

// ProgressSink receives per-case progress while a batch runs. The CLI
// implements it to render live progress; tests implement it to observe
// ordering.
type ProgressSink interface {
	// CaseStarted is called before identifier index (1-based) of total
	// is looked up.
	CaseStarted(index, total int, identifier string)

	// CaseFinished is called with the finished record for identifier
	// index (1-based) of total.
	CaseFinished(index, total int, record domain.CaseRecord)
}
