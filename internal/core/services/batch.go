package services

import (
	"context"
	"time"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driving"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

// interCasePause is the pause between consecutive identifiers. It
// applies after every outcome, including failures, since the upstream
// counts failed requests against its quota too.
const interCasePause = 3 * time.Second

// caseAssembler is the slice of Assembler the runner needs; tests
// substitute a stub.
type caseAssembler interface {
	Assemble(ctx context.Context, identifier string) domain.CaseRecord
}

// Ensure BatchRunner implements the driving port.
var _ driving.BatchRunner = (*BatchRunner)(nil)

// BatchRunner walks an ordered identifier list through the assembler,
// one at a time, and aggregates the outcomes. One bad identifier never
// aborts the batch; only context cancellation stops it early.
type BatchRunner struct {
	assembler caseAssembler
	progress  driving.ProgressSink

	// sleep is swapped out in tests for a no-op.
	sleep func(ctx context.Context, d time.Duration)
}

// NewBatchRunner creates a batch runner. progress may be nil when no
// live reporting is wanted.
func NewBatchRunner(assembler caseAssembler, progress driving.ProgressSink) *BatchRunner {
	return &BatchRunner{
		assembler: assembler,
		progress:  progress,
		sleep:     sleepCtx,
	}
}

// Run looks up every identifier in order. The returned slice holds
// exactly one record per processed identifier, in input order. On
// cancellation the records gathered so far are returned together with
// domain.ErrRunAborted; they are never discarded.
func (r *BatchRunner) Run(ctx context.Context, identifiers []string) ([]domain.CaseRecord, domain.RunStatistics, error) {
	if len(identifiers) == 0 {
		return nil, domain.RunStatistics{}, domain.ErrNoIdentifiers
	}

	total := len(identifiers)
	records := make([]domain.CaseRecord, 0, total)
	var stats domain.RunStatistics

	logger.Info("starting batch of %d identifiers", total)

	for i, identifier := range identifiers {
		if ctx.Err() != nil {
			logger.Warn("batch aborted after %d of %d identifiers", len(records), total)
			return records, stats, domain.ErrRunAborted
		}

		if r.progress != nil {
			r.progress.CaseStarted(i+1, total, identifier)
		}

		record := r.assembleSafely(ctx, identifier)
		records = append(records, record)
		stats.Record(record.Status)

		logger.Info("[%d/%d] %s -> %s", i+1, total, identifier, record.Status)
		if r.progress != nil {
			r.progress.CaseFinished(i+1, total, record)
		}

		if i < total-1 {
			r.sleep(ctx, interCasePause)
		}
	}

	logger.Info("batch finished: %d total, %d success, %d private, %d not found, %d failed (%.1f%% success rate)",
		stats.Total, stats.Succeeded, stats.Private, stats.NotFound, stats.Failed, stats.SuccessRate())

	return records, stats, nil
}

// assembleSafely contains any panic escaping the assembler to the one
// identifier it belongs to.
func (r *BatchRunner) assembleSafely(ctx context.Context, identifier string) (record domain.CaseRecord) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("assembly panicked for %s: %v", identifier, rec)
			record = domain.NewCaseRecord(identifier, domain.StatusFailed)
		}
	}()
	return r.assembler.Assemble(ctx, identifier)
}
