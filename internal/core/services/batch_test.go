package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driving"
)

// stubAssembler maps identifiers to fixed statuses.
type stubAssembler struct {
	statuses map[string]domain.Status
	panicOn  string
	calls    []string
}

func (s *stubAssembler) Assemble(_ context.Context, identifier string) domain.CaseRecord {
	s.calls = append(s.calls, identifier)
	if identifier == s.panicOn {
		panic("boom")
	}
	status, ok := s.statuses[identifier]
	if !ok {
		status = domain.StatusSuccess
	}
	return domain.NewCaseRecord(identifier, status)
}

// recordingSink captures progress callbacks.
type recordingSink struct {
	started  []string
	finished []domain.CaseRecord
}

func (r *recordingSink) CaseStarted(_, _ int, identifier string) {
	r.started = append(r.started, identifier)
}

func (r *recordingSink) CaseFinished(_, _ int, record domain.CaseRecord) {
	r.finished = append(r.finished, record)
}

func newTestRunner(assembler caseAssembler, sink driving.ProgressSink) *BatchRunner {
	runner := NewBatchRunner(assembler, sink)
	runner.sleep = func(_ context.Context, _ time.Duration) {}
	return runner
}

func TestBatchRunner_Run(t *testing.T) {
	t.Run("one record per identifier in input order", func(t *testing.T) {
		ids := []string{"100000000000000000001", "100000000000000000002", "100000000000000000003"}
		assembler := &stubAssembler{}

		records, stats, err := newTestRunner(assembler, nil).Run(context.Background(), ids)

		require.NoError(t, err)
		require.Len(t, records, 3)
		for i, id := range ids {
			assert.Equal(t, id, records[i].Identifier)
		}
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 3, stats.Succeeded)
	})

	t.Run("counters sum to total across mixed outcomes", func(t *testing.T) {
		ids := []string{"100000000000000000001", "100000000000000000002", "100000000000000000003", "100000000000000000004"}
		assembler := &stubAssembler{statuses: map[string]domain.Status{
			ids[1]: domain.StatusPrivate,
			ids[2]: domain.StatusNotFound,
			ids[3]: domain.StatusFailed,
		}}

		records, stats, err := newTestRunner(assembler, nil).Run(context.Background(), ids)

		require.NoError(t, err)
		assert.Len(t, records, 4)
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, stats.Total, stats.Succeeded+stats.Private+stats.NotFound+stats.Failed)
		assert.InDelta(t, 50.0, stats.SuccessRate(), 0.001)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, _, err := newTestRunner(&stubAssembler{}, nil).Run(context.Background(), nil)

		assert.ErrorIs(t, err, domain.ErrNoIdentifiers)
	})

	t.Run("a panicking identifier is recorded as FAILED and the batch continues", func(t *testing.T) {
		ids := []string{"100000000000000000001", "100000000000000000002", "100000000000000000003"}
		assembler := &stubAssembler{panicOn: ids[1]}

		records, stats, err := newTestRunner(assembler, nil).Run(context.Background(), ids)

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, domain.StatusFailed, records[1].Status)
		assert.Equal(t, domain.StatusSuccess, records[2].Status)
		assert.Equal(t, 1, stats.Failed)
	})

	t.Run("cancellation preserves partial results", func(t *testing.T) {
		ids := []string{"100000000000000000001", "100000000000000000002", "100000000000000000003"}
		assembler := &stubAssembler{}

		ctx, cancel := context.WithCancel(context.Background())
		runner := NewBatchRunner(assembler, nil)
		runner.sleep = func(_ context.Context, _ time.Duration) {
			// Simulate the operator interrupting during the pause.
			cancel()
		}

		records, stats, err := runner.Run(ctx, ids)

		assert.ErrorIs(t, err, domain.ErrRunAborted)
		require.Len(t, records, 1)
		assert.Equal(t, ids[0], records[0].Identifier)
		assert.Equal(t, 1, stats.Total)
	})

	t.Run("progress sink observes every identifier in order", func(t *testing.T) {
		ids := []string{"100000000000000000001", "100000000000000000002"}
		sink := &recordingSink{}

		_, _, err := newTestRunner(&stubAssembler{}, sink).Run(context.Background(), ids)

		require.NoError(t, err)
		assert.Equal(t, ids, sink.started)
		require.Len(t, sink.finished, 2)
		assert.Equal(t, ids[0], sink.finished[0].Identifier)
	})

	t.Run("pauses between identifiers but not after the last", func(t *testing.T) {
		ids := []string{"100000000000000000001", "100000000000000000002", "100000000000000000003"}
		assembler := &stubAssembler{}
		runner := NewBatchRunner(assembler, nil)

		var pauses int
		runner.sleep = func(_ context.Context, d time.Duration) {
			pauses++
			assert.Equal(t, interCasePause, d)
		}

		_, _, err := runner.Run(context.Background(), ids)

		require.NoError(t, err)
		assert.Equal(t, 2, pauses)
	})
}
