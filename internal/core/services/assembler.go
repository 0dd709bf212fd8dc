package services

import (
	"context"
	"errors"
	"time"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driven"
	"github.com/litigio-labs/consulta-cli/internal/extract"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

// detailPause is the pause between the basic lookup and the detail
// call of one case, keeping consecutive calls for the same case from
// arriving back to back at the upstream.
const detailPause = 1 * time.Second

// Assembler builds one CaseRecord per filing identifier by walking the
// three lookup calls in order. It is a strict one-pass pipeline: no
// retries, no re-entry; a failed mandatory step ends that identifier's
// assembly.
type Assembler struct {
	client driven.LookupClient

	// sleep is swapped out in tests for a no-op.
	sleep func(ctx context.Context, d time.Duration)
}

// NewAssembler creates an assembler backed by client.
func NewAssembler(client driven.LookupClient) *Assembler {
	return &Assembler{
		client: client,
		sleep:  sleepCtx,
	}
}

// Assemble looks up one identifier and returns its record. It always
// returns a record, whatever happens upstream: lookup failures are
// absorbed into the record's status, never propagated.
func (a *Assembler) Assemble(ctx context.Context, identifier string) domain.CaseRecord {
	trimmed, err := domain.ValidateIdentifier(identifier)
	if err != nil {
		logger.Warn("invalid identifier %q: %v", identifier, err)
		return domain.NewCaseRecord(identifier, domain.StatusFailed)
	}
	identifier = trimmed

	summary, err := a.client.SearchByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewCaseRecord(identifier, domain.StatusNotFound)
		}
		logger.Warn("basic lookup failed for %s: %v", identifier, err)
		return domain.NewCaseRecord(identifier, domain.StatusFailed)
	}

	if summary.Private {
		return a.assemblePrivate(identifier, summary)
	}

	if summary.ProcessID == 0 {
		logger.Warn("lookup for %s returned no process id: %v", identifier, domain.ErrMissingProcessID)
		return domain.NewCaseRecord(identifier, domain.StatusFailed)
	}

	// Consecutive calls for the same case are spaced out.
	a.sleep(ctx, detailPause)

	detail, err := a.client.FetchDetail(ctx, summary.ProcessID)
	if err != nil {
		// The summary data is deliberately discarded here: a record
		// without its authoritative court and classification is worse
		// than an honest failure.
		logger.Warn("detail lookup failed for %s: %v", identifier, err)
		return domain.NewCaseRecord(identifier, domain.StatusFailed)
	}

	record := domain.NewCaseRecord(identifier, domain.StatusSuccess)
	record.Plaintiff, record.Defendant = extract.Parties(summary.PartiesRaw)
	record.Department = textOrPlaceholder(summary.Department)
	record.LastActionDate = extract.NormalizeDate(summary.LastActionDate)

	// Detail court overrides the summary's less precise value.
	record.Court = textOrPlaceholder(detail.Court)
	if record.Court == domain.Placeholder {
		record.Court = textOrPlaceholder(summary.Court)
	}
	record.ProcessType = textOrPlaceholder(detail.ProcessType)
	record.ProcessClass = textOrPlaceholder(detail.ProcessClass)
	record.ProcessSubclass = textOrPlaceholder(detail.ProcessSubclass)

	docket, err := a.client.FetchDocket(ctx, summary.ProcessID, 1)
	if err != nil {
		// Docket data is enrichment. Missing docket leaves the
		// docket-derived fields at their placeholders.
		logger.Warn("docket lookup failed for %s, continuing without docket: %v", identifier, err)
		return record
	}

	record.LastActionText = extract.LastAction(docket)
	record.Annotations = extract.Annotations(docket)
	return record
}

// assemblePrivate is the terminal branch for access-restricted cases.
// Only summary fields are used and no further calls are made.
func (a *Assembler) assemblePrivate(identifier string, summary *domain.CaseSummary) domain.CaseRecord {
	logger.Info("case %s is private, skipping detail and docket", identifier)

	record := domain.NewCaseRecord(identifier, domain.StatusPrivate)
	record.Private = true
	record.Plaintiff, record.Defendant = extract.Parties(summary.PartiesRaw)
	record.Department = textOrPlaceholder(summary.Department)
	record.Court = textOrPlaceholder(summary.Court)
	record.LastActionDate = extract.NormalizeDate(summary.LastActionDate)
	record.LastActionText = domain.RestrictedMarker
	record.Annotations = domain.RestrictedMarker
	return record
}

func textOrPlaceholder(s string) string {
	if s == "" {
		return domain.Placeholder
	}
	return s
}

// sleepCtx sleeps for d unless ctx is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
