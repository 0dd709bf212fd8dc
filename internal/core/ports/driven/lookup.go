package driven

import (
	"context"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

// LookupClient fetches case data from the consultation service. One
// client instance is shared across a whole batch so the underlying
// session is reused.
type LookupClient interface {
	// SearchByIdentifier resolves a filing identifier to a case summary.
	// Returns domain.ErrNotFound when the identifier matches nothing.
	SearchByIdentifier(ctx context.Context, identifier string) (*domain.CaseSummary, error)

	// FetchDetail retrieves court and classification data for a process.
	FetchDetail(ctx context.Context, processID int64) (*domain.CaseDetail, error)

	// FetchDocket retrieves one page of procedural actions for a process.
	FetchDocket(ctx context.Context, processID int64, page int) (*domain.Docket, error)

	// Close releases the client's persistent connections.
	Close()
}
