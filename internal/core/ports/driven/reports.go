package driven

import (
	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

// ReportWriter renders a finished run into one output format.
type ReportWriter interface {
	// Write renders records and stats to a file under dir and returns
	// the path of the file it created.
	Write(dir string, records []domain.CaseRecord, stats domain.RunStatistics) (string, error)

	// Format returns the writer's format name ("txt", "csv", "json", "xlsx").
	Format() string
}
