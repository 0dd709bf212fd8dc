package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/litigio-labs/consulta-cli/internal/core/ports/driven"
)

const (
	// filePrefix starts every report file name.
	filePrefix = "resultados_consulta_procesos"

	// fileTimestampLayout makes report names sortable and unique per run.
	fileTimestampLayout = "20060102_150405"
)

// NewWriters returns one writer per requested format name. Unknown
// names are an error so a typo in the configuration surfaces before
// the batch runs, not after.
func NewWriters(formats []string) ([]driven.ReportWriter, error) {
	writers := make([]driven.ReportWriter, 0, len(formats))
	for _, format := range formats {
		switch format {
		case "txt":
			writers = append(writers, NewTXTWriter())
		case "csv":
			writers = append(writers, NewCSVWriter())
		case "json":
			writers = append(writers, NewJSONWriter())
		case "xlsx":
			writers = append(writers, NewXLSXWriter())
		default:
			return nil, fmt.Errorf("unknown report format %q", format)
		}
	}
	return writers, nil
}

// reportPath builds the timestamped file path for one report, creating
// dir if needed.
func reportPath(dir, extension string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}
	name := fmt.Sprintf("%s_%s.%s", filePrefix, now.Format(fileTimestampLayout), extension)
	return filepath.Join(dir, name), nil
}
