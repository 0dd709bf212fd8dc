package reports

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driven"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

var _ driven.ReportWriter = (*CSVWriter)(nil)

// csvColumns is the fixed column order of the CSV report.
var csvColumns = []string{
	"radicado", "demandante", "demandado", "juzgado", "departamento",
	"tipo_proceso", "clase_proceso", "subclase_proceso",
	"fecha_ultima_actuacion", "es_privado", "status",
}

// CSVWriter renders the machine-readable CSV report, one row per case.
type CSVWriter struct {
	now func() time.Time
}

// NewCSVWriter creates the CSV report writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{now: time.Now}
}

// Format returns "csv".
func (w *CSVWriter) Format() string { return "csv" }

// Write renders the report under dir and returns the created path.
func (w *CSVWriter) Write(dir string, records []domain.CaseRecord, _ domain.RunStatistics) (string, error) {
	path, err := reportPath(dir, "csv", w.now())
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv report: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvColumns); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Identifier,
			record.Plaintiff,
			record.Defendant,
			record.Court,
			record.Department,
			record.ProcessType,
			record.ProcessClass,
			record.ProcessSubclass,
			record.LastActionDate,
			strconv.FormatBool(record.Private),
			string(record.Status),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write csv row for %s: %w", record.Identifier, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv report: %w", err)
	}

	logger.Info("csv report written to %s", path)
	return path, nil
}
