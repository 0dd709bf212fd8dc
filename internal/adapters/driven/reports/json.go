package reports

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driven"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

var _ driven.ReportWriter = (*JSONWriter)(nil)

// reportVersion identifies the JSON report schema.
const reportVersion = "1.0"

type jsonReport struct {
	Metadata   jsonMetadata `json:"metadata"`
	Statistics jsonStats    `json:"estadisticas"`
	Cases      []jsonCase   `json:"procesos"`
}

type jsonMetadata struct {
	QueriedAt  string `json:"fecha_consulta"`
	TotalCases int    `json:"total_procesos"`
	Version    string `json:"version"`
}

type jsonStats struct {
	Total       int     `json:"total_procesados"`
	Succeeded   int     `json:"exitosos"`
	Private     int     `json:"privados"`
	NotFound    int     `json:"no_encontrados"`
	Failed      int     `json:"fallidos"`
	SuccessRate float64 `json:"tasa_exito"`
}

type jsonCase struct {
	Identifier      string `json:"radicado"`
	Plaintiff       string `json:"demandante"`
	Defendant       string `json:"demandado"`
	Court           string `json:"juzgado"`
	Department      string `json:"departamento"`
	ProcessType     string `json:"tipo_proceso"`
	ProcessClass    string `json:"clase_proceso"`
	ProcessSubclass string `json:"subclase_proceso"`
	LastActionDate  string `json:"fecha_ultima_actuacion"`
	Private         bool   `json:"es_privado"`
	Status          string `json:"status"`
}

// JSONWriter renders the JSON report: metadata, statistics and the
// full case list.
type JSONWriter struct {
	now func() time.Time
}

// NewJSONWriter creates the JSON report writer.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{now: time.Now}
}

// Format returns "json".
func (w *JSONWriter) Format() string { return "json" }

// Write renders the report under dir and returns the created path.
func (w *JSONWriter) Write(dir string, records []domain.CaseRecord, stats domain.RunStatistics) (string, error) {
	now := w.now()
	path, err := reportPath(dir, "json", now)
	if err != nil {
		return "", err
	}

	report := jsonReport{
		Metadata: jsonMetadata{
			QueriedAt:  now.Format(time.RFC3339),
			TotalCases: len(records),
			Version:    reportVersion,
		},
		Statistics: jsonStats{
			Total:       stats.Total,
			Succeeded:   stats.Succeeded,
			Private:     stats.Private,
			NotFound:    stats.NotFound,
			Failed:      stats.Failed,
			SuccessRate: math.Round(stats.SuccessRate()*100) / 100,
		},
		Cases: make([]jsonCase, 0, len(records)),
	}

	for _, record := range records {
		report.Cases = append(report.Cases, jsonCase{
			Identifier:      record.Identifier,
			Plaintiff:       record.Plaintiff,
			Defendant:       record.Defendant,
			Court:           record.Court,
			Department:      record.Department,
			ProcessType:     record.ProcessType,
			ProcessClass:    record.ProcessClass,
			ProcessSubclass: record.ProcessSubclass,
			LastActionDate:  record.LastActionDate,
			Private:         record.Private,
			Status:          string(record.Status),
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write json report: %w", err)
	}

	logger.Info("json report written to %s", path)
	return path, nil
}
