package reports

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driven"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

var _ driven.ReportWriter = (*XLSXWriter)(nil)

const (
	resultsSheet = "Resultados"
	summarySheet = "Resumen"
)

// xlsxHeaders is the header row of the results sheet.
var xlsxHeaders = []string{
	"Radicado", "Demandante", "Demandado", "Juzgado", "Departamento",
	"Tipo de Proceso", "Clase", "Subclase",
	"Última Actuación (Fecha)", "Última Actuación", "Anotaciones",
	"Privado", "Estado",
}

// XLSXWriter renders the workbook report: a results sheet with one row
// per case and a summary sheet with the run statistics.
type XLSXWriter struct {
	now func() time.Time
}

// NewXLSXWriter creates the workbook report writer.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{now: time.Now}
}

// Format returns "xlsx".
func (w *XLSXWriter) Format() string { return "xlsx" }

// Write renders the report under dir and returns the created path.
func (w *XLSXWriter) Write(dir string, records []domain.CaseRecord, stats domain.RunStatistics) (string, error) {
	path, err := reportPath(dir, "xlsx", w.now())
	if err != nil {
		return "", err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	workbook.SetSheetName(workbook.GetSheetName(0), resultsSheet)

	for col, header := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("header cell: %w", err)
		}
		if err := workbook.SetCellValue(resultsSheet, cell, header); err != nil {
			return "", fmt.Errorf("write header: %w", err)
		}
	}

	for i, record := range records {
		row := []any{
			record.Identifier,
			record.Plaintiff,
			record.Defendant,
			record.Court,
			record.Department,
			record.ProcessType,
			record.ProcessClass,
			record.ProcessSubclass,
			record.LastActionDate,
			record.LastActionText,
			record.Annotations,
			record.Private,
			string(record.Status),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("row cell: %w", err)
		}
		if err := workbook.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return "", fmt.Errorf("write row for %s: %w", record.Identifier, err)
		}
	}

	if err := w.writeSummary(workbook, stats); err != nil {
		return "", err
	}

	if err := workbook.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook report: %w", err)
	}

	logger.Info("xlsx report written to %s", path)
	return path, nil
}

func (w *XLSXWriter) writeSummary(workbook *excelize.File, stats domain.RunStatistics) error {
	if _, err := workbook.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	rows := [][]any{
		{"Total procesados", stats.Total},
		{"Exitosos", stats.Succeeded},
		{"Privados", stats.Private},
		{"No encontrados", stats.NotFound},
		{"Fallidos", stats.Failed},
		{"Tasa de éxito (%)", stats.SuccessRate()},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("summary cell: %w", err)
		}
		if err := workbook.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	return nil
}
