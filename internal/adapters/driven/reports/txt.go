package reports

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driven"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

var _ driven.ReportWriter = (*TXTWriter)(nil)

// TXTWriter renders the human-readable text report: executive summary,
// one formatted block per case, then the detailed analysis.
type TXTWriter struct {
	now func() time.Time
}

// NewTXTWriter creates the text report writer.
func NewTXTWriter() *TXTWriter {
	return &TXTWriter{now: time.Now}
}

// Format returns "txt".
func (w *TXTWriter) Format() string { return "txt" }

// Write renders the report under dir and returns the created path.
func (w *TXTWriter) Write(dir string, records []domain.CaseRecord, stats domain.RunStatistics) (string, error) {
	now := w.now()
	path, err := reportPath(dir, "txt", now)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString("CONSULTA DE PROCESOS JUDICIALES\n")
	fmt.Fprintf(&b, "Fecha y hora: %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString(separatorMajor + "\n\n")

	b.WriteString("RESUMEN EJECUTIVO:\n")
	fmt.Fprintf(&b, "Total de procesos consultados: %d\n", stats.Succeeded)
	fmt.Fprintf(&b, "Procesos privados encontrados: %d\n", stats.Private)
	fmt.Fprintf(&b, "Procesos no encontrados: %d\n", stats.NotFound)
	fmt.Fprintf(&b, "Procesos fallidos: %d\n", stats.Failed)
	fmt.Fprintf(&b, "Tasa de éxito: %.1f%%\n\n", stats.SuccessRate())
	b.WriteString(separatorMajor + "\n\n")

	for _, record := range records {
		b.WriteString(formatRecord(record))
		b.WriteString("\n\n")
	}

	b.WriteString("\n" + separatorMajor + "\n")
	b.WriteString("ANÁLISIS DETALLADO\n")
	b.WriteString(separatorMajor + "\n")
	b.WriteString(DetailedReport(records, stats))

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write text report: %w", err)
	}

	logger.Info("text report written to %s", path)
	return path, nil
}

// formatRecord renders one case block. Private cases get the reduced
// layout since most of their fields are withheld upstream.
func formatRecord(record domain.CaseRecord) string {
	var b strings.Builder

	b.WriteString(separatorMinor + "\n")
	fmt.Fprintf(&b, "Radicado del proceso: %s\n", record.Identifier)

	if record.Private {
		b.WriteString(domain.RestrictedMarker + "\n")
		b.WriteString("Información disponible:\n")
		fmt.Fprintf(&b, "  Juzgado: %s\n", record.Court)
		fmt.Fprintf(&b, "  Departamento: %s\n", record.Department)
		fmt.Fprintf(&b, "  Última fecha de actuación: %s\n", record.LastActionDate)
		b.WriteString("  Estado: " + domain.RestrictedMarker + "\n")
		b.WriteString(separatorMinor)
		return b.String()
	}

	b.WriteString("Información del proceso:\n")
	fmt.Fprintf(&b, "  Demandante: %s\n", record.Plaintiff)
	fmt.Fprintf(&b, "  Demandado: %s\n", record.Defendant)
	fmt.Fprintf(&b, "  Juzgado: %s\n", record.Court)
	fmt.Fprintf(&b, "  Departamento: %s\n", record.Department)
	fmt.Fprintf(&b, "  Tipo del proceso: %s\n", record.ProcessType)
	fmt.Fprintf(&b, "  Clase del proceso: %s\n", record.ProcessClass)
	fmt.Fprintf(&b, "  Subclase del proceso: %s\n", record.ProcessSubclass)
	fmt.Fprintf(&b, "  Última fecha de actuación: %s", record.LastActionDate)

	// Docket enrichment only appears when it was actually fetched.
	if record.LastActionText != domain.Placeholder {
		fmt.Fprintf(&b, "\n  Última actuación: %s", record.LastActionText)
	}
	if record.Annotations != domain.Placeholder {
		fmt.Fprintf(&b, "\n  Anotaciones: %s", record.Annotations)
	}

	b.WriteString("\n" + separatorMinor)
	return b.String()
}
