package reports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

const (
	separatorMajor = "============================================================"
	separatorMinor = "----------------------------------------"
)

// CountEntry is one bucket of a roll-up, largest first.
type CountEntry struct {
	Key   string
	Count int
}

// ByDepartment counts records per department, largest bucket first.
// Ties break alphabetically so output is stable across runs.
func ByDepartment(records []domain.CaseRecord) []CountEntry {
	return rollUp(records, func(r domain.CaseRecord) string { return r.Department })
}

// ByProcessType counts records per process type, largest bucket first.
func ByProcessType(records []domain.CaseRecord) []CountEntry {
	return rollUp(records, func(r domain.CaseRecord) string { return r.ProcessType })
}

func rollUp(records []domain.CaseRecord, key func(domain.CaseRecord) string) []CountEntry {
	counts := make(map[string]int)
	for _, record := range records {
		counts[key(record)]++
	}

	entries := make([]CountEntry, 0, len(counts))
	for k, n := range counts {
		entries = append(entries, CountEntry{Key: k, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// DetailedReport renders the per-department and per-type analysis
// appended to the text report.
func DetailedReport(records []domain.CaseRecord, stats domain.RunStatistics) string {
	if len(records) == 0 {
		return "No hay procesos para generar reporte"
	}

	var b strings.Builder

	b.WriteString(separatorMajor + "\n")
	b.WriteString("REPORTE DETALLADO DE PROCESOS\n")
	b.WriteString(separatorMajor + "\n\n")

	b.WriteString("ANÁLISIS POR DEPARTAMENTO:\n")
	for _, entry := range ByDepartment(records) {
		pct := float64(entry.Count) / float64(len(records)) * 100
		fmt.Fprintf(&b, "  %s: %d procesos (%.1f%%)\n", entry.Key, entry.Count, pct)
	}

	b.WriteString("\n" + separatorMinor + "\n")
	b.WriteString("ANÁLISIS POR TIPO DE PROCESO:\n")
	for _, entry := range ByProcessType(records) {
		pct := float64(entry.Count) / float64(len(records)) * 100
		fmt.Fprintf(&b, "  %s: %d procesos (%.1f%%)\n", entry.Key, entry.Count, pct)
	}

	b.WriteString("\n" + separatorMinor + "\n")
	b.WriteString("ESTADÍSTICAS GENERALES:\n")
	fmt.Fprintf(&b, "  Total procesados: %d\n", stats.Total)
	fmt.Fprintf(&b, "  Exitosos: %d\n", stats.Succeeded)
	fmt.Fprintf(&b, "  Privados: %d\n", stats.Private)
	fmt.Fprintf(&b, "  No encontrados: %d\n", stats.NotFound)
	fmt.Fprintf(&b, "  Fallidos: %d\n", stats.Failed)
	fmt.Fprintf(&b, "  Tasa de éxito: %.1f%%\n", stats.SuccessRate())

	return b.String()
}
