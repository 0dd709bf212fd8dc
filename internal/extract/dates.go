package extract

import (
	"strings"
	"time"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

// dateLayouts are the formats observed in upstream date fields, tried
// in order after any time component has been stripped.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
}

// NormalizeDate reduces an upstream date string to YYYY-MM-DD.
//
// Accepted inputs: ISO with a time component (truncated at 'T'), plain
// ISO dates, DD/MM/YYYY and YYYY/MM/DD. On total parse failure a
// warning is logged and the raw input is returned unmodified - the
// value is still useful to a human
// reader, so garbling it into an error would lose information. Empty
// input yields the placeholder.
func NormalizeDate(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return domain.Placeholder
	}

	// ISO datetime: keep only the date part.
	if idx := strings.IndexByte(value, 'T'); idx >= 0 {
		value = value[:idx]
	}
	value = strings.TrimSuffix(value, "Z")

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("2006-01-02")
		}
	}

	// Fallback, not an error: pass the original through untouched.
	logger.Warn("unparseable date %q, keeping it as is", raw)
	return raw
}
