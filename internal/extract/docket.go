package extract

import (
	"strings"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

// maxAnnotations caps how many recent docket entries contribute to the
// annotations summary.
const maxAnnotations = 3

// LastAction returns the action text of the most recent docket entry,
// whitespace-collapsed. The docket is ordered most-recent-first
// upstream, so that is the first entry. A nil or empty docket yields
// the placeholder.
func LastAction(docket *domain.Docket) string {
	if docket == nil || len(docket.Entries) == 0 {
		return domain.Placeholder
	}

	action := collapseWhitespace(docket.Entries[0].ActionText)
	if action == "" {
		return domain.Placeholder
	}
	return action
}

// Annotations joins the annotation texts of the most recent docket
// entries (at most three, blanks skipped) with " | ". An empty result
// yields the placeholder.
func Annotations(docket *domain.Docket) string {
	if docket == nil || len(docket.Entries) == 0 {
		return domain.Placeholder
	}

	entries := docket.Entries
	if len(entries) > maxAnnotations {
		entries = entries[:maxAnnotations]
	}

	var annotations []string
	for _, entry := range entries {
		if annotation := collapseWhitespace(entry.AnnotationText); annotation != "" {
			annotations = append(annotations, annotation)
		}
	}

	if len(annotations) == 0 {
		return domain.Placeholder
	}
	return strings.Join(annotations, " | ")
}
