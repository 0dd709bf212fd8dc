package extract

import (
	"strings"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

const (
	// partiesSeparator joins the segments of the compound parties string.
	partiesSeparator = " | "

	plaintiffLabel = "Demandante:"
	defendantLabel = "Demandado:"
)

// Parties splits the compound parties string of a case summary into
// plaintiff and defendant. Segments are separated by " | " and carry a
// "Demandante:" or "Demandado:" label prefix; segments matching neither
// label are ignored. A missing label leaves the corresponding side at
// the placeholder.
func Parties(partiesRaw string) (plaintiff, defendant string) {
	plaintiff = domain.Placeholder
	defendant = domain.Placeholder

	if partiesRaw == "" {
		return plaintiff, defendant
	}

	for _, segment := range strings.Split(partiesRaw, partiesSeparator) {
		segment = strings.TrimSpace(segment)

		switch {
		case strings.Contains(segment, plaintiffLabel):
			plaintiff = collapseWhitespace(strings.Replace(segment, plaintiffLabel, "", 1))
		case strings.Contains(segment, defendantLabel):
			defendant = collapseWhitespace(strings.Replace(segment, defendantLabel, "", 1))
		}
	}

	return plaintiff, defendant
}

// collapseWhitespace trims s and squeezes internal runs of whitespace
// (including newlines the upstream embeds) into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
