package domain

import (
	"fmt"
	"strings"
)

// Identifier format limits for the 23-digit national numbering scheme.
// The upstream accepts partial identifiers, so a range is allowed.
const (
	MinIdentifierLength = 15
	MaxIdentifierLength = 30
)

// ValidateIdentifier checks that a case identifier is a plausible
// lookup key: digits only, within the accepted length range.
// It returns the trimmed identifier on success.
func ValidateIdentifier(raw string) (string, error) {
	id := strings.TrimSpace(raw)

	if id == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrInvalidIdentifier)
	}
	if len(id) < MinIdentifierLength {
		return "", fmt.Errorf("%w: %q is shorter than %d characters",
			ErrInvalidIdentifier, id, MinIdentifierLength)
	}
	if len(id) > MaxIdentifierLength {
		return "", fmt.Errorf("%w: %q is longer than %d characters",
			ErrInvalidIdentifier, id, MaxIdentifierLength)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q contains non-digit characters",
				ErrInvalidIdentifier, id)
		}
	}

	return id, nil
}
