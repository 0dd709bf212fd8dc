package driven

// IdentifierReader extracts filing identifiers from an input file.
type IdentifierReader interface {
	// Read returns the valid identifiers found in the file at path, in
	// file order. Entries failing identifier validation are dropped.
	// Returns domain.ErrNoIdentifiers when nothing valid remains.
	Read(path string) ([]string, error)
}
