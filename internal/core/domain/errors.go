package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates the upstream explicitly has no record for
	// the requested identifier.
	ErrNotFound = errors.New("not found")

	// ErrInvalidIdentifier indicates a case identifier failed format
	// validation before any network call was made.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrMissingProcessID indicates a nominally successful search
	// response carried no internal process id to continue with.
	ErrMissingProcessID = errors.New("missing internal process id")

	// ErrNoIdentifiers indicates the input source yielded no valid
	// identifiers to process.
	ErrNoIdentifiers = errors.New("no identifiers to process")

	// ErrRunAborted indicates the batch was interrupted before
	// completing; partial results remain valid.
	ErrRunAborted = errors.New("run aborted")
)
