package domain

const (
	// Placeholder is the sentinel substituted for any missing or
	// unavailable text field in a CaseRecord.
	Placeholder = "No disponible"

	// RestrictedMarker replaces docket-derived fields on private cases,
	// where the upstream API withholds detail and docket data.
	RestrictedMarker = "PROCESO PRIVADO - Información restringida"
)

// Status classifies the final outcome of one identifier's lookup.
type Status string

const (
	// StatusSuccess means the full pipeline completed and the record
	// carries detail (and possibly docket) data.
	StatusSuccess Status = "SUCCESS"

	// StatusPrivate means the case is access-restricted upstream.
	// It is a valid terminal state with reduced data, not a failure.
	StatusPrivate Status = "PRIVATE"

	// StatusNotFound means the upstream explicitly has no record for
	// the identifier.
	StatusNotFound Status = "NOT_FOUND"

	// StatusFailed means a mandatory lookup step failed.
	StatusFailed Status = "FAILED"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusPrivate, StatusNotFound, StatusFailed:
		return true
	}
	return false
}

// CaseRecord is the canonical per-case output unit. It is created once
// per identifier by the assembler and immutable thereafter; the report
// writers and the statistics aggregator are its only consumers.
type CaseRecord struct {
	// Identifier is the case-reference number the record was built for.
	Identifier string

	// Plaintiff and Defendant are extracted from the compound parties
	// string of the basic summary.
	Plaintiff string
	Defendant string

	// Court is the assigned court. For non-private records the detail
	// payload's court is authoritative and overrides the summary's.
	Court string

	// Department is the administrative region of the court.
	Department string

	// ProcessType, ProcessClass and ProcessSubclass classify the case.
	// Available only when the detail lookup succeeded.
	ProcessType     string
	ProcessClass    string
	ProcessSubclass string

	// LastActionDate is the date of the latest docket activity,
	// normalised to YYYY-MM-DD where the source format allows.
	LastActionDate string

	// LastActionText is the action text of the most recent docket entry.
	LastActionText string

	// Annotations summarises the annotation texts of the most recent
	// docket entries.
	Annotations string

	// Private mirrors the upstream privacy flag.
	Private bool

	// Status is the final pipeline outcome for this identifier.
	Status Status
}

// NewCaseRecord returns a record for the identifier with every text
// field at the placeholder and the given status. Assembly fills in
// whatever data the pipeline produced.
func NewCaseRecord(identifier string, status Status) CaseRecord {
	return CaseRecord{
		Identifier:      identifier,
		Plaintiff:       Placeholder,
		Defendant:       Placeholder,
		Court:           Placeholder,
		Department:      Placeholder,
		ProcessType:     Placeholder,
		ProcessClass:    Placeholder,
		ProcessSubclass: Placeholder,
		LastActionDate:  Placeholder,
		LastActionText:  Placeholder,
		Annotations:     Placeholder,
		Status:          status,
	}
}

// CaseSummary is the payload of the identifier-search call. It carries
// the internal process id needed for the follow-up calls plus the
// fields that remain available even for private cases.
type CaseSummary struct {
	// ProcessID is the opaque handle for the detail and docket calls.
	ProcessID int64

	// Private gates the rest of the pipeline: when set, no detail or
	// docket call is made.
	Private bool

	// Department and Court locate the case. Court here may be less
	// precise than the detail payload's.
	Department string
	Court      string

	// LastActionDate is the raw, format-inconsistent date string.
	LastActionDate string

	// PartiesRaw is the compound plaintiff/defendant string, segments
	// joined by " | " with "Demandante:"/"Demandado:" label prefixes.
	PartiesRaw string
}

// CaseDetail is the payload of the detail call, keyed by ProcessID.
type CaseDetail struct {
	// Court is the authoritative court assignment.
	Court string

	ProcessType     string
	ProcessClass    string
	ProcessSubclass string
}

// DocketEntry is one chronological action/annotation pair in a case's
// procedural history.
type DocketEntry struct {
	ActionText     string
	AnnotationText string
	Date           string
}

// Docket is the ordered docket of a case, most recent entry first.
// It may legitimately be absent; callers treat it as optional
// enrichment, never as a required payload.
type Docket struct {
	Entries []DocketEntry
}
