package domain

// RunStatistics accumulates per-status counters for one batch run.
// It is owned by the batch runner and updated from a single goroutine,
// so no locking is required.
type RunStatistics struct {
	Total     int
	Succeeded int
	Private   int
	NotFound  int
	Failed    int
}

// Record increments the counter matching the record's final status.
// Unknown statuses count as failed so the invariant
// Total == Succeeded+Private+NotFound+Failed always holds.
func (s *RunStatistics) Record(status Status) {
	s.Total++

	switch status {
	case StatusSuccess:
		s.Succeeded++
	case StatusPrivate:
		s.Private++
	case StatusNotFound:
		s.NotFound++
	default:
		s.Failed++
	}
}

// SuccessRate returns the percentage of identifiers that yielded usable
// data. Private cases count as successes: the lookup worked, the
// upstream simply restricts the payload.
func (s *RunStatistics) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded+s.Private) / float64(s.Total) * 100
}
