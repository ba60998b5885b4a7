package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total    int // names parsed
	Valid    int
	Invalid  int
	Rejected int // rejected fragments across all names
}

// AllValid reports whether every parsed name was valid.
func (s *RunStats) AllValid() bool { return s.Invalid == 0 }
