package scan

// RunSummary is the outcome of one scan run.
type RunSummary struct {
	RunID        string
	SourceStatus SourceStatus
	SnapshotSize int

	// RuleOrder lists the rules that completed, in the order they ran.
	RuleOrder []string
	PerRule   map[string]int
	Faulted   []string

	// Acted counts dispatches whose side effect was performed. Dispatches an action skipped on purpose,
	// such as the scanner's own host or a client the enforcer blocked recently, count as SuppressedNoOps.
	Acted           int
	SuppressedNoOps int
	ActionFaults    int
}

// Findings is the total number of findings over all rules that completed.
func (s RunSummary) Findings() (n int) {
	for _, c := range s.PerRule {
		n += c
	}
	return
}

// Clean is true only when there was data to scan and nothing was found or faulted.
func (s RunSummary) Clean() bool {
	return s.SourceStatus == SourceOK && len(s.Faulted) == 0 && s.Findings() == 0
}
