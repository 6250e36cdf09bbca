package scan

// ResultsLogger is where the engine writes the high level results of a run.
type ResultsLogger interface {
	FindingDispatched(runID string, f Finding)
	RuleFaulted(runID string, ruleName string, err error)
	SourceUnavailable(runID string, err error)
	RunCompleted(summary RunSummary)
}
