package testutils

import (
	"scanv/scan"
	"sync"
)

// MockAction records every address it is invoked with.
type MockAction struct {
	ActionName string

	// Results overrides the result for specific addresses. Anything else gets ActionTaken.
	Results map[string]scan.ActionResult

	mu      sync.Mutex
	Invoked []string
}

// Name returns the configured name, or "firewallBlock" if empty.
func (a *MockAction) Name() string {
	if a.ActionName == "" {
		return "firewallBlock"
	}
	return a.ActionName
}

// Invoke records the address and returns the configured result.
func (a *MockAction) Invoke(clientAddress string) scan.ActionResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Invoked = append(a.Invoked, clientAddress)
	if r, ok := a.Results[clientAddress]; ok {
		return r
	}
	return scan.ActionTaken
}

// Calls returns a copy of the recorded addresses.
func (a *MockAction) Calls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.Invoked...)
}

// RecordingResultsLogger is a scan.ResultsLogger that keeps everything it is told.
type RecordingResultsLogger struct {
	Findings     []scan.Finding
	FaultedRules []string
	SourceErrors []error
	Summaries    []scan.RunSummary
}

// FindingDispatched records f.
func (l *RecordingResultsLogger) FindingDispatched(runID string, f scan.Finding) {
	l.Findings = append(l.Findings, f)
}

// RuleFaulted records the rule name.
func (l *RecordingResultsLogger) RuleFaulted(runID string, ruleName string, err error) {
	l.FaultedRules = append(l.FaultedRules, ruleName)
}

// SourceUnavailable records err.
func (l *RecordingResultsLogger) SourceUnavailable(runID string, err error) {
	l.SourceErrors = append(l.SourceErrors, err)
}

// RunCompleted records the summary.
func (l *RecordingResultsLogger) RunCompleted(summary scan.RunSummary) {
	l.Summaries = append(l.Summaries, summary)
}
