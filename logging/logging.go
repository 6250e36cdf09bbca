package logging

import (
	"scanv/scan"
)

// Tee creates a results logger that forwards every result to each of the given loggers in turn.
func Tee(loggers ...scan.ResultsLogger) scan.ResultsLogger {
	return teeResultsLogger(loggers)
}

type teeResultsLogger []scan.ResultsLogger

func (t teeResultsLogger) FindingDispatched(runID string, f scan.Finding) {
	for _, l := range t {
		l.FindingDispatched(runID, f)
	}
}

func (t teeResultsLogger) RuleFaulted(runID string, ruleName string, err error) {
	for _, l := range t {
		l.RuleFaulted(runID, ruleName, err)
	}
}

func (t teeResultsLogger) SourceUnavailable(runID string, err error) {
	for _, l := range t {
		l.SourceUnavailable(runID, err)
	}
}

func (t teeResultsLogger) RunCompleted(summary scan.RunSummary) {
	for _, l := range t {
		l.RunCompleted(summary)
	}
}
