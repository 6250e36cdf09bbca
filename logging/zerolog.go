package logging

import (
	"scanv/scan"

	"github.com/rs/zerolog"
)

// NewZerologResultsLogger creates a results logger that writes run results as Zerolog events.
func NewZerologResultsLogger(logger zerolog.Logger) scan.ResultsLogger {
	return &zerologResultsLogger{logger: logger}
}

type zerologResultsLogger struct {
	logger zerolog.Logger
}

func (l *zerologResultsLogger) FindingDispatched(runID string, f scan.Finding) {
	l.logger.Info().
		Str("runId", runID).
		Str("rule", f.RuleName).
		Str("client", f.ClientAddress).
		Str("action", f.Result.String()).
		Msg(f.Description)
}

func (l *zerologResultsLogger) RuleFaulted(runID string, ruleName string, err error) {
	l.logger.Error().Str("runId", runID).Str("rule", ruleName).Err(err).Msg("Rule faulted")
}

func (l *zerologResultsLogger) SourceUnavailable(runID string, err error) {
	l.logger.Warn().Str("runId", runID).Err(err).Msg("No data: snapshot source unavailable")
}

func (l *zerologResultsLogger) RunCompleted(s scan.RunSummary) {
	ev := l.logger.Info()
	if s.SourceStatus != scan.SourceOK || len(s.Faulted) > 0 {
		ev = l.logger.Warn()
	}

	d := zerolog.Dict()
	for _, name := range s.RuleOrder {
		d = d.Int(name, s.PerRule[name])
	}

	ev.Str("runId", s.RunID).
		Str("sourceStatus", s.SourceStatus.String()).
		Int("records", s.SnapshotSize).
		Dict("perRule", d).
		Strs("faulted", s.Faulted).
		Int("acted", s.Acted).
		Int("suppressedNoOps", s.SuppressedNoOps).
		Int("actionFaults", s.ActionFaults).
		Msg("Run summary")
}
