package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrUnknownAction is returned when a rule names an action that is not registered.
var ErrUnknownAction = errors.New("unknown action")

// RuleFault is an unexpected failure inside a single detection rule.
type RuleFault struct {
	RuleName string
	Err      error
}

func (f *RuleFault) Error() string {
	return fmt.Sprintf("rule %v faulted: %v", f.RuleName, f.Err)
}

func (f *RuleFault) Unwrap() error {
	return f.Err
}

// Engine runs every registered rule exactly once against a snapshot.
type Engine interface {
	Run(snapshot Snapshot) RunSummary
	RunSource(ctx context.Context, src SnapshotSource) RunSummary
}

type engineImpl struct {
	logger        zerolog.Logger
	rules         []DetectionRule
	actions       map[string]Action
	resultsLogger ResultsLogger
	newRunID      func() string
}

// NewEngine creates a scan engine. Rules run in the given order. Every rule's action must be among the given actions.
func NewEngine(logger zerolog.Logger, rules []DetectionRule, actions []Action, rl ResultsLogger) (engine Engine, err error) {
	e := &engineImpl{
		logger:        logger,
		actions:       make(map[string]Action),
		resultsLogger: rl,
		newRunID:      uuid.NewString,
	}

	for _, a := range actions {
		if _, exists := e.actions[a.Name()]; exists {
			err = fmt.Errorf("action %v is registered more than once", a.Name())
			return
		}
		e.actions[a.Name()] = a
	}

	ruleNames := make(map[string]bool)
	for _, r := range rules {
		if ruleNames[r.Name()] {
			err = fmt.Errorf("rule %v is registered more than once", r.Name())
			return
		}
		ruleNames[r.Name()] = true

		if _, exists := e.actions[r.ActionName()]; !exists {
			err = fmt.Errorf("rule %v: %w: %v", r.Name(), ErrUnknownAction, r.ActionName())
			return
		}
	}

	e.rules = append([]DetectionRule(nil), rules...)
	engine = e
	return
}

func (e *engineImpl) RunSource(ctx context.Context, src SnapshotSource) RunSummary {
	snapshot, err := src.Snapshot(ctx)
	if err == nil {
		return e.Run(snapshot)
	}

	if !errors.Is(err, ErrSourceUnavailable) {
		err = fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	s := e.newSummary()
	s.SourceStatus = SourceUnavailable
	e.logger.Warn().Err(err).Str("runId", s.RunID).Msg("No snapshot to scan, skipping all rules")
	e.resultsLogger.SourceUnavailable(s.RunID, err)
	e.resultsLogger.RunCompleted(s)
	return s
}

func (e *engineImpl) Run(snapshot Snapshot) RunSummary {
	s := e.newSummary()
	s.SourceStatus = SourceOK
	s.SnapshotSize = len(snapshot)

	logger := e.logger.With().Str("runId", s.RunID).Logger()
	logger.Info().Int("records", len(snapshot)).Msg("Scan run started")
	startTime := time.Now()

	for _, r := range e.rules {
		findings, err := e.evalRule(r, snapshot.Clone())
		if err != nil {
			logger.Error().Err(err).Str("rule", r.Name()).Msg("Rule faulted, continuing with the remaining rules")
			s.Faulted = append(s.Faulted, r.Name())
			e.resultsLogger.RuleFaulted(s.RunID, r.Name(), err)
			continue
		}

		for _, f := range findings {
			switch f.Result {
			case ActionTaken:
				s.Acted++
			case ActionSuppressed:
				s.SuppressedNoOps++
			case ActionFailed:
				s.ActionFaults++
			}
			e.resultsLogger.FindingDispatched(s.RunID, f)
		}

		s.RuleOrder = append(s.RuleOrder, r.Name())
		s.PerRule[r.Name()] = len(findings)
		logger.Info().Str("rule", r.Name()).Int("hits", len(findings)).Msg("Rule completed")
	}

	logger.Info().Dur("timeTaken", time.Since(startTime)).Int("findings", s.Findings()).Int("acted", s.Acted).Int("suppressed", s.SuppressedNoOps).Msg("Scan run completed")
	e.resultsLogger.RunCompleted(s)
	return s
}

// evalRule confines any error or panic of the rule to that rule.
func (e *engineImpl) evalRule(r DetectionRule, snapshot Snapshot) (findings []Finding, err error) {
	defer func() {
		if p := recover(); p != nil {
			findings = nil
			err = &RuleFault{RuleName: r.Name(), Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	findings, err = r.Evaluate(snapshot)
	if err != nil {
		findings = nil
		err = &RuleFault{RuleName: r.Name(), Err: err}
	}
	return
}

func (e *engineImpl) newSummary() RunSummary {
	return RunSummary{
		RunID:   e.newRunID(),
		PerRule: make(map[string]int),
	}
}
