package clienthits

import (
	"fmt"
	"scanv/scan"

	"github.com/rs/zerolog"
)

// RuleName is the name the per-client hit rule registers under.
const RuleName = "IPHits"

// DefaultMaxHits is the number of concurrent requests a client may have before it is flagged.
const DefaultMaxHits = 3

type ruleImpl struct {
	logger  zerolog.Logger
	maxHits int
	action  scan.Action
}

// NewRule creates a rule that flags each client with more than maxHits records in a snapshot.
func NewRule(logger zerolog.Logger, maxHits int, action scan.Action) scan.DetectionRule {
	return &ruleImpl{
		logger:  logger.With().Str("rule", RuleName).Logger(),
		maxHits: maxHits,
		action:  action,
	}
}

func (r *ruleImpl) Name() string {
	return RuleName
}

func (r *ruleImpl) ActionName() string {
	return r.action.Name()
}

// Evaluate emits one finding per offending client, in order of first appearance.
func (r *ruleImpl) Evaluate(snapshot scan.Snapshot) (findings []scan.Finding, err error) {
	counts := make(map[string]int)
	var order []string
	for _, req := range snapshot {
		if _, seen := counts[req.ClientAddress]; !seen {
			order = append(order, req.ClientAddress)
		}
		counts[req.ClientAddress]++
	}

	for _, client := range order {
		hits := counts[client]
		if hits <= r.maxHits {
			continue
		}

		r.logger.Info().Str("client", client).Int("hits", hits).Int("maxHits", r.maxHits).Msg("Allowed number of hits exceeded")
		f := scan.Finding{
			RuleName:      RuleName,
			ClientAddress: client,
			Description:   fmt.Sprintf("%d concurrent requests, more than the allowed %d", hits, r.maxHits),
		}
		findings = append(findings, scan.Dispatch(r.action, f))
	}

	return
}
