package dictionary

import (
	"fmt"
	"scanv/scan"
	"strings"

	"github.com/rs/zerolog"
)

// RuleName is the name the suspicious dictionary rule registers under.
const RuleName = "scripts"

type ruleImpl struct {
	logger zerolog.Logger
	terms  []string
	action scan.Action
}

// NewRule creates a rule that flags every request line containing one of the given terms.
func NewRule(logger zerolog.Logger, terms []string, action scan.Action) scan.DetectionRule {
	return &ruleImpl{
		logger: logger.With().Str("rule", RuleName).Logger(),
		terms:  append([]string(nil), terms...),
		action: action,
	}
}

func (r *ruleImpl) Name() string {
	return RuleName
}

func (r *ruleImpl) ActionName() string {
	return r.action.Name()
}

// Evaluate matches every term against every record. One request can produce one finding per matching term.
func (r *ruleImpl) Evaluate(snapshot scan.Snapshot) (findings []scan.Finding, err error) {
	for _, term := range r.terms {
		for _, req := range snapshot {
			if !strings.Contains(req.RequestLine, term) {
				continue
			}

			r.logger.Info().Str("term", term).Str("request", req.RequestLine).Str("client", req.ClientAddress).Msg("Suspicious term found in request")
			f := scan.Finding{
				RuleName:      RuleName,
				ClientAddress: req.ClientAddress,
				Description:   fmt.Sprintf("suspicious term %q in request %q", term, req.RequestLine),
			}
			findings = append(findings, scan.Dispatch(r.action, f))
		}
	}

	r.logger.Debug().Int("terms", len(r.terms)).Int("records", len(snapshot)).Int("hits", len(findings)).Msg("Dictionary scan done")
	return
}
