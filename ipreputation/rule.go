package ipreputation

import (
	"fmt"
	"scanv/ipaddresses"
	"scanv/scan"
	"strings"

	"github.com/rs/zerolog"
)

// RuleName is the name the reputation rule registers under.
const RuleName = "reputation"

type ruleImpl struct {
	logger  zerolog.Logger
	matcher *binaryTrie
	size    int
	action  scan.Action
}

// NewRule creates a rule that flags clients whose IPv4 address falls in one of the listed addresses or CIDR ranges.
// Entries that cannot be parsed are logged and skipped.
func NewRule(logger zerolog.Logger, entries []string, action scan.Action) scan.DetectionRule {
	r := &ruleImpl{
		logger:  logger.With().Str("rule", RuleName).Logger(),
		matcher: newBinaryTrie(),
		action:  action,
	}

	for _, entry := range entries {
		prefix, bits, err := ipaddresses.ParsePrefix(entry)
		if err != nil {
			r.logger.Warn().Err(err).Msg("Skipping reputation list entry")
			continue
		}
		r.matcher.insert(prefix, bits)
		r.size++
	}

	return r
}

func (r *ruleImpl) Name() string {
	return RuleName
}

func (r *ruleImpl) ActionName() string {
	return r.action.Name()
}

// Evaluate flags each listed client once, in order of first appearance. IPv6 clients are never matched.
func (r *ruleImpl) Evaluate(snapshot scan.Snapshot) (findings []scan.Finding, err error) {
	if r.size == 0 {
		return
	}

	checked := make(map[string]bool)
	for _, req := range snapshot {
		if checked[req.ClientAddress] {
			continue
		}
		checked[req.ClientAddress] = true

		ip, parseErr := ipaddresses.ParseIPv4(req.ClientAddress)
		if parseErr != nil || !r.matcher.match(ip) {
			continue
		}

		r.logger.Info().Str("client", req.ClientAddress).Msg("Client is on the reputation list")
		f := scan.Finding{
			RuleName:      RuleName,
			ClientAddress: req.ClientAddress,
			Description:   fmt.Sprintf("client %s is on the reputation list", req.ClientAddress),
		}
		findings = append(findings, scan.Dispatch(r.action, f))
	}

	return
}

// Load reads one address or CIDR range per line. Blank lines and lines starting with # are skipped.
func Load(fs scan.FileSystem, fileName string) (entries []string, err error) {
	data, err := fs.ReadFile(fileName)
	if err != nil {
		err = fmt.Errorf("failed to read reputation list %v: %w", fileName, err)
		return
	}

	entries = make([]string, 0)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return
}
