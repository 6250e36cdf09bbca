package main

import (
	"errors"
	"io"
	"net/http"
	"scanv/clienthits"
	"scanv/config"
	"scanv/dictionary"
	"scanv/firewall"
	"scanv/ipreputation"
	"scanv/logging"
	"scanv/metrics"
	"scanv/scan"
	"scanv/statuspage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type scanner struct {
	engine   scan.Engine
	source   scan.SnapshotSource
	registry *prometheus.Registry
	closers  []io.Closer
}

// Close releases the results files. No run may be in progress.
func (s *scanner) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Dependency injection composition root
func newScanner(logger zerolog.Logger, c *config.Main, fs scan.FileSystem, lfs logging.LogFileSystem) (s *scanner, err error) {
	enforcer, err := newEnforcer(logger, c.Enforcer)
	if err != nil {
		return
	}
	block := firewall.NewBlockAction(logger, enforcer)

	terms, err := dictionary.Load(fs, c.Dictionary)
	if err != nil {
		logger.Warn().Err(err).Str("file", c.Dictionary).Msg("Dictionary not loaded, the scripts rule will not match anything")
		terms = nil
		err = nil
	}

	rules := []scan.DetectionRule{
		dictionary.NewRule(logger, terms, block),
		clienthits.NewRule(logger, c.MaxHits, block),
	}

	if c.ReputationList != "" {
		var entries []string
		entries, err = ipreputation.Load(fs, c.ReputationList)
		if err != nil {
			return
		}
		rules = append(rules, ipreputation.NewRule(logger, entries, block))
	}

	registry := prometheus.NewRegistry()
	resultsLoggers := []scan.ResultsLogger{
		logging.NewZerologResultsLogger(logger),
		metrics.NewCollector(registry),
	}
	var closers []io.Closer
	if c.ResultsLog != "" {
		var fileLogger logging.FileResultsLogger
		fileLogger, err = logging.NewFileResultsLogger(lfs, logger, c.ResultsLog)
		if err != nil {
			return
		}
		resultsLoggers = append(resultsLoggers, fileLogger)
		closers = append(closers, fileLogger)
	}

	engine, err := scan.NewEngine(logger, rules, []scan.Action{block}, logging.Tee(resultsLoggers...))
	if err != nil {
		for _, cl := range closers {
			cl.Close()
		}
		return
	}

	s = &scanner{
		engine:   engine,
		source:   statuspage.NewSource(logger, c.StatusURL, &http.Client{Timeout: c.Timeout}),
		registry: registry,
		closers:  closers,
	}
	return
}

func newEnforcer(logger zerolog.Logger, c config.Enforcer) (enforcer firewall.Enforcer, err error) {
	switch c.Kind {
	case config.EnforcerIPSet:
		enforcer, err = firewall.NewIPSetEnforcer(logger, c.IPSetName, c.IPSetTimeout)
	case config.EnforcerNotify:
		enforcer = firewall.NewNotifyEnforcer(logger, c.NotifyURL)
	default:
		enforcer = firewall.NewLogEnforcer(logger)
	}
	if err != nil {
		return
	}

	if c.DedupSize > 0 {
		enforcer, err = firewall.NewDedupEnforcer(enforcer, c.DedupSize, c.DedupTTL)
	}
	return
}
