package main

import (
	"fmt"
	"os"
	"scanv/config"
	"scanv/scan"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	configFile        string
	logLevel          string
	statusURL         string
	dictionary        string
	maxHits           int
	resultsLog        string
	metricsAddr       string
	failOnUnavailable bool
}

func main() {
	if err := newRootCommand(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:          "scanv",
		Short:        "Scans the web server status page for suspicious clients and blocks them",
		SilenceUsage: true,
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configFile, "config", "", "YAML config file; built-in defaults are used when empty")
	f.StringVar(&opts.logLevel, "loglevel", "info", "sets log level. Can be one of: debug, info, warn, error, fatal, panic.")
	f.StringVar(&opts.statusURL, "url", "", "status page URL, overrides status_url")
	f.StringVar(&opts.dictionary, "dictionary", "", "suspicious terms file, overrides dictionary")
	f.IntVar(&opts.maxHits, "max-hits", 0, "requests per client above which it is blocked, overrides max_hits")
	f.StringVar(&opts.resultsLog, "results-log", "", "JSON lines results file, overrides results_log")

	root.AddCommand(newScanCommand(opts), newWatchCommand(opts))
	return root
}

func newLogger(level string) zerolog.Logger {
	loglevel, err := zerolog.ParseLevel(level)
	if err != nil {
		loglevel = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(loglevel).With().Timestamp().Caller().Logger()
}

// loadConfig reads the config file, if any, and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command, opts *options) (c *config.Main, err error) {
	if opts.configFile != "" {
		c, err = config.Load(&scan.FileSystemImpl{}, opts.configFile)
		if err != nil {
			return
		}
	} else {
		c = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		c.StatusURL = opts.statusURL
	}
	if flags.Changed("dictionary") {
		c.Dictionary = opts.dictionary
	}
	if flags.Changed("max-hits") {
		c.MaxHits = opts.maxHits
	}
	if flags.Changed("results-log") {
		c.ResultsLog = opts.resultsLog
	}
	if flags.Changed("metrics-addr") {
		c.MetricsAddr = opts.metricsAddr
	}

	if err = c.Validate(); err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
		c = nil
	}

	return
}
