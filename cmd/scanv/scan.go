package main

import (
	"errors"
	"fmt"
	"io"
	"scanv/logging"
	"scanv/scan"

	"github.com/spf13/cobra"
)

var errSourceUnavailable = errors.New("status page unavailable")

func newScanCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Runs a single scan of the status page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.logLevel)
			c, err := loadConfig(cmd, opts)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to load config")
				return err
			}

			s, err := newScanner(logger, c, &scan.FileSystemImpl{}, logging.NewLogFileSystem())
			if err != nil {
				logger.Error().Err(err).Msg("Failed to set up the scanner")
				return err
			}
			defer s.Close()

			summary := s.engine.RunSource(cmd.Context(), s.source)
			printSummary(cmd.OutOrStdout(), summary)

			if opts.failOnUnavailable && summary.SourceStatus == scan.SourceUnavailable {
				return errSourceUnavailable
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.failOnUnavailable, "fail-on-unavailable", false, "exit non-zero when the status page cannot be read")
	return cmd
}

func printSummary(w io.Writer, s scan.RunSummary) {
	fmt.Fprintf(w, "run %v: source %v, %d requests\n", s.RunID, s.SourceStatus, s.SnapshotSize)
	for _, name := range s.RuleOrder {
		fmt.Fprintf(w, "  %-12s %d findings\n", name, s.PerRule[name])
	}
	for _, name := range s.Faulted {
		fmt.Fprintf(w, "  %-12s faulted\n", name)
	}
	fmt.Fprintf(w, "blocked %d, no-op %d, failed %d\n", s.Acted, s.SuppressedNoOps, s.ActionFaults)
}
