package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"scanv/logging"
	"scanv/metrics"
	"scanv/scan"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newWatchCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Scans the status page on a schedule until interrupted",
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

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watch(ctx, logger, s, c.Schedule, c.MetricsAddr)
		},
	}

	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, overrides metrics_addr")
	return cmd
}

// watch scans once right away, then on schedule, and serves metrics until ctx is done.
func watch(ctx context.Context, logger zerolog.Logger, s *scanner, schedule string, metricsAddr string) error {
	cronLogger := cron.PrintfLogger(&logger)
	c := cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.SkipIfStillRunning(cronLogger)))
	_, err := c.AddFunc(schedule, func() {
		s.engine.RunSource(ctx, s.source)
	})
	if err != nil {
		logger.Error().Err(err).Str("schedule", schedule).Msg("Invalid schedule")
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.engine.RunSource(ctx, s.source)
		c.Start()
		logger.Info().Str("schedule", schedule).Msg("Watching status page")
		<-ctx.Done()
		<-c.Stop().Done()
		logger.Info().Msg("Stopped watching")
		return nil
	})

	if metricsAddr != "" {
		srv := &http.Server{Addr: metricsAddr, Handler: metrics.Handler(s.registry), ReadHeaderTimeout: 5 * time.Second}

		g.Go(func() error {
			logger.Info().Str("addr", metricsAddr).Msg("Serving metrics")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}
