package statuspage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"scanv/scan"
	"time"

	"github.com/rs/zerolog"
)

// DefaultURL is where Apache serves mod_status on a stock install.
const DefaultURL = "http://localhost/server-status"

// maxPageBytes bounds how much of the status page is read.
const maxPageBytes = 16 * 1024 * 1024

type sourceImpl struct {
	logger zerolog.Logger
	url    string
	client *http.Client
}

// NewSource creates a snapshot source that fetches and parses the status page at url.
func NewSource(logger zerolog.Logger, url string, client *http.Client) scan.SnapshotSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &sourceImpl{
		logger: logger.With().Str("url", url).Logger(),
		url:    url,
		client: client,
	}
}

func (s *sourceImpl) Snapshot(ctx context.Context) (snapshot scan.Snapshot, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		err = fmt.Errorf("%w: %v", scan.ErrSourceUnavailable, err)
		return
	}

	startTime := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to fetch status page")
		err = fmt.Errorf("%w: %v", scan.ErrSourceUnavailable, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error().Int("status", resp.StatusCode).Msg("Status page returned an error status")
		err = fmt.Errorf("%w: unexpected HTTP status %v", scan.ErrSourceUnavailable, resp.Status)
		return
	}

	snapshot, err = Parse(s.logger, io.LimitReader(resp.Body, maxPageBytes))
	if errors.Is(err, ErrTableNotFound) {
		s.logger.Error().Msg("Request list not found on the page, is the URL right?")
		return
	}
	if errors.Is(err, ErrLayoutNotFound) {
		s.logger.Error().Err(err).Msg("Request list found but its columns are not the mod_status ones")
		return
	}
	if err != nil {
		return
	}

	s.logger.Info().Int("records", len(snapshot)).Dur("timeTaken", time.Since(startTime)).Msg("Request list found")
	return
}
