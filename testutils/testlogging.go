package testutils

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// NewTestLogger creates a zerolog.Logger that writes to testing.T's log.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: zerolog.NewTestWriter(t), TimeFormat: time.RFC3339, NoColor: true}).With().Timestamp().Caller().Logger()
}

// NewBufferLogger creates a JSON zerolog.Logger whose output can be inspected by the test.
func NewBufferLogger() (zerolog.Logger, *bytes.Buffer) {
	b := &bytes.Buffer{}
	return zerolog.New(b).Level(zerolog.DebugLevel), b
}
