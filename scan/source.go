package scan

import (
	"context"
	"errors"
)

// ErrSourceUnavailable is returned by a SnapshotSource that could not produce a snapshot.
var ErrSourceUnavailable = errors.New("snapshot source unavailable")

// ErrDictionaryUnavailable is returned when the suspicious term dictionary could not be loaded.
var ErrDictionaryUnavailable = errors.New("dictionary unavailable")

// SnapshotSource supplies the request records of one poll.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// SourceStatus tells whether a run had data to scan.
type SourceStatus int

const (
	_ SourceStatus = iota
	// SourceOK means a snapshot was obtained and the rules ran against it
	SourceOK

	// SourceUnavailable means no snapshot could be obtained and no rule ran
	SourceUnavailable
)

func (s SourceStatus) String() string {
	switch s {
	case SourceOK:
		return "ok"
	case SourceUnavailable:
		return "unavailable"
	}
	return "unknown"
}
