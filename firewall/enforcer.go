package firewall

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
)

type logEnforcer struct {
	logger zerolog.Logger
}

// NewLogEnforcer creates an enforcer that only writes the block to the log. It is used when no firewall backend is configured.
func NewLogEnforcer(logger zerolog.Logger) Enforcer {
	return &logEnforcer{logger: logger}
}

func (e *logEnforcer) Block(clientAddress string) error {
	e.logger.Warn().Str("client", clientAddress).Msg("Blacklisting client (log only, no firewall backend configured)")
	return nil
}

// ErrAlreadyBlocked is returned by the dedup enforcer when the address was blocked recently and the backend was not called.
var ErrAlreadyBlocked = errors.New("client already blocked")

type dedupEnforcer struct {
	inner  Enforcer
	recent *expirable.LRU[string, struct{}]
}

// NewDedupEnforcer wraps an enforcer so that an address blocked within the last ttl is not sent to the backend again.
// Repeated scans of a long running request would otherwise re-add the same address on every poll.
func NewDedupEnforcer(inner Enforcer, size int, ttl time.Duration) (Enforcer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dedup cache size must be positive, got %d", size)
	}
	return &dedupEnforcer{
		inner:  inner,
		recent: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}, nil
}

func (e *dedupEnforcer) Block(clientAddress string) error {
	if e.recent.Contains(clientAddress) {
		return ErrAlreadyBlocked
	}

	if err := e.inner.Block(clientAddress); err != nil {
		return err
	}

	e.recent.Add(clientAddress, struct{}{})
	return nil
}
