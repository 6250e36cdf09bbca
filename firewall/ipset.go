package firewall

import (
	"fmt"
	"net"
	"time"

	"github.com/gonetx/ipset"
	"github.com/rs/zerolog"
)

type ipsetEnforcer struct {
	logger zerolog.Logger
	add4   func(entry string) error
	add6   func(entry string) error
}

// NewIPSetEnforcer creates an enforcer that adds addresses to the hash:ip sets setName (IPv4) and setName6 (IPv6).
// The sets are created if missing. Entries expire after timeout.
func NewIPSetEnforcer(logger zerolog.Logger, setName string, timeout time.Duration) (Enforcer, error) {
	if err := ipset.Check(); err != nil {
		return nil, fmt.Errorf("ipset is not available: %w", err)
	}

	set4, err := ipset.New(setName, ipset.HashIp, ipset.Family(ipset.Inet), ipset.Timeout(timeout), ipset.Exist(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create ipset %v: %w", setName, err)
	}

	set6, err := ipset.New(setName+"6", ipset.HashIp, ipset.Family(ipset.Inet6), ipset.Timeout(timeout), ipset.Exist(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create ipset %v: %w", setName+"6", err)
	}

	logger.Info().Str("set", setName).Dur("timeout", timeout).Msg("Using ipset firewall backend")

	return &ipsetEnforcer{
		logger: logger.With().Str("set", setName).Logger(),
		add4:   func(entry string) error { return set4.Add(entry) },
		add6:   func(entry string) error { return set6.Add(entry) },
	}, nil
}

func (e *ipsetEnforcer) Block(clientAddress string) error {
	ip := net.ParseIP(clientAddress)
	if ip == nil {
		return fmt.Errorf("invalid IP address: %s", clientAddress)
	}

	e.logger.Debug().Str("client", clientAddress).Msg("Adding client to ipset")
	if ip.To4() != nil {
		return e.add4(clientAddress)
	}
	return e.add6(clientAddress)
}
