package firewall

import (
	"errors"
	"fmt"
	"net"
	"scanv/scan"

	"github.com/rs/zerolog"
)

// ActionName is the name the block action registers under.
const ActionName = "firewallBlock"

// selfAddresses are never blocked, so the scanner cannot lock out its own host.
var selfAddresses = map[string]bool{
	"127.0.0.1": true,
	"::1":       true,
}

// Enforcer puts a block for a client address into effect outside of this process.
type Enforcer interface {
	Block(clientAddress string) error
}

type blockActionImpl struct {
	logger   zerolog.Logger
	enforcer Enforcer
}

// NewBlockAction creates the action that hands offending client addresses to the given enforcer.
func NewBlockAction(logger zerolog.Logger, enforcer Enforcer) scan.Action {
	return &blockActionImpl{
		logger:   logger.With().Str("action", ActionName).Logger(),
		enforcer: enforcer,
	}
}

func (a *blockActionImpl) Name() string {
	return ActionName
}

func (a *blockActionImpl) Invoke(clientAddress string) (result scan.ActionResult) {
	if selfAddresses[clientAddress] {
		a.logger.Debug().Str("client", clientAddress).Msg("Not blocking own host")
		return scan.ActionSuppressed
	}

	if net.ParseIP(clientAddress) == nil {
		a.logger.Warn().Str("client", clientAddress).Msg("Client is not a valid IP address, not blocking")
		return scan.ActionSuppressed
	}

	defer func() {
		if p := recover(); p != nil {
			a.logger.Error().Str("client", clientAddress).Err(fmt.Errorf("panic: %v", p)).Msg("Enforcer panicked while blocking client")
			result = scan.ActionFailed
		}
	}()

	err := a.enforcer.Block(clientAddress)
	if errors.Is(err, ErrAlreadyBlocked) {
		a.logger.Debug().Str("client", clientAddress).Msg("Client is already on the firewall blacklist")
		return scan.ActionSuppressed
	}
	if err != nil {
		a.logger.Error().Err(err).Str("client", clientAddress).Msg("Failed to block client")
		return scan.ActionFailed
	}

	a.logger.Info().Str("client", clientAddress).Msg("Client added to the firewall blacklist")
	return scan.ActionTaken
}
