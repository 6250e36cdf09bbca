package firewall

import (
	"fmt"
	"os"

	"github.com/containrrr/shoutrrr"
	"github.com/rs/zerolog"
)

type notifyEnforcer struct {
	logger   zerolog.Logger
	url      string
	hostname string
	send     func(url string, message string) error
}

// NewNotifyEnforcer creates an enforcer that sends a message to a shoutrrr service URL for every blocked client.
// The block itself is left to whoever receives the message.
func NewNotifyEnforcer(logger zerolog.Logger, url string) Enforcer {
	hostname, _ := os.Hostname()
	return &notifyEnforcer{
		logger:   logger,
		url:      url,
		hostname: hostname,
		send:     shoutrrr.Send,
	}
}

func (e *notifyEnforcer) Block(clientAddress string) error {
	msg := fmt.Sprintf("scanv on %s: client %s added to the firewall blacklist", e.hostname, clientAddress)
	if err := e.send(e.url, msg); err != nil {
		return fmt.Errorf("failed to send block notification: %w", err)
	}
	return nil
}
