package firewall

import (
	"errors"
)

var errBackendDown = errors.New("backend down")

type mockEnforcer struct {
	blocked []string
	err     error
	panics  bool
}

func (e *mockEnforcer) Block(clientAddress string) error {
	if e.panics {
		panic("nil map")
	}
	e.blocked = append(e.blocked, clientAddress)
	return e.err
}
