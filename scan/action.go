package scan

// ActionResult denotes what an action did with a client address.
type ActionResult int

const (
	_ ActionResult = iota
	// ActionTaken means the side effect was performed
	ActionTaken

	// ActionSuppressed means the action intentionally did nothing, e.g. for the scanner's own host
	ActionSuppressed

	// ActionFailed means the side effect was attempted but did not succeed
	ActionFailed
)

func (r ActionResult) String() string {
	switch r {
	case ActionTaken:
		return "taken"
	case ActionSuppressed:
		return "suppressed"
	case ActionFailed:
		return "failed"
	}
	return "unknown"
}

// Action responds to a finding against a client address. Implementations must not panic on malformed input.
type Action interface {
	Name() string
	Invoke(clientAddress string) ActionResult
}
