package scan

// Finding is a single rule match that was dispatched to the rule's action.
type Finding struct {
	RuleName      string
	ClientAddress string
	Description   string

	// Result is what the action reported when the finding was dispatched.
	Result ActionResult
}

// DetectionRule evaluates a snapshot and dispatches its action once per finding.
type DetectionRule interface {
	Name() string

	// ActionName is the registry name of the action the rule dispatches to.
	ActionName() string

	Evaluate(snapshot Snapshot) ([]Finding, error)
}

// Dispatch invokes the action for the given finding and returns the finding with the action result attached.
func Dispatch(action Action, f Finding) Finding {
	f.Result = action.Invoke(f.ClientAddress)
	return f
}
