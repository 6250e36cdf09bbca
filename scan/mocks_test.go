package scan_test

import (
	"context"
	"errors"
	"scanv/scan"
)

type mockRule struct {
	name       string
	actionName string
	action     scan.Action
	clients    func(snapshot scan.Snapshot) []string
	panicMsg   string
	err        error
	evaluated  int
}

func (r *mockRule) Name() string       { return r.name }
func (r *mockRule) ActionName() string { return r.actionName }

func (r *mockRule) Evaluate(snapshot scan.Snapshot) (findings []scan.Finding, err error) {
	r.evaluated++
	if r.panicMsg != "" {
		panic(r.panicMsg)
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.clients == nil {
		return
	}
	for _, c := range r.clients(snapshot) {
		f := scan.Finding{RuleName: r.name, ClientAddress: c, Description: "mock match"}
		findings = append(findings, scan.Dispatch(r.action, f))
	}
	return
}

// everyClient flags every record of the snapshot.
func everyClient(snapshot scan.Snapshot) (clients []string) {
	for _, rec := range snapshot {
		clients = append(clients, rec.ClientAddress)
	}
	return
}

type mockSource struct {
	snapshot scan.Snapshot
	err      error
}

func (s *mockSource) Snapshot(ctx context.Context) (scan.Snapshot, error) {
	return s.snapshot, s.err
}

var errUpstreamDown = errors.New("connection refused")
