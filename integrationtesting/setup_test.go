package integrationtesting

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"scanv/clienthits"
	"scanv/dictionary"
	"scanv/firewall"
	"scanv/ipreputation"
	"scanv/logging"
	"scanv/scan"
	"scanv/testutils"
	"strings"
	"sync"
	"testing"
)

type statusRow struct {
	client  string
	request string
}

// newStatusServer serves an Apache mod_status page whose request table holds rows.
func newStatusServer(rows ...statusRow) *httptest.Server {
	var b strings.Builder
	b.WriteString("<html><body><h1>Apache Server Status</h1>\n")
	b.WriteString(`<table border="0"><tr><th>Srv</th><th>PID</th><th>M</th><th>Client</th><th>VHost</th><th>Request</th></tr>` + "\n")
	for i, r := range rows {
		fmt.Fprintf(&b, "<tr><td>%d-0</td><td>%d</td><td>W</td><td>%s</td><td>example.com:80</td><td nowrap>%s</td></tr>\n", i, 4000+i, r.client, r.request)
	}
	b.WriteString("</table></body></html>")
	page := b.String()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
}

// newPageServer serves page as is.
func newPageServer(page string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
}

type mockEnforcer struct {
	mu      sync.Mutex
	blocked []string
}

func (m *mockEnforcer) Block(clientAddress string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocked = append(m.blocked, clientAddress)
	return nil
}

type testScanner struct {
	engine   scan.Engine
	enforcer *mockEnforcer
	results  *testutils.RecordingResultsLogger
}

// newTestScanner wires the scanner the same way cmd/scanv does, with a recording enforcer.
func newTestScanner(t *testing.T, terms []string, maxHits int, reputation []string) *testScanner {
	logger := testutils.NewTestLogger(t)
	enforcer := &mockEnforcer{}
	block := firewall.NewBlockAction(logger, enforcer)

	rules := []scan.DetectionRule{
		dictionary.NewRule(logger, terms, block),
		clienthits.NewRule(logger, maxHits, block),
	}
	if reputation != nil {
		rules = append(rules, ipreputation.NewRule(logger, reputation, block))
	}

	results := &testutils.RecordingResultsLogger{}
	engine, err := scan.NewEngine(logger, rules, []scan.Action{block}, logging.Tee(logging.NewZerologResultsLogger(logger), results))
	if err != nil {
		t.Fatalf("Got unexpected error: %s", err)
	}

	return &testScanner{engine: engine, enforcer: enforcer, results: results}
}
