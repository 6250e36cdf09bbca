package logging

import (
	"errors"
	"scanv/scan"
	"scanv/testutils"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFileResultsLogger(t *testing.T) (*filelogResultsLogger, *mockFileSystem) {
	fileSystem := &mockFileSystem{fmap: make(map[string]LogFile)}
	rl, err := NewFileResultsLogger(fileSystem, testutils.NewTestLogger(t), "/tmp/scanv/results.log")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	l := rl.(*filelogResultsLogger)
	l.now = fixedTime
	return l, fileSystem
}

func TestFindingDispatched(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	l, fileSystem := newTestFileResultsLogger(t)
	f := scan.Finding{RuleName: "scripts", ClientAddress: "203.0.113.5", Description: "wp-admin", Result: scan.ActionTaken}

	// Act
	l.FindingDispatched("run1", f)

	// Assert
	expected := `{"time":"2024-03-01T12:00:00Z","operationName":"ScanV","category":"ScanVFindingLog","properties":{"runId":"run1","ruleName":"scripts","clientIp":"203.0.113.5","message":"wp-admin","action":"taken"}}`
	assert.Equal(expected+"\n", fileSystem.Get("/tmp/scanv/results.log"))
	assert.Equal([]string{"/tmp/scanv"}, fileSystem.dirs)
}

func TestRunCompleted(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	l, fileSystem := newTestFileResultsLogger(t)
	s := scan.RunSummary{
		RunID:           "run1",
		SourceStatus:    scan.SourceOK,
		SnapshotSize:    6,
		RuleOrder:       []string{"scripts", "IPHits"},
		PerRule:         map[string]int{"scripts": 1, "IPHits": 1},
		Acted:           1,
		SuppressedNoOps: 1,
	}

	// Act
	l.RunCompleted(s)

	// Assert
	expected := `{"time":"2024-03-01T12:00:00Z","operationName":"ScanV","category":"ScanVRunLog","properties":{"runId":"run1","sourceStatus":"ok","records":6,"perRule":{"IPHits":1,"scripts":1},"acted":1,"suppressedNoOps":1,"actionFaults":0}}`
	assert.Equal(expected+"\n", fileSystem.Get("/tmp/scanv/results.log"))
}

func TestFaultsAndUnavailable(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	l, fileSystem := newTestFileResultsLogger(t)

	// Act
	l.RuleFaulted("run1", "IPHits", errors.New("boom"))
	l.SourceUnavailable("run2", scan.ErrSourceUnavailable)

	// Assert
	lines := strings.Split(strings.TrimSpace(fileSystem.Get("/tmp/scanv/results.log")), "\n")
	assert.Len(lines, 2)
	assert.Contains(lines[0], `"ruleName":"IPHits"`)
	assert.Contains(lines[0], `"message":"boom"`)
	assert.Contains(lines[1], `"runId":"run2"`)
	assert.NotContains(lines[1], "ruleName")
}

func TestNewFileResultsLoggerMkDirFails(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	fileSystem := &mockFileSystem{fmap: make(map[string]LogFile), failDir: true}

	// Act
	_, err := NewFileResultsLogger(fileSystem, testutils.NewTestLogger(t), "/root/forbidden/results.log")

	// Assert
	assert.NotNil(err)
}

func TestCloseFlushesAndClosesFile(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	l, fileSystem := newTestFileResultsLogger(t)
	l.RunCompleted(scan.RunSummary{RunID: "run1", SourceStatus: scan.SourceOK, PerRule: map[string]int{}})

	// Act
	err1 := l.Close()
	err2 := l.Close()

	// Assert
	assert.Nil(err1)
	assert.Nil(err2)
	f := fileSystem.fmap["/tmp/scanv/results.log"].(*mockFile)
	assert.True(f.Closed)
	assert.Contains(f.Content, `"runId":"run1"`)
}
