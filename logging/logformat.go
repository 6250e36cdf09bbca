package logging

import (
	"scanv/scan"
	"time"
)

const (
	operationName   = "ScanV"
	findingCategory = "ScanVFindingLog"
	runCategory     = "ScanVRunLog"
	faultCategory   = "ScanVFaultLog"
	timestampLayout = time.RFC3339
)

type findingLogEntry struct {
	Time          string                  `json:"time"`
	OperationName string                  `json:"operationName"`
	Category      string                  `json:"category"`
	Properties    findingLogEntryProperty `json:"properties"`
}

type findingLogEntryProperty struct {
	RunID    string `json:"runId"`
	RuleName string `json:"ruleName"`
	ClientIP string `json:"clientIp"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

type faultLogEntry struct {
	Time          string                `json:"time"`
	OperationName string                `json:"operationName"`
	Category      string                `json:"category"`
	Properties    faultLogEntryProperty `json:"properties"`
}

type faultLogEntryProperty struct {
	RunID    string `json:"runId"`
	RuleName string `json:"ruleName,omitempty"`
	Message  string `json:"message"`
}

type runLogEntry struct {
	Time          string              `json:"time"`
	OperationName string              `json:"operationName"`
	Category      string              `json:"category"`
	Properties    runLogEntryProperty `json:"properties"`
}

type runLogEntryProperty struct {
	RunID           string         `json:"runId"`
	SourceStatus    string         `json:"sourceStatus"`
	Records         int            `json:"records"`
	PerRule         map[string]int `json:"perRule"`
	Faulted         []string       `json:"faulted,omitempty"`
	Acted           int            `json:"acted"`
	SuppressedNoOps int            `json:"suppressedNoOps"`
	ActionFaults    int            `json:"actionFaults"`
}

func newRunLogEntryProperty(s scan.RunSummary) runLogEntryProperty {
	return runLogEntryProperty{
		RunID:           s.RunID,
		SourceStatus:    s.SourceStatus.String(),
		Records:         s.SnapshotSize,
		PerRule:         s.PerRule,
		Faulted:         s.Faulted,
		Acted:           s.Acted,
		SuppressedNoOps: s.SuppressedNoOps,
		ActionFaults:    s.ActionFaults,
	}
}
