package dictionary

import (
	"scanv/scan"
	"scanv/testutils"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateSingleMatch(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	logger := testutils.NewTestLogger(t)
	a := &testutils.MockAction{}
	r := NewRule(logger, []string{"wp-admin"}, a)
	snapshot := scan.Snapshot{{ClientAddress: "203.0.113.5", RequestLine: "/wp-admin/login.php"}}

	// Act
	findings, err := r.Evaluate(snapshot)

	// Assert
	assert.Nil(err)
	assert.Len(findings, 1)
	assert.Equal(RuleName, findings[0].RuleName)
	assert.Equal("203.0.113.5", findings[0].ClientAddress)
	assert.Contains(findings[0].Description, "/wp-admin/login.php")
	assert.Equal(scan.ActionTaken, findings[0].Result)
	assert.Equal([]string{"203.0.113.5"}, a.Calls())
}

func TestEvaluateOneFindingPerTerm(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	logger := testutils.NewTestLogger(t)
	a := &testutils.MockAction{}
	r := NewRule(logger, []string{"wp-", "admin", "login"}, a)
	snapshot := scan.Snapshot{{ClientAddress: "203.0.113.5", RequestLine: "GET /wp-admin/login.php HTTP/1.1"}}

	// Act
	findings, _ := r.Evaluate(snapshot)

	// Assert
	assert.Len(findings, 3)
	assert.Equal([]string{"203.0.113.5", "203.0.113.5", "203.0.113.5"}, a.Calls())
}

func TestEvaluateCaseSensitive(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	logger := testutils.NewTestLogger(t)
	a := &testutils.MockAction{}
	r := NewRule(logger, []string{"WP-ADMIN", "wp-.*"}, a)
	snapshot := scan.Snapshot{{ClientAddress: "203.0.113.5", RequestLine: "GET /wp-admin/ HTTP/1.1"}}

	// Act
	findings, _ := r.Evaluate(snapshot)

	// Assert
	assert.Len(findings, 0)
	assert.Empty(a.Calls())
}

func TestEvaluateEmptyDictionary(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	logger := testutils.NewTestLogger(t)
	a := &testutils.MockAction{}
	r := NewRule(logger, nil, a)
	snapshot := scan.Snapshot{{ClientAddress: "203.0.113.5", RequestLine: "GET /wp-admin/ HTTP/1.1"}}

	// Act
	findings, err := r.Evaluate(snapshot)

	// Assert
	assert.Nil(err)
	assert.Len(findings, 0)
}

func TestEvaluateCountsTermRecordPairs(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	logger := testutils.NewTestLogger(t)
	terms := []string{"wp-admin", ".env", "php", "cgi-bin", "select"}
	snapshot := scan.Snapshot{
		{ClientAddress: "203.0.113.5", RequestLine: "GET /wp-admin/admin.php HTTP/1.1"},
		{ClientAddress: "203.0.113.6", RequestLine: "GET /.env HTTP/1.1"},
		{ClientAddress: "203.0.113.7", RequestLine: ""},
		{ClientAddress: "203.0.113.5", RequestLine: "GET /cgi-bin/test.php?q=select HTTP/1.0"},
		{ClientAddress: "203.0.113.8", RequestLine: "OPTIONS * HTTP/1.0"},
	}
	expected := 0
	for _, term := range terms {
		for _, rec := range snapshot {
			if strings.Contains(rec.RequestLine, term) {
				expected++
			}
		}
	}
	a := &testutils.MockAction{}
	r := NewRule(logger, terms, a)

	// Act
	findings, _ := r.Evaluate(snapshot)

	// Assert
	assert.Equal(6, expected)
	assert.Len(findings, expected)
	assert.Len(a.Calls(), expected)
}

func TestEvaluateDoesNotAliasTerms(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	logger := testutils.NewTestLogger(t)
	terms := []string{"wp-admin"}
	a := &testutils.MockAction{}
	r := NewRule(logger, terms, a)
	terms[0] = "nothing-matches-this"

	// Act
	findings, _ := r.Evaluate(scan.Snapshot{{ClientAddress: "203.0.113.5", RequestLine: "/wp-admin/"}})

	// Assert
	assert.Len(findings, 1)
	assert.Equal("firewallBlock", r.ActionName())
}
