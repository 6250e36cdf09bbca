package statuspage

import (
	"fmt"
	"io"
	"scanv/scan"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// Column names of the mod_status request table that map onto RequestRecord.
const (
	ClientColumn  = "Client"
	RequestColumn = "Request"
)

// ErrTableNotFound means the page had no request table, usually because the URL does not point at a status page.
var ErrTableNotFound = fmt.Errorf("%w: request table not found", scan.ErrSourceUnavailable)

// ErrLayoutNotFound means a table was found but it lacks the Client and Request columns, or none of its rows had a client.
var ErrLayoutNotFound = fmt.Errorf("%w: request table layout not recognized", scan.ErrSourceUnavailable)

// Parse extracts the request table from a mod_status HTML page. The table is the first one with border="0";
// its th cells name the fields of every row that has td cells.
func Parse(logger zerolog.Logger, r io.Reader) (snapshot scan.Snapshot, err error) {
	doc, err := html.Parse(r)
	if err != nil {
		err = fmt.Errorf("%w: %v", scan.ErrSourceUnavailable, err)
		return
	}

	table := findRequestTable(doc)
	if table == nil {
		err = ErrTableNotFound
		return
	}

	var headers []string
	for _, th := range elements(table, "th") {
		headers = append(headers, textContent(th))
	}
	if !contains(headers, ClientColumn) || !contains(headers, RequestColumn) {
		err = fmt.Errorf("%w: columns %q", ErrLayoutNotFound, headers)
		return
	}

	snapshot = make(scan.Snapshot, 0)
	rows := 0
	for i, tr := range elements(table, "tr") {
		cells := elements(tr, "td")
		if len(cells) == 0 {
			continue
		}
		rows++

		rec := scan.RequestRecord{Fields: make([]scan.Field, 0, len(headers))}
		for k, name := range headers {
			var value string
			if k < len(cells) {
				value = strings.Replace(textContent(cells[k]), "\n", "", -1)
			}
			rec.Fields = append(rec.Fields, scan.Field{Name: name, Value: value})

			switch name {
			case ClientColumn:
				rec.ClientAddress = value
			case RequestColumn:
				rec.RequestLine = value
			}
		}

		if rec.ClientAddress == "" {
			logger.Debug().Int("row", i).Msg("Skipping status table row without a client address")
			continue
		}
		snapshot = append(snapshot, rec)
	}

	if rows > 0 && len(snapshot) == 0 {
		snapshot = nil
		err = fmt.Errorf("%w: none of %d rows has a client address", ErrLayoutNotFound, rows)
		return
	}

	return
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func findRequestTable(n *html.Node) *html.Node {
	for _, table := range elements(n, "table") {
		for _, attr := range table.Attr {
			if attr.Key == "border" && strings.TrimSpace(attr.Val) == "0" {
				return table
			}
		}
	}
	return nil
}

// elements returns the descendants of n with the given tag name, in document order.
func elements(n *html.Node, tag string) (found []*html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			found = append(found, c)
		}
		found = append(found, elements(c, tag)...)
	}
	return
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
