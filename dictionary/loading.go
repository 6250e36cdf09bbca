package dictionary

import (
	"fmt"
	"scanv/scan"
	"strings"
)

// Load reads one term per line from the named file. Blank and whitespace-only lines are skipped.
func Load(fs scan.FileSystem, fileName string) (terms []string, err error) {
	data, err := fs.ReadFile(fileName)
	if err != nil {
		err = fmt.Errorf("%w: %v", scan.ErrDictionaryUnavailable, err)
		return
	}

	terms = Parse(string(data))
	return
}

// Parse splits dictionary content into terms.
func Parse(content string) (terms []string) {
	terms = make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		terms = append(terms, line)
	}
	return
}
