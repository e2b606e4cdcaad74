// Package allowlist loads the optional membership file that gates which
// discovered inputs are dispatched: one basename (without extension) per
// line, exact match.
package allowlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// List is a set of allowed file stems. A nil *List allows everything.
type List struct {
	path  string
	stems map[string]bool
}

// Load reads an allow-list file. Blank lines and '#' comments are ignored;
// surrounding whitespace is trimmed. Entries must be bare basenames: lines
// containing path separators or glob metacharacters are rejected.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open allow list: %w", err)
	}
	defer f.Close()

	l := &List{path: path, stems: make(map[string]bool)}
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.ContainsAny(line, `/\*?[`) {
			return nil, fmt.Errorf("allow list %s line %d: %q is not a bare basename", path, lineNo, line)
		}
		l.stems[line] = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read allow list %s: %w", path, err)
	}
	return l, nil
}

// Allows reports whether stem is in the list. A nil list allows everything.
func (l *List) Allows(stem string) bool {
	if l == nil {
		return true
	}
	return l.stems[stem]
}

// Len returns the number of entries.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.stems)
}
