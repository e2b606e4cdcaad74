package dispatch

import (
	"fmt"
	"strings"
)

// ToolError reports a failed external invocation: the argument list that was
// run, the wrapped exec error, and the tool's captured output for context.
// Tool failures are counted and reported per file; they are never retried.
type ToolError struct {
	Argv   []string
	Output string
	Err    error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Argv[0], e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// OutputTail returns up to n trailing lines of the tool's output, for
// compact error reporting.
func (e *ToolError) OutputTail(n int) []string {
	s := strings.TrimSpace(e.Output)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
