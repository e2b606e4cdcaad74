package dispatch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner executes one external command and returns its combined output.
// The batch loop depends on this interface so tests can substitute
// [FakeRunner] and assert on constructed argument lists without spawning
// real processes.
type Runner interface {
	Run(ctx context.Context, argv ...string) (string, error)
}

// ExecRunner runs commands via os/exec. When Verbose is set, tool output is
// tee'd to stderr in real time; otherwise it is captured silently for error
// reporting.
type ExecRunner struct {
	Verbose bool
}

var _ Runner = &ExecRunner{}

func (r *ExecRunner) Run(ctx context.Context, argv ...string) (string, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var buf bytes.Buffer
	if r.Verbose {
		cmd.Stdout = io.MultiWriter(&buf, os.Stderr)
		cmd.Stderr = io.MultiWriter(&buf, os.Stderr)
	} else {
		cmd.Stdout = &buf
		cmd.Stderr = &buf
	}

	err := cmd.Run()
	return buf.String(), err
}

// FakeRunner records every argument list it is given and returns canned
// output. Used by tests.
type FakeRunner struct {
	Calls  [][]string
	Output string
	ErrStr string
}

var _ Runner = &FakeRunner{}

func (f *FakeRunner) Run(ctx context.Context, argv ...string) (string, error) {
	call := make([]string, len(argv))
	copy(call, argv)
	f.Calls = append(f.Calls, call)
	if f.ErrStr != "" {
		return f.Output, errors.New(f.ErrStr)
	}
	return f.Output, nil
}
