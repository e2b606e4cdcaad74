// Package check provides system diagnostics (the check subcommand) and
// pre-batch dependency validation for the external pose tools and the queue
// submission command.
package check

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/J22Melody/transcription/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrExtractToolNotFound = errors.New("pose extraction tool not found on PATH")
	ErrSegmentToolNotFound = errors.New("segmentation tool not found on PATH")
	ErrQueueToolNotFound   = errors.New("queue submission command not found on PATH")
	ErrJobScriptNotFound   = errors.New("job script not found")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive diagnostics flow: reports availability of
// the extraction tool, the segmentation tool, and the queue command.
// Returns true when everything was found.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkTool(log, "extraction tool", cfg.ExtractTool)
	ok = checkTool(log, "segmentation tool", cfg.SegmentTool) && ok
	ok = checkTool(log, "queue command", cfg.QueueCommand) && ok
	return ok
}

// checkTool reports whether name resolves on PATH.
func checkTool(log Logger, label, name string) bool {
	path, err := exec.LookPath(name)
	if err != nil {
		log.Warn("%s: %s not found on PATH", label, name)
		return false
	}
	log.Success("%s: %s", label, path)
	return true
}

// CheckDeps is the pre-batch validation. With queue submission enabled it
// verifies the queue command and job script; the tool itself runs on a
// cluster node and is not required locally. Otherwise the tool for the
// active mode must be on PATH. Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	if cfg.UseQueue {
		if _, err := exec.LookPath(cfg.QueueCommand); err != nil {
			return fmt.Errorf("%w: %s", ErrQueueToolNotFound, cfg.QueueCommand)
		}
		if _, err := os.Stat(cfg.JobScript); err != nil {
			return fmt.Errorf("%w: %s", ErrJobScriptNotFound, cfg.JobScript)
		}
		return nil
	}

	switch cfg.Mode {
	case config.ModeSegment:
		if _, err := exec.LookPath(cfg.SegmentTool); err != nil {
			return fmt.Errorf("%w: %s", ErrSegmentToolNotFound, cfg.SegmentTool)
		}
	default:
		if _, err := exec.LookPath(cfg.ExtractTool); err != nil {
			return fmt.Errorf("%w: %s", ErrExtractToolNotFound, cfg.ExtractTool)
		}
	}
	return nil
}
