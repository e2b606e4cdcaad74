package dispatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/J22Melody/transcription/internal/allowlist"
	"github.com/J22Melody/transcription/internal/config"
	"github.com/J22Melody/transcription/internal/display"
	"github.com/J22Melody/transcription/internal/logging"
	"github.com/J22Melody/transcription/internal/naming"
)

// Run is the top-level batch entry point. It discovers input files, then
// processes each one strictly sequentially: allow-list gate, output path
// derivation, skip-existing check, and one external invocation via r.
// Per-file failures are counted and the batch continues; the caller decides
// the exit code from the returned stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, allow *allowlist.List, r Runner) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir, ExtensionsFor(cfg.Mode))
	if err != nil {
		log.Error("File discovery failed: %v", err)
		stats.Failed++
		return stats
	}

	stats.Total = len(files)
	logBatchHeader(cfg, log, allow, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(ctx, cfg, log, allow, r, path, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one input: validate → gate → derive → dispatch.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	allow *allowlist.List,
	r Runner,
	path string,
	stats *RunStats,
) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	// --- Validate ---
	fi, err := os.Stat(path)
	if err != nil {
		log.Error("File not found: %s", path)
		stats.Failed++
		fmt.Println()
		return
	}
	if fi.Size() == 0 {
		log.Warn("Empty file, skipping")
		stats.Skipped++
		fmt.Println()
		return
	}

	// --- Allow-list gate ---
	if allow != nil && !allow.Allows(naming.Stem(path)) {
		log.Debug("Not in allow list: %s", naming.Stem(path))
		stats.Skipped++
		fmt.Println()
		return
	}

	// --- Derive output path; always shown before any invocation ---
	job := BuildJob(cfg, path)
	log.Info("  -> %s", job.Output)

	if cfg.SkipExisting {
		if _, err := os.Stat(job.Output); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(job.Output))
			stats.Skipped++
			fmt.Println()
			return
		}
	}

	if err := os.MkdirAll(filepath.Dir(job.Output), 0o755); err != nil {
		log.Error("Cannot create output directory: %v", err)
		stats.Failed++
		fmt.Println()
		return
	}

	// --- Dry-run ---
	if cfg.DryRun {
		log.Success("[DRY] Would run: %s", strings.Join(job.Argv, " "))
		stats.Dispatched++
		fmt.Println()
		return
	}

	// --- Dispatch ---
	log.Debug("Running command: %s", strings.Join(job.Argv, " "))
	start := time.Now()
	out, err := r.Run(ctx, job.Argv...)
	if err != nil {
		terr := &ToolError{Argv: job.Argv, Output: out, Err: err}
		log.Error("%v", terr)
		for _, line := range terr.OutputTail(20) {
			log.Error("  %s", line)
		}
		if !cfg.UseQueue {
			// A failed direct run may leave partial output behind.
			os.Remove(job.Output)
		}
		stats.Failed++
		fmt.Println()
		return
	}

	stats.Dispatched++
	if cfg.UseQueue {
		// sbatch prints e.g. "Submitted batch job 123456".
		if msg := strings.TrimSpace(out); msg != "" {
			log.Success("%s", msg)
		} else {
			log.Success("Queued")
		}
	} else {
		log.Success("Done in %s", display.FormatDuration(time.Since(start)))
	}
	fmt.Println()
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, allow *allowlist.List, stats *RunStats) {
	log.Info("Found %s", display.FormatCount(stats.Total))

	if cfg.Mode == config.ModeSegment {
		log.Info("Tool: %s (output format: %s)", cfg.SegmentTool, cfg.SegmentFormat)
	} else {
		log.Info("Tool: %s (pose format: %s)", cfg.ExtractTool, cfg.PoseFormat)
	}
	if cfg.UseQueue {
		log.Info("Queue: %s %s", cfg.QueueCommand, cfg.JobScript)
	}
	if allow != nil {
		log.Info("Allow list: %d entries", allow.Len())
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	verb := "dispatched"
	if cfg.DryRun {
		verb = "would dispatch"
	}
	log.Info("==============================")
	log.Info("Done: %d %s, %d skipped, %d failed", stats.Dispatched, verb, stats.Skipped, stats.Failed)
	log.Info("  Total files processed: %d", stats.Current)
}
