package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/J22Melody/transcription/internal/allowlist"
	"github.com/J22Melody/transcription/internal/check"
	"github.com/J22Melody/transcription/internal/config"
	"github.com/J22Melody/transcription/internal/dispatch"
	"github.com/J22Melody/transcription/internal/display"
	"github.com/J22Melody/transcription/internal/logging"
)

// runBatch is the shared driver behind videos-to-poses and poses-to-segments.
func runBatch(ctx context.Context) error {
	// Phase 1: Bootstrap. Configuration errors are returned to main and
	// printed to stderr; the logger does not exist yet.
	if force {
		cfg.SkipExisting = false
	}
	cfg.ColorMode = config.ColorMode(colorFlag)

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner()

	// Resolve and validate paths: input must exist; in extract mode the
	// output dir is created and must not be inside the input (prevents
	// discovering our own output on a later run).
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("input not found: %s", cfg.InputDir)
	}
	if cfg.Mode == config.ModeExtract {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %s", cfg.OutputDir)
		}
		outputAbs, err := absPath(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("cannot resolve output path: %s", cfg.OutputDir)
		}
		if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
			return err
		}
	}

	var allow *allowlist.List
	if cfg.AllowListPath != "" {
		allow, err = allowlist.Load(cfg.AllowListPath)
		if err != nil {
			return err
		}
	}

	log.Info("=== PoseBatch v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	if cfg.Mode == config.ModeExtract {
		log.Info("Out: %s", cfg.OutputDir)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN (nothing will be dispatched)")
	}
	log.Info("")

	// Fail fast on missing tools, except in dry-run which spawns nothing.
	if !cfg.DryRun {
		if err := check.CheckDeps(&cfg); err != nil {
			return err
		}
	}

	// Phase 3: Signal handling. Cancel between files on SIGINT/SIGTERM so
	// the batch stops without killing a queue submission mid-flight.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file")
		cancel()
	}()

	// Phase 4: Run the batch.
	stats := dispatch.Run(ctx, &cfg, log, allow, &dispatch.ExecRunner{Verbose: cfg.Verbose})

	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", stats.Failed, stats.Total)
	}
	return nil
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of input vs output directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
