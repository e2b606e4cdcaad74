// Command posebatch dispatches the external pose tooling over directories
// of video and pose files: videos-to-poses runs video_to_pose per video,
// poses-to-segments submits pose_to_segments per pose file (directly or via
// the cluster queue), and check reports tool availability.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/J22Melody/transcription/internal/config"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// cfg is populated from defaults and mutated by flags and positional args
// before runBatch hands it (by pointer) to the internal packages.
var cfg = config.DefaultConfig()

// Flag targets that need post-processing before they land in cfg.
var (
	force     bool
	colorFlag string
)

var rootCmd = &cobra.Command{
	Use:           "posebatch",
	Short:         "Batch dispatcher for sign language pose tooling",
	Long:          "posebatch walks a directory of video or pose files, derives an output path\nper file, and invokes the matching external tool once per file, either\ndirectly or through a cluster queue submission command.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Preview only; print derived paths without dispatching")
	pf.BoolVarP(&force, "force", "f", false, "Dispatch even when the output file already exists")
	pf.StringVar(&cfg.AllowListPath, "allow-list", "", "File of basenames gating which inputs are processed")
	pf.StringVar(&cfg.QueueCommand, "queue-command", cfg.QueueCommand, "Queue submission command")
	pf.StringVar(&cfg.JobScript, "job-script", cfg.JobScript, "Job wrapper script passed to the queue command")
	pf.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	pf.StringVar(&colorFlag, "color", string(cfg.ColorMode), "Colored logs: auto | always | never")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output (tool output and debug logs)")

	rootCmd.AddCommand(videosToPosesCmd)
	rootCmd.AddCommand(posesToSegmentsCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "posebatch: %v\n", err)
		os.Exit(1)
	}
}
