// Package config holds runtime configuration: defaults, validation, and the
// enum types backing CLI flags. Defaults match the legacy shell scripts
// (videos_to_poses.sh / poses_to_segments.sh) for parity.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// Mode selects which batch the dispatcher runs.
type Mode string

const (
	ModeExtract Mode = "extract" // Videos to pose files via video_to_pose.
	ModeSegment Mode = "segment" // Pose files to segments via pose_to_segments.
)

// OutputFormat is the segmentation tool's output format.
type OutputFormat string

const (
	FormatProbs OutputFormat = "probs" // Raw probabilities as .seg.npy (default).
	FormatElan  OutputFormat = "elan"  // ELAN annotation file (.eaf).
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the CLI layer before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args).
	Mode      Mode
	InputDir  string
	OutputDir string // Extract mode only; segment outputs stay next to their input.

	// External tools.
	ExtractTool string // Default: "video_to_pose".
	SegmentTool string // Default: "pose_to_segments".
	PoseFormat  string // Pose estimation backend passed as --format. Default: "mediapipe".

	// Queue submission.
	UseQueue     bool   // Submit via the queue wrapper instead of running directly.
	QueueCommand string // Default: "sbatch".
	JobScript    string // Default: "job.sh".

	// Segmentation output.
	SegmentFormat OutputFormat // Default: "probs".
	VideoDir      string       // ELAN only: directory searched for a matching video to link.

	// Behavior flags.
	DryRun        bool
	SkipExisting  bool   // Default: true. Cleared by --force.
	AllowListPath string // Optional file of basenames gating which files are dispatched.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults matching the legacy shell
// scripts. Used as the base before the CLI applies flag overrides.
func DefaultConfig() Config {
	return Config{
		ExtractTool:   "video_to_pose",
		SegmentTool:   "pose_to_segments",
		PoseFormat:    "mediapipe",
		QueueCommand:  "sbatch",
		JobScript:     "job.sh",
		SegmentFormat: FormatProbs,
		DryRun:        false,
		SkipExisting:  true,
		ColorMode:     ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and mode-specific requirements. It is called
// after the CLI has filled in positional arguments.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeExtract, ModeSegment:
		// valid
	default:
		return errors.New("no batch mode selected")
	}

	switch c.SegmentFormat {
	case FormatProbs, FormatElan:
		// valid
	default:
		return fmt.Errorf("invalid output format %q (use 'probs' or 'elan')", c.SegmentFormat)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.VideoDir != "" && c.SegmentFormat != FormatElan {
		return errors.New("--video-dir requires --output-format elan")
	}

	if c.PoseFormat == "" {
		return errors.New("pose format must not be empty")
	}
	if c.UseQueue {
		if c.QueueCommand == "" {
			return errors.New("queue command must not be empty")
		}
		if c.JobScript == "" {
			return errors.New("job script must not be empty")
		}
	}

	if c.InputDir == "" {
		return errors.New("need an input directory")
	}
	if c.Mode == ModeExtract && c.OutputDir == "" {
		return errors.New("need exactly input_dir and output_dir")
	}
	return nil
}

// SegmentExt returns the output file extension (with leading dot) for the
// configured segmentation format.
func (c *Config) SegmentExt() string {
	if c.SegmentFormat == FormatElan {
		return ".eaf"
	}
	return ".seg.npy"
}

// Tool returns the external binary for the active mode.
func (c *Config) Tool() string {
	if c.Mode == ModeSegment {
		return c.SegmentTool
	}
	return c.ExtractTool
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved input directory. This prevents the dispatcher from
// discovering its own output files on a later run. Both arguments must be
// absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
