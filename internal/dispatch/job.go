package dispatch

import (
	"github.com/J22Melody/transcription/internal/config"
	"github.com/J22Melody/transcription/internal/naming"
)

// Job is one (input, output) pair together with the argument list that will
// be handed to the [Runner]. Jobs are value objects; building them has no
// side effects.
type Job struct {
	Input  string
	Output string
	Argv   []string
}

// BuildJob derives the output path for input and constructs the argv for
// the active mode. With UseQueue set, the tool invocation is prefixed by
// the queue command and job script (e.g. "sbatch job.sh pose_to_segments ...").
func BuildJob(cfg *config.Config, input string) Job {
	var output string
	var args []string

	switch cfg.Mode {
	case config.ModeSegment:
		output = naming.SegmentsOutputPath(input, cfg.SegmentExt())
		args = []string{cfg.SegmentTool, "-i", input, "-o", output, "-f", string(cfg.SegmentFormat)}
		if cfg.SegmentFormat == config.FormatElan {
			if video := naming.MatchingVideo(cfg.VideoDir, input); video != "" {
				args = append(args, "-v", video)
			}
		}
	default: // ModeExtract
		output = naming.PoseOutputPath(input, cfg.OutputDir)
		args = []string{cfg.ExtractTool, "-i", input, "--format", cfg.PoseFormat, "-o", output}
	}

	if cfg.UseQueue {
		args = append([]string{cfg.QueueCommand, cfg.JobScript}, args...)
	}

	return Job{Input: input, Output: output, Argv: args}
}
