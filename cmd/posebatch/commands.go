package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/J22Melody/transcription/internal/check"
	"github.com/J22Melody/transcription/internal/config"
	"github.com/J22Melody/transcription/internal/logging"
)

// Per-command flag targets.
var (
	extractQueue  bool
	segmentDirect bool
	segmentFormat string
)

var videosToPosesCmd = &cobra.Command{
	Use:   "videos-to-poses <input_dir> <output_dir>",
	Short: "Extract a pose file per video via video_to_pose",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Mode = config.ModeExtract
		cfg.InputDir = config.NormalizeDirArg(args[0])
		cfg.OutputDir = config.NormalizeDirArg(args[1])
		cfg.UseQueue = extractQueue
		return runBatch(cmd.Context())
	},
}

var posesToSegmentsCmd = &cobra.Command{
	Use:   "poses-to-segments <dir>",
	Short: "Segment each pose file via pose_to_segments (queued by default)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Mode = config.ModeSegment
		cfg.InputDir = config.NormalizeDirArg(args[0])
		cfg.UseQueue = !segmentDirect
		cfg.SegmentFormat = config.OutputFormat(segmentFormat)
		return runBatch(cmd.Context())
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report availability of the external tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.ColorMode = config.ColorMode(colorFlag)
		log, err := logging.NewLogger(&cfg)
		if err != nil {
			return err
		}
		defer log.Close()
		if !check.RunCheck(&cfg, log) {
			return errors.New("some tools are missing")
		}
		return nil
	},
}

func init() {
	videosToPosesCmd.Flags().StringVar(&cfg.PoseFormat, "format", cfg.PoseFormat, "Pose estimation backend passed to the tool")
	videosToPosesCmd.Flags().BoolVar(&extractQueue, "queue", false, "Submit via the queue command instead of running directly")

	posesToSegmentsCmd.Flags().StringVar(&segmentFormat, "output-format", string(cfg.SegmentFormat), "Segment output format: probs | elan")
	posesToSegmentsCmd.Flags().BoolVar(&segmentDirect, "direct", false, "Run the tool directly instead of submitting to the queue")
	posesToSegmentsCmd.Flags().StringVar(&cfg.VideoDir, "video-dir", "", "Directory of source videos to link into ELAN output")
}
