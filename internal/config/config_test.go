package config

import (
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/videos", "/data/videos"},
		{"single trailing slash", "/data/videos/", "/data/videos"},
		{"multiple trailing slashes", "/data/videos///", "/data/videos"},
		{"root path", "/", "/"},
		{"relative path", "poses", "poses"},
		{"relative with slash", "poses/", "poses"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Mode(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		wantErr bool
	}{
		{"extract is valid", ModeExtract, false},
		{"segment is valid", ModeSegment, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "transcode", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = tt.mode
			cfg.InputDir = "/in"
			cfg.OutputDir = "/out"
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_SegmentFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  OutputFormat
		wantErr bool
	}{
		{"probs is valid", FormatProbs, false},
		{"elan is valid", FormatElan, false},
		{"empty is invalid", "", true},
		{"srt is invalid", "srt", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = ModeSegment
			cfg.InputDir = "/in"
			cfg.SegmentFormat = tt.format
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_VideoDirRequiresElan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeSegment
	cfg.InputDir = "/in"
	cfg.VideoDir = "/videos"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when --video-dir is set with probs output")
	}

	cfg.SegmentFormat = FormatElan
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_RequiresPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeExtract

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when paths are empty")
	}

	cfg.InputDir = "/in"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail in extract mode without an output dir")
	}

	cfg.OutputDir = "/out"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_SegmentModeNeedsNoOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeSegment
	cfg.InputDir = "/in"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should pass without output dir in segment mode, got: %v", err)
	}
}

func TestValidate_QueueSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeSegment
	cfg.InputDir = "/in"
	cfg.UseQueue = true
	cfg.QueueCommand = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when queueing with an empty queue command")
	}

	cfg.QueueCommand = "sbatch"
	cfg.JobScript = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when queueing with an empty job script")
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		wantErr bool
	}{
		{"separate directories", "/data/in", "/data/out", false},
		{"output equals input", "/data/lib", "/data/lib", true},
		{"output inside input", "/data/lib", "/data/lib/poses", true},
		{"output is parent of input", "/data/lib/sub", "/data/lib", false},
		{"similar prefix not nested", "/data/videos", "/data/videos2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.input, tt.output)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.input, tt.output, err, tt.wantErr)
			}
		})
	}
}

func TestSegmentExt(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.SegmentExt(); got != ".seg.npy" {
		t.Errorf("SegmentExt() for probs = %q, want %q", got, ".seg.npy")
	}
	cfg.SegmentFormat = FormatElan
	if got := cfg.SegmentExt(); got != ".eaf" {
		t.Errorf("SegmentExt() for elan = %q, want %q", got, ".eaf")
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ExtractTool != "video_to_pose" {
		t.Errorf("default ExtractTool = %q, want %q", cfg.ExtractTool, "video_to_pose")
	}
	if cfg.SegmentTool != "pose_to_segments" {
		t.Errorf("default SegmentTool = %q, want %q", cfg.SegmentTool, "pose_to_segments")
	}
	if cfg.PoseFormat != "mediapipe" {
		t.Errorf("default PoseFormat = %q, want %q", cfg.PoseFormat, "mediapipe")
	}
	if cfg.QueueCommand != "sbatch" {
		t.Errorf("default QueueCommand = %q, want %q", cfg.QueueCommand, "sbatch")
	}
	if cfg.SegmentFormat != FormatProbs {
		t.Errorf("default SegmentFormat = %q, want %q", cfg.SegmentFormat, FormatProbs)
	}
	if !cfg.SkipExisting {
		t.Error("default SkipExisting should be true")
	}
	if cfg.DryRun {
		t.Error("default DryRun should be false")
	}
	if cfg.UseQueue {
		t.Error("default UseQueue should be false")
	}
}
