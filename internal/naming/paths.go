// Package naming holds the pure path transformations: deriving pose and
// segment output paths from input files. Kept free of filesystem access
// (except [MatchingVideo]) so the rules are unit-testable in isolation.
package naming

import (
	"os"
	"path/filepath"
	"strings"
)

// Stem returns the basename of path without its extension.
// "clips/news.broadcast.mp4" -> "news.broadcast".
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PoseOutputPath derives the pose file path for a video input: the basename
// is relocated into outputDir and its extension replaced with ".pose".
//
//	/videos/a.mp4 + /poses -> /poses/a.pose
func PoseOutputPath(input, outputDir string) string {
	return filepath.Join(outputDir, Stem(input)+".pose")
}

// SegmentsOutputPath derives the segmentation output path for a pose input:
// the extension is replaced in place, keeping the original directory.
// ext includes the leading dot (".seg.npy" or ".eaf").
//
//	/poses/x.pose + ".seg.npy" -> /poses/x.seg.npy
func SegmentsOutputPath(input, ext string) string {
	return filepath.Join(filepath.Dir(input), Stem(input)+ext)
}

// videoExts are the candidate extensions tried by [MatchingVideo], most
// common first.
var videoExts = []string{".mp4", ".mpg", ".webm"}

// MatchingVideo returns the path of a video in videoDir sharing the input's
// stem, or "" when none exists. Used to link the source video into ELAN
// output files.
func MatchingVideo(videoDir, input string) string {
	if videoDir == "" {
		return ""
	}
	stem := Stem(input)
	for _, ext := range videoExts {
		candidate := filepath.Join(videoDir, stem+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
