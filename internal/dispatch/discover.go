package dispatch

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/J22Melody/transcription/internal/config"
)

// Input extensions per mode (lowercase, with leading dot).
var (
	videoExtensions = map[string]bool{
		".mp4": true,
		".mpg": true,
	}
	poseExtensions = map[string]bool{
		".pose": true,
	}
)

// ExtensionsFor returns the input extension set for a batch mode.
func ExtensionsFor(mode config.Mode) map[string]bool {
	if mode == config.ModeSegment {
		return poseExtensions
	}
	return videoExtensions
}

// Discover walks inputDir, collects files whose extension is in exts, skips
// hidden directories, and returns the paths sorted lexicographically for
// deterministic processing order.
func Discover(inputDir string, exts map[string]bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != inputDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if exts[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
