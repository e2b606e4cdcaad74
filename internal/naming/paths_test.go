package naming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple video", "/videos/a.mp4", "a"},
		{"mpg video", "b.mpg", "b"},
		{"pose file", "/poses/x.pose", "x"},
		{"dotted basename", "/clips/news.broadcast.mp4", "news.broadcast"},
		{"no extension", "/clips/raw", "raw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.in))
		})
	}
}

func TestPoseOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		out   string
		want  string
	}{
		{"mp4 relocated", "/videos/a.mp4", "/out", "/out/a.pose"},
		{"mpg relocated", "/videos/sub/b.mpg", "/out", "/out/b.pose"},
		{"relative output dir", "c.mp4", "poses", "poses/c.pose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PoseOutputPath(tt.input, tt.out))
		})
	}
}

func TestSegmentsOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ext   string
		want  string
	}{
		{"probs in place", "/poses/x.pose", ".seg.npy", "/poses/x.seg.npy"},
		{"elan in place", "/poses/x.pose", ".eaf", "/poses/x.eaf"},
		{"nested dir kept", "/data/set1/y.pose", ".seg.npy", "/data/set1/y.seg.npy"},
		{"relative path", "z.pose", ".seg.npy", "z.seg.npy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentsOutputPath(tt.input, tt.ext))
		})
	}
}

func TestMatchingVideo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mp4"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.mpg"), []byte("x"), 0o644))

	assert.Equal(t, filepath.Join(dir, "a.mp4"), MatchingVideo(dir, "/poses/a.pose"))
	assert.Equal(t, filepath.Join(dir, "b.mpg"), MatchingVideo(dir, "/poses/b.pose"))
	assert.Equal(t, "", MatchingVideo(dir, "/poses/missing.pose"))
	assert.Equal(t, "", MatchingVideo("", "/poses/a.pose"))
}
