package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadVideos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"title": "Divorce basics", "video_url": "https://v.example.com/1.mp4", "category": "divorce", "duration": 300},
		{"title": "Inheritance shares", "video_url": "https://v.example.com/2.mp4", "views": 99}
	]`), 0o644))

	videos, err := readVideos(path)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "Divorce basics", videos[0].Title)
	assert.Equal(t, 300, videos[0].Duration)
	assert.Equal(t, int64(99), videos[1].Views)
}

func TestReadVideosErrors(t *testing.T) {
	_, err := readVideos(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "not an array"}`), 0o644))
	_, err = readVideos(path)
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "null.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title": "ok", "video_url": "https://v.example.com/1.mp4"}, null]`), 0o644))
	_, err = readVideos(path)
	assert.ErrorContains(t, err, "video 1 is null")
}
