package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturybak/google-coding-challenge/internal/infra/config"
)

func writeLibraryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "videos.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeLibraryFile(t, `# demo library
Funny Dogs|funny_dogs_video_id|#dog, #animal

Amazing Cats | amazing_cats_video_id | #cat, #animal
Video about nothing|nothing_video_id|
`)

	l, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, l.Count())

	v, ok := l.Get("funny_dogs_video_id")
	require.True(t, ok)
	assert.Equal(t, "Funny Dogs", v.Title)
	assert.Equal(t, []string{"#dog", "#animal"}, v.Tags)

	// Columns are trimmed, the tag column may be empty.
	v, ok = l.Get("amazing_cats_video_id")
	require.True(t, ok)
	assert.Equal(t, "Amazing Cats", v.Title)

	v, ok = l.Get("nothing_video_id")
	require.True(t, ok)
	assert.Empty(t, v.Tags)
}

func TestLoadFile_SkipsMalformedLines(t *testing.T) {
	path := writeLibraryFile(t, `just a title without an id
Funny Dogs|funny_dogs_video_id
|missing_title_id
Amazing Cats|amazing_cats_video_id|#cat
`)

	l, err := LoadFile(path)
	require.NoError(t, err)

	var ids []string
	for _, v := range l.All() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"funny_dogs_video_id", "amazing_cats_video_id"}, ids)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open library file")
}

func TestFromConfig(t *testing.T) {
	libraryPath := writeLibraryFile(t, "Funny Dogs|funny_dogs_video_id|#dog\n")

	tests := []struct {
		name      string
		source    config.SourceConfig
		wantErr   bool
		errMsg    string
		wantCount int
	}{
		{
			name:      "builtin source",
			source:    config.SourceConfig{Type: "builtin"},
			wantCount: 5,
		},
		{
			name: "file source",
			source: config.SourceConfig{
				Type:     "file",
				Settings: map[string]any{"path": libraryPath},
			},
			wantCount: 1,
		},
		{
			name:    "file source without path",
			source:  config.SourceConfig{Type: "file"},
			wantErr: true,
			errMsg:  "validation failed",
		},
		{
			name:    "unsupported source type",
			source:  config.SourceConfig{Type: "spotify"},
			wantErr: true,
			errMsg:  "unsupported catalog source type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Catalog: config.CatalogConfig{Source: tt.source}}
			l, err := FromConfig(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, l.Count())
		})
	}
}
