package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideo_String(t *testing.T) {
	tests := []struct {
		name     string
		video    *Video
		flagged  bool
		reason   string
		expected string
	}{
		{
			name:     "title id and tags",
			video:    New("amazing_cats_video_id", "Amazing Cats", "#cat", "#animal"),
			expected: "Amazing Cats (amazing_cats_video_id) [#cat #animal]",
		},
		{
			name:     "no tags renders empty brackets",
			video:    New("nothing_video_id", "Video about nothing"),
			expected: "Video about nothing (nothing_video_id) []",
		},
		{
			name:     "flagged video carries the reason",
			video:    New("amazing_cats_video_id", "Amazing Cats", "#cat", "#animal"),
			flagged:  true,
			reason:   "dont_watch_me",
			expected: "Amazing Cats (amazing_cats_video_id) [#cat #animal] - FLAGGED (reason: dont_watch_me)",
		},
		{
			name:     "flagged with default reason",
			video:    New("funny_dogs_video_id", "Funny Dogs", "#dog", "#animal"),
			flagged:  true,
			reason:   "Not supplied",
			expected: "Funny Dogs (funny_dogs_video_id) [#dog #animal] - FLAGGED (reason: Not supplied)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.flagged {
				tt.video.SetFlag(tt.reason)
			}
			assert.Equal(t, tt.expected, tt.video.String())
		})
	}
}

func TestVideo_FlagLifecycle(t *testing.T) {
	v := New("life_at_google_video_id", "Life at Google", "#google", "#career")

	assert.False(t, v.Flagged())
	assert.Empty(t, v.FlagReason())

	v.SetFlag("graphic content")
	assert.True(t, v.Flagged())
	assert.Equal(t, "graphic content", v.FlagReason())

	v.ClearFlag()
	assert.False(t, v.Flagged())
	assert.Empty(t, v.FlagReason())
}

func TestVideo_HasTag(t *testing.T) {
	v := New("amazing_cats_video_id", "Amazing Cats", "#cat", "#animal")

	tests := []struct {
		name     string
		tag      string
		expected bool
	}{
		{name: "exact match", tag: "#cat", expected: true},
		{name: "match ignores case", tag: "#CAT", expected: true},
		{name: "missing hash prefix does not match", tag: "cat", expected: false},
		{name: "unknown tag", tag: "#dog", expected: false},
		{name: "empty tag", tag: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.HasTag(tt.tag))
		})
	}
}
