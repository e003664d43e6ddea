package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturybak/google-coding-challenge/internal/domain/video"
)

func TestNew_DropsDuplicateIDs(t *testing.T) {
	l := New([]*video.Video{
		video.New("a", "First"),
		video.New("b", "Second"),
		video.New("a", "First again"),
	})

	assert.Equal(t, 2, l.Count())
	v, ok := l.Get("a")
	require.True(t, ok)
	assert.Equal(t, "First", v.Title)
}

func TestLibrary_AllKeepsLoadOrder(t *testing.T) {
	l := New([]*video.Video{
		video.New("z", "Zebra"),
		video.New("a", "Aardvark"),
		video.New("m", "Meerkat"),
	})

	var ids []string
	for _, v := range l.All() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}

func TestLibrary_Get(t *testing.T) {
	l := Builtin()

	v, ok := l.Get("amazing_cats_video_id")
	require.True(t, ok)
	assert.Equal(t, "Amazing Cats", v.Title)

	_, ok = l.Get("does_not_exist")
	assert.False(t, ok)
}

func TestLibrary_SharesVideoReferences(t *testing.T) {
	l := Builtin()

	v, ok := l.Get("amazing_cats_video_id")
	require.True(t, ok)
	v.SetFlag("dont_like_cats")

	// The flag is visible through every other accessor.
	for _, u := range l.All() {
		if u.ID == "amazing_cats_video_id" {
			assert.True(t, u.Flagged())
		}
	}
	for _, u := range l.Unflagged() {
		assert.NotEqual(t, "amazing_cats_video_id", u.ID)
	}
}

func TestLibrary_Unflagged(t *testing.T) {
	l := Builtin()
	require.Equal(t, 5, l.Count())

	v, ok := l.Get("funny_dogs_video_id")
	require.True(t, ok)
	v.SetFlag("barking")

	unflagged := l.Unflagged()
	assert.Len(t, unflagged, 4)
	for _, u := range unflagged {
		assert.False(t, u.Flagged())
	}
}

func TestLibrary_RandomUnflaggedID(t *testing.T) {
	l := New([]*video.Video{
		video.New("a", "Only one"),
		video.New("b", "Flagged one"),
	})
	v, ok := l.Get("b")
	require.True(t, ok)
	v.SetFlag("reason")

	// With a single unflagged video the draw is deterministic.
	for i := 0; i < 10; i++ {
		id, ok := l.RandomUnflaggedID()
		require.True(t, ok)
		assert.Equal(t, "a", id)
	}
}

func TestLibrary_RandomUnflaggedID_NoneAvailable(t *testing.T) {
	l := New([]*video.Video{video.New("a", "A")})
	v, ok := l.Get("a")
	require.True(t, ok)
	v.SetFlag("reason")

	_, ok = l.RandomUnflaggedID()
	assert.False(t, ok)

	_, ok = New(nil).RandomUnflaggedID()
	assert.False(t, ok)
}

func TestBuiltin(t *testing.T) {
	l := Builtin()

	assert.Equal(t, 5, l.Count())
	var titles []string
	for _, v := range l.All() {
		titles = append(titles, v.Title)
	}
	assert.Equal(t, []string{
		"Funny Dogs",
		"Amazing Cats",
		"Another Cat Video",
		"Life at Google",
		"Video about nothing",
	}, titles)
}
