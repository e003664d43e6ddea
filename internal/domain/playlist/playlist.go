// Package playlist provides the Playlist domain entity and its naming rules.
package playlist

import (
	"errors"
	"strings"

	"github.com/arturybak/google-coding-challenge/internal/domain/video"
)

var (
	// ErrDuplicateVideo is returned when adding a video already in the playlist.
	ErrDuplicateVideo = errors.New("video already in playlist")
	// ErrNotInPlaylist is returned when removing a video the playlist does not hold.
	ErrNotInPlaylist = errors.New("video is not in playlist")
)

// Playlist is an ordered collection of library videos under a display name.
// Videos are held by reference; a video may appear in any number of
// playlists but at most once per playlist.
type Playlist struct {
	Name string // Display name: caller's spelling with all whitespace removed

	videos []*video.Video
}

// New returns an empty playlist, stripping all whitespace from the name
// while preserving its case.
func New(name string) *Playlist {
	return &Playlist{Name: stripSpace(name)}
}

// Normalize returns the canonical lookup key for a playlist name: whitespace
// removed and letters lower-cased. Two names normalizing to the same key
// refer to the same playlist.
func Normalize(name string) string {
	return strings.ToLower(stripSpace(name))
}

func stripSpace(name string) string {
	return strings.Join(strings.Fields(name), "")
}

// Videos returns the playlist content in insertion order.
func (p *Playlist) Videos() []*video.Video {
	out := make([]*video.Video, len(p.videos))
	copy(out, p.videos)
	return out
}

// Size returns the number of videos in the playlist.
func (p *Playlist) Size() int {
	return len(p.videos)
}

// Contains checks if the playlist holds the video with the given ID.
func (p *Playlist) Contains(id string) bool {
	return p.indexOf(id) >= 0
}

// Add appends the video, rejecting duplicates by ID.
func (p *Playlist) Add(v *video.Video) error {
	if p.Contains(v.ID) {
		return ErrDuplicateVideo
	}
	p.videos = append(p.videos, v)
	return nil
}

// Remove deletes the video with the given ID, preserving the order of the
// remaining videos.
func (p *Playlist) Remove(id string) error {
	i := p.indexOf(id)
	if i < 0 {
		return ErrNotInPlaylist
	}
	p.videos = append(p.videos[:i], p.videos[i+1:]...)
	return nil
}

// Clear removes every video, keeping the playlist itself.
func (p *Playlist) Clear() {
	p.videos = nil
}

func (p *Playlist) indexOf(id string) int {
	for i, v := range p.videos {
		if v.ID == id {
			return i
		}
	}
	return -1
}
