// Package catalog provides the in-memory video library.
package catalog

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/arturybak/google-coding-challenge/internal/domain/video"
)

// Library is an in-memory video catalog. Videos keep the order they were
// loaded in and are handed out by reference, so a moderation flag set
// through one lookup is visible through every other.
type Library struct {
	videos []*video.Video
	byID   map[string]*video.Video
	rng    *rand.Rand
}

// New creates a library from the given videos. Later entries reusing an ID
// are dropped with a warning.
func New(videos []*video.Video) *Library {
	l := &Library{
		videos: make([]*video.Video, 0, len(videos)),
		byID:   make(map[string]*video.Video, len(videos)),
		rng:    rand.New(rand.NewSource(cryptoSeed())),
	}
	for _, v := range videos {
		if _, ok := l.byID[v.ID]; ok {
			zlog.Warn().Msgf("catalog: dropping duplicate video ID: id=%s title=%s", v.ID, v.Title)
			continue
		}
		l.videos = append(l.videos, v)
		l.byID[v.ID] = v
	}
	return l
}

// cryptoSeed returns a crypto/rand seed, falling back to the clock.
func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err == nil {
		return int64(binary.LittleEndian.Uint64(buf[:]))
	}
	return time.Now().UnixNano()
}

// Get looks up a video by ID.
func (l *Library) Get(id string) (*video.Video, bool) {
	v, ok := l.byID[id]
	return v, ok
}

// All returns every video in library order.
func (l *Library) All() []*video.Video {
	result := make([]*video.Video, len(l.videos))
	copy(result, l.videos)
	return result
}

// Unflagged returns the videos without a moderation flag, in library order.
func (l *Library) Unflagged() []*video.Video {
	result := make([]*video.Video, 0, len(l.videos))
	for _, v := range l.videos {
		if !v.Flagged() {
			result = append(result, v)
		}
	}
	return result
}

// RandomUnflaggedID picks an unflagged video ID uniformly at random.
func (l *Library) RandomUnflaggedID() (string, bool) {
	unflagged := l.Unflagged()
	if len(unflagged) == 0 {
		return "", false
	}
	return unflagged[l.rng.Intn(len(unflagged))].ID, true
}

// Count returns the number of videos in the library.
func (l *Library) Count() int {
	return len(l.videos)
}
