// Package playlists provides the named playlist store.
package playlists

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/arturybak/google-coding-challenge/internal/domain/playlist"
)

var (
	ErrNotFound      = errors.New("playlist does not exist")
	ErrDuplicateName = errors.New("playlist name already exists")
)

// Store manages playlists keyed by their normalized name, so spellings that
// differ only in case or whitespace refer to the same playlist. Commands are
// processed one at a time, so the store is not safe for concurrent use.
type Store struct {
	playlists map[string]*playlist.Playlist
}

// NewStore creates an empty playlist store.
func NewStore() *Store {
	return &Store{
		playlists: make(map[string]*playlist.Playlist),
	}
}

// Create adds an empty playlist under the given name and returns it.
// Fails with ErrDuplicateName when any existing playlist normalizes to the
// same key.
func (s *Store) Create(name string) (*playlist.Playlist, error) {
	key := playlist.Normalize(name)
	if _, ok := s.playlists[key]; ok {
		return nil, ErrDuplicateName
	}

	p := playlist.New(name)
	s.playlists[key] = p
	return p, nil
}

// Get retrieves a playlist by any spelling of its name.
func (s *Store) Get(name string) (*playlist.Playlist, error) {
	p, ok := s.playlists[playlist.Normalize(name)]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// Delete removes a playlist by any spelling of its name.
func (s *Store) Delete(name string) error {
	key := playlist.Normalize(name)
	if _, ok := s.playlists[key]; !ok {
		return ErrNotFound
	}
	delete(s.playlists, key)
	return nil
}

// All returns all playlists sorted by normalized name.
func (s *Store) All() []*playlist.Playlist {
	keys := make([]string, 0, len(s.playlists))
	for key := range s.playlists {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]*playlist.Playlist, 0, len(keys))
	for _, key := range keys {
		result = append(result, s.playlists[key])
	}
	return result
}

// Count returns the number of playlists.
func (s *Store) Count() int {
	return len(s.playlists)
}
