package player

import (
	"fmt"

	zlog "github.com/rs/zerolog/log"
)

// CreatePlaylist adds a new empty playlist, echoing the stored display name.
// Names that differ only in case or whitespace count as taken.
func (p *Player) CreatePlaylist(name string) {
	pl, err := p.playlists.Create(name)
	if err != nil {
		p.console.WriteLine("Cannot create playlist: A playlist with the same name already exists")
		return
	}

	zlog.Debug().Msgf("player: created playlist: name=%s", pl.Name)
	p.console.WriteLine(fmt.Sprintf("Successfully created new playlist: %s", pl.Name))
}

// AddToPlaylist appends a library video to a playlist.
func (p *Player) AddToPlaylist(name, id string) {
	pl, err := p.playlists.Get(name)
	if err != nil {
		p.console.WriteLine(fmt.Sprintf("Cannot add video to %s: Playlist does not exist", name))
		return
	}

	v, ok := p.library.Get(id)
	if !ok {
		p.console.WriteLine(fmt.Sprintf("Cannot add video to %s: Video does not exist", name))
		return
	}

	if v.Flagged() {
		p.console.WriteLine(fmt.Sprintf("Cannot add video to %s: Video is currently flagged (reason: %s)", name, v.FlagReason()))
		return
	}

	if err := pl.Add(v); err != nil {
		p.console.WriteLine(fmt.Sprintf("Cannot add video to %s: Video already added", name))
		return
	}

	p.console.WriteLine(fmt.Sprintf("Added video to %s: %s", name, v.Title))
}

// RemoveFromPlaylist removes a video from a playlist. Other playlists and
// the playback state are untouched.
func (p *Player) RemoveFromPlaylist(name, id string) {
	pl, err := p.playlists.Get(name)
	if err != nil {
		p.console.WriteLine(fmt.Sprintf("Cannot remove video from %s: Playlist does not exist", name))
		return
	}

	v, ok := p.library.Get(id)
	if !ok {
		p.console.WriteLine(fmt.Sprintf("Cannot remove video from %s: Video does not exist", name))
		return
	}

	if err := pl.Remove(v.ID); err != nil {
		p.console.WriteLine(fmt.Sprintf("Cannot remove video from %s: Video is not in playlist", name))
		return
	}

	p.console.WriteLine(fmt.Sprintf("Removed video from %s: %s", name, v.Title))
}

// ClearPlaylist removes every video from a playlist but keeps the playlist.
func (p *Player) ClearPlaylist(name string) {
	pl, err := p.playlists.Get(name)
	if err != nil {
		p.console.WriteLine(fmt.Sprintf("Cannot clear playlist %s: Playlist does not exist", name))
		return
	}

	pl.Clear()
	p.console.WriteLine(fmt.Sprintf("Successfully removed all videos from %s", name))
}

// DeletePlaylist deletes a playlist entirely, freeing its name.
func (p *Player) DeletePlaylist(name string) {
	if err := p.playlists.Delete(name); err != nil {
		p.console.WriteLine(fmt.Sprintf("Cannot delete playlist %s: Playlist does not exist", name))
		return
	}

	zlog.Debug().Msgf("player: deleted playlist: name=%s", name)
	p.console.WriteLine(fmt.Sprintf("Deleted playlist: %s", name))
}

// ShowPlaylist lists a playlist's videos in the order they were added.
// Videos flagged after being added stay listed, marked with their reason.
func (p *Player) ShowPlaylist(name string) {
	pl, err := p.playlists.Get(name)
	if err != nil {
		p.console.WriteLine(fmt.Sprintf("Cannot show playlist %s: Playlist does not exist", name))
		return
	}

	p.console.WriteLine(fmt.Sprintf("Showing playlist: %s", name))
	if pl.Size() == 0 {
		p.console.WriteLine("No videos here yet")
		return
	}
	for _, v := range pl.Videos() {
		p.console.WriteLine(v.String())
	}
}

// ShowAllPlaylists lists every playlist name, sorted ignoring case and
// whitespace.
func (p *Player) ShowAllPlaylists() {
	if p.playlists.Count() == 0 {
		p.console.WriteLine("No playlists exist yet")
		return
	}

	p.console.WriteLine("Showing all playlists:")
	for _, pl := range p.playlists.All() {
		p.console.WriteLine("  " + pl.Name)
	}
}
