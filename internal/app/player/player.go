// Package player implements the user-facing operations of the video player.
package player

import (
	"fmt"

	zlog "github.com/rs/zerolog/log"

	"github.com/arturybak/google-coding-challenge/internal/app/playback"
	"github.com/arturybak/google-coding-challenge/internal/app/playlists"
	"github.com/arturybak/google-coding-challenge/internal/domain/video"
)

// defaultFlagReason is recorded when a flag request does not supply one.
const defaultFlagReason = "Not supplied"

// Library is the video catalog the player browses. Implementations hand out
// shared references; the player mutates nothing but the moderation flag.
type Library interface {
	// Get looks up a video by ID.
	Get(id string) (*video.Video, bool)
	// All returns every video in library order.
	All() []*video.Video
	// Unflagged returns the videos without a moderation flag, in library order.
	Unflagged() []*video.Video
	// RandomUnflaggedID picks an unflagged video ID uniformly at random.
	RandomUnflaggedID() (string, bool)
}

// Console is the line terminal the player reports to. ReadLine serves the
// search selection prompt only.
type Console interface {
	WriteLine(text string)
	ReadLine() (string, error)
}

// Player executes commands against the library, the playback machine and the
// playlist store. Every operation reports its outcome as console lines;
// failed preconditions surface as messages, never as process errors, and
// leave all state untouched.
type Player struct {
	library   Library
	console   Console
	playback  *playback.Machine
	playlists *playlists.Store
}

// New creates a player over the given library and console.
func New(library Library, console Console) *Player {
	return &Player{
		library:   library,
		console:   console,
		playback:  playback.NewMachine(),
		playlists: playlists.NewStore(),
	}
}

// NumberOfVideos reports how many videos the library holds.
func (p *Player) NumberOfVideos() {
	p.console.WriteLine(fmt.Sprintf("%d videos in the library", len(p.library.All())))
}

// ShowAllVideos lists every video in library order.
func (p *Player) ShowAllVideos() {
	p.console.WriteLine("Here's a list of all available videos:")
	for _, v := range p.library.All() {
		p.console.WriteLine(v.String())
	}
}

// PlayVideo starts playing the video with the given ID, stopping whatever is
// playing first. A flagged video is refused, but only after that stop.
func (p *Player) PlayVideo(id string) {
	v, ok := p.library.Get(id)
	if !ok {
		p.console.WriteLine("Cannot play video: Video does not exist")
		return
	}

	if p.playback.State() != playback.StateStopped {
		p.StopVideo()
	}

	if v.Flagged() {
		p.console.WriteLine(fmt.Sprintf("Cannot play video: Video is currently flagged (reason: %s)", v.FlagReason()))
		return
	}

	p.playback.Play(v)
	p.console.WriteLine(fmt.Sprintf("Playing video: %s", v.Title))
}

// StopVideo stops the current video.
func (p *Player) StopVideo() {
	v, err := p.playback.Current()
	if err != nil {
		p.console.WriteLine("Cannot stop video: No video is currently playing")
		return
	}

	p.console.WriteLine(fmt.Sprintf("Stopping video: %s", v.Title))
	_ = p.playback.Stop()
}

// PlayRandomVideo plays a random unflagged video.
func (p *Player) PlayRandomVideo() {
	id, ok := p.library.RandomUnflaggedID()
	if !ok {
		p.console.WriteLine("No videos available")
		return
	}
	p.PlayVideo(id)
}

// PauseVideo pauses the current video. Pausing twice reports the video as
// already paused and changes nothing.
func (p *Player) PauseVideo() {
	v, err := p.playback.Current()
	if err != nil {
		p.console.WriteLine("Cannot pause video: No video is currently playing")
		return
	}

	if p.playback.State() == playback.StatePaused {
		p.console.WriteLine(fmt.Sprintf("Video already paused: %s", v.Title))
		return
	}

	p.console.WriteLine(fmt.Sprintf("Pausing video: %s", v.Title))
	_ = p.playback.Pause()
}

// ContinueVideo resumes a paused video.
func (p *Player) ContinueVideo() {
	v, err := p.playback.Current()
	if err != nil {
		p.console.WriteLine("Cannot continue video: No video is currently playing")
		return
	}

	if err := p.playback.Resume(); err != nil {
		p.console.WriteLine("Cannot continue video: Video is not paused")
		return
	}
	p.console.WriteLine(fmt.Sprintf("Continuing video: %s", v.Title))
}

// ShowPlaying reports the current video and whether it is paused.
func (p *Player) ShowPlaying() {
	v, err := p.playback.Current()
	if err != nil {
		p.console.WriteLine("No video is currently playing")
		return
	}

	line := fmt.Sprintf("Currently playing: %s", v)
	if p.playback.State() == playback.StatePaused {
		line += " - PAUSED"
	}
	p.console.WriteLine(line)
}

// FlagVideo marks a video so it can no longer be played or added to
// playlists, stopping it first if it is the one playing.
func (p *Player) FlagVideo(id, reason string) {
	v, ok := p.library.Get(id)
	if !ok {
		p.console.WriteLine("Cannot flag video: Video does not exist")
		return
	}
	if v.Flagged() {
		p.console.WriteLine("Cannot flag video: Video is already flagged")
		return
	}

	if reason == "" {
		reason = defaultFlagReason
	}

	if cur, err := p.playback.Current(); err == nil && cur.ID == v.ID {
		p.StopVideo()
	}

	v.SetFlag(reason)
	zlog.Debug().Msgf("player: flagged video: id=%s reason=%s", v.ID, reason)
	p.console.WriteLine(fmt.Sprintf("Successfully flagged video: %s (reason: %s)", v.Title, reason))
}

// AllowVideo removes a video's moderation flag.
func (p *Player) AllowVideo(id string) {
	v, ok := p.library.Get(id)
	if !ok {
		p.console.WriteLine("Cannot remove flag from video: Video does not exist")
		return
	}
	if !v.Flagged() {
		p.console.WriteLine("Cannot remove flag from video: Video is not flagged")
		return
	}

	v.ClearFlag()
	zlog.Debug().Msgf("player: removed flag: id=%s", v.ID)
	p.console.WriteLine(fmt.Sprintf("Successfully removed flag from video: %s", v.Title))
}
