package playback

import (
	"errors"

	zlog "github.com/rs/zerolog/log"

	"github.com/arturybak/google-coding-challenge/internal/domain/video"
)

// Errors
var (
	ErrNoVideo   = errors.New("no video is currently playing")
	ErrNotPaused = errors.New("video is not paused")
)

// Machine tracks which video is loaded and whether it is playing or paused.
// A video is loaded exactly while the state is not StateStopped.
//
// The machine holds no queue and performs no I/O; moderation checks and all
// user-facing reporting belong to the player built on top of it. Commands
// are processed one at a time, so the machine is not safe for concurrent use.
type Machine struct {
	state   State
	current *video.Video
}

// NewMachine creates a machine in the stopped state.
func NewMachine() *Machine {
	return &Machine{state: StateStopped}
}

// State returns the current playback state.
func (m *Machine) State() State {
	return m.state
}

// Current returns the loaded video, or ErrNoVideo while stopped.
func (m *Machine) Current() (*video.Video, error) {
	if m.current == nil {
		return nil, ErrNoVideo
	}
	return m.current, nil
}

// Play loads the video and starts playing it, replacing whatever was loaded
// before. Callers check the moderation flag before invoking.
func (m *Machine) Play(v *video.Video) {
	m.current = v
	m.state = StatePlaying
	zlog.Debug().Msgf("playback: playing: video=%s", v.ID)
}

// Pause pauses the current video. Pausing an already paused video stays
// paused without error.
func (m *Machine) Pause() error {
	if m.current == nil {
		return ErrNoVideo
	}
	m.state = StatePaused
	return nil
}

// Resume returns a paused video to the playing state.
func (m *Machine) Resume() error {
	if m.current == nil {
		return ErrNoVideo
	}
	if m.state != StatePaused {
		return ErrNotPaused
	}
	m.state = StatePlaying
	return nil
}

// Stop unloads the current video.
func (m *Machine) Stop() error {
	if m.current == nil {
		return ErrNoVideo
	}
	zlog.Debug().Msgf("playback: stopping: video=%s", m.current.ID)
	m.current = nil
	m.state = StateStopped
	return nil
}
