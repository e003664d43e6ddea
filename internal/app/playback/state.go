// Package playback provides the video playback state machine.
package playback

// State represents the playback state.
type State int

const (
	StateStopped State = iota // No video loaded
	StatePlaying              // Video is playing
	StatePaused               // Video is paused
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
