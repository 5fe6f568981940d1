package model

// PlaybackState represents the playback status of the current media item
type PlaybackState string

const (
	// PlaybackIdle means no media is loaded
	PlaybackIdle PlaybackState = "Idle"

	// PlaybackOpening means the item is being opened or buffered
	PlaybackOpening PlaybackState = "Opening"

	// PlaybackPlaying means playback is running
	PlaybackPlaying PlaybackState = "Playing"

	// PlaybackPaused means playback is paused and can resume
	PlaybackPaused PlaybackState = "Paused"

	// PlaybackStopped means playback was stopped by the user
	PlaybackStopped PlaybackState = "Stopped"

	// PlaybackEnded means the item played to its end
	PlaybackEnded PlaybackState = "Ended"

	// PlaybackError means playback failed
	PlaybackError PlaybackState = "Error"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsActive returns true if a media item is currently open
func (ps PlaybackState) IsActive() bool {
	return ps == PlaybackOpening || ps == PlaybackPlaying || ps == PlaybackPaused
}

// IsFinished returns true if playback reached a terminal state (stopped, ended, or error)
func (ps PlaybackState) IsFinished() bool {
	return ps == PlaybackStopped || ps == PlaybackEnded || ps == PlaybackError
}
