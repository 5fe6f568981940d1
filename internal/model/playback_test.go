package model

import "testing"

func TestPlaybackState_IsActive(t *testing.T) {
	tests := []struct {
		state    PlaybackState
		expected bool
	}{
		{PlaybackIdle, false},
		{PlaybackOpening, true},
		{PlaybackPlaying, true},
		{PlaybackPaused, true},
		{PlaybackStopped, false},
		{PlaybackEnded, false},
		{PlaybackError, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("PlaybackState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestPlaybackState_IsFinished(t *testing.T) {
	tests := []struct {
		state    PlaybackState
		expected bool
	}{
		{PlaybackIdle, false},
		{PlaybackOpening, false},
		{PlaybackPlaying, false},
		{PlaybackPaused, false},
		{PlaybackStopped, true},
		{PlaybackEnded, true},
		{PlaybackError, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("PlaybackState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestPlaybackState_String(t *testing.T) {
	state := PlaybackPlaying
	expected := "Playing"
	result := state.String()

	if result != expected {
		t.Errorf("PlaybackState.String() = %s, expected %s", result, expected)
	}
}
