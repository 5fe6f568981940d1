package media

import (
	"errors"
	"math"
	"testing"

	"github.com/voxplay/voxplay/internal/geometry"
	"github.com/voxplay/voxplay/internal/model"
)

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	if engine.State() != model.PlaybackIdle {
		t.Errorf("Expected state to be Idle, got %s", engine.State())
	}

	if engine.Current() != nil {
		t.Error("Expected no current item")
	}
}

func TestOpen(t *testing.T) {
	engine := NewEngine()

	var states []model.PlaybackState
	engine.SetUpdateCallback(func(item *model.MediaItem, state model.PlaybackState) {
		states = append(states, state)
	})

	item := &model.MediaItem{URL: "https://youtube.com/watch?v=test"}
	if err := engine.Open(item); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if engine.State() != model.PlaybackPlaying {
		t.Errorf("Expected state Playing, got %s", engine.State())
	}

	if item.ID == "" {
		t.Error("Expected item to receive an ID")
	}

	if len(states) != 2 || states[0] != model.PlaybackOpening || states[1] != model.PlaybackPlaying {
		t.Errorf("Expected Opening then Playing callbacks, got %v", states)
	}

	// Opening an item with no source fails
	if err := engine.Open(&model.MediaItem{}); err == nil {
		t.Error("Expected error for item without source, got nil")
	}
}

func TestPauseResume(t *testing.T) {
	engine := NewEngine()
	if err := engine.Open(&model.MediaItem{URL: "https://youtube.com/watch?v=test"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	engine.Pause()
	if engine.State() != model.PlaybackPaused {
		t.Errorf("Expected state Paused, got %s", engine.State())
	}

	// Pause while paused stays paused
	engine.Pause()
	if engine.State() != model.PlaybackPaused {
		t.Errorf("Expected state Paused, got %s", engine.State())
	}

	engine.TogglePause()
	if engine.State() != model.PlaybackPlaying {
		t.Errorf("Expected state Playing, got %s", engine.State())
	}
}

func TestPauseWhileIdleIsNoOp(t *testing.T) {
	engine := NewEngine()

	engine.Pause()
	if engine.State() != model.PlaybackIdle {
		t.Errorf("Expected state Idle, got %s", engine.State())
	}
}

func TestStopAndFinish(t *testing.T) {
	engine := NewEngine()
	if err := engine.Open(&model.MediaItem{URL: "https://youtube.com/watch?v=test"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	engine.Finish()
	if engine.State() != model.PlaybackEnded {
		t.Errorf("Expected state Ended, got %s", engine.State())
	}

	// Replaying after the end works
	engine.Play()
	if engine.State() != model.PlaybackPlaying {
		t.Errorf("Expected state Playing, got %s", engine.State())
	}

	engine.Stop()
	if engine.State() != model.PlaybackStopped {
		t.Errorf("Expected state Stopped, got %s", engine.State())
	}
}

func TestFail(t *testing.T) {
	engine := NewEngine()
	item := &model.MediaItem{URL: "https://youtube.com/watch?v=test"}
	if err := engine.Open(item); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	engine.Fail(errors.New("decoder died"))
	if engine.State() != model.PlaybackError {
		t.Errorf("Expected state Error, got %s", engine.State())
	}

	if item.LastError != "decoder died" {
		t.Errorf("Expected LastError to be 'decoder died', got '%s'", item.LastError)
	}
}

func TestFullscreenFlag(t *testing.T) {
	engine := NewEngine()

	engine.SetFullscreen(true)
	if !engine.Fullscreen() {
		t.Error("Expected fullscreen to be true")
	}

	engine.SetFullscreen(false)
	if engine.Fullscreen() {
		t.Error("Expected fullscreen to be false")
	}
}

func TestVolume(t *testing.T) {
	engine := NewEngine()

	if got := engine.Volume(); got != DefaultVolume {
		t.Errorf("Expected default volume %v, got %v", DefaultVolume, got)
	}

	engine.SetVolume(0.3)
	if got := engine.Volume(); got != 0.3 {
		t.Errorf("Expected volume 0.3, got %v", got)
	}

	// Out-of-range values are clamped
	engine.SetVolume(2.0)
	if got := engine.Volume(); got != MaxVolume {
		t.Errorf("Expected volume clamped to %v, got %v", MaxVolume, got)
	}
	engine.SetVolume(-1)
	if got := engine.Volume(); got != MinVolume {
		t.Errorf("Expected volume clamped to %v, got %v", MinVolume, got)
	}
}

func TestAdjustVolume(t *testing.T) {
	engine := NewEngine()
	engine.SetVolume(0.5)

	if got := engine.AdjustVolume(VolumeScrollStep); math.Abs(got-0.55) > 1e-9 {
		t.Errorf("Expected volume 0.55, got %v", got)
	}

	// Repeated steps never leave the valid range
	for i := 0; i < 30; i++ {
		engine.AdjustVolume(-VolumeScrollStep)
	}
	if got := engine.Volume(); got != MinVolume {
		t.Errorf("Expected volume floored at %v, got %v", MinVolume, got)
	}
	for i := 0; i < 30; i++ {
		engine.AdjustVolume(VolumeScrollStep)
	}
	if got := engine.Volume(); got != MaxVolume {
		t.Errorf("Expected volume capped at %v, got %v", MaxVolume, got)
	}
}

func TestVideoAspect(t *testing.T) {
	engine := NewEngine()

	if got := engine.VideoAspect(); got != geometry.DefaultVideoAspect {
		t.Errorf("Expected default aspect %v, got %v", geometry.DefaultVideoAspect, got)
	}

	item := &model.MediaItem{URL: "https://youtube.com/watch?v=test", VideoWidth: 1440, VideoHeight: 1080}
	if err := engine.Open(item); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := 1440.0 / 1080.0
	if got := engine.VideoAspect(); got != want {
		t.Errorf("Expected aspect %v, got %v", want, got)
	}
}
