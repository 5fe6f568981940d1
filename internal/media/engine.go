package media

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voxplay/voxplay/internal/geometry"
	"github.com/voxplay/voxplay/internal/model"
)

// Volume bounds
const (
	MinVolume     = 0.0
	MaxVolume     = 1.0
	DefaultVolume = 1.0

	// VolumeScrollStep is how much one wheel notch changes the volume.
	VolumeScrollStep = 0.05
)

// Engine handles playback operations for one window
type Engine struct {
	mu         sync.RWMutex
	current    *model.MediaItem
	state      model.PlaybackState
	fullscreen bool
	volume     float64
	onUpdate   func(*model.MediaItem, model.PlaybackState) // callback for UI updates
}

// NewEngine creates a new playback engine
func NewEngine() *Engine {
	return &Engine{
		state:  model.PlaybackIdle,
		volume: DefaultVolume,
	}
}

// SetUpdateCallback sets the callback function for playback updates
func (e *Engine) SetUpdateCallback(callback func(*model.MediaItem, model.PlaybackState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onUpdate = callback
}

// Open loads a media item and starts playback
func (e *Engine) Open(item *model.MediaItem) error {
	if item == nil || (item.URL == "" && item.LocalPath == "") {
		return fmt.Errorf("media item has no source")
	}

	e.mu.Lock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	e.current = item
	e.state = model.PlaybackOpening
	e.mu.Unlock()
	e.notifyUpdate()

	e.mu.Lock()
	e.state = model.PlaybackPlaying
	e.mu.Unlock()
	e.notifyUpdate()

	return nil
}

// Play resumes or restarts playback of the current item
func (e *Engine) Play() {
	e.setState(model.PlaybackPlaying, model.PlaybackPaused, model.PlaybackOpening, model.PlaybackEnded)
}

// Pause pauses playback; a no-op unless something is playing
func (e *Engine) Pause() {
	e.setState(model.PlaybackPaused, model.PlaybackPlaying)
}

// TogglePause flips between playing and paused
func (e *Engine) TogglePause() {
	e.mu.RLock()
	state := e.state
	e.mu.RUnlock()

	switch state {
	case model.PlaybackPlaying:
		e.Pause()
	case model.PlaybackPaused, model.PlaybackEnded:
		e.Play()
	}
}

// Stop ends playback and unloads the current item
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.state.IsActive() {
		e.mu.Unlock()
		return
	}
	e.state = model.PlaybackStopped
	e.mu.Unlock()
	e.notifyUpdate()
}

// Finish marks the current item as played to its end
func (e *Engine) Finish() {
	e.setState(model.PlaybackEnded, model.PlaybackPlaying, model.PlaybackPaused)
}

// Fail records a playback error on the current item
func (e *Engine) Fail(err error) {
	e.mu.Lock()
	if e.current != nil && err != nil {
		e.current.LastError = err.Error()
	}
	e.state = model.PlaybackError
	e.mu.Unlock()
	e.notifyUpdate()
}

// SetFullscreen tells the playback output whether it renders full screen
func (e *Engine) SetFullscreen(on bool) {
	e.mu.Lock()
	e.fullscreen = on
	e.mu.Unlock()
}

// Fullscreen reports the playback output's full-screen flag
func (e *Engine) Fullscreen() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fullscreen
}

// SetVolume sets the playback volume, clamped to [MinVolume, MaxVolume]
func (e *Engine) SetVolume(v float64) {
	e.mu.Lock()
	e.volume = clampVolume(v)
	e.mu.Unlock()
}

// AdjustVolume changes the volume by delta and returns the clamped result
func (e *Engine) AdjustVolume(delta float64) float64 {
	e.mu.Lock()
	e.volume = clampVolume(e.volume + delta)
	v := e.volume
	e.mu.Unlock()
	return v
}

// Volume returns the current playback volume
func (e *Engine) Volume() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.volume
}

func clampVolume(v float64) float64 {
	switch {
	case v < MinVolume:
		return MinVolume
	case v > MaxVolume:
		return MaxVolume
	}
	return v
}

// State returns the current playback state
func (e *Engine) State() model.PlaybackState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Current returns the loaded media item, or nil
func (e *Engine) Current() *model.MediaItem {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// VideoAspect returns the current item's aspect ratio, falling back to the
// default when no item is loaded or its dimensions are unknown
func (e *Engine) VideoAspect() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.current != nil {
		if ratio, ok := e.current.AspectRatio(); ok {
			return geometry.ClampAspect(ratio)
		}
	}
	return geometry.DefaultVideoAspect
}

// setState moves to the target state if the current state is one of from
func (e *Engine) setState(to model.PlaybackState, from ...model.PlaybackState) {
	e.mu.Lock()
	allowed := false
	for _, f := range from {
		if e.state == f {
			allowed = true
			break
		}
	}
	if !allowed {
		e.mu.Unlock()
		return
	}
	e.state = to
	e.mu.Unlock()
	e.notifyUpdate()
}

// notifyUpdate calls the update callback if set
func (e *Engine) notifyUpdate() {
	e.mu.RLock()
	callback := e.onUpdate
	item := e.current
	state := e.state
	e.mu.RUnlock()

	if callback != nil {
		callback(item, state)
	}
}
