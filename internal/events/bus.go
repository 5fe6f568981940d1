package events

import (
	"sync"

	"github.com/voxplay/voxplay/internal/layout"
)

// Listener receives lifecycle notifications. Implementations may leave
// methods empty; the bus calls every listener for every event.
type Listener interface {
	FullscreenChanged(entered bool)
	MusicModeChanged(entered bool)
	LayoutApplied(st layout.State)
}

// Bus distributes end-of-transition events to its listeners. It satisfies
// the lifecycle hook of the transition pipeline, so a window runner can
// publish directly into it. Listeners are invoked synchronously on the
// publishing goroutine, in subscription order.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a listener for all future events.
func (b *Bus) Subscribe(l Listener) {
	if l == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

// FullscreenChanged notifies listeners that the window entered or left full
// screen.
func (b *Bus) FullscreenChanged(entered bool) {
	for _, l := range b.snapshot() {
		l.FullscreenChanged(entered)
	}
}

// MusicModeChanged notifies listeners that the window entered or left music
// mode.
func (b *Bus) MusicModeChanged(entered bool) {
	for _, l := range b.snapshot() {
		l.MusicModeChanged(entered)
	}
}

// LayoutApplied notifies listeners that a transition finished and the given
// state is now current.
func (b *Bus) LayoutApplied(st layout.State) {
	for _, l := range b.snapshot() {
		l.LayoutApplied(st)
	}
}

func (b *Bus) snapshot() []Listener {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Listener, len(b.listeners))
	copy(out, b.listeners)
	return out
}

// Funcs adapts plain callbacks to the Listener interface. Nil callbacks are
// skipped.
type Funcs struct {
	OnFullscreen func(bool)
	OnMusicMode  func(bool)
	OnLayout     func(layout.State)
}

func (f Funcs) FullscreenChanged(entered bool) {
	if f.OnFullscreen != nil {
		f.OnFullscreen(entered)
	}
}

func (f Funcs) MusicModeChanged(entered bool) {
	if f.OnMusicMode != nil {
		f.OnMusicMode(entered)
	}
}

func (f Funcs) LayoutApplied(st layout.State) {
	if f.OnLayout != nil {
		f.OnLayout(st)
	}
}
