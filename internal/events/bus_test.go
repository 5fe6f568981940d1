package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxplay/voxplay/internal/layout"
)

func TestBusFansOutInOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(Funcs{OnFullscreen: func(entered bool) {
		order = append(order, "first")
		assert.True(t, entered)
	}})
	bus.Subscribe(Funcs{OnFullscreen: func(bool) {
		order = append(order, "second")
	}})

	bus.FullscreenChanged(true)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBusLayoutApplied(t *testing.T) {
	bus := NewBus()

	var got []layout.WindowMode
	bus.Subscribe(Funcs{OnLayout: func(st layout.State) {
		got = append(got, st.Spec.Mode)
	}})

	st := layout.BuildState(layout.NewSpec(layout.Spec{Mode: layout.ModeMusic}))
	bus.LayoutApplied(st)

	assert.Equal(t, []layout.WindowMode{layout.ModeMusic}, got)
}

func TestBusNilCallbacksAndListeners(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(nil)
	bus.Subscribe(Funcs{})

	// No panics with empty or nil subscribers.
	bus.FullscreenChanged(false)
	bus.MusicModeChanged(true)
	bus.LayoutApplied(layout.State{})
}
