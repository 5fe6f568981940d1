package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// VideoSurfaceCallbacks wires pointer input on the video area to the window
// controller.
type VideoSurfaceCallbacks struct {
	OnTap          func()
	OnDoubleTap    func()
	OnSecondaryTap func(fyne.Position)
	OnActivity     func()
	OnScroll       func(dy float32)
}

// VideoSurface is the interactive layer over the video viewport. A single
// click toggles pause, a double click toggles full screen, and any pointer
// movement counts as activity for the idle-fade timer.
type VideoSurface struct {
	widget.BaseWidget

	callbacks VideoSurfaceCallbacks

	// Single taps are delayed so a double tap can cancel them; without
	// this, entering full screen would also toggle pause.
	pendingTap *time.Timer
}

// DoubleTapDelay is how long a single tap waits before firing, so it can be
// suppressed by a second tap.
const DoubleTapDelay = 250 * time.Millisecond

// NewVideoSurface creates the interactive video layer.
func NewVideoSurface(callbacks VideoSurfaceCallbacks) *VideoSurface {
	vs := &VideoSurface{callbacks: callbacks}
	vs.ExtendBaseWidget(vs)
	return vs
}

// CreateRenderer implements fyne.Widget. The surface draws nothing itself;
// the video frame is rendered underneath it.
func (vs *VideoSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(&fyne.Container{})
}

// Tapped handles a single click, deferred past the double-tap window.
func (vs *VideoSurface) Tapped(*fyne.PointEvent) {
	vs.reportActivity()
	if vs.pendingTap != nil {
		vs.pendingTap.Stop()
	}
	vs.pendingTap = time.AfterFunc(DoubleTapDelay, func() {
		if vs.callbacks.OnTap != nil {
			vs.callbacks.OnTap()
		}
	})
}

// DoubleTapped handles a double click and cancels the pending single tap.
func (vs *VideoSurface) DoubleTapped(*fyne.PointEvent) {
	vs.reportActivity()
	if vs.pendingTap != nil {
		vs.pendingTap.Stop()
		vs.pendingTap = nil
	}
	if vs.callbacks.OnDoubleTap != nil {
		vs.callbacks.OnDoubleTap()
	}
}

// TappedSecondary handles a right click.
func (vs *VideoSurface) TappedSecondary(ev *fyne.PointEvent) {
	vs.reportActivity()
	if vs.callbacks.OnSecondaryTap != nil {
		vs.callbacks.OnSecondaryTap(ev.AbsolutePosition)
	}
}

// Scrolled handles wheel input, typically bound to volume.
func (vs *VideoSurface) Scrolled(ev *fyne.ScrollEvent) {
	vs.reportActivity()
	if vs.callbacks.OnScroll != nil {
		vs.callbacks.OnScroll(ev.Scrolled.DY)
	}
}

// MouseIn implements desktop.Hoverable.
func (vs *VideoSurface) MouseIn(*desktop.MouseEvent) {
	vs.reportActivity()
}

// MouseMoved implements desktop.Hoverable.
func (vs *VideoSurface) MouseMoved(*desktop.MouseEvent) {
	vs.reportActivity()
}

// MouseOut implements desktop.Hoverable.
func (vs *VideoSurface) MouseOut() {}

func (vs *VideoSurface) reportActivity() {
	if vs.callbacks.OnActivity != nil {
		vs.callbacks.OnActivity()
	}
}
