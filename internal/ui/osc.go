package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/voxplay/voxplay/internal/model"
)

// ControlBarCallbacks wires the transport buttons to the playback engine.
type ControlBarCallbacks struct {
	OnPlayPause  func()
	OnStop       func()
	OnPrevious   func()
	OnNext       func()
	OnFullScreen func()
}

// ControlBar is the on-screen controller: transport buttons, a seek slider
// and the current title. One instance exists per window; the view host moves
// it between the top bar, the bottom bar and the floating container.
type ControlBar struct {
	callbacks ControlBarCallbacks

	root       *fyne.Container
	playPause  *widget.Button
	titleLabel *widget.Label
	seek       *widget.Slider
	timeLabel  *widget.Label
}

// NewControlBar creates the control bar.
func NewControlBar(loc *Localization, callbacks ControlBarCallbacks) *ControlBar {
	cb := &ControlBar{callbacks: callbacks}

	prev := widget.NewButton(IconPrevious, callbacks.OnPrevious)
	prev.Importance = widget.LowImportance
	cb.playPause = widget.NewButton(IconPlay, callbacks.OnPlayPause)
	next := widget.NewButton(IconNext, callbacks.OnNext)
	next.Importance = widget.LowImportance
	stop := widget.NewButton(IconStop, callbacks.OnStop)
	stop.Importance = widget.LowImportance
	full := widget.NewButton(IconFullScreen, callbacks.OnFullScreen)
	full.Importance = widget.LowImportance

	cb.titleLabel = widget.NewLabel(loc.GetText(KeyNothingPlaying))
	cb.titleLabel.Truncation = fyne.TextTruncateEllipsis

	cb.seek = widget.NewSlider(0, 1)
	cb.seek.Step = 0.001
	cb.timeLabel = widget.NewLabel(DashPlaceholder)

	transport := container.NewHBox(prev, cb.playPause, next, stop)
	cb.root = container.NewBorder(nil, nil,
		transport,
		container.NewHBox(cb.timeLabel, full),
		container.NewBorder(nil, nil, nil, nil, container.NewVBox(cb.titleLabel, cb.seek)),
	)

	return cb
}

// Container returns the bar's root object for mounting.
func (cb *ControlBar) Container() *fyne.Container {
	return cb.root
}

// MinHeight returns the bar's minimum height for the floating layout.
func (cb *ControlBar) MinHeight() float32 {
	return cb.root.MinSize().Height
}

// SetCompact toggles the reduced music-mode presentation, which drops the
// seek row.
func (cb *ControlBar) SetCompact(compact bool) {
	if compact {
		cb.seek.Hide()
	} else {
		cb.seek.Show()
	}
	cb.root.Refresh()
}

// Update refreshes the bar from the playback state.
func (cb *ControlBar) Update(item *model.MediaItem, state model.PlaybackState) {
	if state == model.PlaybackPlaying {
		cb.playPause.SetText(IconPause)
	} else {
		cb.playPause.SetText(IconPlay)
	}

	if item != nil {
		cb.titleLabel.SetText(item.DisplayTitle())
		cb.timeLabel.SetText(item.DurationString())
	}
}
