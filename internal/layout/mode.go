package layout

// WindowMode is the window's presentation mode.
type WindowMode string

const (
	// ModeWindowed is the normal resizable window.
	ModeWindowed WindowMode = "windowed"

	// ModeFullScreen covers the whole screen.
	ModeFullScreen WindowMode = "fullScreen"

	// ModeMusic is the compact audio-oriented window with a fixed transport
	// bar and no sidebars.
	ModeMusic WindowMode = "musicMode"

	// ModeWindowedInteractive is the windowed crop/selection mode; the
	// viewport is locked to the video's aspect ratio.
	ModeWindowedInteractive WindowMode = "windowedInteractive"

	// ModeFullScreenInteractive is the full-screen crop/selection mode.
	ModeFullScreenInteractive WindowMode = "fullScreenInteractive"
)

// String returns the string representation of the mode.
func (m WindowMode) String() string {
	return string(m)
}

// IsFullScreen reports whether the mode covers the whole screen.
func (m WindowMode) IsFullScreen() bool {
	return m == ModeFullScreen || m == ModeFullScreenInteractive
}

// IsInteractive reports whether the mode hosts the overlay selection tool.
func (m WindowMode) IsInteractive() bool {
	return m == ModeWindowedInteractive || m == ModeFullScreenInteractive
}

// IsMusic reports whether the mode is the compact music window.
func (m WindowMode) IsMusic() bool {
	return m == ModeMusic
}

// LocksViewportAspect reports whether the viewport must match the video's
// aspect ratio exactly.
func (m WindowMode) LocksViewportAspect() bool {
	return m.IsInteractive()
}

// InteractiveMode is the sub-type of an interactive window mode.
type InteractiveMode string

const (
	// InteractiveModeNone means no interactive tool is active.
	InteractiveModeNone InteractiveMode = ""

	// InteractiveModeCrop is the rectangular crop tool.
	InteractiveModeCrop InteractiveMode = "crop"

	// InteractiveModeFreeSelect is the freeform selection tool.
	InteractiveModeFreeSelect InteractiveMode = "freeSelect"
)

// String returns the string representation of the interactive sub-type.
func (im InteractiveMode) String() string {
	if im == InteractiveModeNone {
		return "none"
	}
	return string(im)
}
