package geometry

// Screen describes the display a window lives on.
type Screen struct {
	// Frame is the full screen rectangle.
	Frame Rect
	// VisibleFrame is the screen minus OS chrome (menu bar, dock/taskbar).
	VisibleFrame Rect
	// CameraHousingHeight is the height of a camera notch cutting into the
	// top edge, zero on screens without one.
	CameraHousingHeight float64
}

// FullScreen derives the geometry for a full-screen window on the given
// screen. Native style uses the screen's full frame directly. Legacy style
// also uses the full frame but reserves a top margin equal to the camera
// housing height, so the window jumps there in one step instead of resizing
// twice while the menu bar auto-hides.
func FullScreen(screen Screen, legacyStyle bool, outside, inside Insets, aspect float64) WindowGeometry {
	g := WindowGeometry{
		Frame:       screen.Frame,
		ScreenFrame: screen.Frame,
		OutsideBars: outside,
		InsideBars:  inside,
		VideoAspect: ClampAspect(aspect),
	}
	if legacyStyle {
		g.TopMargin = screen.CameraHousingHeight
	}
	g.VideoSize = g.FitVideo(g.VideoAspect)
	return g
}

// LegacyFullScreenIntermediate derives the first step of a legacy full-screen
// entry: the window grows to the screen's visible frame while the menu bar is
// still on its way out. Used as a transition middle geometry.
func LegacyFullScreenIntermediate(screen Screen, outside, inside Insets, aspect float64) WindowGeometry {
	g := WindowGeometry{
		Frame:       screen.VisibleFrame,
		ScreenFrame: screen.Frame,
		OutsideBars: outside,
		InsideBars:  inside,
		VideoAspect: ClampAspect(aspect),
	}
	g.VideoSize = g.FitVideo(g.VideoAspect)
	return g
}

// FitToScreen shrinks and shifts the window so it fits the screen's visible
// frame, preserving bar footprints and re-fitting the video. Windows already
// inside the visible frame are returned unchanged.
func (g WindowGeometry) FitToScreen(screen Screen) WindowGeometry {
	out := g
	out.ScreenFrame = screen.Frame
	vis := screen.VisibleFrame

	if out.Frame.Size.Width > vis.Size.Width {
		out.Frame.Size.Width = vis.Size.Width
	}
	if out.Frame.Size.Height > vis.Size.Height {
		out.Frame.Size.Height = vis.Size.Height
	}
	if out.Frame.Origin.X < vis.Origin.X {
		out.Frame.Origin.X = vis.Origin.X
	}
	if out.Frame.Origin.Y < vis.Origin.Y {
		out.Frame.Origin.Y = vis.Origin.Y
	}
	if out.Frame.MaxX() > vis.MaxX() {
		out.Frame.Origin.X = vis.MaxX() - out.Frame.Size.Width
	}
	if out.Frame.MaxY() > vis.MaxY() {
		out.Frame.Origin.Y = vis.MaxY() - out.Frame.Size.Height
	}

	if out.Frame == g.Frame {
		return g
	}
	out.VideoSize = out.FitVideo(out.VideoAspect)
	return out
}
