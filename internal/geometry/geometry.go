package geometry

// Coordinates are top-left origin with Y growing downward. "Outside" bars
// extend the window frame beyond the viewport; "inside" bars overlap it.

// Sizing constants
const (
	// MinSidebarGap is the minimum horizontal gap that must remain between
	// two inside-placed sidebars before one of them is force-closed.
	MinSidebarGap = 40.0

	// MinViewportDimension is the smallest width/height the viewport may
	// report. Degenerate windows are clamped here instead of producing
	// zero-sized (or negative) video fits.
	MinViewportDimension = 1.0

	// MinVideoAspect and MaxVideoAspect bound the accepted aspect ratios.
	// Values outside this range come from broken containers and would
	// otherwise divide the fit math to pieces.
	MinVideoAspect = 0.01
	MaxVideoAspect = 100.0

	// DefaultVideoAspect is used until the playback engine reports a real
	// aspect ratio.
	DefaultVideoAspect = 16.0 / 9.0

	// InteractiveVideoMargin is the fixed space reserved on each side of the
	// video for the selection chrome in interactive layouts.
	InteractiveVideoMargin = 16.0
)

// Size is a width/height pair in points.
type Size struct {
	Width  float64
	Height float64
}

// Point is a position in window or screen coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is a rectangle described by its top-left origin and size.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect builds a rectangle from origin and size components.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.MaxX() && p.Y >= r.Origin.Y && p.Y < r.MaxY()
}

// Insets is a per-edge set of bar sizes. Top/Bottom are heights,
// Leading/Trailing are widths.
type Insets struct {
	Top      float64
	Bottom   float64
	Leading  float64
	Trailing float64
}

// Horizontal returns the total width consumed by the leading and trailing
// edges.
func (i Insets) Horizontal() float64 { return i.Leading + i.Trailing }

// Vertical returns the total height consumed by the top and bottom edges.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

// WindowGeometry is an immutable description of a window's frame and of the
// space consumed by bars and sidebars on each edge, plus the displayed
// video's size and aspect ratio.
//
// Invariant: viewport size == window size − outside bars − top margin.
type WindowGeometry struct {
	Frame       Rect
	ScreenFrame Rect

	// OutsideBars extend the window beyond the viewport.
	OutsideBars Insets
	// InsideBars overlap the viewport and consume it.
	InsideBars Insets

	VideoAspect float64
	VideoSize   Size

	// VideoMargins reserves fixed space around the video inside the
	// viewport. Non-zero only in interactive (crop/selection) layouts.
	VideoMargins Insets

	// TopMargin reserves extra outside space below the top screen edge to
	// dodge a camera housing in legacy full screen.
	TopMargin float64
}

// ViewportSize returns the video-display area, exclusive of outside bars and
// the top margin. Degenerate frames are clamped to MinViewportDimension.
func (g WindowGeometry) ViewportSize() Size {
	return Size{
		Width:  clampDimension(g.Frame.Size.Width - g.OutsideBars.Horizontal()),
		Height: clampDimension(g.Frame.Size.Height - g.OutsideBars.Vertical() - g.TopMargin),
	}
}

// VideoContainerSize returns the viewport reduced by inside bars and fixed
// video margins; this is the box the video is fit into.
func (g WindowGeometry) VideoContainerSize() Size {
	vp := g.ViewportSize()
	return Size{
		Width:  clampDimension(vp.Width - g.InsideBars.Horizontal() - g.VideoMargins.Horizontal()),
		Height: clampDimension(vp.Height - g.InsideBars.Vertical() - g.VideoMargins.Vertical()),
	}
}

// VideoFrame returns the video rectangle in window coordinates, centered in
// the video container.
func (g WindowGeometry) VideoFrame() Rect {
	box := g.VideoContainerSize()
	x := g.OutsideBars.Leading + g.InsideBars.Leading + g.VideoMargins.Leading + (box.Width-g.VideoSize.Width)/2
	y := g.OutsideBars.Top + g.TopMargin + g.InsideBars.Top + g.VideoMargins.Top + (box.Height-g.VideoSize.Height)/2
	return Rect{Origin: Point{X: x, Y: y}, Size: g.VideoSize}
}

// FitVideo returns the largest size with the given aspect ratio that fits the
// video container.
func (g WindowGeometry) FitVideo(aspect float64) Size {
	return fitAspect(g.VideoContainerSize(), ClampAspect(aspect))
}

// WithVideoAspect returns a geometry whose video is re-fit to the given
// aspect ratio. The frame and bars are unchanged.
func (g WindowGeometry) WithVideoAspect(aspect float64) WindowGeometry {
	g.VideoAspect = ClampAspect(aspect)
	g.VideoSize = g.FitVideo(g.VideoAspect)
	return g
}

// WithVideoMargins returns a geometry with the given fixed margins reserved
// around the video and the video re-fit to the smaller container. The frame
// and bars are unchanged.
func (g WindowGeometry) WithVideoMargins(m Insets) WindowGeometry {
	g.VideoMargins = m
	g.VideoSize = g.FitVideo(g.VideoAspect)
	return g
}

// LockViewportAspect returns a geometry whose window is resized so the video
// container matches the given aspect ratio exactly, leaving no letterbox. The
// video is fit into the current container reduced by margins, then the frame
// shrinks around it, preserving the frame's center, bar footprints and top
// margin.
func (g WindowGeometry) LockViewportAspect(aspect float64, margins Insets) WindowGeometry {
	out := g
	out.VideoAspect = ClampAspect(aspect)
	out.VideoMargins = margins
	video := fitAspect(out.VideoContainerSize(), out.VideoAspect)

	center := g.Frame.Center()
	out.Frame.Size = Size{
		Width: video.Width + margins.Horizontal() +
			out.InsideBars.Horizontal() + out.OutsideBars.Horizontal(),
		Height: video.Height + margins.Vertical() +
			out.InsideBars.Vertical() + out.OutsideBars.Vertical() + out.TopMargin,
	}
	out.Frame.Origin = Point{X: center.X - out.Frame.Size.Width/2, Y: center.Y - out.Frame.Size.Height/2}
	out.VideoSize = video
	return out
}

// ResizeBars recomputes the geometry for new bar footprints while keeping
// the viewport anchored: the viewport's top-left stays fixed in screen space,
// so growing an outside top or leading bar moves the frame origin up/left by
// the delta. If aspect > 0 the video is re-fit to that aspect, otherwise the
// current aspect is kept.
func (g WindowGeometry) ResizeBars(outside, inside Insets, aspect float64) WindowGeometry {
	vp := g.ViewportSize()

	out := g
	out.Frame.Origin.X -= outside.Leading - g.OutsideBars.Leading
	out.Frame.Origin.Y -= outside.Top - g.OutsideBars.Top
	out.Frame.Size = Size{
		Width:  vp.Width + outside.Horizontal(),
		Height: vp.Height + outside.Vertical() + g.TopMargin,
	}
	out.OutsideBars = outside
	out.InsideBars = inside

	if aspect > 0 {
		out.VideoAspect = ClampAspect(aspect)
	}
	out.VideoSize = out.FitVideo(out.VideoAspect)
	return out
}

// ScaleVideo returns a geometry whose window is resized so the video occupies
// factor times its current size, preserving aspect ratio, bar footprints and
// the frame's center. The result is clamped to the screen's visible area via
// FitToScreen by callers that care.
func (g WindowGeometry) ScaleVideo(factor float64) WindowGeometry {
	if factor <= 0 {
		return g
	}
	target := Size{Width: g.VideoSize.Width * factor, Height: g.VideoSize.Height * factor}
	target.Width = clampDimension(target.Width)
	target.Height = clampDimension(target.Height)

	center := g.Frame.Center()
	out := g
	out.Frame.Size = Size{
		Width:  target.Width + g.InsideBars.Horizontal() + g.VideoMargins.Horizontal() + g.OutsideBars.Horizontal(),
		Height: target.Height + g.InsideBars.Vertical() + g.VideoMargins.Vertical() + g.OutsideBars.Vertical() + g.TopMargin,
	}
	out.Frame.Origin = Point{X: center.X - out.Frame.Size.Width/2, Y: center.Y - out.Frame.Size.Height/2}
	out.VideoSize = out.FitVideo(out.VideoAspect)
	return out
}

// HideSidebarNeeded decides whether either inside-placed sidebar must be
// force-closed because the two of them no longer fit the viewport with
// MinSidebarGap between them. The wider sidebar closes first; on an exact
// tie the leading one closes. Both flags may be set when even a single
// sidebar cannot fit.
func (g WindowGeometry) HideSidebarNeeded(leadingWidth, trailingWidth float64) (hideLeading, hideTrailing bool) {
	vp := g.ViewportSize().Width
	if leadingWidth+trailingWidth+MinSidebarGap <= vp {
		return false, false
	}
	if leadingWidth >= trailingWidth {
		hideLeading = true
		if trailingWidth+MinSidebarGap > vp {
			hideTrailing = true
		}
	} else {
		hideTrailing = true
		if leadingWidth+MinSidebarGap > vp {
			hideLeading = true
		}
	}
	return hideLeading, hideTrailing
}

// ClampAspect bounds an aspect ratio to the sane range, substituting the
// default for non-positive values.
func ClampAspect(aspect float64) float64 {
	switch {
	case aspect <= 0:
		return DefaultVideoAspect
	case aspect < MinVideoAspect:
		return MinVideoAspect
	case aspect > MaxVideoAspect:
		return MaxVideoAspect
	}
	return aspect
}

func clampDimension(v float64) float64 {
	if v < MinViewportDimension {
		return MinViewportDimension
	}
	return v
}

// fitAspect returns the largest size with the given aspect that fits box.
func fitAspect(box Size, aspect float64) Size {
	w := box.Width
	h := w / aspect
	if h > box.Height {
		h = box.Height
		w = h * aspect
	}
	return Size{Width: clampDimension(w), Height: clampDimension(h)}
}
