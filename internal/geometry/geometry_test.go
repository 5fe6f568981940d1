package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseGeometry() WindowGeometry {
	g := WindowGeometry{
		Frame:       NewRect(100, 100, 1280, 720),
		ScreenFrame: NewRect(0, 0, 2560, 1440),
		VideoAspect: 16.0 / 9.0,
	}
	g.VideoSize = g.FitVideo(g.VideoAspect)
	return g
}

func TestViewportExcludesOutsideBars(t *testing.T) {
	tests := []struct {
		name    string
		outside Insets
		want    Size
	}{
		{"no bars", Insets{}, Size{1280, 720}},
		{"top bar", Insets{Top: 28}, Size{1280, 692}},
		{"all edges", Insets{Top: 28, Bottom: 44, Leading: 200, Trailing: 150}, Size{930, 648}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := baseGeometry()
			g.OutsideBars = tt.outside
			assert.Equal(t, tt.want, g.ViewportSize())
			// The invariant itself: viewport == window − outside bars.
			assert.InDelta(t, g.Frame.Size.Width-g.OutsideBars.Horizontal(), g.ViewportSize().Width, 1e-9)
			assert.InDelta(t, g.Frame.Size.Height-g.OutsideBars.Vertical(), g.ViewportSize().Height, 1e-9)
		})
	}
}

func TestResizeBarsPreservesViewportAnchor(t *testing.T) {
	g := baseGeometry()
	vpBefore := g.ViewportSize()

	resized := g.ResizeBars(Insets{Top: 28, Leading: 240}, Insets{}, 0)

	// Viewport is unchanged, the frame grew around it.
	assert.Equal(t, vpBefore, resized.ViewportSize())
	assert.Equal(t, 1280+240.0, resized.Frame.Size.Width)
	assert.Equal(t, 720+28.0, resized.Frame.Size.Height)

	// Top-left of the viewport stays put: origin moved up and left.
	assert.Equal(t, 100-240.0, resized.Frame.Origin.X)
	assert.Equal(t, 100-28.0, resized.Frame.Origin.Y)

	// The original value is untouched.
	assert.Equal(t, baseGeometry(), g)
}

func TestResizeBarsAspectOverride(t *testing.T) {
	g := baseGeometry().ResizeBars(Insets{}, Insets{}, 4.0/3.0)
	assert.InDelta(t, 4.0/3.0, g.VideoAspect, 1e-9)
	assert.InDelta(t, g.VideoSize.Width/g.VideoSize.Height, 4.0/3.0, 1e-9)

	// Height-bound viewport: 720 * 4/3 = 960 wide.
	assert.InDelta(t, 960, g.VideoSize.Width, 1e-9)
	assert.InDelta(t, 720, g.VideoSize.Height, 1e-9)
}

func TestFitVideoInsideBars(t *testing.T) {
	g := baseGeometry().ResizeBars(Insets{}, Insets{Leading: 280}, 0)
	// Container is 1000x720, width-bound for 16:9.
	assert.InDelta(t, 1000, g.VideoSize.Width, 1e-9)
	assert.InDelta(t, 562.5, g.VideoSize.Height, 1e-9)
}

func TestLockViewportAspectRemovesLetterbox(t *testing.T) {
	g := baseGeometry()
	g.OutsideBars = Insets{Top: 28}
	g.VideoSize = g.FitVideo(g.VideoAspect)

	margins := Insets{Top: 16, Bottom: 16, Leading: 16, Trailing: 16}
	locked := g.LockViewportAspect(4.0/3.0, margins)

	require.InDelta(t, 4.0/3.0, locked.VideoAspect, 1e-9)
	assert.Equal(t, margins, locked.VideoMargins)

	// The container matches the video exactly: no letterbox remains.
	box := locked.VideoContainerSize()
	assert.InDelta(t, locked.VideoSize.Width, box.Width, 1e-9)
	assert.InDelta(t, locked.VideoSize.Height, box.Height, 1e-9)
	assert.InDelta(t, 4.0/3.0, box.Width/box.Height, 1e-9)

	// Height-bound container 1248x660 → 880x660 video, frame shrunk around it.
	assert.InDelta(t, 880, locked.VideoSize.Width, 1e-9)
	assert.InDelta(t, 912, locked.Frame.Size.Width, 1e-9)
	assert.InDelta(t, 720, locked.Frame.Size.Height, 1e-9)

	// Frame center and bar footprints are preserved.
	assert.Equal(t, g.Frame.Center(), locked.Frame.Center())
	assert.Equal(t, g.OutsideBars, locked.OutsideBars)
	assert.Equal(t, g.InsideBars, locked.InsideBars)
}

func TestLockViewportAspectClampsDegenerateAspect(t *testing.T) {
	locked := baseGeometry().LockViewportAspect(0, Insets{})
	assert.Equal(t, DefaultVideoAspect, locked.VideoAspect)

	box := locked.VideoContainerSize()
	assert.InDelta(t, DefaultVideoAspect, box.Width/box.Height, 1e-9)
}

func TestWithVideoMarginsRefitsVideo(t *testing.T) {
	g := baseGeometry().WithVideoMargins(Insets{Leading: 40, Trailing: 40})

	// Container narrows to 1200, width-bound for 16:9.
	assert.InDelta(t, 1200, g.VideoSize.Width, 1e-9)
	assert.InDelta(t, 675, g.VideoSize.Height, 1e-9)
	assert.Equal(t, baseGeometry().Frame, g.Frame)
}

func TestHideSidebarNeeded(t *testing.T) {
	tests := []struct {
		name         string
		viewportW    float64
		leading      float64
		trailing     float64
		hideLeading  bool
		hideTrailing bool
	}{
		{"both fit", 1280, 200, 150, false, false},
		{"wider leading closes first", 380, 200, 150, true, false},
		{"equal widths close leading", 380, 200, 200, true, false},
		{"wider trailing closes first", 380, 150, 200, false, true},
		{"nothing fits", 160, 200, 150, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := WindowGeometry{Frame: NewRect(0, 0, tt.viewportW, 720)}
			hl, ht := g.HideSidebarNeeded(tt.leading, tt.trailing)
			assert.Equal(t, tt.hideLeading, hl, "hideLeading")
			assert.Equal(t, tt.hideTrailing, ht, "hideTrailing")
		})
	}
}

func TestFullScreenNative(t *testing.T) {
	screen := Screen{
		Frame:               NewRect(0, 0, 2560, 1440),
		VisibleFrame:        NewRect(0, 25, 2560, 1415),
		CameraHousingHeight: 32,
	}

	g := FullScreen(screen, false, Insets{}, Insets{}, 16.0/9.0)
	assert.Equal(t, screen.Frame, g.Frame)
	assert.Zero(t, g.TopMargin)
}

func TestFullScreenLegacyReservesCameraHousing(t *testing.T) {
	screen := Screen{
		Frame:               NewRect(0, 0, 2560, 1440),
		VisibleFrame:        NewRect(0, 25, 2560, 1415),
		CameraHousingHeight: 32,
	}

	g := FullScreen(screen, true, Insets{}, Insets{}, 16.0/9.0)
	require.Equal(t, screen.Frame, g.Frame)
	assert.Equal(t, 32.0, g.TopMargin)
	assert.Equal(t, 1440-32.0, g.ViewportSize().Height)

	mid := LegacyFullScreenIntermediate(screen, Insets{}, Insets{}, 16.0/9.0)
	assert.Equal(t, screen.VisibleFrame, mid.Frame)
	assert.Zero(t, mid.TopMargin)
}

func TestFitToScreen(t *testing.T) {
	screen := Screen{
		Frame:        NewRect(0, 0, 1920, 1080),
		VisibleFrame: NewRect(0, 25, 1920, 1055),
	}

	oversized := WindowGeometry{
		Frame:       NewRect(-50, 0, 2400, 1350),
		VideoAspect: 16.0 / 9.0,
	}
	g := oversized.FitToScreen(screen)
	assert.LessOrEqual(t, g.Frame.Size.Width, screen.VisibleFrame.Size.Width)
	assert.LessOrEqual(t, g.Frame.Size.Height, screen.VisibleFrame.Size.Height)
	assert.GreaterOrEqual(t, g.Frame.Origin.Y, screen.VisibleFrame.Origin.Y)

	inside := baseGeometry()
	assert.Equal(t, inside, inside.FitToScreen(Screen{Frame: inside.ScreenFrame, VisibleFrame: inside.ScreenFrame}))
}

func TestScaleVideoKeepsCenterAndAspect(t *testing.T) {
	g := baseGeometry()
	scaled := g.ScaleVideo(0.5)

	assert.Equal(t, g.Frame.Center(), scaled.Frame.Center())
	assert.InDelta(t, g.VideoAspect, scaled.VideoSize.Width/scaled.VideoSize.Height, 1e-9)
	assert.InDelta(t, g.VideoSize.Width/2, scaled.VideoSize.Width, 1e-9)

	// Non-positive factors are ignored.
	assert.Equal(t, g, g.ScaleVideo(0))
}

func TestDegenerateValuesAreClamped(t *testing.T) {
	g := WindowGeometry{Frame: NewRect(0, 0, 10, 10), OutsideBars: Insets{Top: 50, Leading: 50}}
	vp := g.ViewportSize()
	assert.Equal(t, MinViewportDimension, vp.Width)
	assert.Equal(t, MinViewportDimension, vp.Height)

	assert.Equal(t, DefaultVideoAspect, ClampAspect(0))
	assert.Equal(t, DefaultVideoAspect, ClampAspect(-2))
	assert.Equal(t, MinVideoAspect, ClampAspect(0.0001))
	assert.Equal(t, MaxVideoAspect, ClampAspect(1e6))

	// Fitting never divides by zero even on a degenerate box.
	size := g.FitVideo(0)
	assert.GreaterOrEqual(t, size.Width, MinViewportDimension)
	assert.GreaterOrEqual(t, size.Height, MinViewportDimension)
}
