package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxplay/voxplay/internal/geometry"
	"github.com/voxplay/voxplay/internal/layout"
)

func windowedDraft() layout.Spec {
	return layout.Spec{
		LeadingSidebar: layout.Sidebar{
			TabGroups:  []layout.TabGroup{layout.TabGroupSettings},
			VisibleTab: layout.TabVideoSettings,
			Placement:  layout.PlacementOutsideViewport,
			Visible:    true,
		},
		TrailingSidebar: layout.Sidebar{
			TabGroups:  []layout.TabGroup{layout.TabGroupPlaylist},
			VisibleTab: layout.TabPlaylist,
			Placement:  layout.PlacementOutsideViewport,
			Visible:    true,
		},
		Mode:               layout.ModeWindowed,
		TopBarPlacement:    layout.PlacementInsideViewport,
		BottomBarPlacement: layout.PlacementInsideViewport,
		EnableOSC:          true,
		OSCPosition:        layout.OSCPositionFloating,
	}
}

func endpoint(spec layout.Spec, frame geometry.Rect) Endpoint {
	g := geometry.WindowGeometry{Frame: frame, VideoAspect: 16.0 / 9.0}
	g.VideoSize = g.FitVideo(g.VideoAspect)
	return Endpoint{Layout: layout.BuildState(spec), Geometry: g}
}

func TestNoOpTransitionHasNoVisibleEffect(t *testing.T) {
	spec := layout.NewSpec(windowedDraft())
	e := endpoint(spec, geometry.NewRect(0, 0, 1280, 720))

	tr := New("noop", e, e)

	assert.False(t, tr.NeedsFadeOutOldViews())
	assert.False(t, tr.NeedsCloseOldPanels())
	assert.False(t, tr.NeedsUpdateHiddenViews())
	assert.False(t, tr.NeedsOpenNewPanels())
	assert.False(t, tr.NeedsFadeInNewViews())
	assert.False(t, tr.HasVisibleEffect())
}

func TestEnterFullScreenPredicates(t *testing.T) {
	in := layout.NewSpec(windowedDraft())
	out := in.WithMode(layout.ModeFullScreen, layout.InteractiveModeNone)

	tr := New("enter-fs",
		endpoint(in, geometry.NewRect(100, 100, 1280, 720)),
		endpoint(out, geometry.NewRect(0, 0, 2560, 1440)))

	assert.True(t, tr.IsEnteringFullScreen())
	assert.False(t, tr.IsExitingFullScreen())
	assert.Equal(t, layout.VisibilityShowAlways, tr.Output.Layout.TitleIconAndText)

	// No bounce: the close stage is gated off on full-screen entry.
	assert.False(t, tr.NeedsCloseOldPanels())
	assert.True(t, tr.NeedsFadeOutOldViews())
	assert.True(t, tr.NeedsOpenNewPanels())

	back := New("exit-fs", tr.Output, tr.Input)
	assert.True(t, back.IsExitingFullScreen())
	assert.False(t, back.IsEnteringFullScreen())
}

func TestInitialLayoutCountsAsEntering(t *testing.T) {
	fs := layout.NewSpec(windowedDraft()).WithMode(layout.ModeFullScreen, layout.InteractiveModeNone)
	e := endpoint(fs, geometry.NewRect(0, 0, 2560, 1440))

	tr := New("initial", e, e)
	tr.InitialLayout = true

	assert.True(t, tr.IsEnteringFullScreen())
	assert.False(t, tr.IsExitingFullScreen())
}

func TestMusicModePredicates(t *testing.T) {
	in := layout.NewSpec(windowedDraft())
	out := in.WithMode(layout.ModeMusic, layout.InteractiveModeNone)

	tr := New("music",
		endpoint(in, geometry.NewRect(100, 100, 1280, 720)),
		endpoint(out, geometry.NewRect(100, 100, 400, 500)))

	assert.True(t, tr.IsEnteringMusicMode())
	assert.True(t, tr.NeedsUpdateHiddenViews())

	back := New("unmusic", tr.Output, tr.Input)
	assert.True(t, back.IsExitingMusicMode())
}

func TestSidebarTogglePredicates(t *testing.T) {
	// Leading sidebar closes while the outside-placed trailing one stays
	// open.
	in := layout.NewSpec(windowedDraft()).
		WithSidebarTab(layout.EdgeLeading, layout.TabVideoSettings).
		WithSidebarTab(layout.EdgeTrailing, layout.TabPlaylist)
	out := in.WithSidebarTab(layout.EdgeLeading, layout.TabNone)

	tr := New("close-leading",
		endpoint(in, geometry.NewRect(0, 0, 1280, 720)),
		endpoint(out, geometry.NewRect(0, 0, 1080, 720)))

	assert.True(t, tr.IsTogglingVisibilityOfAnySidebar())
	assert.True(t, tr.IsHidingSidebar(layout.EdgeLeading))
	assert.False(t, tr.IsShowingSidebar(layout.EdgeLeading))
	assert.False(t, tr.IsShowingSidebar(layout.EdgeTrailing))
	assert.False(t, tr.IsHidingSidebar(layout.EdgeTrailing))
}

func TestSidebarHideAndThenShow(t *testing.T) {
	in := layout.NewSpec(windowedDraft())

	// Same sidebar, same visibility, different placement: must hide then
	// re-show.
	draft := in
	draft.TrailingSidebar.Placement = layout.PlacementInsideViewport
	out := layout.NewSpec(draft)

	tr := New("flip-placement",
		endpoint(in, geometry.NewRect(0, 0, 1280, 720)),
		endpoint(out, geometry.NewRect(0, 0, 1280, 720)))

	assert.True(t, tr.IsHidingAndThenShowingSidebar(layout.EdgeTrailing))
	assert.True(t, tr.IsHidingSidebar(layout.EdgeTrailing))
	assert.True(t, tr.IsShowingSidebar(layout.EdgeTrailing))
	assert.True(t, tr.IsSidebarPlacementChanging(layout.EdgeTrailing))

	// Tab switch within one group is not a hide-then-show.
	sameGroup := in.WithSidebarTab(layout.EdgeLeading, layout.TabAudioSettings)
	tr = New("tab-switch",
		endpoint(in, geometry.NewRect(0, 0, 1280, 720)),
		endpoint(sameGroup, geometry.NewRect(0, 0, 1280, 720)))
	assert.False(t, tr.IsHidingAndThenShowingSidebar(layout.EdgeLeading))
}

func TestSidebarVanishedTabGroupTreatedAsHide(t *testing.T) {
	in := layout.NewSpec(windowedDraft())

	// The trailing sidebar's playlist group disappears from its set while
	// the playlist tab is visible. Spec construction forces it hidden; the
	// transition reports a hide (and logs the inconsistency).
	draft := windowedDraft()
	draft.TrailingSidebar.TabGroups = []layout.TabGroup{layout.TabGroupSettings}
	out := layout.NewSpec(draft)

	tr := New("vanished-group",
		endpoint(in, geometry.NewRect(0, 0, 1280, 720)),
		endpoint(out, geometry.NewRect(0, 0, 1280, 720)))

	assert.True(t, tr.IsHidingSidebar(layout.EdgeTrailing))
	assert.False(t, tr.IsShowingSidebar(layout.EdgeTrailing))
}

func TestOSCPositionChangePredicates(t *testing.T) {
	in := layout.NewSpec(windowedDraft()).WithOSC(true, layout.OSCPositionTop)
	out := in.WithOSC(true, layout.OSCPositionBottom)

	frame := geometry.NewRect(0, 0, 1280, 720)
	tr := New("osc-top-to-bottom", endpoint(in, frame), endpoint(out, frame))

	assert.True(t, tr.IsOSCChanging())
	assert.True(t, tr.NeedsFadeOutOldViews())
	assert.True(t, tr.NeedsFadeInNewViews())
	assert.True(t, tr.AreBarHeightsChanging())

	// Target heights: the OSC strip leaves the top bar (title bar remains)
	// and the bottom bar takes the fixed OSC height.
	assert.Equal(t, layout.StandardTitleBarHeight, tr.Output.Layout.TopBarTotalHeight())
	assert.Equal(t, layout.BottomOSCHeight, tr.Output.Layout.BottomBarHeight)

	// Disabling entirely is also an OSC change.
	off := New("osc-off", endpoint(in, frame), endpoint(in.WithOSC(false, layout.OSCPositionTop), frame))
	assert.True(t, off.IsOSCChanging())

	// Position differences are irrelevant while disabled.
	a := layout.NewSpec(windowedDraft()).WithOSC(false, layout.OSCPositionTop)
	b := a.WithOSC(false, layout.OSCPositionBottom)
	same := New("osc-disabled", endpoint(a, frame), endpoint(b, frame))
	assert.False(t, same.IsOSCChanging())
}

func TestFadeRegionSets(t *testing.T) {
	in := layout.NewSpec(windowedDraft())
	out := in.WithMode(layout.ModeFullScreen, layout.InteractiveModeNone)

	tr := New("fades",
		endpoint(in, geometry.NewRect(100, 100, 1280, 720)),
		endpoint(out, geometry.NewRect(0, 0, 2560, 1440)))

	fadeOut := tr.FadeOutRegions()
	fadeIn := tr.FadeInRegions()

	// The windowed title bar container disappears in native full screen.
	assert.Contains(t, fadeOut, layout.RegionTitleBar)
	// Icon and text re-enter as showAlways.
	assert.Contains(t, fadeIn, layout.RegionTitleIconAndText)

	// Regions present on both sides with the same category fade neither
	// way.
	noop := New("steady", tr.Input, tr.Input)
	assert.Empty(t, noop.FadeOutRegions())
	assert.Empty(t, noop.FadeInRegions())
}

func TestLegacyChromeToggle(t *testing.T) {
	in := layout.NewSpec(windowedDraft())
	draft := windowedDraft()
	draft.LegacyChrome = true
	out := layout.NewSpec(draft)

	frame := geometry.NewRect(0, 0, 1280, 720)
	tr := New("chrome", endpoint(in, frame), endpoint(out, frame))

	assert.True(t, tr.IsTogglingLegacyChrome())
	assert.True(t, tr.NeedsUpdateHiddenViews())
}
