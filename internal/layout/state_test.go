package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStateDeterministic(t *testing.T) {
	specs := []Spec{
		NewSpec(specDraft()),
		NewSpec(specDraft()).WithMode(ModeFullScreen, InteractiveModeNone),
		NewSpec(specDraft()).WithMode(ModeMusic, InteractiveModeNone),
		NewSpec(specDraft()).WithMode(ModeWindowedInteractive, InteractiveModeCrop),
	}
	for _, s := range specs {
		assert.Equal(t, BuildState(s), BuildState(s), "mode %s", s.Mode)
	}
}

func TestBuildStateWindowedTitleBar(t *testing.T) {
	tests := []struct {
		name      string
		placement Placement
		want      Visibility
	}{
		{"inside top bar fades", PlacementInsideViewport, VisibilityShowFadeableTopBar},
		{"outside top bar always shown", PlacementOutsideViewport, VisibilityShowAlways},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := specDraft()
			draft.TopBarPlacement = tt.placement
			st := BuildState(NewSpec(draft))

			assert.Equal(t, tt.want, st.TitleBar)
			assert.Equal(t, tt.want, st.TopBar)
			assert.Equal(t, StandardTitleBarHeight, st.TitleBarHeight)
		})
	}
}

func TestBuildStateFullScreenNative(t *testing.T) {
	st := BuildState(NewSpec(specDraft()).WithMode(ModeFullScreen, InteractiveModeNone))

	assert.Equal(t, VisibilityHidden, st.TitleBar, "no title bar container in native full screen")
	assert.Equal(t, VisibilityShowAlways, st.TitleIconAndText)
	assert.Equal(t, VisibilityShowAlways, st.WindowControls)
	assert.Equal(t, VisibilityShowFadeableTopBar, st.TopBar)
}

func TestBuildStateFullScreenLegacy(t *testing.T) {
	draft := specDraft()
	draft.LegacyChrome = true
	draft.EnableOSC = false
	st := BuildState(NewSpec(draft).WithMode(ModeFullScreen, InteractiveModeNone))

	assert.Equal(t, VisibilityHidden, st.TitleBar)
	assert.Equal(t, VisibilityHidden, st.TitleIconAndText)
	assert.Equal(t, VisibilityHidden, st.TopBar)
}

func TestBuildStateOSCPositions(t *testing.T) {
	base := NewSpec(specDraft())

	top := BuildState(base.WithOSC(true, OSCPositionTop))
	assert.Equal(t, TopOSCHeight, top.TopOSCHeight)
	assert.Equal(t, ReducedTitleBarHeight, top.TitleBarHeight, "title bar shares the strip with the OSC")
	assert.Equal(t, VisibilityHidden, top.FloatingControlBar)
	assert.Zero(t, top.BottomBarHeight)

	bottomInside := BuildState(base.WithOSC(true, OSCPositionBottom))
	assert.Equal(t, BottomOSCHeight, bottomInside.BottomBarHeight)
	assert.Equal(t, VisibilityShowFadeableNonTopBar, bottomInside.BottomBar)

	draft := specDraft()
	draft.BottomBarPlacement = PlacementOutsideViewport
	bottomOutside := BuildState(NewSpec(draft).WithOSC(true, OSCPositionBottom))
	assert.Equal(t, VisibilityShowAlways, bottomOutside.BottomBar)

	floating := BuildState(base.WithOSC(true, OSCPositionFloating))
	assert.Equal(t, VisibilityShowFadeableNonTopBar, floating.FloatingControlBar)
	assert.Zero(t, floating.BottomBarHeight)
}

func TestBuildStateOSCDisabled(t *testing.T) {
	noOSC := BuildState(NewSpec(specDraft()).WithOSC(false, OSCPositionBottom))
	assert.Equal(t, VisibilityHidden, noOSC.BottomBar)
	assert.Zero(t, noOSC.BottomBarHeight)

	// Music and interactive modes force their own fixed transport bar even
	// with the OSC disabled.
	music := BuildState(NewSpec(specDraft()).WithMode(ModeMusic, InteractiveModeNone))
	assert.Equal(t, VisibilityShowAlways, music.BottomBar)
	assert.Equal(t, MusicModeBarHeight, music.BottomBarHeight)

	crop := BuildState(NewSpec(specDraft()).WithMode(ModeWindowedInteractive, InteractiveModeCrop))
	assert.Equal(t, VisibilityShowAlways, crop.BottomBar)
	assert.Equal(t, InteractiveBarHeight, crop.BottomBarHeight)
}

func TestBuildStateSidebarTabMetrics(t *testing.T) {
	// Outside top bar: defaults.
	draft := specDraft()
	draft.TopBarPlacement = PlacementOutsideViewport
	st := BuildState(NewSpec(draft))
	assert.Equal(t, DefaultSidebarTabHeight, st.SidebarTabHeight)
	assert.Equal(t, DefaultSidebarDownshift, st.SidebarDownshift)

	// Inside top bar without OSC: tabs align with the title bar.
	st = BuildState(NewSpec(specDraft()).WithOSC(false, OSCPositionFloating))
	assert.Equal(t, StandardTitleBarHeight, st.SidebarTabHeight)
	assert.Equal(t, StandardTitleBarHeight, st.SidebarDownshift)

	// Inside top bar with a top OSC: tabs align with the combined strip.
	st = BuildState(NewSpec(specDraft()).WithOSC(true, OSCPositionTop))
	assert.Equal(t, ReducedTitleBarHeight+TopOSCHeight, st.SidebarTabHeight)
	assert.Equal(t, ReducedTitleBarHeight+TopOSCHeight, st.SidebarDownshift)
}

func TestBuildStateSidebarToggles(t *testing.T) {
	st := BuildState(NewSpec(specDraft()))
	assert.Equal(t, st.TitleBar, st.LeadingSidebarToggle)
	assert.Equal(t, st.TitleBar, st.TrailingSidebarToggle)
	assert.Equal(t, st.TitleBar, st.OnTopToggle)

	// A sidebar with no tab groups gets no toggle button.
	draft := specDraft()
	draft.LeadingSidebar.TabGroups = nil
	st = BuildState(NewSpec(draft))
	assert.Equal(t, VisibilityHidden, st.LeadingSidebarToggle)
	assert.NotEqual(t, VisibilityHidden, st.TrailingSidebarToggle)

	// Music mode has neither toggles nor on-top button.
	st = BuildState(NewSpec(specDraft()).WithMode(ModeMusic, InteractiveModeNone))
	assert.Equal(t, VisibilityHidden, st.LeadingSidebarToggle)
	assert.Equal(t, VisibilityHidden, st.OnTopToggle)
}

func TestVisibilityOfCoversEveryRegion(t *testing.T) {
	st := BuildState(NewSpec(specDraft()))
	for _, r := range Regions() {
		// Every region maps onto a field; unknown regions would come back
		// hidden, which the title bar of this spec is not.
		_ = st.VisibilityOf(r)
	}
	assert.Equal(t, st.TitleBar, st.VisibilityOf(RegionTitleBar))
	assert.Equal(t, st.BottomBar, st.VisibilityOf(RegionBottomBar))
	assert.Equal(t, st.FloatingControlBar, st.VisibilityOf(RegionFloatingControlBar))
}
