package layout

// SidebarEdge identifies one of the two docking side panels.
type SidebarEdge string

const (
	EdgeLeading  SidebarEdge = "leading"
	EdgeTrailing SidebarEdge = "trailing"
)

// String returns the string representation of the edge.
func (e SidebarEdge) String() string {
	return string(e)
}

// Placement describes whether a bar or sidebar overlaps the viewport or
// extends the window bounds instead.
type Placement string

const (
	PlacementInsideViewport  Placement = "insideViewport"
	PlacementOutsideViewport Placement = "outsideViewport"
)

// String returns the string representation of the placement.
func (p Placement) String() string {
	return string(p)
}

// TabGroup is a family of sidebar tabs that share a panel.
type TabGroup string

const (
	TabGroupSettings TabGroup = "settings"
	TabGroupPlaylist TabGroup = "playlist"
)

// Tab is a single sidebar tab.
type Tab string

const (
	TabNone             Tab = ""
	TabVideoSettings    Tab = "videoSettings"
	TabAudioSettings    Tab = "audioSettings"
	TabSubtitleSettings Tab = "subtitleSettings"
	TabPlaylist         Tab = "playlist"
	TabChapters         Tab = "chapters"
)

// Group returns the tab group the tab belongs to.
func (t Tab) Group() TabGroup {
	switch t {
	case TabVideoSettings, TabAudioSettings, TabSubtitleSettings:
		return TabGroupSettings
	case TabPlaylist, TabChapters:
		return TabGroupPlaylist
	}
	return ""
}

// Sidebar is the configuration of one docking side panel.
//
// A sidebar whose tab-group set is empty can never be visible; Spec
// construction enforces this.
type Sidebar struct {
	Edge      SidebarEdge
	TabGroups []TabGroup
	// VisibleTab is the currently shown tab. It is retained while the
	// sidebar is hidden so reopening restores the last tab.
	VisibleTab Tab
	Placement  Placement
	Visible    bool
}

// HasGroup reports whether the sidebar can host the given tab group.
func (s Sidebar) HasGroup(g TabGroup) bool {
	for _, tg := range s.TabGroups {
		if tg == g {
			return true
		}
	}
	return false
}

// IsVisible reports whether the sidebar is actually shown: it must be
// switched on, host at least one tab group, and have a current tab.
func (s Sidebar) IsVisible() bool {
	return s.Visible && len(s.TabGroups) > 0 && s.VisibleTab != TabNone
}

// VisibleTabGroup returns the group of the currently shown tab, or "" when
// the sidebar is hidden.
func (s Sidebar) VisibleTabGroup() TabGroup {
	if !s.IsVisible() {
		return ""
	}
	return s.VisibleTab.Group()
}
