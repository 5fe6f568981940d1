package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/voxplay/voxplay/internal/layout"
	"github.com/voxplay/voxplay/internal/model"
)

// SidebarView is one docking side panel: a tab strip over a content area.
// The transition pipeline detaches and re-attaches the content around
// placement changes; the view itself never decides what is visible.
type SidebarView struct {
	edge        layout.SidebarEdge
	loc         *Localization
	onSelectTab func(layout.SidebarEdge, layout.Tab)

	root    *fyne.Container
	tabs    *fyne.Container
	content *fyne.Container

	playlist     *model.Playlist
	onSelectItem func(*model.MediaItem)
	playlistList *widget.List
}

// NewSidebarView creates a sidebar for one edge. onSelectTab reports tab
// clicks back to the window controller, which turns them into layout
// transitions.
func NewSidebarView(edge layout.SidebarEdge, loc *Localization,
	onSelectTab func(layout.SidebarEdge, layout.Tab)) *SidebarView {

	sv := &SidebarView{
		edge:        edge,
		loc:         loc,
		onSelectTab: onSelectTab,
		tabs:        container.NewHBox(),
		content:     container.NewStack(),
	}
	sv.root = container.NewBorder(sv.tabs, nil, nil, nil, sv.content)
	sv.root.Hide()
	return sv
}

// Container returns the panel's root object for mounting.
func (sv *SidebarView) Container() *fyne.Container {
	return sv.root
}

// SetTabGroups rebuilds the tab strip for the groups this sidebar hosts.
func (sv *SidebarView) SetTabGroups(groups []layout.TabGroup) {
	sv.tabs.RemoveAll()
	for _, group := range groups {
		for _, tab := range tabsOfGroup(group) {
			t := tab
			btn := widget.NewButton(sv.tabLabel(t), func() {
				sv.onSelectTab(sv.edge, t)
			})
			btn.Importance = widget.LowImportance
			sv.tabs.Add(btn)
		}
	}
	sv.tabs.Refresh()
}

// Attach mounts the panel for a tab and shows the sidebar.
func (sv *SidebarView) Attach(tab layout.Tab) {
	sv.content.RemoveAll()
	sv.content.Add(sv.buildPanel(tab))
	sv.root.Show()
	sv.root.Refresh()
}

// Detach empties the content area and hides the sidebar.
func (sv *SidebarView) Detach() {
	sv.content.RemoveAll()
	sv.root.Hide()
}

// SetPlaylist binds the playlist shown by the playlist tab.
func (sv *SidebarView) SetPlaylist(p *model.Playlist, onSelect func(*model.MediaItem)) {
	sv.playlist = p
	sv.onSelectItem = onSelect
	if sv.playlistList != nil {
		sv.playlistList.Refresh()
	}
}

// buildPanel creates the content for a tab.
func (sv *SidebarView) buildPanel(tab layout.Tab) fyne.CanvasObject {
	switch tab {
	case layout.TabPlaylist:
		return sv.buildPlaylistPanel()
	case layout.TabChapters:
		return widget.NewLabel(sv.loc.GetText(KeyChapters))
	case layout.TabVideoSettings:
		return sv.buildSettingsPanel(KeyVideoSettings)
	case layout.TabAudioSettings:
		return sv.buildSettingsPanel(KeyAudioSettings)
	case layout.TabSubtitleSettings:
		return sv.buildSettingsPanel(KeySubtitleSettings)
	}
	return widget.NewLabel("")
}

// buildPlaylistPanel creates the scrolling item list.
func (sv *SidebarView) buildPlaylistPanel() fyne.CanvasObject {
	sv.playlistList = widget.NewList(
		func() int {
			if sv.playlist == nil {
				return 0
			}
			return len(sv.playlist.Items)
		},
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.Truncation = fyne.TextTruncateEllipsis
			duration := widget.NewLabel("")
			return container.NewBorder(nil, nil, nil, duration, title)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if sv.playlist == nil || id >= len(sv.playlist.Items) {
				return
			}
			item := sv.playlist.Items[id]
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(item.DisplayTitle())
			row.Objects[1].(*widget.Label).SetText(item.DurationString())
		},
	)
	sv.playlistList.OnSelected = func(id widget.ListItemID) {
		if sv.playlist == nil || id >= len(sv.playlist.Items) || sv.onSelectItem == nil {
			return
		}
		sv.onSelectItem(sv.playlist.Items[id])
	}
	return sv.playlistList
}

// buildSettingsPanel creates a placeholder track-settings form.
func (sv *SidebarView) buildSettingsPanel(titleKey string) fyne.CanvasObject {
	title := widget.NewLabel(sv.loc.GetText(titleKey))
	title.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewVBox(title, widget.NewSeparator())
}

func (sv *SidebarView) tabLabel(tab layout.Tab) string {
	switch tab {
	case layout.TabVideoSettings:
		return sv.loc.GetText(KeyVideoSettings)
	case layout.TabAudioSettings:
		return sv.loc.GetText(KeyAudioSettings)
	case layout.TabSubtitleSettings:
		return sv.loc.GetText(KeySubtitleSettings)
	case layout.TabPlaylist:
		return sv.loc.GetText(KeyPlaylist)
	case layout.TabChapters:
		return sv.loc.GetText(KeyChapters)
	}
	return string(tab)
}

func tabsOfGroup(group layout.TabGroup) []layout.Tab {
	switch group {
	case layout.TabGroupSettings:
		return []layout.Tab{layout.TabVideoSettings, layout.TabAudioSettings, layout.TabSubtitleSettings}
	case layout.TabGroupPlaylist:
		return []layout.Tab{layout.TabPlaylist, layout.TabChapters}
	}
	return nil
}
