package model

import (
	"time"
)

// PlaylistStatus represents the current status of a playlist
type PlaylistStatus string

const (
	PlaylistStatusResolving PlaylistStatus = "resolving"
	PlaylistStatusReady     PlaylistStatus = "ready"
	PlaylistStatusError     PlaylistStatus = "error"
)

// Playlist represents an ordered set of media items shown in the playlist
// sidebar tab
type Playlist struct {
	ID           string
	Title        string
	URL          string // source URL for resolved playlists, empty for ad-hoc queues
	Items        []*MediaItem
	Status       PlaylistStatus
	CurrentIndex int // index of the playing item, -1 when nothing plays
	Error        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPlaylist creates a new empty playlist
func NewPlaylist(url string) *Playlist {
	now := time.Now()
	return &Playlist{
		URL:          url,
		Status:       PlaylistStatusResolving,
		Items:        make([]*MediaItem, 0),
		CurrentIndex: -1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AddItem appends an item to the playlist
func (p *Playlist) AddItem(item *MediaItem) {
	p.Items = append(p.Items, item)
	p.UpdatedAt = time.Now()
}

// RemoveItem removes an item from the playlist by ID
func (p *Playlist) RemoveItem(itemID string) {
	for i, item := range p.Items {
		if item.ID == itemID {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			if p.CurrentIndex == i {
				p.CurrentIndex = -1
			} else if p.CurrentIndex > i {
				p.CurrentIndex--
			}
			p.UpdatedAt = time.Now()
			break
		}
	}
}

// UpdateStatus updates the playlist status
func (p *Playlist) UpdateStatus(status PlaylistStatus) {
	p.Status = status
	p.UpdatedAt = time.Now()
}

// Current returns the playing item, or nil when nothing plays
func (p *Playlist) Current() *MediaItem {
	if p.CurrentIndex < 0 || p.CurrentIndex >= len(p.Items) {
		return nil
	}
	return p.Items[p.CurrentIndex]
}

// Select makes the item with the given ID current and returns it
func (p *Playlist) Select(itemID string) *MediaItem {
	for i, item := range p.Items {
		if item.ID == itemID {
			p.CurrentIndex = i
			p.UpdatedAt = time.Now()
			return item
		}
	}
	return nil
}

// Next advances to the following item and returns it, or nil at the end
func (p *Playlist) Next() *MediaItem {
	if p.CurrentIndex+1 >= len(p.Items) {
		return nil
	}
	p.CurrentIndex++
	p.UpdatedAt = time.Now()
	return p.Items[p.CurrentIndex]
}

// Previous steps back to the preceding item and returns it, or nil at the start
func (p *Playlist) Previous() *MediaItem {
	if p.CurrentIndex <= 0 {
		return nil
	}
	p.CurrentIndex--
	p.UpdatedAt = time.Now()
	return p.Items[p.CurrentIndex]
}

// IsReady checks if the playlist resolved successfully and has items
func (p *Playlist) IsReady() bool {
	return p.Status == PlaylistStatusReady && len(p.Items) > 0
}
