package model

import "testing"

func makePlaylist() *Playlist {
	p := NewPlaylist("https://example.com/playlist?list=PLx")
	p.AddItem(&MediaItem{ID: "a", Title: "First"})
	p.AddItem(&MediaItem{ID: "b", Title: "Second"})
	p.AddItem(&MediaItem{ID: "c", Title: "Third"})
	p.UpdateStatus(PlaylistStatusReady)
	return p
}

func TestPlaylist_SelectAndNavigate(t *testing.T) {
	p := makePlaylist()

	if cur := p.Current(); cur != nil {
		t.Fatalf("Current() = %v before selection, expected nil", cur)
	}

	if item := p.Select("b"); item == nil || item.ID != "b" {
		t.Fatalf("Select(b) = %v", item)
	}
	if next := p.Next(); next == nil || next.ID != "c" {
		t.Fatalf("Next() = %v, expected c", next)
	}
	if next := p.Next(); next != nil {
		t.Fatalf("Next() past end = %v, expected nil", next)
	}
	if prev := p.Previous(); prev == nil || prev.ID != "b" {
		t.Fatalf("Previous() = %v, expected b", prev)
	}
}

func TestPlaylist_RemoveItemAdjustsCurrent(t *testing.T) {
	p := makePlaylist()
	p.Select("c")

	// Removing an earlier item shifts the current index down.
	p.RemoveItem("a")
	if cur := p.Current(); cur == nil || cur.ID != "c" {
		t.Fatalf("Current() after earlier removal = %v, expected c", cur)
	}

	// Removing the current item clears the selection.
	p.RemoveItem("c")
	if cur := p.Current(); cur != nil {
		t.Fatalf("Current() after removing current = %v, expected nil", cur)
	}
}

func TestPlaylist_IsReady(t *testing.T) {
	p := NewPlaylist("https://example.com/playlist?list=PLx")
	if p.IsReady() {
		t.Error("IsReady() true while resolving")
	}

	p.UpdateStatus(PlaylistStatusReady)
	if p.IsReady() {
		t.Error("IsReady() true with no items")
	}

	p.AddItem(&MediaItem{ID: "a"})
	if !p.IsReady() {
		t.Error("IsReady() false for ready playlist with items")
	}
}
