package media

import (
	"context"
	"testing"
	"time"

	"github.com/voxplay/voxplay/internal/model"
)

func TestExtractPlaylistID(t *testing.T) {
	resolver := NewResolver()

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "playlist URL",
			url:      "https://www.youtube.com/playlist?list=PLtest123",
			expected: "PLtest123",
		},
		{
			name:     "watch URL with list",
			url:      "https://www.youtube.com/watch?v=abc&list=PLtest123",
			expected: "PLtest123",
		},
		{
			name:     "list with trailing params",
			url:      "https://www.youtube.com/watch?v=abc&list=PLtest123&index=4",
			expected: "PLtest123",
		},
		{
			name:     "no list param",
			url:      "https://www.youtube.com/watch?v=abc",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := resolver.extractPlaylistID(test.url)
			if result != test.expected {
				t.Errorf("extractPlaylistID(%s) = %q, expected %q", test.url, result, test.expected)
			}
		})
	}
}

func TestIsValidPlaylistURL(t *testing.T) {
	resolver := NewResolver()

	if !resolver.isValidPlaylistURL("https://www.youtube.com/playlist?list=PLtest") {
		t.Error("Expected playlist URL to be valid")
	}

	if resolver.isValidPlaylistURL("https://www.youtube.com/watch?v=abc") {
		t.Error("Expected plain watch URL to be invalid")
	}
}

func TestResolvePlaylistRejectsInvalidURL(t *testing.T) {
	resolver := NewResolver()
	resolver.SetTimeout(time.Second)

	_, err := resolver.ResolvePlaylist(context.Background(), "https://www.youtube.com/watch?v=abc")
	if err == nil {
		t.Error("Expected error for URL without playlist parameter, got nil")
	}
}

func TestExtractPlaylistTitle(t *testing.T) {
	resolver := NewResolver()

	tests := []struct {
		name     string
		items    []*model.MediaItem
		expected string
	}{
		{
			name:     "empty playlist",
			items:    nil,
			expected: DefaultPlaylistName,
		},
		{
			name: "single item",
			items: []*model.MediaItem{
				{Title: "Go Tutorial"},
			},
			expected: "Go Tutorial Playlist",
		},
		{
			name: "common prefix",
			items: []*model.MediaItem{
				{Title: "Concert 2024 - Part 1"},
				{Title: "Concert 2024 - Part 2"},
			},
			expected: "Concert 2024 - Part Playlist",
		},
		{
			name: "short prefix falls back to first title",
			items: []*model.MediaItem{
				{Title: "Alpha"},
				{Title: "Beta"},
			},
			expected: "Alpha Playlist",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := resolver.extractPlaylistTitle(test.items)
			if result != test.expected {
				t.Errorf("extractPlaylistTitle() = %q, expected %q", result, test.expected)
			}
		})
	}
}
