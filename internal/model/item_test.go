package model

import "testing"

func TestMediaItem_DisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		item     MediaItem
		expected string
	}{
		{
			name:     "title preferred",
			item:     MediaItem{Title: "Big Buck Bunny", LocalPath: "/videos/bbb.mkv", URL: "https://example.com/v"},
			expected: "Big Buck Bunny",
		},
		{
			name:     "url-shaped title skipped",
			item:     MediaItem{Title: "https://example.com/v", LocalPath: "/videos/bbb.mkv"},
			expected: "bbb",
		},
		{
			name:     "filename without extension",
			item:     MediaItem{LocalPath: "/home/user/movies/trailer.final.mp4"},
			expected: "trailer.final",
		},
		{
			name:     "windows separators",
			item:     MediaItem{LocalPath: `C:\Videos\clip.webm`},
			expected: "clip",
		},
		{
			name:     "url fallback",
			item:     MediaItem{URL: "https://example.com/watch?v=abc"},
			expected: "https://example.com/watch?v=abc",
		},
		{
			name:     "empty item",
			item:     MediaItem{},
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.item.DisplayTitle()
			if result != test.expected {
				t.Errorf("DisplayTitle() = %q, expected %q", result, test.expected)
			}
		})
	}
}

func TestMediaItem_DurationString(t *testing.T) {
	tests := []struct {
		name     string
		item     MediaItem
		expected string
	}{
		{"unknown", MediaItem{DurationSec: -1}, "—"},
		{"unknown with raw string", MediaItem{DurationSec: 0, Duration: "12:34"}, "12:34"},
		{"minutes", MediaItem{DurationSec: 754}, "12:34"},
		{"hours", MediaItem{DurationSec: 3723}, "01:02:03"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.item.DurationString()
			if result != test.expected {
				t.Errorf("DurationString() = %q, expected %q", result, test.expected)
			}
		})
	}
}

func TestMediaItem_AspectRatio(t *testing.T) {
	item := MediaItem{VideoWidth: 1920, VideoHeight: 1080}
	ratio, ok := item.AspectRatio()
	if !ok {
		t.Fatal("AspectRatio() not ok for known dimensions")
	}
	if ratio < 1.777 || ratio > 1.778 {
		t.Errorf("AspectRatio() = %v, expected ~1.7778", ratio)
	}

	unknown := MediaItem{}
	if _, ok := unknown.AspectRatio(); ok {
		t.Error("AspectRatio() ok for unknown dimensions")
	}
}
