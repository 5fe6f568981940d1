package model

import (
	"fmt"
	"strings"
	"time"
)

// MediaItem represents a single playable entry: a local file or a stream URL
type MediaItem struct {
	ID          string
	URL         string
	LocalPath   string // path to a local file, empty for streams
	Title       string // media title
	Duration    string // human readable duration (e.g., "12:34")
	DurationSec int    // duration in seconds, -1 if unknown
	VideoWidth  int    // native video width in pixels, 0 if unknown
	VideoHeight int    // native video height in pixels, 0 if unknown
	LastError   string // last playback error if any
	AddedAt     time.Time
}

// AspectRatio returns the native width/height ratio and whether it is known
func (mi *MediaItem) AspectRatio() (float64, bool) {
	if mi.VideoWidth <= 0 || mi.VideoHeight <= 0 {
		return 0, false
	}
	return float64(mi.VideoWidth) / float64(mi.VideoHeight), true
}

// DurationString returns the duration formatted as hh:mm:ss, or "—" if unknown
func (mi *MediaItem) DurationString() string {
	if mi.DurationSec <= 0 {
		if mi.Duration != "" {
			return mi.Duration
		}
		return "—"
	}

	hours := mi.DurationSec / 3600
	minutes := (mi.DurationSec % 3600) / 60
	seconds := mi.DurationSec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// DisplayTitle returns title, filename, or URL in order of preference
func (mi *MediaItem) DisplayTitle() string {
	// First priority: media title (non-URL)
	if mi.Title != "" && !strings.HasPrefix(mi.Title, "http") {
		return mi.Title
	}

	// Second priority: filename from LocalPath
	if mi.LocalPath != "" {
		// Extract just the filename without path (support both / and \ separators)
		parts := strings.FieldsFunc(mi.LocalPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			// Remove file extension for cleaner display
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	// Fallback: URL
	return mi.URL
}
