package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/voxplay/voxplay/internal/model"
)

// Timeout constants
const (
	DefaultResolveTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// Default values
const (
	DefaultDuration     = "Unknown"
	DefaultPlaylistName = "Unknown Playlist"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Playlist title constants
const (
	MinPrefixLength = 10
	PlaylistSuffix  = " Playlist"
)

// Resolver fetches playlist entries for the playlist sidebar tab
type Resolver struct {
	timeout time.Duration
}

// NewResolver creates a new playlist resolver
func NewResolver() *Resolver {
	return &Resolver{
		timeout: DefaultResolveTimeout,
	}
}

// SetTimeout sets the timeout for resolve operations
func (r *Resolver) SetTimeout(timeout time.Duration) {
	r.timeout = timeout
}

// ResolvePlaylist resolves a playlist URL into its media items
func (r *Resolver) ResolvePlaylist(ctx context.Context, url string) (*model.Playlist, error) {
	// Validate URL
	if !r.isValidPlaylistURL(url) {
		return nil, fmt.Errorf("invalid playlist URL: %s", url)
	}

	// Extract playlist ID
	playlistID := r.extractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Use library to fetch items
	d := ytdlp.New()
	entries, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %v", err)
	}

	playlist := model.NewPlaylist(url)
	playlist.ID = playlistID
	for _, entry := range entries {
		item := &model.MediaItem{
			ID:          entry.VideoID,
			URL:         fmt.Sprintf(YouTubeVideoURLTemplate, entry.VideoID),
			Title:       entry.Title,
			Duration:    DefaultDuration,
			DurationSec: -1,
			AddedAt:     time.Now(),
		}
		playlist.AddItem(item)
	}

	playlist.Title = r.extractPlaylistTitle(playlist.Items)
	playlist.UpdateStatus(model.PlaylistStatusReady)

	return playlist, nil
}

// isValidPlaylistURL checks if the URL is a valid playlist URL
func (r *Resolver) isValidPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// extractPlaylistID extracts the playlist ID from various URL formats
func (r *Resolver) extractPlaylistID(url string) string {
	if strings.Contains(url, PlaylistParam) {
		parts := strings.Split(url, PlaylistParam)
		if len(parts) > 1 {
			playlistPart := parts[1]
			if strings.Contains(playlistPart, ParamSeparator) {
				playlistPart = strings.Split(playlistPart, ParamSeparator)[0]
			}
			return playlistPart
		}
	}
	return ""
}

// extractPlaylistTitle generates a title for the playlist based on its items
func (r *Resolver) extractPlaylistTitle(items []*model.MediaItem) string {
	if len(items) == 0 {
		return DefaultPlaylistName
	}
	if len(items) > 1 {
		firstTitle := items[0].Title
		commonPrefix := r.findCommonPrefix(firstTitle, items[1].Title)
		if len(commonPrefix) > MinPrefixLength {
			return strings.TrimSpace(commonPrefix) + PlaylistSuffix
		}
	}
	return items[0].Title + PlaylistSuffix
}

// findCommonPrefix finds the common prefix between two strings
func (r *Resolver) findCommonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}
