package model

import (
	"fmt"
	"strings"
	"time"
)

// Track is one cached song: metadata plus optional lyrics.
type Track struct {
	ID          string  // opaque player-supplied identifier, unique key
	Title       string  // never empty for a stored track
	Artist      string  // display string, never empty for a stored track
	Album       string
	ReleaseDate string // may be empty
	DurationMS  int64
	Popularity  int     // 0-100
	Genres      string  // pre-joined display string
	Producers   string  // pre-joined display string
	Writers     string  // pre-joined display string
	Lyrics      *string // nil when no lyrics are cached
	CachedAt    time.Time
}

// HasLyrics returns true if the track has non-empty cached lyrics.
func (t Track) HasLyrics() bool {
	return t.Lyrics != nil && *t.Lyrics != ""
}

// LyricLines returns the cached lyrics split into display lines.
// Returns nil when no lyrics are cached.
func (t Track) LyricLines() []string {
	if !t.HasLyrics() {
		return nil
	}
	return strings.Split(*t.Lyrics, "\n")
}

// FormatDuration formats the track duration as m:ss.
func (t Track) FormatDuration() string {
	return fmt.Sprintf("%d:%02d", t.DurationMS/60000, (t.DurationMS%60000)/1000)
}

// Summary returns the one-line display form used in lists and reports.
func (t Track) Summary() string {
	return t.Title + " by " + t.Artist
}
