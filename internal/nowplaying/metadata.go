// Package nowplaying reads the currently playing track from a local media
// player over MPRIS.
package nowplaying

import (
	"errors"
	"strings"

	"github.com/godbus/dbus/v5"

	"tracknote/internal/model"
)

// ErrNoPlayer is returned when no running media player is found.
var ErrNoPlayer = errors.New("no running media player found")

// ErrNothingPlaying is returned when a player is found but reports no track.
var ErrNothingPlaying = errors.New("no track is currently playing")

// trackFromMetadata maps an MPRIS metadata dictionary to a track skeleton.
// Popularity comes from xesam:autoRating (0..1) when the player exposes it.
func trackFromMetadata(md map[string]dbus.Variant) (*model.Track, error) {
	title := metaString(md, "xesam:title")
	if title == "" {
		return nil, ErrNothingPlaying
	}

	artists := metaStrings(md, "xesam:artist")
	artist := strings.Join(artists, ", ")
	if artist == "" {
		return nil, ErrNothingPlaying
	}

	t := &model.Track{
		Title:       title,
		Artist:      artist,
		Album:       metaString(md, "xesam:album"),
		ReleaseDate: releaseDate(metaString(md, "xesam:contentCreated")),
		DurationMS:  metaInt64(md, "mpris:length") / 1000, // µs -> ms
		Genres:      strings.Join(metaStrings(md, "xesam:genre"), ", "),
		Writers:     strings.Join(metaStrings(md, "xesam:composer"), ", "),
	}

	if rating, ok := metaFloat(md, "xesam:autoRating"); ok {
		t.Popularity = int(rating * 100)
	}

	t.ID = trackID(md, t)
	return t, nil
}

// trackID prefers the player's mpris:trackid; falls back to a title/artist
// key so the cache still has a stable identifier.
func trackID(md map[string]dbus.Variant, t *model.Track) string {
	if v, ok := md["mpris:trackid"]; ok {
		switch id := v.Value().(type) {
		case dbus.ObjectPath:
			if s := string(id); s != "" && s != "/org/mpris/MediaPlayer2/TrackList/NoTrack" {
				return s
			}
		case string:
			if id != "" {
				return id
			}
		}
	}
	return strings.ToLower(t.Artist) + "|" + strings.ToLower(t.Title)
}

// releaseDate keeps the date part of an ISO 8601 timestamp.
func releaseDate(s string) string {
	if i := strings.IndexByte(s, 'T'); i > 0 {
		return s[:i]
	}
	return s
}

func metaString(md map[string]dbus.Variant, key string) string {
	v, ok := md[key]
	if !ok {
		return ""
	}
	s, _ := v.Value().(string)
	return s
}

// metaStrings handles both []string and a bare string, which players
// disagree on for xesam list fields.
func metaStrings(md map[string]dbus.Variant, key string) []string {
	v, ok := md[key]
	if !ok {
		return nil
	}
	switch val := v.Value().(type) {
	case []string:
		out := make([]string, 0, len(val))
		for _, s := range val {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case []dbus.Variant:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.Value().(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// metaInt64 handles the integer types players use for mpris:length.
func metaInt64(md map[string]dbus.Variant, key string) int64 {
	v, ok := md[key]
	if !ok {
		return 0
	}
	switch n := v.Value().(type) {
	case int64:
		return n
	case uint64:
		return int64(n)
	case int32:
		return int64(n)
	case uint32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func metaFloat(md map[string]dbus.Variant, key string) (float64, bool) {
	v, ok := md[key]
	if !ok {
		return 0, false
	}
	f, ok := v.Value().(float64)
	return f, ok
}
