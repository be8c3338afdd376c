package nowplaying

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestTrackFromMetadata_FullSet(t *testing.T) {
	md := map[string]dbus.Variant{
		"mpris:trackid":        dbus.MakeVariant(dbus.ObjectPath("/com/spotify/track/abc123")),
		"xesam:title":          dbus.MakeVariant("Karma Police"),
		"xesam:artist":         dbus.MakeVariant([]string{"Radiohead"}),
		"xesam:album":          dbus.MakeVariant("OK Computer"),
		"xesam:contentCreated": dbus.MakeVariant("1997-05-21T00:00:00Z"),
		"mpris:length":         dbus.MakeVariant(int64(262000000)), // µs
		"xesam:genre":          dbus.MakeVariant([]string{"alternative rock", "art rock"}),
		"xesam:composer":       dbus.MakeVariant([]string{"Thom Yorke"}),
		"xesam:autoRating":     dbus.MakeVariant(0.82),
	}

	track, err := trackFromMetadata(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if track.ID != "/com/spotify/track/abc123" {
		t.Errorf("unexpected ID: %q", track.ID)
	}
	if track.Title != "Karma Police" {
		t.Errorf("unexpected title: %q", track.Title)
	}
	if track.Artist != "Radiohead" {
		t.Errorf("unexpected artist: %q", track.Artist)
	}
	if track.ReleaseDate != "1997-05-21" {
		t.Errorf("expected date part only, got %q", track.ReleaseDate)
	}
	if track.DurationMS != 262000 {
		t.Errorf("expected 262000 ms, got %d", track.DurationMS)
	}
	if track.Genres != "alternative rock, art rock" {
		t.Errorf("unexpected genres: %q", track.Genres)
	}
	if track.Writers != "Thom Yorke" {
		t.Errorf("unexpected writers: %q", track.Writers)
	}
	if track.Popularity != 82 {
		t.Errorf("expected popularity 82, got %d", track.Popularity)
	}
}

func TestTrackFromMetadata_MultipleArtists(t *testing.T) {
	md := map[string]dbus.Variant{
		"xesam:title":  dbus.MakeVariant("Duet"),
		"xesam:artist": dbus.MakeVariant([]string{"Artist A", "Artist B"}),
	}

	track, err := trackFromMetadata(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.Artist != "Artist A, Artist B" {
		t.Errorf("unexpected artist join: %q", track.Artist)
	}
}

func TestTrackFromMetadata_ArtistAsBareString(t *testing.T) {
	md := map[string]dbus.Variant{
		"xesam:title":  dbus.MakeVariant("Song"),
		"xesam:artist": dbus.MakeVariant("Solo Artist"),
	}

	track, err := trackFromMetadata(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.Artist != "Solo Artist" {
		t.Errorf("unexpected artist: %q", track.Artist)
	}
}

func TestTrackFromMetadata_FallbackID(t *testing.T) {
	md := map[string]dbus.Variant{
		"xesam:title":  dbus.MakeVariant("Song"),
		"xesam:artist": dbus.MakeVariant([]string{"Band"}),
	}

	track, err := trackFromMetadata(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.ID != "band|song" {
		t.Errorf("expected fallback ID, got %q", track.ID)
	}
}

func TestTrackFromMetadata_NoTrackSentinel(t *testing.T) {
	md := map[string]dbus.Variant{
		"mpris:trackid": dbus.MakeVariant(dbus.ObjectPath("/org/mpris/MediaPlayer2/TrackList/NoTrack")),
		"xesam:title":   dbus.MakeVariant("Song"),
		"xesam:artist":  dbus.MakeVariant([]string{"Band"}),
	}

	track, err := trackFromMetadata(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.ID != "band|song" {
		t.Errorf("NoTrack sentinel should fall back, got %q", track.ID)
	}
}

func TestTrackFromMetadata_MissingTitle(t *testing.T) {
	md := map[string]dbus.Variant{
		"xesam:artist": dbus.MakeVariant([]string{"Band"}),
	}

	_, err := trackFromMetadata(md)
	if !errors.Is(err, ErrNothingPlaying) {
		t.Errorf("expected ErrNothingPlaying, got %v", err)
	}
}

func TestTrackFromMetadata_Uint64Length(t *testing.T) {
	md := map[string]dbus.Variant{
		"xesam:title":  dbus.MakeVariant("Song"),
		"xesam:artist": dbus.MakeVariant([]string{"Band"}),
		"mpris:length": dbus.MakeVariant(uint64(180000000)),
	}

	track, err := trackFromMetadata(md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.DurationMS != 180000 {
		t.Errorf("expected 180000 ms, got %d", track.DurationMS)
	}
}
