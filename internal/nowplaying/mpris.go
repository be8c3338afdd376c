//go:build linux

package nowplaying

import (
	"context"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"

	"tracknote/internal/model"
)

const (
	mprisPrefix     = "org.mpris.MediaPlayer2."
	mprisObjectPath = "/org/mpris/MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"
)

// Current returns the track the local media player is playing right now.
// busName selects a specific player ("org.mpris.MediaPlayer2.spotify" or
// just "spotify"); when empty, a playing player is preferred over a paused
// one.
func Current(ctx context.Context, busName string) (*model.Track, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect to session bus: %w", err)
	}

	name, err := resolvePlayer(ctx, conn, busName)
	if err != nil {
		return nil, err
	}

	obj := conn.Object(name, mprisObjectPath)
	variant, err := obj.GetProperty(playerInterface + ".Metadata")
	if err != nil {
		return nil, fmt.Errorf("read player metadata: %w", err)
	}

	md, ok := variant.Value().(map[string]dbus.Variant)
	if !ok {
		return nil, ErrNothingPlaying
	}

	return trackFromMetadata(md)
}

// resolvePlayer picks the MPRIS bus name to query.
func resolvePlayer(ctx context.Context, conn *dbus.Conn, busName string) (string, error) {
	var names []string
	err := conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0).Store(&names)
	if err != nil {
		return "", fmt.Errorf("list bus names: %w", err)
	}

	players := []string{}
	for _, n := range names {
		if strings.HasPrefix(n, mprisPrefix) {
			players = append(players, n)
		}
	}
	if len(players) == 0 {
		return "", ErrNoPlayer
	}

	if busName != "" {
		want := busName
		if !strings.HasPrefix(want, mprisPrefix) {
			want = mprisPrefix + want
		}
		for _, p := range players {
			if p == want {
				return p, nil
			}
		}
		return "", fmt.Errorf("%w: %s not on the bus", ErrNoPlayer, want)
	}

	// Prefer a player that is actually playing
	for _, p := range players {
		if playbackStatus(conn, p) == "Playing" {
			return p, nil
		}
	}
	return players[0], nil
}

func playbackStatus(conn *dbus.Conn, name string) string {
	obj := conn.Object(name, mprisObjectPath)
	variant, err := obj.GetProperty(playerInterface + ".PlaybackStatus")
	if err != nil {
		return ""
	}
	s, _ := variant.Value().(string)
	return s
}
