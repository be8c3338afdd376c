//go:build !linux

package nowplaying

import (
	"context"

	"tracknote/internal/model"
)

// Current is unsupported off Linux; MPRIS needs a D-Bus session bus.
func Current(_ context.Context, _ string) (*model.Track, error) {
	return nil, ErrNoPlayer
}
