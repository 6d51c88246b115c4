package tour

import (
	"context"
	"time"
)

// Autoplay is the wall-clock driver for a Player: it calls Tick(interval)
// every interval while the player is playing. onTick, if set, sees the state
// after each tick. It returns nil once playback pauses (normally at the end of
// the tour) or ctx's error if cancelled first.
func Autoplay(ctx context.Context, p *Player, interval time.Duration, onTick func(State)) error {
	if !p.Playing() {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	deltaMs := int(interval / time.Millisecond)
	if deltaMs < 1 {
		deltaMs = 1
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Tick(deltaMs)
			if onTick != nil {
				onTick(p.State())
			}
			if !p.Playing() {
				return nil
			}
		}
	}
}
