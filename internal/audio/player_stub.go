//go:build test || js

package audio

import (
	"fmt"

	"github.com/ingyamilmolinar/rsharp/core/engine"
	game_log "github.com/ingyamilmolinar/rsharp/internal/log"
	"github.com/ingyamilmolinar/rsharp/internal/pcm"
)

// Player is unavailable in test and browser builds.
type Player struct {
	Nop
	clip *pcm.Clip
}

// Open still decodes path so callers see load errors, but never opens a device.
func Open(path string, logger *game_log.Logger) (*Player, error) {
	if _, err := pcm.LoadWAV(path); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: no audio device in this build", engine.ErrPlaybackDevice)
}

func (p *Player) Clip() *pcm.Clip { return p.clip }
