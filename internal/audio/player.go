//go:build !test && !js

package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/ingyamilmolinar/rsharp/core/engine"
	game_log "github.com/ingyamilmolinar/rsharp/internal/log"
	"github.com/ingyamilmolinar/rsharp/internal/pcm"
)

// oto allows one context per process, so the first clip fixes its format.
var (
	ctx        *oto.Context
	once       sync.Once
	ctxErr     error
	ctxRate    int
	ctxChannel int
)

func initContext(sampleRate, channels int) {
	var ready chan struct{}
	ctx, ready, ctxErr = oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if ctxErr != nil {
		return
	}
	<-ready
	ctxRate, ctxChannel = sampleRate, channels
}

// Player plays one decoded clip through the shared oto context.
type Player struct {
	player *oto.Player
	src    *bytes.Reader
	clip   *pcm.Clip
	logger *game_log.Logger
}

// Open decodes the WAV at path and prepares it for playback. Errors wrap
// engine.ErrPlaybackDevice.
func Open(path string, logger *game_log.Logger) (*Player, error) {
	clip, err := pcm.LoadWAV(path)
	if err != nil {
		return nil, err
	}
	once.Do(func() { initContext(clip.SampleRate, clip.Channels) })
	if ctxErr != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrPlaybackDevice, ctxErr)
	}
	if clip.SampleRate != ctxRate || clip.Channels != ctxChannel {
		return nil, fmt.Errorf("%w: device opened at %dHz/%dch, clip is %dHz/%dch",
			engine.ErrPlaybackDevice, ctxRate, ctxChannel, clip.SampleRate, clip.Channels)
	}
	src := bytes.NewReader(clip.PCM16())
	logger.Infof("[AUDIO] loaded %s: %.2fs at %dHz, %d channels", path, clip.Duration(), clip.SampleRate, clip.Channels)
	return &Player{player: ctx.NewPlayer(src), src: src, clip: clip, logger: logger}, nil
}

func (p *Player) Play() error {
	p.player.Play()
	return p.player.Err()
}

func (p *Player) Pause() { p.player.Pause() }

func (p *Player) Resume() { p.player.Play() }

// Restart rewinds to the first sample and plays.
func (p *Player) Restart() error {
	p.player.Pause()
	if _, err := p.player.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: rewind: %v", engine.ErrPlaybackDevice, err)
	}
	p.player.Play()
	return p.player.Err()
}

func (p *Player) IsPlaying() bool { return p.player.IsPlaying() }

// Clip is the decoded audio being played.
func (p *Player) Clip() *pcm.Clip { return p.clip }

func (p *Player) Close() error {
	p.logger.Debugf("[AUDIO] closing player")
	return p.player.Close()
}
