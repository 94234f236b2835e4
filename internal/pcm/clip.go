// Package pcm decodes WAV files into float samples.
package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"

	"github.com/ingyamilmolinar/rsharp/core/engine"
)

// Clip is decoded audio with interleaved samples in -1..1.
type Clip struct {
	SampleRate int
	Channels   int
	Data       []float64
}

// Frames is the number of samples per channel.
func (c *Clip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Data) / c.Channels
}

// Duration is the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(c.Frames()) / float64(c.SampleRate)
}

// Mono averages all channels into one.
func (c *Clip) Mono() []float64 {
	if c.Channels <= 1 {
		return c.Data
	}
	out := make([]float64, c.Frames())
	for i := range out {
		sum := 0.0
		for ch := 0; ch < c.Channels; ch++ {
			sum += c.Data[i*c.Channels+ch]
		}
		out[i] = sum / float64(c.Channels)
	}
	return out
}

// PCM16 encodes the clip as signed 16-bit little-endian interleaved PCM.
func (c *Clip) PCM16() []byte {
	buf := make([]byte, 2*len(c.Data))
	for i, s := range c.Data {
		s = max(-1, min(1, s))
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(int16(s*32767)))
	}
	return buf
}

// LoadWAV decodes the WAV file at path.
func LoadWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrPlaybackDevice, err)
	}
	defer f.Close()
	clip, err := DecodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("load wav %s: %w", path, err)
	}
	return clip, nil
}

var errNotWAV = errors.New("not a valid wav file")

// DecodeWAV reads an integer PCM WAV stream.
func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: %v", engine.ErrPlaybackDevice, errNotWAV)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", engine.ErrPlaybackDevice, err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: missing format", engine.ErrPlaybackDevice)
	}
	depth := int(d.BitDepth)
	if depth == 0 {
		depth = buf.SourceBitDepth
	}
	scale, offset := 0.0, 0.0
	switch depth {
	case 8:
		scale, offset = 128, 128
	case 16, 24, 32:
		scale = float64(int64(1) << (depth - 1))
	default:
		return nil, fmt.Errorf("%w: unsupported bit depth %d", engine.ErrPlaybackDevice, depth)
	}
	data := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = (float64(v) - offset) / scale
	}
	return &Clip{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		Data:       data,
	}, nil
}
