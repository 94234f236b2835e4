package midi

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ingyamilmolinar/rsharp/internal/onset"
	"github.com/ingyamilmolinar/rsharp/internal/utils"
)

const (
	// Resolution is the ticks per quarter note of written files.
	Resolution = 480
	// NoteLength is how long each written note sounds, in seconds.
	NoteLength = 0.1
)

type WriteOptions struct {
	BPM      float64
	Channel  uint8
	Note     uint8
	Velocity uint8
	// Dynamic sets each note's velocity from its onset strength, which is
	// already relative to the peak of the onset envelope.
	Dynamic bool
}

func DefaultWriteOptions() WriteOptions {
	return WriteOptions{BPM: 120, Note: 36, Velocity: 90}
}

type written struct {
	at  float64
	on  bool
	vel uint8
}

// WriteOnsets writes a single track SMF with one short note per onset.
func WriteOnsets(w io.Writer, onsets []onset.Onset, opts WriteOptions) error {
	if opts.BPM <= 0 {
		return fmt.Errorf("bpm must be positive, got %v", opts.BPM)
	}
	if opts.Note > 127 || opts.Velocity > 127 || opts.Channel > 15 {
		return fmt.Errorf("note %d, velocity %d or channel %d out of range", opts.Note, opts.Velocity, opts.Channel)
	}

	notes := make([]written, 0, 2*len(onsets))
	for _, o := range onsets {
		vel := opts.Velocity
		if opts.Dynamic {
			vel = uint8(utils.ClampInt(int(o.Strength*127), 1, 127))
		}
		notes = append(notes, written{at: o.Time, on: true, vel: vel}, written{at: o.Time + NoteLength})
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].at < notes[j].at })

	var track smf.Track
	track.Add(0, smf.MetaTempo(opts.BPM))
	var last int64
	for _, n := range notes {
		tick := max(int64(n.at*opts.BPM*Resolution/60), last)
		delta := uint32(tick - last)
		last = tick
		if n.on {
			track.Add(delta, midi.NoteOn(opts.Channel, opts.Note, n.vel))
		} else {
			track.Add(delta, midi.NoteOff(opts.Channel, opts.Note))
		}
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(Resolution)
	if err := s.Add(track); err != nil {
		return fmt.Errorf("adding track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing smf: %w", err)
	}
	return nil
}

// SaveOnsets writes onsets to a new file at path.
func SaveOnsets(path string, onsets []onset.Onset, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOnsets(f, onsets, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
