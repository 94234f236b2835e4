// Package midi converts Standard MIDI Files to and from timeline events.
package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ingyamilmolinar/rsharp/core/engine"
	"github.com/ingyamilmolinar/rsharp/core/event"
)

// Load reads the note events of the SMF at path. See ReadFrom.
func Load(path string, bpm float64) ([]event.NoteEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrInputLoad, err)
	}
	defer f.Close()
	events, err := ReadFrom(f, bpm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

// ReadFrom returns every note on and note off of every track, in time order.
// Each track accumulates its own delta ticks. With bpm > 0 ticks become
// seconds at that fixed tempo, as ticks/ppq * 60/bpm. With bpm <= 0 the
// file's own tempo map is used.
func ReadFrom(r io.Reader, bpm float64) ([]event.NoteEvent, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrInputLoad, err)
	}
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrInputLoad, err)
	}
	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported time format %v", engine.ErrInputLoad, s.TimeFormat)
	}
	if mt.Resolution() == 0 {
		return nil, fmt.Errorf("%w: zero ticks per quarter note", engine.ErrInputLoad)
	}

	var events []event.NoteEvent
	if bpm > 0 {
		ppq := float64(mt.Resolution())
		for _, track := range s.Tracks {
			var ticks int64
			for _, ev := range track {
				ticks += int64(ev.Delta)
				seconds := float64(ticks) / ppq * 60 / bpm
				if ne, ok := noteEvent(ev.Message, seconds); ok {
					events = append(events, ne)
				}
			}
		}
	} else {
		err := smf.ReadTracksFrom(bytes.NewReader(data)).Do(func(ev smf.TrackEvent) {
			seconds := float64(ev.AbsMicroSeconds) / 1_000_000
			if ne, ok := noteEvent(ev.Message, seconds); ok {
				events = append(events, ne)
			}
		}).Error()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", engine.ErrInputLoad, err)
		}
	}
	event.Sort(events)
	return events, nil
}

// noteEvent keeps note on messages as note on even at velocity 0.
func noteEvent(msg smf.Message, seconds float64) (event.NoteEvent, bool) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteOn(&ch, &key, &vel):
		return event.NoteEvent{Time: seconds, Kind: event.NoteOn, Note: key, Velocity: vel}, true
	case msg.GetNoteOff(&ch, &key, &vel):
		return event.NoteEvent{Time: seconds, Kind: event.NoteOff, Note: key, Velocity: vel}, true
	}
	return event.NoteEvent{}, false
}
