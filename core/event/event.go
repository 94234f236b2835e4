package event

import (
	"fmt"
	"sort"
)

type Kind uint8

const (
	NoteOn Kind = iota + 1
	NoteOff
)

func (k Kind) String() string {
	switch k {
	case NoteOn:
		return "note_on"
	case NoteOff:
		return "note_off"
	default:
		return "unknown"
	}
}

// NoteEvent is a note message placed on the playback timeline.
type NoteEvent struct {
	Time     float64 // seconds from the start of playback
	Kind     Kind
	Note     uint8
	Velocity uint8
}

// NewNoteEvent validates the ranges a MIDI note message can carry.
func NewNoteEvent(t float64, kind Kind, note, velocity int) (NoteEvent, error) {
	if t < 0 {
		return NoteEvent{}, fmt.Errorf("event time %v is negative", t)
	}
	if kind != NoteOn && kind != NoteOff {
		return NoteEvent{}, fmt.Errorf("unknown event kind %d", kind)
	}
	if note < 0 || note > 127 {
		return NoteEvent{}, fmt.Errorf("note %d out of range 0..127", note)
	}
	if velocity < 0 || velocity > 127 {
		return NoteEvent{}, fmt.Errorf("velocity %d out of range 0..127", velocity)
	}
	return NoteEvent{Time: t, Kind: kind, Note: uint8(note), Velocity: uint8(velocity)}, nil
}

// Strikes reports whether the event should fire a visual: a NoteOn with a
// non-zero velocity. NoteOn with velocity 0 is a release in MIDI practice.
func (e NoteEvent) Strikes() bool {
	return e.Kind == NoteOn && e.Velocity > 0
}

func (e NoteEvent) String() string {
	return fmt.Sprintf("%.3fs %s note=%d vel=%d", e.Time, e.Kind, e.Note, e.Velocity)
}

// Sort orders events by time. Events sharing a timestamp keep the order they
// were emitted in.
func Sort(events []NoteEvent) {
	sort.SliceStable(events, func(i, j int) bool { return events[i].Time < events[j].Time })
}

// Sorted reports whether events are in non-decreasing time order.
func Sorted(events []NoteEvent) bool {
	return sort.SliceIsSorted(events, func(i, j int) bool { return events[i].Time < events[j].Time })
}
