package event

// Timeline releases events in time order through a cursor that only moves
// forward until Rewind. Loaded events are never reordered during playback.
type Timeline struct {
	events []NoteEvent
	cursor int
}

func NewTimeline(events []NoteEvent) *Timeline {
	t := &Timeline{}
	t.Load(events)
	return t
}

// Load replaces the timeline contents with a copy of events and rewinds.
// Input is expected sorted; unsorted input is stable-sorted once here.
func (t *Timeline) Load(events []NoteEvent) {
	t.events = append([]NoteEvent(nil), events...)
	if !Sorted(t.events) {
		Sort(t.events)
	}
	t.cursor = 0
}

// Due returns every event with Time <= now not returned by an earlier call.
// The result aliases the timeline's storage and must be treated as read-only.
func (t *Timeline) Due(now float64) []NoteEvent {
	start := t.cursor
	for t.cursor < len(t.events) && t.events[t.cursor].Time <= now {
		t.cursor++
	}
	return t.events[start:t.cursor:t.cursor]
}

// Rewind moves the cursor back to the first event.
func (t *Timeline) Rewind() { t.cursor = 0 }

func (t *Timeline) Len() int { return len(t.events) }

func (t *Timeline) Cursor() int { return t.cursor }

func (t *Timeline) Remaining() int { return len(t.events) - t.cursor }

// Done reports whether every event has been released.
func (t *Timeline) Done() bool { return t.cursor >= len(t.events) }

// Duration is the timestamp of the last event, or 0 when empty.
func (t *Timeline) Duration() float64 {
	if len(t.events) == 0 {
		return 0
	}
	return t.events[len(t.events)-1].Time
}
