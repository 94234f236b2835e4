package audio

// Nop tracks playback state without producing sound. It stands in for a
// device in headless runs and tests.
type Nop struct {
	playing  bool
	Restarts int
}

func (n *Nop) Play() error     { n.playing = true; return nil }
func (n *Nop) Pause()          { n.playing = false }
func (n *Nop) Resume()         { n.playing = true }
func (n *Nop) Restart() error  { n.Restarts++; n.playing = true; return nil }
func (n *Nop) IsPlaying() bool { return n.playing }
func (n *Nop) Close() error    { n.playing = false; return nil }
