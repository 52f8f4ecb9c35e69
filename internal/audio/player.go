// Package audio turns game cues into sound. The Synth plays through the
// system speaker with faiface/beep; Silent and Recorder are used where no
// speaker exists (SSH sessions, tests).
package audio

import (
	"sync"

	"github.com/vovakirdan/tui-choir/internal/core"
)

// Player consumes the cues produced by a game step.
type Player interface {
	Play(cue core.Cue)
	Close() error
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(core.Cue) {}

// Close does nothing.
func (Silent) Close() error { return nil }

// Recorder keeps every cue it is given, in order.
type Recorder struct {
	mu   sync.Mutex
	cues []core.Cue
}

// Play records the cue.
func (r *Recorder) Play(cue core.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []core.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Cue, len(r.cues))
	copy(out, r.cues)
	return out
}

// Close does nothing.
func (r *Recorder) Close() error { return nil }

// Multi fans every cue out to several players.
type Multi []Player

// Play forwards the cue to every player.
func (m Multi) Play(cue core.Cue) {
	for _, p := range m {
		p.Play(cue)
	}
}

// Close closes every player and returns the first error.
func (m Multi) Close() error {
	var first error
	for _, p := range m {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
