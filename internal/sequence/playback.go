package sequence

import "time"

// Reveal is the result of advancing the playback timer.
type Reveal int

const (
	RevealNone Reveal = iota // threshold not reached
	RevealNote               // a slot was revealed
	RevealDone               // threshold reached but every slot was already played
)

// Playback reveals a sequence one slot per interval.
// It is an accumulating counter advanced by the caller's frame time, not a scheduled timer.
type Playback struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewPlayback creates a playback timer that fires every interval.
func NewPlayback(interval time.Duration) *Playback {
	return &Playback{interval: interval}
}

// Interval returns the reveal interval.
func (p *Playback) Interval() time.Duration {
	return p.interval
}

// SetInterval changes the reveal interval without touching accumulated time.
func (p *Playback) SetInterval(d time.Duration) {
	p.interval = d
}

// Elapsed returns the time accumulated since the last fire.
func (p *Playback) Elapsed() time.Duration {
	return p.elapsed
}

// Restart zeroes the accumulator.
func (p *Playback) Restart() {
	p.elapsed = 0
}

// Advance adds elapsed to the accumulator. Once it reaches the interval the
// timer fires exactly once, drops the remainder and marks the first unplayed
// slot of seq as played. A negative elapsed counts as zero.
func (p *Playback) Advance(seq *Sequence, elapsed time.Duration) (Pitch, Reveal) {
	if elapsed > 0 {
		p.elapsed += elapsed
	}
	if p.elapsed < p.interval {
		return 0, RevealNone
	}
	p.elapsed = 0

	for i := range seq {
		if !seq[i].Played {
			seq[i].Played = true
			return seq[i].Pitch, RevealNote
		}
	}
	return 0, RevealDone
}
