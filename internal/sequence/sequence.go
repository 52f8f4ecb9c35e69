package sequence

// Length is the number of slots in a target sequence.
const Length = 4

// Intner is the subset of *rand.Rand used to draw pitches.
type Intner interface {
	Intn(n int) int
}

// Slot is one position of the target sequence.
type Slot struct {
	Pitch   Pitch
	Played  bool // revealed by the choir during the current playback
	Matched bool // reproduced by the player during the current attempt
}

// Sequence is the ordered target. Matched slots always form a prefix.
type Sequence [Length]Slot

// Outcome is the result of submitting one pitch.
type Outcome int

const (
	Matched Outcome = iota
	Mismatch
	AlreadyComplete
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Mismatch:
		return "mismatch"
	case AlreadyComplete:
		return "already_complete"
	default:
		return "unknown"
	}
}

// Of builds a fresh sequence from four pitches.
func Of(p0, p1, p2, p3 Pitch) Sequence {
	return Sequence{{Pitch: p0}, {Pitch: p1}, {Pitch: p2}, {Pitch: p3}}
}

// Ascending returns the opening scale C E G C'.
func Ascending() Sequence {
	return Of(Low, MidLow, MidHigh, High)
}

// Random draws four independent, uniformly distributed pitches.
func Random(rng Intner) Sequence {
	var s Sequence
	s.Regenerate(rng)
	return s
}

// Submit compares p with the first unmatched slot. Slots after it are never
// inspected. A mismatch invalidates the whole attempt: every Matched flag is
// cleared.
func (s *Sequence) Submit(p Pitch) Outcome {
	next := s.next()
	if next < 0 {
		return AlreadyComplete
	}
	if s[next].Pitch != p {
		s.ResetMatched()
		return Mismatch
	}
	s[next].Matched = true
	return Matched
}

// next returns the index of the first unmatched slot, or -1.
func (s *Sequence) next() int {
	for i := range s {
		if !s[i].Matched {
			return i
		}
	}
	return -1
}

// IsComplete reports whether every slot has been matched.
func (s *Sequence) IsComplete() bool {
	return s.next() < 0
}

// MatchedCount returns the length of the matched prefix.
func (s *Sequence) MatchedCount() int {
	if n := s.next(); n >= 0 {
		return n
	}
	return Length
}

// Expected returns the pitch the player must sing next.
// ok is false when the sequence is complete.
func (s *Sequence) Expected() (p Pitch, ok bool) {
	n := s.next()
	if n < 0 {
		return 0, false
	}
	return s[n].Pitch, true
}

// ResetMatched clears every Matched flag.
func (s *Sequence) ResetMatched() {
	for i := range s {
		s[i].Matched = false
	}
}

// Regenerate replaces the pitches with fresh random draws and clears all flags.
func (s *Sequence) Regenerate(rng Intner) {
	for i := range s {
		s[i] = Slot{Pitch: Pitch(rng.Intn(PitchCount))}
	}
}

// Replay clears Played and Matched but keeps the pitches.
func (s *Sequence) Replay() {
	for i := range s {
		s[i].Played = false
		s[i].Matched = false
	}
}

// Pitches returns the target pitches in order.
func (s *Sequence) Pitches() [Length]Pitch {
	var out [Length]Pitch
	for i := range s {
		out[i] = s[i].Pitch
	}
	return out
}
