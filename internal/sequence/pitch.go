// Package sequence implements the note-sequence state machine of the choir
// game: a fixed four-slot target, a matcher advancing through it one pressed
// pitch at a time, and a timer that reveals the target one note at a time.
package sequence

import (
	"fmt"
	"math"
)

// Pitch is one of the four notes a player can sing.
type Pitch uint8

const (
	Low     Pitch = iota // C4
	MidLow               // E4
	MidHigh              // G4
	High                 // C5
)

// PitchCount is the number of distinct pitches.
const PitchCount = 4

// Pitches lists every pitch from low to high.
var Pitches = [PitchCount]Pitch{Low, MidLow, MidHigh, High}

var midiKeys = [PitchCount]uint8{60, 64, 67, 72}

// Valid reports whether p is one of the four pitches.
func (p Pitch) Valid() bool {
	return p < PitchCount
}

// String returns the note name.
func (p Pitch) String() string {
	switch p {
	case Low:
		return "C"
	case MidLow:
		return "E"
	case MidHigh:
		return "G"
	case High:
		return "C'"
	default:
		return fmt.Sprintf("Pitch(%d)", uint8(p))
	}
}

// MIDIKey returns the MIDI note number for the pitch.
func (p Pitch) MIDIKey() uint8 {
	if !p.Valid() {
		return 0
	}
	return midiKeys[p]
}

// Frequency returns the equal-tempered frequency in Hz (A4 = 440 Hz).
func (p Pitch) Frequency() float64 {
	return 440 * math.Pow(2, (float64(p.MIDIKey())-69)/12)
}
