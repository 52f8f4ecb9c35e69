package core

// CueKind identifies the sound a game asks the platform to produce.
type CueKind int

const (
	CueNote    CueKind = iota // Player voice for a pressed note
	CueChoir                  // Choir voice revealing a note of the target sequence
	CueCorrect                // Sequence reproduced
	CueWrong                  // Wrong note, sequence invalidated
)

// String returns the cue name.
func (k CueKind) String() string {
	switch k {
	case CueNote:
		return "note"
	case CueChoir:
		return "choir"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Cue is a single sound request. Pitch is the note index (0 = low .. 3 = high)
// and is only meaningful for CueNote and CueChoir.
type Cue struct {
	Kind  CueKind
	Pitch int
}
