// Package record writes a play session to a standard MIDI file: the choir's
// reveals on one channel, the player's notes on another, and markers for
// completed and failed sequences.
package record

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/vovakirdan/tui-choir/internal/core"
	"github.com/vovakirdan/tui-choir/internal/sequence"
)

const (
	ticksPerQuarter = 960
	tempoBPM        = 120

	choirChannel  = 0
	playerChannel = 1

	choirProgram  = 52 // General MIDI "Choir Aahs"
	playerProgram = 0  // Acoustic Grand Piano

	velocity = 100
)

// ticksPerSecond at tempoBPM.
const ticksPerSecond = ticksPerQuarter * tempoBPM / 60

type event struct {
	tick  uint32
	order int
	msg   []byte
}

// Recorder collects cues with their wall-clock offsets and writes them as
// MIDI on Close. It satisfies audio.Player.
type Recorder struct {
	path  string
	now   func() time.Time
	start time.Time

	mu     sync.Mutex
	events []event
	closed bool
}

// NewRecorder creates a recorder writing to path.
func NewRecorder(path string) *Recorder {
	return newRecorder(path, time.Now)
}

func newRecorder(path string, now func() time.Time) *Recorder {
	return &Recorder{path: path, now: now, start: now()}
}

// Play records a cue at the current time.
func (r *Recorder) Play(cue core.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	at := ticksAt(r.now().Sub(r.start))
	switch cue.Kind {
	case core.CueChoir:
		r.note(at, choirChannel, cue.Pitch, ticksPerQuarter)
	case core.CueNote:
		r.note(at, playerChannel, cue.Pitch, ticksPerQuarter/2)
	case core.CueCorrect:
		r.add(at, smf.MetaMarker("correct"))
	case core.CueWrong:
		r.add(at, smf.MetaMarker("wrong"))
	}
}

func (r *Recorder) note(at uint32, channel uint8, pitch int, length uint32) {
	p := sequence.Pitch(pitch)
	if !p.Valid() {
		return
	}
	r.add(at, midi.NoteOn(channel, p.MIDIKey(), velocity))
	r.add(at+length, midi.NoteOff(channel, p.MIDIKey()))
}

func (r *Recorder) add(tick uint32, msg []byte) {
	r.events = append(r.events, event{tick: tick, order: len(r.events), msg: msg})
}

// Len returns the number of recorded MIDI events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Close writes the MIDI file. Closing twice is a no-op.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	if err := r.build().WriteFile(r.path); err != nil {
		return fmt.Errorf("record: cannot write %s: %w", r.path, err)
	}
	return nil
}

func (r *Recorder) build() *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("choir session"))
	tr.Add(0, smf.MetaTempo(tempoBPM))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, midi.ProgramChange(choirChannel, choirProgram))
	tr.Add(0, midi.ProgramChange(playerChannel, playerProgram))

	events := make([]event, len(r.events))
	copy(events, r.events)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].order < events[j].order
	})

	var last uint32
	for _, ev := range events {
		tr.Add(ev.tick-last, ev.msg)
		last = ev.tick
	}
	tr.Close(0)

	s.Add(tr)
	return s
}

func ticksAt(d time.Duration) uint32 {
	if d < 0 {
		return 0
	}
	return uint32(d.Seconds() * ticksPerSecond)
}
