package audio

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/vovakirdan/tui-choir/internal/config"
	"github.com/vovakirdan/tui-choir/internal/core"
)

var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// initSpeaker initializes the process-wide speaker once. Later calls must
// use the same sample rate.
func initSpeaker(rate beep.SampleRate, bufferSize int) error {
	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, bufferSize)
	})
	if speakerErr != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", speakerErr)
	}
	if rate != speakerRate {
		return fmt.Errorf("audio: speaker already running at %d Hz, cannot switch to %d Hz", speakerRate, rate)
	}
	return nil
}

// Synth plays cues through the system speaker.
// Player notes share one monophonic voice, so a new press cuts the previous
// note; choir and feedback sounds are mixed on top.
type Synth struct {
	bank   *bank
	voice  *voice
	volume float64
	logger *log.Logger
}

// NewSynth builds the sound bank and opens the speaker.
func NewSynth(cfg config.AudioConfig, logger *log.Logger) (*Synth, error) {
	if logger == nil {
		logger = log.Default()
	}

	b := newBank(cfg, logger)
	rate := b.format.SampleRate
	if err := initSpeaker(rate, rate.N(cfg.SpeakerBuffer)); err != nil {
		return nil, err
	}

	s := &Synth{
		bank:   b,
		voice:  &voice{},
		volume: cfg.Volume,
		logger: logger,
	}
	speaker.Play(s.withVolume(s.voice))
	logger.Debug("speaker ready", "rate", int(rate), "samples_dir", cfg.SamplesDir)
	return s, nil
}

func (s *Synth) withVolume(st beep.Streamer) beep.Streamer {
	return &effects.Volume{Streamer: st, Base: 2, Volume: s.volume}
}

// Play starts the sound for a cue without blocking.
func (s *Synth) Play(cue core.Cue) {
	st := s.bank.streamer(cue)
	if st == nil {
		s.logger.Debug("no sound for cue", "kind", cue.Kind, "pitch", cue.Pitch)
		return
	}

	if cue.Kind == core.CueNote {
		speaker.Lock()
		s.voice.current = st
		speaker.Unlock()
		return
	}
	speaker.Play(s.withVolume(st))
}

// Close silences the player voice. The speaker itself stays open for the
// life of the process.
func (s *Synth) Close() error {
	speaker.Lock()
	s.voice.current = nil
	s.voice.closed = true
	speaker.Unlock()
	return nil
}

// voice is a never-ending streamer that plays its current sound, then silence.
// Fields are guarded by speaker.Lock.
type voice struct {
	current beep.Streamer
	closed  bool
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.closed {
		return 0, false
	}
	filled := 0
	if v.current != nil {
		filled, ok = v.current.Stream(samples)
		if !ok {
			v.current = nil
		}
	}
	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (v *voice) Err() error {
	return nil
}
