package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/vovakirdan/tui-choir/internal/config"
	"github.com/vovakirdan/tui-choir/internal/core"
	"github.com/vovakirdan/tui-choir/internal/sequence"
)

// Sample file names looked up in audio.samples_dir, indexed by pitch.
var (
	noteSampleFiles  = [sequence.PitchCount]string{"C.wav", "E.wav", "G.wav", "Ch.wav"}
	choirSampleFiles = [sequence.PitchCount]string{"CC.wav", "EC.wav", "GC.wav", "ChC.wav"}
)

const (
	correctSampleFile = "correctreal.wav"
	wrongSampleFile   = "wrongrealreal.wav"
)

// bank holds every sound the game can make, decoded or synthesized once.
type bank struct {
	format  beep.Format
	notes   [sequence.PitchCount]*beep.Buffer
	choir   [sequence.PitchCount]*beep.Buffer
	correct *beep.Buffer
	wrong   *beep.Buffer
}

// newBank builds the sound bank. Sounds with a WAV file in cfg.SamplesDir use
// the file; everything else is synthesized.
func newBank(cfg config.AudioConfig, logger *log.Logger) *bank {
	rate := beep.SampleRate(cfg.SampleRate)
	b := &bank{format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}}

	load := func(name string, synth func() beep.Streamer) *beep.Buffer {
		if cfg.SamplesDir != "" {
			buf, err := loadWAV(filepath.Join(cfg.SamplesDir, name), b.format)
			if err == nil {
				return buf
			}
			if !errors.Is(err, os.ErrNotExist) {
				logger.Warn("could not load sample, synthesizing instead", "file", name, "error", err)
			}
		}
		buf := beep.NewBuffer(b.format)
		buf.Append(synth())
		return buf
	}

	for _, p := range sequence.Pitches {
		freq := p.Frequency()
		b.notes[p] = load(noteSampleFiles[p], func() beep.Streamer {
			return tone(rate, freq, cfg.NoteLength, 10*time.Millisecond, playerTimbre)
		})
		b.choir[p] = load(choirSampleFiles[p], func() beep.Streamer {
			return tone(rate, freq, cfg.ChoirLength, 120*time.Millisecond, choirTimbre)
		})
	}

	half := cfg.JingleLength / 2
	b.correct = load(correctSampleFile, func() beep.Streamer {
		return beep.Seq(
			tone(rate, sequence.MidHigh.Frequency(), half, 5*time.Millisecond, playerTimbre),
			tone(rate, sequence.High.Frequency(), half, 5*time.Millisecond, playerTimbre),
		)
	})
	b.wrong = load(wrongSampleFile, func() beep.Streamer {
		low := sequence.Low.Frequency() / 2
		return beep.Mix(
			tone(rate, low, cfg.JingleLength, 5*time.Millisecond, playerTimbre),
			tone(rate, low*1.06, cfg.JingleLength, 5*time.Millisecond, playerTimbre),
		)
	})

	return b
}

// loadWAV decodes a WAV file into a buffer at the bank's sample rate.
func loadWAV(path string, format beep.Format) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != format.SampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, format.SampleRate, s)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	return buf, nil
}

// streamer returns a fresh streamer for a cue.
func (b *bank) streamer(cue core.Cue) beep.Streamer {
	var buf *beep.Buffer
	switch cue.Kind {
	case core.CueNote:
		if p := sequence.Pitch(cue.Pitch); p.Valid() {
			buf = b.notes[p]
		}
	case core.CueChoir:
		if p := sequence.Pitch(cue.Pitch); p.Valid() {
			buf = b.choir[p]
		}
	case core.CueCorrect:
		buf = b.correct
	case core.CueWrong:
		buf = b.wrong
	}
	if buf == nil {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}
