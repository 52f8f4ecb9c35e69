package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// partial is one sine component of a synthesized voice.
type partial struct {
	ratio float64 // frequency multiple of the fundamental
	gain  float64
}

var (
	// Player voice: bright, a little reedy.
	playerTimbre = []partial{{1, 0.6}, {2, 0.2}, {3, 0.1}}
	// Choir voice: fundamental, octave and a slightly detuned unison.
	choirTimbre = []partial{{1, 0.4}, {1.003, 0.25}, {2, 0.15}, {0.5, 0.1}}
)

// tone returns a finite streamer of a note with a linear attack and release.
func tone(rate beep.SampleRate, freq float64, length, attack time.Duration, timbre []partial) beep.Streamer {
	total := rate.N(length)
	rise := rate.N(attack)
	fall := total / 4
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			t := float64(pos) / float64(rate)
			var v float64
			for _, p := range timbre {
				v += p.gain * math.Sin(2*math.Pi*freq*p.ratio*t)
			}
			v *= envelope(pos, total, rise, fall)
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}

// envelope is 0..1 over a note: linear attack, sustain, linear release.
func envelope(pos, total, rise, fall int) float64 {
	switch {
	case rise > 0 && pos < rise:
		return float64(pos) / float64(rise)
	case fall > 0 && pos >= total-fall:
		return float64(total-pos) / float64(fall)
	default:
		return 1
	}
}
