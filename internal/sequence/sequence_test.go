package sequence

import (
	"math"
	"math/rand"
	"testing"
)

func TestSubmitScenario(t *testing.T) {
	s := Of(Low, MidLow, MidHigh, High)

	steps := []struct {
		pitch   Pitch
		outcome Outcome
		matched int
	}{
		{Low, Matched, 1},
		{MidHigh, Mismatch, 0},
		{Low, Matched, 1},
		{MidLow, Matched, 2},
		{MidHigh, Matched, 3},
		{High, Matched, 4},
		{Low, AlreadyComplete, 4},
	}

	for i, step := range steps {
		got := s.Submit(step.pitch)
		if got != step.outcome {
			t.Fatalf("step %d: Submit(%s) = %s, want %s", i, step.pitch, got, step.outcome)
		}
		if s.MatchedCount() != step.matched {
			t.Fatalf("step %d: MatchedCount() = %d, want %d", i, s.MatchedCount(), step.matched)
		}
	}

	if !s.IsComplete() {
		t.Error("IsComplete() should be true after all four matches")
	}
}

func TestSubmitCorrectMarksOnlyFirstUnmatched(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		s := Random(rng)
		prefix := rng.Intn(Length)
		for i := 0; i < prefix; i++ {
			s[i].Matched = true
		}
		before := s

		if got := s.Submit(s[prefix].Pitch); got != Matched {
			t.Fatalf("trial %d: Submit(expected) = %s, want matched", trial, got)
		}

		for i := range s {
			want := before[i]
			if i == prefix {
				want.Matched = true
			}
			if s[i] != want {
				t.Fatalf("trial %d: slot %d = %+v, want %+v", trial, i, s[i], want)
			}
		}
	}
}

func TestSubmitWrongResetsWholeSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 200; trial++ {
		s := Random(rng)
		prefix := rng.Intn(Length)
		for i := 0; i < prefix; i++ {
			s[i].Matched = true
		}
		s[0].Played = true
		wrong := Pitch((int(s[prefix].Pitch) + 1 + rng.Intn(PitchCount-1)) % PitchCount)

		if got := s.Submit(wrong); got != Mismatch {
			t.Fatalf("trial %d: Submit(wrong) = %s, want mismatch", trial, got)
		}
		for i := range s {
			if s[i].Matched {
				t.Fatalf("trial %d: slot %d still matched after mismatch", trial, i)
			}
		}
		if !s[0].Played {
			t.Fatalf("trial %d: mismatch must not touch played flags", trial)
		}
	}
}

func TestSubmitIgnoresLaterSlots(t *testing.T) {
	s := Of(MidLow, Low, Low, Low)

	// Low matches slots 1..3 but the scan stops at slot 0.
	if got := s.Submit(Low); got != Mismatch {
		t.Errorf("Submit(Low) = %s, want mismatch", got)
	}
}

func TestIsComplete(t *testing.T) {
	s := Ascending()
	if s.IsComplete() {
		t.Error("fresh sequence should not be complete")
	}

	for i := 0; i < Length-1; i++ {
		s[i].Matched = true
	}
	if s.IsComplete() {
		t.Error("three matched slots should not be complete")
	}

	s[Length-1].Matched = true
	if !s.IsComplete() {
		t.Error("four matched slots should be complete")
	}

	s.Regenerate(rand.New(rand.NewSource(1)))
	if s.IsComplete() {
		t.Error("regenerated sequence should not be complete")
	}
}

func TestExpected(t *testing.T) {
	s := Of(High, Low, Low, Low)
	if p, ok := s.Expected(); !ok || p != High {
		t.Errorf("Expected() = %s, %v, want C', true", p, ok)
	}

	for i := range s {
		s[i].Matched = true
	}
	if _, ok := s.Expected(); ok {
		t.Error("Expected() on a complete sequence should report !ok")
	}
}

func TestRegenerateClearsFlags(t *testing.T) {
	s := Ascending()
	for i := range s {
		s[i].Played = true
		s[i].Matched = true
	}

	s.Regenerate(rand.New(rand.NewSource(3)))

	for i, slot := range s {
		if slot.Played || slot.Matched {
			t.Errorf("slot %d flags not cleared: %+v", i, slot)
		}
		if !slot.Pitch.Valid() {
			t.Errorf("slot %d has invalid pitch %d", i, slot.Pitch)
		}
	}
}

func TestRegenerateUniform(t *testing.T) {
	const draws = 40000
	rng := rand.New(rand.NewSource(42))
	var counts [Length][PitchCount]int

	for n := 0; n < draws; n++ {
		s := Random(rng)
		for i, slot := range s {
			counts[i][slot.Pitch]++
		}
	}

	expected := float64(draws) / PitchCount
	for i := range counts {
		for p, c := range counts[i] {
			if dev := math.Abs(float64(c)-expected) / expected; dev > 0.05 {
				t.Errorf("slot %d pitch %d drawn %d times, %.1f%% off uniform", i, p, c, dev*100)
			}
		}
	}
}

func TestReplayKeepsPitches(t *testing.T) {
	s := Of(High, MidHigh, MidLow, Low)
	s[0].Played, s[0].Matched = true, true
	s[1].Played = true

	s.Replay()

	if s.Pitches() != [Length]Pitch{High, MidHigh, MidLow, Low} {
		t.Errorf("Replay changed pitches: %v", s.Pitches())
	}
	for i, slot := range s {
		if slot.Played || slot.Matched {
			t.Errorf("slot %d flags not cleared: %+v", i, slot)
		}
	}
}

func TestPitchMIDIAndFrequency(t *testing.T) {
	tests := []struct {
		pitch Pitch
		key   uint8
		freq  float64
	}{
		{Low, 60, 261.63},
		{MidLow, 64, 329.63},
		{MidHigh, 67, 392.00},
		{High, 72, 523.25},
	}

	for _, tc := range tests {
		if tc.pitch.MIDIKey() != tc.key {
			t.Errorf("%s.MIDIKey() = %d, want %d", tc.pitch, tc.pitch.MIDIKey(), tc.key)
		}
		if math.Abs(tc.pitch.Frequency()-tc.freq) > 0.01 {
			t.Errorf("%s.Frequency() = %.2f, want %.2f", tc.pitch, tc.pitch.Frequency(), tc.freq)
		}
	}

	if Pitch(9).Valid() {
		t.Error("Pitch(9) should be invalid")
	}
}
