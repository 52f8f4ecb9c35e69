package sequence

import (
	"testing"
	"time"
)

func TestPlaybackRevealsInOrder(t *testing.T) {
	s := Of(MidHigh, Low, High, MidLow)
	p := NewPlayback(1500 * time.Millisecond)

	var revealed []Pitch
	for i := 0; i < Length; i++ {
		pitch, r := p.Advance(&s, 1500*time.Millisecond)
		if r != RevealNote {
			t.Fatalf("reveal %d: got %v, want RevealNote", i, r)
		}
		if !s[i].Played {
			t.Fatalf("reveal %d: slot %d not marked played", i, i)
		}
		revealed = append(revealed, pitch)
	}

	want := []Pitch{MidHigh, Low, High, MidLow}
	for i := range want {
		if revealed[i] != want[i] {
			t.Errorf("reveal %d = %s, want %s", i, revealed[i], want[i])
		}
	}

	if _, r := p.Advance(&s, 1500*time.Millisecond); r != RevealDone {
		t.Errorf("fifth fire = %v, want RevealDone", r)
	}
}

func TestPlaybackFiresAtMostOncePerCall(t *testing.T) {
	s := Ascending()
	p := NewPlayback(time.Second)

	if _, r := p.Advance(&s, 10*time.Second); r != RevealNote {
		t.Fatalf("large step = %v, want RevealNote", r)
	}
	if p.Elapsed() != 0 {
		t.Errorf("accumulator should reset after firing, got %v", p.Elapsed())
	}
	if s[1].Played {
		t.Error("a single call must reveal at most one slot")
	}
}

func TestPlaybackFrameSteps(t *testing.T) {
	s := Ascending()
	p := NewPlayback(1500 * time.Millisecond)
	frame := time.Second / 60

	reveals, done := 0, false
	// 4 intervals plus one more to observe the end signal.
	for i := 0; i < 60*8; i++ {
		_, r := p.Advance(&s, frame)
		switch r {
		case RevealNote:
			if done {
				t.Fatal("RevealNote after RevealDone")
			}
			reveals++
		case RevealDone:
			done = true
		}
	}

	if reveals != Length {
		t.Errorf("reveals = %d, want %d", reveals, Length)
	}
	if !done {
		t.Error("expected RevealDone after the last reveal")
	}
}

func TestPlaybackBelowThreshold(t *testing.T) {
	s := Ascending()
	p := NewPlayback(time.Second)

	if _, r := p.Advance(&s, 999*time.Millisecond); r != RevealNone {
		t.Errorf("below threshold = %v, want RevealNone", r)
	}
	if _, r := p.Advance(&s, -time.Second); r != RevealNone {
		t.Errorf("negative elapsed = %v, want RevealNone", r)
	}
	if _, r := p.Advance(&s, time.Millisecond); r != RevealNote {
		t.Errorf("crossing threshold = %v, want RevealNote", r)
	}

	p.Advance(&s, 500*time.Millisecond)
	p.Restart()
	if p.Elapsed() != 0 {
		t.Errorf("Restart should zero the accumulator, got %v", p.Elapsed())
	}
}

func TestPlaybackRestartsAfterReplay(t *testing.T) {
	s := Ascending()
	p := NewPlayback(time.Second)
	for i := 0; i <= Length; i++ {
		p.Advance(&s, time.Second)
	}

	s.Replay()
	pitch, r := p.Advance(&s, time.Second)
	if r != RevealNote || pitch != Low {
		t.Errorf("after Replay got %s/%v, want C/RevealNote", pitch, r)
	}
}
