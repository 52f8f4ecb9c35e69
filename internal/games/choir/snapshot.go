package choir

import (
	"time"

	"github.com/vovakirdan/tui-choir/internal/sequence"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateListening   GameStateType = "listening" // Choir is revealing the sequence
	StateSinging     GameStateType = "singing"   // Choir finished, waiting for the player
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Mode           string
	Score          int
	Rounds         int
	Mistakes       int
	Sequence       [sequence.Length]sequence.Pitch
	Played         int // Slots revealed by the choir
	Matched        int // Slots the player has matched
	RevealInterval time.Duration
	Feedback       Feedback
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateSinging
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.playing:
		state = StateListening
	}

	played := 0
	for _, s := range g.seq {
		if s.Played {
			played++
		}
	}

	return Snapshot{
		Tick:           g.tick,
		Mode:           g.mode.String(),
		Score:          g.score,
		Rounds:         g.rounds,
		Mistakes:       g.mistakes,
		Sequence:       g.seq.Pitches(),
		Played:         played,
		Matched:        g.seq.MatchedCount(),
		RevealInterval: g.playback.Interval(),
		Feedback:       g.feedback,
		State:          state,
	}
}
