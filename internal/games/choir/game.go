// Package choir implements the choir memory game.
// A choir sings a hidden four-note sequence one note at a time and the
// player sings it back on four keys. A wrong note sends the player back to
// the first note of the same sequence; a completed sequence scores and a
// new one is drawn.
package choir

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-choir/internal/config"
	"github.com/vovakirdan/tui-choir/internal/core"
	"github.com/vovakirdan/tui-choir/internal/registry"
	"github.com/vovakirdan/tui-choir/internal/sequence"
)

// Minimum terminal size needed to draw the stage.
const (
	MinScreenW = 44
	MinScreenH = 20
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic GameMode = iota // Limited mistakes, game over when exhausted
	ModeEndless                 // Mistakes only restart the sequence
)

func (m GameMode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "classic"
}

// Feedback is the banner shown after a round resolves.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game holds the choir game state.
type Game struct {
	mode GameMode

	cfg        config.ChoirConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	dt         time.Duration

	seq      sequence.Sequence
	playback *sequence.Playback
	playing  bool // Choir is still revealing the current sequence

	score    int
	mistakes int
	rounds   int
	tick     uint64

	// Presentation state, advanced by Step so Render stays pure.
	choirPhase   float64 // [0,1), advances while the choir sings
	singerPhase  float64 // [0,1), advances while singerSway > 0
	singerSway   time.Duration
	litPitch     sequence.Pitch
	litBy        core.CueKind
	litLeft      time.Duration
	feedback     Feedback
	feedbackLeft time.Duration

	screenW, screenH int
	tooSmall         bool
	gameOver         bool
	paused           bool
}

// New creates a classic-mode choir game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless-mode choir game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "choir_endless"
	}
	return "choir"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Choir (Endless)"
	}
	return "Choir"
}

// Mode returns the game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	choirCfg, err := config.LoadChoir(configPath)
	if err != nil {
		choirCfg = config.DefaultChoirConfig()
	}
	config.ApplyChoirPreset(&choirCfg, difficultyPreset)
	g.resetWith(cfg, choirCfg)
}

// resetWith starts a game from an already loaded config.
func (g *Game) resetWith(cfg core.RuntimeConfig, choirCfg config.ChoirConfig) {
	g.cfg = choirCfg
	g.difficulty = config.NewDifficultyManager(choirCfg.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.dt = cfg.TickDuration()

	g.score = 0
	g.mistakes = 0
	g.rounds = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false

	g.choirPhase = 0
	g.singerPhase = 0
	g.singerSway = 0
	g.litLeft = 0
	g.feedback = FeedbackNone
	g.feedbackLeft = 0

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if choirCfg.Gameplay.OpeningScale {
		g.seq = sequence.Ascending()
	} else {
		g.seq = sequence.Random(g.rng)
	}
	g.playback = sequence.NewPlayback(g.revealInterval())
	g.playing = true
}

// Resize updates the stage dimensions without touching game progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH
}

// revealInterval is the base interval scaled by the current difficulty.
func (g *Game) revealInterval() time.Duration {
	return g.difficulty.RevealInterval(
		g.cfg.Timing.RevealInterval,
		g.cfg.Timing.MinRevealInterval,
		g.score,
		int(g.tick),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	var cues []core.Cue

	g.animate()

	for i, action := range core.NoteActions {
		if in.Has(action) {
			cues = g.sing(sequence.Pitch(i), cues)
			if g.gameOver {
				return core.StepResult{State: g.State(), Cues: cues}
			}
		}
	}

	if in.Has(core.ActionReplay) {
		g.replay()
	}

	if g.playing {
		p, reveal := g.playback.Advance(&g.seq, g.dt)
		switch reveal {
		case sequence.RevealNote:
			cues = append(cues, core.Cue{Kind: core.CueChoir, Pitch: int(p)})
			g.light(p, core.CueChoir)
		case sequence.RevealDone:
			g.playing = false
		}
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// sing submits one player note and resolves the round if it ends.
func (g *Game) sing(p sequence.Pitch, cues []core.Cue) []core.Cue {
	cues = append(cues, core.Cue{Kind: core.CueNote, Pitch: int(p)})
	g.light(p, core.CueNote)
	g.singerSway = g.cfg.Timing.WobblePeriod

	switch g.seq.Submit(p) {
	case sequence.Mismatch:
		cues = append(cues, core.Cue{Kind: core.CueWrong})
		g.showFeedback(FeedbackWrong)
		g.mistakes++
		if g.mode == ModeClassic && g.cfg.Gameplay.MaxMistakes > 0 &&
			g.mistakes >= g.cfg.Gameplay.MaxMistakes {
			g.gameOver = true
			g.playing = false
		}
		// Submit has already cleared the matched flags. The choir keeps
		// its place; the replay key asks it to sing again.

	case sequence.Matched:
		if !g.seq.IsComplete() {
			return cues
		}
		cues = append(cues, core.Cue{Kind: core.CueCorrect})
		g.showFeedback(FeedbackCorrect)
		g.score += g.cfg.Gameplay.PointsPerRound
		g.rounds++
		g.seq.Regenerate(g.rng)
		g.playback.SetInterval(g.revealInterval())
		g.playing = true
		g.playback.Restart()

	case sequence.AlreadyComplete:
		// A completed sequence is regenerated immediately, so this only
		// happens if the sequence was never replaced.
	}
	return cues
}

// replay starts the choir over on the current sequence.
func (g *Game) replay() {
	g.seq.Replay()
	g.playing = true
	g.playback.Restart()
}

func (g *Game) light(p sequence.Pitch, by core.CueKind) {
	g.litPitch = p
	g.litBy = by
	g.litLeft = g.cfg.Timing.FeedbackDuration / 2
}

func (g *Game) showFeedback(f Feedback) {
	g.feedback = f
	g.feedbackLeft = g.cfg.Timing.FeedbackDuration
}

// animate advances the sway phases and decays the highlights by one tick.
func (g *Game) animate() {
	period := g.cfg.Timing.WobblePeriod
	if period <= 0 {
		period = time.Second
	}
	step := float64(g.dt) / float64(period)

	if g.playing {
		g.choirPhase = wrapPhase(g.choirPhase + step)
	}
	if g.singerSway > 0 {
		g.singerPhase = wrapPhase(g.singerPhase + step)
		g.singerSway -= g.dt
		if g.singerSway <= 0 {
			g.singerSway = 0
			g.singerPhase = 0
		}
	}
	if g.litLeft > 0 {
		g.litLeft -= g.dt
	}
	if g.feedbackLeft > 0 {
		g.feedbackLeft -= g.dt
		if g.feedbackLeft <= 0 {
			g.feedback = FeedbackNone
		}
	}
}

func wrapPhase(p float64) float64 {
	for p >= 1 {
		p--
	}
	return p
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Rounds:   g.rounds,
		Mistakes: g.mistakes,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

func init() {
	registry.Register("choir", func() registry.Game {
		return New()
	})
	registry.Register("choir_endless", func() registry.Game {
		return NewEndless()
	})
}
