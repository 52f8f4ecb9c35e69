package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-choir/internal/audio"
	"github.com/vovakirdan/tui-choir/internal/core"
	"github.com/vovakirdan/tui-choir/internal/games/choir"
	"github.com/vovakirdan/tui-choir/internal/storage"
)

// scriptedGame replays a fixed result every step and records its inputs.
type scriptedGame struct {
	resets  int
	resizes int
	inputs  []core.InputFrame
	result  core.StepResult
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState    { return g.result.State }
func (g *scriptedGame) Resize(int, int)          { g.resizes++ }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return g.result
}

func testOptions(t *testing.T) (Options, *audio.Recorder) {
	t.Helper()
	rec := &audio.Recorder{}
	return Options{
		Audio:         rec,
		Logger:        log.New(os.Stderr),
		Player:        "tenor",
		ScreenshotDir: t.TempDir(),
	}, rec
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelForwardsInputAndCues(t *testing.T) {
	game := &scriptedGame{result: core.StepResult{Cues: []core.Cue{{Kind: core.CueChoir, Pitch: 2}}}}
	opts, rec := testOptions(t)
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	m.Init()

	m = press(t, m, runeKey('a'))
	m = tick(t, m)
	m = tick(t, m)

	if game.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", game.resets)
	}
	if len(game.inputs) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionNoteMidLow) {
		t.Error("first step missing the pressed note")
	}
	if game.inputs[1].Has(core.ActionNoteMidLow) {
		t.Error("input not cleared between ticks")
	}
	if cues := rec.Cues(); len(cues) != 2 || cues[0].Kind != core.CueChoir || cues[0].Pitch != 2 {
		t.Errorf("cues = %v, expected two choir cues on pitch 2", cues)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{result: core.StepResult{State: core.GameState{
		Score: 5, Rounds: 5, Mistakes: 3, GameOver: true,
	}}}
	opts, _ := testOptions(t)
	opts.Store = store
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)

	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}

	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if got := scores[0]; got.Score != 5 || got.Rounds != 5 || got.Mistakes != 3 || got.Player != "tenor" {
		t.Errorf("saved %+v", got)
	}

	// Restart clears the saved flag for the next game.
	m = press(t, m, runeKey('r'))
	m = tick(t, m)
	if game.resets != 1 {
		t.Errorf("restart should reset the game, resets = %d", game.resets)
	}
	m = tick(t, m)
	if scores, _ := store.AllScores("scripted"); len(scores) != 2 {
		t.Errorf("expected a second save after restart, got %d", len(scores))
	}
}

func openModelStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelSavesEndlessScoreOnQuit(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "choir.yaml")
	if err := os.WriteFile(cfgPath, []byte("gameplay:\n  opening_scale: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	choir.SetConfigPath(cfgPath)
	t.Cleanup(func() { choir.SetConfigPath("") })

	store := openModelStore(t)
	opts, _ := testOptions(t)
	opts.Store = store
	m := NewModel(choir.NewEndless(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	m.Init()

	// The opening sequence is C E G C', sung on s a d w.
	for _, r := range "sadw" {
		m = press(t, m, runeKey(r))
		m = tick(t, m)
	}
	if st := m.GameState(); st.Score != 1 || st.GameOver {
		t.Fatalf("state after one round = %+v, expected score 1 and still playing", st)
	}

	m = press(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	m = press(t, m, runeKey('q'))

	scores, err := store.AllScores("choir_endless")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d endless scores, expected 1", len(scores))
	}
	if scores[0].Score != 1 || scores[0].Rounds != 1 {
		t.Errorf("saved %+v", scores[0])
	}
}

func TestModelSavesOnBackToMenu(t *testing.T) {
	store := openModelStore(t)
	game := &scriptedGame{result: core.StepResult{State: core.GameState{Score: 3, Rounds: 3, Paused: true}}}
	opts, _ := testOptions(t)
	opts.Store = store
	opts.InSession = true
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, opts)
	m = tick(t, m)

	m = press(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Fatal("back should leave a paused game")
	}
	m = press(t, m, runeKey('q'))

	if scores, _ := store.AllScores("scripted"); len(scores) != 1 {
		t.Errorf("saved %d scores, expected exactly 1", len(scores))
	}
}

func TestModelQuitWithoutScoreSavesNothing(t *testing.T) {
	store := openModelStore(t)
	game := &scriptedGame{}
	opts, _ := testOptions(t)
	opts.Store = store
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, opts)
	m = tick(t, m)
	m = press(t, m, runeKey('q'))

	if scores, _ := store.AllScores("scripted"); len(scores) != 0 {
		t.Errorf("saved %d scores for an empty game", len(scores))
	}
}

func TestModelResizeKeepsProgress(t *testing.T) {
	game := &scriptedGame{}
	opts, _ := testOptions(t)
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, opts)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if game.resizes != 1 || game.resets != 0 {
		t.Errorf("resizes=%d resets=%d, expected the game to be resized in place", game.resizes, game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackToMenu(t *testing.T) {
	game := &scriptedGame{}
	opts, _ := testOptions(t)
	opts.InSession = true
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, opts)
	m = tick(t, m)

	m = press(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	game.result.State.Paused = true
	m = tick(t, m)
	m = press(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
}

func TestModelEscUnpausesInSession(t *testing.T) {
	game := &scriptedGame{result: core.StepResult{State: core.GameState{Paused: true}}}
	opts, _ := testOptions(t)
	opts.InSession = true
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, opts)
	m = tick(t, m)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc should toggle pause, not leave the game")
	}
	m = tick(t, m)
	if last := game.inputs[len(game.inputs)-1]; !last.Has(core.ActionPause) {
		t.Error("esc did not reach the game as a pause toggle")
	}
}

func TestModelScreenshot(t *testing.T) {
	game := &scriptedGame{}
	opts, _ := testOptions(t)
	m := NewModel(game, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60}, opts)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(opts.ScreenshotDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one screenshot, got %v (err %v)", entries, err)
	}
	data, err := os.ReadFile(filepath.Join(opts.ScreenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if string(data[:8]) != "scripted" {
		t.Errorf("screenshot starts with %q", data[:8])
	}
}
