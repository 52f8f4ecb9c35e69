package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-choir/internal/registry"
	"github.com/vovakirdan/tui-choir/internal/storage"
)

func TestScoreboardSwitchesModes(t *testing.T) {
	store := openModelStore(t)
	for _, r := range []storage.Result{
		{GameID: "choir", Player: "alto", Score: 4, Rounds: 4},
		{GameID: "choir", Player: "bass", Score: 9, Rounds: 9},
		{GameID: "choir_endless", Player: "soprano", Score: 30, Rounds: 30},
	} {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	modes := []registry.GameInfo{
		{ID: "choir", Title: "Choir"},
		{ID: "choir_endless", Title: "Choir (Endless)"},
	}
	m := newScoreboardModel(store, modes, 100, 30)

	if len(m.scores) != 2 || m.scores[0].Player != "bass" {
		t.Fatalf("classic scores = %+v", m.scores)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Player != "soprano" {
		t.Errorf("endless scores = %+v", m.scores)
	}
	if !strings.Contains(m.View(), "soprano") {
		t.Error("view does not show the endless singer")
	}

	// Wraps around in both directions.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if m.current != 0 {
		t.Errorf("current = %d after wrapping forward, expected 0", m.current)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if m.current != 1 {
		t.Errorf("current = %d after wrapping back, expected 1", m.current)
	}

	next, _ = m.Update(runeKey('b'))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("b should go back to the menu")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := newScoreboardModel(nil, []registry.GameInfo{{ID: "choir", Title: "Choir"}}, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("expected the empty notice:\n%s", m.View())
	}
}
