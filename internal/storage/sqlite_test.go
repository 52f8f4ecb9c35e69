package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(Result{GameID: gameID, Score: score, Rounds: score}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore(Result{
		GameID:   "choir",
		Player:   "alto",
		Score:    7,
		Rounds:   7,
		Mistakes: 2,
		Duration: 95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveScore() id = %d, expected positive", id)
	}
	save(t, store, "choir", 3)
	save(t, store, "choir", 12)
	save(t, store, "choir_endless", 40)

	scores, err := store.TopScores("choir", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{12, 7, 3}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}

	got := scores[1]
	if got.Player != "alto" || got.Rounds != 7 || got.Mistakes != 2 || got.Duration != 95*time.Second {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	endless, err := store.TopScores("choir_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(Result{Score: 1}); err == nil {
		t.Error("expected an error for a result without a game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "choir", i+1)
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"top three", 3, 3},
		{"more than stored", 50, 5},
		{"zero means default", 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores("choir", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tt.want {
				t.Errorf("got %d scores, expected %d", len(scores), tt.want)
			}
			if scores[0].Score != 5 {
				t.Errorf("top score = %d, expected 5", scores[0].Score)
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("choir")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "choir", 4)
	save(t, store, "choir", 9)
	save(t, store, "choir", 6)

	high, err = store.HighScore("choir")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("Expected high score of 9, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "choir", 1)
	save(t, store, "choir", 2)
	save(t, store, "choir_endless", 3)

	if err := store.ClearScores("choir"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("choir", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 choir scores after clear, got %d", len(classic))
	}

	endless, _ := store.TopScores("choir_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing choir")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, "choir", i)
	}

	scores, err := store.AllScores("choir")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("choir")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.GameID != "choir" {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(Result{GameID: "choir", Score: 2, Rounds: 2, Mistakes: 3, Duration: time.Minute})
	store.SaveScore(Result{GameID: "choir", Score: 6, Rounds: 6, Mistakes: 1, Duration: 2 * time.Minute})
	store.SaveScore(Result{GameID: "choir_endless", Score: 10, Rounds: 10})

	stats, err := store.GetGameStats("choir")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 6 || stats.AvgScore != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalRounds != 8 || stats.TotalMistakes != 4 || stats.LongestGame != 2*time.Minute {
		t.Errorf("totals = %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["choir_endless"].HighScore != 10 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
