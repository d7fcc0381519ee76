package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/beer-arcade/internal/core"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("runner", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("pour", 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	pourScores, err := store.TopScores("pour", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(pourScores) != 1 {
		t.Errorf("Expected 1 pour score, got %d", len(pourScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("runner", (i+1)*100)
	}

	scores, err := store.TopScores("runner", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pour")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("pour", 4)
	store.SaveScore("pour", 9)
	store.SaveScore("pour", 7)

	high, err = store.HighScore("pour")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("Expected high score of 9, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("runner", 100)
	store.SaveRun("runner", core.RunSummary{Score: 100})
	store.SaveScore("pour", 3)

	if err := store.ClearScores("runner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("runner", 10); len(scores) != 0 {
		t.Errorf("Expected 0 runner scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("runner", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runner runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("pour", 10); len(scores) != 1 {
		t.Errorf("Pour scores should not be affected by clearing runner")
	}
}

func TestStoreBestScores(t *testing.T) {
	store := openTestStore(t)

	v, err := store.Get("runnerBest")
	if err != nil || v != 0 {
		t.Fatalf("Get() on empty store = %d, %v; want 0, nil", v, err)
	}

	if err := store.Set("runnerBest", 42); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("runnerBest", 17); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	if v, _ := store.Get("runnerBest"); v != 17 {
		t.Errorf("Get() = %d after overwrite, want 17", v)
	}

	// UpdateBest only writes improvements.
	best, err := core.UpdateBest(store, "pourBest", 5)
	if err != nil || best != 5 {
		t.Fatalf("UpdateBest() = %d, %v", best, err)
	}
	best, _ = core.UpdateBest(store, "pourBest", 3)
	if best != 5 {
		t.Errorf("UpdateBest() lowered best to %d", best)
	}
}

func TestStoreBestPersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Set("pourBest", 11)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if v, _ := store.Get("pourBest"); v != 11 {
		t.Errorf("Get() after reopen = %d, want 11", v)
	}
}

func TestStoreRunsAndStats(t *testing.T) {
	store := openTestStore(t)

	runs := []core.RunSummary{
		{Score: 4, MaxTier: "tipsy", BestCombo: 2, Duration: 30 * time.Second, EndReason: "time"},
		{Score: 9, MaxTier: "drunk", BestCombo: 6, Duration: 25 * time.Second, EndReason: "time"},
		{Score: 2, MaxTier: "tipsy", BestCombo: 1, Duration: 1500 * time.Millisecond, EndReason: "time"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("pour", r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("pour", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 2 || recent[1].Score != 9 {
		t.Fatalf("RecentRuns() = %+v", recent)
	}
	if recent[0].Duration != 1500*time.Millisecond || recent[1].MaxTier != "drunk" {
		t.Errorf("run fields not round-tripped: %+v", recent)
	}

	stats, err := store.GetGameStats("pour")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 9 || stats.TotalScore != 15 || stats.BestCombo != 6 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalTime != 56500*time.Millisecond {
		t.Errorf("TotalTime = %v", stats.TotalTime)
	}

	counts, err := store.TierCounts("pour")
	if err != nil {
		t.Fatalf("TierCounts() failed: %v", err)
	}
	if counts["tipsy"] != 2 || counts["drunk"] != 1 {
		t.Errorf("TierCounts() = %v", counts)
	}
}

func TestStoreEmptyStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("stats for unplayed game = %+v", stats)
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
