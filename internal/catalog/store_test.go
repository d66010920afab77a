package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crtracker/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "episodes.csv"), logging.NewNop())
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for missing catalog")
	} else if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	snap := NewSnapshot()
	snap.Episodes = []*Episode{
		{
			EpisodeID:     "Main Campaign|Campaign Three: Bells Hells|96|Shadows of Ruidus",
			ShowType:      "Main Campaign",
			Campaign:      "Campaign Three: Bells Hells",
			EpisodeNumber: "96",
			Title:         "Shadows of Ruidus",
			Airdate:       "2024-07-11",
		},
		{
			EpisodeID:     "Talk Show|Campaign 3|95|4-Sided Dive",
			ShowType:      "Talk Show",
			Campaign:      "Campaign 3",
			EpisodeNumber: "95",
			Title:         "4-Sided Dive",
			Airdate:       "2024-07-02",
		},
	}
	if err := store.Save(snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Episodes) != 2 {
		t.Fatalf("loaded %d episodes, want 2", len(loaded.Episodes))
	}
	// Save sorts by airdate, so the talk show comes first.
	if loaded.Episodes[0].Title != "4-Sided Dive" {
		t.Errorf("first episode = %q, want 4-Sided Dive", loaded.Episodes[0].Title)
	}
	if loaded.Episodes[1].Campaign != "Campaign Three: Bells Hells" {
		t.Errorf("campaign not preserved: %q", loaded.Episodes[1].Campaign)
	}
}

func TestUnknownColumnsSurviveRoundTrip(t *testing.T) {
	store := newTestStore(t)
	content := "episode_id,title,airdate,my_rating\n" +
		"Special|One-Shot||Honey Heist,Honey Heist,2017-11-20,5 stars\n"
	if err := os.WriteFile(store.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := snap.Episodes[0].Extra["my_rating"]; got != "5 stars" {
		t.Fatalf("extra column = %q, want %q", got, "5 stars")
	}
	if err := store.Save(snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "my_rating") {
		t.Error("header lost the unknown column")
	}
	if !strings.Contains(out, "5 stars") {
		t.Error("unknown column value lost")
	}
}

func TestMalformedRowsPreserved(t *testing.T) {
	store := newTestStore(t)
	content := "episode_id,title,airdate\n" +
		",Missing ID,2024-01-01\n" +
		"Special|||Good Row,Good Row,2024-01-02\n"
	if err := os.WriteFile(store.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Episodes) != 2 {
		t.Fatalf("loaded %d rows, want 2", len(snap.Episodes))
	}
	if snap.Episodes[0].Valid() {
		t.Error("row without episode_id should be invalid")
	}
	if err := store.Save(snap); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(loaded.Episodes) != 2 {
		t.Errorf("malformed row dropped on save: %d rows", len(loaded.Episodes))
	}
}

func TestSortEpisodesEmptyDatesLast(t *testing.T) {
	episodes := []*Episode{
		{EpisodeID: "a", Title: "a", Airdate: ""},
		{EpisodeID: "b", Title: "b", Airdate: "2024-03-01"},
		{EpisodeID: "c", Title: "c", Airdate: "Forthcoming"},
		{EpisodeID: "d", Title: "d", Airdate: "2023-12-25"},
	}
	SortEpisodes(episodes)

	var order []string
	for _, ep := range episodes {
		order = append(order, ep.EpisodeID)
	}
	want := "d b a c"
	if got := strings.Join(order, " "); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestAcquireRejectsSecondLock(t *testing.T) {
	store := newTestStore(t)
	if err := store.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer store.Release()

	other := NewStore(store.Path(), logging.NewNop())
	if err := other.Acquire(); err == nil {
		other.Release()
		t.Fatal("second Acquire should fail while lock is held")
	}
}
