package validate

import (
	"testing"
	"time"

	"crtracker/internal/catalog"
)

var testNow = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func snapWith(episodes ...*catalog.Episode) *catalog.Snapshot {
	snap := catalog.NewSnapshot()
	snap.Episodes = episodes
	return snap
}

func countType(issues []Issue, issueType string) int {
	n := 0
	for _, issue := range issues {
		if issue.Type == issueType {
			n++
		}
	}
	return n
}

func TestCleanCatalogHasNoIssues(t *testing.T) {
	snap := snapWith(&catalog.Episode{
		EpisodeID:     "Main Campaign|Campaign Four|1|The Fall",
		ShowType:      "Main Campaign",
		Campaign:      "Campaign Four",
		EpisodeNumber: "1",
		Title:         "The Fall",
		Airdate:       "2025-10-02",
		VODURL:        "https://www.youtube.com/watch?v=abc",
		Runtime:       "4:02:11",
	})
	if issues := Catalog(snap, testNow); len(issues) != 0 {
		t.Fatalf("clean catalog produced issues: %+v", issues)
	}
}

func TestMissingRequiredFields(t *testing.T) {
	snap := snapWith(&catalog.Episode{Title: "No ID", ShowType: "Special", Airdate: "2024-01-01"})
	issues := RequiredFields(snap)
	if countType(issues, TypeMissingField) != 1 {
		t.Fatalf("issues = %+v, want one missing_field", issues)
	}
	if issues[0].Field != "episode_id" {
		t.Errorf("field = %q", issues[0].Field)
	}
}

func TestForthcomingAirdateAllowed(t *testing.T) {
	snap := snapWith(&catalog.Episode{
		EpisodeID: "x", ShowType: "Special", Title: "Future", Notes: "Forthcoming",
	})
	if issues := RequiredFields(snap); len(issues) != 0 {
		t.Fatalf("forthcoming episode flagged: %+v", issues)
	}
}

func TestDuplicateIDs(t *testing.T) {
	snap := snapWith(
		&catalog.Episode{EpisodeID: "dup", ShowType: "Special", Title: "A", Airdate: "2024-01-01"},
		&catalog.Episode{EpisodeID: "dup", ShowType: "Special", Title: "B", Airdate: "2024-01-02"},
	)
	issues := Duplicates(snap)
	if len(issues) != 1 {
		t.Fatalf("issues = %+v, want one duplicate", issues)
	}
	if !HasCritical(issues) {
		t.Error("duplicates should be critical")
	}
}

func TestDateChecks(t *testing.T) {
	snap := snapWith(
		&catalog.Episode{EpisodeID: "a", ShowType: "Special", Title: "Bad", Airdate: "Jan 5, 2024"},
		&catalog.Episode{EpisodeID: "b", ShowType: "Special", Title: "Old", Airdate: "2012-01-01"},
		&catalog.Episode{EpisodeID: "c", ShowType: "Special", Title: "Fine", Airdate: "2024-01-05"},
	)
	issues := Dates(snap)
	if countType(issues, TypeInvalidDate) != 1 {
		t.Errorf("invalid_date count wrong: %+v", issues)
	}
	if countType(issues, TypeSuspiciousDate) != 1 {
		t.Errorf("suspicious_date count wrong: %+v", issues)
	}
}

func TestURLChecks(t *testing.T) {
	snap := snapWith(&catalog.Episode{
		EpisodeID: "a", ShowType: "Special", Title: "Bad Link", Airdate: "2024-01-01",
		VODURL: "not a url",
	})
	if countType(URLs(snap), TypeInvalidURL) != 1 {
		t.Error("malformed vod_url not flagged")
	}
}

func TestEpisodeNumberRequiredForNumberedSeries(t *testing.T) {
	snap := snapWith(
		&catalog.Episode{EpisodeID: "a", ShowType: "Main Campaign", Title: "No Number", Airdate: "2024-01-01"},
		&catalog.Episode{EpisodeID: "b", ShowType: "Special", Title: "One-Shot", Airdate: "2024-01-01"},
	)
	issues := EpisodeNumbers(snap)
	if len(issues) != 1 || issues[0].Title != "No Number" {
		t.Fatalf("issues = %+v", issues)
	}
}

func TestRuntimeFormat(t *testing.T) {
	snap := snapWith(
		&catalog.Episode{EpisodeID: "a", ShowType: "Special", Title: "Bad", Airdate: "2024-01-01", Runtime: "four hours"},
		&catalog.Episode{EpisodeID: "b", ShowType: "Special", Title: "Short", Airdate: "2024-01-01", Runtime: "45:30"},
	)
	issues := Runtimes(snap)
	if len(issues) != 1 || issues[0].Title != "Bad" {
		t.Fatalf("issues = %+v", issues)
	}
}

func TestMissingVODAndRuntimeOnlyForAired(t *testing.T) {
	snap := snapWith(
		&catalog.Episode{
			EpisodeID: "aired", ShowType: "Main Campaign", EpisodeNumber: "1",
			Title: "Aired", Airdate: "2024-01-01",
		},
		&catalog.Episode{
			EpisodeID: "future", ShowType: "Main Campaign", EpisodeNumber: "2",
			Title: "Future", Airdate: "2030-01-01",
		},
		&catalog.Episode{
			EpisodeID: "exclusive", ShowType: "Main Campaign", EpisodeNumber: "3",
			Title: "Exclusive", Airdate: "2024-02-01", Notes: "Beacon exclusive",
		},
	)
	vod := MissingVODURLs(snap, testNow)
	if len(vod) != 1 || vod[0].Title != "Aired" {
		t.Fatalf("vod issues = %+v", vod)
	}
	runtime := MissingRuntimes(snap, testNow)
	if countType(runtime, TypeMissingRuntime) != 2 {
		// The beacon exclusive still deserves a runtime; only the
		// future episode is exempt.
		t.Fatalf("runtime issues = %+v", runtime)
	}
}
