package canon

import (
	"testing"

	"crtracker/internal/catalog"
)

func TestApplyMarksCanonAndDefaults(t *testing.T) {
	snap := catalog.NewSnapshot()
	snap.Episodes = []*catalog.Episode{
		{
			EpisodeID: "Special|Specials|C2E52a|The Search For Grog",
			ShowType:  "Special",
			Title:     "The Search For Grog",
		},
		{
			EpisodeID: "Talk Show|Campaign 3|96|C3E96 Cooldown",
			ShowType:  "Talk Show",
			Title:     "C3E96 Cooldown",
		},
	}

	marked := Apply(snap)
	if marked != 1 {
		t.Fatalf("marked = %d, want 1", marked)
	}

	grog := snap.Episodes[0]
	if grog.Extra[FieldIsCanon] != "TRUE" {
		t.Errorf("is_canon = %q, want TRUE", grog.Extra[FieldIsCanon])
	}
	if grog.Extra[FieldPrerequisiteEpisode] != "C1E115" {
		t.Errorf("prerequisite = %q", grog.Extra[FieldPrerequisiteEpisode])
	}

	cooldown := snap.Episodes[1]
	if cooldown.Extra[FieldIsCanon] != "FALSE" {
		t.Errorf("non-listed row is_canon = %q, want FALSE", cooldown.Extra[FieldIsCanon])
	}
}

func TestApplyExtendsFieldsOnce(t *testing.T) {
	snap := catalog.NewSnapshot()
	before := len(snap.Fields)

	Apply(snap)
	after := len(snap.Fields)
	if after != before+3 {
		t.Fatalf("fields grew by %d, want 3", after-before)
	}

	Apply(snap)
	if len(snap.Fields) != after {
		t.Errorf("second apply duplicated columns: %d fields", len(snap.Fields))
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("Special|Specials|C1E36a|The Story of Vox Machina"); !ok {
		t.Error("expected curated annotation")
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("unexpected annotation for unknown id")
	}
}
