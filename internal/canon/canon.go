// Package canon annotates catalog rows with story-canon metadata: whether
// a special is part of continuity and what must be watched before it.
// The annotation table is hand-curated; everything not listed is marked
// non-canon rather than left blank so downstream filters can trust the
// column.
package canon

import (
	"crtracker/internal/catalog"
)

// Columns added to the catalog by Apply.
const (
	FieldIsCanon             = "is_canon"
	FieldPrerequisiteEpisode = "prerequisite_episode"
	FieldPrerequisiteNotes   = "prerequisite_notes"
)

// Annotation is the canon metadata for one episode.
type Annotation struct {
	IsCanon             string
	PrerequisiteEpisode string
	PrerequisiteNotes   string
}

// annotations maps episode_id to curated canon data.
var annotations = map[string]Annotation{
	"Special|Specials|C1E36a|The Story of Vox Machina": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "None",
		PrerequisiteNotes:   "Early C1 recap - watch anytime",
	},
	"Special|Specials|C2E52a|The Search For Grog": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "C1E115",
		PrerequisiteNotes:   "After Campaign 1 finale",
	},
	"Special|Specials|C2E68a|The Search For Bob": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "C2E52a",
		PrerequisiteNotes:   "After The Search For Grog",
	},
	"Special|Specials|C2E76a|Dalen's Closet": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "C2E68a",
		PrerequisiteNotes:   "After The Search For Bob",
	},
	"Special|Specials|C2E86b|The Adventures of the Darrington Brigade": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "C1E115",
		PrerequisiteNotes:   "After Campaign 1 finale (10 years later)",
	},
	"Special|Specials|C3E040a|The Mighty Nein Reunited Part 1": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "C2E141",
		PrerequisiteNotes:   "After Campaign 2 finale",
	},
	"Special|Specials|C3E040b|The Mighty Nein Reunited Part 2": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "C3E040a",
		PrerequisiteNotes:   "After The Mighty Nein Reunited Part 1",
	},
	"Special|Specials|C3E076a|The Mighty Nein Reunion: Echoes of the Solstice": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "C2E141",
		PrerequisiteNotes:   "Mighty Nein + Bells Hells crossover",
	},
	"Special|Specials|C4E04b|Jester and Fjord's Wedding - Live from Radio City Music Hall": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "C2E141",
		PrerequisiteNotes:   "After Campaign 2 finale",
	},
	"Special|Specials|C2E141f|Exandria: An Intimate History": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "None",
		PrerequisiteNotes:   "World lore - watch anytime",
	},
	"Special|Specials|C3E051a|Exandria: An Intimate Appendix - Ruidus and the Gods": {
		IsCanon:             "TRUE",
		PrerequisiteEpisode: "None",
		PrerequisiteNotes:   "Lore about Ruidus - watch anytime",
	},
}

// Lookup returns the curated annotation for an episode id.
func Lookup(episodeID string) (Annotation, bool) {
	a, ok := annotations[episodeID]
	return a, ok
}

// Apply stamps canon columns on every row in the snapshot, extending the
// field list when the columns are new. It returns the number of rows
// marked canon.
func Apply(snap *catalog.Snapshot) int {
	ensureField(snap, FieldIsCanon)
	ensureField(snap, FieldPrerequisiteEpisode)
	ensureField(snap, FieldPrerequisiteNotes)

	marked := 0
	for _, ep := range snap.Episodes {
		annotation, ok := annotations[ep.EpisodeID]
		if !ok {
			annotation = Annotation{IsCanon: "FALSE"}
		} else {
			marked++
		}
		if ep.Extra == nil {
			ep.Extra = make(map[string]string)
		}
		ep.Extra[FieldIsCanon] = annotation.IsCanon
		ep.Extra[FieldPrerequisiteEpisode] = annotation.PrerequisiteEpisode
		ep.Extra[FieldPrerequisiteNotes] = annotation.PrerequisiteNotes
	}
	return marked
}

func ensureField(snap *catalog.Snapshot, name string) {
	for _, field := range snap.Fields {
		if field == name {
			return
		}
	}
	snap.Fields = append(snap.Fields, name)
}
