// Package merge folds extracted candidates into the episode catalog
// without creating duplicates.
//
// Duplicate detection is two-tiered. Tier one is the exact episode_id.
// Tier two is a category-specific secondary key that tolerates the
// formatting drift seen between sources ("C3x95" vs "95", a guest
// announced with and without surname). The catalog is append-only: a
// merge run adds rows and upgrades placeholder titles in place, but
// never deletes or reorders existing data beyond the airdate sort.
package merge
