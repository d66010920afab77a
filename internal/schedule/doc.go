// Package schedule extracts episode candidates from weekly programming
// schedule text.
//
// Each content category has one recognizer: a pure function over a text
// blob and the week's start date that emits zero or more candidates.
// Recognizers are registered in a Registry keyed by category, so adding a
// category means registering one more entry. Candidates are normalized
// records with a deterministic identity; whether a candidate actually
// enters the catalog is decided later by the merge engine.
package schedule
