package schedule

import (
	"time"
)

// Recognizer scans a text blob for one category's cue phrases and returns
// the candidates it finds. Recognizers are pure functions: no I/O, no
// shared state, order-insensitive with respect to other recognizers.
type Recognizer func(text string, weekStart time.Time) []Candidate

type registryEntry struct {
	category   Category
	recognizer Recognizer
}

// Registry dispatches text extraction across the registered recognizers.
type Registry struct {
	entries []registryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a recognizer for a category. Registration order is the
// extraction order, which only affects candidate ordering in the output,
// never matching.
func (r *Registry) Register(category Category, recognizer Recognizer) {
	r.entries = append(r.entries, registryEntry{category: category, recognizer: recognizer})
}

// Extract runs every registered recognizer over the text and stamps each
// candidate with the source label.
func (r *Registry) Extract(text string, weekStart time.Time, source string) []Candidate {
	var out []Candidate
	for _, entry := range r.entries {
		for _, candidate := range entry.recognizer(text, weekStart) {
			candidate.Source = source
			out = append(out, candidate)
		}
	}
	return out
}

// DefaultRegistry returns a registry with every schedule recognizer
// registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(CategoryCooldown, RecognizeCooldown)
	r.Register(CategoryFiresideChat, RecognizeFiresideChat)
	r.Register(CategoryWeirdKids, RecognizeWeirdKids)
	r.Register(CategoryLongRest, RecognizeLongRest)
	r.Register(CategoryBackstagePass, RecognizeBackstagePass)
	r.Register(CategoryInsideMightyNein, RecognizeInsideMightyNein)
	r.Register(CategoryGetYourSheetTogether, RecognizeGetYourSheetTogether)
	r.Register(CategoryPreviouslyOn, RecognizePreviouslyOn)
	r.Register(CategoryTaleGate, RecognizeTaleGate)
	r.Register(CategoryMainCampaign, RecognizeMainCampaign)
	return r
}
