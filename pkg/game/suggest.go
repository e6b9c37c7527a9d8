package game

import (
	"strings"

	"github.com/lexiserve/lexiserve/pkg/dictionary"
)

// DefaultSuggestionLimit caps how many alternative words a scoring result
// offers the player.
const DefaultSuggestionLimit = 5

// Suggester picks alternative valid words the player missed. The limit and
// the exclude-already-tried rule are game policy, which is why this lives
// here and not in the dictionary store.
type Suggester struct {
	dict  *dictionary.Store
	limit int
}

// NewSuggester creates a suggester over the given store. A non-positive
// limit falls back to DefaultSuggestionLimit.
func NewSuggester(dict *dictionary.Store, limit int) *Suggester {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	return &Suggester{dict: dict, limit: limit}
}

// Suggest returns up to the configured limit of dictionary words starting
// with prefix, never re-offering anything in submittedWords regardless of
// how it was cased or whether it was valid.
func (s *Suggester) Suggest(lang, prefix string, submittedWords []string) ([]string, error) {
	exclude := make(map[string]bool, len(submittedWords))
	for _, word := range submittedWords {
		exclude[strings.ToLower(word)] = true
	}
	return s.dict.WordsWithPrefix(lang, prefix, exclude, s.limit)
}
