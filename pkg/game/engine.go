/*
Package game is the scoring core: it validates a submitted word batch
against a level's rules, computes score and success, and asks the
dictionary for alternative words the player missed.

The engine owns no state of its own. It borrows read-only references to the
dictionary store and the level registry, so any number of Score calls may
run concurrently.
*/
package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lexiserve/lexiserve/internal/utils"
	"github.com/lexiserve/lexiserve/pkg/dictionary"
	"github.com/lexiserve/lexiserve/pkg/levels"
)

// ErrStepNotApplicable is returned when a level exists but defines no step
// of the kind an operation needs. That is a level-file defect, not a
// client error.
var ErrStepNotApplicable = errors.New("level has no matching step for this game type")

// Result is the full outcome of one word-submission evaluation. Results is
// keyed by the original spellings; duplicate spellings collapse
// last-write-wins, while Score and TotalFound count every submitted entry.
type Result struct {
	Level      int             `msgpack:"level" json:"level"`
	Success    bool            `msgpack:"success" json:"success"`
	Required   int             `msgpack:"required" json:"required"`
	Results    map[string]bool `msgpack:"results" json:"results"`
	SomeWords  []string        `msgpack:"someWords" json:"someWords"`
	Score      float64         `msgpack:"score" json:"score"`
	TotalFound int             `msgpack:"total_found" json:"total_found"`
	Type       string          `msgpack:"type" json:"type"`
}

// Engine scores submissions against the dictionary and level stores.
type Engine struct {
	dict      *dictionary.Store
	registry  *levels.Registry
	suggester *Suggester
}

// NewEngine wires a scoring engine to its stores. The suggester keeps its
// own policy (limit, exclusion) and shares the dictionary reference.
func NewEngine(dict *dictionary.Store, registry *levels.Registry, suggestionLimit int) *Engine {
	return &Engine{
		dict:      dict,
		registry:  registry,
		suggester: NewSuggester(dict, suggestionLimit),
	}
}

// Supports reports whether the engine can score submissions for lang.
// Exposed so callers can pre-validate before building a request.
func (e *Engine) Supports(lang string) bool {
	return e.dict.Supports(lang)
}

// Score validates submittedWords for the given language and level.
//
// Words are checked against the level's required starting letter before any
// dictionary lookup: a word that fails the letter test can never be valid,
// so it is marked invalid locally and the dictionary only sees the
// remaining candidates in one batch. Validity is letter match AND
// dictionary membership, both case-insensitive.
//
// Fails with dictionary.ErrLanguageNotSupported, levels.ErrLevelNotFound
// or ErrStepNotApplicable; all three are terminal, nothing retries.
func (e *Engine) Score(lang string, levelNumber int, submittedWords []string) (*Result, error) {
	if !e.dict.Supports(lang) {
		return nil, fmt.Errorf("%w: %q", dictionary.ErrLanguageNotSupported, lang)
	}

	level, err := e.registry.Get(lang, levelNumber)
	if err != nil {
		return nil, err
	}

	step, ok := level.FirstStep(levels.StepFindWords)
	if !ok {
		return nil, fmt.Errorf("%w: level %d", ErrStepNotApplicable, levelNumber)
	}

	// Cheap local filter first: only words starting with the required
	// letter are worth a dictionary lookup.
	var candidates []string
	for _, word := range submittedWords {
		if hasRequiredLetter(word, level.Letter) {
			candidates = append(candidates, word)
		}
	}

	membership := map[string]bool{}
	if len(candidates) > 0 {
		membership, err = e.dict.ContainsBatch(lang, candidates)
		if err != nil {
			return nil, err
		}
	}

	results := make(map[string]bool, len(submittedWords))
	totalFound := 0
	score := 0.0
	for _, word := range submittedWords {
		valid := hasRequiredLetter(word, level.Letter) && membership[word]
		results[word] = valid
		if valid {
			totalFound++
			score += step.RewardPerWord
		}
	}

	someWords, err := e.suggester.Suggest(lang, level.Letter, submittedWords)
	if err != nil {
		return nil, err
	}

	log.Debug("Scored submission",
		"lang", lang, "level", levelNumber,
		"submitted", len(submittedWords), "found", totalFound, "score", score)

	return &Result{
		Level:      levelNumber,
		Success:    totalFound >= step.Required,
		Required:   step.Required,
		Results:    results,
		SomeWords:  someWords,
		Score:      score,
		TotalFound: totalFound,
		Type:       step.Type,
	}, nil
}

// hasRequiredLetter reports whether word starts with the level's letter,
// ignoring case. The letter is stored lowercase by the registry.
func hasRequiredLetter(word, letter string) bool {
	return utils.HasPrefixIgnoreCase(word, letter)
}
