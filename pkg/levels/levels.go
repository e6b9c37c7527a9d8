/*
Package levels is the registry of puzzle level definitions.

Levels are declared per language in TOML files and loaded once at startup.
Each level names the required starting letter and an ordered list of steps.
Steps carry a string type tag so new step kinds can be added to the data
files without breaking older binaries; consumers scan for the first step
matching the tag they understand.
*/
package levels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrLevelNotFound is returned when a language has no level recorded under
// the requested number. It is distinct from the dictionary's "language not
// supported" so callers can tell the two failure causes apart.
var ErrLevelNotFound = errors.New("level not found")

// StepFindWords is the step type tag for "find words starting with the
// level's letter" scoring.
const StepFindWords = "findWords"

// Step is one scoring rule inside a level. Type selects which of the other
// fields apply; unknown tags are kept as-is and skipped by tag scans.
type Step struct {
	Type          string  `toml:"type"`
	RewardPerWord float64 `toml:"reward_per_word"`
	Required      int     `toml:"required"`
}

// Level is the rule set for one puzzle level within a language.
type Level struct {
	Number int    `toml:"number"`
	Letter string `toml:"letter"`
	Steps  []Step `toml:"step"`
}

// FirstStep returns the first step carrying the given type tag. Level files
// are not required to keep tags unique; first match wins.
func (l *Level) FirstStep(stepType string) (*Step, bool) {
	for i := range l.Steps {
		if l.Steps[i].Type == stepType {
			return &l.Steps[i], true
		}
	}
	return nil, false
}

// Registry maps (language code, level number) to level definitions. Like
// the dictionary store it is populated before serving and read-only after.
type Registry struct {
	byLang map[string]map[int]*Level
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byLang: make(map[string]map[int]*Level)}
}

// Add validates a single level and records it under lang. The letter must
// be exactly one character and is lowercased; rewards must be non-negative;
// duplicate level numbers within one language are rejected so a data file
// cannot silently shadow an earlier definition.
func (r *Registry) Add(lang string, level Level) error {
	if lang == "" {
		return fmt.Errorf("empty language code")
	}
	if level.Number <= 0 {
		return fmt.Errorf("level number must be positive, got %d", level.Number)
	}
	if len([]rune(level.Letter)) != 1 {
		return fmt.Errorf("level %d: letter must be a single character, got %q", level.Number, level.Letter)
	}
	for _, step := range level.Steps {
		if step.Type == "" {
			return fmt.Errorf("level %d: step without a type tag", level.Number)
		}
		if step.RewardPerWord < 0 {
			return fmt.Errorf("level %d: negative reward_per_word %v", level.Number, step.RewardPerWord)
		}
		if step.Required < 0 {
			return fmt.Errorf("level %d: negative required count %d", level.Number, step.Required)
		}
	}

	byNumber, ok := r.byLang[lang]
	if !ok {
		byNumber = make(map[int]*Level)
		r.byLang[lang] = byNumber
	}
	if _, exists := byNumber[level.Number]; exists {
		return fmt.Errorf("duplicate level %d for language %q", level.Number, lang)
	}

	level.Letter = strings.ToLower(level.Letter)
	byNumber[level.Number] = &level
	return nil
}

// Get looks up a level by exact number. Level numbers may be sparse; a
// missing key is an error, never an empty default. A language with no
// levels at all reports the same condition.
func (r *Registry) Get(lang string, number int) (*Level, error) {
	byNumber, ok := r.byLang[lang]
	if !ok {
		return nil, fmt.Errorf("%w: language %q has no levels", ErrLevelNotFound, lang)
	}
	level, ok := byNumber[number]
	if !ok {
		return nil, fmt.Errorf("%w: %q level %d", ErrLevelNotFound, lang, number)
	}
	return level, nil
}

// LevelCount returns how many levels are recorded for lang.
func (r *Registry) LevelCount(lang string) int {
	return len(r.byLang[lang])
}

// Languages returns the language codes with at least one level.
func (r *Registry) Languages() []string {
	langs := make([]string, 0, len(r.byLang))
	for code := range r.byLang {
		langs = append(langs, code)
	}
	return langs
}

func (r *Registry) logLoaded(lang string) {
	log.Debugf("Loaded %d levels for language %q", r.LevelCount(lang), lang)
}
