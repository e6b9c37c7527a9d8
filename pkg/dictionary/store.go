/*
Package dictionary holds the per-language word sets used for validating and
suggesting words.

Each language owns a patricia trie keyed by the lowercase spelling, which
gives both exact membership and ordered prefix enumeration from the same
structure. Every word is lowercased once on insert; callers may pass any
casing to the query methods, normalization happens at the boundary.

Stores are populated once at startup and treated as immutable afterwards, so
concurrent reads need no locking.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/lexiserve/lexiserve/internal/utils"
)

// ErrLanguageNotSupported is returned for lookups against a language that
// was never loaded into the store.
var ErrLanguageNotSupported = errors.New("language not supported")

// errEnough aborts a subtree visit once a result limit is reached.
var errEnough = errors.New("enough results")

// wordSet is the loaded dictionary of a single language.
type wordSet struct {
	trie  *patricia.Trie
	count int
}

// Store maps language codes to their word sets. Language codes are
// case-sensitive and fixed at load time.
type Store struct {
	sets map[string]*wordSet
}

// NewStore creates an empty store. Call Load (or LoadDirectory) for every
// language before serving requests; the store is not safe for mutation
// after that point.
func NewStore() *Store {
	return &Store{sets: make(map[string]*wordSet)}
}

// Load reads one word per line from r and registers the result under lang.
// Blank lines and lines starting with '#' are skipped, everything else is
// lowercased on insert. A line that still contains whitespace after
// trimming makes the whole source malformed: the language is not
// registered and the previous set for that code, if any, is kept.
func (s *Store) Load(lang string, r io.Reader) error {
	if lang == "" {
		return fmt.Errorf("empty language code")
	}

	ws := &wordSet{trie: patricia.NewTrie()}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.ContainsAny(line, " \t") {
			return fmt.Errorf("line %d: %q is not a single word", lineNo, line)
		}
		word := utils.NormalizeWord(line)
		if ws.trie.Insert(patricia.Prefix(word), true) {
			ws.count++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}

	s.sets[lang] = ws
	log.Debugf("Loaded %d words for language %q", ws.count, lang)
	return nil
}

// Supports reports whether a word set exists for the given language code.
func (s *Store) Supports(lang string) bool {
	_, ok := s.sets[lang]
	return ok
}

// Languages returns the loaded language codes in unspecified order.
func (s *Store) Languages() []string {
	langs := make([]string, 0, len(s.sets))
	for code := range s.sets {
		langs = append(langs, code)
	}
	return langs
}

// WordCount returns the number of distinct words loaded for lang, or 0 if
// the language is unknown.
func (s *Store) WordCount(lang string) int {
	ws, ok := s.sets[lang]
	if !ok {
		return 0
	}
	return ws.count
}

// Contains performs a case-insensitive membership test.
func (s *Store) Contains(lang, word string) (bool, error) {
	ws, ok := s.sets[lang]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrLanguageNotSupported, lang)
	}
	return ws.trie.Match(patricia.Prefix(strings.ToLower(word))), nil
}

// ContainsBatch checks membership for every word in one pass and returns a
// map keyed by the submitted spellings. Duplicate spellings collapse to a
// single key.
func (s *Store) ContainsBatch(lang string, words []string) (map[string]bool, error) {
	ws, ok := s.sets[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLanguageNotSupported, lang)
	}
	results := make(map[string]bool, len(words))
	for _, word := range words {
		results[word] = ws.trie.Match(patricia.Prefix(strings.ToLower(word)))
	}
	return results, nil
}

// WordsWithPrefix returns up to limit words starting with prefix
// (case-insensitive) that are not present in exclude. The exclude set must
// hold lowercase spellings. Enumeration follows the trie's byte order, so
// the result is deterministic for a fixed store. Fewer than limit matches
// returns just those, never an error.
func (s *Store) WordsWithPrefix(lang, prefix string, exclude map[string]bool, limit int) ([]string, error) {
	ws, ok := s.sets[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLanguageNotSupported, lang)
	}
	if limit <= 0 {
		return nil, nil
	}

	var words []string
	err := ws.trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(p patricia.Prefix, _ patricia.Item) error {
		word := string(p)
		if exclude[word] {
			return nil
		}
		words = append(words, word)
		if len(words) >= limit {
			return errEnough
		}
		return nil
	})
	if err != nil && !errors.Is(err, errEnough) {
		return nil, fmt.Errorf("visiting subtree for prefix %q: %w", prefix, err)
	}
	return words, nil
}
