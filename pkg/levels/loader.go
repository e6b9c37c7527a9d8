package levels

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Level files follow the levels_<lang>.toml naming scheme, parallel to the
// dictionary's words_<lang>.txt word lists.
const (
	levelFilePrefix = "levels_"
	levelFileExt    = ".toml"
)

// levelFile is the on-disk shape of one language's level definitions.
type levelFile struct {
	Levels []Level `toml:"level"`
}

// Load parses TOML level definitions and records them under lang. The whole
// source is rejected on the first invalid level so a half-loaded language
// never serves.
func (r *Registry) Load(lang string, data []byte) error {
	var file levelFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing level definitions: %w", err)
	}
	if len(file.Levels) == 0 {
		return fmt.Errorf("no levels defined")
	}
	for _, level := range file.Levels {
		if err := r.Add(lang, level); err != nil {
			delete(r.byLang, lang)
			return err
		}
	}
	r.logLoaded(lang)
	return nil
}

// LoadFile loads one levels_<lang>.toml file.
func (r *Registry) LoadFile(lang, path string) error {
	var file levelFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(file.Levels) == 0 {
		return fmt.Errorf("no levels defined in %s", path)
	}
	for _, level := range file.Levels {
		if err := r.Add(lang, level); err != nil {
			delete(r.byLang, lang)
			return err
		}
	}
	r.logLoaded(lang)
	return nil
}

// LoadDirectory scans dir for level files and loads each language,
// skipping malformed files with a warning so one bad language does not
// abort startup. Returns the language codes that loaded. A directory with
// no level files at all is not an error: a deployment may serve
// dictionary-only languages.
func LoadDirectory(registry *Registry, dir string) ([]string, error) {
	pattern := filepath.Join(dir, levelFilePrefix+"*"+levelFileExt)
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for level files: %w", err)
	}
	sort.Strings(files)

	var loaded []string
	for _, file := range files {
		basename := filepath.Base(file)
		lang := strings.TrimSuffix(strings.TrimPrefix(basename, levelFilePrefix), levelFileExt)
		if lang == "" {
			continue
		}
		if err := registry.LoadFile(lang, file); err != nil {
			log.Warnf("Skipping levels for language %q: %v", lang, err)
			continue
		}
		loaded = append(loaded, lang)
	}
	log.Debugf("Loaded level definitions for %d languages from %s", len(loaded), dir)
	return loaded, nil
}
