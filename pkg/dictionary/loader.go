package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// wordFilePrefix and wordFileExt describe the naming scheme for word list
// files inside a data directory: words_<lang>.txt, e.g. words_en.txt.
const (
	wordFilePrefix = "words_"
	wordFileExt    = ".txt"
)

// WordFileInfo describes one word list file found by a directory scan.
type WordFileInfo struct {
	Lang     string
	Filename string
}

// ScanDirectory lists the word list files in dir, sorted by language code.
// Files that do not match the words_<lang>.txt scheme are ignored.
func ScanDirectory(dir string) ([]WordFileInfo, error) {
	pattern := filepath.Join(dir, wordFilePrefix+"*"+wordFileExt)
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for word lists: %w", err)
	}

	var infos []WordFileInfo
	for _, file := range files {
		basename := filepath.Base(file)
		lang := strings.TrimSuffix(strings.TrimPrefix(basename, wordFilePrefix), wordFileExt)
		if lang == "" {
			continue
		}
		infos = append(infos, WordFileInfo{Lang: lang, Filename: file})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Lang < infos[j].Lang
	})
	return infos, nil
}

// LoadDirectory scans dir for word list files and loads each language into
// the store. A malformed file is logged and skipped so the remaining
// languages still load; the returned slice holds the codes that made it in.
// An empty directory is an error since the process would serve nothing.
func LoadDirectory(store *Store, dir string) ([]string, error) {
	infos, err := ScanDirectory(dir)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("no word lists found in %s", dir)
	}

	var loaded []string
	for _, info := range infos {
		file, err := os.Open(info.Filename)
		if err != nil {
			log.Warnf("Skipping language %q: %v", info.Lang, err)
			continue
		}
		err = store.Load(info.Lang, file)
		file.Close()
		if err != nil {
			log.Warnf("Skipping language %q: malformed word list %s: %v", info.Lang, info.Filename, err)
			continue
		}
		loaded = append(loaded, info.Lang)
	}

	if len(loaded) == 0 {
		return nil, fmt.Errorf("no language could be loaded from %s", dir)
	}
	log.Debugf("Loaded %d languages from %s", len(loaded), dir)
	return loaded, nil
}
