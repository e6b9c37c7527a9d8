package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLevelFile = `
[[level]]
number = 1
letter = "a"

  [[level.step]]
  type = "findWords"
  reward_per_word = 10.0
  required = 2
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "levels_en.toml", validLevelFile)
	writeFile(t, dir, "levels_fr.toml", validLevelFile)
	writeFile(t, dir, "words_en.txt", "apple\n")

	registry := NewRegistry()
	loaded, err := LoadDirectory(registry, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, loaded)

	_, err = registry.Get("fr", 1)
	assert.NoError(t, err)
}

func TestLoadDirectorySkipsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "levels_de.toml", "not [valid toml")
	writeFile(t, dir, "levels_en.toml", validLevelFile)

	registry := NewRegistry()
	loaded, err := LoadDirectory(registry, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, loaded)
	assert.Equal(t, 0, registry.LevelCount("de"))
}

func TestLoadDirectoryWithoutLevelFiles(t *testing.T) {
	// Dictionary-only deployments are allowed; no level files is fine.
	registry := NewRegistry()
	loaded, err := LoadDirectory(registry, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
