/*
Package config manages the TOML runtime configuration for LexiServe.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lexiserve/lexiserve/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Game   GameConfig   `toml:"game"`
	Dict   DictConfig   `toml:"dict"`
}

// ServerConfig bounds what a single request may carry.
type ServerConfig struct {
	MaxWordsPerRequest int `toml:"max_words_per_request"`
	MaxWordLen         int `toml:"max_word_len"`
}

// GameConfig holds scoring and suggestion policy knobs.
type GameConfig struct {
	SuggestionLimit int `toml:"suggestion_limit"`
}

// DictConfig points at the data directory with word lists and level files.
type DictConfig struct {
	DataDir string `toml:"data_dir"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxWordsPerRequest: 128,
			MaxWordLen:         60,
		},
		Game: GameConfig{
			SuggestionLimit: 5,
		},
		Dict: DictConfig{
			DataDir: "data",
		},
	}
}

// LoadConfig decodes a TOML file over the builtin defaults, so a partial
// file only overrides what it names. A file that cannot be parsed at all
// falls back to defaults with a warning.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(path, config); err != nil {
		log.Warnf("Failed to parse config %s: %v. Using builtin defaults.", path, err)
		return DefaultConfig(), err
	}
	return config, nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. config.toml next to the data directory
// 3. Builtin defaults
func LoadConfigWithPriority(customPath, dataDir string) (*Config, string) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			if config, err := LoadConfig(customPath); err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return config, customPath
			}
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
		}
	}

	defaultPath := filepath.Join(dataDir, "config.toml")
	if utils.FileExists(defaultPath) {
		if config, err := LoadConfig(defaultPath); err == nil {
			log.Debugf("Loaded config from default path: %s", defaultPath)
			return config, defaultPath
		}
	}
	return DefaultConfig(), ""
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, path string) error {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return utils.SaveTOMLFile(config, path)
}

// Validate clamps nonsensical values back to their defaults.
func (c *Config) Validate() {
	defaults := DefaultConfig()
	if c.Server.MaxWordsPerRequest <= 0 {
		c.Server.MaxWordsPerRequest = defaults.Server.MaxWordsPerRequest
	}
	if c.Server.MaxWordLen <= 0 {
		c.Server.MaxWordLen = defaults.Server.MaxWordLen
	}
	if c.Game.SuggestionLimit <= 0 {
		c.Game.SuggestionLimit = defaults.Game.SuggestionLimit
	}
	if c.Dict.DataDir == "" {
		c.Dict.DataDir = defaults.Dict.DataDir
	}
}
