package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// SaveTOMLFile saves a struct to a TOML file
func SaveTOMLFile(data interface{}, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(data)
}

// LoadTOMLFile loads and parses a TOML file into the provided struct
func LoadTOMLFile(path string, v interface{}) error {
	_, err := toml.DecodeFile(path, v)
	return err
}

// GetExecutableDir returns the directory of the current executable.
// Used to resolve data paths when the binary runs outside its repo.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// ResolveDataDir resolves the directory holding word lists and level files.
// Relative paths are tried against the working directory first, then
// against the executable's directory, so both development runs and
// installed binaries find their data.
func ResolveDataDir(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if FileExists(path) {
		return path
	}
	execDir, err := GetExecutableDir()
	if err != nil {
		return path
	}
	candidate := filepath.Join(execDir, path)
	if FileExists(candidate) {
		return candidate
	}
	return path
}
