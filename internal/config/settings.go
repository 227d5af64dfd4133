package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultHooksDir is the managed directory used when none is given.
const DefaultHooksDir = ".rusky"

// Environment variables read by rusky.
const (
	// EnvSkip set to "0" skips install entirely.
	EnvSkip = "RUSKY"
	// EnvGit overrides the git executable.
	EnvGit = "RUSKY_GIT"
)

// File is the on-disk shape of config.yaml.
type File struct {
	Dir string `yaml:"dir,omitempty"`
	Git string `yaml:"git,omitempty"`
}

// Settings are the resolved values passed down from the command layer.
type Settings struct {
	// SkipInstall is true when RUSKY=0.
	SkipInstall bool
	// HooksDir is the default managed directory for install and status.
	HooksDir string
	// GitBin is the git executable to run.
	GitBin string
}

// FilePath returns the location of config.yaml, or "" when no config
// directory can be determined.
func FilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// LoadFile parses a config.yaml. A missing file yields a zero File.
func LoadFile(path string) (File, error) {
	var file File
	if path == "" {
		return file, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the config dir
	if err != nil {
		if os.IsNotExist(err) {
			return file, nil
		}
		return file, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file, nil
}

// Resolve merges environment values over file values over defaults.
// getenv is usually os.Getenv.
func Resolve(getenv func(string) string, file File) Settings {
	settings := Settings{
		SkipInstall: getenv(EnvSkip) == "0",
		HooksDir:    DefaultHooksDir,
		GitBin:      "git",
	}
	if dir := strings.TrimSpace(file.Dir); dir != "" {
		settings.HooksDir = dir
	}
	if bin := strings.TrimSpace(file.Git); bin != "" {
		settings.GitBin = bin
	}
	if bin := getenv(EnvGit); bin != "" {
		settings.GitBin = bin
	}
	return settings
}

// Load reads config.yaml from Dir() and resolves it against the process
// environment. On a broken config file the defaults are still returned
// alongside the error.
func Load() (Settings, error) {
	file, err := LoadFile(FilePath())
	return Resolve(os.Getenv, file), err
}
