// Package config resolves rusky's configuration: the global config
// directory, the optional config.yaml inside it, and the environment
// settings read once at startup.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the rusky configuration directory.
//
// Resolution:
//   - $RUSKY_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/rusky if set (respects XDG on any platform)
//   - %AppData%/rusky on Windows
//   - ~/.config/rusky on macOS and Linux
//
// The dispatcher looks for init.sh in the same XDG location.
func Dir() string {
	if dir := os.Getenv("RUSKY_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rusky")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "rusky")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rusky")
}
