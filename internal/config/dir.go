// Package config locates and reads the postgraph configuration file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the postgraph configuration directory.
//
// Resolution:
//   - $POSTGRAPH_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/postgraph if set
//   - %AppData%/postgraph on Windows
//   - ~/.config/postgraph elsewhere
//
// Returns "" when no home directory can be determined.
func Dir() string {
	if dir := os.Getenv("POSTGRAPH_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "postgraph")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "postgraph")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "postgraph")
}
