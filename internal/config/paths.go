// ABOUTME: Standard filesystem paths for btui configuration
// ABOUTME: Resolves ~/.btui/config.yaml, overridable with BTUI_CONFIG

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName = ".btui"
	configEnvVar  = "BTUI_CONFIG"
)

// GlobalDir returns the user-global config directory (~/.btui/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// DefaultPath returns $BTUI_CONFIG when set, otherwise the global config
// file if it exists, otherwise "" (built-in defaults only).
func DefaultPath() string {
	if p := os.Getenv(configEnvVar); p != "" {
		return p
	}
	p := GlobalConfigFile()
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
