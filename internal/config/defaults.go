package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "imecore"

// PlatformConfigDir returns the platform-specific config directory.
//
// Platform paths:
//   - macOS:   ~/Library/Application Support/imecore/
//   - Linux:   $XDG_CONFIG_HOME/imecore/ or ~/.config/imecore/
//   - Windows: %APPDATA%\imecore\
//
// IMECORE_CONFIG_DIR overrides all of them.
func PlatformConfigDir() string {
	if dir := os.Getenv(EnvPrefix + "CONFIG_DIR"); dir != "" {
		return dir
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Application Support", appName)
	case "windows":
		return filepath.Join(envOr("APPDATA", filepath.Join(homeDir(), "AppData", "Roaming")), appName)
	default:
		return filepath.Join(envOr("XDG_CONFIG_HOME", filepath.Join(homeDir(), ".config")), appName)
	}
}

// PlatformDataDir returns the platform-specific data directory.
//
// Platform paths:
//   - macOS:   ~/Library/Application Support/imecore/
//   - Linux:   $XDG_DATA_HOME/imecore/ or ~/.local/share/imecore/
//   - Windows: %LOCALAPPDATA%\imecore\
func PlatformDataDir() string {
	if dir := os.Getenv(EnvPrefix + "DATA_DIR"); dir != "" {
		return dir
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Application Support", appName)
	case "windows":
		return filepath.Join(envOr("LOCALAPPDATA", filepath.Join(homeDir(), "AppData", "Local")), appName)
	default:
		return filepath.Join(envOr("XDG_DATA_HOME", filepath.Join(homeDir(), ".local", "share")), appName)
	}
}

// PlatformLogDir returns the platform-specific log directory.
func PlatformLogDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Logs", appName)
	case "windows":
		return filepath.Join(PlatformDataDir(), "logs")
	default:
		return filepath.Join(envOr("XDG_STATE_HOME", filepath.Join(homeDir(), ".local", "state")), appName)
	}
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.TempDir()
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// SupportedConfigFormats returns the recognised config file extensions.
func SupportedConfigFormats() []string {
	return []string{"toml", "json", "yaml", "yml"}
}

// FindConfigFile searches the current directory and then the config
// directory for config.<ext>. It returns "" when nothing is found.
func FindConfigFile() string {
	for _, dir := range []string{".", PlatformConfigDir()} {
		for _, ext := range SupportedConfigFormats() {
			path := filepath.Join(dir, "config."+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
