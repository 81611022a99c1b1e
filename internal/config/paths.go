package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform config and state roots
const AppName = "gridsheet"

// PlatformProvider supplies the OS name, environment and home directory
// the path helpers resolve against
type PlatformProvider interface {
	GetOS() string
	GetEnv(key string) string
	UserHomeDir() (string, error)
}

// hostPlatform answers for the running process
type hostPlatform struct{}

func (hostPlatform) GetOS() string                { return runtime.GOOS }
func (hostPlatform) GetEnv(key string) string     { return os.Getenv(key) }
func (hostPlatform) UserHomeDir() (string, error) { return os.UserHomeDir() }

// DefaultPlatform is used by Dir, Path and StateDir
var DefaultPlatform PlatformProvider = hostPlatform{}

// Dir returns the gridsheet config directory for the current platform
func Dir() string {
	return DirWithPlatform(DefaultPlatform)
}

// DirWithPlatform allows injecting a custom platform provider for testing
func DirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %APPDATA%\gridsheet\
		appData := platform.GetEnv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, AppName)
	case "darwin":
		// ~/Library/Application Support/gridsheet/
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", AppName)
	default:
		// $XDG_CONFIG_HOME/gridsheet/ or ~/.config/gridsheet/
		if xdg := platform.GetEnv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName)
		}
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", AppName)
	}
}

// Path returns the default config file path, or "" if no config
// directory can be determined
func Path() string {
	return PathWithPlatform(DefaultPlatform)
}

// PathWithPlatform allows injecting a custom platform provider for testing
func PathWithPlatform(platform PlatformProvider) string {
	dir := DirWithPlatform(platform)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// StateDir returns the directory holding the log file
func StateDir() string {
	return StateDirWithPlatform(DefaultPlatform)
}

// StateDirWithPlatform allows injecting a custom platform provider for testing
func StateDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %LOCALAPPDATA%\gridsheet\
		localAppData := platform.GetEnv("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := platform.UserHomeDir()
			return filepath.Join(home, "."+AppName)
		}
		return filepath.Join(localAppData, AppName)
	case "darwin":
		// ~/Library/Logs/gridsheet/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, "Library", "Logs", AppName)
	default:
		// $XDG_STATE_HOME/gridsheet/ or ~/.local/state/gridsheet/
		if xdg := platform.GetEnv("XDG_STATE_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName)
		}
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, ".local", "state", AppName)
	}
}

// DefaultLogFile returns the log file path used when none is configured
func DefaultLogFile() string {
	return filepath.Join(StateDir(), AppName+".log")
}
