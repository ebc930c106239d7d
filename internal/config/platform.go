package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// PlatformProvider supplies the OS name, environment and home directory
// that the tableview paths are derived from
type PlatformProvider interface {
	// GetOS returns the operating system name ("windows", "darwin", "linux")
	GetOS() string

	// GetEnv returns the value of an environment variable
	GetEnv(key string) string

	// UserHomeDir returns the current user's home directory
	UserHomeDir() (string, error)
}

// OSPlatformProvider reads the running process's OS and environment
type OSPlatformProvider struct{}

func (OSPlatformProvider) GetOS() string {
	return runtime.GOOS
}

func (OSPlatformProvider) GetEnv(key string) string {
	return os.Getenv(key)
}

func (OSPlatformProvider) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// DefaultPlatform is used by the path helpers without a WithPlatform suffix
var DefaultPlatform PlatformProvider = OSPlatformProvider{}

// xdgAppDir returns $<env>/tableview when the XDG variable is set, otherwise
// ~/<fallback>/tableview. It returns "" when neither is available.
func xdgAppDir(platform PlatformProvider, env, fallback string) string {
	if dir := platform.GetEnv(env); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := platform.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, fallback, appName)
}
