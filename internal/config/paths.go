package config

import (
	"os"
	"path/filepath"
)

// appName names the per-user directories
const appName = "tableview"

// ConfigDir returns the per-user configuration directory
func ConfigDir() string {
	return ConfigDirWithPlatform(DefaultPlatform)
}

// ConfigDirWithPlatform allows injecting a custom platform provider for testing
func ConfigDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %APPDATA%\tableview\
		appData := platform.GetEnv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, appName)
	case "darwin":
		// ~/Library/Application Support/tableview/
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", appName)
	default:
		return xdgAppDir(platform, "XDG_CONFIG_HOME", ".config")
	}
}

// GlobalConfigPath returns the path of the per-user config file, or "" when
// there is no config directory
func GlobalConfigPath() string {
	return GlobalConfigPathWithPlatform(DefaultPlatform)
}

// GlobalConfigPathWithPlatform allows injecting a custom platform provider for testing
func GlobalConfigPathWithPlatform(platform PlatformProvider) string {
	dir := ConfigDirWithPlatform(platform)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// UserCacheDir returns the application cache directory for the database
// and update state
func UserCacheDir() string {
	return UserCacheDirWithPlatform(DefaultPlatform)
}

// UserCacheDirWithPlatform allows injecting a custom platform provider for testing
func UserCacheDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %LOCALAPPDATA%\tableview\
		localAppData := platform.GetEnv("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := platform.UserHomeDir()
			return filepath.Join(home, "."+appName)
		}
		return filepath.Join(localAppData, appName)
	case "darwin":
		// ~/Library/Caches/tableview/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, "Library", "Caches", appName)
	default:
		return xdgAppDir(platform, "XDG_CACHE_HOME", ".cache")
	}
}

// DefaultDBPath returns the path to the SQLite unit database, creating the
// cache directory if needed
func DefaultDBPath() string {
	cacheDir := UserCacheDir()
	_ = os.MkdirAll(cacheDir, 0755)
	return filepath.Join(cacheDir, "units.db")
}
