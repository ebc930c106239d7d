package config

import (
	"errors"
	"path/filepath"
	"testing"
)

// MockPlatformProvider is a test double for PlatformProvider
type MockPlatformProvider struct {
	OS           string
	EnvVars      map[string]string
	HomeDirPath  string
	HomeDirError error
}

func (m *MockPlatformProvider) GetOS() string {
	return m.OS
}

func (m *MockPlatformProvider) GetEnv(key string) string {
	if m.EnvVars == nil {
		return ""
	}
	return m.EnvVars[key]
}

func (m *MockPlatformProvider) UserHomeDir() (string, error) {
	if m.HomeDirError != nil {
		return "", m.HomeDirError
	}
	return m.HomeDirPath, nil
}

func TestConfigDirAllPlatforms(t *testing.T) {
	tests := []struct {
		name     string
		platform *MockPlatformProvider
		want     string
	}{
		{
			name: "Windows with APPDATA",
			platform: &MockPlatformProvider{
				OS:      "windows",
				EnvVars: map[string]string{"APPDATA": "C:\\Users\\Test\\AppData\\Roaming"},
			},
			want: filepath.Join("C:\\Users\\Test\\AppData\\Roaming", "tableview"),
		},
		{
			name:     "Windows without APPDATA",
			platform: &MockPlatformProvider{OS: "windows"},
			want:     "",
		},
		{
			name:     "macOS happy path",
			platform: &MockPlatformProvider{OS: "darwin", HomeDirPath: "/Users/test"},
			want:     filepath.Join("/Users/test", "Library", "Application Support", "tableview"),
		},
		{
			name:     "macOS UserHomeDir error",
			platform: &MockPlatformProvider{OS: "darwin", HomeDirError: errors.New("no home directory")},
			want:     "",
		},
		{
			name:     "Linux happy path",
			platform: &MockPlatformProvider{OS: "linux", HomeDirPath: "/home/test"},
			want:     filepath.Join("/home/test", ".config", "tableview"),
		},
		{
			name: "Linux with XDG_CONFIG_HOME",
			platform: &MockPlatformProvider{
				OS:          "linux",
				EnvVars:     map[string]string{"XDG_CONFIG_HOME": "/xdg"},
				HomeDirPath: "/home/test",
			},
			want: filepath.Join("/xdg", "tableview"),
		},
		{
			name:     "Linux UserHomeDir error",
			platform: &MockPlatformProvider{OS: "linux", HomeDirError: errors.New("no home directory")},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigDirWithPlatform(tt.platform); got != tt.want {
				t.Errorf("ConfigDirWithPlatform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGlobalConfigPath(t *testing.T) {
	got := GlobalConfigPathWithPlatform(&MockPlatformProvider{OS: "linux", HomeDirPath: "/home/test"})
	if want := filepath.Join("/home/test", ".config", "tableview", "config.yaml"); got != want {
		t.Errorf("GlobalConfigPathWithPlatform() = %q, want %q", got, want)
	}
	if got := GlobalConfigPathWithPlatform(&MockPlatformProvider{OS: "windows"}); got != "" {
		t.Errorf("GlobalConfigPathWithPlatform() = %q, want empty", got)
	}
}

func TestUserCacheDirAllPlatforms(t *testing.T) {
	tests := []struct {
		name     string
		platform *MockPlatformProvider
		want     string
	}{
		{
			name: "Windows with LOCALAPPDATA",
			platform: &MockPlatformProvider{
				OS:      "windows",
				EnvVars: map[string]string{"LOCALAPPDATA": "C:\\Local"},
			},
			want: filepath.Join("C:\\Local", "tableview"),
		},
		{
			name:     "Windows without LOCALAPPDATA",
			platform: &MockPlatformProvider{OS: "windows", HomeDirPath: "C:\\Users\\Test"},
			want:     filepath.Join("C:\\Users\\Test", ".tableview"),
		},
		{
			name:     "macOS",
			platform: &MockPlatformProvider{OS: "darwin", HomeDirPath: "/Users/test"},
			want:     filepath.Join("/Users/test", "Library", "Caches", "tableview"),
		},
		{
			name:     "Linux",
			platform: &MockPlatformProvider{OS: "linux", HomeDirPath: "/home/test"},
			want:     filepath.Join("/home/test", ".cache", "tableview"),
		},
		{
			name: "Linux with XDG_CACHE_HOME",
			platform: &MockPlatformProvider{
				OS:          "linux",
				EnvVars:     map[string]string{"XDG_CACHE_HOME": "/xdg-cache"},
				HomeDirPath: "/home/test",
			},
			want: filepath.Join("/xdg-cache", "tableview"),
		},
		{
			name:     "Linux without home",
			platform: &MockPlatformProvider{OS: "linux", HomeDirError: errors.New("no home")},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserCacheDirWithPlatform(tt.platform); got != tt.want {
				t.Errorf("UserCacheDirWithPlatform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOSPlatformProvider(t *testing.T) {
	p := OSPlatformProvider{}
	if p.GetOS() == "" {
		t.Error("GetOS() returned empty string")
	}
	t.Setenv("TABLEVIEW_TEST_ENV", "value")
	if got := p.GetEnv("TABLEVIEW_TEST_ENV"); got != "value" {
		t.Errorf("GetEnv() = %q, want value", got)
	}
}

func TestXDGAppDir(t *testing.T) {
	tests := []struct {
		name     string
		platform *MockPlatformProvider
		want     string
	}{
		{
			name: "variable set",
			platform: &MockPlatformProvider{
				EnvVars:     map[string]string{"XDG_DATA_HOME": "/data"},
				HomeDirPath: "/home/test",
			},
			want: filepath.Join("/data", "tableview"),
		},
		{
			name:     "home fallback",
			platform: &MockPlatformProvider{HomeDirPath: "/home/test"},
			want:     filepath.Join("/home/test", ".local", "tableview"),
		},
		{
			name:     "empty home",
			platform: &MockPlatformProvider{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := xdgAppDir(tt.platform, "XDG_DATA_HOME", ".local"); got != tt.want {
				t.Errorf("xdgAppDir() = %q, want %q", got, tt.want)
			}
		})
	}
}
