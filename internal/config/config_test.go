package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Table.ItemHeight != 30 {
		t.Errorf("ItemHeight = %v, want 30", cfg.Table.ItemHeight)
	}
	if cfg.Table.LineUnits != 30 {
		t.Errorf("LineUnits = %v, want 30", cfg.Table.LineUnits)
	}
	if cfg.Table.WheelDelta != 90 {
		t.Errorf("WheelDelta = %v, want 90", cfg.Table.WheelDelta)
	}
	if len(cfg.Table.Columns) != 4 || cfg.Table.Columns[1].Name != "ten" {
		t.Errorf("Columns = %+v", cfg.Table.Columns)
	}
	if !cfg.Update.Check {
		t.Error("Update.Check should default to true")
	}
}

func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	platform := &MockPlatformProvider{OS: "linux", HomeDirPath: home}
	global := filepath.Join(home, ".config", "tableview", "config.yaml")

	// nothing on disk
	cfg, err := LoadWithPlatform("", project, platform)
	if err != nil {
		t.Fatalf("LoadWithPlatform() error = %v", err)
	}
	if cfg.Table.ItemHeight != DefaultItemHeight {
		t.Errorf("default ItemHeight = %v", cfg.Table.ItemHeight)
	}

	writeConfig(t, global, "table:\n  itemHeight: 60\n")
	cfg, err = LoadWithPlatform("", project, platform)
	if err != nil {
		t.Fatalf("LoadWithPlatform() error = %v", err)
	}
	if cfg.Table.ItemHeight != 60 {
		t.Errorf("global ItemHeight = %v, want 60", cfg.Table.ItemHeight)
	}

	writeConfig(t, filepath.Join(project, ProjectConfigName), "table:\n  itemHeight: 90\n")
	cfg, err = LoadWithPlatform("", project, platform)
	if err != nil {
		t.Fatalf("LoadWithPlatform() error = %v", err)
	}
	if cfg.Table.ItemHeight != 90 {
		t.Errorf("project ItemHeight = %v, want 90", cfg.Table.ItemHeight)
	}

	explicit := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, explicit, "table:\n  itemHeight: 120\n")
	cfg, err = LoadWithPlatform(explicit, project, platform)
	if err != nil {
		t.Fatalf("LoadWithPlatform() error = %v", err)
	}
	if cfg.Table.ItemHeight != 120 {
		t.Errorf("explicit ItemHeight = %v, want 120", cfg.Table.ItemHeight)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := LoadWithPlatform(filepath.Join(t.TempDir(), "missing.yaml"), t.TempDir(), &MockPlatformProvider{OS: "linux"})
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %v, want read error", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeConfig(t, path, "table: [unclosed\n")

	_, err := LoadWithPlatform(path, "", &MockPlatformProvider{OS: "linux"})
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("error = %v, want parse error", err)
	}
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	writeConfig(t, path, `
table:
  itemHeight: -5
  lineUnits: 0
  wheelDelta: 45
  columns:
    - name: id
      width: -3
      align: diagonal
    - header: "|"
      width: 1
    - name: ten
      align: center
      foreground: "212"
data:
  db: /tmp/units.db
  file: units.jsonl
update:
  check: false
`)

	cfg, err := LoadWithPlatform(path, "", &MockPlatformProvider{OS: "linux"})
	if err != nil {
		t.Fatalf("LoadWithPlatform() error = %v", err)
	}
	if cfg.Table.ItemHeight != DefaultItemHeight || cfg.Table.LineUnits != DefaultLineUnits {
		t.Errorf("geometry = %v/%v, want defaults", cfg.Table.ItemHeight, cfg.Table.LineUnits)
	}
	if cfg.Table.WheelDelta != 45 {
		t.Errorf("WheelDelta = %v, want 45", cfg.Table.WheelDelta)
	}
	cols := cfg.Table.Columns
	if len(cols) != 3 {
		t.Fatalf("Columns = %d, want 3", len(cols))
	}
	if cols[0].Align != "left" || cols[0].Width != 0 {
		t.Errorf("column 0 = %+v, want left with width 0", cols[0])
	}
	if cols[1].Name != "" || cols[1].Header != "|" {
		t.Errorf("spacer column = %+v", cols[1])
	}
	if cols[2].Align != "center" || cols[2].Foreground != "212" {
		t.Errorf("column 2 = %+v", cols[2])
	}
	if cfg.DBPath() != "/tmp/units.db" || cfg.Data.File != "units.jsonl" {
		t.Errorf("data = %+v", cfg.Data)
	}
	if cfg.Update.Check {
		t.Error("Update.Check = true, want false")
	}
}
