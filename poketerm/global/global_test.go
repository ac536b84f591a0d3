package global

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nathanieltooley/porycalc/porygon"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	configDir := t.TempDir()
	configFile := filepath.Join(configDir, "config.json")

	config, err := loadConfig(configDir, configFile)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if config.DefaultLevel != porygon.MAX_LEVEL {
		t.Fatalf("expected default level %d, got %d", porygon.MAX_LEVEL, config.DefaultLevel)
	}

	if config.TeamSaveLocation != filepath.Join(configDir, "saves", "teams.json") {
		t.Fatalf("unexpected save location: %s", config.TeamSaveLocation)
	}

	if _, err := os.Stat(configFile); err != nil {
		t.Fatalf("expected the config file to be written: %s", err)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	configDir := t.TempDir()
	configFile := filepath.Join(configDir, "config.json")

	if err := os.WriteFile(configFile, []byte(`{"TeamSaveLocation": "/tmp/teams.json", "DefaultLevel": 50, "Debug": true}`), 0644); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	config, err := loadConfig(configDir, configFile)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := GlobalConfig{TeamSaveLocation: "/tmp/teams.json", DefaultLevel: 50, Debug: true}
	if config != expected {
		t.Fatalf("expected %+v, got %+v", expected, config)
	}
}

func TestLoadConfigInvalidLevel(t *testing.T) {
	configDir := t.TempDir()
	configFile := filepath.Join(configDir, "config.json")

	if err := os.WriteFile(configFile, []byte(`{"DefaultLevel": 500}`), 0644); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	config, _ := loadConfig(configDir, configFile)
	if config.DefaultLevel != porygon.MAX_LEVEL {
		t.Fatalf("expected an out of range level to fall back to %d, got %d", porygon.MAX_LEVEL, config.DefaultLevel)
	}
}

func TestLoadConfigBadJson(t *testing.T) {
	configDir := t.TempDir()
	configFile := filepath.Join(configDir, "config.json")

	if err := os.WriteFile(configFile, []byte(`{`), 0644); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	config, err := loadConfig(configDir, configFile)
	if err == nil {
		t.Fatalf("expected an error for bad json")
	}

	if config.DefaultLevel != porygon.MAX_LEVEL {
		t.Fatalf("expected defaults alongside the error, got %+v", config)
	}
}

func TestRollingFileWriter(t *testing.T) {
	writer := NewRollingFileWriter(t.TempDir(), "test")
	writer.MaxSize = 10
	writer.MaxLogs = 2

	for range 4 {
		if _, err := writer.Write([]byte("0123456789")); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	logs, err := writer.archivedLogs(writer.FileName)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if len(logs) != 1 || filepath.Base(logs[0]) != "test-1.log" {
		t.Fatalf("expected only test-1.log to be archived, got %v", logs)
	}

	if _, err := os.Stat(writer.mainLogPath()); err != nil {
		t.Fatalf("expected the main log to exist: %s", err)
	}
}

func TestGetLogIndex(t *testing.T) {
	cases := map[string]int64{
		"/logs/porycalc-1.log":  1,
		"/logs/porycalc-12.log": 12,
		"/logs/porycalc-x.log":  -1,
		"/logs/other-3.log":     -1,
	}

	for path, expected := range cases {
		if got := getLogIndex("porycalc", path); got != expected {
			t.Errorf("%s: expected %d, got %d", path, expected, got)
		}
	}
}
