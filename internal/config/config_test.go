package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.Theme != "monaco" {
		t.Errorf("Expected default theme 'monaco', got %q", cfg.UI.Theme)
	}

	if cfg.General.DataFile != "" {
		t.Errorf("Expected no default data file, got %q", cfg.General.DataFile)
	}

	if cfg.UI.ShowScores != true {
		t.Error("Expected ShowScores to be true")
	}

	if cfg.Server.ShutdownTimeout.Duration != 5*time.Second {
		t.Errorf("Expected 5s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}

	if got := cfg.ExportPath(); got != "monaco-dashboard.pdf" {
		t.Errorf("Expected export path 'monaco-dashboard.pdf', got %q", got)
	}
}

func TestValidate(t *testing.T) {
	with := func(edit func(*Config)) *Config {
		cfg := DefaultConfig()
		edit(cfg)
		return cfg
	}

	tests := []struct {
		name        string
		config      *Config
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			config:      DefaultConfig(),
			wantWarning: false,
		},
		{
			name:        "terminal theme",
			config:      with(func(c *Config) { c.UI.Theme = "terminal" }),
			wantWarning: false,
		},
		{
			name:        "invalid theme",
			config:      with(func(c *Config) { c.UI.Theme = "solarized" }),
			wantWarning: true,
		},
		{
			name:        "invalid log level",
			config:      with(func(c *Config) { c.Log.Level = "loud" }),
			wantWarning: true,
		},
		{
			name:        "yaml data file",
			config:      with(func(c *Config) { c.General.DataFile = "team.yaml" }),
			wantWarning: false,
		},
		{
			name:        "unsupported data file",
			config:      with(func(c *Config) { c.General.DataFile = "team.csv" }),
			wantWarning: true,
		},
		{
			name:        "negative shutdown timeout",
			config:      with(func(c *Config) { c.Server.ShutdownTimeout = Duration{-time.Second} }),
			wantWarning: true,
		},
		{
			name:        "empty export file name",
			config:      with(func(c *Config) { c.Export.FileName = "" }),
			wantWarning: true,
		},
		{
			name:        "key bound twice",
			config:      with(func(c *Config) { c.Keys.Export = "q" }),
			wantWarning: true,
		},
		{
			name:        "same key repeated in one binding",
			config:      with(func(c *Config) { c.Keys.Up = "up,k,k" }),
			wantWarning: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	// Only specify some values - others should keep defaults
	tomlContent := `[general]
data_file = "team.yaml"

[ui]
show_help = false

[server]
shutdown_timeout = "30s"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.General.DataFile != "team.yaml" {
		t.Errorf("Expected data file 'team.yaml', got %q", cfg.General.DataFile)
	}

	if cfg.UI.ShowHelp {
		t.Error("Expected ShowHelp to be false")
	}

	if cfg.Server.ShutdownTimeout.Duration != 30*time.Second {
		t.Errorf("Expected 30s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}

	// Check that non-specified values keep defaults
	if cfg.UI.ShowScores != true {
		t.Error("Expected ShowScores to remain true (default) when not specified in config")
	}

	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Expected default addr, got %q", cfg.Server.Addr)
	}

	if cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("Expected default read timeout, got %v", cfg.Server.ReadTimeout)
	}

	if cfg.Keys.Quit != "q,ctrl+c" {
		t.Errorf("Expected default quit keys, got %q", cfg.Keys.Quit)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[ui\ntheme = "},
		{"bad duration", "[server]\nread_timeout = \"soon\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFromPath(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestDefaultConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monaco", "config.toml")

	if err := CreateDefaultConfigFile(path, ""); err != nil {
		t.Fatalf("CreateDefaultConfigFile() error: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Generated config should load as the defaults.\ngot:  %+v\nwant: %+v", cfg, DefaultConfig())
	}

	data, _ := os.ReadFile(path)
	for _, want := range []string{"[ui]", "[server]", "[export]", "[log]", "[keys]", `"terminal"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected generated config to contain %s", want)
		}
	}

	err = CreateDefaultConfigFile(path, "")
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("Expected os.ErrExist on second create, got %v", err)
	}
}

func TestDefaultConfigFileWithDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	dataFile := filepath.Join(t.TempDir(), "team.json")

	if err := CreateDefaultConfigFile(path, dataFile); err != nil {
		t.Fatalf("CreateDefaultConfigFile() error: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.General.DataFile != dataFile {
		t.Errorf("DataFile = %q, want %q", cfg.General.DataFile, dataFile)
	}

	want := DefaultConfig()
	want.General.DataFile = dataFile
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Expected defaults apart from the data file.\ngot:  %+v\nwant: %+v", cfg, want)
	}
}

func TestLoadUsesConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "monaco", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"terminal\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", cfg.UI.Theme)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.UI.Theme = "terminal"
	cfg.Server.WriteTimeout = Duration{time.Minute}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("Saved config did not load back.\ngot:  %+v\nwant: %+v", loaded, cfg)
	}
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "monaco", "config.toml")
	if got := ConfigPath(); got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	path := ConfigPath()
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected config.toml, got %q", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != "monaco" {
		t.Errorf("Expected monaco dir, got %q", filepath.Base(filepath.Dir(path)))
	}
}
