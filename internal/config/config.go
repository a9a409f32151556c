// Package config handles monaco configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/monaco/internal/debug"
	"github.com/henri123lemoine/monaco/internal/theme"
)

// Config represents monaco configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	UI      UIConfig      `toml:"ui"`
	Server  ServerConfig  `toml:"server"`
	Export  ExportConfig  `toml:"export"`
	Log     LogConfig     `toml:"log"`
	Keys    KeysConfig    `toml:"keys"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// Data file with goals and rankings (.toml, .yaml, .yml or .json).
	// Empty serves the built-in sample data.
	DataFile string `toml:"data_file"`

	// Directory of GameRoom JSON exports read by `monaco gameroom`.
	GameRoomDir string `toml:"gameroom_dir"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: "monaco" or "terminal"
	Theme string `toml:"theme"`

	// Show scores next to the trend glyph
	ShowScores bool `toml:"show_scores"`

	// Show the key help line
	ShowHelp bool `toml:"show_help"`
}

// ServerConfig contains settings for the HTML page server.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`

	// Extra class tokens for each card on the page.
	CardClass string `toml:"card_class"`
}

// ExportConfig contains settings for PDF export from the terminal UI.
type ExportConfig struct {
	// Output directory (empty = current directory)
	Dir string `toml:"dir"`

	FileName string `toml:"file_name"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level: "debug", "info", "warn" or "error"
	Level string `toml:"level"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up     string `toml:"up"`
	Down   string `toml:"down"`
	Home   string `toml:"home"`
	End    string `toml:"end"`
	Focus  string `toml:"focus"`
	Filter string `toml:"filter"`
	Detail string `toml:"detail"`
	Export string `toml:"export"`
	Help   string `toml:"help"`
	Quit   string `toml:"quit"`
}

// Duration is a time.Duration written as text ("5s") in TOML.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:      theme.Default,
			ShowScores: true,
			ShowHelp:   true,
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			ReadTimeout:     Duration{5 * time.Second},
			WriteTimeout:    Duration{10 * time.Second},
			ShutdownTimeout: Duration{5 * time.Second},
		},
		Export: ExportConfig{
			FileName: "monaco-dashboard.pdf",
		},
		Log: LogConfig{
			Level: "info",
		},
		Keys: KeysConfig{
			Up:     "up,k",
			Down:   "down,j",
			Home:   "home,g",
			End:    "end,G",
			Focus:  "tab",
			Filter: "/",
			Detail: "i",
			Export: "e",
			Help:   "?",
			Quit:   "q,ctrl+c",
		},
	}
}

// ExportPath returns the file the terminal UI exports to.
func (c *Config) ExportPath() string {
	return filepath.Join(c.Export.Dir, c.Export.FileName)
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/monaco/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "monaco", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "monaco", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "monaco", "config.toml")
	}
	return filepath.Join(configDir, "monaco", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			debug.Log("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything else, booleans included.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	debug.Log("config loaded", "path", path)
	return cfg, nil
}

// SaveTo writes cfg to path, creating parent directories.
func SaveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// CreateDefaultConfigFile writes a commented default config to path. A
// non-empty dataFile is set as general.data_file. It refuses to overwrite an
// existing file.
func CreateDefaultConfigFile(path, dataFile string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s: %w", path, os.ErrExist)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	content := generateDefaultConfigContent(dataFile)
	return os.WriteFile(path, []byte(content), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent(dataFile string) string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# Monaco Configuration\n\n")

	b.WriteString("[general]\n")
	b.WriteString("# Goals and rankings file (.toml, .yaml, .yml or .json)\n")
	b.WriteString("# Leave unset to show the built-in sample data.\n")
	if dataFile != "" {
		fmt.Fprintf(&b, "data_file = %q\n", dataFile)
	} else {
		b.WriteString("# data_file = \"/srv/monaco/dashboard.toml\"\n")
	}
	b.WriteString("# Directory of GameRoom JSON exports for `monaco gameroom`\n")
	b.WriteString("# gameroom_dir = \"/srv/monaco/gameroom\"\n\n")

	b.WriteString("[ui]\n")
	fmt.Fprintf(&b, "# Color theme: %s\n", strings.Join(quoteAll(theme.Names()), " or "))
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	b.WriteString("# Show scores next to the trend arrow\n")
	fmt.Fprintf(&b, "show_scores = %v\n", cfg.UI.ShowScores)
	b.WriteString("# Show the key help line\n")
	fmt.Fprintf(&b, "show_help = %v\n\n", cfg.UI.ShowHelp)

	b.WriteString("[server]\n")
	b.WriteString("# Listen address for `monaco serve`\n")
	fmt.Fprintf(&b, "addr = %q\n", cfg.Server.Addr)
	fmt.Fprintf(&b, "read_timeout = %q\n", cfg.Server.ReadTimeout)
	fmt.Fprintf(&b, "write_timeout = %q\n", cfg.Server.WriteTimeout)
	b.WriteString("# Grace period for in-flight requests on shutdown\n")
	fmt.Fprintf(&b, "shutdown_timeout = %q\n", cfg.Server.ShutdownTimeout)
	b.WriteString("# Extra CSS classes added to each card\n")
	b.WriteString("# card_class = \"compact\"\n\n")

	b.WriteString("[export]\n")
	b.WriteString("# Where the terminal UI writes PDF exports (empty = current directory)\n")
	fmt.Fprintf(&b, "dir = %q\n", cfg.Export.Dir)
	fmt.Fprintf(&b, "file_name = %q\n\n", cfg.Export.FileName)

	b.WriteString("[log]\n")
	b.WriteString("# \"debug\", \"info\", \"warn\" or \"error\"\n")
	fmt.Fprintf(&b, "level = %q\n\n", cfg.Log.Level)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# home = %q\n", cfg.Keys.Home)
	fmt.Fprintf(&b, "# end = %q\n", cfg.Keys.End)
	fmt.Fprintf(&b, "# focus = %q\n", cfg.Keys.Focus)
	fmt.Fprintf(&b, "# filter = %q\n", cfg.Keys.Filter)
	fmt.Fprintf(&b, "# detail = %q\n", cfg.Keys.Detail)
	fmt.Fprintf(&b, "# export = %q\n", cfg.Keys.Export)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.UI.Theme != "" {
		if _, ok := theme.Get(c.UI.Theme); !ok {
			warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected %s)", c.UI.Theme, strings.Join(theme.Names(), " or ")))
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("Invalid value for log.level: %s (expected debug, info, warn, or error)", c.Log.Level))
	}

	if c.General.DataFile != "" {
		switch strings.ToLower(filepath.Ext(c.General.DataFile)) {
		case ".toml", ".yaml", ".yml", ".json":
		default:
			warnings = append(warnings, fmt.Sprintf("Unsupported data file extension: %s", c.General.DataFile))
		}
	}

	if c.Server.ShutdownTimeout.Duration < 0 {
		warnings = append(warnings, "server.shutdown_timeout must not be negative")
	}

	if c.Export.FileName == "" {
		warnings = append(warnings, "export.file_name is empty")
	}

	warnings = append(warnings, c.Keys.duplicates()...)

	return warnings
}

// duplicates reports keys bound to more than one action.
func (k KeysConfig) duplicates() []string {
	actions := []struct {
		name string
		keys string
	}{
		{"up", k.Up},
		{"down", k.Down},
		{"home", k.Home},
		{"end", k.End},
		{"focus", k.Focus},
		{"filter", k.Filter},
		{"detail", k.Detail},
		{"export", k.Export},
		{"help", k.Help},
		{"quit", k.Quit},
	}

	var warnings []string
	owner := make(map[string]string)
	for _, a := range actions {
		for _, key := range strings.Split(a.keys, ",") {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			if prev, ok := owner[key]; ok && prev != a.name {
				warnings = append(warnings, fmt.Sprintf("Key %q is bound to both %s and %s", key, prev, a.name))
				continue
			}
			owner[key] = a.name
		}
	}
	return warnings
}
