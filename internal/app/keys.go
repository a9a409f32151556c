package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/monaco/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Home  key.Binding
	End   key.Binding
	Focus key.Binding

	// Actions
	Filter key.Binding
	Detail key.Binding
	Export key.Binding

	// General
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "last"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch card"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Detail: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "details"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export pdf"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings. Empty entries
// keep the default binding.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	rebind(&km.Up, cfg.Up, "up")
	rebind(&km.Down, cfg.Down, "down")
	rebind(&km.Home, cfg.Home, "first")
	rebind(&km.End, cfg.End, "last")
	rebind(&km.Focus, cfg.Focus, "switch card")
	rebind(&km.Filter, cfg.Filter, "filter")
	rebind(&km.Detail, cfg.Detail, "details")
	rebind(&km.Export, cfg.Export, "export pdf")
	rebind(&km.Help, cfg.Help, "help")
	rebind(&km.Quit, cfg.Quit, "quit")

	return km
}

func rebind(b *key.Binding, keys, desc string) {
	parsed := parseKeys(keys)
	if len(parsed) == 0 {
		return
	}
	*b = key.NewBinding(
		key.WithKeys(parsed...),
		key.WithHelp(strings.Join(parsed, "/"), desc),
	)
}

// parseKeys parses a comma-separated list of keys.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
