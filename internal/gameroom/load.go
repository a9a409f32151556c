package gameroom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/henri123lemoine/monaco/internal/debug"
)

// ErrNoData is returned when a directory holds no collection file.
var ErrNoData = errors.New("no GameRoom collection files")

// LoadDir reads the collection files in dir. Files are named after their
// collection; other .json files are skipped.
func LoadDir(dir string) (*Data, error) {
	defer debug.Timed("load gameroom data")()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	data := &Data{}
	found := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		var target any
		switch strings.TrimSuffix(e.Name(), ".json") {
		case "gamehistories":
			target = &data.Matches
		case "tickets":
			target = &data.Tickets
		case "users":
			target = &data.Users
		case "gameevents":
			target = &data.Events
		case "orders":
			target = &data.Orders
		default:
			debug.Log("skipping unknown collection", "file", e.Name())
			continue
		}

		if err := readCollection(filepath.Join(dir, e.Name()), target); err != nil {
			return nil, err
		}
		found++
	}

	if found == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoData)
	}

	debug.Log("gameroom data loaded",
		"dir", dir,
		"matches", len(data.Matches),
		"tickets", len(data.Tickets),
		"users", len(data.Users),
		"events", len(data.Events),
		"orders", len(data.Orders),
	)
	return data, nil
}

func readCollection(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read collection: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
