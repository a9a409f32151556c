package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dchest/siphash"
	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/henri123lemoine/monaco/internal/debug"
)

// document is the on-disk shape of a data file.
type document struct {
	Goals    []Goal    `toml:"goals" yaml:"goals" json:"goals"`
	Rankings []Ranking `toml:"rankings" yaml:"rankings" json:"rankings"`
}

// LoadFile reads a TOML, YAML or JSON data file and returns a Provider over
// its contents. Records are validated before they are handed out.
func LoadFile(path string) (*Static, error) {
	defer debug.Timed("load data file")()

	format, err := formatOf(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	// Shared lock so a concurrent WriteSampleFile is never read half-written.
	// A lock we cannot create is not fatal.
	if fileLock, err := lockFor(path); err != nil {
		debug.Log("data file lock unavailable", "path", path, "error", err)
	} else if err := fileLock.RLock(); err != nil {
		debug.Log("data file lock unavailable", "path", path, "error", err)
	} else {
		defer fileLock.Unlock()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	doc, err := decode(format, data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if err := validate(path, doc); err != nil {
		return nil, err
	}

	debug.Log("data file loaded", "path", path, "goals", len(doc.Goals), "rankings", len(doc.Rankings))
	return NewStatic(doc.Goals, doc.Rankings), nil
}

// WriteSampleFile writes the built-in fixtures to path in the format implied
// by its extension.
func WriteSampleFile(path string) error {
	format, err := formatOf(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	data, err := encode(format, document{Goals: SampleGoals(), Rankings: SampleRankings()})
	if err != nil {
		return fmt.Errorf("encode sample data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Exclusive lock - blocks until readers are done
	fileLock, err := lockFor(path)
	if err != nil {
		return fmt.Errorf("lock data file: %w", err)
	}
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock data file: %w", err)
	}
	defer fileLock.Unlock()

	// Write atomically: write to temp file then rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// lockFor returns the lock guarding the data file at path. Locks live in the
// user cache directory, keyed by a hash of the absolute path, so nothing is
// created next to the data file.
func lockFor(path string) (*flock.Flock, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	dir := filepath.Join(cacheDir, "monaco", "locks")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%016x.lock", siphash.Hash(0, 0, []byte(abs)))
	return flock.New(filepath.Join(dir, name)), nil
}

func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func decode(format string, data []byte) (document, error) {
	var doc document
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(data, &doc)
	case "yaml":
		err = yaml.Unmarshal(data, &doc)
	case "json":
		err = json.Unmarshal(data, &doc)
	default:
		err = ErrUnsupportedFormat
	}
	return doc, err
}

func encode(format string, doc document) ([]byte, error) {
	switch format {
	case "toml":
		return toml.Marshal(doc)
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, ErrUnsupportedFormat
	}
}

// validate checks field presence and id uniqueness. All problems are
// reported, not just the first.
func validate(path string, doc document) error {
	var errs []error

	goalIDs := make(map[int]bool)
	for _, g := range doc.Goals {
		if goalIDs[g.ID] {
			errs = append(errs, &LoadError{Path: path, Resource: "goal", ID: g.ID, Err: ErrDuplicateID})
		}
		goalIDs[g.ID] = true
		if strings.TrimSpace(g.Title) == "" {
			errs = append(errs, &LoadError{Path: path, Resource: "goal", ID: g.ID, Err: ErrEmptyTitle})
		}
	}

	rankingIDs := make(map[int]bool)
	for _, r := range doc.Rankings {
		if rankingIDs[r.ID] {
			errs = append(errs, &LoadError{Path: path, Resource: "ranking", ID: r.ID, Err: ErrDuplicateID})
		}
		rankingIDs[r.ID] = true
		if strings.TrimSpace(r.Team) == "" {
			errs = append(errs, &LoadError{Path: path, Resource: "ranking", ID: r.ID, Err: ErrEmptyTeam})
		}
	}

	return errors.Join(errs...)
}
