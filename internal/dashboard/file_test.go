package dashboard

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolateLocks points the user cache directory, where data file locks
// live, at a temporary directory.
func isolateLocks(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	return dir
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	isolateLocks(t)
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test data: %v", err)
	}
	return path
}

func TestLoadFileFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "data.toml",
			content: `[[goals]]
id = 1
title = "Ship it"
deadline = "2024-12-31"
completed = true

[[rankings]]
id = 1
team = "Alpha Team"
score = 95
trend = "up"

[[rankings]]
id = 2
team = "Beta Team"
score = 88
trend = "sideways"
`,
		},
		{
			name: "yaml",
			file: "data.yaml",
			content: `goals:
  - id: 1
    title: Ship it
    deadline: "2024-12-31"
    completed: true
rankings:
  - id: 1
    team: Alpha Team
    score: 95
    trend: up
  - id: 2
    team: Beta Team
    score: 88
    trend: sideways
`,
		},
		{
			name: "json",
			file: "data.json",
			content: `{
  "goals": [{"id": 1, "title": "Ship it", "deadline": "2024-12-31", "completed": true}],
  "rankings": [
    {"id": 1, "team": "Alpha Team", "score": 95, "trend": "up"},
    {"id": 2, "team": "Beta Team", "score": 88, "trend": "sideways"}
  ]
}`,
		},
	}

	wantGoals := []Goal{{ID: 1, Title: "Ship it", Deadline: "2024-12-31", Completed: true}}
	wantRankings := []Ranking{
		{ID: 1, Team: "Alpha Team", Score: 95, Trend: "up"},
		{ID: 2, Team: "Beta Team", Score: 88, Trend: "sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LoadFile(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadFile() error: %v", err)
			}
			if !reflect.DeepEqual(p.Goals(), wantGoals) {
				t.Errorf("Goals() = %+v, want %+v", p.Goals(), wantGoals)
			}
			if !reflect.DeepEqual(p.Rankings(), wantRankings) {
				t.Errorf("Rankings() = %+v, want %+v", p.Rankings(), wantRankings)
			}
		})
	}
}

func TestLoadFileTrendMatchingIsExact(t *testing.T) {
	path := writeFile(t, "data.json", `{
  "rankings": [
    {"id": 1, "team": "A", "score": 10, "trend": "UP"},
    {"id": 2, "team": "B", "score": 20, "trend": " Down "},
    {"id": 3, "team": "C", "score": 30, "trend": "down"}
  ]
}`)

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	rows := Build(p).Rankings

	tests := []struct {
		team      string
		glyph     string
		tone      Tone
		trendText string
	}{
		{"A", GlyphNeutral, ToneNeutral, "UP"},
		{"B", GlyphNeutral, ToneNeutral, " Down "},
		{"C", GlyphDown, ToneNegative, "down"},
	}
	for i, tt := range tests {
		row := rows[i]
		if row.Team != tt.team || row.Glyph != tt.glyph || row.Tone != tt.tone {
			t.Errorf("Row %d = %s %s %v, want %s %s %v", i, row.Team, row.Glyph, row.Tone, tt.team, tt.glyph, tt.tone)
		}
		if row.TrendText != tt.trendText {
			t.Errorf("Row %d TrendText = %q, want %q", i, row.TrendText, tt.trendText)
		}
	}
}

func TestLoadFileLeavesDataDirUntouched(t *testing.T) {
	cache := isolateLocks(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "team.json")
	if err := os.WriteFile(path, []byte(`{"goals": [{"id": 1, "title": "a"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "team.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only the data file, got %v", names)
	}

	locks, err := os.ReadDir(filepath.Join(cache, "monaco", "locks"))
	if err != nil || len(locks) != 1 {
		t.Errorf("Expected one lock in the cache directory, got %d (%v)", len(locks), err)
	}
}

func TestLockForIsStablePerPath(t *testing.T) {
	isolateLocks(t)
	dir := t.TempDir()

	a1, err := lockFor(filepath.Join(dir, "a.toml"))
	if err != nil {
		t.Fatalf("lockFor() error: %v", err)
	}
	a2, _ := lockFor(filepath.Join(dir, ".", "a.toml"))
	b, _ := lockFor(filepath.Join(dir, "b.toml"))

	if a1.Path() != a2.Path() {
		t.Errorf("Expected the same lock for the same file, got %s and %s", a1.Path(), a2.Path())
	}
	if a1.Path() == b.Path() {
		t.Error("Expected different files to get different locks")
	}
}

func TestLoadFileUnsupportedFormat(t *testing.T) {
	_, err := LoadFile(writeFile(t, "data.ini", "goals="))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	isolateLocks(t)
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	_, err := LoadFile(writeFile(t, "data.toml", "[[goals]\nid = "))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %v", err)
	}
	if loadErr.Resource != "" {
		t.Errorf("Expected file-level error, got resource %q", loadErr.Resource)
	}
}

func TestLoadFileValidation(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  error
		resource string
		id       int
	}{
		{
			name:     "duplicate goal id",
			content:  "[[goals]]\nid = 1\ntitle = \"a\"\n[[goals]]\nid = 1\ntitle = \"b\"\n",
			wantErr:  ErrDuplicateID,
			resource: "goal",
			id:       1,
		},
		{
			name:     "empty goal title",
			content:  "[[goals]]\nid = 3\ntitle = \"  \"\n",
			wantErr:  ErrEmptyTitle,
			resource: "goal",
			id:       3,
		},
		{
			name:     "duplicate ranking id",
			content:  "[[rankings]]\nid = 2\nteam = \"a\"\n[[rankings]]\nid = 2\nteam = \"b\"\n",
			wantErr:  ErrDuplicateID,
			resource: "ranking",
			id:       2,
		},
		{
			name:     "missing team",
			content:  "[[rankings]]\nid = 5\nscore = 1\n",
			wantErr:  ErrEmptyTeam,
			resource: "ranking",
			id:       5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, "data.toml", tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Expected *LoadError, got %T", err)
			}
			if loadErr.Resource != tt.resource || loadErr.ID != tt.id {
				t.Errorf("Expected %s %d, got %s %d", tt.resource, tt.id, loadErr.Resource, loadErr.ID)
			}
		})
	}
}

func TestSameIDAcrossCollectionsIsAllowed(t *testing.T) {
	content := "[[goals]]\nid = 1\ntitle = \"a\"\n[[rankings]]\nid = 1\nteam = \"b\"\n"
	if _, err := LoadFile(writeFile(t, "data.toml", content)); err != nil {
		t.Errorf("Expected ids to be unique per collection only, got %v", err)
	}
}

func TestWriteSampleFileRoundTrip(t *testing.T) {
	isolateLocks(t)
	for _, name := range []string{"sample.toml", "sample.yaml", "sample.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			if err := WriteSampleFile(path); err != nil {
				t.Fatalf("WriteSampleFile() error: %v", err)
			}

			p, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error: %v", err)
			}
			if !reflect.DeepEqual(Build(p), Build(Sample())) {
				t.Error("Expected the written sample to render like the built-in sample")
			}
		})
	}
}

func TestWriteSampleFileUnsupportedFormat(t *testing.T) {
	err := WriteSampleFile(filepath.Join(t.TempDir(), "sample.txt"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
