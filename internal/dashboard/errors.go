package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported data file format")
	ErrEmptyTitle        = errors.New("goal title is empty")
	ErrEmptyTeam         = errors.New("ranking team is empty")
	ErrDuplicateID       = errors.New("duplicate id")
)

// LoadError reports a problem with one record of a data file.
type LoadError struct {
	Path     string
	Resource string
	ID       int
	Err      error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	if e.Resource == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s %d: %v", e.Path, e.Resource, e.ID, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
