package collision

import (
	"fmt"

	"github.com/arloliu/halotag/errs"
)

// Tracker tracks archive entry paths by ID and detects hash collisions while
// an archive is being written.
type Tracker struct {
	paths     map[uint64]string // ID → normalized path
	pathsList []string          // Ordered list for the path table
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		paths:     make(map[uint64]string),
		pathsList: make([]string, 0),
	}
}

// Track records a path with its ID.
//
// Returns ErrInvalidPath for an empty path, ErrDuplicatePath when the same
// path is tracked twice and ErrHashCollision when two different paths share
// an ID. Archive IDs must be unique, so a collision cannot be stored.
func (t *Tracker) Track(path string, id uint64) error {
	if path == "" {
		return errs.ErrInvalidPath
	}

	if existing, exists := t.paths[id]; exists {
		if existing == path {
			return fmt.Errorf("%w: %s", errs.ErrDuplicatePath, path)
		}

		return fmt.Errorf("%w: %s and %s", errs.ErrHashCollision, existing, path)
	}

	t.paths[id] = path
	t.pathsList = append(t.pathsList, path)

	return nil
}

// Paths returns the tracked paths in the order Track was called.
func (t *Tracker) Paths() []string {
	return t.pathsList
}

// Count returns the number of tracked paths.
func (t *Tracker) Count() int {
	return len(t.pathsList)
}

// Reset clears all tracked paths.
func (t *Tracker) Reset() {
	clear(t.paths)
	t.pathsList = t.pathsList[:0]
}
