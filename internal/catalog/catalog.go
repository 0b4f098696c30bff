package catalog

// Package catalog caches the list of valid animal classes fetched from the
// backend and derives the display names shown in the correction dropdown.

import (
	"context"
	"fmt"
	"sync"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/backend"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
)

// Catalog holds the class list for the session. Load replaces the cache
// wholesale on success; a failed fetch leaves the previous cache untouched.
// Callers must inspect the catalog before use rather than assume Load
// populated it.
type Catalog struct {
	api backend.API

	mu      sync.RWMutex
	classes []model.ClassName
}

// New creates an empty catalog backed by the given API
func New(api backend.API) *Catalog {
	return &Catalog{api: api}
}

// Load fetches the class list once. Safe to call repeatedly; each successful
// call fully replaces the cache.
func (c *Catalog) Load(ctx context.Context) error {
	classes, err := c.api.Classes(ctx)
	if err != nil {
		return fmt.Errorf("load class catalog: %w", err)
	}

	c.mu.Lock()
	c.classes = classes
	c.mu.Unlock()
	return nil
}

// Classes returns a snapshot of the cached class list in catalog order
func (c *Catalog) Classes() []model.ClassName {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.ClassName, len(c.classes))
	copy(out, c.classes)
	return out
}

// DisplayNames returns the display form of every class, in catalog order
func (c *Catalog) DisplayNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.classes))
	for i, class := range c.classes {
		out[i] = class.Display()
	}
	return out
}

// ByDisplayName maps a display name back to its ClassName
func (c *Catalog) ByDisplayName(display string) (model.ClassName, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, class := range c.classes {
		if class.Display() == display {
			return class, true
		}
	}
	return "", false
}

// IsEmpty reports whether no catalog has been loaded yet
func (c *Catalog) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.classes) == 0
}
