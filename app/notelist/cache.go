package notelist

import (
	"sync"

	"noteboard/app/models"
)

// Cache is the locally held copy of the list-all result: a single
// authoritative in-memory collection with explicit CRUD methods. Delete
// paths mutate it optimistically so the UI reflects a deletion without
// waiting for a refetch; server responses reconcile through Replace and
// Upsert.
type Cache struct {
	mutex sync.RWMutex
	notes []*models.Note
}

// NewCache creates an empty cache. It is cold until the first Replace.
func NewCache() *Cache {
	return &Cache{}
}

// Replace swaps in a fresh list-all result and marks the cache warm.
func (c *Cache) Replace(notes []*models.Note) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.notes = make([]*models.Note, len(notes))
	copy(c.notes, notes)
}

// All returns a copy of the held collection, preserving order. The copy
// keeps callers (filtering, sorting) from corrupting the cache.
func (c *Cache) All() []*models.Note {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	notes := make([]*models.Note, len(c.notes))
	copy(notes, c.notes)
	return notes
}

// Get returns the cached note with the given ID, if present.
func (c *Cache) Get(id string) (*models.Note, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, note := range c.notes {
		if note.ID == id {
			return note, true
		}
	}
	return nil, false
}

// Upsert reconciles a created or updated note into the collection.
func (c *Cache) Upsert(note *models.Note) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for i, held := range c.notes {
		if held.ID == note.ID {
			c.notes[i] = note
			return
		}
	}
	c.notes = append(c.notes, note)
}

// Remove drops the entry with the given ID and reports whether it was
// present. Used for optimistic deletes; there is no rollback path.
func (c *Cache) Remove(id string) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for i, note := range c.notes {
		if note.ID == id {
			c.notes = append(c.notes[:i], c.notes[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the collection. Used for optimistic delete-all. The cache
// stays warm: an empty list is a valid list-all result.
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.notes = []*models.Note{}
}

// Len returns the number of held notes.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.notes)
}

// Warm reports whether the cache holds a list-all result.
func (c *Cache) Warm() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.notes != nil
}
