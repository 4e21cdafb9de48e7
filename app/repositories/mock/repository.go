package mock

import (
	"sync"

	"noteboard/app/models"
	"noteboard/app/repositories"

	"github.com/google/uuid"
)

// NoteRepository is an in-memory NoteRepository for tests. It preserves
// insertion order, like the relational store's default listing.
type NoteRepository struct {
	notes []*models.Note
	index map[string]int
	mutex sync.RWMutex
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		index: make(map[string]int),
	}
}

func (m *NoteRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.notes = nil
	m.index = make(map[string]int)
}

func (m *NoteRepository) Create(note *models.Note) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	m.index[note.ID] = len(m.notes)
	m.notes = append(m.notes, note)
	return nil
}

func (m *NoteRepository) GetByID(id string) (*models.Note, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	i, exists := m.index[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return m.notes[i], nil
}

func (m *NoteRepository) List() ([]*models.Note, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	notes := make([]*models.Note, len(m.notes))
	copy(notes, m.notes)
	return notes, nil
}

func (m *NoteRepository) Update(note *models.Note) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i, exists := m.index[note.ID]
	if !exists {
		return repositories.ErrNotFound
	}
	m.notes[i] = note
	return nil
}

func (m *NoteRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i, exists := m.index[id]
	if !exists {
		return repositories.ErrNotFound
	}
	m.notes = append(m.notes[:i], m.notes[i+1:]...)
	delete(m.index, id)
	for j := i; j < len(m.notes); j++ {
		m.index[m.notes[j].ID] = j
	}
	return nil
}

func (m *NoteRepository) DeleteAll() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.notes = nil
	m.index = make(map[string]int)
	return nil
}
