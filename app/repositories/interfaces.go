package repositories

import "noteboard/app/models"

// NoteRepository defines the interface for note data access. The store
// assigns IDs on creation.
type NoteRepository interface {
	Create(note *models.Note) error
	GetByID(id string) (*models.Note, error)
	List() ([]*models.Note, error)
	Update(note *models.Note) error
	Delete(id string) error
	DeleteAll() error
}
