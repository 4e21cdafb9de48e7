package services

import (
	"fmt"

	"noteboard/app/models"
	"noteboard/app/repositories"
)

// NoteService handles business logic for notes
type NoteService struct {
	noteRepo repositories.NoteRepository
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo repositories.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

// CreateNote creates a new note with validation. The store assigns the ID;
// InsertedAt and UpdatedAt start out equal.
func (s *NoteService) CreateNote(note *models.Note) error {
	if err := note.Validate(); err != nil {
		return fmt.Errorf("invalid note: %v", err)
	}

	note.ID = ""
	note.BeforeCreate()

	return s.noteRepo.Create(note)
}

// GetNote retrieves a note by ID
func (s *NoteService) GetNote(id string) (*models.Note, error) {
	return s.noteRepo.GetByID(id)
}

// ListNotes retrieves all notes
func (s *NoteService) ListNotes() ([]*models.Note, error) {
	return s.noteRepo.List()
}

// UpdateNote updates an existing note with validation, preserving the
// creation timestamp and refreshing UpdatedAt.
func (s *NoteService) UpdateNote(note *models.Note) error {
	if err := note.Validate(); err != nil {
		return fmt.Errorf("invalid note: %v", err)
	}

	existing, err := s.noteRepo.GetByID(note.ID)
	if err != nil {
		return err
	}

	note.InsertedAt = existing.InsertedAt
	note.Touch()

	return s.noteRepo.Update(note)
}

// DeleteNote deletes a note and returns the deleted record
func (s *NoteService) DeleteNote(id string) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Delete(id); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteAllNotes deletes every note and returns the deleted records
func (s *NoteService) DeleteAllNotes() ([]*models.Note, error) {
	notes, err := s.noteRepo.List()
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.DeleteAll(); err != nil {
		return nil, err
	}
	return notes, nil
}
