package repositories

import (
	"errors"
	"time"

	"noteboard/app/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormNoteRepository implements NoteRepository on a relational notes table.
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// OpenPostgres connects to PostgreSQL, migrates the notes table and tunes
// the connection pool.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Note{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Create stores a new note, assigning its ID
func (r *GormNoteRepository) Create(note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	return r.db.Create(note).Error
}

// GetByID retrieves a note by ID
func (r *GormNoteRepository) GetByID(id string) (*models.Note, error) {
	var note models.Note
	err := r.db.First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// List retrieves all notes in insertion order
func (r *GormNoteRepository) List() ([]*models.Note, error) {
	var notes []*models.Note
	if err := r.db.Order("inserted_at").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Update updates an existing note
func (r *GormNoteRepository) Update(note *models.Note) error {
	res := r.db.Model(&models.Note{}).Where("id = ?", note.ID).Updates(map[string]interface{}{
		"title":      note.Title,
		"body":       note.Body,
		"user":       note.User,
		"location":   note.Location,
		"updated_at": note.UpdatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a note by ID
func (r *GormNoteRepository) Delete(id string) error {
	res := r.db.Delete(&models.Note{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every note from the table
func (r *GormNoteRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Note{}).Error
}
