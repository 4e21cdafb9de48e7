package repositories

import (
	"noteboard/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerNoteRepository implements NoteRepository using BadgerDB. It is the
// zero-configuration embedded store used when no database URL is set.
type BadgerNoteRepository struct {
	db *badger.DB
}

// NewBadgerNoteRepository creates a new BadgerNoteRepository
func NewBadgerNoteRepository(db *badger.DB) *BadgerNoteRepository {
	return &BadgerNoteRepository{db: db}
}

// OpenBadger opens the embedded store at the given path.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1)
	return badger.Open(opts)
}

// Create stores a new note, assigning its ID
func (r *BadgerNoteRepository) Create(note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}

	data, err := marshalEntity(note)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(noteKey(note.ID), data)
	})
}

// GetByID retrieves a note by ID
func (r *BadgerNoteRepository) GetByID(id string) (*models.Note, error) {
	var note models.Note

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(noteKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &note)
		})
	})

	if err != nil {
		return nil, err
	}
	return &note, nil
}

// List retrieves all notes in key order
func (r *BadgerNoteRepository) List() ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(NoteKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var note models.Note
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &note)
			})
			if err != nil {
				return err
			}
			notes = append(notes, &note)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Update updates an existing note
func (r *BadgerNoteRepository) Update(note *models.Note) error {
	return r.db.Update(func(txn *badger.Txn) error {
		// Verify note exists
		_, err := txn.Get(noteKey(note.ID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(note)
		if err != nil {
			return err
		}
		return txn.Set(noteKey(note.ID), data)
	})
}

// Delete deletes a note by ID
func (r *BadgerNoteRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(noteKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(noteKey(id))
	})
}

// DeleteAll removes every note from the store
func (r *BadgerNoteRepository) DeleteAll() error {
	return r.db.DropPrefix([]byte(NoteKeyPrefix))
}
