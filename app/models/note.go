package models

import (
	"errors"
	"time"
)

// Validate checks if the note meets all validation requirements
func (n *Note) Validate() error {
	if err := validate.Struct(n); err != nil {
		return err
	}

	if !n.InsertedAt.IsZero() && n.UpdatedAt.Before(n.InsertedAt) {
		return errors.New("updated_at cannot be before inserted_at")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (n *Note) BeforeCreate() {
	if n.InsertedAt.IsZero() {
		n.InsertedAt = time.Now()
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = n.InsertedAt
	}
}

// Touch refreshes UpdatedAt for an update. UpdatedAt must end up strictly
// after InsertedAt even when the clock has not visibly advanced.
func (n *Note) Touch() {
	now := time.Now()
	if !now.After(n.InsertedAt) {
		now = n.InsertedAt.Add(time.Nanosecond)
	}
	n.UpdatedAt = now
}

// Creator returns the author name, or the empty string for anonymous notes.
func (n *Note) Creator() string {
	return n.User
}
