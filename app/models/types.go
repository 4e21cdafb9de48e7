package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Note represents a short text note with an optional author and location.
type Note struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey" validate:"-"`
	Title      string    `json:"title" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	Body       string    `json:"body" gorm:"type:text;not null" validate:"required"`
	User       string    `json:"user,omitempty" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	Location   string    `json:"location,omitempty" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	InsertedAt time.Time `json:"insertedAt" gorm:"not null"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"not null"`
}
