package repository

import (
	"time"

	"github.com/lucasmonteiro/occurrence-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByMatricula finds a user by registration identifier
	FindByMatricula(matricula string) (*models.User, error)
}

// OccurrenceRepository defines the interface for occurrence data access
type OccurrenceRepository interface {
	// Create creates a new occurrence
	Create(occurrence *models.Occurrence) error

	// FindByID finds an occurrence by ID
	FindByID(id string) (*models.Occurrence, error)

	// ListByOwner lists a user's occurrences, most recent first
	ListByOwner(ownerID string) ([]models.Occurrence, error)

	// Update updates an occurrence
	Update(occurrence *models.Occurrence) error

	// Delete permanently removes an occurrence
	Delete(id string) error

	// CountCreatedSince counts occurrences created at or after t
	CountCreatedSince(t time.Time) (int64, error)
}
