package pet

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for pet aggregates.
type Repository interface {
	// FindByID retrieves a pet by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Pet, error)

	// FindAll retrieves every pet, newest intake first.
	FindAll(ctx context.Context) ([]*Pet, error)

	// FindByStatus retrieves pets in a given lifecycle status.
	FindByStatus(ctx context.Context, status Status) ([]*Pet, error)

	// FindByTutorID retrieves the pets currently linked to a tutor.
	FindByTutorID(ctx context.Context, tutorID uuid.UUID) ([]*Pet, error)

	// ExistsByID reports whether a pet with the given id exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByTutorID reports whether any pet is linked to the tutor.
	ExistsByTutorID(ctx context.Context, tutorID uuid.UUID) (bool, error)

	// Save persists a new pet.
	Save(ctx context.Context, p *Pet) error

	// Update persists changes to an existing pet.
	Update(ctx context.Context, p *Pet) error

	// Delete removes a pet by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
