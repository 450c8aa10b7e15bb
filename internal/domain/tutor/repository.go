package tutor

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for tutor aggregates.
type Repository interface {
	// FindByID retrieves a tutor by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Tutor, error)

	// FindAll retrieves every tutor, oldest registration first.
	FindAll(ctx context.Context) ([]*Tutor, error)

	// FindByEmail retrieves a tutor by normalized email.
	// Returns (nil, nil) when no tutor has that email.
	FindByEmail(ctx context.Context, email string) (*Tutor, error)

	// Save persists a new tutor.
	Save(ctx context.Context, t *Tutor) error

	// Update persists changes to an existing tutor.
	Update(ctx context.Context, t *Tutor) error

	// Delete removes a tutor by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
