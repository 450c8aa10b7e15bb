package care

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for care records.
type Repository interface {
	// FindByID retrieves a care record by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Care, error)

	// FindAll retrieves every care record, most recent date first.
	FindAll(ctx context.Context) ([]*Care, error)

	// FindByPetID retrieves a pet's care records, most recent date first.
	FindByPetID(ctx context.Context, petID uuid.UUID) ([]*Care, error)

	// FindByTipo retrieves all records of one care type, most recent date first.
	FindByTipo(ctx context.Context, tipo CareType) ([]*Care, error)

	// FindByPetIDAndTipo retrieves a pet's records of one type, most recent date first.
	FindByPetIDAndTipo(ctx context.Context, petID uuid.UUID, tipo CareType) ([]*Care, error)

	// Save persists a new care record.
	Save(ctx context.Context, c *Care) error

	// Update persists changes to an existing care record.
	Update(ctx context.Context, c *Care) error

	// Delete removes a care record by id.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByPetID removes every care record of a pet.
	DeleteByPetID(ctx context.Context, petID uuid.UUID) error
}
