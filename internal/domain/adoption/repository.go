package adoption

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for adoption records.
type Repository interface {
	// FindByPetID retrieves a pet's adoption history, most recent adoption first.
	FindByPetID(ctx context.Context, petID uuid.UUID) ([]*Adoption, error)

	// FindByTutorID retrieves a tutor's adoption history, most recent adoption first.
	FindByTutorID(ctx context.Context, tutorID uuid.UUID) ([]*Adoption, error)

	// FindActiveByPetID retrieves the ATIVA record for a pet.
	// Returns (nil, nil) when the pet has no active adoption.
	FindActiveByPetID(ctx context.Context, petID uuid.UUID) (*Adoption, error)

	// ExistsActiveByPetID reports whether the pet has an ATIVA adoption.
	ExistsActiveByPetID(ctx context.Context, petID uuid.UUID) (bool, error)

	// Save persists a new adoption record.
	Save(ctx context.Context, a *Adoption) error

	// Update persists changes to an existing adoption record.
	Update(ctx context.Context, a *Adoption) error

	// DeleteByPetID removes every adoption record of a pet.
	DeleteByPetID(ctx context.Context, petID uuid.UUID) error
}
