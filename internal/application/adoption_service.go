package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petcare-br/service-shelter/internal/domain"
	adoptionDomain "github.com/petcare-br/service-shelter/internal/domain/adoption"
	"github.com/petcare-br/service-shelter/internal/repository"
)

// AdoptionDTO is the API response representation of an adoption record.
type AdoptionDTO struct {
	ID            uuid.UUID    `json:"id"`
	IDPet         uuid.UUID    `json:"id_pet"`
	IDTutor       uuid.UUID    `json:"id_tutor"`
	DataAdocao    domain.Date  `json:"data_adocao"`
	DataDevolucao *domain.Date `json:"data_devolucao,omitempty"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// AdoptionService is the read side of the adoption history. All writes to
// adocoes go through PetService's adopt/return/delete transactions.
type AdoptionService struct {
	repos  repository.Repositories
	logger *zap.Logger
}

// NewAdoptionService creates a new AdoptionService.
func NewAdoptionService(repos repository.Repositories, logger *zap.Logger) *AdoptionService {
	return &AdoptionService{repos: repos, logger: logger}
}

// ListByPet retrieves a pet's adoption history, most recent first.
func (s *AdoptionService) ListByPet(ctx context.Context, petID uuid.UUID) ([]AdoptionDTO, error) {
	exists, err := s.repos.Pets.ExistsByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("Pet", petID.String())
	}
	records, err := s.repos.Adocoes.FindByPetID(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoptions by pet: %w", err)
	}
	return toAdoptionDTOs(records), nil
}

// ListByTutor retrieves a tutor's adoption history, most recent first.
func (s *AdoptionService) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]AdoptionDTO, error) {
	if _, err := s.repos.Tutores.FindByID(ctx, tutorID); err != nil {
		return nil, err
	}
	records, err := s.repos.Adocoes.FindByTutorID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoptions by tutor: %w", err)
	}
	return toAdoptionDTOs(records), nil
}

// FindActiveByPet retrieves the pet's ATIVA adoption, or nil when the pet is
// available.
func (s *AdoptionService) FindActiveByPet(ctx context.Context, petID uuid.UUID) (*AdoptionDTO, error) {
	exists, err := s.repos.Pets.ExistsByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("Pet", petID.String())
	}
	active, err := s.repos.Adocoes.FindActiveByPetID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}
	dto := toAdoptionDTO(active)
	return &dto, nil
}

func toAdoptionDTO(a *adoptionDomain.Adoption) AdoptionDTO {
	return AdoptionDTO{
		ID:            a.ID(),
		IDPet:         a.PetID(),
		IDTutor:       a.TutorID(),
		DataAdocao:    a.DataAdocao(),
		DataDevolucao: a.DataDevolucao(),
		Status:        string(a.Status()),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func toAdoptionDTOs(records []*adoptionDomain.Adoption) []AdoptionDTO {
	dtos := make([]AdoptionDTO, len(records))
	for i, a := range records {
		dtos[i] = toAdoptionDTO(a)
	}
	return dtos
}
