package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petcare-br/service-shelter/internal/domain"
	careDomain "github.com/petcare-br/service-shelter/internal/domain/care"
	"github.com/petcare-br/service-shelter/internal/repository"
)

// CareRequest is the request DTO for creating or updating a care record.
// Tipo accepts free-form spellings ("banho", "Banho e Tosa", "remédio") and
// is normalized to the canonical vocabulary.
type CareRequest struct {
	IDPet     uuid.UUID   `json:"id_pet" binding:"required"`
	Tipo      string      `json:"tipo" binding:"required"`
	Descricao string      `json:"descricao"`
	Data      domain.Date `json:"data" binding:"required"`
	Custo     float64     `json:"custo"`
}

// CareDTO is the API response representation of a care record.
type CareDTO struct {
	ID        uuid.UUID   `json:"id"`
	IDPet     uuid.UUID   `json:"id_pet"`
	Tipo      string      `json:"tipo"`
	Descricao string      `json:"descricao,omitempty"`
	Data      domain.Date `json:"data"`
	Custo     float64     `json:"custo"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// CareService handles the care log: normalization, validation and the
// pet-existence checks on every path that takes a pet id.
type CareService struct {
	repos  repository.Repositories
	logger *zap.Logger
}

// NewCareService creates a new CareService.
func NewCareService(repos repository.Repositories, logger *zap.Logger) *CareService {
	return &CareService{repos: repos, logger: logger}
}

// Create logs a care event for an existing pet.
func (s *CareService) Create(ctx context.Context, req CareRequest) (*CareDTO, error) {
	exists, err := s.repos.Pets.ExistsByID(ctx, req.IDPet)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("Pet", req.IDPet.String())
	}

	tipo, err := careDomain.ParseCareType(req.Tipo)
	if err != nil {
		return nil, err
	}

	c, err := careDomain.NewCare(req.IDPet, tipo, req.Descricao, req.Data, req.Custo)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Cuidados.Save(ctx, c); err != nil {
		s.logger.Error("failed to create care record", zap.Error(err))
		return nil, fmt.Errorf("failed to create care record: %w", err)
	}

	s.logger.Info("care record created",
		zap.String("care_id", c.ID().String()),
		zap.String("pet_id", c.PetID().String()),
		zap.String("tipo", c.Tipo().String()),
	)
	result := toCareDTO(c)
	return &result, nil
}

// Update replaces a care record's data, re-running the full validation.
func (s *CareService) Update(ctx context.Context, id uuid.UUID, req CareRequest) (*CareDTO, error) {
	c, err := s.repos.Cuidados.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repos.Pets.ExistsByID(ctx, req.IDPet)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("Pet", req.IDPet.String())
	}

	tipo, err := careDomain.ParseCareType(req.Tipo)
	if err != nil {
		return nil, err
	}

	if err := c.Update(req.IDPet, tipo, req.Descricao, req.Data, req.Custo); err != nil {
		return nil, err
	}
	if err := s.repos.Cuidados.Update(ctx, c); err != nil {
		s.logger.Error("failed to update care record", zap.Error(err))
		return nil, fmt.Errorf("failed to update care record: %w", err)
	}

	s.logger.Info("care record updated", zap.String("care_id", id.String()))
	result := toCareDTO(c)
	return &result, nil
}

// Delete removes a single care record.
func (s *CareService) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.repos.Cuidados.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repos.Cuidados.Delete(ctx, c.ID()); err != nil {
		s.logger.Error("failed to delete care record", zap.Error(err))
		return fmt.Errorf("failed to delete care record: %w", err)
	}
	s.logger.Info("care record deleted", zap.String("care_id", id.String()))
	return nil
}

// Get retrieves a single care record by id.
func (s *CareService) Get(ctx context.Context, id uuid.UUID) (*CareDTO, error) {
	c, err := s.repos.Cuidados.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toCareDTO(c)
	return &result, nil
}

// ListAll retrieves every care record, newest first.
func (s *CareService) ListAll(ctx context.Context) ([]CareDTO, error) {
	records, err := s.repos.Cuidados.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list care records: %w", err)
	}
	return toCareDTOs(records), nil
}

// ListByPet retrieves a pet's care history. The pet must exist.
func (s *CareService) ListByPet(ctx context.Context, petID uuid.UUID) ([]CareDTO, error) {
	exists, err := s.repos.Pets.ExistsByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("Pet", petID.String())
	}
	records, err := s.repos.Cuidados.FindByPetID(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("failed to list care records by pet: %w", err)
	}
	return toCareDTOs(records), nil
}

// ListByTipo retrieves every care record of one normalized type.
func (s *CareService) ListByTipo(ctx context.Context, tipoRaw string) ([]CareDTO, error) {
	tipo, err := careDomain.ParseCareType(tipoRaw)
	if err != nil {
		return nil, err
	}
	records, err := s.repos.Cuidados.FindByTipo(ctx, tipo)
	if err != nil {
		return nil, fmt.Errorf("failed to list care records by tipo: %w", err)
	}
	return toCareDTOs(records), nil
}

// ListByPetAndTipo retrieves a pet's care records of one normalized type.
func (s *CareService) ListByPetAndTipo(ctx context.Context, petID uuid.UUID, tipoRaw string) ([]CareDTO, error) {
	exists, err := s.repos.Pets.ExistsByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("Pet", petID.String())
	}
	tipo, err := careDomain.ParseCareType(tipoRaw)
	if err != nil {
		return nil, err
	}
	records, err := s.repos.Cuidados.FindByPetIDAndTipo(ctx, petID, tipo)
	if err != nil {
		return nil, fmt.Errorf("failed to list care records by pet and tipo: %w", err)
	}
	return toCareDTOs(records), nil
}

func toCareDTO(c *careDomain.Care) CareDTO {
	return CareDTO{
		ID:        c.ID(),
		IDPet:     c.PetID(),
		Tipo:      c.Tipo().String(),
		Descricao: c.Descricao(),
		Data:      c.Data(),
		Custo:     c.Custo(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toCareDTOs(records []*careDomain.Care) []CareDTO {
	dtos := make([]CareDTO, len(records))
	for i, c := range records {
		dtos[i] = toCareDTO(c)
	}
	return dtos
}
