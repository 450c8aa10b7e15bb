package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petcare-br/service-shelter/internal/domain"
	tutorDomain "github.com/petcare-br/service-shelter/internal/domain/tutor"
	"github.com/petcare-br/service-shelter/internal/repository"
)

// TutorRequest is the request DTO for creating or updating a tutor.
type TutorRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Telefone string `json:"telefone"`
	Email    string `json:"email" binding:"required"`
	Endereco string `json:"endereco"`
}

// TutorDTO is the API response representation of a tutor.
type TutorDTO struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Telefone  string    `json:"telefone,omitempty"`
	Email     string    `json:"email"`
	Endereco  string    `json:"endereco,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TutorService handles tutor registration and the pet-link delete guard.
type TutorService struct {
	repos  repository.Repositories
	logger *zap.Logger
}

// NewTutorService creates a new TutorService.
func NewTutorService(repos repository.Repositories, logger *zap.Logger) *TutorService {
	return &TutorService{repos: repos, logger: logger}
}

// Create registers a new tutor. The e-mail must be unique (case-insensitive).
func (s *TutorService) Create(ctx context.Context, req TutorRequest) (*TutorDTO, error) {
	existing, err := s.repos.Tutores.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewBusinessError("Já existe um tutor cadastrado com este e-mail.")
	}

	t, err := tutorDomain.NewTutor(req.Nome, req.Telefone, req.Email, req.Endereco)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Tutores.Save(ctx, t); err != nil {
		s.logger.Error("failed to create tutor", zap.Error(err))
		return nil, fmt.Errorf("failed to create tutor: %w", err)
	}

	s.logger.Info("tutor registered", zap.String("tutor_id", t.ID().String()))
	result := toTutorDTO(t)
	return &result, nil
}

// Update replaces a tutor's cadastral data. Changing the e-mail to one owned
// by another tutor breaks the uniqueness rule; keeping the own e-mail is fine.
func (s *TutorService) Update(ctx context.Context, id uuid.UUID, req TutorRequest) (*TutorDTO, error) {
	t, err := s.repos.Tutores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.repos.Tutores.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if owner != nil && owner.ID() != t.ID() {
		return nil, domain.NewBusinessError("Já existe um tutor cadastrado com este e-mail.")
	}

	if err := t.Update(req.Nome, req.Telefone, req.Email, req.Endereco); err != nil {
		return nil, err
	}
	if err := s.repos.Tutores.Update(ctx, t); err != nil {
		s.logger.Error("failed to update tutor", zap.Error(err))
		return nil, fmt.Errorf("failed to update tutor: %w", err)
	}

	s.logger.Info("tutor updated", zap.String("tutor_id", id.String()))
	result := toTutorDTO(t)
	return &result, nil
}

// Delete removes a tutor, but only when no pet is linked to them.
func (s *TutorService) Delete(ctx context.Context, id uuid.UUID) error {
	t, err := s.repos.Tutores.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hasPets, err := s.repos.Pets.ExistsByTutorID(ctx, t.ID())
	if err != nil {
		return err
	}
	if hasPets {
		return domain.NewBusinessError("Não é possível deletar: este tutor possui pets associados.")
	}

	if err := s.repos.Tutores.Delete(ctx, t.ID()); err != nil {
		s.logger.Error("failed to delete tutor", zap.Error(err))
		return fmt.Errorf("failed to delete tutor: %w", err)
	}

	s.logger.Info("tutor deleted", zap.String("tutor_id", id.String()))
	return nil
}

// Get retrieves a single tutor by id.
func (s *TutorService) Get(ctx context.Context, id uuid.UUID) (*TutorDTO, error) {
	t, err := s.repos.Tutores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toTutorDTO(t)
	return &result, nil
}

// ListAll retrieves every tutor.
func (s *TutorService) ListAll(ctx context.Context) ([]TutorDTO, error) {
	tutores, err := s.repos.Tutores.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutores: %w", err)
	}
	dtos := make([]TutorDTO, len(tutores))
	for i, t := range tutores {
		dtos[i] = toTutorDTO(t)
	}
	return dtos, nil
}

func toTutorDTO(t *tutorDomain.Tutor) TutorDTO {
	return TutorDTO{
		ID:        t.ID(),
		Nome:      t.Nome(),
		Telefone:  t.Telefone(),
		Email:     t.Email(),
		Endereco:  t.Endereco(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}
