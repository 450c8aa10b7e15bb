package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petcare-br/service-shelter/internal/domain"
	adoptionDomain "github.com/petcare-br/service-shelter/internal/domain/adoption"
	petDomain "github.com/petcare-br/service-shelter/internal/domain/pet"
	"github.com/petcare-br/service-shelter/internal/events"
	"github.com/petcare-br/service-shelter/internal/repository"
)

// TutorRefDTO is a tutor reference carried inside a pet payload.
type TutorRefDTO struct {
	ID uuid.UUID `json:"id"`
}

// CreatePetRequest is the request DTO for registering a pet.
// Status and tutor may appear in the payload but are rejected when they try
// to pre-adopt the pet: adoption only happens through /adotar.
type CreatePetRequest struct {
	Nome        string       `json:"nome" binding:"required"`
	Especie     string       `json:"especie" binding:"required"`
	Raca        string       `json:"raca"`
	Idade       int          `json:"idade"`
	DataEntrada domain.Date  `json:"data_entrada" binding:"required"`
	Status      *string      `json:"status"`
	Tutor       *TutorRefDTO `json:"tutor"`
}

// UpdatePetRequest is the request DTO for cadastral pet updates.
type UpdatePetRequest struct {
	Nome        string       `json:"nome" binding:"required"`
	Especie     string       `json:"especie" binding:"required"`
	Raca        string       `json:"raca"`
	Idade       int          `json:"idade"`
	DataEntrada domain.Date  `json:"data_entrada" binding:"required"`
	Status      *string      `json:"status"`
	Tutor       *TutorRefDTO `json:"tutor"`
}

// PetDTO is the API response representation of a pet.
type PetDTO struct {
	ID          uuid.UUID   `json:"id"`
	Nome        string      `json:"nome"`
	Especie     string      `json:"especie"`
	Raca        string      `json:"raca,omitempty"`
	Idade       int         `json:"idade"`
	Status      string      `json:"status"`
	DataEntrada domain.Date `json:"data_entrada"`
	IDTutor     *uuid.UUID  `json:"id_tutor,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PetService is the adoption lifecycle engine. It is the only component that
// mutates Pet.status/tutor and the Adocao history, and it does both inside a
// single transaction.
type PetService struct {
	repos     repository.Repositories
	uow       repository.UnitOfWork
	publisher events.Publisher
	logger    *zap.Logger
}

// NewPetService creates a new PetService.
func NewPetService(repos repository.Repositories, uow repository.UnitOfWork, publisher events.Publisher, logger *zap.Logger) *PetService {
	return &PetService{repos: repos, uow: uow, publisher: publisher, logger: logger}
}

// Create registers a new pet. Pets never start adopted or linked to a tutor.
func (s *PetService) Create(ctx context.Context, req CreatePetRequest) (*PetDTO, error) {
	if req.Status != nil {
		status, err := petDomain.ParseStatus(*req.Status)
		if err != nil {
			return nil, domain.NewValidationError("Falha de validação", map[string]string{"status": err.Error()})
		}
		if status == petDomain.StatusAdopted {
			return nil, domain.NewBusinessError("Não é permitido criar pet como ADOTADO. Use o endpoint de adoção.")
		}
	}
	if req.Tutor != nil {
		return nil, domain.NewBusinessError("Não é permitido criar pet já vinculado a tutor. Use o endpoint de adoção.")
	}

	p, err := petDomain.NewPet(req.Nome, req.Especie, req.Raca, req.Idade, req.DataEntrada)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Pets.Save(ctx, p); err != nil {
		s.logger.Error("failed to create pet", zap.Error(err))
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	s.logger.Info("pet registered",
		zap.String("pet_id", p.ID().String()),
		zap.String("especie", p.Especie()),
	)
	result := toPetDTO(p)
	return &result, nil
}

// UpdateRegistration applies cadastral data only; attempts to change status or
// tutor through this path are rejected.
func (s *PetService) UpdateRegistration(ctx context.Context, id uuid.UUID, req UpdatePetRequest) (*PetDTO, error) {
	p, err := s.repos.Pets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != string(p.Status()) {
		return nil, domain.NewBusinessError("Não é permitido alterar o STATUS pelo PUT /pets/{id}. Use /adotar ou /devolver.")
	}
	if req.Tutor != nil && req.Tutor.ID != uuid.Nil {
		current := p.TutorID()
		if current == nil || *current != req.Tutor.ID {
			return nil, domain.NewBusinessError("Não é permitido alterar o TUTOR pelo PUT /pets/{id}. Use /adotar ou /devolver.")
		}
	}

	if err := p.UpdateRegistration(req.Nome, req.Especie, req.Raca, req.Idade, req.DataEntrada); err != nil {
		return nil, err
	}
	if err := s.repos.Pets.Update(ctx, p); err != nil {
		s.logger.Error("failed to update pet", zap.Error(err))
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	s.logger.Info("pet registration updated", zap.String("pet_id", id.String()))
	result := toPetDTO(p)
	return &result, nil
}

// Adopt links a pet to a tutor and opens an ATIVA adoption record. Both
// writes commit in one transaction or not at all.
func (s *PetService) Adopt(ctx context.Context, petID, tutorID uuid.UUID) (*PetDTO, error) {
	var (
		adopted *petDomain.Pet
		record  *adoptionDomain.Adoption
	)

	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		p, err := r.Pets.FindByID(ctx, petID)
		if err != nil {
			return err
		}
		if p.IsAdopted() {
			return domain.NewBusinessError("Este pet já está marcado como ADOTADO.")
		}

		// Defense in depth: the history must agree with the pet status.
		active, err := r.Adocoes.FindActiveByPetID(ctx, petID)
		if err != nil {
			return err
		}
		if active != nil {
			return domain.NewBusinessError(fmt.Sprintf("Este pet já possui uma adoção ATIVA (adoção id: %s).", active.ID()))
		}

		t, err := r.Tutores.FindByID(ctx, tutorID)
		if err != nil {
			return err
		}

		if err := p.Adopt(t.ID()); err != nil {
			return err
		}
		if err := r.Pets.Update(ctx, p); err != nil {
			return err
		}

		rec, err := adoptionDomain.NewAdoption(p.ID(), t.ID(), domain.Today())
		if err != nil {
			return err
		}
		if err := r.Adocoes.Save(ctx, rec); err != nil {
			return err
		}

		adopted, record = p, rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("pet adopted",
		zap.String("pet_id", petID.String()),
		zap.String("tutor_id", tutorID.String()),
		zap.String("adoption_id", record.ID().String()),
	)
	s.publishLifecycleEvent(ctx, events.PetAdopted, events.PetAdoptedEvent{
		PetID:      adopted.ID(),
		TutorID:    tutorID,
		AdoptionID: record.ID(),
		OccurredAt: time.Now().UTC(),
	})

	result := toPetDTO(adopted)
	return &result, nil
}

// Return closes the pet's ATIVA adoption record and makes it DISPONIVEL
// again. The history keeps the closed record.
func (s *PetService) Return(ctx context.Context, petID uuid.UUID) (*PetDTO, error) {
	var (
		returned *petDomain.Pet
		record   *adoptionDomain.Adoption
		tutorID  uuid.UUID
	)

	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		p, err := r.Pets.FindByID(ctx, petID)
		if err != nil {
			return err
		}
		if !p.IsAdopted() {
			return domain.NewBusinessError("Não é possível devolver: este pet não está adotado.")
		}

		active, err := r.Adocoes.FindActiveByPetID(ctx, petID)
		if err != nil {
			return err
		}
		if active == nil {
			// Status says adopted but no open record: inconsistent data.
			return domain.NewBusinessError("Não foi encontrada uma adoção ativa para este pet.")
		}
		tutorID = active.TutorID()

		if err := active.Close(domain.Today()); err != nil {
			return err
		}
		if err := r.Adocoes.Update(ctx, active); err != nil {
			return err
		}

		if err := p.Return(); err != nil {
			return err
		}
		if err := r.Pets.Update(ctx, p); err != nil {
			return err
		}

		returned, record = p, active
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("pet returned",
		zap.String("pet_id", petID.String()),
		zap.String("adoption_id", record.ID().String()),
	)
	s.publishLifecycleEvent(ctx, events.PetReturned, events.PetReturnedEvent{
		PetID:      returned.ID(),
		TutorID:    tutorID,
		AdoptionID: record.ID(),
		OccurredAt: time.Now().UTC(),
	})

	result := toPetDTO(returned)
	return &result, nil
}

// Delete removes a pet together with its care and adoption history,
// children first, all in one transaction. Pets with an ATIVA adoption
// cannot be deleted.
func (s *PetService) Delete(ctx context.Context, petID uuid.UUID) error {
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		p, err := r.Pets.FindByID(ctx, petID)
		if err != nil {
			return err
		}

		active, err := r.Adocoes.ExistsActiveByPetID(ctx, petID)
		if err != nil {
			return err
		}
		if active {
			return domain.NewBusinessError("Não é possível deletar: pet possui adoção ATIVA.")
		}

		if err := r.Cuidados.DeleteByPetID(ctx, petID); err != nil {
			return err
		}
		if err := r.Adocoes.DeleteByPetID(ctx, petID); err != nil {
			return err
		}
		return r.Pets.Delete(ctx, p.ID())
	})
	if err != nil {
		return err
	}

	s.logger.Info("pet deleted", zap.String("pet_id", petID.String()))
	return nil
}

// Get retrieves a single pet by id.
func (s *PetService) Get(ctx context.Context, id uuid.UUID) (*PetDTO, error) {
	p, err := s.repos.Pets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toPetDTO(p)
	return &result, nil
}

// ListAll retrieves every pet.
func (s *PetService) ListAll(ctx context.Context) ([]PetDTO, error) {
	pets, err := s.repos.Pets.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return toPetDTOs(pets), nil
}

// ListDisponiveis retrieves the pets available for adoption.
func (s *PetService) ListDisponiveis(ctx context.Context) ([]PetDTO, error) {
	return s.listByStatus(ctx, petDomain.StatusAvailable)
}

// ListAdotados retrieves the pets currently adopted.
func (s *PetService) ListAdotados(ctx context.Context) ([]PetDTO, error) {
	return s.listByStatus(ctx, petDomain.StatusAdopted)
}

func (s *PetService) listByStatus(ctx context.Context, status petDomain.Status) ([]PetDTO, error) {
	pets, err := s.repos.Pets.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets by status: %w", err)
	}
	return toPetDTOs(pets), nil
}

// ListByTutor retrieves the pets currently linked to a tutor.
func (s *PetService) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]PetDTO, error) {
	if _, err := s.repos.Tutores.FindByID(ctx, tutorID); err != nil {
		return nil, err
	}
	pets, err := s.repos.Pets.FindByTutorID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets by tutor: %w", err)
	}
	return toPetDTOs(pets), nil
}

// --- Helpers ---

func (s *PetService) publishLifecycleEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	ce, err := events.NewCloudEvent("service-shelter", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := s.publisher.PublishEvent(ctx, events.TopicShelterEvents, ce); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func toPetDTO(p *petDomain.Pet) PetDTO {
	return PetDTO{
		ID:          p.ID(),
		Nome:        p.Nome(),
		Especie:     p.Especie(),
		Raca:        p.Raca(),
		Idade:       p.Idade(),
		Status:      string(p.Status()),
		DataEntrada: p.DataEntrada(),
		IDTutor:     p.TutorID(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toPetDTOs(pets []*petDomain.Pet) []PetDTO {
	dtos := make([]PetDTO, len(pets))
	for i, p := range pets {
		dtos[i] = toPetDTO(p)
	}
	return dtos
}
