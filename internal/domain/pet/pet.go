package pet

import (
	"time"

	"github.com/google/uuid"

	"github.com/petcare-br/service-shelter/internal/domain"
)

// Pet is the aggregate root for an animal tracked by the shelter.
// The tutor link is a weak back-reference: it is only ever set by the
// adoption lifecycle, never by registration updates.
type Pet struct {
	id          uuid.UUID
	nome        string
	especie     string
	raca        string
	idade       int
	status      Status
	dataEntrada domain.Date
	tutorID     *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPet creates a new pet. Pets are always born DISPONIVEL and without tutor;
// adoption is a separate lifecycle operation.
func NewPet(nome, especie, raca string, idade int, dataEntrada domain.Date) (*Pet, error) {
	if err := validateRegistration(nome, especie, idade, dataEntrada); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Pet{
		id:          uuid.New(),
		nome:        nome,
		especie:     especie,
		raca:        raca,
		idade:       idade,
		status:      StatusAvailable,
		dataEntrada: dataEntrada,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a Pet from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	nome, especie, raca string,
	idade int,
	status Status,
	dataEntrada domain.Date,
	tutorID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Pet {
	return &Pet{
		id:          id,
		nome:        nome,
		especie:     especie,
		raca:        raca,
		idade:       idade,
		status:      status,
		dataEntrada: dataEntrada,
		tutorID:     tutorID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// --- Getters ---

func (p *Pet) ID() uuid.UUID            { return p.id }
func (p *Pet) Nome() string             { return p.nome }
func (p *Pet) Especie() string          { return p.especie }
func (p *Pet) Raca() string             { return p.raca }
func (p *Pet) Idade() int               { return p.idade }
func (p *Pet) Status() Status           { return p.status }
func (p *Pet) DataEntrada() domain.Date { return p.dataEntrada }
func (p *Pet) TutorID() *uuid.UUID      { return p.tutorID }
func (p *Pet) CreatedAt() time.Time     { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time     { return p.updatedAt }

// IsAdopted returns true if the pet currently lives with a tutor.
func (p *Pet) IsAdopted() bool {
	return p.status == StatusAdopted
}

// --- Behavior ---

// Adopt links the pet to a tutor and marks it ADOTADO.
func (p *Pet) Adopt(tutorID uuid.UUID) error {
	if !p.status.CanTransitionTo(StatusAdopted) {
		return domain.NewBusinessError("Este pet já está marcado como ADOTADO.")
	}
	if tutorID == uuid.Nil {
		return domain.NewBusinessError("É obrigatório informar o tutor da adoção.")
	}
	p.tutorID = &tutorID
	p.status = StatusAdopted
	p.updatedAt = time.Now().UTC()
	return nil
}

// Return unlinks the pet from its tutor and marks it DISPONIVEL again.
func (p *Pet) Return() error {
	if !p.status.CanTransitionTo(StatusAvailable) {
		return domain.NewBusinessError("Não é possível devolver: este pet não está adotado.")
	}
	p.tutorID = nil
	p.status = StatusAvailable
	p.updatedAt = time.Now().UTC()
	return nil
}

// UpdateRegistration applies cadastral data only. Status and tutor are owned
// by the adoption lifecycle and never change here.
func (p *Pet) UpdateRegistration(nome, especie, raca string, idade int, dataEntrada domain.Date) error {
	if err := validateRegistration(nome, especie, idade, dataEntrada); err != nil {
		return err
	}

	p.nome = nome
	p.especie = especie
	p.raca = raca
	p.idade = idade
	p.dataEntrada = dataEntrada
	p.updatedAt = time.Now().UTC()
	return nil
}

func validateRegistration(nome, especie string, idade int, dataEntrada domain.Date) error {
	fieldErrors := map[string]string{}
	if nome == "" {
		fieldErrors["nome"] = "O nome do pet é obrigatório"
	}
	if especie == "" {
		fieldErrors["especie"] = "A espécie é obrigatória"
	}
	if idade < 0 {
		fieldErrors["idade"] = "A idade não pode ser negativa"
	}
	if dataEntrada.IsZero() {
		fieldErrors["data_entrada"] = "A data de entrada é obrigatória"
	}
	if len(fieldErrors) > 0 {
		return domain.NewValidationError("Falha de validação", fieldErrors)
	}
	return nil
}
