package adoption

import (
	"time"

	"github.com/google/uuid"

	"github.com/petcare-br/service-shelter/internal/domain"
)

// Adoption records one pet-tutor custody interval. The history is append-only:
// returning a pet closes the record, it never deletes it.
type Adoption struct {
	id            uuid.UUID
	petID         uuid.UUID
	tutorID       uuid.UUID
	dataAdocao    domain.Date
	dataDevolucao *domain.Date
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// NewAdoption creates an ATIVA adoption record for a pet and tutor.
func NewAdoption(petID, tutorID uuid.UUID, dataAdocao domain.Date) (*Adoption, error) {
	if petID == uuid.Nil {
		return nil, domain.NewBusinessError("É obrigatório informar o pet da adoção.")
	}
	if tutorID == uuid.Nil {
		return nil, domain.NewBusinessError("É obrigatório informar o tutor da adoção.")
	}
	if dataAdocao.IsZero() {
		return nil, domain.NewBusinessError("A data da adoção é obrigatória.")
	}

	now := time.Now().UTC()
	return &Adoption{
		id:         uuid.New(),
		petID:      petID,
		tutorID:    tutorID,
		dataAdocao: dataAdocao,
		status:     StatusActive,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Reconstruct rebuilds an Adoption from persistence data (no validation).
func Reconstruct(
	id, petID, tutorID uuid.UUID,
	dataAdocao domain.Date,
	dataDevolucao *domain.Date,
	status Status,
	createdAt, updatedAt time.Time,
) *Adoption {
	return &Adoption{
		id:            id,
		petID:         petID,
		tutorID:       tutorID,
		dataAdocao:    dataAdocao,
		dataDevolucao: dataDevolucao,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (a *Adoption) ID() uuid.UUID               { return a.id }
func (a *Adoption) PetID() uuid.UUID            { return a.petID }
func (a *Adoption) TutorID() uuid.UUID          { return a.tutorID }
func (a *Adoption) DataAdocao() domain.Date     { return a.dataAdocao }
func (a *Adoption) DataDevolucao() *domain.Date { return a.dataDevolucao }
func (a *Adoption) Status() Status              { return a.status }
func (a *Adoption) CreatedAt() time.Time        { return a.createdAt }
func (a *Adoption) UpdatedAt() time.Time        { return a.updatedAt }

// IsActive returns true if the pet is currently with this record's tutor.
func (a *Adoption) IsActive() bool {
	return a.status == StatusActive
}

// Close ends the custody interval: ATIVA -> ENCERRADA with the return date.
func (a *Adoption) Close(dataDevolucao domain.Date) error {
	if !a.status.CanTransitionTo(StatusClosed) {
		return domain.NewBusinessError("Esta adoção já está ENCERRADA.")
	}
	if dataDevolucao.IsZero() {
		return domain.NewBusinessError("A data de devolução é obrigatória.")
	}
	a.status = StatusClosed
	a.dataDevolucao = &dataDevolucao
	a.updatedAt = time.Now().UTC()
	return nil
}
