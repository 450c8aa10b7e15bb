package care

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/petcare-br/service-shelter/internal/domain"
)

// Care is a logged care event (bath, vaccine, consultation...) tied to a pet.
// An empty descricao means absent; blank input is normalized away.
type Care struct {
	id        uuid.UUID
	petID     uuid.UUID
	tipo      CareType
	descricao string
	data      domain.Date
	custo     float64
	createdAt time.Time
	updatedAt time.Time
}

// NewCare creates a validated care record for an existing pet.
func NewCare(petID uuid.UUID, tipo CareType, descricao string, data domain.Date, custo float64) (*Care, error) {
	descricao = strings.TrimSpace(descricao)
	if err := validate(tipo, descricao, data, custo); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Care{
		id:        uuid.New(),
		petID:     petID,
		tipo:      tipo,
		descricao: descricao,
		data:      data,
		custo:     custo,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Care from persistence data (no validation).
func Reconstruct(
	id, petID uuid.UUID,
	tipo CareType,
	descricao string,
	data domain.Date,
	custo float64,
	createdAt, updatedAt time.Time,
) *Care {
	return &Care{
		id:        id,
		petID:     petID,
		tipo:      tipo,
		descricao: descricao,
		data:      data,
		custo:     custo,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Care) ID() uuid.UUID        { return c.id }
func (c *Care) PetID() uuid.UUID     { return c.petID }
func (c *Care) Tipo() CareType       { return c.tipo }
func (c *Care) Descricao() string    { return c.descricao }
func (c *Care) Data() domain.Date    { return c.data }
func (c *Care) Custo() float64       { return c.custo }
func (c *Care) CreatedAt() time.Time { return c.createdAt }
func (c *Care) UpdatedAt() time.Time { return c.updatedAt }

// Update re-applies the full validation and replaces the record's data.
func (c *Care) Update(petID uuid.UUID, tipo CareType, descricao string, data domain.Date, custo float64) error {
	descricao = strings.TrimSpace(descricao)
	if err := validate(tipo, descricao, data, custo); err != nil {
		return err
	}
	c.petID = petID
	c.tipo = tipo
	c.descricao = descricao
	c.data = data
	c.custo = custo
	c.updatedAt = time.Now().UTC()
	return nil
}

func validate(tipo CareType, descricao string, data domain.Date, custo float64) error {
	if !tipo.IsValid() {
		return domain.NewBusinessError("O tipo de cuidado é obrigatório.")
	}
	if data.IsZero() {
		return domain.NewBusinessError("A data do cuidado é obrigatória.")
	}
	if data.After(domain.Today()) {
		return domain.NewBusinessError("A data do cuidado não pode ser no futuro.")
	}
	if custo < 0 {
		return domain.NewBusinessError("O custo do cuidado não pode ser negativo.")
	}
	if tipo.RequiresDescription() && descricao == "" {
		return domain.NewBusinessError("Descrição é obrigatória para o tipo: " + tipo.String())
	}
	return nil
}
