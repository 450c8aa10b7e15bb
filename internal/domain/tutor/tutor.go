package tutor

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/petcare-br/service-shelter/internal/domain"
)

// Tutor is the aggregate root for an adopter/guardian.
// The email is stored normalized; uniqueness is case-insensitive.
type Tutor struct {
	id        uuid.UUID
	nome      string
	telefone  string
	email     string
	endereco  string
	createdAt time.Time
	updatedAt time.Time
}

// NormalizeEmail lowercases and trims an email for case-insensitive comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewTutor creates a new tutor with validated fields.
func NewTutor(nome, telefone, email, endereco string) (*Tutor, error) {
	if err := validate(nome, email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Tutor{
		id:        uuid.New(),
		nome:      nome,
		telefone:  telefone,
		email:     NormalizeEmail(email),
		endereco:  endereco,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Tutor from persistence data (no validation).
func Reconstruct(id uuid.UUID, nome, telefone, email, endereco string, createdAt, updatedAt time.Time) *Tutor {
	return &Tutor{
		id:        id,
		nome:      nome,
		telefone:  telefone,
		email:     email,
		endereco:  endereco,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Tutor) ID() uuid.UUID        { return t.id }
func (t *Tutor) Nome() string         { return t.nome }
func (t *Tutor) Telefone() string     { return t.telefone }
func (t *Tutor) Email() string        { return t.email }
func (t *Tutor) Endereco() string     { return t.endereco }
func (t *Tutor) CreatedAt() time.Time { return t.createdAt }
func (t *Tutor) UpdatedAt() time.Time { return t.updatedAt }

// Update applies new cadastral data to the tutor.
func (t *Tutor) Update(nome, telefone, email, endereco string) error {
	if err := validate(nome, email); err != nil {
		return err
	}
	t.nome = nome
	t.telefone = telefone
	t.email = NormalizeEmail(email)
	t.endereco = endereco
	t.updatedAt = time.Now().UTC()
	return nil
}

func validate(nome, email string) error {
	fieldErrors := map[string]string{}
	if nome == "" {
		fieldErrors["nome"] = "O nome é obrigatório"
	}
	if strings.TrimSpace(email) == "" {
		fieldErrors["email"] = "O e-mail é obrigatório"
	} else if !strings.Contains(email, "@") {
		fieldErrors["email"] = "E-mail inválido"
	}
	if len(fieldErrors) > 0 {
		return domain.NewValidationError("Falha de validação", fieldErrors)
	}
	return nil
}
