package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/petcare-br/service-shelter/internal/domain/adoption"
	"github.com/petcare-br/service-shelter/internal/domain/care"
	"github.com/petcare-br/service-shelter/internal/domain/pet"
	"github.com/petcare-br/service-shelter/internal/domain/tutor"
)

// Repositories bundles the per-aggregate repositories bound to one gorm session.
type Repositories struct {
	Pets     pet.Repository
	Tutores  tutor.Repository
	Adocoes  adoption.Repository
	Cuidados care.Repository
}

// NewRepositories wires the gorm repositories onto a db handle, which may be
// either the root connection or an open transaction.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Pets:     NewGormPetRepository(db),
		Tutores:  NewGormTutorRepository(db),
		Adocoes:  NewGormAdoptionRepository(db),
		Cuidados: NewGormCareRepository(db),
	}
}

// UnitOfWork runs a callback atomically. The callback receives repositories
// hydrated with the active transaction; any error rolls everything back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

// TxManager implements UnitOfWork on top of gorm transactions.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Do wraps fn in a database transaction. The multi-row lifecycle writes
// (adopt, return, pet delete) rely on this: either every row commits or none
// does. The adopt check-then-act sequence is race-free because the active
// adoption check and the pet row update share the transaction.
func (m *TxManager) Do(ctx context.Context, fn func(repos Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
