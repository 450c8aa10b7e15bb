package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/petcare-br/service-shelter/internal/domain"
	tutorDomain "github.com/petcare-br/service-shelter/internal/domain/tutor"
)

// TutorModel is the GORM model for the tutores table.
type TutorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome      string    `gorm:"type:varchar(100);not null"`
	Telefone  string    `gorm:"type:varchar(30)"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Endereco  string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (TutorModel) TableName() string { return "tutores" }

// GormTutorRepository implements tutor.Repository using GORM.
type GormTutorRepository struct {
	db *gorm.DB
}

func NewGormTutorRepository(db *gorm.DB) *GormTutorRepository {
	return &GormTutorRepository{db: db}
}

func (r *GormTutorRepository) FindByID(ctx context.Context, id uuid.UUID) (*tutorDomain.Tutor, error) {
	var model TutorModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Tutor", id.String())
		}
		return nil, err
	}
	return toTutorDomain(&model), nil
}

func (r *GormTutorRepository) FindAll(ctx context.Context) ([]*tutorDomain.Tutor, error) {
	var models []TutorModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	tutores := make([]*tutorDomain.Tutor, len(models))
	for i, m := range models {
		tutores[i] = toTutorDomain(&m)
	}
	return tutores, nil
}

func (r *GormTutorRepository) FindByEmail(ctx context.Context, email string) (*tutorDomain.Tutor, error) {
	var model TutorModel
	err := r.db.WithContext(ctx).
		Where("email = ?", tutorDomain.NormalizeEmail(email)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toTutorDomain(&model), nil
}

func (r *GormTutorRepository) Save(ctx context.Context, t *tutorDomain.Tutor) error {
	if err := r.db.WithContext(ctx).Create(toTutorModel(t)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("Já existe um tutor cadastrado com este e-mail.")
		}
		return err
	}
	return nil
}

func (r *GormTutorRepository) Update(ctx context.Context, t *tutorDomain.Tutor) error {
	model := toTutorModel(t)
	result := r.db.WithContext(ctx).
		Model(&TutorModel{}).
		Where("id = ?", model.ID).
		Select("nome", "telefone", "email", "endereco", "updated_at").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("Já existe um tutor cadastrado com este e-mail.")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Tutor", model.ID.String())
	}
	return nil
}

func (r *GormTutorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&TutorModel{}).Error
}

// --- Conversions ---

func toTutorModel(t *tutorDomain.Tutor) *TutorModel {
	return &TutorModel{
		ID:        t.ID(),
		Nome:      t.Nome(),
		Telefone:  t.Telefone(),
		Email:     t.Email(),
		Endereco:  t.Endereco(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func toTutorDomain(m *TutorModel) *tutorDomain.Tutor {
	return tutorDomain.Reconstruct(
		m.ID,
		m.Nome, m.Telefone, m.Email, m.Endereco,
		m.CreatedAt, m.UpdatedAt,
	)
}
