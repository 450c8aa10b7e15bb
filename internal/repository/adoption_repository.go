package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/petcare-br/service-shelter/internal/domain"
	adoptionDomain "github.com/petcare-br/service-shelter/internal/domain/adoption"
)

// AdocaoModel is the GORM model for the adocoes table.
type AdocaoModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PetID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	TutorID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	DataAdocao    time.Time  `gorm:"type:date;not null"`
	DataDevolucao *time.Time `gorm:"type:date"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	CreatedAt     time.Time  `gorm:"type:timestamptz;not null"`
	UpdatedAt     time.Time  `gorm:"type:timestamptz;not null"`
}

func (AdocaoModel) TableName() string { return "adocoes" }

// GormAdoptionRepository implements adoption.Repository using GORM.
type GormAdoptionRepository struct {
	db *gorm.DB
}

func NewGormAdoptionRepository(db *gorm.DB) *GormAdoptionRepository {
	return &GormAdoptionRepository{db: db}
}

func (r *GormAdoptionRepository) FindByPetID(ctx context.Context, petID uuid.UUID) ([]*adoptionDomain.Adoption, error) {
	var models []AdocaoModel
	if err := r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("data_adocao DESC, created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return toAdoptionDomainSlice(models)
}

func (r *GormAdoptionRepository) FindByTutorID(ctx context.Context, tutorID uuid.UUID) ([]*adoptionDomain.Adoption, error) {
	var models []AdocaoModel
	if err := r.db.WithContext(ctx).
		Where("tutor_id = ?", tutorID).
		Order("data_adocao DESC, created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return toAdoptionDomainSlice(models)
}

func (r *GormAdoptionRepository) FindActiveByPetID(ctx context.Context, petID uuid.UUID) (*adoptionDomain.Adoption, error) {
	var model AdocaoModel
	err := r.db.WithContext(ctx).
		Where("pet_id = ? AND status = ?", petID, string(adoptionDomain.StatusActive)).
		Order("data_adocao DESC, created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toAdoptionDomain(&model)
}

func (r *GormAdoptionRepository) ExistsActiveByPetID(ctx context.Context, petID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&AdocaoModel{}).
		Where("pet_id = ? AND status = ?", petID, string(adoptionDomain.StatusActive)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormAdoptionRepository) Save(ctx context.Context, a *adoptionDomain.Adoption) error {
	if err := r.db.WithContext(ctx).Create(toAdoptionModel(a)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("Este pet já possui uma adoção ATIVA.")
		}
		return err
	}
	return nil
}

func (r *GormAdoptionRepository) Update(ctx context.Context, a *adoptionDomain.Adoption) error {
	model := toAdoptionModel(a)
	result := r.db.WithContext(ctx).
		Model(&AdocaoModel{}).
		Where("id = ?", model.ID).
		Select("data_devolucao", "status", "updated_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Adoção", model.ID.String())
	}
	return nil
}

func (r *GormAdoptionRepository) DeleteByPetID(ctx context.Context, petID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&AdocaoModel{}).Error
}

// --- Conversions ---

func toAdoptionModel(a *adoptionDomain.Adoption) *AdocaoModel {
	var devolucao *time.Time
	if a.DataDevolucao() != nil {
		t := a.DataDevolucao().Time()
		devolucao = &t
	}
	return &AdocaoModel{
		ID:            a.ID(),
		PetID:         a.PetID(),
		TutorID:       a.TutorID(),
		DataAdocao:    a.DataAdocao().Time(),
		DataDevolucao: devolucao,
		Status:        string(a.Status()),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func toAdoptionDomain(m *AdocaoModel) (*adoptionDomain.Adoption, error) {
	status, err := adoptionDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	var devolucao *domain.Date
	if m.DataDevolucao != nil {
		d := domain.DateOf(*m.DataDevolucao)
		devolucao = &d
	}
	return adoptionDomain.Reconstruct(
		m.ID, m.PetID, m.TutorID,
		domain.DateOf(m.DataAdocao),
		devolucao,
		status,
		m.CreatedAt, m.UpdatedAt,
	), nil
}

func toAdoptionDomainSlice(models []AdocaoModel) ([]*adoptionDomain.Adoption, error) {
	records := make([]*adoptionDomain.Adoption, len(models))
	for i, m := range models {
		a, err := toAdoptionDomain(&m)
		if err != nil {
			return nil, err
		}
		records[i] = a
	}
	return records, nil
}
