package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/petcare-br/service-shelter/internal/domain"
	careDomain "github.com/petcare-br/service-shelter/internal/domain/care"
)

// CuidadoModel is the GORM model for the cuidados table.
type CuidadoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PetID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo      string    `gorm:"type:varchar(30);not null;index"`
	Descricao string    `gorm:"type:text"`
	Data      time.Time `gorm:"type:date;not null"`
	Custo     float64   `gorm:"type:numeric(10,2);not null;default:0"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (CuidadoModel) TableName() string { return "cuidados" }

// GormCareRepository implements care.Repository using GORM.
type GormCareRepository struct {
	db *gorm.DB
}

func NewGormCareRepository(db *gorm.DB) *GormCareRepository {
	return &GormCareRepository{db: db}
}

func (r *GormCareRepository) FindByID(ctx context.Context, id uuid.UUID) (*careDomain.Care, error) {
	var model CuidadoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Cuidado", id.String())
		}
		return nil, err
	}
	return toCareDomain(&model), nil
}

func (r *GormCareRepository) FindAll(ctx context.Context) ([]*careDomain.Care, error) {
	return r.findWhere(ctx, r.db.WithContext(ctx))
}

func (r *GormCareRepository) FindByPetID(ctx context.Context, petID uuid.UUID) ([]*careDomain.Care, error) {
	return r.findWhere(ctx, r.db.WithContext(ctx).Where("pet_id = ?", petID))
}

func (r *GormCareRepository) FindByTipo(ctx context.Context, tipo careDomain.CareType) ([]*careDomain.Care, error) {
	return r.findWhere(ctx, r.db.WithContext(ctx).Where("tipo = ?", string(tipo)))
}

func (r *GormCareRepository) FindByPetIDAndTipo(ctx context.Context, petID uuid.UUID, tipo careDomain.CareType) ([]*careDomain.Care, error) {
	return r.findWhere(ctx, r.db.WithContext(ctx).Where("pet_id = ? AND tipo = ?", petID, string(tipo)))
}

func (r *GormCareRepository) findWhere(_ context.Context, query *gorm.DB) ([]*careDomain.Care, error) {
	var models []CuidadoModel
	if err := query.Order("data DESC, created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	records := make([]*careDomain.Care, len(models))
	for i, m := range models {
		records[i] = toCareDomain(&m)
	}
	return records, nil
}

func (r *GormCareRepository) Save(ctx context.Context, c *careDomain.Care) error {
	return r.db.WithContext(ctx).Create(toCareModel(c)).Error
}

func (r *GormCareRepository) Update(ctx context.Context, c *careDomain.Care) error {
	model := toCareModel(c)
	result := r.db.WithContext(ctx).
		Model(&CuidadoModel{}).
		Where("id = ?", model.ID).
		Select("pet_id", "tipo", "descricao", "data", "custo", "updated_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Cuidado", model.ID.String())
	}
	return nil
}

func (r *GormCareRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&CuidadoModel{}).Error
}

func (r *GormCareRepository) DeleteByPetID(ctx context.Context, petID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&CuidadoModel{}).Error
}

// --- Conversions ---

func toCareModel(c *careDomain.Care) *CuidadoModel {
	return &CuidadoModel{
		ID:        c.ID(),
		PetID:     c.PetID(),
		Tipo:      string(c.Tipo()),
		Descricao: c.Descricao(),
		Data:      c.Data().Time(),
		Custo:     c.Custo(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toCareDomain(m *CuidadoModel) *careDomain.Care {
	return careDomain.Reconstruct(
		m.ID, m.PetID,
		careDomain.CareType(m.Tipo),
		m.Descricao,
		domain.DateOf(m.Data),
		m.Custo,
		m.CreatedAt, m.UpdatedAt,
	)
}
