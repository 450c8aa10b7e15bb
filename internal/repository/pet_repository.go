package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/petcare-br/service-shelter/internal/domain"
	petDomain "github.com/petcare-br/service-shelter/internal/domain/pet"
)

// PetModel is the GORM model for the pets table.
type PetModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Nome        string     `gorm:"type:varchar(100);not null"`
	Especie     string     `gorm:"type:varchar(50);not null"`
	Raca        string     `gorm:"type:varchar(100)"`
	Idade       int        `gorm:"type:int"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	DataEntrada time.Time  `gorm:"type:date;not null"`
	TutorID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"type:timestamptz;not null"`
	UpdatedAt   time.Time  `gorm:"type:timestamptz;not null"`
}

func (PetModel) TableName() string { return "pets" }

// GormPetRepository implements pet.Repository using GORM.
type GormPetRepository struct {
	db *gorm.DB
}

func NewGormPetRepository(db *gorm.DB) *GormPetRepository {
	return &GormPetRepository{db: db}
}

func (r *GormPetRepository) FindByID(ctx context.Context, id uuid.UUID) (*petDomain.Pet, error) {
	var model PetModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Pet", id.String())
		}
		return nil, err
	}
	return toPetDomain(&model)
}

func (r *GormPetRepository) FindAll(ctx context.Context) ([]*petDomain.Pet, error) {
	var models []PetModel
	if err := r.db.WithContext(ctx).
		Order("data_entrada DESC, created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return toPetDomainSlice(models)
}

func (r *GormPetRepository) FindByStatus(ctx context.Context, status petDomain.Status) ([]*petDomain.Pet, error) {
	var models []PetModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("data_entrada DESC, created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return toPetDomainSlice(models)
}

func (r *GormPetRepository) FindByTutorID(ctx context.Context, tutorID uuid.UUID) ([]*petDomain.Pet, error) {
	var models []PetModel
	if err := r.db.WithContext(ctx).
		Where("tutor_id = ?", tutorID).
		Order("data_entrada DESC, created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return toPetDomainSlice(models)
}

func (r *GormPetRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&PetModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormPetRepository) ExistsByTutorID(ctx context.Context, tutorID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&PetModel{}).
		Where("tutor_id = ?", tutorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormPetRepository) Save(ctx context.Context, p *petDomain.Pet) error {
	return r.db.WithContext(ctx).Create(toPetModel(p)).Error
}

func (r *GormPetRepository) Update(ctx context.Context, p *petDomain.Pet) error {
	model := toPetModel(p)
	// Full-row update via Select so nil tutor_id is written back on return.
	result := r.db.WithContext(ctx).
		Model(&PetModel{}).
		Where("id = ?", model.ID).
		Select("nome", "especie", "raca", "idade", "status", "data_entrada", "tutor_id", "updated_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Pet", model.ID.String())
	}
	return nil
}

func (r *GormPetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&PetModel{}).Error
}

// --- Conversions ---

func toPetModel(p *petDomain.Pet) *PetModel {
	return &PetModel{
		ID:          p.ID(),
		Nome:        p.Nome(),
		Especie:     p.Especie(),
		Raca:        p.Raca(),
		Idade:       p.Idade(),
		Status:      string(p.Status()),
		DataEntrada: p.DataEntrada().Time(),
		TutorID:     p.TutorID(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toPetDomain(m *PetModel) (*petDomain.Pet, error) {
	status, err := petDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return petDomain.Reconstruct(
		m.ID,
		m.Nome, m.Especie, m.Raca,
		m.Idade,
		status,
		domain.DateOf(m.DataEntrada),
		m.TutorID,
		m.CreatedAt, m.UpdatedAt,
	), nil
}

func toPetDomainSlice(models []PetModel) ([]*petDomain.Pet, error) {
	pets := make([]*petDomain.Pet, len(models))
	for i, m := range models {
		p, err := toPetDomain(&m)
		if err != nil {
			return nil, err
		}
		pets[i] = p
	}
	return pets, nil
}
