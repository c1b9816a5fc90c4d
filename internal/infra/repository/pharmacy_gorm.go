package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/models"
)

type PharmacyGormRepository struct {
	db *gorm.DB
}

func NewPharmacyGormRepository(db *gorm.DB) *PharmacyGormRepository {
	return &PharmacyGormRepository{db: db}
}

func (r *PharmacyGormRepository) List(ctx context.Context, scope authz.Scope) ([]models.Pharmacy, error) {
	var pharmacies []models.Pharmacy
	err := scope.Apply(r.db.WithContext(ctx)).
		Order("id").
		Find(&pharmacies).Error
	if err != nil {
		return nil, err
	}
	return pharmacies, nil
}

func (r *PharmacyGormRepository) Get(ctx context.Context, scope authz.Scope, id uint) (*models.Pharmacy, error) {
	var p models.Pharmacy
	if err := scope.Apply(r.db.WithContext(ctx)).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PharmacyGormRepository) Create(ctx context.Context, p *models.Pharmacy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PharmacyGormRepository) Save(ctx context.Context, p *models.Pharmacy) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PharmacyGormRepository) Delete(ctx context.Context, p *models.Pharmacy) error {
	return r.db.WithContext(ctx).Delete(p).Error
}
