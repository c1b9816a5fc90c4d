package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/models"
)

type DoctorGormRepository struct {
	db *gorm.DB
}

func NewDoctorGormRepository(db *gorm.DB) *DoctorGormRepository {
	return &DoctorGormRepository{db: db}
}

func (r *DoctorGormRepository) List(ctx context.Context, scope authz.Scope) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := scope.Apply(r.db.WithContext(ctx)).
		Preload("User").
		Order("id").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorGormRepository) Get(ctx context.Context, scope authz.Scope, id uint) (*models.Doctor, error) {
	var d models.Doctor
	err := scope.Apply(r.db.WithContext(ctx)).
		Preload("User").
		First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DoctorGormRepository) Create(ctx context.Context, d *models.Doctor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DoctorGormRepository) Save(ctx context.Context, d *models.Doctor) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DoctorGormRepository) Delete(ctx context.Context, d *models.Doctor) error {
	return r.db.WithContext(ctx).Delete(d).Error
}

func (r *DoctorGormRepository) UserExists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Count(&count).Error
	return count > 0, err
}
