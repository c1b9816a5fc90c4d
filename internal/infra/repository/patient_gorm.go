package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/models"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

func (r *PatientGormRepository) List(ctx context.Context, scope authz.Scope, search string) ([]models.Patient, error) {
	q := scope.Apply(r.db.WithContext(ctx)).Preload("User")

	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR phone_number LIKE ?", like, like)
	}

	var patients []models.Patient
	if err := q.Order("id").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientGormRepository) Get(ctx context.Context, scope authz.Scope, id uint) (*models.Patient, error) {
	var p models.Patient
	err := scope.Apply(r.db.WithContext(ctx)).
		Preload("User").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientGormRepository) Create(ctx context.Context, p *models.Patient) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PatientGormRepository) Save(ctx context.Context, p *models.Patient) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PatientGormRepository) Delete(ctx context.Context, p *models.Patient) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

func (r *PatientGormRepository) UserExists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Count(&count).Error
	return count > 0, err
}
