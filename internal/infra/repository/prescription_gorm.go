package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/models"
)

type PrescriptionGormRepository struct {
	db *gorm.DB
}

func NewPrescriptionGormRepository(db *gorm.DB) *PrescriptionGormRepository {
	return &PrescriptionGormRepository{db: db}
}

func (r *PrescriptionGormRepository) List(ctx context.Context, scope authz.Scope) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := scope.Apply(r.db.WithContext(ctx)).
		Preload("Patient").
		Preload("Patient.User").
		Preload("Doctor").
		Preload("Doctor.User").
		Preload("Pharmacy").
		Order("id").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *PrescriptionGormRepository) Get(ctx context.Context, scope authz.Scope, id uint) (*models.Prescription, error) {
	var p models.Prescription
	err := scope.Apply(r.db.WithContext(ctx)).
		Preload("Patient").
		Preload("Patient.User").
		Preload("Doctor").
		Preload("Doctor.User").
		Preload("Pharmacy").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PrescriptionGormRepository) Create(ctx context.Context, p *models.Prescription) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PrescriptionGormRepository) Save(ctx context.Context, p *models.Prescription) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PrescriptionGormRepository) Delete(ctx context.Context, p *models.Prescription) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

func (r *PrescriptionGormRepository) PatientExists(ctx context.Context, id uint) (bool, error) {
	return exists(r.db.WithContext(ctx), &models.Patient{}, id)
}

func (r *PrescriptionGormRepository) DoctorExists(ctx context.Context, id uint) (bool, error) {
	return exists(r.db.WithContext(ctx), &models.Doctor{}, id)
}

func (r *PrescriptionGormRepository) PharmacyExists(ctx context.Context, id uint) (bool, error) {
	return exists(r.db.WithContext(ctx), &models.Pharmacy{}, id)
}
