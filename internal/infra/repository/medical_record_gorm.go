package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/models"
)

type MedicalRecordGormRepository struct {
	db *gorm.DB
}

func NewMedicalRecordGormRepository(db *gorm.DB) *MedicalRecordGormRepository {
	return &MedicalRecordGormRepository{db: db}
}

func (r *MedicalRecordGormRepository) List(ctx context.Context, scope authz.Scope, patientID uint) ([]models.MedicalRecord, error) {
	q := scope.Apply(r.db.WithContext(ctx)).
		Preload("Patient").
		Preload("Patient.User").
		Preload("Doctor").
		Preload("Doctor.User")

	if patientID != 0 {
		q = q.Where("patient_id = ?", patientID)
	}

	var records []models.MedicalRecord
	if err := q.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *MedicalRecordGormRepository) Get(ctx context.Context, scope authz.Scope, id uint) (*models.MedicalRecord, error) {
	var rec models.MedicalRecord
	err := scope.Apply(r.db.WithContext(ctx)).
		Preload("Patient").
		Preload("Patient.User").
		Preload("Doctor").
		Preload("Doctor.User").
		First(&rec, id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *MedicalRecordGormRepository) Create(ctx context.Context, rec *models.MedicalRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *MedicalRecordGormRepository) Save(ctx context.Context, rec *models.MedicalRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *MedicalRecordGormRepository) Delete(ctx context.Context, rec *models.MedicalRecord) error {
	return r.db.WithContext(ctx).Delete(rec).Error
}

func (r *MedicalRecordGormRepository) PatientExists(ctx context.Context, id uint) (bool, error) {
	return exists(r.db.WithContext(ctx), &models.Patient{}, id)
}

func (r *MedicalRecordGormRepository) DoctorExists(ctx context.Context, id uint) (bool, error) {
	return exists(r.db.WithContext(ctx), &models.Doctor{}, id)
}

func exists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	err := db.Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
