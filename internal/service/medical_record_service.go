package service

import (
	"context"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/httperr"
	"github.com/carelinehq/clinic-records/internal/models"
)

type MedicalRecordRepository interface {
	// patientID narrows the list inside the caller's scope; 0 means no filter.
	List(ctx context.Context, scope authz.Scope, patientID uint) ([]models.MedicalRecord, error)
	Get(ctx context.Context, scope authz.Scope, id uint) (*models.MedicalRecord, error)
	Create(ctx context.Context, r *models.MedicalRecord) error
	Save(ctx context.Context, r *models.MedicalRecord) error
	Delete(ctx context.Context, r *models.MedicalRecord) error
	PatientExists(ctx context.Context, id uint) (bool, error)
	DoctorExists(ctx context.Context, id uint) (bool, error)
}

type MedicalRecordService struct {
	engine *authz.Engine
	repo   MedicalRecordRepository
}

func NewMedicalRecordService(engine *authz.Engine, repo MedicalRecordRepository) *MedicalRecordService {
	return &MedicalRecordService{engine: engine, repo: repo}
}

type MedicalRecordInput struct {
	PatientID uint   `json:"patient_id"`
	DoctorID  uint   `json:"doctor_id"`
	Diagnosis string `json:"diagnosis" binding:"required"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
}

func (s *MedicalRecordService) List(ctx context.Context, caller authz.Caller, patientID uint) ([]models.MedicalRecord, error) {
	scope := s.engine.ScopeForRead(authz.EntityMedicalRecord, caller)
	return s.repo.List(ctx, scope, patientID)
}

func (s *MedicalRecordService) Get(ctx context.Context, caller authz.Caller, id uint) (*models.MedicalRecord, error) {
	scope := s.engine.ScopeForRead(authz.EntityMedicalRecord, caller)
	return s.repo.Get(ctx, scope, id)
}

func (s *MedicalRecordService) Create(ctx context.Context, caller authz.Caller, in MedicalRecordInput) (*models.MedicalRecord, error) {
	if err := s.engine.AuthorizeWrite(authz.EntityMedicalRecord, authz.OpCreate, caller).Err(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	r := &models.MedicalRecord{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Diagnosis: in.Diagnosis,
		Treatment: in.Treatment,
		Notes:     in.Notes,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *MedicalRecordService) Update(ctx context.Context, caller authz.Caller, id uint, in MedicalRecordInput) (*models.MedicalRecord, error) {
	if err := s.engine.AuthorizeWrite(authz.EntityMedicalRecord, authz.OpUpdate, caller).Err(); err != nil {
		return nil, err
	}

	scope := s.engine.ScopeForRead(authz.EntityMedicalRecord, caller)
	r, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	r.PatientID = in.PatientID
	r.DoctorID = in.DoctorID
	r.Diagnosis = in.Diagnosis
	r.Treatment = in.Treatment
	r.Notes = in.Notes

	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *MedicalRecordService) Delete(ctx context.Context, caller authz.Caller, id uint) error {
	if err := s.engine.AuthorizeWrite(authz.EntityMedicalRecord, authz.OpDelete, caller).Err(); err != nil {
		return err
	}

	scope := s.engine.ScopeForRead(authz.EntityMedicalRecord, caller)
	r, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, r)
}

// A record always references an existing patient and doctor.
func (s *MedicalRecordService) checkReferences(ctx context.Context, in MedicalRecordInput) error {
	ok, err := s.repo.PatientExists(ctx, in.PatientID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("patient_not_found")
	}

	ok, err = s.repo.DoctorExists(ctx, in.DoctorID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("doctor_not_found")
	}
	return nil
}
