package service

import (
	"context"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/httperr"
	"github.com/carelinehq/clinic-records/internal/models"
)

type PrescriptionRepository interface {
	List(ctx context.Context, scope authz.Scope) ([]models.Prescription, error)
	Get(ctx context.Context, scope authz.Scope, id uint) (*models.Prescription, error)
	Create(ctx context.Context, p *models.Prescription) error
	Save(ctx context.Context, p *models.Prescription) error
	Delete(ctx context.Context, p *models.Prescription) error
	PatientExists(ctx context.Context, id uint) (bool, error)
	DoctorExists(ctx context.Context, id uint) (bool, error)
	PharmacyExists(ctx context.Context, id uint) (bool, error)
}

type PrescriptionService struct {
	engine *authz.Engine
	repo   PrescriptionRepository
}

func NewPrescriptionService(engine *authz.Engine, repo PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{engine: engine, repo: repo}
}

type PrescriptionInput struct {
	PatientID      uint   `json:"patient_id"`
	DoctorID       uint   `json:"doctor_id"`
	PharmacyID     uint   `json:"pharmacy_id"`
	MedicationName string `json:"medication_name" binding:"required"`
	Dosage         string `json:"dosage"`
	Instructions   string `json:"instructions"`
	IssueDate      string `json:"issue_date" binding:"required"`
}

func (s *PrescriptionService) List(ctx context.Context, caller authz.Caller) ([]models.Prescription, error) {
	scope := s.engine.ScopeForRead(authz.EntityPrescription, caller)
	return s.repo.List(ctx, scope)
}

func (s *PrescriptionService) Get(ctx context.Context, caller authz.Caller, id uint) (*models.Prescription, error) {
	scope := s.engine.ScopeForRead(authz.EntityPrescription, caller)
	return s.repo.Get(ctx, scope, id)
}

func (s *PrescriptionService) Create(ctx context.Context, caller authz.Caller, in PrescriptionInput) (*models.Prescription, error) {
	if err := s.engine.AuthorizeWrite(authz.EntityPrescription, authz.OpCreate, caller).Err(); err != nil {
		return nil, err
	}

	issued, err := parseDate(in.IssueDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_issue_date")
	}

	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	p := &models.Prescription{
		PatientID:      in.PatientID,
		DoctorID:       in.DoctorID,
		PharmacyID:     in.PharmacyID,
		MedicationName: in.MedicationName,
		Dosage:         in.Dosage,
		Instructions:   in.Instructions,
		IssueDate:      issued,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PrescriptionService) Update(ctx context.Context, caller authz.Caller, id uint, in PrescriptionInput) (*models.Prescription, error) {
	if err := s.engine.AuthorizeWrite(authz.EntityPrescription, authz.OpUpdate, caller).Err(); err != nil {
		return nil, err
	}

	scope := s.engine.ScopeForRead(authz.EntityPrescription, caller)
	p, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	issued, err := parseDate(in.IssueDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_issue_date")
	}

	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	p.PatientID = in.PatientID
	p.DoctorID = in.DoctorID
	p.PharmacyID = in.PharmacyID
	p.MedicationName = in.MedicationName
	p.Dosage = in.Dosage
	p.Instructions = in.Instructions
	p.IssueDate = issued

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PrescriptionService) Delete(ctx context.Context, caller authz.Caller, id uint) error {
	if err := s.engine.AuthorizeWrite(authz.EntityPrescription, authz.OpDelete, caller).Err(); err != nil {
		return err
	}

	scope := s.engine.ScopeForRead(authz.EntityPrescription, caller)
	p, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, p)
}

func (s *PrescriptionService) checkReferences(ctx context.Context, in PrescriptionInput) error {
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

	ok, err = s.repo.PharmacyExists(ctx, in.PharmacyID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("pharmacy_not_found")
	}
	return nil
}
