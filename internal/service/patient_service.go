package service

import (
	"context"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/httperr"
	"github.com/carelinehq/clinic-records/internal/models"
)

type PatientRepository interface {
	List(ctx context.Context, scope authz.Scope, search string) ([]models.Patient, error)
	Get(ctx context.Context, scope authz.Scope, id uint) (*models.Patient, error)
	Create(ctx context.Context, p *models.Patient) error
	Save(ctx context.Context, p *models.Patient) error
	Delete(ctx context.Context, p *models.Patient) error
	UserExists(ctx context.Context, userID uint) (bool, error)
}

type PatientService struct {
	engine *authz.Engine
	repo   PatientRepository
}

func NewPatientService(engine *authz.Engine, repo PatientRepository) *PatientService {
	return &PatientService{engine: engine, repo: repo}
}

type PatientInput struct {
	UserID      uint   `json:"user_id"`
	FullName    string `json:"full_name" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

func (s *PatientService) List(ctx context.Context, caller authz.Caller, search string) ([]models.Patient, error) {
	scope := s.engine.ScopeForRead(authz.EntityPatient, caller)
	return s.repo.List(ctx, scope, search)
}

func (s *PatientService) Get(ctx context.Context, caller authz.Caller, id uint) (*models.Patient, error) {
	scope := s.engine.ScopeForRead(authz.EntityPatient, caller)
	return s.repo.Get(ctx, scope, id)
}

func (s *PatientService) Create(ctx context.Context, caller authz.Caller, in PatientInput) (*models.Patient, error) {
	if err := s.engine.AuthorizeWrite(authz.EntityPatient, authz.OpCreate, caller).Err(); err != nil {
		return nil, err
	}

	dob, err := parseDate(in.DateOfBirth)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_of_birth")
	}

	ok, err := s.repo.UserExists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	p := &models.Patient{
		UserID:      in.UserID,
		FullName:    in.FullName,
		DateOfBirth: dob,
		Gender:      in.Gender,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PatientService) Update(ctx context.Context, caller authz.Caller, id uint, in PatientInput) (*models.Patient, error) {
	dec := s.engine.AuthorizeWrite(authz.EntityPatient, authz.OpUpdate, caller)
	if err := dec.Err(); err != nil {
		return nil, err
	}

	scope := s.engine.ScopeForRead(authz.EntityPatient, caller)
	p, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	dob, err := parseDate(in.DateOfBirth)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_of_birth")
	}

	p.FullName = in.FullName
	p.DateOfBirth = dob
	p.Gender = in.Gender
	p.PhoneNumber = in.PhoneNumber
	p.Address = in.Address

	// Self-updates are pinned to the caller in the same step as the allow;
	// whatever user_id the payload carried is discarded.
	if dec.ForceOwner {
		p.UserID = caller.UserID
	} else if in.UserID != 0 {
		p.UserID = in.UserID
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PatientService) Delete(ctx context.Context, caller authz.Caller, id uint) error {
	if err := s.engine.AuthorizeWrite(authz.EntityPatient, authz.OpDelete, caller).Err(); err != nil {
		return err
	}

	scope := s.engine.ScopeForRead(authz.EntityPatient, caller)
	p, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, p)
}
