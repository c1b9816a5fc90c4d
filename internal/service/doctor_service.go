package service

import (
	"context"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/httperr"
	"github.com/carelinehq/clinic-records/internal/models"
)

type DoctorRepository interface {
	List(ctx context.Context, scope authz.Scope) ([]models.Doctor, error)
	Get(ctx context.Context, scope authz.Scope, id uint) (*models.Doctor, error)
	Create(ctx context.Context, d *models.Doctor) error
	Save(ctx context.Context, d *models.Doctor) error
	Delete(ctx context.Context, d *models.Doctor) error
	UserExists(ctx context.Context, userID uint) (bool, error)
}

type DoctorService struct {
	engine *authz.Engine
	repo   DoctorRepository
}

func NewDoctorService(engine *authz.Engine, repo DoctorRepository) *DoctorService {
	return &DoctorService{engine: engine, repo: repo}
}

type DoctorInput struct {
	UserID         uint   `json:"user_id"`
	Specialization string `json:"specialization" binding:"required"`
	LicenseNumber  string `json:"license_number" binding:"required"`
}

func (s *DoctorService) List(ctx context.Context, caller authz.Caller) ([]models.Doctor, error) {
	scope := s.engine.ScopeForRead(authz.EntityDoctor, caller)
	return s.repo.List(ctx, scope)
}

func (s *DoctorService) Get(ctx context.Context, caller authz.Caller, id uint) (*models.Doctor, error) {
	scope := s.engine.ScopeForRead(authz.EntityDoctor, caller)
	return s.repo.Get(ctx, scope, id)
}

func (s *DoctorService) Create(ctx context.Context, caller authz.Caller, in DoctorInput) (*models.Doctor, error) {
	if err := s.engine.AuthorizeWrite(authz.EntityDoctor, authz.OpCreate, caller).Err(); err != nil {
		return nil, err
	}

	ok, err := s.repo.UserExists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	d := &models.Doctor{
		UserID:         in.UserID,
		Specialization: in.Specialization,
		LicenseNumber:  in.LicenseNumber,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DoctorService) Update(ctx context.Context, caller authz.Caller, id uint, in DoctorInput) (*models.Doctor, error) {
	dec := s.engine.AuthorizeWrite(authz.EntityDoctor, authz.OpUpdate, caller)
	if err := dec.Err(); err != nil {
		return nil, err
	}

	scope := s.engine.ScopeForRead(authz.EntityDoctor, caller)
	d, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	d.Specialization = in.Specialization
	d.LicenseNumber = in.LicenseNumber

	if dec.ForceOwner {
		d.UserID = caller.UserID
	} else if in.UserID != 0 {
		d.UserID = in.UserID
	}

	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DoctorService) Delete(ctx context.Context, caller authz.Caller, id uint) error {
	if err := s.engine.AuthorizeWrite(authz.EntityDoctor, authz.OpDelete, caller).Err(); err != nil {
		return err
	}

	scope := s.engine.ScopeForRead(authz.EntityDoctor, caller)
	d, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, d)
}
