package service

import (
	"context"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/models"
)

type PharmacyRepository interface {
	List(ctx context.Context, scope authz.Scope) ([]models.Pharmacy, error)
	Get(ctx context.Context, scope authz.Scope, id uint) (*models.Pharmacy, error)
	Create(ctx context.Context, p *models.Pharmacy) error
	Save(ctx context.Context, p *models.Pharmacy) error
	Delete(ctx context.Context, p *models.Pharmacy) error
}

type PharmacyService struct {
	engine *authz.Engine
	repo   PharmacyRepository
}

func NewPharmacyService(engine *authz.Engine, repo PharmacyRepository) *PharmacyService {
	return &PharmacyService{engine: engine, repo: repo}
}

type PharmacyInput struct {
	Name          string `json:"name" binding:"required"`
	Location      string `json:"location"`
	ContactNumber string `json:"contact_number"`
}

func (s *PharmacyService) List(ctx context.Context, caller authz.Caller) ([]models.Pharmacy, error) {
	scope := s.engine.ScopeForRead(authz.EntityPharmacy, caller)
	return s.repo.List(ctx, scope)
}

func (s *PharmacyService) Get(ctx context.Context, caller authz.Caller, id uint) (*models.Pharmacy, error) {
	scope := s.engine.ScopeForRead(authz.EntityPharmacy, caller)
	return s.repo.Get(ctx, scope, id)
}

func (s *PharmacyService) Create(ctx context.Context, caller authz.Caller, in PharmacyInput) (*models.Pharmacy, error) {
	if err := s.engine.AuthorizeWrite(authz.EntityPharmacy, authz.OpCreate, caller).Err(); err != nil {
		return nil, err
	}

	p := &models.Pharmacy{
		Name:          in.Name,
		Location:      in.Location,
		ContactNumber: in.ContactNumber,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update and Delete carry no role restriction beyond authentication;
// the permissive rule is inherited behavior, kept deliberately.
func (s *PharmacyService) Update(ctx context.Context, caller authz.Caller, id uint, in PharmacyInput) (*models.Pharmacy, error) {
	if err := s.engine.AuthorizeWrite(authz.EntityPharmacy, authz.OpUpdate, caller).Err(); err != nil {
		return nil, err
	}

	scope := s.engine.ScopeForRead(authz.EntityPharmacy, caller)
	p, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Location = in.Location
	p.ContactNumber = in.ContactNumber

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PharmacyService) Delete(ctx context.Context, caller authz.Caller, id uint) error {
	if err := s.engine.AuthorizeWrite(authz.EntityPharmacy, authz.OpDelete, caller).Err(); err != nil {
		return err
	}

	scope := s.engine.ScopeForRead(authz.EntityPharmacy, caller)
	p, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, p)
}
