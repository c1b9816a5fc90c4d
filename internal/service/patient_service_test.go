package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/httperr"
	"github.com/carelinehq/clinic-records/internal/models"
)

var _ PatientRepository = (*mockPatientRepo)(nil)

type mockPatientRepo struct {
	ListFunc       func(ctx context.Context, scope authz.Scope, search string) ([]models.Patient, error)
	GetFunc        func(ctx context.Context, scope authz.Scope, id uint) (*models.Patient, error)
	CreateFunc     func(ctx context.Context, p *models.Patient) error
	SaveFunc       func(ctx context.Context, p *models.Patient) error
	DeleteFunc     func(ctx context.Context, p *models.Patient) error
	UserExistsFunc func(ctx context.Context, userID uint) (bool, error)
}

func (m *mockPatientRepo) List(ctx context.Context, scope authz.Scope, search string) ([]models.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, scope, search)
	}
	return nil, nil
}

func (m *mockPatientRepo) Get(ctx context.Context, scope authz.Scope, id uint) (*models.Patient, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, scope, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPatientRepo) Create(ctx context.Context, p *models.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPatientRepo) Save(ctx context.Context, p *models.Patient) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPatientRepo) Delete(ctx context.Context, p *models.Patient) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, p)
	}
	return nil
}

func (m *mockPatientRepo) UserExists(ctx context.Context, userID uint) (bool, error) {
	if m.UserExistsFunc != nil {
		return m.UserExistsFunc(ctx, userID)
	}
	return true, nil
}

func validPatientInput() PatientInput {
	return PatientInput{
		UserID:      42,
		FullName:    "John Doe",
		DateOfBirth: "1990-01-01",
		Gender:      "Male",
		PhoneNumber: "1234567890",
		Address:     "Accra",
	}
}

func TestPatientList_ScopedToCaller(t *testing.T) {
	var captured authz.Scope
	repo := &mockPatientRepo{
		ListFunc: func(ctx context.Context, scope authz.Scope, search string) ([]models.Patient, error) {
			captured = scope
			return []models.Patient{}, nil
		},
	}
	svc := NewPatientService(authz.NewEngine(), repo)

	caller := authz.Caller{UserID: 7, Role: authz.RolePatient}
	_, err := svc.List(context.Background(), caller, "")

	require.NoError(t, err)
	assert.Equal(t, authz.ScopeWhere("user_id = ?", uint(7)), captured)
}

func TestPatientCreate_AdminOnly(t *testing.T) {
	repo := &mockPatientRepo{}
	svc := NewPatientService(authz.NewEngine(), repo)

	for _, role := range []authz.Role{authz.RoleDoctor, authz.RolePatient, authz.RolePharmacist} {
		caller := authz.Caller{UserID: 5, Role: role}
		_, err := svc.Create(context.Background(), caller, validPatientInput())

		var denied authz.DeniedError
		require.ErrorAs(t, err, &denied, "role %s must be denied", role)
	}

	admin := authz.Caller{UserID: 1, Role: authz.RoleAdmin}
	p, err := svc.Create(context.Background(), admin, validPatientInput())
	require.NoError(t, err)
	assert.Equal(t, uint(42), p.UserID)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), p.DateOfBirth)
}

func TestPatientCreate_UserMustExist(t *testing.T) {
	repo := &mockPatientRepo{
		UserExistsFunc: func(ctx context.Context, userID uint) (bool, error) {
			return false, nil
		},
	}
	svc := NewPatientService(authz.NewEngine(), repo)

	admin := authz.Caller{UserID: 1, Role: authz.RoleAdmin}
	_, err := svc.Create(context.Background(), admin, validPatientInput())

	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestPatientUpdate_SelfUpdatePinsOwner(t *testing.T) {
	var saved *models.Patient
	repo := &mockPatientRepo{
		GetFunc: func(ctx context.Context, scope authz.Scope, id uint) (*models.Patient, error) {
			return &models.Patient{ID: id, UserID: 7, FullName: "John Doe"}, nil
		},
		SaveFunc: func(ctx context.Context, p *models.Patient) error {
			saved = p
			return nil
		},
	}
	svc := NewPatientService(authz.NewEngine(), repo)

	caller := authz.Caller{UserID: 7, Role: authz.RolePatient}
	in := validPatientInput()
	in.UserID = 999 // payload tries to hand the profile to someone else

	p, err := svc.Update(context.Background(), caller, 3, in)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint(7), saved.UserID, "owner must be pinned to the caller")
	assert.Equal(t, uint(7), p.UserID)
	assert.Equal(t, "John Doe", saved.FullName)
}

func TestPatientUpdate_AdminPayloadHonored(t *testing.T) {
	var saved *models.Patient
	repo := &mockPatientRepo{
		GetFunc: func(ctx context.Context, scope authz.Scope, id uint) (*models.Patient, error) {
			return &models.Patient{ID: id, UserID: 7}, nil
		},
		SaveFunc: func(ctx context.Context, p *models.Patient) error {
			saved = p
			return nil
		},
	}
	svc := NewPatientService(authz.NewEngine(), repo)

	admin := authz.Caller{UserID: 1, Role: authz.RoleAdmin}
	in := validPatientInput()
	in.UserID = 55

	_, err := svc.Update(context.Background(), admin, 3, in)

	require.NoError(t, err)
	assert.Equal(t, uint(55), saved.UserID)
}

func TestPatientUpdate_DoctorDenied(t *testing.T) {
	getCalled := false
	repo := &mockPatientRepo{
		GetFunc: func(ctx context.Context, scope authz.Scope, id uint) (*models.Patient, error) {
			getCalled = true
			return &models.Patient{ID: id}, nil
		},
	}
	svc := NewPatientService(authz.NewEngine(), repo)

	doctor := authz.Caller{UserID: 9, Role: authz.RoleDoctor}
	_, err := svc.Update(context.Background(), doctor, 3, validPatientInput())

	var denied authz.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.False(t, getCalled, "deny must short-circuit before the store")
}

func TestPatientDelete_DoctorDenied(t *testing.T) {
	repo := &mockPatientRepo{}
	svc := NewPatientService(authz.NewEngine(), repo)

	doctor := authz.Caller{UserID: 9, Role: authz.RoleDoctor}
	err := svc.Delete(context.Background(), doctor, 3)

	var denied authz.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "Doctors cannot delete patient profiles.", denied.Reason)
}

func TestPatientGet_OutOfScopeIsNotFound(t *testing.T) {
	repo := &mockPatientRepo{
		GetFunc: func(ctx context.Context, scope authz.Scope, id uint) (*models.Patient, error) {
			// the scoped query simply finds nothing
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewPatientService(authz.NewEngine(), repo)

	caller := authz.Caller{UserID: 7, Role: authz.RolePatient}
	_, err := svc.Get(context.Background(), caller, 999)

	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPatientCreate_BadDateRejected(t *testing.T) {
	svc := NewPatientService(authz.NewEngine(), &mockPatientRepo{})

	admin := authz.Caller{UserID: 1, Role: authz.RoleAdmin}
	in := validPatientInput()
	in.DateOfBirth = "01/01/1990"

	_, err := svc.Create(context.Background(), admin, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_of_birth"))
}
