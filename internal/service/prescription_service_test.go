package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/models"
)

var _ PrescriptionRepository = (*mockPrescriptionRepo)(nil)

type mockPrescriptionRepo struct {
	ListFunc   func(ctx context.Context, scope authz.Scope) ([]models.Prescription, error)
	GetFunc    func(ctx context.Context, scope authz.Scope, id uint) (*models.Prescription, error)
	CreateFunc func(ctx context.Context, p *models.Prescription) error
	DeleteFunc func(ctx context.Context, p *models.Prescription) error
}

func (m *mockPrescriptionRepo) List(ctx context.Context, scope authz.Scope) ([]models.Prescription, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, scope)
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) Get(ctx context.Context, scope authz.Scope, id uint) (*models.Prescription, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, scope, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPrescriptionRepo) Create(ctx context.Context, p *models.Prescription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPrescriptionRepo) Save(ctx context.Context, p *models.Prescription) error {
	return nil
}

func (m *mockPrescriptionRepo) Delete(ctx context.Context, p *models.Prescription) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, p)
	}
	return nil
}

func (m *mockPrescriptionRepo) PatientExists(ctx context.Context, id uint) (bool, error) {
	return true, nil
}

func (m *mockPrescriptionRepo) DoctorExists(ctx context.Context, id uint) (bool, error) {
	return true, nil
}

func (m *mockPrescriptionRepo) PharmacyExists(ctx context.Context, id uint) (bool, error) {
	return true, nil
}

func TestPrescriptionDelete_PharmacistAlwaysDenied(t *testing.T) {
	deleteCalled := false
	repo := &mockPrescriptionRepo{
		GetFunc: func(ctx context.Context, scope authz.Scope, id uint) (*models.Prescription, error) {
			return &models.Prescription{ID: id}, nil
		},
		DeleteFunc: func(ctx context.Context, p *models.Prescription) error {
			deleteCalled = true
			return nil
		},
	}
	svc := NewPrescriptionService(authz.NewEngine(), repo)

	pharmacist := authz.Caller{UserID: 11, Role: authz.RolePharmacist}
	err := svc.Delete(context.Background(), pharmacist, 1)

	var denied authz.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "Pharmacists cannot delete prescriptions.", denied.Reason)
	assert.False(t, deleteCalled)
}

func TestPrescriptionUpdate_PharmacistDenied(t *testing.T) {
	svc := NewPrescriptionService(authz.NewEngine(), &mockPrescriptionRepo{})

	pharmacist := authz.Caller{UserID: 11, Role: authz.RolePharmacist}
	_, err := svc.Update(context.Background(), pharmacist, 1, PrescriptionInput{
		PatientID: 10, DoctorID: 9, PharmacyID: 2,
		MedicationName: "Paracetamol", IssueDate: "2024-03-01",
	})

	var denied authz.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "Pharmacists cannot update prescriptions.", denied.Reason)
}

func TestPrescriptionList_PharmacistSeesAll(t *testing.T) {
	var captured authz.Scope
	repo := &mockPrescriptionRepo{
		ListFunc: func(ctx context.Context, scope authz.Scope) ([]models.Prescription, error) {
			captured = scope
			return nil, nil
		},
	}
	svc := NewPrescriptionService(authz.NewEngine(), repo)

	pharmacist := authz.Caller{UserID: 11, Role: authz.RolePharmacist}
	_, err := svc.List(context.Background(), pharmacist)

	require.NoError(t, err)
	assert.Equal(t, authz.ScopeAll(), captured)
}

func TestPrescriptionList_DoctorScopedToOwn(t *testing.T) {
	var captured authz.Scope
	repo := &mockPrescriptionRepo{
		ListFunc: func(ctx context.Context, scope authz.Scope) ([]models.Prescription, error) {
			captured = scope
			return nil, nil
		},
	}
	svc := NewPrescriptionService(authz.NewEngine(), repo)

	doctor := authz.Caller{UserID: 9, Role: authz.RoleDoctor}
	_, err := svc.List(context.Background(), doctor)

	require.NoError(t, err)
	assert.Equal(t,
		authz.ScopeWhere("doctor_id IN (SELECT id FROM doctors WHERE user_id = ?)", uint(9)),
		captured)
}

func TestPrescriptionCreate_DoctorOnly(t *testing.T) {
	var created *models.Prescription
	repo := &mockPrescriptionRepo{
		CreateFunc: func(ctx context.Context, p *models.Prescription) error {
			created = p
			return nil
		},
	}
	svc := NewPrescriptionService(authz.NewEngine(), repo)

	in := PrescriptionInput{
		PatientID: 10, DoctorID: 9, PharmacyID: 2,
		MedicationName: "Paracetamol", Dosage: "500mg",
		Instructions: "Twice daily", IssueDate: "2024-03-01",
	}

	doctor := authz.Caller{UserID: 9, Role: authz.RoleDoctor}
	p, err := svc.Create(context.Background(), doctor, in)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Paracetamol", p.MedicationName)

	patient := authz.Caller{UserID: 7, Role: authz.RolePatient}
	_, err = svc.Create(context.Background(), patient, in)
	var denied authz.DeniedError
	assert.ErrorAs(t, err, &denied)
}
