package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/authz"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestPatientListOrdersByID(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewPatientGormRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "patients" WHERE user_id = $1 ORDER BY id`)).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name"}))

	patients, err := repo.List(context.Background(), authz.ScopeWhere("user_id = ?", uint(7)), "")
	assert.NoError(t, err)
	assert.Empty(t, patients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientListSearchFilter(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewPatientGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE \(?LOWER\(full_name\) LIKE \$1 OR phone_number LIKE \$2\)? ORDER BY id`).
		WithArgs("%ana%", "%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.List(context.Background(), authz.ScopeAll(), "  Ana ")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientListNoneScopeReturnsNothing(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewPatientGormRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "patients" WHERE 1 = 0 ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	patients, err := repo.List(context.Background(), authz.ScopeNone(), "")
	assert.NoError(t, err)
	assert.Empty(t, patients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientGetOutsideScopeIsNotFound(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewPatientGormRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "patients" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), authz.ScopeWhere("user_id = ?", uint(7)), 42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
