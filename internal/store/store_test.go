package store

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ski-rental-backend/internal/model"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGormStore_Skis(t *testing.T) {
	gormDB, mock := newTestDB(t)
	store := NewGormStore(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "skis"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "brand", "model"}).
			AddRow(1, "A1", "Atomic", "Redster S9").
			AddRow(2, "H1", "Head", "Supershape"))

	skis, err := store.Skis(context.Background())
	require.NoError(t, err)
	require.Len(t, skis, 2)
	assert.Equal(t, "Atomic", skis[0].Brand)
	assert.Equal(t, "H1", skis[1].Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ReservationsForCode(t *testing.T) {
	gormDB, mock := newTestDB(t)
	store := NewGormStore(gormDB)

	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reservations" WHERE code = $1`)).
		WithArgs("A1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "client", "start_date", "end_date"}).
			AddRow("r1", "A1", "Kowalski", start, end))

	reservations, err := store.ReservationsForCode(context.Background(), "A1")
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "Kowalski", reservations[0].Client)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ReservationsInPeriod(t *testing.T) {
	gormDB, mock := newTestDB(t)
	store := NewGormStore(gormDB)

	from := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reservations" WHERE start_date <= $1 AND end_date >= $2`)).
		WithArgs(to, from).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}).AddRow("r1", "A1"))

	reservations, err := store.ReservationsInPeriod(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, reservations, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreateReservationGeneratesID(t *testing.T) {
	gormDB, mock := newTestDB(t)
	store := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "reservations"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := model.Reservation{
		Client:    "Nowak",
		Code:      "A1",
		StartDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.CreateReservation(context.Background(), &r))

	_, err := uuid.Parse(r.ID)
	assert.NoError(t, err, "generated ID should be a uuid")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreateReservationKeepsProvidedID(t *testing.T) {
	gormDB, mock := newTestDB(t)
	store := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "reservations"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := model.Reservation{ID: "fixed-id", Client: "Nowak", Code: "A1"}
	require.NoError(t, store.CreateReservation(context.Background(), &r))
	assert.Equal(t, "fixed-id", r.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteSkiNotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	store := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "skis"`)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := store.DeleteSki(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Any is a helper for sqlmock to match any argument.
type Any struct{}

// Match satisfies the sqlmock.Argument interface
func (a Any) Match(v driver.Value) bool {
	return true
}
