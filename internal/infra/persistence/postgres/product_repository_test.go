package postgres

import (
	"context"
	"regexp"
	"testing"

	"sparestock/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens a GORM session over a sqlmock connection so repository
// tests can assert the exact SQL each operation issues.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestProductRepository_DecrementStock_GuardedUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	id := uuid.New()

	// The quantity guard must be part of the UPDATE itself; a plain
	// "WHERE id = ?" would let two concurrent purchases oversell.
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "products" SET "quantity"=quantity - $1 WHERE id = $2 AND quantity >= $3`)).
		WithArgs(3, id.String(), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DecrementStock(context.Background(), id, 3)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_DecrementStock_InsufficientStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "products" SET "quantity"=quantity - $1 WHERE id = $2 AND quantity >= $3`)).
		WithArgs(8, id.String(), 8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DecrementStock(context.Background(), id, 8)

	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_IncrementStock_SilentOnMissingProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	id := uuid.New()

	// Restoring stock for a product deleted since the order was placed
	// matches no row; the units have nowhere to return to.
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "products" SET "quantity"=quantity + $1 WHERE id = $2`)).
		WithArgs(5, id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementStock(context.Background(), id, 5)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
