package postgres

import (
	"context"
	"regexp"
	"testing"

	"sparestock/internal/domain/entity"
	"sparestock/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_UpdateStatus_GuardedTransition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	id := uuid.New()

	// The status guard is part of the UPDATE itself, so two racing cancels
	// cannot both count as the transition that happened.
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "orders" SET "status"=$1 WHERE id = $2 AND status <> $3`)).
		WithArgs("Cancelled", id.String(), "Cancelled").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, entity.OrderStatusCancelled)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateStatus_AlreadyInTargetStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "orders" SET "status"=$1 WHERE id = $2 AND status <> $3`)).
		WithArgs("Cancelled", id.String(), "Cancelled").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, entity.OrderStatusCancelled)

	assert.ErrorIs(t, err, repository.ErrOrderStatusUnchanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}
