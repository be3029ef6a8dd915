//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealer-contracts/internal/infra"
	"dealer-contracts/internal/infra/repository"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	repositorymock "dealer-contracts/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		rows           int64
		dbErr          error
		expectInserted bool
		expectKind     infra.RepositoryErrorKind
	}{
		{name: "success: key inserted", rows: 1, expectInserted: true},
		{name: "success: key already exists", rows: 0, expectInserted: false},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)
			key, userID := uuid.New(), uuid.New()

			mockQueries.EXPECT().TryInsertIdempotencyKey(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
					assert.Equal(t, key, arg.Key)
					assert.Equal(t, userID, arg.UserID)
					assert.Equal(t, "hash", arg.RequestHash)
					assert.Equal(t, expiresAt, arg.ExpiresAt.Time)
					return tc.rows, tc.dbErr
				})

			inserted, err := repo.TryInsert(ctx, mockDB, key, userID, "POST /x", "hash", expiresAt)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectInserted, inserted)
		})
	}
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

	mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, mockDB).Return(int64(3), nil)

	n, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
