//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/infra"
	"dealer-contracts/internal/infra/repository"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/tests/common/builder"
	repositorymock "dealer-contracts/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRecord(t *testing.T, sessionID *uuid.UUID) *archive.Record {
	t.Helper()
	b := builder.NewContractBuilder()
	id := uuid.New()
	rec, err := archive.NewRecord(archive.NewRecordParams{
		ID:             id,
		Vehicle:        b.Vehicle,
		ContractType:   b.Options.ContractType,
		Options:        b.Options,
		ArtifactPath:   archive.ArtifactPath(b.Vehicle.ID, id, "koopovereenkomst.pdf"),
		FileName:       "koopovereenkomst.pdf",
		ContractNumber: "XX123Y-260314-0001",
		SessionID:      sessionID,
		Now:            time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return rec
}

// =============================================================================
// Create Contract Tests
// =============================================================================

func TestContractRepository_Create(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockContractWriteQueries, *archive.Record, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: record with session link stored",
			setupMock: func(mock *repositorymock.MockContractWriteQueries, rec *archive.Record, tx sqlc.DBTX) {
				mock.EXPECT().CreateArchivedContract(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateArchivedContractParams) error {
						assert.Equal(t, rec.ID(), arg.ID)
						assert.Equal(t, rec.ArtifactPath(), arg.ArtifactPath)
						assert.True(t, arg.SessionID.Valid)
						assert.Equal(t, [16]byte(sessionID), arg.SessionID.Bytes)
						assert.Contains(t, string(arg.VehicleSnapshot), `"licensePlate":"XX-123-Y"`)
						return nil
					})
			},
		},
		{
			name: "error: duplicate record",
			setupMock: func(mock *repositorymock.MockContractWriteQueries, rec *archive.Record, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateArchivedContract(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockContractWriteQueries, rec *archive.Record, tx sqlc.DBTX) {
				mock.EXPECT().CreateArchivedContract(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockContractWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewContractRepository(mockQueries, mockDB)
			rec := newRecord(t, &sessionID)

			tc.setupMock(mockQueries, rec, mockDB)

			err := repo.Create(ctx, mockDB, rec)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Delete Contract Tests
// =============================================================================

func TestContractRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row deleted", rows: 1},
		{name: "error: no such record", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockContractWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewContractRepository(mockQueries, mockDB)
			id := uuid.New()

			mockQueries.EXPECT().DeleteArchivedContract(ctx, mockDB, id).Return(tc.rows, tc.dbErr)

			err := repo.Delete(ctx, mockDB, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
