//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/infra"
	"dealer-contracts/internal/infra/repository"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/tests/common/builder"
	repositorymock "dealer-contracts/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Session Tests
// =============================================================================

func TestSessionRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockSessionWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSessionRepository(mockQueries, mockDB)

	session, _, err := builder.NewSessionBuilder().BuildDomain()
	require.NoError(t, err)

	var got sqlc.CreateSignatureSessionParams
	mockQueries.EXPECT().CreateSignatureSession(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateSignatureSessionParams) error {
			got = arg
			return nil
		})

	require.NoError(t, repo.Create(ctx, mockDB, session))

	assert.Equal(t, session.ID(), got.ID)
	assert.Equal(t, session.TokenHash(), got.TokenHash)
	assert.Equal(t, "b2c", got.ContractType)
	assert.True(t, got.ExpiresAt.Valid)
	assert.Equal(t, session.ExpiresAt(), got.ExpiresAt.Time)

	var opts contract.Options
	require.NoError(t, json.Unmarshal(got.Options, &opts))
	assert.Equal(t, session.Options(), opts)

	var vehicle contract.VehicleSnapshot
	require.NoError(t, json.Unmarshal(got.VehicleSnapshot, &vehicle))
	assert.Equal(t, session.Vehicle().LicensePlate, vehicle.LicensePlate)
	require.NotNil(t, vehicle.Customer)
	assert.Equal(t, "jan@example.nl", vehicle.Customer.Email)
}

// =============================================================================
// MarkSigned / Revoke Tests
// =============================================================================

func TestSessionRepository_MarkSigned(t *testing.T) {
	ctx := context.Background()
	signedAt := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectWon  bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: pending row flipped", rows: 1, expectWon: true},
		{name: "lost: no pending row matched", rows: 0, expectWon: false},
		{name: "error: database failure", dbErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSessionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSessionRepository(mockQueries, mockDB)

			sig, err := signature.NewSignature(builder.NewSessionBuilder().SignerInput(), signedAt)
			require.NoError(t, err)
			id := uuid.New()

			mockQueries.EXPECT().MarkSignatureSessionSigned(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkSignatureSessionSignedParams) (int64, error) {
					assert.Equal(t, id, arg.ID)
					assert.Equal(t, "jan@example.nl", arg.SignerEmail.String)
					assert.Equal(t, "203.0.113.7", arg.SourceAddress.String)
					assert.Equal(t, signedAt, arg.SignedAt.Time)
					return tc.rows, tc.dbErr
				})

			won, err := repo.MarkSigned(ctx, mockDB, id, sig)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectWon, won)
		})
	}
}

func TestSessionRepository_Revoke(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockSessionWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSessionRepository(mockQueries, mockDB)
	at := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().RevokeSignatureSession(ctx, mockDB, gomock.Any()).Return(int64(1), nil)
	ok, err := repo.Revoke(ctx, mockDB, uuid.New(), at)
	require.NoError(t, err)
	assert.True(t, ok)

	mockQueries.EXPECT().RevokeSignatureSession(ctx, mockDB, gomock.Any()).Return(int64(0), nil)
	ok, err = repo.Revoke(ctx, mockDB, uuid.New(), at)
	require.NoError(t, err)
	assert.False(t, ok)
}

// mockDBTX satisfies sqlc.DBTX; queries are mocked one level up.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
