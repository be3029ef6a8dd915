//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/infra"
	"dealer-contracts/internal/infra/readstore"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	readstoremock "dealer-contracts/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	createdAt           = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
)

func sessionRow(id uuid.UUID) sqlc.SignatureSessions {
	return sqlc.SignatureSessions{
		ID:              id,
		TokenHash:       "abc123",
		VehicleID:       uuid.New(),
		ContractType:    "b2c",
		Options:         []byte(`{"contractType":"b2c","vehicleType":"marge"}`),
		VehicleSnapshot: []byte(`{"id":"` + uuid.NewString() + `","licensePlate":"XX-123-Y","brand":"Volkswagen","model":"Golf","sellingPrice":20000}`),
		CreatedBy:       uuid.New(),
		CreatedAt:       pgtype.Timestamptz{Time: createdAt, Valid: true},
		ExpiresAt:       pgtype.Timestamptz{Time: createdAt.Add(signature.DefaultValidity), Valid: true},
		Status:          "pending",
	}
}

// =============================================================================
// FindByTokenHash Tests
// =============================================================================

func TestSessionReadStore_FindByTokenHash(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		row        func() sqlc.SignatureSessions
		dbErr      error
		expectKind infra.RepositoryErrorKind
		check      func(t *testing.T, s *signature.Session)
	}{
		{
			name: "success: pending session",
			row:  func() sqlc.SignatureSessions { return sessionRow(id) },
			check: func(t *testing.T, s *signature.Session) {
				assert.Equal(t, id, s.ID())
				assert.Equal(t, signature.StatusPending, s.Status())
				assert.Equal(t, int64(20000), s.Vehicle().SellingPrice)
				assert.Equal(t, createdAt.Add(signature.DefaultValidity), s.ExpiresAt())
				assert.Nil(t, s.Signature())
			},
		},
		{
			name: "success: signed session carries the audit record",
			row: func() sqlc.SignatureSessions {
				row := sessionRow(id)
				row.Status = "signed"
				row.SignerName = pgtype.Text{String: "Jan de Vries", Valid: true}
				row.SignerEmail = pgtype.Text{String: "jan@example.nl", Valid: true}
				row.SignatureImagePath = pgtype.Text{String: "signatures/x.png", Valid: true}
				row.SourceAddress = pgtype.Text{String: "203.0.113.7", Valid: true}
				row.SignedAt = pgtype.Timestamptz{Time: createdAt.Add(time.Hour), Valid: true}
				return row
			},
			check: func(t *testing.T, s *signature.Session) {
				require.NotNil(t, s.Signature())
				assert.Equal(t, "jan@example.nl", s.Signature().SignerEmail.Value())
				assert.Equal(t, createdAt.Add(time.Hour), s.Signature().SignedAt)
			},
		},
		{
			name: "error: signed status without signature is inconsistent",
			row: func() sqlc.SignatureSessions {
				row := sessionRow(id)
				row.Status = "signed"
				return row
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: not found",
			dbErr:      pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database connection lost",
			dbErr:      errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockSessionReadQueries(ctrl)
			store := readstore.NewSessionReadStore(mockQueries, &mockDBTX{})

			var row sqlc.SignatureSessions
			if tc.row != nil {
				row = tc.row()
			}
			mockQueries.EXPECT().GetSignatureSessionByTokenHash(ctx, gomock.Any(), "abc123").Return(row, tc.dbErr)

			s, err := store.FindByTokenHash(ctx, "abc123")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			tc.check(t, s)
		})
	}
}

func TestSessionReadStore_ListByVehicle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockSessionReadQueries(ctrl)
	store := readstore.NewSessionReadStore(mockQueries, &mockDBTX{})
	vehicleID := uuid.New()

	mockQueries.EXPECT().ListSignatureSessionsByVehicle(ctx, gomock.Any(), vehicleID).
		Return([]sqlc.SignatureSessions{sessionRow(uuid.New()), sessionRow(uuid.New())}, nil)

	sessions, err := store.ListByVehicle(ctx, vehicleID)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

// =============================================================================
// Vehicle lookup Tests
// =============================================================================

func TestVehicleReadStore(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockVehicleReadQueries(ctrl)
	store := readstore.NewVehicleReadStore(mockQueries, &mockDBTX{})
	vehicleID, customerID := uuid.New(), uuid.New()

	mockQueries.EXPECT().GetVehicle(ctx, gomock.Any(), vehicleID).Return(sqlc.Vehicles{
		ID:           vehicleID,
		Vin:          "WVWZZZ1KZAW000001",
		LicensePlate: "XX-123-Y",
		Brand:        "Volkswagen",
		Model:        "Golf",
		Year:         pgtype.Int4{Int32: 2019, Valid: true},
		SellingPrice: 20000,
		CustomerID:   pgtype.UUID{Bytes: customerID, Valid: true},
	}, nil)

	rec, err := store.VehicleByID(ctx, vehicleID)
	require.NoError(t, err)
	assert.Equal(t, 2019, rec.Snapshot.Year)
	assert.Zero(t, rec.Snapshot.Mileage)
	require.NotNil(t, rec.CustomerID)
	assert.Equal(t, customerID, *rec.CustomerID)

	mockQueries.EXPECT().GetContact(ctx, gomock.Any(), customerID).Return(sqlc.Contacts{}, pgx.ErrNoRows)
	_, err = store.ContactByID(ctx, customerID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
