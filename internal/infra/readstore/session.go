package readstore

import (
	"context"
	"encoding/json"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/infra"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SessionReadQueries interface {
	GetSignatureSessionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SignatureSessions, error)
	GetSignatureSessionByTokenHash(ctx context.Context, db sqlc.DBTX, tokenHash string) (sqlc.SignatureSessions, error)
	ListSignatureSessionsByVehicle(ctx context.Context, db sqlc.DBTX, vehicleID uuid.UUID) ([]sqlc.SignatureSessions, error)
}

type SessionReadStore struct {
	queries SessionReadQueries
	db      sqlc.DBTX
}

func NewSessionReadStore(queries SessionReadQueries, db sqlc.DBTX) *SessionReadStore {
	return &SessionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*signature.Session, error) {
	row, err := r.queries.GetSignatureSessionByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("signature session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get signature session", err)
	}
	return toSession(row)
}

func (r *SessionReadStore) FindByTokenHash(ctx context.Context, hash string) (*signature.Session, error) {
	row, err := r.queries.GetSignatureSessionByTokenHash(ctx, r.db, hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("signature session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get signature session by token", err)
	}
	return toSession(row)
}

func (r *SessionReadStore) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*signature.Session, error) {
	rows, err := r.queries.ListSignatureSessionsByVehicle(ctx, r.db, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list signature sessions", err)
	}
	out := make([]*signature.Session, 0, len(rows))
	for _, row := range rows {
		s, err := toSession(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func toSession(row sqlc.SignatureSessions) (*signature.Session, error) {
	var opts contract.Options
	if err := json.Unmarshal(row.Options, &opts); err != nil {
		return nil, infra.WrapRepoErr("failed to decode session options", err, infra.KindDBFailure)
	}
	var vehicle contract.VehicleSnapshot
	if err := json.Unmarshal(row.VehicleSnapshot, &vehicle); err != nil {
		return nil, infra.WrapRepoErr("failed to decode session vehicle", err, infra.KindDBFailure)
	}

	var sig *signature.Signature
	if row.SignedAt.Valid {
		email, err := notification.NewEmail(pgconv.StringFromPgtype(row.SignerEmail))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid signer email on session", err, infra.KindDBFailure)
		}
		sig = &signature.Signature{
			SignerName:    pgconv.StringFromPgtype(row.SignerName),
			SignerEmail:   email,
			ImagePath:     pgconv.StringFromPgtype(row.SignatureImagePath),
			SourceAddress: pgconv.StringFromPgtype(row.SourceAddress),
			SignedAt:      pgconv.TimeFromPgtype(row.SignedAt),
		}
	}

	s, err := signature.ReconstructSession(
		row.ID,
		row.TokenHash,
		row.VehicleID,
		contract.ContractType(row.ContractType),
		opts,
		vehicle,
		row.CreatedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		signature.Status(row.Status),
		sig,
		pgconv.TimePtrFromPgtype(row.RevokedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct signature session", err, infra.KindDBFailure)
	}
	return s, nil
}
