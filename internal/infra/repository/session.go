package repository

import (
	"context"
	"encoding/json"
	"time"

	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/infra"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SessionWriteQueries interface {
	CreateSignatureSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSignatureSessionParams) error
	MarkSignatureSessionSigned(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkSignatureSessionSignedParams) (int64, error)
	RevokeSignatureSession(ctx context.Context, db sqlc.DBTX, arg sqlc.RevokeSignatureSessionParams) (int64, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
	db      sqlc.DBTX
}

func NewSessionRepository(queries SessionWriteQueries, db sqlc.DBTX) *SessionRepository {
	return &SessionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SessionRepository) Create(ctx context.Context, tx sqlc.DBTX, s *signature.Session) error {
	opts, err := json.Marshal(s.Options())
	if err != nil {
		return infra.WrapRepoErr("failed to encode session options", err, infra.KindDBFailure)
	}
	vehicle, err := json.Marshal(s.Vehicle())
	if err != nil {
		return infra.WrapRepoErr("failed to encode vehicle snapshot", err, infra.KindDBFailure)
	}

	params := sqlc.CreateSignatureSessionParams{
		ID:              s.ID(),
		TokenHash:       s.TokenHash(),
		VehicleID:       s.VehicleID(),
		ContractType:    s.ContractType().String(),
		Options:         opts,
		VehicleSnapshot: vehicle,
		CreatedBy:       s.CreatedBy(),
		CreatedAt:       pgconv.TimeToPgtype(s.CreatedAt()),
		ExpiresAt:       pgconv.TimeToPgtype(s.ExpiresAt()),
	}

	if err := r.queries.CreateSignatureSession(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create signature session", err)
	}
	return nil
}

func (r *SessionRepository) MarkSigned(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, sig signature.Signature) (bool, error) {
	params := sqlc.MarkSignatureSessionSignedParams{
		ID:                 id,
		SignerName:         pgconv.StringToPgtype(sig.SignerName),
		SignerEmail:        pgconv.StringToPgtype(sig.SignerEmail.Value()),
		SignatureImagePath: pgconv.StringToPgtype(sig.ImagePath),
		SourceAddress:      pgconv.OptionalStringToPgtype(sig.SourceAddress),
		SignedAt:           pgconv.TimeToPgtype(sig.SignedAt),
	}

	rows, err := r.queries.MarkSignatureSessionSigned(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark signature session signed", err)
	}
	return rows == 1, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	rows, err := r.queries.RevokeSignatureSession(ctx, tx, sqlc.RevokeSignatureSessionParams{
		ID:        id,
		RevokedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to revoke signature session", err)
	}
	return rows == 1, nil
}
