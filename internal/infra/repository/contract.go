package repository

import (
	"context"
	"encoding/json"

	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/infra"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ContractWriteQueries interface {
	CreateArchivedContract(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateArchivedContractParams) error
	DeleteArchivedContract(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ContractRepository struct {
	queries ContractWriteQueries
	db      sqlc.DBTX
}

func NewContractRepository(queries ContractWriteQueries, db sqlc.DBTX) *ContractRepository {
	return &ContractRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ContractRepository) Create(ctx context.Context, tx sqlc.DBTX, rec *archive.Record) error {
	opts, err := json.Marshal(rec.Options())
	if err != nil {
		return infra.WrapRepoErr("failed to encode contract options", err, infra.KindDBFailure)
	}
	vehicle, err := json.Marshal(rec.Vehicle())
	if err != nil {
		return infra.WrapRepoErr("failed to encode vehicle snapshot", err, infra.KindDBFailure)
	}

	params := sqlc.CreateArchivedContractParams{
		ID:              rec.ID(),
		VehicleID:       rec.VehicleID(),
		ArtifactPath:    rec.ArtifactPath(),
		ArtifactUrl:     rec.ArtifactURL(),
		FileName:        rec.FileName(),
		ContractNumber:  rec.ContractNumber(),
		ContractType:    rec.ContractType().String(),
		Options:         opts,
		VehicleSnapshot: vehicle,
		SessionID:       pgconv.UUIDPtrToPgtype(rec.SessionID()),
		CreatedAt:       pgconv.TimeToPgtype(rec.CreatedAt()),
	}

	if err := r.queries.CreateArchivedContract(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create archived contract", err)
	}
	return nil
}

func (r *ContractRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteArchivedContract(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete archived contract", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("archived contract not found", nil, infra.KindNotFound)
	}
	return nil
}
