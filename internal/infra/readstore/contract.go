package readstore

import (
	"context"
	"encoding/json"

	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/infra"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ContractReadQueries interface {
	GetArchivedContract(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ContractArchive, error)
	GetLatestArchivedContract(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLatestArchivedContractParams) (sqlc.ContractArchive, error)
	ListArchivedContractsByVehicle(ctx context.Context, db sqlc.DBTX, vehicleID uuid.UUID) ([]sqlc.ContractArchive, error)
}

type ContractReadStore struct {
	queries ContractReadQueries
	db      sqlc.DBTX
}

func NewContractReadStore(queries ContractReadQueries, db sqlc.DBTX) *ContractReadStore {
	return &ContractReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ContractReadStore) FindByID(ctx context.Context, id uuid.UUID) (*archive.Record, error) {
	row, err := r.queries.GetArchivedContract(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("archived contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get archived contract", err)
	}
	return toRecord(row)
}

// FindLatest returns the newest record for the vehicle. An empty contract
// type matches both kinds.
func (r *ContractReadStore) FindLatest(ctx context.Context, vehicleID uuid.UUID, contractType contract.ContractType) (*archive.Record, error) {
	row, err := r.queries.GetLatestArchivedContract(ctx, r.db, sqlc.GetLatestArchivedContractParams{
		VehicleID:    vehicleID,
		ContractType: contractType.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no archived contract for vehicle", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get latest archived contract", err)
	}
	return toRecord(row)
}

func (r *ContractReadStore) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*archive.Record, error) {
	rows, err := r.queries.ListArchivedContractsByVehicle(ctx, r.db, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list archived contracts", err)
	}
	out := make([]*archive.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := toRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func toRecord(row sqlc.ContractArchive) (*archive.Record, error) {
	var opts contract.Options
	if err := json.Unmarshal(row.Options, &opts); err != nil {
		return nil, infra.WrapRepoErr("failed to decode contract options", err, infra.KindDBFailure)
	}
	var vehicle archive.VehicleSnapshot
	if err := json.Unmarshal(row.VehicleSnapshot, &vehicle); err != nil {
		return nil, infra.WrapRepoErr("failed to decode contract vehicle", err, infra.KindDBFailure)
	}

	return archive.ReconstructRecord(
		row.ID,
		row.VehicleID,
		row.ArtifactPath,
		row.ArtifactUrl,
		row.FileName,
		row.ContractNumber,
		contract.ContractType(row.ContractType),
		opts,
		vehicle,
		pgconv.UUIDPtrFromPgtype(row.SessionID),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
