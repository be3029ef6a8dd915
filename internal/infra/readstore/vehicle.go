package readstore

import (
	"context"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/infra"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/internal/pkg/pgconv"
	"dealer-contracts/internal/usecase/shared"

	"github.com/google/uuid"
)

type VehicleReadQueries interface {
	GetVehicle(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error)
	GetContact(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Contacts, error)
}

// VehicleReadStore reads the inventory and CRM tables owned by the dealer
// platform. This service never writes them.
type VehicleReadStore struct {
	queries VehicleReadQueries
	db      sqlc.DBTX
}

func NewVehicleReadStore(queries VehicleReadQueries, db sqlc.DBTX) *VehicleReadStore {
	return &VehicleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VehicleReadStore) VehicleByID(ctx context.Context, id uuid.UUID) (*shared.VehicleRecord, error) {
	row, err := r.queries.GetVehicle(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get vehicle", err)
	}

	snapshot := contract.VehicleSnapshot{
		ID:           row.ID,
		VIN:          row.Vin,
		LicensePlate: row.LicensePlate,
		Brand:        row.Brand,
		Model:        row.Model,
		Color:        pgconv.StringFromPgtype(row.Color),
		SellingPrice: row.SellingPrice,
	}
	if row.Year.Valid {
		snapshot.Year = int(row.Year.Int32)
	}
	if row.Mileage.Valid {
		snapshot.Mileage = row.Mileage.Int64
	}

	return &shared.VehicleRecord{
		Snapshot:   snapshot,
		CustomerID: pgconv.UUIDPtrFromPgtype(row.CustomerID),
	}, nil
}

func (r *VehicleReadStore) ContactByID(ctx context.Context, id uuid.UUID) (*contract.Contact, error) {
	row, err := r.queries.GetContact(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("contact not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get contact", err)
	}

	return &contract.Contact{
		ID:    row.ID,
		Name:  row.Name,
		Email: pgconv.StringFromPgtype(row.Email),
		Address: contract.Address{
			Street:     pgconv.StringFromPgtype(row.Street),
			PostalCode: pgconv.StringFromPgtype(row.PostalCode),
			City:       pgconv.StringFromPgtype(row.City),
		},
	}, nil
}
