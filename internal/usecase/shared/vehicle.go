package shared

import (
	"context"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/infra"

	"github.com/google/uuid"
)

// LoadVehicle returns the vehicle snapshot with its linked customer. A
// dangling customer reference leaves Customer nil so the renderer prints
// placeholders.
func LoadVehicle(ctx context.Context, vehicles VehicleLookup, contacts ContactLookup, id uuid.UUID) (contract.VehicleSnapshot, error) {
	rec, err := vehicles.VehicleByID(ctx, id)
	if err != nil {
		return contract.VehicleSnapshot{}, NotFoundOr(err, ErrVehicleNotFound)
	}

	snapshot := rec.Snapshot
	if rec.CustomerID != nil {
		c, err := contacts.ContactByID(ctx, *rec.CustomerID)
		switch {
		case err == nil:
			snapshot.Customer = c
		case infra.IsKind(err, infra.KindNotFound):
		default:
			return contract.VehicleSnapshot{}, NotFoundOr(err, ErrVehicleNotFound)
		}
	}
	return snapshot, nil
}
