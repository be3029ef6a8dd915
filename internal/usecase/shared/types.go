package shared

import (
	"time"

	"dealer-contracts/internal/domain/contract"

	"github.com/google/uuid"
)

// VehicleRecord is the inventory row. CustomerID still has to be resolved
// through the contact lookup.
type VehicleRecord struct {
	Snapshot   contract.VehicleSnapshot
	CustomerID *uuid.UUID
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Status      string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)
