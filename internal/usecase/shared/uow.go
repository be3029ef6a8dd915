package shared

import (
	"context"
	"time"

	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/domain/signature"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Sessions() SessionRepository
	Contracts() ContractRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	VehicleLookup
	ContactLookup
	SessionByTokenHash(ctx context.Context, hash string) (*signature.Session, error)
	SessionByID(ctx context.Context, id uuid.UUID) (*signature.Session, error)
	ContractByID(ctx context.Context, id uuid.UUID) (*archive.Record, error)
	TemplateByKey(ctx context.Context, key string) (*notification.Template, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type SessionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *signature.Session) error
	// MarkSigned is a compare-and-set on the pending state. It reports false
	// when another writer got there first or the session is no longer open.
	MarkSigned(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, sig signature.Signature) (bool, error)
	Revoke(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error)
}

type ContractRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rec *archive.Record) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID, resultID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
