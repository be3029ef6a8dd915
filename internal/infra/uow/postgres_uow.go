package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/infra/readstore"
	"dealer-contracts/internal/infra/repository"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	sessionRepo      shared.SessionRepository
	contractRepo     shared.ContractRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Sessions() shared.SessionRepository {
	if t.sessionRepo == nil {
		t.sessionRepo = repository.NewSessionRepository(t.uow.q, t.dbtx)
	}
	return t.sessionRepo
}

func (t *pgTx) Contracts() shared.ContractRepository {
	if t.contractRepo == nil {
		t.contractRepo = repository.NewContractRepository(t.uow.q, t.dbtx)
	}
	return t.contractRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	vehicleStore     *readstore.VehicleReadStore
	sessionStore     *readstore.SessionReadStore
	contractStore    *readstore.ContractReadStore
	templateStore    *readstore.TemplateReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) vehicles() *readstore.VehicleReadStore {
	if r.vehicleStore == nil {
		r.vehicleStore = readstore.NewVehicleReadStore(r.uow.q, r.dbtx)
	}
	return r.vehicleStore
}

func (r *commandReads) sessions() *readstore.SessionReadStore {
	if r.sessionStore == nil {
		r.sessionStore = readstore.NewSessionReadStore(r.uow.q, r.dbtx)
	}
	return r.sessionStore
}

func (r *commandReads) VehicleByID(ctx context.Context, id uuid.UUID) (*shared.VehicleRecord, error) {
	return r.vehicles().VehicleByID(ctx, id)
}

func (r *commandReads) ContactByID(ctx context.Context, id uuid.UUID) (*contract.Contact, error) {
	return r.vehicles().ContactByID(ctx, id)
}

func (r *commandReads) SessionByTokenHash(ctx context.Context, hash string) (*signature.Session, error) {
	return r.sessions().FindByTokenHash(ctx, hash)
}

func (r *commandReads) SessionByID(ctx context.Context, id uuid.UUID) (*signature.Session, error) {
	return r.sessions().FindByID(ctx, id)
}

func (r *commandReads) ContractByID(ctx context.Context, id uuid.UUID) (*archive.Record, error) {
	if r.contractStore == nil {
		r.contractStore = readstore.NewContractReadStore(r.uow.q, r.dbtx)
	}
	return r.contractStore.FindByID(ctx, id)
}

func (r *commandReads) TemplateByKey(ctx context.Context, key string) (*notification.Template, error) {
	if r.templateStore == nil {
		r.templateStore = readstore.NewTemplateReadStore(r.uow.q, r.dbtx)
	}
	return r.templateStore.FindByKey(ctx, key)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}
	return r.idempotencyStore.Get(ctx, r.dbtx, key, userID)
}
