package components

import (
	"dealer-contracts/internal/infra/readstore"
	"dealer-contracts/internal/infra/repository"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/internal/infra/uow"
	"dealer-contracts/internal/usecase/queries"
	"dealer-contracts/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Vehicle and contact mirrors
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VehicleReadQueries)),
		),
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(shared.VehicleLookup)),
			fx.As(new(shared.ContactLookup)),
		),
		// Signature session
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SessionReadQueries)),
		),
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(queries.SessionReader)),
		),
		// Contract archive
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ContractReadQueries)),
		),
		fx.Annotate(
			readstore.NewContractReadStore,
			fx.As(new(queries.ContractReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Email template
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.TemplateWriteQueries)),
		),
		fx.Annotate(
			repository.NewTemplateStore,
			fx.As(new(shared.TemplateStore)),
		),
		// Idempotency housekeeping
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.IdempotencyWriteQueries)),
		),
		repository.NewIdempotencyRepository,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
