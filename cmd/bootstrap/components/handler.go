package components

import (
	"dealer-contracts/internal/handler"
	"dealer-contracts/internal/handler/api"
	"dealer-contracts/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(pool *pgxpool.Pool) api.Pinger { return pool },
		api.NewHealthHandler,
		api.NewContractHandler,
		api.NewSignatureHandler,
		api.NewSigningHandler,
		api.NewEmailTemplateHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
