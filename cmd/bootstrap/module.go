package bootstrap

import (
	"dealer-contracts/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything below the HTTP layer. The CLI reuses it.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	StorageModule,
	PDFModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	JWTModule,
	components.HandlerModule,
)
