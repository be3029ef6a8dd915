package bootstrap

import (
	"context"

	"dealer-contracts/internal/infra/pdf"
	"dealer-contracts/internal/infra/storage"
	"dealer-contracts/internal/pkg/config"
	"dealer-contracts/internal/usecase/shared"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewBlobStorage,
	),
)

var PDFModule = fx.Module("pdf",
	fx.Provide(
		fx.Annotate(
			NewMaterializer,
			fx.As(new(shared.Materializer)),
		),
	),
)

func NewBlobStorage(lc fx.Lifecycle, cfg config.Config) (shared.BlobStorage, error) {
	blobs, cleanup, err := storage.New(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return blobs, nil
}

func NewMaterializer(cfg config.Config) *pdf.Materializer {
	return pdf.NewMaterializer(cfg.PDF)
}
