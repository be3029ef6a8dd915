package components

import (
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/config"
	"dealer-contracts/internal/usecase"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		contract.NewDefaultPriceCalculator,
		fx.As(new(contract.PriceCalculator)),
	),
	NewCompanyProfile,
	NewSignatureSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewContractUseCase,
		commands.NewSignatureUseCase,
		commands.NewEmailTemplateUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewContractQueries,
		queries.NewSignatureQueries,
		queries.NewEmailTemplateQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCompanyProfile(cfg config.Config) contract.CompanyProfile {
	c := cfg.Company
	return contract.CompanyProfile{
		TradeName: c.TradeName,
		Address: contract.Address{
			Street:     c.Street,
			PostalCode: c.PostalCode,
			City:       c.City,
		},
		VATID:     c.VATID,
		IBAN:      c.IBAN,
		KvKNumber: c.KvKNumber,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

func NewSignatureSettings(cfg config.Config) commands.SignatureSettings {
	return commands.SignatureSettings{
		Validity:      cfg.Signature.Validity,
		MaxImageBytes: cfg.Signature.MaxImageBytes,
		PublicBaseURL: cfg.Server.PublicBaseURL,
	}
}
