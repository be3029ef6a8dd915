//go:build unit || e2e

package builder

import (
	"time"

	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/domain/contract"
	reqdto "dealer-contracts/internal/handler/dto/request"
	"dealer-contracts/internal/pkg/ptr"

	"github.com/google/uuid"
)

type ContractBuilder struct {
	Vehicle contract.VehicleSnapshot
	Options contract.Options
	Company contract.CompanyProfile
	Now     time.Time
}

func NewContractBuilder() *ContractBuilder {
	return &ContractBuilder{
		Vehicle: contract.VehicleSnapshot{
			ID:           uuid.New(),
			VIN:          "WVWZZZ1KZAW000001",
			LicensePlate: "XX-123-Y",
			Brand:        "Volkswagen",
			Model:        "Golf",
			Color:        "Grijs",
			Year:         2019,
			Mileage:      84500,
			SellingPrice: 20000,
			Customer: &contract.Contact{
				ID:    uuid.New(),
				Name:  "Jan de Vries",
				Email: "jan@example.nl",
				Address: contract.Address{
					Street:     "Dorpsstraat 1",
					PostalCode: "3511 AA",
					City:       "Utrecht",
				},
			},
		},
		Options: contract.Options{
			ContractType: contract.ContractTypeB2C,
			VehicleType:  contract.VehicleTypeMarge,
		},
		Company: contract.CompanyProfile{
			TradeName: "Autocity",
			Address:   contract.Address{Street: "Industrieweg 12", PostalCode: "1234 AB", City: "Utrecht"},
			VATID:     "NL001234567B01",
			IBAN:      "NL91ABNA0417164300",
			KvKNumber: "12345678",
		},
		Now: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func (b *ContractBuilder) With(mutate func(*ContractBuilder)) *ContractBuilder {
	mutate(b)
	return b
}

func (b *ContractBuilder) AsB2B(btw contract.BtwType) *ContractBuilder {
	b.Options.ContractType = contract.ContractTypeB2B
	b.Options.VehicleType = contract.VehicleTypeBTW
	b.Options.BtwType = btw
	return b
}

func (b *ContractBuilder) WithPrice(price int64) *ContractBuilder {
	b.Vehicle.SellingPrice = price
	return b
}

func (b *ContractBuilder) WithPackage(p contract.DeliveryPackage) *ContractBuilder {
	b.Options.DeliveryPackage = p
	return b
}

func (b *ContractBuilder) WithPackagePrice(price int64) *ContractBuilder {
	b.Options.WarrantyPackagePrice = ptr.Of(price)
	return b
}

func (b *ContractBuilder) WithTradeIn(price int64) *ContractBuilder {
	b.Options.TradeInVehicle = &contract.TradeInVehicle{
		Brand:        "Opel",
		Model:        "Corsa",
		LicensePlate: "AB-12-CD",
		Mileage:      150000,
		TradeInPrice: price,
	}
	return b
}

func (b *ContractBuilder) WithPaymentTerms(terms contract.PaymentTerms, custom *int64) *ContractBuilder {
	b.Options.PaymentTerms = terms
	b.Options.CustomDownPayment = custom
	return b
}

func (b *ContractBuilder) WithoutCustomer() *ContractBuilder {
	b.Vehicle.Customer = nil
	return b
}

func (b *ContractBuilder) BuildPricing() (contract.PricingBreakdown, error) {
	return contract.ComputePricing(b.Vehicle, b.Options)
}

func (b *ContractBuilder) BuildRenderInput() (contract.RenderInput, error) {
	pricing, err := b.BuildPricing()
	if err != nil {
		return contract.RenderInput{}, err
	}
	return contract.RenderInput{
		Vehicle: b.Vehicle,
		Options: b.Options,
		Pricing: pricing,
		Company: b.Company,
		Now:     b.Now,
	}, nil
}

func (b *ContractBuilder) BuildContract() (*contract.GeneratedContract, error) {
	in, err := b.BuildRenderInput()
	if err != nil {
		return nil, err
	}
	return contract.RenderContract(in)
}

func (b *ContractBuilder) BuildRecord(now time.Time, sessionID *uuid.UUID) (*archive.Record, error) {
	generated, err := b.BuildContract()
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	path := archive.ArtifactPath(b.Vehicle.ID, id, generated.FileName)
	return archive.NewRecord(archive.NewRecordParams{
		ID:             id,
		Vehicle:        b.Vehicle,
		ContractType:   b.Options.ContractType,
		Options:        b.Options,
		ArtifactPath:   path,
		ArtifactURL:    "mem://" + path,
		FileName:       generated.FileName,
		ContractNumber: generated.Number,
		SessionID:      sessionID,
		Now:            now,
	})
}

func (b *ContractBuilder) BuildOptionsRequestDTO() reqdto.ContractOptionsRequest {
	o := b.Options
	req := reqdto.ContractOptionsRequest{
		ContractType:         o.ContractType.String(),
		VehicleType:          string(o.VehicleType),
		BtwType:              string(o.BtwType),
		DeliveryPackage:      string(o.DeliveryPackage),
		WarrantyPackagePrice: o.WarrantyPackagePrice,
		PaymentTerms:         string(o.PaymentTerms),
		CustomDownPayment:    o.CustomDownPayment,
		AdditionalClauses:    o.AdditionalClauses,
		SpecialAgreements:    o.SpecialAgreements,
	}
	if t := o.TradeInVehicle; t != nil {
		req.TradeInVehicle = &reqdto.TradeInRequest{
			Brand:        t.Brand,
			Model:        t.Model,
			LicensePlate: t.LicensePlate,
			Mileage:      t.Mileage,
			TradeInPrice: t.TradeInPrice,
		}
	}
	return req
}

func (b *ContractBuilder) BuildPricingRequestDTO() reqdto.PricingRequest {
	return reqdto.PricingRequest{
		VehicleID: b.Vehicle.ID,
		Options:   b.BuildOptionsRequestDTO(),
	}
}

func (b *ContractBuilder) BuildSaveRequestDTO() reqdto.SaveContractRequest {
	return reqdto.SaveContractRequest{
		Options: b.BuildOptionsRequestDTO(),
	}
}
