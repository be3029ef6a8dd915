package request

import (
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/pkg/ptr"
	"dealer-contracts/internal/usecase/commands"

	"github.com/google/uuid"
)

type TradeInRequest struct {
	Brand        string `json:"brand" binding:"max=100"`
	Model        string `json:"model" binding:"max=100"`
	LicensePlate string `json:"license_plate" binding:"max=20"`
	Mileage      int64  `json:"mileage" binding:"gte=0"`
	TradeInPrice int64  `json:"trade_in_price" binding:"gte=0,lte=1000000000000"`
}

type AddressRequest struct {
	Street     string `json:"street" binding:"max=200"`
	PostalCode string `json:"postal_code" binding:"max=20"`
	City       string `json:"city" binding:"max=100"`
}

// ContractOptionsRequest leaves enum checks to the domain so that unknown
// values fail with the same message on every route.
type ContractOptionsRequest struct {
	ContractType         string          `json:"contract_type" binding:"required"`
	VehicleType          string          `json:"vehicle_type"`
	BtwType              string          `json:"btw_type"`
	BpmIncluded          *bool           `json:"bpm_included"`
	MaxDamageAmount      *int64          `json:"max_damage_amount" binding:"omitempty,lte=1000000000000"`
	DeliveryPackage      string          `json:"delivery_package"`
	WarrantyPackagePrice *int64          `json:"warranty_package_price" binding:"omitempty,lte=1000000000000"`
	PaymentTerms         string          `json:"payment_terms"`
	CustomDownPayment    *int64          `json:"custom_down_payment" binding:"omitempty,lte=1000000000000"`
	TradeInVehicle       *TradeInRequest `json:"trade_in_vehicle"`
	ContractAddress      *AddressRequest `json:"contract_address"`
	AdditionalClauses    string          `json:"additional_clauses" binding:"max=5000"`
	SpecialAgreements    string          `json:"special_agreements" binding:"max=5000"`
}

func (r *ContractOptionsRequest) ToDomain() contract.Options {
	opts := contract.Options{
		ContractType:         contract.ContractType(r.ContractType),
		VehicleType:          contract.VehicleType(r.VehicleType),
		BtwType:              contract.BtwType(r.BtwType),
		BpmIncluded:          ptr.Or(r.BpmIncluded, false),
		MaxDamageAmount:      ptr.Or(r.MaxDamageAmount, 0),
		DeliveryPackage:      contract.DeliveryPackage(r.DeliveryPackage),
		WarrantyPackagePrice: r.WarrantyPackagePrice,
		PaymentTerms:         contract.PaymentTerms(r.PaymentTerms),
		CustomDownPayment:    r.CustomDownPayment,
		AdditionalClauses:    r.AdditionalClauses,
		SpecialAgreements:    r.SpecialAgreements,
	}
	if t := r.TradeInVehicle; t != nil {
		opts.TradeInVehicle = &contract.TradeInVehicle{
			Brand:        t.Brand,
			Model:        t.Model,
			LicensePlate: t.LicensePlate,
			Mileage:      t.Mileage,
			TradeInPrice: t.TradeInPrice,
		}
	}
	if a := r.ContractAddress; a != nil {
		opts.ContractAddress = &contract.Address{
			Street:     a.Street,
			PostalCode: a.PostalCode,
			City:       a.City,
		}
	}
	return opts
}

type PricingRequest struct {
	VehicleID uuid.UUID              `json:"vehicle_id" binding:"required"`
	Options   ContractOptionsRequest `json:"options" binding:"required"`
}

type PreviewRequest struct {
	VehicleID            uuid.UUID              `json:"vehicle_id" binding:"required"`
	Options              ContractOptionsRequest `json:"options" binding:"required"`
	IncludeSignatureLink bool                   `json:"include_signature_link"`
}

type SaveContractRequest struct {
	Options       ContractOptionsRequest `json:"options" binding:"required"`
	SignatureLink string                 `json:"signature_link" binding:"omitempty,url,max=2000"`
}

func (r *SaveContractRequest) ToCommand(vehicleID uuid.UUID) commands.SaveContractRequest {
	return commands.SaveContractRequest{
		VehicleID:     vehicleID,
		Options:       r.Options.ToDomain(),
		SignatureLink: r.SignatureLink,
	}
}
