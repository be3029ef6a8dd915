package response

import (
	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/usecase/queries"
)

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type VehicleResponse struct {
	ID           string            `json:"id"`
	VIN          string            `json:"vin"`
	LicensePlate string            `json:"license_plate"`
	Brand        string            `json:"brand"`
	Model        string            `json:"model"`
	Year         int               `json:"year,omitempty"`
	Mileage      int64             `json:"mileage,omitempty"`
	SellingPrice int64             `json:"selling_price"`
	Customer     *CustomerResponse `json:"customer,omitempty"`
}

func FromVehicle(v contract.VehicleSnapshot) VehicleResponse {
	res := VehicleResponse{
		ID:           v.ID.String(),
		VIN:          v.VIN,
		LicensePlate: v.LicensePlate,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		Mileage:      v.Mileage,
		SellingPrice: v.SellingPrice,
	}
	if v.Customer != nil {
		res.Customer = &CustomerResponse{
			ID:    v.Customer.ID.String(),
			Name:  v.Customer.Name,
			Email: v.Customer.Email,
		}
	}
	return res
}

type PricingResponse struct {
	BasePrice             int64 `json:"base_price"`
	PriceExclVat          int64 `json:"price_excl_vat"`
	VatAmount             int64 `json:"vat_amount"`
	DeliveryPackagePrice  int64 `json:"delivery_package_price"`
	PackageResolved       bool  `json:"package_resolved"`
	TradeInPrice          int64 `json:"trade_in_price"`
	DownPaymentAmount     int64 `json:"down_payment_amount"`
	DownPaymentPercentage int64 `json:"down_payment_percentage"`
	FinalPrice            int64 `json:"final_price"`
}

func FromPricing(p contract.PricingBreakdown) PricingResponse {
	return PricingResponse{
		BasePrice:             p.BasePrice,
		PriceExclVat:          p.PriceExclVat,
		VatAmount:             p.VatAmount,
		DeliveryPackagePrice:  p.DeliveryPackagePrice,
		PackageResolved:       p.PackageResolved,
		TradeInPrice:          p.TradeInPrice,
		DownPaymentAmount:     p.DownPaymentAmount,
		DownPaymentPercentage: p.DownPaymentPercentage,
		FinalPrice:            p.FinalPrice,
	}
}

type PricingViewResponse struct {
	Vehicle VehicleResponse `json:"vehicle"`
	Pricing PricingResponse `json:"pricing"`
}

func FromPricingView(v *queries.PricingView) *PricingViewResponse {
	return &PricingViewResponse{
		Vehicle: FromVehicle(v.Vehicle),
		Pricing: FromPricing(v.Pricing),
	}
}

type GeneratedContractResponse struct {
	ContractNumber string `json:"contract_number"`
	FileName       string `json:"file_name"`
	Text           string `json:"text"`
	HTML           string `json:"html"`
}

func FromGeneratedContract(g *contract.GeneratedContract) GeneratedContractResponse {
	return GeneratedContractResponse{
		ContractNumber: g.Number,
		FileName:       g.FileName,
		Text:           g.Text,
		HTML:           g.HTML,
	}
}

type PreviewResponse struct {
	Vehicle  VehicleResponse           `json:"vehicle"`
	Pricing  PricingResponse           `json:"pricing"`
	Contract GeneratedContractResponse `json:"contract"`
}

func FromPreviewView(v *queries.PreviewView) *PreviewResponse {
	return &PreviewResponse{
		Vehicle:  FromVehicle(v.Vehicle),
		Pricing:  FromPricing(v.Pricing),
		Contract: FromGeneratedContract(v.Contract),
	}
}

type ContractRecordResponse struct {
	ID             string  `json:"id"`
	VehicleID      string  `json:"vehicle_id"`
	ContractNumber string  `json:"contract_number"`
	ContractType   string  `json:"contract_type"`
	FileName       string  `json:"file_name"`
	ArtifactURL    string  `json:"artifact_url"`
	SessionID      *string `json:"session_id,omitempty"`
	CreatedAt      int64   `json:"created_at"`
}

func FromContractRecord(r *archive.Record) *ContractRecordResponse {
	res := &ContractRecordResponse{
		ID:             r.ID().String(),
		VehicleID:      r.VehicleID().String(),
		ContractNumber: r.ContractNumber(),
		ContractType:   r.ContractType().String(),
		FileName:       r.FileName(),
		ArtifactURL:    r.ArtifactURL(),
		CreatedAt:      r.CreatedAt().Unix(),
	}
	if id := r.SessionID(); id != nil {
		s := id.String()
		res.SessionID = &s
	}
	return res
}

func FromContractRecords(records []*archive.Record) []*ContractRecordResponse {
	res := make([]*ContractRecordResponse, len(records))
	for i, r := range records {
		res[i] = FromContractRecord(r)
	}
	return res
}
