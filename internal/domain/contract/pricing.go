package contract

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var vatFactor = decimal.RequireFromString("1.21")

// PricingBreakdown holds whole euros. Every figure is rounded once, here.
type PricingBreakdown struct {
	BasePrice             int64 `json:"basePrice"`
	PriceExclVat          int64 `json:"priceExclVat"`
	VatAmount             int64 `json:"vatAmount"`
	DeliveryPackagePrice  int64 `json:"deliveryPackagePrice"`
	PackageResolved       bool  `json:"packageResolved"`
	TradeInPrice          int64 `json:"tradeInPrice"`
	DownPaymentAmount     int64 `json:"downPaymentAmount"`
	DownPaymentPercentage int64 `json:"downPaymentPercentage"`
	FinalPrice            int64 `json:"finalPrice"`
}

type PriceCalculator interface {
	Compute(vehicle VehicleSnapshot, opts Options) (PricingBreakdown, error)
}

type DefaultPriceCalculator struct {
	PackagePrices map[DeliveryPackage]int64
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		PackagePrices: map[DeliveryPackage]int64{
			PackageNone:             0,
			Package6MonthsAutocity:  395,
			Package12MonthsAutocity: 750,
			Package24MonthsAutocity: 1250,
			Package12MonthsBovag:    995,
		},
	}
}

// ComputePricing runs the default calculator.
func ComputePricing(vehicle VehicleSnapshot, opts Options) (PricingBreakdown, error) {
	return NewDefaultPriceCalculator().Compute(vehicle, opts)
}

func (pc *DefaultPriceCalculator) Compute(vehicle VehicleSnapshot, opts Options) (PricingBreakdown, error) {
	base := vehicle.SellingPrice
	if err := checkSellingPrice(base); err != nil {
		return PricingBreakdown{}, err
	}
	if err := opts.Validate(); err != nil {
		return PricingBreakdown{}, err
	}
	pkgPrice, resolved, err := pc.packagePrice(opts)
	if err != nil {
		return PricingBreakdown{}, err
	}

	var tradeIn int64
	if opts.HasTradeIn() {
		tradeIn = opts.TradeInVehicle.TradeInPrice
	}

	if opts.ContractType == ContractTypeB2B {
		excl := decimal.NewFromInt(base).Div(vatFactor).Round(0).IntPart()
		return PricingBreakdown{
			BasePrice:    base,
			PriceExclVat: excl,
			VatAmount:    base - excl,
			TradeInPrice: tradeIn,
			FinalPrice:   base,
		}, nil
	}

	amount, pct := downPayment(base, opts)
	return PricingBreakdown{
		BasePrice:             base,
		DeliveryPackagePrice:  pkgPrice,
		PackageResolved:       resolved,
		TradeInPrice:          tradeIn,
		DownPaymentAmount:     amount,
		DownPaymentPercentage: pct,
		FinalPrice:            base + pkgPrice - tradeIn,
	}, nil
}

func (pc *DefaultPriceCalculator) packagePrice(opts Options) (int64, bool, error) {
	var tablePrice int64
	if opts.DeliveryPackage != "" {
		p, ok := pc.PackagePrices[opts.DeliveryPackage]
		if !ok {
			return 0, false, fmt.Errorf("%w: %q", ErrUnknownDeliveryPackage, opts.DeliveryPackage)
		}
		tablePrice = p
	}
	if opts.WarrantyPackagePrice != nil {
		return *opts.WarrantyPackagePrice, *opts.WarrantyPackagePrice > 0 || hasPackage(opts.DeliveryPackage), nil
	}
	return tablePrice, hasPackage(opts.DeliveryPackage), nil
}

func hasPackage(p DeliveryPackage) bool {
	return p != "" && p != PackageNone
}

// downPayment is derived from the base price only, never from the final price.
func downPayment(base int64, opts Options) (amount, pct int64) {
	switch opts.PaymentTerms {
	case PaymentTermsDown5:
		return percentOf(base, 5), 5
	case PaymentTermsDown10:
		return percentOf(base, 10), 10
	case PaymentTermsManual:
		if opts.CustomDownPayment == nil {
			return 0, 0
		}
		amount = *opts.CustomDownPayment
		if base == 0 {
			return amount, 0
		}
		pct = decimal.NewFromInt(amount).Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(base)).Round(0).IntPart()
		return amount, pct
	default:
		return 0, 0
	}
}

func percentOf(base, pct int64) int64 {
	return decimal.NewFromInt(base).Mul(decimal.NewFromInt(pct)).
		Div(decimal.NewFromInt(100)).Round(0).IntPart()
}
