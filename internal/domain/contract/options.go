package contract

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNegativePrice          = errors.New("price cannot be negative")
	ErrUnknownContractType    = errors.New("unknown contract type")
	ErrUnknownVehicleType     = errors.New("unknown vehicle type")
	ErrUnknownBtwType         = errors.New("unknown btw type")
	ErrUnknownPaymentTerms    = errors.New("unknown payment terms")
	ErrUnknownDeliveryPackage = errors.New("unknown delivery package")
	ErrNegativeAmount         = errors.New("amount cannot be negative")
	ErrAmountTooLarge         = errors.New("amount exceeds the maximum")
)

// MaxAmount caps every euro figure so totals stay far inside int64.
const MaxAmount int64 = 1_000_000_000_000

// TradeInVehicle is the customer's car taken in as partial payment.
type TradeInVehicle struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"licensePlate"`
	Mileage      int64  `json:"mileage"`
	TradeInPrice int64  `json:"tradeInPrice"`
}

type Address struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.PostalCode) == "" &&
		strings.TrimSpace(a.City) == ""
}

func (a Address) String() string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(a.Street); s != "" {
		parts = append(parts, s)
	}
	city := strings.TrimSpace(strings.TrimSpace(a.PostalCode) + " " + strings.TrimSpace(a.City))
	if city != "" {
		parts = append(parts, city)
	}
	return strings.Join(parts, ", ")
}

// Options configure a single contract. They are frozen as JSON on sessions
// and archive records, so the tags are part of the stored format.
type Options struct {
	ContractType         ContractType    `json:"contractType"`
	VehicleType          VehicleType     `json:"vehicleType,omitempty"`
	BtwType              BtwType         `json:"btwType,omitempty"`
	BpmIncluded          bool            `json:"bpmIncluded,omitempty"`
	MaxDamageAmount      int64           `json:"maxDamageAmount,omitempty"`
	DeliveryPackage      DeliveryPackage `json:"deliveryPackage,omitempty"`
	WarrantyPackagePrice *int64          `json:"warrantyPackagePrice,omitempty"`
	PaymentTerms         PaymentTerms    `json:"paymentTerms,omitempty"`
	CustomDownPayment    *int64          `json:"customDownPayment,omitempty"`
	TradeInVehicle       *TradeInVehicle `json:"tradeInVehicle,omitempty"`
	ContractAddress      *Address        `json:"contractAddress,omitempty"`
	AdditionalClauses    string          `json:"additionalClauses,omitempty"`
	SpecialAgreements    string          `json:"specialAgreements,omitempty"`
}

// Validate rejects malformed input. Missing optional fields are never an error.
func (o Options) Validate() error {
	if !o.ContractType.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownContractType, o.ContractType)
	}
	if !o.VehicleType.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownVehicleType, o.VehicleType)
	}
	if !o.BtwType.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownBtwType, o.BtwType)
	}
	if !o.PaymentTerms.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownPaymentTerms, o.PaymentTerms)
	}
	amounts := []namedAmount{
		{"maxDamageAmount", &o.MaxDamageAmount},
		{"warrantyPackagePrice", o.WarrantyPackagePrice},
		{"customDownPayment", o.CustomDownPayment},
	}
	if o.TradeInVehicle != nil {
		amounts = append(amounts, namedAmount{"tradeInPrice", &o.TradeInVehicle.TradeInPrice})
	}
	for _, a := range amounts {
		if err := a.check(); err != nil {
			return err
		}
	}
	return nil
}

type namedAmount struct {
	name  string
	value *int64
}

func (a namedAmount) check() error {
	switch {
	case a.value == nil:
		return nil
	case *a.value < 0:
		return fmt.Errorf("%w: %s", ErrNegativeAmount, a.name)
	case *a.value > MaxAmount:
		return fmt.Errorf("%w: %s", ErrAmountTooLarge, a.name)
	}
	return nil
}

// checkSellingPrice guards the inventory price, which never passes through request binding.
func checkSellingPrice(price int64) error {
	switch {
	case price < 0:
		return ErrNegativePrice
	case price > MaxAmount:
		return fmt.Errorf("%w: sellingPrice", ErrAmountTooLarge)
	}
	return nil
}

func (o Options) HasTradeIn() bool {
	return o.TradeInVehicle != nil
}
