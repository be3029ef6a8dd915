package contract

type ContractType string

const (
	ContractTypeB2B ContractType = "b2b"
	ContractTypeB2C ContractType = "b2c"
)

func (t ContractType) String() string {
	return string(t)
}

func (t ContractType) IsValid() bool {
	switch t {
	case ContractTypeB2B, ContractTypeB2C:
		return true
	default:
		return false
	}
}

// VehicleType selects the VAT disclosure wording. The zero value means the
// regime is unknown and the renderer shows a placeholder.
type VehicleType string

const (
	VehicleTypeUnknown VehicleType = ""
	VehicleTypeBTW     VehicleType = "btw"
	VehicleTypeMarge   VehicleType = "marge"
)

func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTypeUnknown, VehicleTypeBTW, VehicleTypeMarge:
		return true
	default:
		return false
	}
}

type BtwType string

const (
	BtwTypeInclusive BtwType = "inclusive"
	BtwTypeExclusive BtwType = "exclusive"
)

func (t BtwType) IsValid() bool {
	switch t {
	case "", BtwTypeInclusive, BtwTypeExclusive:
		return true
	default:
		return false
	}
}

type PaymentTerms string

const (
	PaymentTermsDown5  PaymentTerms = "aanbetaling_5"
	PaymentTermsDown10 PaymentTerms = "aanbetaling_10"
	PaymentTermsManual PaymentTerms = "handmatig"
)

func (p PaymentTerms) IsValid() bool {
	switch p {
	case "", PaymentTermsDown5, PaymentTermsDown10, PaymentTermsManual:
		return true
	default:
		return false
	}
}

// DeliveryPackage identifies a B2C warranty package.
type DeliveryPackage string

const (
	PackageNone             DeliveryPackage = "geen"
	Package6MonthsAutocity  DeliveryPackage = "6_maanden_autocity"
	Package12MonthsAutocity DeliveryPackage = "12_maanden_autocity"
	Package24MonthsAutocity DeliveryPackage = "24_maanden_autocity"
	Package12MonthsBovag    DeliveryPackage = "12_maanden_bovag"
)

var packageLabels = map[DeliveryPackage]string{
	Package6MonthsAutocity:  "6 maanden Autocity garantie",
	Package12MonthsAutocity: "12 maanden Autocity garantie",
	Package24MonthsAutocity: "24 maanden Autocity garantie",
	Package12MonthsBovag:    "12 maanden BOVAG garantie",
}

func (p DeliveryPackage) Label() string {
	if l, ok := packageLabels[p]; ok {
		return l
	}
	return string(p)
}
