package contract

import "github.com/google/uuid"

// Contact is the customer linked to a vehicle in the CRM.
type Contact struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	Address Address   `json:"address"`
}

// VehicleSnapshot is the read-only projection of an inventory vehicle used for
// contracting. Callers take a copy when a contract or session is created.
type VehicleSnapshot struct {
	ID           uuid.UUID `json:"id"`
	VIN          string    `json:"vin"`
	LicensePlate string    `json:"licensePlate"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Color        string    `json:"color,omitempty"`
	Year         int       `json:"year,omitempty"`
	Mileage      int64     `json:"mileage,omitempty"`
	SellingPrice int64     `json:"sellingPrice"`
	Customer     *Contact  `json:"customer,omitempty"`
}

// Title is brand and model joined for headings.
func (v VehicleSnapshot) Title() string {
	switch {
	case v.Brand == "":
		return v.Model
	case v.Model == "":
		return v.Brand
	default:
		return v.Brand + " " + v.Model
	}
}
