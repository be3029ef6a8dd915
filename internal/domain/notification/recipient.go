package notification

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrRecipientRequired = errors.New("recipient name and email are required")

// RecipientResolution says where the recipient of an outgoing mail comes
// from. It is either ByVehicle or Explicit, chosen by the caller.
type RecipientResolution interface {
	isRecipientResolution()
}

// ByVehicle resolves the customer linked to the vehicle.
type ByVehicle struct {
	VehicleID uuid.UUID
}

// Explicit carries a recipient typed in by staff.
type Explicit struct {
	Name  string
	Email Email
}

func (ByVehicle) isRecipientResolution() {}
func (Explicit) isRecipientResolution()  {}

func NewExplicit(name, email string) (Explicit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Explicit{}, ErrRecipientRequired
	}
	e, err := NewEmail(email)
	if err != nil {
		return Explicit{}, err
	}
	return Explicit{Name: name, Email: e}, nil
}

type Recipient struct {
	Name  string
	Email Email
}

func NewRecipient(name, email string) (Recipient, error) {
	ex, err := NewExplicit(name, email)
	if err != nil {
		return Recipient{}, err
	}
	return Recipient(ex), nil
}
