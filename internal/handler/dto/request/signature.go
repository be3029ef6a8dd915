package request

import (
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecipientRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email"`
}

// CreateSessionRequest mails the vehicle's customer unless Recipient is set.
type CreateSessionRequest struct {
	ContractType string                 `json:"contract_type" binding:"required"`
	Options      ContractOptionsRequest `json:"options" binding:"required"`
	Recipient    *RecipientRequest      `json:"recipient"`
}

func (r *CreateSessionRequest) ToCommand(vehicleID uuid.UUID) (commands.CreateSessionRequest, error) {
	var recipient notification.RecipientResolution = notification.ByVehicle{VehicleID: vehicleID}
	if r.Recipient != nil {
		explicit, err := notification.NewExplicit(r.Recipient.Name, r.Recipient.Email)
		if err != nil {
			return commands.CreateSessionRequest{}, err
		}
		recipient = explicit
	}
	return commands.CreateSessionRequest{
		VehicleID:    vehicleID,
		ContractType: contract.ContractType(r.ContractType),
		Options:      r.Options.ToDomain(),
		Recipient:    recipient,
	}, nil
}

type SignRequest struct {
	SignerName  string `json:"signer_name" binding:"required,max=200"`
	SignerEmail string `json:"signer_email" binding:"required,email"`
	// data:image/png;base64,... or bare base64
	SignatureImage string `json:"signature_image" binding:"required"`
}

func (r *SignRequest) ToCommand(sourceAddress string) commands.SignSessionRequest {
	return commands.SignSessionRequest{
		SignerName:     r.SignerName,
		SignerEmail:    r.SignerEmail,
		SignatureImage: r.SignatureImage,
		SourceAddress:  sourceAddress,
	}
}
