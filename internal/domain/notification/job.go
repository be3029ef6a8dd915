package notification

import "github.com/google/uuid"

const JobKindSignatureRequested = "signature_requested"

// SignatureRequestedPayload is queued for the mail sender when a signing
// session is created. Subject and body are already rendered.
type SignatureRequestedPayload struct {
	SessionID      uuid.UUID `json:"sessionId"`
	VehicleID      uuid.UUID `json:"vehicleId"`
	RecipientName  string    `json:"recipientName"`
	RecipientEmail string    `json:"recipientEmail"`
	TemplateKey    string    `json:"templateKey"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	SignLink       string    `json:"signLink"`
}
