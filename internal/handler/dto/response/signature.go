package response

import (
	"time"

	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/internal/usecase/queries"
)

type SessionResponse struct {
	ID           string `json:"id"`
	VehicleID    string `json:"vehicle_id"`
	ContractType string `json:"contract_type"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
	ExpiresAt    int64  `json:"expires_at"`
	// SignLink is only returned when the session is first created.
	SignLink string `json:"sign_link,omitempty"`
	Replayed bool   `json:"replayed,omitempty"`
}

func FromSession(s *signature.Session, now time.Time) *SessionResponse {
	return &SessionResponse{
		ID:           s.ID().String(),
		VehicleID:    s.VehicleID().String(),
		ContractType: s.ContractType().String(),
		Status:       s.DisplayStatus(now),
		CreatedAt:    s.CreatedAt().Unix(),
		ExpiresAt:    s.ExpiresAt().Unix(),
	}
}

func FromCreateSessionResult(r *commands.CreateSessionResult, now time.Time) *SessionResponse {
	res := FromSession(r.Session, now)
	res.SignLink = r.SignLink
	res.Replayed = r.Replayed
	return res
}

type SessionListItemResponse struct {
	ID           string `json:"id"`
	VehicleID    string `json:"vehicle_id"`
	ContractType string `json:"contract_type"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
	ExpiresAt    int64  `json:"expires_at"`
	SignerName   string `json:"signer_name,omitempty"`
	SignedAt     *int64 `json:"signed_at,omitempty"`
	RevokedAt    *int64 `json:"revoked_at,omitempty"`
}

func FromSessionList(items []*queries.SessionListItem) []*SessionListItemResponse {
	res := make([]*SessionListItemResponse, len(items))
	for i, it := range items {
		res[i] = &SessionListItemResponse{
			ID:           it.ID.String(),
			VehicleID:    it.VehicleID.String(),
			ContractType: it.ContractType.String(),
			Status:       it.Status,
			CreatedAt:    it.CreatedAt.Unix(),
			ExpiresAt:    it.ExpiresAt.Unix(),
			SignerName:   it.SignerName,
			SignedAt:     unixPtr(it.SignedAt),
			RevokedAt:    unixPtr(it.RevokedAt),
		}
	}
	return res
}

// SigningPageResponse feeds the public signing page.
type SigningPageResponse struct {
	Status       string                    `json:"status"`
	ContractType string                    `json:"contract_type"`
	ExpiresAt    int64                     `json:"expires_at"`
	Vehicle      VehicleResponse           `json:"vehicle"`
	Pricing      PricingResponse           `json:"pricing"`
	Contract     GeneratedContractResponse `json:"contract"`
}

func FromSigningView(v *queries.SigningView, now time.Time) *SigningPageResponse {
	return &SigningPageResponse{
		Status:       v.Session.DisplayStatus(now),
		ContractType: v.Session.ContractType().String(),
		ExpiresAt:    v.Session.ExpiresAt().Unix(),
		Vehicle:      FromVehicle(v.Session.Vehicle()),
		Pricing:      FromPricing(v.Pricing),
		Contract:     FromGeneratedContract(v.Contract),
	}
}

type SignResponse struct {
	SessionID  string `json:"session_id"`
	Status     string `json:"status"`
	SignedAt   int64  `json:"signed_at"`
	ContractID string `json:"contract_id,omitempty"`
	// Warning is set when the signature was recorded but the signed copy
	// could not be archived yet.
	Warning string `json:"warning,omitempty"`
}

const archiveWarning = "Signature recorded; the signed contract will be archived by staff"

func FromSignResult(r *commands.SignSessionResult) *SignResponse {
	res := &SignResponse{
		SessionID: r.Session.ID().String(),
		Status:    r.Session.Status().String(),
	}
	if sig := r.Session.Signature(); sig != nil {
		res.SignedAt = sig.SignedAt.Unix()
	}
	if r.Contract != nil {
		res.ContractID = r.Contract.ID().String()
	}
	if r.ArchiveErr != nil {
		res.Warning = archiveWarning
	}
	return res
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}
