package signature

import (
	"errors"
	"strings"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"

	"github.com/google/uuid"
)

var (
	ErrSessionExpired         = errors.New("signing session has expired")
	ErrSessionAlreadySigned   = errors.New("signing session is already signed")
	ErrSessionRevoked         = errors.New("signing session was revoked")
	ErrSignerNameRequired     = errors.New("signer name is required")
	ErrSignatureImageRequired = errors.New("signature image is required")
	ErrContractTypeMismatch   = errors.New("contract type does not match options")
	ErrInconsistentSession    = errors.New("inconsistent signing session record")
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSigned  Status = "signed"
	StatusRevoked Status = "revoked"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSigned, StatusRevoked:
		return true
	default:
		return false
	}
}

// Signature is the audit record of a completed session.
type Signature struct {
	SignerName    string
	SignerEmail   notification.Email
	ImagePath     string
	SourceAddress string
	SignedAt      time.Time
}

type SignerInput struct {
	Name          string
	Email         string
	ImagePath     string
	SourceAddress string
}

func NewSignature(in SignerInput, signedAt time.Time) (Signature, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Signature{}, ErrSignerNameRequired
	}
	email, err := notification.NewEmail(in.Email)
	if err != nil {
		return Signature{}, err
	}
	if in.ImagePath == "" {
		return Signature{}, ErrSignatureImageRequired
	}
	return Signature{
		SignerName:    name,
		SignerEmail:   email,
		ImagePath:     in.ImagePath,
		SourceAddress: in.SourceAddress,
		SignedAt:      signedAt,
	}, nil
}

// Session is one signing request. The status field is the single source of
// truth; the signature payload exists exactly when the status is signed.
type Session struct {
	id           uuid.UUID
	tokenHash    string
	vehicleID    uuid.UUID
	contractType contract.ContractType
	options      contract.Options
	vehicle      contract.VehicleSnapshot
	createdBy    uuid.UUID
	createdAt    time.Time
	expiresAt    time.Time
	status       Status
	signature    *Signature
	revokedAt    *time.Time
}

func NewSession(
	now time.Time,
	validity time.Duration,
	vehicle contract.VehicleSnapshot,
	contractType contract.ContractType,
	opts contract.Options,
	createdBy uuid.UUID,
) (*Session, Token, error) {
	if opts.ContractType == "" {
		opts.ContractType = contractType
	}
	if !contractType.IsValid() {
		return nil, Token{}, contract.ErrUnknownContractType
	}
	if opts.ContractType != contractType {
		return nil, Token{}, ErrContractTypeMismatch
	}
	if err := opts.Validate(); err != nil {
		return nil, Token{}, err
	}

	token, err := IssueToken()
	if err != nil {
		return nil, Token{}, err
	}

	return &Session{
		id:           uuid.New(),
		tokenHash:    token.Hash,
		vehicleID:    vehicle.ID,
		contractType: contractType,
		options:      opts,
		vehicle:      vehicle,
		createdBy:    createdBy,
		createdAt:    now,
		expiresAt:    ComputeExpiry(now, validity),
		status:       StatusPending,
	}, token, nil
}

func ReconstructSession(
	id uuid.UUID,
	tokenHash string,
	vehicleID uuid.UUID,
	contractType contract.ContractType,
	opts contract.Options,
	vehicle contract.VehicleSnapshot,
	createdBy uuid.UUID,
	createdAt, expiresAt time.Time,
	status Status,
	sig *Signature,
	revokedAt *time.Time,
) (*Session, error) {
	if !status.IsValid() {
		return nil, ErrInconsistentSession
	}
	if (status == StatusSigned) != (sig != nil) {
		return nil, ErrInconsistentSession
	}
	if (status == StatusRevoked) != (revokedAt != nil) {
		return nil, ErrInconsistentSession
	}
	if sig != nil && (sig.SignerName == "" || sig.SignerEmail.IsZero() || sig.ImagePath == "" || sig.SignedAt.IsZero()) {
		return nil, ErrInconsistentSession
	}
	return &Session{
		id:           id,
		tokenHash:    tokenHash,
		vehicleID:    vehicleID,
		contractType: contractType,
		options:      opts,
		vehicle:      vehicle,
		createdBy:    createdBy,
		createdAt:    createdAt,
		expiresAt:    expiresAt,
		status:       status,
		signature:    sig,
		revokedAt:    revokedAt,
	}, nil
}

// IsExpired is evaluated lazily; a session is expired from expiresAt on.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

// CheckSignable returns nil when the session can still be signed at now.
func (s *Session) CheckSignable(now time.Time) error {
	switch s.status {
	case StatusSigned:
		return ErrSessionAlreadySigned
	case StatusRevoked:
		return ErrSessionRevoked
	}
	if s.IsExpired(now) {
		return ErrSessionExpired
	}
	return nil
}

// Sign completes the session in memory. Persisting it must still be a
// conditional write against the pending state.
func (s *Session) Sign(now time.Time, in SignerInput) error {
	if err := s.CheckSignable(now); err != nil {
		return err
	}
	sig, err := NewSignature(in, now)
	if err != nil {
		return err
	}
	s.status = StatusSigned
	s.signature = &sig
	return nil
}

func (s *Session) Revoke(now time.Time) error {
	if err := s.CheckSignable(now); err != nil {
		return err
	}
	s.status = StatusRevoked
	s.revokedAt = &now
	return nil
}

func (s *Session) ID() uuid.UUID                       { return s.id }
func (s *Session) TokenHash() string                   { return s.tokenHash }
func (s *Session) VehicleID() uuid.UUID                { return s.vehicleID }
func (s *Session) ContractType() contract.ContractType { return s.contractType }
func (s *Session) Options() contract.Options           { return s.options }
func (s *Session) Vehicle() contract.VehicleSnapshot   { return s.vehicle }
func (s *Session) CreatedBy() uuid.UUID                { return s.createdBy }
func (s *Session) CreatedAt() time.Time                { return s.createdAt }
func (s *Session) ExpiresAt() time.Time                { return s.expiresAt }
func (s *Session) Status() Status                      { return s.status }
func (s *Session) Signature() *Signature               { return s.signature }
func (s *Session) RevokedAt() *time.Time               { return s.revokedAt }

// DisplayStatus adds the derived expired state for listings.
func (s *Session) DisplayStatus(now time.Time) string {
	if s.status == StatusPending && s.IsExpired(now) {
		return "expired"
	}
	return s.status.String()
}
