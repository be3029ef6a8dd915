package queries

import (
	"context"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionReader interface {
	FindByTokenHash(ctx context.Context, hash string) (*signature.Session, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*signature.Session, error)
}

// SigningView is what the public signing page shows.
type SigningView struct {
	Session  *signature.Session
	Pricing  contract.PricingBreakdown
	Contract *contract.GeneratedContract
}

type SessionListItem struct {
	ID           uuid.UUID
	VehicleID    uuid.UUID
	ContractType contract.ContractType
	Status       string
	CreatedAt    time.Time
	ExpiresAt    time.Time
	SignerName   string
	SignedAt     *time.Time
	RevokedAt    *time.Time
}

type SignatureQueries interface {
	ValidateSession(ctx context.Context, rawToken string) (*SigningView, error)
	ListSessions(ctx context.Context, vehicleID uuid.UUID) ([]*SessionListItem, error)
}

type signatureQueriesImpl struct {
	sessions SessionReader
	calc     contract.PriceCalculator
	company  contract.CompanyProfile
	clock    clock.Clock
}

func NewSignatureQueries(sessions SessionReader, calc contract.PriceCalculator, company contract.CompanyProfile, clk clock.Clock) SignatureQueries {
	return &signatureQueriesImpl{
		sessions: sessions,
		calc:     calc,
		company:  company,
		clock:    clk,
	}
}

// ValidateSession is read-only. The contract is rendered from the snapshot
// frozen at creation, dated at creation, so it matches what was mailed.
func (q *signatureQueriesImpl) ValidateSession(ctx context.Context, rawToken string) (*SigningView, error) {
	hash, err := signature.ParseToken(rawToken)
	if err != nil {
		return nil, shared.MarkAs(err, shared.ErrSessionNotFound, errs.ErrNotFound)
	}
	session, err := q.sessions.FindByTokenHash(ctx, hash)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrSessionNotFound)
	}
	if err := session.CheckSignable(q.clock.Now()); err != nil {
		return nil, shared.Classify(err)
	}

	pricing, err := q.calc.Compute(session.Vehicle(), session.Options())
	if err != nil {
		return nil, shared.Classify(err)
	}
	generated, err := contract.RenderContract(contract.RenderInput{
		Vehicle: session.Vehicle(),
		Options: session.Options(),
		Pricing: pricing,
		Company: q.company,
		Now:     session.CreatedAt(),
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	return &SigningView{
		Session:  session,
		Pricing:  pricing,
		Contract: generated,
	}, nil
}

func (q *signatureQueriesImpl) ListSessions(ctx context.Context, vehicleID uuid.UUID) ([]*SessionListItem, error) {
	sessions, err := q.sessions.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}

	now := q.clock.Now()
	items := make([]*SessionListItem, 0, len(sessions))
	for _, s := range sessions {
		item := &SessionListItem{
			ID:           s.ID(),
			VehicleID:    s.VehicleID(),
			ContractType: s.ContractType(),
			Status:       s.DisplayStatus(now),
			CreatedAt:    s.CreatedAt(),
			ExpiresAt:    s.ExpiresAt(),
			RevokedAt:    s.RevokedAt(),
		}
		if sig := s.Signature(); sig != nil {
			signedAt := sig.SignedAt
			item.SignerName = sig.SignerName
			item.SignedAt = &signedAt
		}
		items = append(items, item)
	}
	return items, nil
}
