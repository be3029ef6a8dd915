package queries

import (
	"context"

	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrArtifactUnavailable = errs.New("contract artifact could not be read")

type ContractReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*archive.Record, error)
	FindLatest(ctx context.Context, vehicleID uuid.UUID, contractType contract.ContractType) (*archive.Record, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*archive.Record, error)
}

type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}

type PricingView struct {
	Vehicle contract.VehicleSnapshot
	Pricing contract.PricingBreakdown
}

type PreviewView struct {
	Vehicle  contract.VehicleSnapshot
	Pricing  contract.PricingBreakdown
	Contract *contract.GeneratedContract
}

type ContractQueries interface {
	// GetLatest with an empty contract type matches any type.
	GetLatest(ctx context.Context, vehicleID uuid.UUID, contractType contract.ContractType) (*archive.Record, error)
	ListAll(ctx context.Context, vehicleID uuid.UUID) ([]*archive.Record, error)
	Download(ctx context.Context, id uuid.UUID) (*Artifact, error)
	Pricing(ctx context.Context, vehicleID uuid.UUID, opts contract.Options) (*PricingView, error)
	Preview(ctx context.Context, vehicleID uuid.UUID, opts contract.Options, withSignatureLink bool) (*PreviewView, error)
}

type contractQueriesImpl struct {
	contracts ContractReader
	vehicles  shared.VehicleLookup
	contacts  shared.ContactLookup
	blobs     shared.BlobStorage
	calc      contract.PriceCalculator
	company   contract.CompanyProfile
	clock     clock.Clock
}

func NewContractQueries(
	contracts ContractReader,
	vehicles shared.VehicleLookup,
	contacts shared.ContactLookup,
	blobs shared.BlobStorage,
	calc contract.PriceCalculator,
	company contract.CompanyProfile,
	clk clock.Clock,
) ContractQueries {
	return &contractQueriesImpl{
		contracts: contracts,
		vehicles:  vehicles,
		contacts:  contacts,
		blobs:     blobs,
		calc:      calc,
		company:   company,
		clock:     clk,
	}
}

func (q *contractQueriesImpl) GetLatest(ctx context.Context, vehicleID uuid.UUID, contractType contract.ContractType) (*archive.Record, error) {
	if contractType != "" && !contractType.IsValid() {
		return nil, errs.Mark(contract.ErrUnknownContractType, errs.ErrValidation)
	}
	rec, err := q.contracts.FindLatest(ctx, vehicleID, contractType)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrContractNotFound)
	}
	return rec, nil
}

func (q *contractQueriesImpl) ListAll(ctx context.Context, vehicleID uuid.UUID) ([]*archive.Record, error) {
	recs, err := q.contracts.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	return recs, nil
}

func (q *contractQueriesImpl) Download(ctx context.Context, id uuid.UUID) (*Artifact, error) {
	rec, err := q.contracts.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrContractNotFound)
	}
	data, err := q.blobs.Get(ctx, rec.ArtifactPath())
	if err != nil {
		return nil, shared.MarkAs(err, ErrArtifactUnavailable, errs.ErrStorage)
	}
	return &Artifact{
		FileName:    rec.FileName(),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (q *contractQueriesImpl) Pricing(ctx context.Context, vehicleID uuid.UUID, opts contract.Options) (*PricingView, error) {
	vehicle, err := shared.LoadVehicle(ctx, q.vehicles, q.contacts, vehicleID)
	if err != nil {
		return nil, err
	}
	pricing, err := q.calc.Compute(vehicle, opts)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return &PricingView{Vehicle: vehicle, Pricing: pricing}, nil
}

// Preview renders without materializing or archiving. With a signature link
// requested, the placeholder stays in place.
func (q *contractQueriesImpl) Preview(ctx context.Context, vehicleID uuid.UUID, opts contract.Options, withSignatureLink bool) (*PreviewView, error) {
	pv, err := q.Pricing(ctx, vehicleID, opts)
	if err != nil {
		return nil, err
	}
	generated, err := contract.RenderContract(contract.RenderInput{
		Vehicle:              pv.Vehicle,
		Options:              opts,
		Pricing:              pv.Pricing,
		Company:              q.company,
		Now:                  q.clock.Now(),
		IncludeSignatureLink: withSignatureLink,
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return &PreviewView{Vehicle: pv.Vehicle, Pricing: pv.Pricing, Contract: generated}, nil
}
