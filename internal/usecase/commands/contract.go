package commands

import (
	"context"
	"log/slog"
	"time"

	"dealer-contracts/internal/domain/archive"
	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPartialDelete     = errs.New("contract metadata removed but artifact removal failed")
	ErrArtifactUpload    = errs.New("failed to store contract artifact")
	ErrArchiveMetadata   = errs.New("failed to store contract metadata")
	ErrMaterializeFailed = errs.New("failed to materialize contract")
)

const pdfContentType = "application/pdf"

type SaveContractRequest struct {
	VehicleID uuid.UUID
	Options   contract.Options
	// Vehicle, when set, is used instead of a fresh inventory lookup. Signed
	// copies pass the snapshot frozen into the session.
	Vehicle       *contract.VehicleSnapshot
	SignatureLink string
	Signature     *contract.SignatureStamp
	SessionID     *uuid.UUID
	// GeneratedAt dates the document; zero means now.
	GeneratedAt time.Time
}

type ContractCommands interface {
	Save(ctx context.Context, req SaveContractRequest) (*archive.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contractUseCaseImpl struct {
	uow          shared.UnitOfWork
	blobs        shared.BlobStorage
	materializer shared.Materializer
	calc         contract.PriceCalculator
	company      contract.CompanyProfile
	clock        clock.Clock
}

func NewContractUseCase(
	uow shared.UnitOfWork,
	blobs shared.BlobStorage,
	materializer shared.Materializer,
	calc contract.PriceCalculator,
	company contract.CompanyProfile,
	clk clock.Clock,
) ContractCommands {
	return &contractUseCaseImpl{
		uow:          uow,
		blobs:        blobs,
		materializer: materializer,
		calc:         calc,
		company:      company,
		clock:        clk,
	}
}

// Save renders, materializes and archives a contract. The blob is written
// before the metadata row; when the row cannot be written the blob is removed
// again so no orphan stays behind.
func (uc *contractUseCaseImpl) Save(ctx context.Context, req SaveContractRequest) (*archive.Record, error) {
	vehicle, err := uc.resolveVehicle(ctx, req)
	if err != nil {
		return nil, err
	}

	pricing, err := uc.calc.Compute(vehicle, req.Options)
	if err != nil {
		return nil, shared.Classify(err)
	}

	now := uc.clock.Now()
	generatedAt := req.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = now
	}

	generated, err := contract.RenderContract(contract.RenderInput{
		Vehicle:              vehicle,
		Options:              req.Options,
		Pricing:              pricing,
		Company:              uc.company,
		Now:                  generatedAt,
		IncludeSignatureLink: req.SignatureLink != "",
		SignatureLink:        req.SignatureLink,
		Signature:            req.Signature,
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	pdf, err := uc.materializer.Materialize(ctx, generated.Document)
	if err != nil {
		return nil, shared.MarkAs(err, ErrMaterializeFailed, errs.ErrRender)
	}

	id := uuid.New()
	path := archive.ArtifactPath(vehicle.ID, id, generated.FileName)
	url, err := uc.blobs.Put(ctx, path, pdf, pdfContentType)
	if err != nil {
		return nil, shared.MarkAs(err, ErrArtifactUpload, errs.ErrStorage)
	}

	rec, err := archive.NewRecord(archive.NewRecordParams{
		ID:             id,
		Vehicle:        vehicle,
		ContractType:   req.Options.ContractType,
		Options:        req.Options,
		ArtifactPath:   path,
		ArtifactURL:    url,
		FileName:       generated.FileName,
		ContractNumber: generated.Number,
		SessionID:      req.SessionID,
		Now:            now,
	})
	if err != nil {
		uc.removeOrphan(ctx, path)
		return nil, shared.Classify(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Contracts().Create(ctx, tx.DB(), rec)
	})
	if err != nil {
		uc.removeOrphan(ctx, path)
		return nil, shared.MarkAs(err, ErrArchiveMetadata, errs.ErrStorage)
	}

	slog.Info("Contract archived",
		"contract_id", rec.ID(),
		"vehicle_id", rec.VehicleID(),
		"contract_number", rec.ContractNumber(),
		"signed", req.Signature != nil)

	return rec, nil
}

// Delete attempts both removals. A metadata failure is reported as storage
// error; a blob-only failure as ErrPartialDelete.
func (uc *contractUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := uc.uow.CommandReads().ContractByID(ctx, id)
	if err != nil {
		return shared.NotFoundOr(err, shared.ErrContractNotFound)
	}

	var metaErr, blobErr error
	var g errgroup.Group
	g.Go(func() error {
		metaErr = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Contracts().Delete(ctx, tx.DB(), id)
		})
		return nil
	})
	g.Go(func() error {
		blobErr = uc.blobs.Remove(ctx, rec.ArtifactPath())
		return nil
	})
	_ = g.Wait()

	if metaErr != nil {
		if blobErr != nil {
			slog.Error("Contract artifact removal failed", "contract_id", id, "path", rec.ArtifactPath(), "error", blobErr.Error())
		}
		return shared.NotFoundOr(metaErr, shared.ErrContractNotFound)
	}
	if blobErr != nil {
		slog.Warn("Contract metadata deleted but artifact remains", "contract_id", id, "path", rec.ArtifactPath(), "error", blobErr.Error())
		return shared.MarkAs(blobErr, ErrPartialDelete, errs.ErrStorage)
	}
	return nil
}

func (uc *contractUseCaseImpl) resolveVehicle(ctx context.Context, req SaveContractRequest) (contract.VehicleSnapshot, error) {
	if req.Vehicle != nil {
		return *req.Vehicle, nil
	}
	reads := uc.uow.CommandReads()
	return shared.LoadVehicle(ctx, reads, reads, req.VehicleID)
}

// removeOrphan runs detached from ctx so a cancelled request still cleans up.
func (uc *contractUseCaseImpl) removeOrphan(ctx context.Context, path string) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()
	if err := uc.blobs.Remove(cleanupCtx, path); err != nil {
		slog.Error("Failed to remove orphaned contract artifact", "path", path, "error", err.Error())
		return
	}
	slog.Warn("Removed orphaned contract artifact", "path", path)
}
