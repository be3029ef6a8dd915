//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/tests/common/builder"
	"dealer-contracts/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ContractCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	clock        *clock.MockClock
	store        *memstore.Store
	blobs        *memstore.Blobs
	materializer *memstore.Materializer
	contracts    *builder.ContractBuilder
	useCase      commands.ContractCommands
}

func (s *ContractCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC))
	s.store = memstore.New(s.clock)
	s.blobs = memstore.NewBlobs()
	s.materializer = &memstore.Materializer{}
	s.contracts = builder.NewContractBuilder()
	s.store.AddVehicle(s.contracts.Vehicle)
	s.useCase = commands.NewContractUseCase(s.store, s.blobs, s.materializer, contract.NewDefaultPriceCalculator(), s.contracts.Company, s.clock)
}

func TestContractCommandsSuite(t *testing.T) {
	suite.Run(t, new(ContractCommandsTestSuite))
}

func (s *ContractCommandsTestSuite) saveRequest() commands.SaveContractRequest {
	return commands.SaveContractRequest{
		VehicleID: s.contracts.Vehicle.ID,
		Options:   s.contracts.Options,
	}
}

// ================================================================================
// Save
// ================================================================================

func (s *ContractCommandsTestSuite) TestSave() {
	s.Run("success: artifact and metadata are both stored", func() {
		rec, err := s.useCase.Save(s.ctx, s.saveRequest())
		s.Require().NoError(err)

		s.Equal(s.contracts.Vehicle.ID, rec.VehicleID())
		s.Equal(contract.ContractTypeB2C, rec.ContractType())
		s.True(strings.HasPrefix(rec.ContractNumber(), "XX123Y-260314-"))
		s.Equal("koopovereenkomst-XX123Y-2026-03-14.pdf", rec.FileName())
		s.True(strings.HasPrefix(rec.ArtifactPath(), "contracts/"+s.contracts.Vehicle.ID.String()+"/"))
		s.Equal("mem://"+rec.ArtifactPath(), rec.ArtifactURL())
		s.Nil(rec.SessionID())

		data, err := s.blobs.Get(s.ctx, rec.ArtifactPath())
		s.Require().NoError(err)
		s.Equal(memstore.FakePDF, data)
		s.Len(s.store.Contracts(), 1)
	})

	s.Run("success: signature link is carried into the document", func() {
		s.SetupTest()
		req := s.saveRequest()
		req.SignatureLink = "https://contracts.example.nl/contract/sign/abc"

		_, err := s.useCase.Save(s.ctx, req)
		s.Require().NoError(err)

		docs := s.materializer.Documents()
		s.Require().Len(docs, 1)
		found := false
		for _, sec := range docs[0].Sections {
			for _, p := range sec.Paragraphs {
				if strings.Contains(p, req.SignatureLink) {
					found = true
				}
			}
		}
		s.True(found)
	})

	s.Run("success: frozen snapshot is used instead of the inventory", func() {
		s.SetupTest()
		frozen := s.contracts.Vehicle
		frozen.LicensePlate = "ZZ-999-Z"
		req := s.saveRequest()
		req.Vehicle = &frozen
		req.GeneratedAt = s.clock.Now().Add(-48 * time.Hour)

		rec, err := s.useCase.Save(s.ctx, req)
		s.Require().NoError(err)
		s.Equal("ZZ-999-Z", rec.Vehicle().LicensePlate)
		s.Equal(req.GeneratedAt, s.materializer.Documents()[0].GeneratedAt)
		s.Equal(s.clock.Now(), rec.CreatedAt())
	})

	s.Run("error: unknown vehicle", func() {
		s.SetupTest()
		req := s.saveRequest()
		req.VehicleID = uuid.New()

		_, err := s.useCase.Save(s.ctx, req)
		s.True(errs.Is(err, errs.ErrNotFound))
		s.Empty(s.blobs.Paths())
	})

	s.Run("error: invalid options", func() {
		s.SetupTest()
		req := s.saveRequest()
		req.Options.PaymentTerms = "weekly"

		_, err := s.useCase.Save(s.ctx, req)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: materializer failure stores nothing", func() {
		s.SetupTest()
		s.materializer.Fail = memstore.ErrInjected

		_, err := s.useCase.Save(s.ctx, s.saveRequest())
		s.True(errs.Is(err, errs.ErrRender))
		s.True(errs.Is(err, commands.ErrMaterializeFailed))
		s.Empty(s.blobs.Paths())
		s.Empty(s.store.Contracts())
	})

	s.Run("error: upload failure stores no metadata", func() {
		s.SetupTest()
		s.blobs.FailPut = memstore.ErrInjected

		_, err := s.useCase.Save(s.ctx, s.saveRequest())
		s.True(errs.Is(err, errs.ErrStorage))
		s.True(errs.Is(err, commands.ErrArtifactUpload))
		s.Empty(s.store.Contracts())
	})

	s.Run("error: metadata failure removes the orphaned artifact", func() {
		s.SetupTest()
		s.store.FailContractCreate = memstore.ErrInjected

		_, err := s.useCase.Save(s.ctx, s.saveRequest())
		s.True(errs.Is(err, errs.ErrStorage))
		s.True(errs.Is(err, commands.ErrArchiveMetadata))
		s.Empty(s.blobs.Paths())
		s.Empty(s.store.Contracts())
	})
}

// ================================================================================
// Delete
// ================================================================================

func (s *ContractCommandsTestSuite) TestDelete() {
	s.Run("success: removes artifact and metadata", func() {
		rec, err := s.useCase.Save(s.ctx, s.saveRequest())
		s.Require().NoError(err)

		s.Require().NoError(s.useCase.Delete(s.ctx, rec.ID()))
		s.Empty(s.blobs.Paths())
		s.Empty(s.store.Contracts())
	})

	s.Run("error: artifact removal failure is a partial delete", func() {
		s.SetupTest()
		rec, err := s.useCase.Save(s.ctx, s.saveRequest())
		s.Require().NoError(err)
		s.blobs.FailRemove = memstore.ErrInjected

		err = s.useCase.Delete(s.ctx, rec.ID())
		s.True(errs.Is(err, commands.ErrPartialDelete))
		s.True(errs.Is(err, errs.ErrStorage))
		s.Empty(s.store.Contracts())
		s.True(s.blobs.Has(rec.ArtifactPath()))
	})

	s.Run("error: metadata failure is a storage error", func() {
		s.SetupTest()
		rec, err := s.useCase.Save(s.ctx, s.saveRequest())
		s.Require().NoError(err)
		s.store.FailContractDelete = memstore.ErrInjected

		err = s.useCase.Delete(s.ctx, rec.ID())
		s.True(errs.Is(err, errs.ErrStorage))
		s.False(errs.Is(err, commands.ErrPartialDelete))
		s.Len(s.store.Contracts(), 1)
	})

	s.Run("error: unknown contract", func() {
		s.SetupTest()
		err := s.useCase.Delete(s.ctx, uuid.New())
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}
