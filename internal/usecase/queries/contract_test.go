//go:build unit

package queries_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/internal/usecase/queries"
	"dealer-contracts/tests/common/builder"
	"dealer-contracts/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ContractQueriesTestSuite struct {
	suite.Suite
	ctx       context.Context
	clock     *clock.MockClock
	store     *memstore.Store
	blobs     *memstore.Blobs
	contracts *builder.ContractBuilder
	archiver  commands.ContractCommands
	q         queries.ContractQueries
}

func (s *ContractQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC))
	s.store = memstore.New(s.clock)
	s.blobs = memstore.NewBlobs()
	s.contracts = builder.NewContractBuilder()
	s.store.AddVehicle(s.contracts.Vehicle)

	calc := contract.NewDefaultPriceCalculator()
	reads := s.store.CommandReads()
	s.archiver = commands.NewContractUseCase(s.store, s.blobs, &memstore.Materializer{}, calc, s.contracts.Company, s.clock)
	s.q = queries.NewContractQueries(s.store.ContractReader(), reads, reads, s.blobs, calc, s.contracts.Company, s.clock)
}

func TestContractQueriesSuite(t *testing.T) {
	suite.Run(t, new(ContractQueriesTestSuite))
}

func (s *ContractQueriesTestSuite) archive(opts contract.Options) uuid.UUID {
	rec, err := s.archiver.Save(s.ctx, commands.SaveContractRequest{VehicleID: s.contracts.Vehicle.ID, Options: opts})
	s.Require().NoError(err)
	return rec.ID()
}

func (s *ContractQueriesTestSuite) TestPricing() {
	s.Run("success: computes from the inventory price", func() {
		opts := s.contracts.WithPackage(contract.Package12MonthsAutocity).WithTradeIn(2500).Options

		view, err := s.q.Pricing(s.ctx, s.contracts.Vehicle.ID, opts)
		s.Require().NoError(err)
		s.Equal(int64(20000), view.Pricing.BasePrice)
		s.Equal(int64(750), view.Pricing.DeliveryPackagePrice)
		s.Equal(int64(18250), view.Pricing.FinalPrice)
		s.Require().NotNil(view.Vehicle.Customer)
		s.Equal("Jan de Vries", view.Vehicle.Customer.Name)
	})

	s.Run("error: unknown vehicle", func() {
		_, err := s.q.Pricing(s.ctx, uuid.New(), s.contracts.Options)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: unknown delivery package", func() {
		opts := s.contracts.Options
		opts.DeliveryPackage = "lifetime"
		_, err := s.q.Pricing(s.ctx, s.contracts.Vehicle.ID, opts)
		s.True(errs.Is(err, errs.ErrValidation))
	})
}

func (s *ContractQueriesTestSuite) TestPreview() {
	s.Run("success: keeps the placeholder when a link is requested", func() {
		view, err := s.q.Preview(s.ctx, s.contracts.Vehicle.ID, s.contracts.Options, true)
		s.Require().NoError(err)
		s.Equal(1, strings.Count(view.Contract.Text, contract.SignatureLinkPlaceholder))
		s.Empty(s.blobs.Paths())
	})

	s.Run("success: no signing block without a link", func() {
		view, err := s.q.Preview(s.ctx, s.contracts.Vehicle.ID, s.contracts.Options, false)
		s.Require().NoError(err)
		s.NotContains(view.Contract.Text, contract.SignatureLinkPlaceholder)
		s.NotEmpty(view.Contract.HTML)
	})
}

func (s *ContractQueriesTestSuite) TestGetLatest() {
	s.archive(s.contracts.Options)
	s.clock.Add(time.Hour)
	b2b := s.archive(builder.NewContractBuilder().AsB2B(contract.BtwTypeExclusive).Options)

	s.Run("success: any type returns the newest", func() {
		rec, err := s.q.GetLatest(s.ctx, s.contracts.Vehicle.ID, "")
		s.Require().NoError(err)
		s.Equal(b2b, rec.ID())
	})

	s.Run("success: filtered by type", func() {
		rec, err := s.q.GetLatest(s.ctx, s.contracts.Vehicle.ID, contract.ContractTypeB2C)
		s.Require().NoError(err)
		s.Equal(contract.ContractTypeB2C, rec.ContractType())
	})

	s.Run("error: unknown type", func() {
		_, err := s.q.GetLatest(s.ctx, s.contracts.Vehicle.ID, "lease")
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: nothing archived", func() {
		_, err := s.q.GetLatest(s.ctx, uuid.New(), "")
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("success: list is newest first", func() {
		recs, err := s.q.ListAll(s.ctx, s.contracts.Vehicle.ID)
		s.Require().NoError(err)
		s.Require().Len(recs, 2)
		s.Equal(b2b, recs[0].ID())
	})
}

func (s *ContractQueriesTestSuite) TestDownload() {
	id := s.archive(s.contracts.Options)

	s.Run("success: returns the stored PDF", func() {
		art, err := s.q.Download(s.ctx, id)
		s.Require().NoError(err)
		s.Equal("application/pdf", art.ContentType)
		s.Equal(memstore.FakePDF, art.Data)
		s.True(strings.HasPrefix(art.FileName, "koopovereenkomst-"))
	})

	s.Run("error: unreadable artifact", func() {
		s.blobs.FailGet = memstore.ErrInjected
		defer func() { s.blobs.FailGet = nil }()

		_, err := s.q.Download(s.ctx, id)
		s.True(errs.Is(err, errs.ErrStorage))
		s.True(errs.Is(err, queries.ErrArtifactUnavailable))
	})

	s.Run("error: unknown contract", func() {
		_, err := s.q.Download(s.ctx, uuid.New())
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}
