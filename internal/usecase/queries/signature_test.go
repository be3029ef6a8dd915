//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/queries"
	"dealer-contracts/tests/common/builder"
	"dealer-contracts/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SignatureQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.MockClock
	store    *memstore.Store
	sessions *builder.SessionBuilder
	q        queries.SignatureQueries
}

func (s *SignatureQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.sessions = builder.NewSessionBuilder()
	s.clock = clock.NewMockClock(s.sessions.Now)
	s.store = memstore.New(s.clock)
	s.q = queries.NewSignatureQueries(s.store.SessionReader(), contract.NewDefaultPriceCalculator(), s.sessions.Contract.Company, s.clock)
}

func TestSignatureQueriesSuite(t *testing.T) {
	suite.Run(t, new(SignatureQueriesTestSuite))
}

func (s *SignatureQueriesTestSuite) pending() (*signature.Session, string) {
	sess, token, err := s.sessions.BuildDomain()
	s.Require().NoError(err)
	s.store.PutSession(sess)
	return sess, token.Raw
}

func (s *SignatureQueriesTestSuite) TestValidateSession() {
	s.Run("success: renders the frozen snapshot dated at creation", func() {
		sess, token := s.pending()
		s.clock.Add(72 * time.Hour)

		view, err := s.q.ValidateSession(s.ctx, token)
		s.Require().NoError(err)
		s.Equal(sess.ID(), view.Session.ID())
		s.Equal(int64(20000), view.Pricing.FinalPrice)
		s.Equal(sess.CreatedAt(), view.Contract.Document.GeneratedAt)
		s.Equal(signature.StatusPending, s.store.Session(sess.ID()).Status())
	})

	s.Run("error: expired at the boundary", func() {
		sess, token := s.pending()
		s.clock.Set(sess.ExpiresAt())

		_, err := s.q.ValidateSession(s.ctx, token)
		s.True(errs.Is(err, errs.ErrExpired))
	})

	s.Run("error: already signed", func() {
		s.clock.Set(s.sessions.Now)
		sess, token := s.pending()
		s.Require().NoError(sess.Sign(s.clock.Now(), s.sessions.SignerInput()))
		s.store.PutSession(sess)

		_, err := s.q.ValidateSession(s.ctx, token)
		s.True(errs.Is(err, errs.ErrAlreadyCompleted))
	})

	s.Run("error: revoked", func() {
		s.clock.Set(s.sessions.Now)
		sess, token := s.pending()
		s.Require().NoError(sess.Revoke(s.clock.Now()))
		s.store.PutSession(sess)

		_, err := s.q.ValidateSession(s.ctx, token)
		s.True(errs.Is(err, errs.ErrRevoked))
	})

	s.Run("error: unknown or malformed token", func() {
		issued, err := signature.IssueToken()
		s.Require().NoError(err)
		for _, token := range []string{issued.Raw, "abc", ""} {
			_, err := s.q.ValidateSession(s.ctx, token)
			s.True(errs.Is(err, errs.ErrNotFound), token)
		}
	})
}

func (s *SignatureQueriesTestSuite) TestListSessions() {
	vehicleID := s.sessions.Contract.Vehicle.ID

	expired, _ := s.pending()
	s.clock.Add(signature.DefaultValidity)
	s.sessions.WithNow(s.clock.Now())
	signed, _ := s.pending()
	s.Require().NoError(signed.Sign(s.clock.Now().Add(time.Minute), s.sessions.SignerInput()))
	s.store.PutSession(signed)
	s.clock.Add(time.Hour)
	s.sessions.WithNow(s.clock.Now())
	open, _ := s.pending()

	other := builder.NewSessionBuilder().WithNow(s.clock.Now())
	foreign, _, err := other.BuildDomain()
	s.Require().NoError(err)
	s.store.PutSession(foreign)

	items, err := s.q.ListSessions(s.ctx, vehicleID)
	s.Require().NoError(err)
	s.Require().Len(items, 3)

	s.Equal(open.ID(), items[0].ID)
	s.Equal("pending", items[0].Status)
	s.Equal(signed.ID(), items[1].ID)
	s.Equal("signed", items[1].Status)
	s.Equal("Jan de Vries", items[1].SignerName)
	s.Require().NotNil(items[1].SignedAt)
	s.Equal(expired.ID(), items[2].ID)
	s.Equal("expired", items[2].Status)

	none, err := s.q.ListSessions(s.ctx, uuid.New())
	s.Require().NoError(err)
	s.Empty(none)
}
