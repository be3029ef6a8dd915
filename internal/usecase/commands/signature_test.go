//go:build unit

package commands_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/domain/signature"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/tests/common/builder"
	"dealer-contracts/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const publicBaseURL = "https://contracts.example.nl"

type SignatureCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	clock        *clock.MockClock
	store        *memstore.Store
	blobs        *memstore.Blobs
	materializer *memstore.Materializer
	contracts    *builder.ContractBuilder
	actorID      uuid.UUID
	useCase      commands.SignatureCommands
}

func (s *SignatureCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC))
	s.store = memstore.New(s.clock)
	s.blobs = memstore.NewBlobs()
	s.materializer = &memstore.Materializer{}
	s.contracts = builder.NewContractBuilder()
	s.actorID = uuid.New()
	s.store.AddVehicle(s.contracts.Vehicle)

	calc := contract.NewDefaultPriceCalculator()
	archiver := commands.NewContractUseCase(s.store, s.blobs, s.materializer, calc, s.contracts.Company, s.clock)
	s.useCase = commands.NewSignatureUseCase(s.store, s.blobs, archiver, calc, s.contracts.Company, commands.SignatureSettings{
		Validity:      signature.DefaultValidity,
		MaxImageBytes: 64 * 1024,
		PublicBaseURL: publicBaseURL,
	}, s.clock)
}

func TestSignatureCommandsSuite(t *testing.T) {
	suite.Run(t, new(SignatureCommandsTestSuite))
}

func (s *SignatureCommandsTestSuite) createRequest() commands.CreateSessionRequest {
	return commands.CreateSessionRequest{
		VehicleID:    s.contracts.Vehicle.ID,
		ContractType: s.contracts.Options.ContractType,
		Options:      s.contracts.Options,
		Recipient:    notification.ByVehicle{VehicleID: s.contracts.Vehicle.ID},
	}
}

func (s *SignatureCommandsTestSuite) createSession() *commands.CreateSessionResult {
	res, err := s.useCase.CreateSession(s.ctx, s.createRequest(), s.actorID, nil)
	s.Require().NoError(err)
	return res
}

func signRequest() commands.SignSessionRequest {
	return commands.SignSessionRequest{
		SignerName:     "Jan de Vries",
		SignerEmail:    "jan@example.nl",
		SignatureImage: builder.SignatureDataURL(),
		SourceAddress:  "203.0.113.7",
	}
}

func (s *SignatureCommandsTestSuite) signatureImages() []string {
	var out []string
	for _, p := range s.blobs.Paths() {
		if strings.HasPrefix(p, "signatures/") {
			out = append(out, p)
		}
	}
	return out
}

// ================================================================================
// CreateSession
// ================================================================================

func (s *SignatureCommandsTestSuite) TestCreateSession() {
	s.Run("success: stores a pending session and queues the request mail", func() {
		res := s.createSession()

		s.False(res.Replayed)
		s.NotEmpty(res.Token)
		s.Equal(publicBaseURL+"/contract/sign/"+res.Token, res.SignLink)
		s.Equal(signature.StatusPending, res.Session.Status())
		s.Equal(s.clock.Now().Add(signature.DefaultValidity), res.Session.ExpiresAt())
		s.Equal(signature.HashToken(res.Token), res.Session.TokenHash())

		stored := s.store.Session(res.Session.ID())
		s.Require().NotNil(stored)
		s.Equal(s.contracts.Vehicle.SellingPrice, stored.Vehicle().SellingPrice)

		jobs := s.store.Jobs()
		s.Require().Len(jobs, 1)
		s.Equal(notification.JobKindSignatureRequested, jobs[0].Kind)
		var payload notification.SignatureRequestedPayload
		s.Require().NoError(json.Unmarshal(jobs[0].Payload, &payload))
		s.Equal("jan@example.nl", payload.RecipientEmail)
		s.Equal(res.SignLink, payload.SignLink)
		s.Contains(payload.Body, res.SignLink)
	})

	s.Run("success: explicit recipient overrides a vehicle without customer", func() {
		s.SetupTest()
		s.contracts.WithoutCustomer()
		s.store.AddVehicle(s.contracts.Vehicle)

		explicit, err := notification.NewExplicit("Fleet BV", "inkoop@fleet.nl")
		s.Require().NoError(err)
		req := s.createRequest()
		req.Recipient = explicit

		_, err = s.useCase.CreateSession(s.ctx, req, s.actorID, nil)
		s.Require().NoError(err)

		var payload notification.SignatureRequestedPayload
		s.Require().NoError(json.Unmarshal(s.store.Jobs()[0].Payload, &payload))
		s.Equal("inkoop@fleet.nl", payload.RecipientEmail)
	})

	s.Run("success: stored template is used for the request mail", func() {
		s.SetupTest()
		custom, err := notification.NewTemplate(notification.TemplateSignatureRequest, "", "Teken {{.LicensePlate}}", "Hallo {{.RecipientName}}, {{.SignLink}}", s.clock.Now())
		s.Require().NoError(err)
		s.store.AddTemplate(custom)

		res := s.createSession()

		var payload notification.SignatureRequestedPayload
		s.Require().NoError(json.Unmarshal(s.store.Jobs()[0].Payload, &payload))
		s.Equal("Teken XX-123-Y", payload.Subject)
		s.Equal("Hallo Jan de Vries, "+res.SignLink, payload.Body)
	})

	s.Run("error: vehicle without customer email cannot resolve a recipient", func() {
		s.SetupTest()
		s.contracts.WithoutCustomer()
		s.store.AddVehicle(s.contracts.Vehicle)

		_, err := s.useCase.CreateSession(s.ctx, s.createRequest(), s.actorID, nil)
		s.True(errs.Is(err, errs.ErrValidation))
		s.True(errs.Is(err, commands.ErrRecipientUnresolved))
		s.Zero(s.store.SessionCount())
	})

	s.Run("error: unknown vehicle", func() {
		s.SetupTest()
		req := s.createRequest()
		req.VehicleID = uuid.New()

		_, err := s.useCase.CreateSession(s.ctx, req, s.actorID, nil)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: contract type differs from options", func() {
		s.SetupTest()
		req := s.createRequest()
		req.ContractType = contract.ContractTypeB2B

		_, err := s.useCase.CreateSession(s.ctx, req, s.actorID, nil)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: failed write leaves nothing behind", func() {
		s.SetupTest()
		s.store.FailSessionCreate = memstore.ErrInjected

		_, err := s.useCase.CreateSession(s.ctx, s.createRequest(), s.actorID, nil)
		s.True(errs.Is(err, errs.ErrStorage))
		s.Zero(s.store.SessionCount())
		s.Empty(s.store.Jobs())
	})
}

func (s *SignatureCommandsTestSuite) TestCreateSession_Idempotency() {
	key := uuid.New()

	s.Run("replay returns the first session without a new token", func() {
		first, err := s.useCase.CreateSession(s.ctx, s.createRequest(), s.actorID, &key)
		s.Require().NoError(err)

		again, err := s.useCase.CreateSession(s.ctx, s.createRequest(), s.actorID, &key)
		s.Require().NoError(err)

		s.True(again.Replayed)
		s.Equal(first.Session.ID(), again.Session.ID())
		s.Empty(again.Token)
		s.Empty(again.SignLink)
		s.Equal(1, s.store.SessionCount())
		s.Len(s.store.Jobs(), 1)
	})

	s.Run("same key with a different body is a conflict", func() {
		req := s.createRequest()
		req.Options.DeliveryPackage = contract.Package12MonthsBovag

		_, err := s.useCase.CreateSession(s.ctx, req, s.actorID, &key)
		s.True(errs.Is(err, errs.ErrConflict))
		s.True(errs.Is(err, commands.ErrIdempotencyKeyReused))
	})

	s.Run("keys are scoped per user", func() {
		res, err := s.useCase.CreateSession(s.ctx, s.createRequest(), uuid.New(), &key)
		s.Require().NoError(err)
		s.False(res.Replayed)
		s.Equal(2, s.store.SessionCount())
	})

	s.Run("an expired key is claimed again", func() {
		s.clock.Add(25 * time.Hour)

		res, err := s.useCase.CreateSession(s.ctx, s.createRequest(), s.actorID, &key)
		s.Require().NoError(err)
		s.False(res.Replayed)
		s.NotEmpty(res.Token)
		s.Equal(3, s.store.SessionCount())
	})
}

// ================================================================================
// SignSession
// ================================================================================

func (s *SignatureCommandsTestSuite) TestSignSession() {
	s.Run("success: signs once and archives the signed copy", func() {
		created := s.createSession()
		s.clock.Add(time.Hour)

		res, err := s.useCase.SignSession(s.ctx, created.Token, signRequest())
		s.Require().NoError(err)
		s.NoError(res.ArchiveErr)

		s.Equal(signature.StatusSigned, res.Session.Status())
		s.Equal(signature.StatusSigned, s.store.Session(created.Session.ID()).Status())
		sig := s.store.Session(created.Session.ID()).Signature()
		s.Require().NotNil(sig)
		s.Equal(s.clock.Now(), sig.SignedAt)
		s.Equal("203.0.113.7", sig.SourceAddress)
		s.True(s.blobs.Has(sig.ImagePath))

		s.Require().NotNil(res.Contract)
		s.Require().NotNil(res.Contract.SessionID())
		s.Equal(created.Session.ID(), *res.Contract.SessionID())
		s.True(s.blobs.Has(res.Contract.ArtifactPath()))

		docs := s.materializer.Documents()
		s.Require().Len(docs, 1)
		s.Require().NotNil(docs[0].Signature)
		s.Equal("Jan de Vries", docs[0].Signature.SignerName)
		s.NotEmpty(docs[0].Signature.Image)
		s.Equal(created.Session.CreatedAt(), docs[0].GeneratedAt)
	})

	s.Run("error: second attempt sees the completed session", func() {
		s.SetupTest()
		created := s.createSession()
		_, err := s.useCase.SignSession(s.ctx, created.Token, signRequest())
		s.Require().NoError(err)

		_, err = s.useCase.SignSession(s.ctx, created.Token, signRequest())
		s.True(errs.Is(err, errs.ErrAlreadyCompleted))
		s.Len(s.signatureImages(), 1)
	})

	s.Run("error: expired exactly at expiresAt", func() {
		s.SetupTest()
		created := s.createSession()
		s.clock.Set(created.Session.ExpiresAt())

		_, err := s.useCase.SignSession(s.ctx, created.Token, signRequest())
		s.True(errs.Is(err, errs.ErrExpired))
		s.Empty(s.blobs.Paths())
		s.Equal(signature.StatusPending, s.store.Session(created.Session.ID()).Status())
	})

	s.Run("success: one nanosecond before expiry", func() {
		s.SetupTest()
		created := s.createSession()
		s.clock.Set(created.Session.ExpiresAt().Add(-time.Nanosecond))

		_, err := s.useCase.SignSession(s.ctx, created.Token, signRequest())
		s.NoError(err)
	})

	s.Run("error: revoked session", func() {
		s.SetupTest()
		created := s.createSession()
		_, err := s.useCase.RevokeSession(s.ctx, created.Session.ID())
		s.Require().NoError(err)

		_, err = s.useCase.SignSession(s.ctx, created.Token, signRequest())
		s.True(errs.Is(err, errs.ErrRevoked))
	})

	s.Run("error: malformed and unknown tokens are not found", func() {
		s.SetupTest()
		for _, token := range []string{"", "not-a-token", base64.RawURLEncoding.EncodeToString(make([]byte, 32))} {
			_, err := s.useCase.SignSession(s.ctx, token, signRequest())
			s.True(errs.Is(err, errs.ErrNotFound), token)
		}
	})

	s.Run("error: signature image validation", func() {
		s.SetupTest()
		created := s.createSession()

		cases := map[string]string{
			"empty":      "",
			"not base64": "data:image/png;base64,%%%",
			"jpeg":       "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff}),
			"not a png":  base64.StdEncoding.EncodeToString([]byte("hello world")),
			"too large":  base64.StdEncoding.EncodeToString(make([]byte, 128*1024)),
		}
		for name, image := range cases {
			req := signRequest()
			req.SignatureImage = image
			_, err := s.useCase.SignSession(s.ctx, created.Token, req)
			s.True(errs.Is(err, errs.ErrValidation), name)
		}
		s.Empty(s.blobs.Paths())
		s.Equal(signature.StatusPending, s.store.Session(created.Session.ID()).Status())
	})

	s.Run("error: signer name and email are required", func() {
		s.SetupTest()
		created := s.createSession()

		req := signRequest()
		req.SignerName = "  "
		_, err := s.useCase.SignSession(s.ctx, created.Token, req)
		s.True(errs.Is(err, errs.ErrValidation))

		req = signRequest()
		req.SignerEmail = "not-an-email"
		_, err = s.useCase.SignSession(s.ctx, created.Token, req)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: image upload failure keeps the session pending", func() {
		s.SetupTest()
		created := s.createSession()
		s.blobs.FailPut = memstore.ErrInjected

		_, err := s.useCase.SignSession(s.ctx, created.Token, signRequest())
		s.True(errs.Is(err, errs.ErrStorage))
		s.True(errs.Is(err, commands.ErrSignatureUpload))
		s.Equal(signature.StatusPending, s.store.Session(created.Session.ID()).Status())
	})

	s.Run("success: archive failure still signs", func() {
		s.SetupTest()
		created := s.createSession()
		s.materializer.Fail = memstore.ErrInjected

		res, err := s.useCase.SignSession(s.ctx, created.Token, signRequest())
		s.Require().NoError(err)
		s.Error(res.ArchiveErr)
		s.True(errs.Is(res.ArchiveErr, errs.ErrRender))
		s.Nil(res.Contract)
		s.Equal(signature.StatusSigned, s.store.Session(created.Session.ID()).Status())
		s.Empty(s.store.Contracts())
	})
}

func (s *SignatureCommandsTestSuite) TestSignSession_Concurrent() {
	created := s.createSession()

	const signers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		rejected int
	)
	for range signers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.useCase.SignSession(s.ctx, created.Token, signRequest())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errs.Is(err, errs.ErrAlreadyCompleted):
				rejected++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, wins)
	s.Equal(signers-1, rejected)
	s.Len(s.signatureImages(), 1)
	s.Len(s.store.Contracts(), 1)

	stored := s.store.Session(created.Session.ID())
	s.Equal(signature.StatusSigned, stored.Status())
	s.Equal([]string{stored.Signature().ImagePath}, s.signatureImages())
}

// ================================================================================
// RevokeSession
// ================================================================================

func (s *SignatureCommandsTestSuite) TestRevokeSession() {
	s.Run("success: pending session is revoked", func() {
		created := s.createSession()

		revoked, err := s.useCase.RevokeSession(s.ctx, created.Session.ID())
		s.Require().NoError(err)
		s.Equal(signature.StatusRevoked, revoked.Status())
		s.Require().NotNil(s.store.Session(created.Session.ID()).RevokedAt())
	})

	s.Run("error: signed session cannot be revoked", func() {
		s.SetupTest()
		created := s.createSession()
		_, err := s.useCase.SignSession(s.ctx, created.Token, signRequest())
		s.Require().NoError(err)

		_, err = s.useCase.RevokeSession(s.ctx, created.Session.ID())
		s.True(errs.Is(err, errs.ErrAlreadyCompleted))
	})

	s.Run("error: expired session", func() {
		s.SetupTest()
		created := s.createSession()
		s.clock.Add(signature.DefaultValidity)

		_, err := s.useCase.RevokeSession(s.ctx, created.Session.ID())
		s.True(errs.Is(err, errs.ErrExpired))
	})

	s.Run("error: unknown session", func() {
		s.SetupTest()
		_, err := s.useCase.RevokeSession(s.ctx, uuid.New())
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}
