//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/commands"
	"dealer-contracts/tests/common/memstore"

	"github.com/stretchr/testify/suite"
)

type EmailTemplateCommandsTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.MockClock
	store   *memstore.Store
	useCase commands.EmailTemplateCommands
}

func (s *EmailTemplateCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC))
	s.store = memstore.New(s.clock)
	s.useCase = commands.NewEmailTemplateUseCase(s.store.TemplateStore(), s.clock)
}

func TestEmailTemplateCommandsSuite(t *testing.T) {
	suite.Run(t, new(EmailTemplateCommandsTestSuite))
}

func (s *EmailTemplateCommandsTestSuite) TestUpsert() {
	s.Run("success: creates and replaces by key", func() {
		_, err := s.useCase.Upsert(s.ctx, commands.UpsertTemplateRequest{
			Key:     notification.TemplateSignatureRequest,
			Subject: "Contract {{.ContractNumber}}",
			Body:    "Teken via {{.SignLink}}",
		})
		s.Require().NoError(err)

		s.clock.Add(time.Minute)
		got, err := s.useCase.Upsert(s.ctx, commands.UpsertTemplateRequest{
			Key:     notification.TemplateSignatureRequest,
			Name:    "Ondertekenverzoek",
			Subject: "Uw contract",
			Body:    "Teken via {{.SignLink}}",
		})
		s.Require().NoError(err)
		s.Equal("Ondertekenverzoek", got.Name())
		s.Equal(s.clock.Now(), got.UpdatedAt())

		stored, err := s.store.TemplateStore().List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(stored, 1)
		s.Equal("Uw contract", stored[0].Subject())
	})

	s.Run("error: invalid templates are rejected", func() {
		cases := map[string]commands.UpsertTemplateRequest{
			"bad key":      {Key: "Signature-Request", Subject: "s", Body: "b"},
			"empty body":   {Key: "reminder", Subject: "s", Body: " "},
			"syntax error": {Key: "reminder", Subject: "s", Body: "{{.SignLink"},
		}
		for name, req := range cases {
			_, err := s.useCase.Upsert(s.ctx, req)
			s.True(errs.Is(err, errs.ErrValidation), name)
		}
	})
}

func (s *EmailTemplateCommandsTestSuite) TestDelete() {
	s.store.AddTemplate(notification.DefaultSignatureRequest())

	s.Require().NoError(s.useCase.Delete(s.ctx, notification.TemplateSignatureRequest))

	err := s.useCase.Delete(s.ctx, notification.TemplateSignatureRequest)
	s.True(errs.Is(err, errs.ErrNotFound))
}
