package commands

import (
	"context"

	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/pkg/clock"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/shared"
)

type UpsertTemplateRequest struct {
	Key     string
	Name    string
	Subject string
	Body    string
}

type EmailTemplateCommands interface {
	Upsert(ctx context.Context, req UpsertTemplateRequest) (*notification.Template, error)
	Delete(ctx context.Context, key string) error
}

type emailTemplateUseCaseImpl struct {
	store shared.TemplateStore
	clock clock.Clock
}

func NewEmailTemplateUseCase(store shared.TemplateStore, clk clock.Clock) EmailTemplateCommands {
	return &emailTemplateUseCaseImpl{store: store, clock: clk}
}

func (uc *emailTemplateUseCaseImpl) Upsert(ctx context.Context, req UpsertTemplateRequest) (*notification.Template, error) {
	t, err := notification.NewTemplate(req.Key, req.Name, req.Subject, req.Body, uc.clock.Now())
	if err != nil {
		return nil, shared.Classify(err)
	}
	if err := uc.store.Upsert(ctx, t); err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	return t, nil
}

func (uc *emailTemplateUseCaseImpl) Delete(ctx context.Context, key string) error {
	if err := uc.store.Delete(ctx, key); err != nil {
		return shared.NotFoundOr(err, shared.ErrTemplateNotFound)
	}
	return nil
}
