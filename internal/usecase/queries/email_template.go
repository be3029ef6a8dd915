package queries

import (
	"context"

	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/shared"
)

type EmailTemplateQueries interface {
	List(ctx context.Context) ([]*notification.Template, error)
	Get(ctx context.Context, key string) (*notification.Template, error)
}

type emailTemplateQueriesImpl struct {
	store shared.TemplateStore
}

func NewEmailTemplateQueries(store shared.TemplateStore) EmailTemplateQueries {
	return &emailTemplateQueriesImpl{store: store}
}

func (q *emailTemplateQueriesImpl) List(ctx context.Context) ([]*notification.Template, error) {
	ts, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	return ts, nil
}

func (q *emailTemplateQueriesImpl) Get(ctx context.Context, key string) (*notification.Template, error) {
	t, err := q.store.Get(ctx, key)
	if err != nil {
		return nil, shared.NotFoundOr(err, shared.ErrTemplateNotFound)
	}
	return t, nil
}
