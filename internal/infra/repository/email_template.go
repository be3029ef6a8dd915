package repository

import (
	"context"

	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/infra"
	"dealer-contracts/internal/infra/readstore"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/internal/pkg/pgconv"
)

type TemplateWriteQueries interface {
	readstore.TemplateReadQueries
	UpsertEmailTemplate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertEmailTemplateParams) error
	DeleteEmailTemplate(ctx context.Context, db sqlc.DBTX, key string) (int64, error)
}

// TemplateStore is the admin-facing store for notification templates. Writes
// are single statements, so it runs on the pool directly.
type TemplateStore struct {
	*readstore.TemplateReadStore
	queries TemplateWriteQueries
	db      sqlc.DBTX
}

func NewTemplateStore(queries TemplateWriteQueries, db sqlc.DBTX) *TemplateStore {
	return &TemplateStore{
		TemplateReadStore: readstore.NewTemplateReadStore(queries, db),
		queries:           queries,
		db:                db,
	}
}

func (s *TemplateStore) Get(ctx context.Context, key string) (*notification.Template, error) {
	return s.FindByKey(ctx, key)
}

func (s *TemplateStore) Upsert(ctx context.Context, t *notification.Template) error {
	err := s.queries.UpsertEmailTemplate(ctx, s.db, sqlc.UpsertEmailTemplateParams{
		Key:       t.Key(),
		Name:      t.Name(),
		Subject:   t.Subject(),
		Body:      t.Body(),
		UpdatedAt: pgconv.TimeToPgtype(t.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert email template", err)
	}
	return nil
}

func (s *TemplateStore) Delete(ctx context.Context, key string) error {
	rows, err := s.queries.DeleteEmailTemplate(ctx, s.db, key)
	if err != nil {
		return infra.WrapRepoErr("failed to delete email template", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("email template not found", nil, infra.KindNotFound)
	}
	return nil
}
