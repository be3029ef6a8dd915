package readstore

import (
	"context"

	"dealer-contracts/internal/domain/notification"
	"dealer-contracts/internal/infra"
	sqlc "dealer-contracts/internal/infra/sqlc/generated"
	"dealer-contracts/internal/pkg/pgconv"
)

type TemplateReadQueries interface {
	GetEmailTemplate(ctx context.Context, db sqlc.DBTX, key string) (sqlc.EmailTemplates, error)
	ListEmailTemplates(ctx context.Context, db sqlc.DBTX) ([]sqlc.EmailTemplates, error)
}

type TemplateReadStore struct {
	queries TemplateReadQueries
	db      sqlc.DBTX
}

func NewTemplateReadStore(queries TemplateReadQueries, db sqlc.DBTX) *TemplateReadStore {
	return &TemplateReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TemplateReadStore) FindByKey(ctx context.Context, key string) (*notification.Template, error) {
	row, err := r.queries.GetEmailTemplate(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("email template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get email template", err)
	}
	return toTemplate(row), nil
}

func (r *TemplateReadStore) List(ctx context.Context) ([]*notification.Template, error) {
	rows, err := r.queries.ListEmailTemplates(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list email templates", err)
	}
	out := make([]*notification.Template, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTemplate(row))
	}
	return out, nil
}

func toTemplate(row sqlc.EmailTemplates) *notification.Template {
	return notification.ReconstructTemplate(row.Key, row.Name, row.Subject, row.Body, pgconv.TimeFromPgtype(row.UpdatedAt))
}
