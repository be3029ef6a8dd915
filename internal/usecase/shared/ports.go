package shared

import (
	"context"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/domain/notification"

	"github.com/google/uuid"
)

// VehicleLookup reads the inventory owned by the dealer platform.
type VehicleLookup interface {
	VehicleByID(ctx context.Context, id uuid.UUID) (*VehicleRecord, error)
}

// ContactLookup reads CRM contacts owned by the dealer platform.
type ContactLookup interface {
	ContactByID(ctx context.Context, id uuid.UUID) (*contract.Contact, error)
}

// BlobStorage keeps contract PDFs and signature images.
type BlobStorage interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, path string) ([]byte, error)
	// URL returns a public or signed URL; ttl is ignored by public backends.
	URL(ctx context.Context, path string, ttl time.Duration) (string, error)
	Remove(ctx context.Context, path string) error
}

// Materializer turns a rendered document into PDF bytes. It returns no bytes
// on failure.
type Materializer interface {
	Materialize(ctx context.Context, doc *contract.Document) ([]byte, error)
}

// TemplateStore persists email templates.
type TemplateStore interface {
	List(ctx context.Context) ([]*notification.Template, error)
	Get(ctx context.Context, key string) (*notification.Template, error)
	Upsert(ctx context.Context, t *notification.Template) error
	Delete(ctx context.Context, key string) error
}
