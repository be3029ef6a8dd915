package storage

import (
	"context"
	"strings"

	"dealer-contracts/internal/pkg/config"
	"dealer-contracts/internal/pkg/errs"
	"dealer-contracts/internal/usecase/shared"
)

const (
	DriverLocal = "local"
	DriverGCS   = "gcs"
)

var (
	ErrObjectNotFound   = errs.New("object not found")
	ErrInvalidPath      = errs.New("invalid object path")
	ErrUnknownDriver    = errs.New("unknown storage driver")
	ErrBucketRequired   = errs.New("gcs bucket is required")
	ErrLocalDirRequired = errs.New("local storage directory is required")
)

// New builds the configured backend. The returned cleanup closes any client
// the backend holds.
func New(ctx context.Context, cfg config.StorageConfig) (shared.BlobStorage, func(), error) {
	switch cfg.Driver {
	case DriverLocal, "":
		s, err := NewLocal(cfg.LocalDir, cfg.PublicBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	case DriverGCS:
		return NewGCS(ctx, cfg)
	default:
		return nil, nil, errs.Wrapf(ErrUnknownDriver, "driver %q", cfg.Driver)
	}
}

// cleanPath rejects absolute and escaping keys so every object stays under
// the backend root.
func cleanPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return "", ErrInvalidPath
	}
	for _, part := range strings.Split(p, "/") {
		if part == "" || part == "." || part == ".." {
			return "", ErrInvalidPath
		}
	}
	return p, nil
}
