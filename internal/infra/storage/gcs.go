package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"dealer-contracts/internal/pkg/config"
	"dealer-contracts/internal/pkg/errs"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCS stores blobs in a Google Cloud Storage bucket and hands out V4 signed
// URLs for downloads.
type GCS struct {
	client    *gcs.Client
	bucket    *gcs.BucketHandle
	signedTTL time.Duration
	now       func() time.Time
}

func NewGCS(ctx context.Context, cfg config.StorageConfig) (*GCS, func(), error) {
	if cfg.GCSBucket == "" {
		return nil, nil, ErrBucketRequired
	}

	var opts []option.ClientOption
	if cfg.GCSCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create gcs client")
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close gcs client", "error", err.Error())
		}
	}

	return &GCS{
		client:    client,
		bucket:    client.Bucket(cfg.GCSBucket),
		signedTTL: cfg.SignedURLTTL,
		now:       time.Now,
	}, cleanup, nil
}

func (s *GCS) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	p, err := cleanPath(path)
	if err != nil {
		return "", err
	}

	w := s.bucket.Object(p).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", errs.Wrap(err, "failed to upload object")
	}
	// The object only becomes visible once Close succeeds.
	if err := w.Close(); err != nil {
		return "", errs.Wrap(err, "failed to finalize object upload")
	}

	return s.URL(ctx, p, s.signedTTL)
}

func (s *GCS) Get(ctx context.Context, path string) ([]byte, error) {
	p, err := cleanPath(path)
	if err != nil {
		return nil, err
	}

	r, err := s.bucket.Object(p).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, errs.Mark(err, ErrObjectNotFound)
		}
		return nil, errs.Wrap(err, "failed to open object")
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			slog.Warn("failed to close object reader", "path", p, "error", cerr.Error())
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read object")
	}
	return data, nil
}

func (s *GCS) URL(_ context.Context, path string, ttl time.Duration) (string, error) {
	p, err := cleanPath(path)
	if err != nil {
		return "", err
	}
	if ttl <= 0 {
		ttl = s.signedTTL
	}
	url, err := s.bucket.SignedURL(p, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  "GET",
		Expires: s.now().Add(ttl),
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to sign object url")
	}
	return url, nil
}

func (s *GCS) Remove(ctx context.Context, path string) error {
	p, err := cleanPath(path)
	if err != nil {
		return err
	}
	if err := s.bucket.Object(p).Delete(ctx); err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return errs.Wrap(err, "failed to delete object")
	}
	return nil
}
