package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dealer-contracts/internal/pkg/errs"
)

// Local keeps blobs on disk. It backs development and single-node
// deployments; the router serves PublicBaseURL from the same directory.
type Local struct {
	root    string
	baseURL string
}

func NewLocal(root, publicBaseURL string) (*Local, error) {
	if root == "" {
		return nil, ErrLocalDirRequired
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, errs.Wrap(err, "failed to create storage directory")
	}
	return &Local{
		root:    root,
		baseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

func (s *Local) Root() string {
	return s.root
}

func (s *Local) Put(ctx context.Context, path string, data []byte, _ string) (string, error) {
	p, err := cleanPath(path)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full := filepath.Join(s.root, filepath.FromSlash(p))
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return "", errs.Wrap(err, "failed to create object directory")
	}

	// Write to a temp file first so readers never see a partial object.
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return "", errs.Wrap(err, "failed to create temp object")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", errs.Wrap(err, "failed to write object")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", errs.Wrap(err, "failed to close object")
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		_ = os.Remove(tmp.Name())
		return "", errs.Wrap(err, "failed to move object into place")
	}

	return s.baseURL + "/" + p, nil
}

func (s *Local) Get(ctx context.Context, path string) ([]byte, error) {
	p, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(p)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Mark(err, ErrObjectNotFound)
		}
		return nil, errs.Wrap(err, "failed to read object")
	}
	return data, nil
}

func (s *Local) URL(_ context.Context, path string, _ time.Duration) (string, error) {
	p, err := cleanPath(path)
	if err != nil {
		return "", err
	}
	return s.baseURL + "/" + p, nil
}

// Remove succeeds when the object is already gone.
func (s *Local) Remove(ctx context.Context, path string) error {
	p, err := cleanPath(path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.root, filepath.FromSlash(p)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.Wrap(err, "failed to remove object")
	}
	return nil
}
