//go:build unit

package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"dealer-contracts/internal/domain/contract"
	"dealer-contracts/internal/infra/storage"
	"dealer-contracts/internal/pkg/errs"
)

// Blobs is a BlobStorage kept in a map.
type Blobs struct {
	mu    sync.Mutex
	items map[string][]byte

	FailPut    error
	FailGet    error
	FailRemove error
}

func NewBlobs() *Blobs {
	return &Blobs{items: map[string][]byte{}}
}

func (b *Blobs) Put(_ context.Context, path string, data []byte, _ string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailPut != nil {
		return "", b.FailPut
	}
	b.items[path] = append([]byte(nil), data...)
	return "mem://" + path, nil
}

func (b *Blobs) Get(_ context.Context, path string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailGet != nil {
		return nil, b.FailGet
	}
	data, ok := b.items[path]
	if !ok {
		return nil, errs.Wrap(storage.ErrObjectNotFound, path)
	}
	return data, nil
}

func (b *Blobs) URL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "mem://" + path, nil
}

func (b *Blobs) Remove(_ context.Context, path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailRemove != nil {
		return b.FailRemove
	}
	delete(b.items, path)
	return nil
}

// Paths lists stored paths in order.
func (b *Blobs) Paths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.items))
	for p := range b.items {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (b *Blobs) Has(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.items[path]
	return ok
}

// Materializer returns a fixed PDF-looking payload and records the documents
// it was given.
type Materializer struct {
	mu   sync.Mutex
	docs []*contract.Document
	Fail error
}

var FakePDF = []byte("%PDF-1.7\n%fake\n")

func (m *Materializer) Materialize(_ context.Context, doc *contract.Document) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	m.docs = append(m.docs, doc)
	return append([]byte(nil), FakePDF...), nil
}

func (m *Materializer) Documents() []*contract.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*contract.Document(nil), m.docs...)
}
