// Package document reads, rewrites and removes single documents of a collection.
//
// Documents are hashes under {prefix}{collection}:{id}. The embedding lives in
// the __vector field and is never exposed or edited here.
package document

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	domdoc "github.com/kailas-cloud/vecdex-console/internal/domain/document"
)

// store is the consumer interface for documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Repo implements usecase/document.Repository.
type Repo struct {
	store store
	keys  domain.Keys
}

// New creates a document repository.
func New(s store, keys domain.Keys) *Repo {
	return &Repo{store: s, keys: keys}
}

// Get retrieves a document by ID.
func (r *Repo) Get(ctx context.Context, collection, id string) (domdoc.Document, error) {
	key := r.keys.DocKey(collection, id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return domdoc.Document{}, domain.ErrNotFound
	}
	return domdoc.FromHash(id, m), nil
}

// Replace overwrites the content and metadata of an existing document.
// Fields missing from doc are removed; the stored embedding is kept.
func (r *Repo) Replace(ctx context.Context, collection string, doc domdoc.Document) error {
	key := r.keys.DocKey(collection, doc.ID())
	current, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(current) == 0 {
		return domain.ErrNotFound
	}

	fields := doc.Hash()
	if vec, ok := current[domdoc.FieldVector]; ok {
		fields[domdoc.FieldVector] = vec
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Delete removes a document.
func (r *Repo) Delete(ctx context.Context, collection, id string) error {
	key := r.keys.DocKey(collection, id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}
