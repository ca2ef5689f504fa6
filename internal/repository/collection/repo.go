// Package collection reads and removes vecdex collections.
//
// Key layout: {prefix}collection:{name} (metadata hash), {prefix}{name}:idx (FT index).
package collection

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kailas-cloud/vecdex-console/internal/db"
	"github.com/kailas-cloud/vecdex-console/internal/domain"
	domcol "github.com/kailas-cloud/vecdex-console/internal/domain/collection"
	"github.com/kailas-cloud/vecdex-console/internal/domain/collection/field"
)

// store is the consumer interface for collections (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
	DropIndex(ctx context.Context, name string) error
	IndexInfo(ctx context.Context, name string) (*db.IndexInfo, error)
}

// Repo implements usecase/collection.Repository.
type Repo struct {
	store            store
	keys             domain.Keys
	defaultVectorDim int
}

// New creates a collection repository.
func New(s store, keys domain.Keys, defaultVectorDim int) *Repo {
	return &Repo{store: s, keys: keys, defaultVectorDim: defaultVectorDim}
}

// Get retrieves a collection by name with its index statistics.
func (r *Repo) Get(ctx context.Context, name string) (domcol.Collection, error) {
	m, err := r.store.HGetAll(ctx, r.keys.Meta(name))
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("hgetall collection %s: %w", name, err)
	}
	if len(m) == 0 {
		return domcol.Collection{}, domain.ErrNotFound
	}

	col, err := collectionFromHash(m, r.defaultVectorDim)
	if err != nil {
		return domcol.Collection{}, err
	}
	return r.withIndex(ctx, col)
}

// List returns all collections sorted by CreatedAt.
func (r *Repo) List(ctx context.Context) ([]domcol.Collection, error) {
	keys, err := r.store.Scan(ctx, r.keys.Meta("*"))
	if err != nil {
		return nil, fmt.Errorf("scan collections: %w", err)
	}
	if len(keys) == 0 {
		return []domcol.Collection{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi collections: %w", err)
	}

	collections := make([]domcol.Collection, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		col, err := collectionFromHash(m, r.defaultVectorDim)
		if err != nil {
			return nil, fmt.Errorf("parse collection %s: %w", keys[i], err)
		}
		if col, err = r.withIndex(ctx, col); err != nil {
			return nil, err
		}
		collections = append(collections, col)
	}

	sort.Slice(collections, func(i, j int) bool {
		return collections[i].CreatedAt() < collections[j].CreatedAt()
	})

	return collections, nil
}

// Delete removes a collection: backup metadata, DEL hash, FT.DROPINDEX (rollback HSET on error).
// Documents stay in the keyspace; vecdex removes them lazily.
func (r *Repo) Delete(ctx context.Context, name string) error {
	metaKey := r.keys.Meta(name)

	metaBackup, err := r.store.HGetAll(ctx, metaKey)
	if err != nil {
		return fmt.Errorf("hgetall collection %s: %w", name, err)
	}
	if len(metaBackup) == 0 {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, metaKey); err != nil {
		return fmt.Errorf("del collection %s: %w", name, err)
	}

	// FT.DROPINDEX, rolling back the HSET on error. A missing index is already the goal state.
	err = r.store.DropIndex(ctx, r.keys.Index(name))
	if err != nil && !errors.Is(err, db.ErrIndexNotFound) {
		cleanupErr := r.store.HSet(ctx, metaKey, metaBackup)
		return errors.Join(fmt.Errorf("drop index %s: %w", name, err), cleanupErr)
	}

	return nil
}

// withIndex attaches FT.INFO statistics. A collection whose index is gone is
// returned with zero stats.
func (r *Repo) withIndex(ctx context.Context, col domcol.Collection) (domcol.Collection, error) {
	info, err := r.store.IndexInfo(ctx, r.keys.Index(col.Name()))
	if errors.Is(err, db.ErrIndexNotFound) {
		return col, nil
	}
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("index info %s: %w", col.Name(), err)
	}

	attrs := make([]field.Field, 0, len(info.Attributes))
	for _, a := range info.Attributes {
		ft, err := field.FromIndexType(a.Type)
		if err != nil {
			continue
		}
		attrs = append(attrs, field.Reconstruct(a.Name, ft))
	}
	return col.WithIndex(domcol.Stats{NumDocs: info.NumDocs, Indexing: info.Indexing}, attrs), nil
}
