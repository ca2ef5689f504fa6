// Package preset persists search presets as hashes: {prefix}{name}.
package preset

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	dompreset "github.com/kailas-cloud/vecdex-console/internal/domain/preset"
)

// nameField holds the preset name so a preset without values still has a hash.
const nameField = "name"

// store is the consumer interface for presets (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/presetsync.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates a preset repository storing keys under prefix.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Save replaces the stored values of p.
func (r *Repo) Save(ctx context.Context, p dompreset.Preset) error {
	key := r.key(p.Name())
	fields := p.Values()
	fields[nameField] = p.Name()

	// DEL first so values dropped since the last save do not linger.
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del preset %s: %w", p.Name(), err)
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset preset %s: %w", p.Name(), err)
	}
	return nil
}

// Get retrieves a preset by name.
func (r *Repo) Get(ctx context.Context, name string) (dompreset.Preset, error) {
	m, err := r.store.HGetAll(ctx, r.key(name))
	if err != nil {
		return dompreset.Preset{}, fmt.Errorf("hgetall preset %s: %w", name, err)
	}
	if len(m) == 0 {
		return dompreset.Preset{}, domain.ErrNotFound
	}
	return fromHash(name, m), nil
}

// List returns all presets sorted by name.
func (r *Repo) List(ctx context.Context) ([]dompreset.Preset, error) {
	keys, err := r.store.Scan(ctx, r.key("*"))
	if err != nil {
		return nil, fmt.Errorf("scan presets: %w", err)
	}
	if len(keys) == 0 {
		return []dompreset.Preset{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi presets: %w", err)
	}

	presets := make([]dompreset.Preset, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		name := m[nameField]
		if name == "" {
			name = keys[i][len(r.prefix):]
		}
		presets = append(presets, fromHash(name, m))
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name() < presets[j].Name()
	})
	return presets, nil
}

// Delete removes a preset.
func (r *Repo) Delete(ctx context.Context, name string) error {
	key := r.key(name)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check preset exists: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del preset %s: %w", name, err)
	}
	return nil
}

func (r *Repo) key(name string) string {
	return r.prefix + name
}

func fromHash(name string, m map[string]string) dompreset.Preset {
	values := make(map[string]string, len(m))
	for k, v := range m {
		if k == nameField {
			continue
		}
		values[k] = v
	}
	return dompreset.Reconstruct(name, values)
}
