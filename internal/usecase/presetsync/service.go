// Package presetsync moves search parameters between a search store and
// persisted presets.
//
// The store's Preset parameter is the only record of which preset is active.
// The form state is derived from it, and changes flow one way through the
// explicit actions below, so a form edit and a store update never chase each other.
package presetsync

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	"github.com/kailas-cloud/vecdex-console/internal/domain/preset"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
)

// FormState is the preset selector as the form shows it.
type FormState struct {
	Preset string `json:"preset"`
}

// Form derives the selector state from the store.
func Form(store ParamStore) FormState {
	return FormState{Preset: store.Params().Preset}
}

// Service coordinates preset selection and persistence.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// New creates a preset service.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Select makes name the active preset. A stored preset's values are copied
// into the store; an unknown name only sets the reference, so the next Save
// creates it. An empty name clears the reference.
func (s *Service) Select(ctx context.Context, store ParamStore, name string) error {
	if name == "" {
		return store.UpdateParams(func(p params.Params) params.Params { return p.WithPreset("") })
	}
	if err := preset.ValidateName(name); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidName, err)
	}

	stored, err := s.repo.Get(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.logger.Debug("Selected new preset", zap.String("preset", name))
		return store.UpdateParams(func(p params.Params) params.Params { return p.WithPreset(name) })
	case err != nil:
		return fmt.Errorf("get preset: %w", err)
	}

	return store.UpdateParams(stored.Apply)
}

// Save persists the store's parameters under name and makes it the active preset.
func (s *Service) Save(ctx context.Context, store ParamStore, name string) (preset.Preset, error) {
	p, err := preset.FromParams(name, store.Params())
	if err != nil {
		return preset.Preset{}, fmt.Errorf("%w: %w", domain.ErrInvalidName, err)
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return preset.Preset{}, fmt.Errorf("save preset: %w", err)
	}
	if err := store.UpdateParams(func(cur params.Params) params.Params { return cur.WithPreset(name) }); err != nil {
		return preset.Preset{}, fmt.Errorf("activate preset: %w", err)
	}
	return p, nil
}

// List returns all presets.
func (s *Service) List(ctx context.Context) ([]preset.Preset, error) {
	presets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	return presets, nil
}

// Delete removes a preset. Stores that reference it keep their parameters.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	return nil
}

// EnsureQueryBy fills an empty query_by with fields. A query_by already set,
// by the user or a preset, is left alone.
func EnsureQueryBy(store ParamStore, fields []string) error {
	if len(fields) == 0 || len(store.Params().QueryBy) > 0 {
		return nil
	}
	return store.UpdateParams(func(p params.Params) params.Params {
		if len(p.QueryBy) > 0 {
			return p
		}
		out := p.Clone()
		out.QueryBy = append([]string(nil), fields...)
		return out
	})
}
