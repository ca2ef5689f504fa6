package presetsync

import (
	"context"

	"github.com/kailas-cloud/vecdex-console/internal/domain/preset"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
)

// Repository defines the storage contract for presets.
type Repository interface {
	Save(ctx context.Context, p preset.Preset) error
	Get(ctx context.Context, name string) (preset.Preset, error)
	List(ctx context.Context) ([]preset.Preset, error)
	Delete(ctx context.Context, name string) error
}

// ParamStore is the search state presets read from and write to.
type ParamStore interface {
	Params() params.Params
	UpdateParams(fn func(params.Params) params.Params) error
}
