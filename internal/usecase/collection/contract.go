package collection

import (
	"context"

	domcol "github.com/kailas-cloud/vecdex-console/internal/domain/collection"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
)

// Repository defines the storage contract for collections.
type Repository interface {
	Get(ctx context.Context, name string) (domcol.Collection, error)
	List(ctx context.Context) ([]domcol.Collection, error)
	Delete(ctx context.Context, name string) error
}

// Prompter asks the operator for confirmation.
type Prompter interface {
	Prompt(opts dialog.Options) (*dialog.Future, error)
}
