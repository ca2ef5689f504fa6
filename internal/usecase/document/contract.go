package document

import (
	"context"

	domcol "github.com/kailas-cloud/vecdex-console/internal/domain/collection"
	domdoc "github.com/kailas-cloud/vecdex-console/internal/domain/document"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Get(ctx context.Context, collection, id string) (domdoc.Document, error)
	Replace(ctx context.Context, collection string, doc domdoc.Document) error
	Delete(ctx context.Context, collection, id string) error
}

// CollectionReader resolves the collection a document belongs to.
type CollectionReader interface {
	Get(ctx context.Context, name string) (domcol.Collection, error)
}

// Prompter asks the operator to edit or confirm.
type Prompter interface {
	Prompt(opts dialog.Options) (*dialog.Future, error)
}
