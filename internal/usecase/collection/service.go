package collection

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	domcol "github.com/kailas-cloud/vecdex-console/internal/domain/collection"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
)

// Service handles collection browsing and confirmed removal.
type Service struct {
	repo     Repository
	prompter Prompter
	logger   *zap.Logger
}

// New creates a collection service.
func New(repo Repository, prompter Prompter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, prompter: prompter, logger: logger}
}

// Get retrieves a collection by name.
func (s *Service) Get(ctx context.Context, name string) (domcol.Collection, error) {
	if err := domcol.ValidateName(name); err != nil {
		return domcol.Collection{}, fmt.Errorf("%w: %w", domain.ErrInvalidName, err)
	}
	col, err := s.repo.Get(ctx, name)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	return col, nil
}

// List returns all collections.
func (s *Service) List(ctx context.Context) ([]domcol.Collection, error) {
	cols, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return cols, nil
}

// RequestDelete opens a danger prompt for removing name. The collection is
// removed when the prompt is submitted; a failed removal keeps the prompt
// open with the error shown. The Future resolves with the collection name, or
// rejects with dialog.ErrCanceled when the operator backs out.
func (s *Service) RequestDelete(ctx context.Context, name string) (*dialog.Future, error) {
	col, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	future, err := s.prompter.Prompt(dialog.Options{
		Variant:       dialog.Danger,
		Title:         fmt.Sprintf("Delete collection %s?", name),
		Description:   describeDelete(col),
		CatchOnCancel: true,
		OnSubmit: func(ctx context.Context, _ any) (any, error) {
			if err := s.repo.Delete(ctx, name); err != nil {
				return nil, fmt.Errorf("delete collection: %w", err)
			}
			s.logger.Info("Collection deleted", zap.String("collection", name))
			return name, nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("prompt delete: %w", err)
	}
	return future, nil
}

func describeDelete(col domcol.Collection) string {
	n := col.Stats().NumDocs
	switch n {
	case 0:
		return "The index will be dropped. This cannot be undone."
	case 1:
		return "1 document will no longer be searchable. This cannot be undone."
	default:
		return fmt.Sprintf("%d documents will no longer be searchable. This cannot be undone.", n)
	}
}
