package document

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	domdoc "github.com/kailas-cloud/vecdex-console/internal/domain/document"
	"github.com/kailas-cloud/vecdex-console/internal/domain/view"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
)

// EditorKind is the element kind of the JSON editor shown in edit prompts.
const EditorKind = "json-editor"

// Service opens documents of a collection for inspection, editing and removal.
type Service struct {
	repo     Repository
	colls    CollectionReader
	prompter Prompter
	logger   *zap.Logger
}

// New creates a document service.
func New(repo Repository, colls CollectionReader, prompter Prompter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, colls: colls, prompter: prompter, logger: logger}
}

// Get retrieves a document of collection.
func (s *Service) Get(ctx context.Context, collection, id string) (domdoc.Document, error) {
	if err := s.check(ctx, collection, id); err != nil {
		return domdoc.Document{}, err
	}
	doc, err := s.repo.Get(ctx, collection, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// RequestEdit opens a danger prompt with the document as JSON in an editor.
// Edits are validated as JSON while typing; submitting replaces the stored
// content and metadata. Submitting without edits leaves the document as is.
// The Future resolves with the stored document, or nil when dismissed.
func (s *Service) RequestEdit(ctx context.Context, collection, id string) (*dialog.Future, error) {
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	text, err := doc.MarshalEditable()
	if err != nil {
		return nil, err
	}

	future, err := s.prompter.Prompt(dialog.Options{
		Variant:     dialog.Danger,
		Title:       fmt.Sprintf("Edit %s/%s", collection, id),
		Description: "The embedding is not recomputed.",
		Content:     view.El(EditorKind, map[string]any{"value": text, "language": "json"}),
		Validate:    dialog.ValidJSON,
		OnSubmit: func(ctx context.Context, value any) (any, error) {
			if value == nil {
				return doc, nil
			}
			data, err := editedBytes(value)
			if err != nil {
				return nil, err
			}
			edited, err := domdoc.ParseEditable(id, data)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err)
			}
			if err := s.repo.Replace(ctx, collection, edited); err != nil {
				return nil, fmt.Errorf("replace document: %w", err)
			}
			s.logger.Info("Document updated",
				zap.String("collection", collection),
				zap.String("document", id),
			)
			return edited, nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("prompt edit: %w", err)
	}
	return future, nil
}

// RequestDelete opens a danger prompt for removing a document. The Future
// resolves with the id, or rejects with dialog.ErrCanceled.
func (s *Service) RequestDelete(ctx context.Context, collection, id string) (*dialog.Future, error) {
	if _, err := s.Get(ctx, collection, id); err != nil {
		return nil, err
	}

	future, err := s.prompter.Prompt(dialog.Options{
		Variant:       dialog.Danger,
		Title:         fmt.Sprintf("Delete document %s?", id),
		Description:   fmt.Sprintf("The document will be removed from %s. This cannot be undone.", collection),
		CatchOnCancel: true,
		OnSubmit: func(ctx context.Context, _ any) (any, error) {
			if err := s.repo.Delete(ctx, collection, id); err != nil {
				return nil, fmt.Errorf("delete document: %w", err)
			}
			s.logger.Info("Document deleted",
				zap.String("collection", collection),
				zap.String("document", id),
			)
			return id, nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("prompt delete: %w", err)
	}
	return future, nil
}

func (s *Service) check(ctx context.Context, collection, id string) error {
	if err := domdoc.ValidateID(id); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err)
	}
	if _, err := s.colls.Get(ctx, collection); err != nil {
		return err
	}
	return nil
}

func editedBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: expected JSON text, got %T", domain.ErrInvalidDocument, value)
	}
}
