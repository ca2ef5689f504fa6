package collection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	domcol "github.com/kailas-cloud/vecdex-console/internal/domain/collection"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
)

// --- Mocks ---

type mockRepo struct {
	getResult  domcol.Collection
	listResult []domcol.Collection
	getErr     error
	listErr    error
	deleteErr  error
	deleted    []string
}

func (m *mockRepo) Get(_ context.Context, _ string) (domcol.Collection, error) {
	return m.getResult, m.getErr
}

func (m *mockRepo) List(_ context.Context) ([]domcol.Collection, error) {
	return m.listResult, m.listErr
}

func (m *mockRepo) Delete(_ context.Context, name string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, name)
	return nil
}

func newController(t *testing.T) *dialog.Controller {
	t.Helper()
	reg, err := dialog.NewRegistry(nil)
	if err != nil {
		t.Fatalf("dialog.NewRegistry: %v", err)
	}
	return dialog.New(reg, nil)
}

func await(t *testing.T, f *dialog.Future) (any, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return f.Await(ctx)
}

func testCollection(docs int) domcol.Collection {
	return domcol.Reconstruct("products", domcol.TypeText, nil, 1024, 1, 1).
		WithIndex(domcol.Stats{NumDocs: docs}, nil)
}

// --- Tests ---

func TestGet_InvalidName(t *testing.T) {
	svc := New(&mockRepo{}, newController(t), nil)
	if _, err := svc.Get(context.Background(), "a:b"); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := New(&mockRepo{getErr: domain.ErrNotFound}, newController(t), nil)
	if _, err := svc.Get(context.Background(), "products"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	repo := &mockRepo{listResult: []domcol.Collection{testCollection(1)}}
	svc := New(repo, newController(t), nil)
	cols, err := svc.List(context.Background())
	if err != nil || len(cols) != 1 {
		t.Fatalf("List: %v %v", cols, err)
	}

	repo.listErr = errors.New("scan failed")
	if _, err := svc.List(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestRequestDelete_Confirmed(t *testing.T) {
	repo := &mockRepo{getResult: testCollection(42)}
	ctrl := newController(t)
	svc := New(repo, ctrl, nil)

	future, err := svc.RequestDelete(context.Background(), "products")
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}

	state := ctrl.State()
	if !state.Open || state.Variant != dialog.Danger {
		t.Fatalf("expected open danger prompt, got %+v", state)
	}
	if state.Description != "42 documents will no longer be searchable. This cannot be undone." {
		t.Errorf("unexpected description %q", state.Description)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("nothing may be deleted before confirmation")
	}

	if err := ctrl.Submit(context.Background(), state.ID, nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	v, err := await(t, future)
	if err != nil || v != "products" {
		t.Fatalf("expected resolved name, got %v / %v", v, err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "products" {
		t.Errorf("expected collection deleted, got %v", repo.deleted)
	}
}

func TestRequestDelete_Canceled(t *testing.T) {
	repo := &mockRepo{getResult: testCollection(0)}
	ctrl := newController(t)
	svc := New(repo, ctrl, nil)

	future, err := svc.RequestDelete(context.Background(), "products")
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	if err := ctrl.Cancel(ctrl.State().ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := await(t, future); !errors.Is(err, dialog.ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("canceled prompt must not delete")
	}
}

func TestRequestDelete_FailureKeepsPromptOpen(t *testing.T) {
	repo := &mockRepo{getResult: testCollection(3), deleteErr: errors.New("busy")}
	ctrl := newController(t)
	svc := New(repo, ctrl, nil)

	future, err := svc.RequestDelete(context.Background(), "products")
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	id := ctrl.State().ID
	if err := ctrl.Submit(context.Background(), id, nil); err == nil {
		t.Fatal("expected submit error")
	}

	state := ctrl.State()
	if !state.Open || state.ID != id {
		t.Fatal("expected prompt to stay open after a failed delete")
	}
	if state.Error == "" {
		t.Error("expected error shown in the prompt")
	}
	select {
	case <-future.Done():
		t.Fatal("future must stay pending while the prompt is open")
	default:
	}

	repo.deleteErr = nil
	if err := ctrl.Submit(context.Background(), id, nil); err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if _, err := await(t, future); err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
}

func TestRequestDelete_UnknownCollection(t *testing.T) {
	ctrl := newController(t)
	svc := New(&mockRepo{getErr: domain.ErrNotFound}, ctrl, nil)

	if _, err := svc.RequestDelete(context.Background(), "products"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if ctrl.State().Open {
		t.Error("no prompt may open for a missing collection")
	}
}
