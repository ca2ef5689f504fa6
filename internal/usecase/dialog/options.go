package dialog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/vecdex-console/internal/domain/slot"
	"github.com/kailas-cloud/vecdex-console/internal/domain/view"
)

var (
	// ErrCanceled rejects a prompt closed with CatchOnCancel set.
	ErrCanceled = errors.New("dialog: canceled")
	// ErrSuperseded rejects a prompt replaced by a newer prompt.
	ErrSuperseded = errors.New("dialog: superseded by another prompt")
	// ErrIdle signals an operation that needs an open dialog.
	ErrIdle = errors.New("dialog: no open dialog")
	// ErrStaleSession signals an operation addressed to a session that is no longer live.
	ErrStaleSession = errors.New("dialog: stale session")
	// ErrSubmitDisabled signals a submit while the submit control is disabled.
	ErrSubmitDisabled = errors.New("dialog: submit disabled")
	// ErrInvalidVariant signals an unsupported variant.
	ErrInvalidVariant = errors.New("dialog: invalid variant")
)

// Variant selects the action layout.
type Variant string

const (
	// Danger asks for confirmation: cancel and submit controls.
	Danger Variant = "danger"
	// Info asks for acknowledgment: a single submit control.
	Info Variant = "info"
)

// IsValid reports whether v is a supported variant.
func (v Variant) IsValid() bool {
	return v == Danger || v == Info
}

// SubmitFunc runs when the submit control is used. Its result resolves the
// prompt; an error keeps the dialog open.
type SubmitFunc func(ctx context.Context, value any) (any, error)

// ValidateFunc checks an edited value; an error disables submit.
type ValidateFunc func(value any) error

// Options configure one prompt.
type Options struct {
	Variant       Variant
	Title         string
	Description   string
	Content       view.Node
	CatchOnCancel bool
	OnSubmit      SubmitFunc
	OnCancel      func()
	Validate      ValidateFunc
	Slots         slot.Set[SlotKey]
	SlotProps     slot.PropsSet[SlotKey]
}

// ValidJSON accepts a string or []byte holding valid JSON.
func ValidJSON(value any) error {
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	default:
		return fmt.Errorf("expected JSON text, got %T", value)
	}
	if !json.Valid(data) {
		return errors.New("invalid JSON")
	}
	return nil
}
