package dialog

import (
	"fmt"

	"github.com/kailas-cloud/vecdex-console/internal/domain/slot"
	"github.com/kailas-cloud/vecdex-console/internal/domain/view"
)

// SlotKey names a dialog slot.
type SlotKey string

// Dialog slots.
const (
	SlotDialog      SlotKey = "dialog"
	SlotTitle       SlotKey = "title"
	SlotContent     SlotKey = "content"
	SlotDescription SlotKey = "description"
	SlotActions     SlotKey = "actions"
	SlotCancel      SlotKey = "cancel"
	SlotSubmit      SlotKey = "submit"
)

func element(kind string) slot.Component {
	return func(p slot.Props, children ...view.Node) view.Node {
		return view.El(kind, p, children...)
	}
}

// DefaultSlots returns the default dialog components.
func DefaultSlots() slot.Set[SlotKey] {
	return slot.Set[SlotKey]{
		SlotDialog:      element("dialog"),
		SlotTitle:       element("dialog-title"),
		SlotContent:     element("dialog-content"),
		SlotDescription: element("dialog-description"),
		SlotActions:     element("dialog-actions"),
		SlotCancel:      element("button"),
		SlotSubmit:      element("button"),
	}
}

// NewRegistry builds the process-wide dialog registry from DefaultSlots with
// components replaced. A nil component is a configuration error.
func NewRegistry(components slot.Set[SlotKey]) (*slot.Registry[SlotKey], error) {
	defaults := DefaultSlots()
	for k, c := range components {
		if _, known := defaults[k]; !known {
			return nil, fmt.Errorf("%w: %q", slot.ErrUnknownSlot, k)
		}
		defaults[k] = c
	}
	reg, err := slot.NewRegistry(defaults, SlotDialog)
	if err != nil {
		return nil, fmt.Errorf("dialog registry: %w", err)
	}
	return reg, nil
}
