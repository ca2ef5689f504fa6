package dialog

import (
	"github.com/kailas-cloud/vecdex-console/internal/domain/slot"
	"github.com/kailas-cloud/vecdex-console/internal/domain/view"
)

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	Open           bool                   `json:"open"`
	ID             string                 `json:"id,omitempty"`
	Variant        Variant                `json:"variant,omitempty"`
	Title          string                 `json:"title,omitempty"`
	Description    string                 `json:"description,omitempty"`
	CatchOnCancel  bool                   `json:"catch_on_cancel,omitempty"`
	SubmitDisabled bool                   `json:"submit_disabled,omitempty"`
	Submitting     bool                   `json:"submitting,omitempty"`
	Error          string                 `json:"error,omitempty"`
	SlotProps      slot.PropsSet[SlotKey] `json:"slot_props,omitempty"`
}

// State returns the current state. A zero Snapshot means Idle.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.current
	if s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Open:           true,
		ID:             s.id,
		Variant:        s.opts.Variant,
		Title:          s.opts.Title,
		Description:    s.opts.Description,
		CatchOnCancel:  s.opts.CatchOnCancel,
		SubmitDisabled: s.submitDisabled,
		Submitting:     s.submitting,
		Error:          s.err,
		SlotProps:      slot.MergePropsSet(nil, s.props),
	}
}

// Render builds the view of the open session. ok is false while Idle.
//
// Layout: dialog{ title?, content{ description?, content, error? }, actions{ cancel?, submit } }.
// The cancel control is rendered for the danger variant only.
func (c *Controller) Render() (node view.Node, ok bool) {
	c.mu.Lock()
	s := c.current
	if s == nil {
		c.mu.Unlock()
		return view.Node{}, false
	}
	st := renderState{
		id:         s.id,
		opts:       s.opts,
		slots:      s.slots,
		props:      slot.MergePropsSet(nil, s.props),
		disabled:   s.submitDisabled,
		submitting: s.submitting,
		err:        s.err,
	}
	c.mu.Unlock()

	return st.render(), true
}

type renderState struct {
	id         string
	opts       Options
	slots      slot.Set[SlotKey]
	props      slot.PropsSet[SlotKey]
	disabled   bool
	submitting bool
	err        string
}

func (st renderState) render() view.Node {
	var title view.Node
	if st.opts.Title != "" {
		title = st.slots[SlotTitle](st.props[SlotTitle], view.Text(st.opts.Title))
	}

	var description view.Node
	if st.opts.Description != "" {
		description = st.slots[SlotDescription](st.props[SlotDescription], view.Text(st.opts.Description))
	}

	var errNode view.Node
	if st.err != "" {
		errNode = view.El("dialog-error", nil, view.Text(st.err))
	}

	content := st.slots[SlotContent](st.props[SlotContent], description, st.opts.Content, errNode)
	actions := st.slots[SlotActions](st.props[SlotActions], st.actions()...)

	dialogProps := slot.MergeProps(slot.Props{
		"session_id": st.id,
		"variant":    string(st.opts.Variant),
	}, st.props[SlotDialog])
	return st.slots[SlotDialog](dialogProps, title, content, actions)
}

func (st renderState) actions() []view.Node {
	submitLabel := "OK"
	if st.opts.Variant == Danger {
		submitLabel = "Confirm"
	}
	submitProps := slot.MergeProps(slot.Props{
		"action":  "submit",
		"label":   submitLabel,
		"variant": string(st.opts.Variant),
	}, st.props[SlotSubmit])
	if st.disabled || st.submitting {
		submitProps["disabled"] = true
	}
	submitProps["loading"] = st.submitting
	submit := st.slots[SlotSubmit](submitProps, view.Text(submitProps.String("label")))

	if st.opts.Variant != Danger {
		return []view.Node{submit}
	}
	cancelProps := slot.MergeProps(slot.Props{
		"action": "cancel",
		"label":  "Cancel",
	}, st.props[SlotCancel])
	cancel := st.slots[SlotCancel](cancelProps, view.Text(cancelProps.String("label")))
	return []view.Node{cancel, submit}
}
