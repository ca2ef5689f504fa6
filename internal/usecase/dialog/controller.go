// Package dialog implements the process-wide prompt controller.
//
// The controller is a two-state machine: Idle, or Open with exactly one session.
// Prompt returns a Future that settles when the session ends:
//
//	accept          -> resolves with the accepted value
//	close, catch    -> rejects with ErrCanceled
//	close, no catch -> resolves with nil, Dismissed() == true
//	new prompt      -> rejects with ErrSuperseded
//
// A Future never stays pending after its session is gone.
package dialog

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain/slot"
)

// Outcome labels for the dialog outcome counter.
const (
	OutcomeAccepted   = "accepted"
	OutcomeCanceled   = "canceled"
	OutcomeDismissed  = "dismissed"
	OutcomeSuperseded = "superseded"
)

type session struct {
	id             string
	opts           Options
	slots          slot.Set[SlotKey]
	props          slot.PropsSet[SlotKey]
	submitDisabled bool
	submitting     bool
	draft          any
	err            string
	future         *Future
}

// Controller owns the single dialog session.
type Controller struct {
	mu       sync.Mutex
	registry *slot.Registry[SlotKey]
	current  *session
	outcomes *prometheus.CounterVec
	logger   *zap.Logger
}

// New creates a controller rendering through registry.
func New(registry *slot.Registry[SlotKey], logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{registry: registry, logger: logger}
}

// WithMetrics sets the outcome counter (labels: variant, outcome).
func (c *Controller) WithMetrics(outcomes *prometheus.CounterVec) *Controller {
	c.outcomes = outcomes
	return c
}

// Prompt opens a session and returns its Future. Slot configuration errors are
// returned before any state changes. An open session is superseded.
func (c *Controller) Prompt(opts Options) (*Future, error) {
	if opts.Variant == "" {
		opts.Variant = Danger
	}
	if !opts.Variant.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, opts.Variant)
	}
	slots, err := c.registry.Resolve(opts.Slots)
	if err != nil {
		return nil, fmt.Errorf("resolve dialog slots: %w", err)
	}
	if err := c.registry.ValidateProps(opts.SlotProps); err != nil {
		return nil, fmt.Errorf("dialog slot props: %w", err)
	}

	s := &session{
		id:     uuid.Must(uuid.NewV7()).String(),
		opts:   opts,
		slots:  slots,
		props:  slot.MergePropsSet(nil, opts.SlotProps),
		future: newFuture(),
	}

	c.mu.Lock()
	prev := c.current
	c.current = s
	c.mu.Unlock()

	if prev != nil {
		c.finish(prev, nil, ErrSuperseded, false, OutcomeSuperseded)
	}
	c.logger.Debug("dialog opened",
		zap.String("session_id", s.id),
		zap.String("variant", string(opts.Variant)),
		zap.String("title", opts.Title),
	)
	return s.future, nil
}

// Accept resolves the open prompt with value and returns to Idle.
func (c *Controller) Accept(value any) error {
	return c.AcceptSession("", value)
}

// AcceptSession is Accept addressed to a session id; "" means the open session.
func (c *Controller) AcceptSession(id string, value any) error {
	s, err := c.take(id)
	if err != nil {
		return err
	}
	c.finish(s, value, nil, false, OutcomeAccepted)
	return nil
}

// Close ends the open prompt without a value and returns to Idle.
func (c *Controller) Close() error {
	return c.CloseSession("")
}

// CloseSession is Close addressed to a session id; "" means the open session.
func (c *Controller) CloseSession(id string) error {
	s, err := c.take(id)
	if err != nil {
		return err
	}
	if s.opts.CatchOnCancel {
		c.finish(s, nil, ErrCanceled, false, OutcomeCanceled)
	} else {
		c.finish(s, nil, nil, true, OutcomeDismissed)
	}
	return nil
}

// Cancel is what the cancel control does: run OnCancel, then Close.
func (c *Controller) Cancel(id string) error {
	c.mu.Lock()
	s, err := c.lookup(id)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	if s.opts.OnCancel != nil {
		s.opts.OnCancel()
	}
	return c.CloseSession(s.id)
}

// Submit is what the submit control does. Without OnSubmit it accepts value
// directly. With OnSubmit the callback runs outside the lock; success accepts
// its result, failure keeps the dialog open with the error shown. A nil value
// submits the last edited draft.
func (c *Controller) Submit(ctx context.Context, id string, value any) error {
	c.mu.Lock()
	s, err := c.lookup(id)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if s.submitDisabled || s.submitting {
		c.mu.Unlock()
		return ErrSubmitDisabled
	}
	if value == nil {
		value = s.draft
	}
	if s.opts.OnSubmit == nil {
		c.current = nil
		c.mu.Unlock()
		c.finish(s, value, nil, false, OutcomeAccepted)
		return nil
	}
	s.submitting = true
	s.err = ""
	c.mu.Unlock()

	res, submitErr := s.opts.OnSubmit(ctx, value)

	c.mu.Lock()
	if c.current != s {
		c.mu.Unlock()
		if submitErr != nil {
			return fmt.Errorf("submit: %w", submitErr)
		}
		return ErrStaleSession
	}
	s.submitting = false
	if submitErr != nil {
		s.err = submitErr.Error()
		c.mu.Unlock()
		c.logger.Warn("Failed to submit dialog", zap.String("session_id", s.id), zap.Error(submitErr))
		return fmt.Errorf("submit: %w", submitErr)
	}
	c.current = nil
	c.mu.Unlock()
	c.finish(s, res, nil, false, OutcomeAccepted)
	return nil
}

// Edit stores an edited value for the open session and runs Validate.
// A validation failure disables submit and is reported in the view, not returned.
func (c *Controller) Edit(id string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.lookup(id)
	if err != nil {
		return err
	}
	s.draft = value
	if s.opts.Validate == nil {
		return nil
	}
	if verr := s.opts.Validate(value); verr != nil {
		s.submitDisabled = true
		s.err = verr.Error()
		return nil
	}
	s.submitDisabled = false
	s.err = ""
	return nil
}

// SetDisabled toggles the submit control. Ignored while Idle.
func (c *Controller) SetDisabled(disabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current.submitDisabled = disabled
	}
}

// UpdateSlotProps merges patch into the open session's slot props. Ignored while Idle.
func (c *Controller) UpdateSlotProps(patch slot.PropsSet[SlotKey]) error {
	if err := c.registry.ValidateProps(patch); err != nil {
		return fmt.Errorf("dialog slot props: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current.props = slot.MergePropsSet(c.current.props, patch)
	}
	return nil
}

// take removes the addressed session under the lock.
func (c *Controller) take(id string) (*session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	c.current = nil
	return s, nil
}

// lookup must be called with c.mu held.
func (c *Controller) lookup(id string) (*session, error) {
	if c.current == nil {
		return nil, ErrIdle
	}
	if id != "" && c.current.id != id {
		return nil, ErrStaleSession
	}
	return c.current, nil
}

func (c *Controller) finish(s *session, value any, err error, dismissed bool, outcome string) {
	if !s.future.settle(value, err, dismissed) {
		return
	}
	if c.outcomes != nil {
		c.outcomes.WithLabelValues(string(s.opts.Variant), outcome).Inc()
	}
	c.logger.Debug("dialog closed",
		zap.String("session_id", s.id),
		zap.String("outcome", outcome),
	)
}
