package query

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	"github.com/kailas-cloud/vecdex-console/internal/domain/collection"
	"github.com/kailas-cloud/vecdex-console/internal/domain/slot"
	"github.com/kailas-cloud/vecdex-console/internal/domain/view"
)

// Surface is one open search view: a store plus its slot customization.
type Surface struct {
	id    string
	store *Store

	mu    sync.Mutex
	slots slot.Set[SlotKey]
	props slot.PropsSet[SlotKey]
	reg   *slot.Registry[SlotKey]
}

// ID returns the surface id.
func (s *Surface) ID() string { return s.id }

// Store returns the surface's search state.
func (s *Surface) Store() *Store { return s.store }

// SlotProps returns a copy of the surface's slot props.
func (s *Surface) SlotProps() slot.PropsSet[SlotKey] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slot.MergePropsSet(nil, s.props)
}

// UpdateSlotProps deep-merges patch into the surface's slot props.
func (s *Surface) UpdateSlotProps(patch slot.PropsSet[SlotKey]) error {
	if err := s.reg.ValidateProps(patch); err != nil {
		return fmt.Errorf("search slot props: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props = slot.MergePropsSet(s.props, patch)
	return nil
}

// Render builds the current result view.
func (s *Surface) Render() view.Node {
	snap := s.store.Snapshot()
	s.mu.Lock()
	slots, props := s.slots, slot.MergePropsSet(nil, s.props)
	s.mu.Unlock()
	node := Render(slots, props, snap)
	node.Props["surface_id"] = s.id
	return node
}

// StoreFactory builds the store for a new surface.
type StoreFactory func(collection string) *Store

// Surfaces tracks open surfaces by id.
type Surfaces struct {
	registry *slot.Registry[SlotKey]
	newStore StoreFactory
	max      int
	open     prometheus.Gauge
	logger   *zap.Logger

	mu    sync.Mutex
	items map[string]*Surface
}

// NewSurfaces creates a registry of at most max surfaces (0 = unlimited).
func NewSurfaces(registry *slot.Registry[SlotKey], newStore StoreFactory, maxOpen int, logger *zap.Logger) *Surfaces {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Surfaces{
		registry: registry,
		newStore: newStore,
		max:      maxOpen,
		logger:   logger,
		items:    make(map[string]*Surface),
	}
}

// WithMetrics sets the open surfaces gauge.
func (r *Surfaces) WithMetrics(open prometheus.Gauge) *Surfaces {
	r.open = open
	return r
}

// Open creates a surface for collection. Slot overrides are resolved here, so
// a bad override fails before anything is allocated.
func (r *Surfaces) Open(collectionName string, overrides slot.Set[SlotKey], props slot.PropsSet[SlotKey]) (*Surface, error) {
	if err := collection.ValidateName(collectionName); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidName, err)
	}
	slots, err := r.registry.Resolve(overrides)
	if err != nil {
		return nil, fmt.Errorf("resolve search slots: %w", err)
	}
	if err := r.registry.ValidateProps(props); err != nil {
		return nil, fmt.Errorf("search slot props: %w", err)
	}

	r.mu.Lock()
	if r.max > 0 && len(r.items) >= r.max {
		r.mu.Unlock()
		return nil, fmt.Errorf("open surfaces: %w (max %d)", domain.ErrLimitReached, r.max)
	}
	s := &Surface{
		id:    uuid.Must(uuid.NewV7()).String(),
		store: r.newStore(collectionName),
		slots: slots,
		props: slot.MergePropsSet(nil, props),
		reg:   r.registry,
	}
	r.items[s.id] = s
	n := len(r.items)
	r.mu.Unlock()

	r.setGauge(n)
	r.logger.Debug("Surface opened", zap.String("surface_id", s.id), zap.String("collection", collectionName))
	return s, nil
}

// Get returns the surface with id.
func (r *Surfaces) Get(id string) (*Surface, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("surface %s: %w", id, domain.ErrNotFound)
	}
	return s, nil
}

// Close closes and forgets the surface with id.
func (r *Surfaces) Close(id string) error {
	r.mu.Lock()
	s, ok := r.items[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("surface %s: %w", id, domain.ErrNotFound)
	}
	delete(r.items, id)
	n := len(r.items)
	r.mu.Unlock()

	s.store.Close()
	r.setGauge(n)
	return nil
}

// CloseAll closes every surface.
func (r *Surfaces) CloseAll() {
	r.mu.Lock()
	items := r.items
	r.items = make(map[string]*Surface)
	r.mu.Unlock()

	for _, s := range items {
		s.store.Close()
	}
	r.setGauge(0)
}

// Len returns the number of open surfaces.
func (r *Surfaces) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *Surfaces) setGauge(n int) {
	if r.open != nil {
		r.open.Set(float64(n))
	}
}
