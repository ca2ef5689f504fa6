// Package slot implements named, per-call-site overridable view extension points.
//
// A slot family is a closed set of keys (a string type K). Each key resolves to a
// Component; props for every key are kept separately so a caller can patch the
// props of a slot without replacing its component.
//
// Props merge structurally: nested objects merge key by key, lists are replaced
// wholesale, scalars are replaced.
package slot

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/kailas-cloud/vecdex-console/internal/domain/view"
)

var (
	// ErrMissingSlot signals a required slot without a component.
	ErrMissingSlot = errors.New("slot: missing required slot")
	// ErrUnknownSlot signals an override for a key outside the family.
	ErrUnknownSlot = errors.New("slot: unknown slot")
)

// Props holds the props of a single slot.
type Props map[string]any

// Component renders a slot from its props and children.
type Component func(props Props, children ...view.Node) view.Node

// Set maps slot keys to components.
type Set[K ~string] map[K]Component

// PropsSet maps slot keys to props.
type PropsSet[K ~string] map[K]Props

// Registry is the default component set of one slot family.
type Registry[K ~string] struct {
	defaults Set[K]
	required map[K]struct{}
}

// NewRegistry creates a registry. The key set of defaults is the closed key set
// of the family; every required key must have a default.
func NewRegistry[K ~string](defaults Set[K], required ...K) (*Registry[K], error) {
	req := make(map[K]struct{}, len(required))
	for _, k := range required {
		if defaults[k] == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingSlot, k)
		}
		req[k] = struct{}{}
	}
	for k, c := range defaults {
		if c == nil {
			return nil, fmt.Errorf("%w: %q has no default component", ErrMissingSlot, k)
		}
	}
	return &Registry[K]{defaults: cloneSet(defaults), required: req}, nil
}

// MustRegistry is NewRegistry that panics on error.
func MustRegistry[K ~string](defaults Set[K], required ...K) *Registry[K] {
	r, err := NewRegistry(defaults, required...)
	if err != nil {
		panic(err)
	}
	return r
}

// Keys returns the family's key set in sorted order.
func (r *Registry[K]) Keys() []K {
	keys := make([]K, 0, len(r.defaults))
	for k := range r.defaults {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Default returns the registered component for key.
func (r *Registry[K]) Default(key K) Component {
	return r.defaults[key]
}

// Resolve overlays overrides on the defaults. Unknown keys are rejected; a nil
// override falls back to the default unless the key is required.
func (r *Registry[K]) Resolve(overrides Set[K]) (Set[K], error) {
	out := cloneSet(r.defaults)
	for k, c := range overrides {
		if _, known := r.defaults[k]; !known {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, k)
		}
		if c == nil {
			if _, req := r.required[k]; req {
				return nil, fmt.Errorf("%w: %q", ErrMissingSlot, k)
			}
			continue
		}
		out[k] = c
	}
	return out, nil
}

// ValidateProps rejects props for keys outside the family.
func (r *Registry[K]) ValidateProps(props PropsSet[K]) error {
	for k := range props {
		if _, known := r.defaults[k]; !known {
			return fmt.Errorf("%w: %q", ErrUnknownSlot, k)
		}
	}
	return nil
}

// ResolveSlots overlays overrides on defaults. Keys absent from defaults are ignored.
func ResolveSlots[K ~string](defaults, overrides Set[K]) Set[K] {
	out := cloneSet(defaults)
	for k, c := range overrides {
		if _, known := defaults[k]; !known || c == nil {
			continue
		}
		out[k] = c
	}
	return out
}

// MergeProps deep-merges patch into base and returns a new Props.
// Object values merge recursively, slices and arrays in patch replace the base
// value outright, everything else is replaced. Neither input is modified.
func MergeProps(base, patch Props) Props {
	out := Props(cloneMap(base))
	if out == nil {
		out = Props{}
	}
	for k, pv := range patch {
		pm, patchIsMap := asMap(pv)
		bm, baseIsMap := asMap(out[k])
		if patchIsMap && baseIsMap {
			out[k] = map[string]any(MergeProps(bm, pm))
			continue
		}
		out[k] = cloneValue(pv)
	}
	return out
}

// MergePropsSet applies MergeProps per slot key.
func MergePropsSet[K ~string](base, patch PropsSet[K]) PropsSet[K] {
	out := make(PropsSet[K], len(base)+len(patch))
	for k, p := range base {
		out[k] = Props(cloneMap(p))
	}
	for k, p := range patch {
		out[k] = MergeProps(out[k], p)
	}
	return out
}

func cloneSet[K ~string](s Set[K]) Set[K] {
	out := make(Set[K], len(s))
	for k, c := range s {
		out[k] = c
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Props:
		return m, true
	default:
		return nil, false
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	if m, ok := asMap(v); ok {
		return cloneMap(m)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(cp, rv)
		return cp.Interface()
	default:
		// arrays are values already
		return v
	}
}
