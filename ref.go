package htx

import "sync"

// RefBinder is satisfied by the types that can be passed as an element's
// "ref" prop. Binding happens once the tree walk completes, before any
// deferred content renders: component Render methods see the target
// unset, while Deferred functions can already reach the bound element.
type RefBinder interface {
	bindRef(c Component)
}

// Ref is a reference to a single component, bound after the tree walk
// and readable from deferred content and handlers. Thread-safe.
type Ref struct {
	mu      sync.RWMutex
	current Component
	bound   bool
}

// NewRef creates a new unbound Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Current returns the referenced component, or nil if not yet bound.
func (r *Ref) Current() Component {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// IsSet returns true if the ref has been bound.
func (r *Ref) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bound
}

// bindRef points the ref at c. A ref reused across elements ends up on
// the one bound last, in document order.
func (r *Ref) bindRef(c Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = c
	r.bound = true
}

// RefList holds references to multiple components created in a loop, in
// document order. Thread-safe.
type RefList struct {
	mu    sync.RWMutex
	elems []Component
}

// NewRefList creates a new empty RefList.
func NewRefList() *RefList {
	return &RefList{}
}

func (r *RefList) bindRef(c Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elems = append(r.elems, c)
}

// All returns a copy of all referenced components.
func (r *RefList) All() []Component {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Component, len(r.elems))
	copy(out, r.elems)
	return out
}

// At returns the component at the given index, or nil if out of bounds.
func (r *RefList) At(i int) Component {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.elems) {
		return nil
	}
	return r.elems[i]
}

// Len returns the number of components in this ref list.
func (r *RefList) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.elems)
}

// RefMap holds keyed references to components created in a loop.
// Thread-safe.
type RefMap[K comparable] struct {
	mu    sync.RWMutex
	elems map[K]Component
}

// NewRefMap creates a new empty RefMap.
func NewRefMap[K comparable]() *RefMap[K] {
	return &RefMap[K]{elems: make(map[K]Component)}
}

// Key returns the binder to pass as a "ref" prop so the element lands in
// the map under the given key.
func (r *RefMap[K]) Key(key K) RefBinder {
	return mapRef[K]{m: r, key: key}
}

// Get returns the component for the given key, or nil if not found.
func (r *RefMap[K]) Get(key K) Component {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.elems[key]
}

// All returns a copy of all keyed components.
func (r *RefMap[K]) All() map[K]Component {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[K]Component, len(r.elems))
	for k, v := range r.elems {
		out[k] = v
	}
	return out
}

// Len returns the number of components in this ref map.
func (r *RefMap[K]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.elems)
}

type mapRef[K comparable] struct {
	m   *RefMap[K]
	key K
}

func (mr mapRef[K]) bindRef(c Component) {
	mr.m.mu.Lock()
	defer mr.m.mu.Unlock()
	mr.m.elems[mr.key] = c
}
