// Package crud is the shared machinery behind every domain store: a
// collection with request-lifecycle state, reduced by dispatched operations.
// Each domain instantiates one Store per entity and builds its operations
// with the factories in operation.go.
package crud

import (
	"slices"
	"sync"
)

// Entity is anything a Store can hold. EntityID returns the server-assigned
// identifier used for patch/remove merges.
type Entity interface {
	EntityID() string
}

// Store holds one domain's entity collection and lifecycle state. All
// methods are safe for concurrent use; overlapping dispatches are allowed
// and the last one to settle wins on the shared flags.
type Store[T Entity] struct {
	name string

	mu             sync.RWMutex
	items          []T
	selected       *T
	loading        bool
	actionLoading  map[string]bool
	err            error
	successMessage string
}

func NewStore[T Entity](name string) *Store[T] {
	return &Store[T]{
		name:          name,
		actionLoading: make(map[string]bool),
	}
}

func (s *Store[T]) Name() string { return s.name }

// --- selectors ---

// Items returns a copy of the collection in its current order.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Find returns the entity with the given id.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ActionLoading reports the named per-row loading flag, e.g. "approve:42".
func (s *Store[T]) ActionLoading(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actionLoading[key]
}

// Err returns the error of the last rejected operation, or nil. It is
// non-nil only between a rejection and the next dispatch or ClearError.
func (s *Store[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store[T]) SuccessMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.successMessage
}

// --- selection (the "currently editing" record) ---

// Select marks the entity with the given id as selected, typically when an
// edit dialog opens. Selecting an unknown id clears the selection.
func (s *Store[T]) Select(id string) {
	item, ok := s.Find(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.selected = &item
	} else {
		s.selected = nil
	}
}

func (s *Store[T]) Selected() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

// ClearSelected resets the selection, on dialog close or after a submit.
func (s *Store[T]) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// --- cross-cutting reducers, dispatched by views after showing a toast ---

func (s *Store[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}

func (s *Store[T]) ClearSuccessMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successMessage = ""
}

// --- lifecycle reducers, applied by operations ---

func (s *Store[T]) setPending(actionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if actionKey == "" {
		s.loading = true
	} else {
		s.actionLoading[actionKey] = true
	}
	s.err = nil
}

func (s *Store[T]) setRejected(actionKey string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked(actionKey)
	s.err = err
}

func (s *Store[T]) settleLocked(actionKey string) {
	if actionKey == "" {
		s.loading = false
	} else {
		delete(s.actionLoading, actionKey)
	}
}

// setMessageLocked keeps the last confirmation around until the view
// acknowledges it with ClearSuccessMessage. Operations without a message,
// the follow-up refetch after a mutation in particular, must not wipe it
// before the toast is shown.
func (s *Store[T]) setMessageLocked(message string) {
	if message != "" {
		s.successMessage = message
	}
}

func (s *Store[T]) replaceAll(actionKey string, items []T, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked(actionKey)
	s.items = slices.Clone(items)
	s.setMessageLocked(message)
}

func (s *Store[T]) appendOne(actionKey string, item T, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked(actionKey)
	s.items = append(s.items, item)
	s.setMessageLocked(message)
}

func (s *Store[T]) unshiftOne(actionKey string, item T, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked(actionKey)
	s.items = append([]T{item}, s.items...)
	s.setMessageLocked(message)
}

// patchOne replaces exactly the record whose id matches; every other record
// is left untouched. A payload with an unknown id leaves the collection
// as-is, which still counts as a fulfilled update.
func (s *Store[T]) patchOne(actionKey string, item T, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked(actionKey)
	for i := range s.items {
		if s.items[i].EntityID() == item.EntityID() {
			s.items[i] = item
			break
		}
	}
	s.setMessageLocked(message)
}

func (s *Store[T]) removeOne(actionKey string, id string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked(actionKey)
	s.items = slices.DeleteFunc(s.items, func(item T) bool {
		return item.EntityID() == id
	})
	s.setMessageLocked(message)
}
