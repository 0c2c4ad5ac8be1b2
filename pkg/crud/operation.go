package crud

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/metrics"
	"github.com/peopledesk/peopledesk/pkg/serrors"
)

// Operation wraps one transport call into a dispatchable three-phase
// lifecycle against its store. Dispatch never panics past this boundary;
// the caller always receives either the payload or a renderable error.
//
// Overlapping dispatches of the same operation are permitted: no
// de-duplication, no cancellation. The last dispatch to settle overwrites
// the shared loading/error fields.
type Operation[A, R any] struct {
	name      string
	actionKey func(A) string
	success   string
	bus       eventbus.EventBus

	pending func(actionKey string)
	reject  func(actionKey string, err error)
	fulfill func(actionKey string, payload R, message string)
	// onEmpty is non-nil for list fetches: a rejection classified as an
	// empty result resets the collection instead of raising an error.
	onEmpty func(actionKey string)

	call func(context.Context, A) (R, error)
}

// WithSuccess sets the confirmation message stored on fulfillment.
func (o *Operation[A, R]) WithSuccess(message string) *Operation[A, R] {
	o.success = message
	return o
}

// WithActionKey derives a named loading flag from the argument, for
// per-row action buttons sharing one store.
func (o *Operation[A, R]) WithActionKey(fn func(A) string) *Operation[A, R] {
	o.actionKey = fn
	return o
}

// WithBus publishes lifecycle events for this operation on the given bus.
func (o *Operation[A, R]) WithBus(bus eventbus.EventBus) *Operation[A, R] {
	o.bus = bus
	return o
}

// Named overrides the operation name used in events and metrics, for
// stores carrying more than one operation of the same kind.
func (o *Operation[A, R]) Named(name string) *Operation[A, R] {
	o.name = name
	return o
}

func (o *Operation[A, R]) Name() string { return o.name }

// Dispatch runs the wrapped call and reduces its outcome into the store.
// The returned payload/error mirror what was reduced, so callers can await
// a dispatch and react (close a dialog, trigger a refetch) without reading
// the store back.
func (o *Operation[A, R]) Dispatch(ctx context.Context, arg A) (R, error) {
	var zero R

	key := ""
	if o.actionKey != nil {
		key = o.actionKey(arg)
	}

	o.pending(key)
	metrics.ObserveOperation(o.name, metrics.PhasePending)
	o.publish(OperationStarted{Operation: o.name, At: time.Now()})

	payload, err := o.safeCall(ctx, arg)
	if err != nil {
		if o.onEmpty != nil && serrors.IsEmptyResult(err) {
			o.onEmpty(key)
			metrics.ObserveOperation(o.name, metrics.PhaseEmpty)
			o.publish(OperationSucceeded{Operation: o.name, At: time.Now()})
			return zero, nil
		}
		o.reject(key, err)
		metrics.ObserveOperation(o.name, metrics.PhaseRejected)
		o.publish(OperationFailed{Operation: o.name, Err: err, At: time.Now()})
		return zero, err
	}

	o.fulfill(key, payload, o.success)
	metrics.ObserveOperation(o.name, metrics.PhaseFulfilled)
	o.publish(OperationSucceeded{Operation: o.name, At: time.Now()})
	return payload, nil
}

func (o *Operation[A, R]) safeCall(ctx context.Context, arg A) (payload R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = serrors.NewError(serrors.CodeRequestFailed, fmt.Sprintf("%s: %v", o.name, r))
		}
	}()
	return o.call(ctx, arg)
}

func (o *Operation[A, R]) publish(event any) {
	if o.bus != nil {
		o.bus.Publish(event)
	}
}

// --- factories, one per merge strategy ---

// NewFetchAll replaces the whole collection with the payload. An
// empty-result rejection becomes an empty collection, not an error.
func NewFetchAll[T Entity, A any](st *Store[T], call func(context.Context, A) ([]T, error)) *Operation[A, []T] {
	return &Operation[A, []T]{
		name:    st.name + ".fetchAll",
		call:    call,
		pending: st.setPending,
		reject:  st.setRejected,
		fulfill: func(key string, payload []T, message string) {
			st.replaceAll(key, payload, message)
		},
		onEmpty: func(key string) {
			st.replaceAll(key, nil, "")
		},
	}
}

// NewCreate appends the created record to the collection.
func NewCreate[T Entity, A any](st *Store[T], call func(context.Context, A) (T, error)) *Operation[A, T] {
	return &Operation[A, T]{
		name:    st.name + ".create",
		call:    call,
		pending: st.setPending,
		reject:  st.setRejected,
		fulfill: st.appendOne,
	}
}

// NewCreateNewestFirst prepends the created record (newest-first lists).
func NewCreateNewestFirst[T Entity, A any](st *Store[T], call func(context.Context, A) (T, error)) *Operation[A, T] {
	op := NewCreate(st, call)
	op.fulfill = st.unshiftOne
	return op
}

// NewUpdate patches the matching record in place, by id.
func NewUpdate[T Entity, A any](st *Store[T], call func(context.Context, A) (T, error)) *Operation[A, T] {
	return &Operation[A, T]{
		name:    st.name + ".update",
		call:    call,
		pending: st.setPending,
		reject:  st.setRejected,
		fulfill: st.patchOne,
	}
}

// NewDelete filters the returned id out of the collection.
func NewDelete[T Entity, A any](st *Store[T], call func(context.Context, A) (string, error)) *Operation[A, string] {
	return &Operation[A, string]{
		name:    st.name + ".delete",
		call:    call,
		pending: st.setPending,
		reject:  st.setRejected,
		fulfill: st.removeOne,
	}
}
