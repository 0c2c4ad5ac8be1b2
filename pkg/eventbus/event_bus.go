// Package eventbus fans domain and operation lifecycle events out to
// subscribed handlers. Handlers take exactly one argument; an event reaches
// every handler whose parameter type it satisfies.
package eventbus

import (
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"
)

type EventBus interface {
	Publish(event any)
	Subscribe(handler any)
}

type publisherImpl struct {
	log *logrus.Logger

	mu       sync.RWMutex
	handlers []reflect.Value
}

func NewEventPublisher(log *logrus.Logger) EventBus {
	return &publisherImpl{log: log}
}

// Subscribe registers a handler of the form func(E) for some event type E.
// Subscription happens during module registration; anything else panics at
// boot rather than silently never firing.
func (p *publisherImpl) Subscribe(handler any) {
	t := reflect.TypeOf(handler)
	if t == nil || t.Kind() != reflect.Func || t.NumIn() != 1 {
		panic("eventbus: handler must be a func taking one event argument")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = append(p.handlers, reflect.ValueOf(handler))
}

// Publish delivers the event to every matching handler. A panicking handler
// is logged and skipped; the remaining handlers still run. Events nobody
// subscribed to are normal — operations publish their full lifecycle whether
// or not an audit handler is listening — so they are only debug-logged.
func (p *publisherImpl) Publish(event any) {
	if event == nil {
		return
	}
	eventType := reflect.TypeOf(event)
	in := []reflect.Value{reflect.ValueOf(event)}

	p.mu.RLock()
	handlers := make([]reflect.Value, len(p.handlers))
	copy(handlers, p.handlers)
	p.mu.RUnlock()

	delivered := false
	for _, handler := range handlers {
		if !accepts(handler.Type().In(0), eventType) {
			continue
		}
		delivered = true
		p.call(handler, in, event)
	}

	if !delivered && p.log != nil {
		p.log.Debugf("eventbus: no subscribers for %s", eventType)
	}
}

func (p *publisherImpl) call(handler reflect.Value, in []reflect.Value, event any) {
	defer func() {
		if r := recover(); r != nil && p.log != nil {
			p.log.Errorf("eventbus: handler %s panicked on %v: %v", handler.Type(), event, r)
		}
	}()
	handler.Call(in)
}

func accepts(param, event reflect.Type) bool {
	if param.Kind() == reflect.Interface {
		return event.Implements(param)
	}
	return event.AssignableTo(param)
}
