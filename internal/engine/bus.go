package engine

import (
	"io"

	"github.com/charmbracelet/log"
)

// subscriber is one registered handler. removed is set on unsubscribe so an
// emission already in progress skips it.
type subscriber struct {
	id      uint64
	fn      func(Event)
	removed bool
}

// Bus is a synchronous publish/subscribe registry.
//
// Architecture:
//   - Single-threaded: handlers run inside Emit on the caller's goroutine
//   - Handlers for a type run in registration order
//   - Re-entrant emits are delivered depth-first
//   - A panicking handler is logged and skipped; the rest still run
type Bus struct {
	handlers map[Type][]*subscriber
	nextID   uint64
	logger   *log.Logger
	failures int
}

// NewBus creates an empty bus. A nil logger discards handler failures.
func NewBus(logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bus{
		handlers: make(map[Type][]*subscriber),
		logger:   logger,
	}
}

// Subscription identifies a registered handler.
type Subscription struct {
	bus *Bus
	typ Type
	id  uint64
}

// Unsubscribe removes the handler. Calling it more than once is harmless.
func (s Subscription) Unsubscribe() {
	if s.bus != nil {
		s.bus.Off(s)
	}
}

// On registers a handler for the event variant E. E must be one of the
// concrete event structs, not the Event interface.
func On[E Event](b *Bus, handler func(E)) Subscription {
	var zero E
	return b.subscribe(zero.Type(), func(ev Event) {
		handler(ev.(E))
	})
}

func (b *Bus) subscribe(t Type, fn func(Event)) Subscription {
	b.nextID++
	s := &subscriber{id: b.nextID, fn: fn}
	b.handlers[t] = append(b.handlers[t], s)
	return Subscription{bus: b, typ: t, id: s.id}
}

// Off removes a previously registered handler.
func (b *Bus) Off(sub Subscription) {
	list := b.handlers[sub.typ]
	kept := make([]*subscriber, 0, len(list))
	for _, s := range list {
		if s.id == sub.id {
			s.removed = true
			continue
		}
		kept = append(kept, s)
	}
	if len(kept) == 0 {
		delete(b.handlers, sub.typ)
		return
	}
	b.handlers[sub.typ] = kept
}

// Emit synchronously invokes every handler registered for the event's type.
// Handlers added during the emission first run on the next one.
func (b *Bus) Emit(ev Event) {
	list := b.handlers[ev.Type()]
	for _, s := range list {
		if s.removed {
			continue
		}
		b.invoke(s, ev)
	}
}

// HandlerCount returns the number of handlers registered for a type.
func (b *Bus) HandlerCount(t Type) int {
	return len(b.handlers[t])
}

// Failures returns how many handler panics have been isolated so far.
func (b *Bus) Failures() int {
	return b.failures
}

func (b *Bus) invoke(s *subscriber, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.failures++
			b.logger.Error("event handler panicked",
				"event", ev.Type(),
				"handler", s.id,
				"panic", r,
			)
		}
	}()
	s.fn(ev)
}
