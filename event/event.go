package event

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"go.uber.org/atomic"
)

// Event is a typed notification channel with an ordered set of hooks.
// The zero value is not usable; create events with New.
type Event[T any] struct {
	hooks     *linkedhashmap.Map // hook ID → func(T), insertion ordered
	nextID    *atomic.Uint64
	triggered *atomic.Uint64
}

// New returns an Event with no hooks attached.
func New[T any]() *Event[T] {
	return &Event[T]{
		hooks:     linkedhashmap.New(),
		nextID:    atomic.NewUint64(0),
		triggered: atomic.NewUint64(0),
	}
}

// Hook attaches callback and returns a handle that can detach it again.
// If maxTriggers is given and > 0, the hook detaches itself after firing
// that many times. A nil callback is ignored and yields a nil *Hook.
func (e *Event[T]) Hook(callback func(T), maxTriggers ...uint64) *Hook[T] {
	if callback == nil {
		return nil
	}

	h := &Hook[T]{id: e.nextID.Inc(), event: e}

	fn := callback
	if len(maxTriggers) > 0 && maxTriggers[0] > 0 {
		limit := maxTriggers[0]
		count := atomic.NewUint64(0)
		fn = func(v T) {
			callback(v)
			if count.Inc() >= limit {
				h.Unhook()
			}
		}
	}
	e.hooks.Put(h.id, fn)

	return h
}

// Trigger calls every attached hook with v.
func (e *Event[T]) Trigger(v T) {
	e.triggered.Inc()
	if e.hooks.Empty() {
		return
	}

	for _, fn := range e.hooks.Values() {
		fn.(func(T))(v)
	}
}

// Len reports the number of attached hooks.
func (e *Event[T]) Len() int { return e.hooks.Size() }

// TriggerCount reports how many times Trigger was called.
func (e *Event[T]) TriggerCount() uint64 { return e.triggered.Load() }

// DetachAll removes every hook.
func (e *Event[T]) DetachAll() { e.hooks.Clear() }

// Hook is the handle returned by Event.Hook.
type Hook[T any] struct {
	id    uint64
	event *Event[T]
}

// Unhook detaches the hook. Calling it more than once is a no-op.
func (h *Hook[T]) Unhook() {
	if h == nil || h.event == nil {
		return
	}
	h.event.hooks.Remove(h.id)
	h.event = nil
}
