package drawer

import "slices"

// Subscription removes a registered listener.
type Subscription struct {
	remove func()
}

// Remove unregisters the listener. Calling it more than once is a no-op.
func (s Subscription) Remove() {
	if s.remove != nil {
		s.remove()
	}
}

type listener[T any] struct {
	id uint32
	fn func(T)
}

// listeners holds callbacks only; the controller never keeps a reference
// to whoever registered them.
type listeners[T any] struct {
	entries []listener[T]
	nextID  uint32
}

func (l *listeners[T]) add(fn func(T)) Subscription {
	if fn == nil {
		return Subscription{}
	}
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listener[T]{id: id, fn: fn})
	return Subscription{remove: func() {
		l.entries = slices.DeleteFunc(l.entries, func(e listener[T]) bool { return e.id == id })
	}}
}

func (l *listeners[T]) emit(v T) {
	// callbacks may unsubscribe while we iterate
	for _, e := range slices.Clone(l.entries) {
		e.fn(v)
	}
}

func (l *listeners[T]) count() int {
	return len(l.entries)
}
