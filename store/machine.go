package store

import (
	"context"
	"sync"
)

// machine serializes state transitions and fans snapshots out to subscribers.
type machine[S any] struct {
	mu    sync.Mutex
	state S

	subsMu sync.Mutex
	nextID int
	subs   map[int]func(S)
}

func newMachine[S any](initial S) *machine[S] {
	return &machine[S]{state: initial, subs: map[int]func(S){}}
}

func (m *machine[S]) snapshot() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *machine[S]) apply(reduce func(S) S) S {
	m.mu.Lock()
	m.state = reduce(m.state)
	next := m.state
	m.mu.Unlock()

	m.notify(next)
	return next
}

// subscribe registers fn for every future transition. The returned func
// unregisters it.
func (m *machine[S]) subscribe(fn func(S)) func() {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()

	id := m.nextID
	m.nextID++
	m.subs[id] = fn

	return func() {
		m.subsMu.Lock()
		defer m.subsMu.Unlock()
		delete(m.subs, id)
	}
}

func (m *machine[S]) notify(state S) {
	m.subsMu.Lock()
	subs := make([]func(S), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.subsMu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// dispatch runs call between the pending and the settled transition. There
// is no fencing: when two calls overlap, the one that settles last wins.
func dispatch[S, T any](ctx context.Context, m *machine[S], reduce func(S, Result[T]) S, call func(context.Context) (T, error)) Result[T] {
	m.apply(func(s S) S { return reduce(s, PendingResult[T]()) })

	value, err := call(ctx)
	result := settle(value, err)

	m.apply(func(s S) S { return reduce(s, result) })
	return result
}
