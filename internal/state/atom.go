package state

import "sync"

// Ticket orders writes to one atom. Only the newest ticket may commit.
type Ticket uint64

// Atom is a single observable cell. Subscribers run outside the lock, one
// delivery at a time. A write that lands while another goroutine is
// delivering is handed to that goroutine, so the last value delivered is
// always the value the atom holds.
type Atom[T any] struct {
	mu          sync.Mutex
	value       T
	issued      Ticket
	nextID      int
	subs        map[int]func(T)
	dirty       bool
	dispatching bool
}

func NewAtom[T any](initial T) *Atom[T] {
	return &Atom[T]{
		value: initial,
		subs:  make(map[int]func(T)),
	}
}

func (a *Atom[T]) Get() T {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.value
}

// Set writes v and invalidates outstanding tickets.
func (a *Atom[T]) Set(v T) {
	a.mu.Lock()
	a.issued++
	a.value = v
	a.publish()
}

// Update applies fn to the current value under the lock and invalidates
// outstanding tickets.
func (a *Atom[T]) Update(fn func(T) T) T {
	a.mu.Lock()
	a.issued++
	v := fn(a.value)
	a.value = v
	a.publish()

	return v
}

// Begin issues a ticket for a write that will land after an async call.
func (a *Atom[T]) Begin() Ticket {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.issued++
	return a.issued
}

// Commit writes v unless a newer ticket was issued since t. It reports
// whether the write happened.
func (a *Atom[T]) Commit(t Ticket, v T) bool {
	a.mu.Lock()
	if t != a.issued {
		a.mu.Unlock()
		return false
	}
	a.value = v
	a.publish()

	return true
}

// Subscribe registers fn and returns the func that removes it.
func (a *Atom[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextID
	a.nextID++
	a.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subs, id)
			a.mu.Unlock()
		})
	}
}

// publish must be called with a.mu held and releases it. The caller either
// becomes the dispatcher or leaves the new value to the running one.
func (a *Atom[T]) publish() {
	a.dirty = true
	if a.dispatching {
		a.mu.Unlock()
		return
	}
	a.dispatching = true

	for a.dirty {
		a.dirty = false
		v := a.value
		subs := a.snapshot()
		a.mu.Unlock()

		for _, fn := range subs {
			fn(v)
		}

		a.mu.Lock()
	}

	a.dispatching = false
	a.mu.Unlock()
}

func (a *Atom[T]) snapshot() []func(T) {
	subs := make([]func(T), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	return subs
}
