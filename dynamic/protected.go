package dynamic

import "sync"

// Protector extends the lifetime of host values beyond the call that produced
// them. Protect returns the function that releases the value again.
type Protector interface {
	Protect(value any) (release func())
}

// ProtectorFunc adapts a function to Protector
type ProtectorFunc func(value any) func()

func (f ProtectorFunc) Protect(value any) func() { return f(value) }

type nopProtector struct{}

func (nopProtector) Protect(any) func() { return func() {} }

// NopProtector relies on the Go garbage collector alone
var NopProtector Protector = nopProtector{}

// Protected is an ownership handle for a captured host value. Whoever holds
// the handle is responsible for calling Release exactly once.
type Protected[T any] struct {
	value   T
	release func()
}

// Protect captures v through p
func Protect[T any](p Protector, v T) *Protected[T] {
	if p == nil {
		p = NopProtector
	}
	return &Protected[T]{value: v, release: p.Protect(v)}
}

// Value returns the protected value
func (p *Protected[T]) Value() T {
	return p.value
}

// Release gives the value back to the host; later calls are no-ops
func (p *Protected[T]) Release() {
	if p == nil || p.release == nil {
		return
	}
	release := p.release
	p.release = nil
	release()
}

// Released reports whether Release has been called
func (p *Protected[T]) Released() bool {
	return p.release == nil
}

// PinTable is a Protector that keeps every protected value reachable from a
// table until it is released, the way embedders pin values for a foreign runtime.
type PinTable struct {
	mu   sync.Mutex
	next uint64
	pins map[uint64]any
}

func NewPinTable() *PinTable {
	return &PinTable{pins: map[uint64]any{}}
}

func (t *PinTable) Protect(value any) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	id := t.next
	t.pins[id] = value

	return func() {
		t.mu.Lock()
		delete(t.pins, id)
		t.mu.Unlock()
	}
}

// Len returns the number of live pins
func (t *PinTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pins)
}
