package dynamic

// Constructor is a callable host value that also carries static properties,
// e.g. a class exposing a static `schema`.
type Constructor interface {
	Object
	Construct(args ...any) (any, error)
}

// Func a Constructor backed by a Go function
type Func struct {
	name    string
	fn      func(args ...any) (any, error)
	statics *Map
}

// NewFunc creates a constructor; a nil fn constructs empty Maps
func NewFunc(name string, fn func(args ...any) (any, error)) *Func {
	return &Func{name: name, fn: fn, statics: NewMap()}
}

// Name returns the constructor name
func (f *Func) Name() string {
	return f.name
}

func (f *Func) Get(name string) (any, bool) { return f.statics.Get(name) }

func (f *Func) Set(name string, value any) { f.statics.Set(name, value) }

func (f *Func) Keys() []string { return f.statics.Keys() }

func (f *Func) Construct(args ...any) (any, error) {
	if f.fn == nil {
		return NewMap(), nil
	}
	return f.fn(args...)
}

func (f *Func) String() string {
	return "function " + f.name
}
