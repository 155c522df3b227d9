package rule

// Context supplies values for auto-populate fields.
// Keys are explicit accessor names such as "user"; no path traversal is performed.
type Context interface {
	Lookup(key string) (any, bool)
}

// Values is a map-backed Context.
type Values map[string]any

// Lookup implements Context.
func (v Values) Lookup(key string) (any, bool) {
	val, ok := v[key]
	return val, ok
}

// ContextFunc adapts a plain function to Context.
type ContextFunc func(key string) (any, bool)

// Lookup implements Context.
func (f ContextFunc) Lookup(key string) (any, bool) {
	return f(key)
}
