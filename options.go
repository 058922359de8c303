package bst

// Option configures a Tree at construction time.
type Option[T any] func(*Tree[T])

// WithDestructor registers fn to be called exactly once for every item that
// leaves the tree through Delete or Reset. Without a destructor the tree
// never disposes of items.
func WithDestructor[T any](fn func(T)) Option[T] {
	return func(t *Tree[T]) {
		t.destroy = fn
	}
}
