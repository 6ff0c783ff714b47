package collections

// Set holds distinct values. Entries come back in no particular order.
type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
}
