package collections

// Map is an insertion-ordered map. Keys, Values and Range walk entries in the
// order their keys were first put.
type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
	KeyAt(i int) (K, bool)
	Range(f func(k K, v V) bool)
}
