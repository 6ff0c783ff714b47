package seq

import (
	"iter"

	"github.com/tuannh982/keyedseq/utils/collections"
)

// ToArray returns the values in insertion order in a fresh slice.
func (s *KeyedSequence[V]) ToArray() []V {
	return s.store().Values()
}

// ToMap returns the backing map itself. Changes made through it are changes
// to the sequence.
func (s *KeyedSequence[V]) ToMap() collections.Map[string, V] {
	return s.store()
}

func (s *KeyedSequence[V]) Len() int {
	return s.store().Size()
}

// IterKeys returns a lazy cursor over the keys in insertion order.
func (s *KeyedSequence[V]) IterKeys() Iterator[string] {
	return &keyIterator[V]{
		cursor: cursor[V]{entries: s.store()},
	}
}

// IterValues returns a lazy cursor over the values in insertion order.
func (s *KeyedSequence[V]) IterValues() Iterator[V] {
	return &valueIterator[V]{
		cursor: cursor[V]{entries: s.store()},
	}
}

// Values is the default range form: the values in insertion order.
func (s *KeyedSequence[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		s.store().Range(func(_ string, v V) bool {
			return yield(v)
		})
	}
}

func (s *KeyedSequence[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		s.store().Range(yield)
	}
}

// ForEach calls handler once per entry in insertion order. The handler must
// not mutate s.
func (s *KeyedSequence[V]) ForEach(handler func(value V, key string)) {
	s.store().Range(func(k string, v V) bool {
		handler(v, k)
		return true
	})
}
