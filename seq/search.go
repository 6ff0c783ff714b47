package seq

import (
	"github.com/tuannh982/keyedseq/seq/commons"
	"github.com/tuannh982/keyedseq/seq/internal"
)

// Find returns the first value accepted by handler.
func (s *KeyedSequence[V]) Find(handler func(value V, key string) bool) (found V, ok bool) {
	s.store().Range(func(k string, v V) bool {
		if handler(v, k) {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

// FindIndex returns the key of the first value accepted by handler.
func (s *KeyedSequence[V]) FindIndex(handler func(value V, key string) bool) (found string, ok bool) {
	s.store().Range(func(k string, v V) bool {
		if handler(v, k) {
			found, ok = k, true
			return false
		}
		return true
	})
	return found, ok
}

// FindOne returns the first value matching q. A value matches when each of
// its own fields that q constrains holds the expected value; constraints on
// fields the value lacks are ignored.
func (s *KeyedSequence[V]) FindOne(q commons.Query) (V, bool) {
	return s.Find(s.matcher(q))
}

// FindMany returns a new sequence of every value matching q, as FindOne.
func (s *KeyedSequence[V]) FindMany(q commons.Query) *KeyedSequence[V] {
	return s.Filter(s.matcher(q))
}

func (s *KeyedSequence[V]) matcher(q commons.Query) func(V, string) bool {
	rangeFields := internal.RangeFields
	if accessor := s.config().fields; accessor != nil {
		rangeFields = func(v any, f internal.FieldFunc) {
			for name, field := range accessor(v) {
				if !f(name, field) {
					return
				}
			}
		}
	}
	return func(value V, _ string) bool {
		matched := true
		rangeFields(value, func(name string, field any) bool {
			expected, ok := q.Active(name)
			if ok && !internal.StrictEqual(field, expected) {
				matched = false
			}
			return matched
		})
		return matched
	}
}
