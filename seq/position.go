package seq

// resolve maps a possibly negative index to a position in [0, Len).
func (s *KeyedSequence[V]) resolve(index int) (int, bool) {
	n := s.Len()
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return 0, false
	}
	return index, true
}

// AtKey returns the key at index in insertion order; -1 is the last key.
func (s *KeyedSequence[V]) AtKey(index int) (string, bool) {
	i, ok := s.resolve(index)
	if !ok {
		return "", false
	}
	return s.store().KeyAt(i)
}

// At returns the value at index in insertion order; -1 is the last value.
func (s *KeyedSequence[V]) At(index int) (v V, ok bool) {
	k, ok := s.AtKey(index)
	if !ok {
		return v, false
	}
	return s.Get(k)
}
