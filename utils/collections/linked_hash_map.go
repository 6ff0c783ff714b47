package collections

type linkedHashMap[K comparable, V any] struct {
	order   []K
	index   map[K]int
	entries map[K]V
}

func NewLinkedHashMap[K comparable, V any]() Map[K, V] {
	return &linkedHashMap[K, V]{
		order:   make([]K, 0),
		index:   make(map[K]int),
		entries: make(map[K]V),
	}
}

func (m *linkedHashMap[K, V]) Contains(k K) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

// Put keeps the position of an existing key when forced.
func (m *linkedHashMap[K, V]) Put(k K, v V, forced bool) error {
	if m.Contains(k) {
		if !forced {
			return ErrValueExisted
		}
		m.entries[k] = v
		return nil
	}
	m.index[k] = len(m.order)
	m.order = append(m.order, k)
	m.entries[k] = v
	return nil
}

func (m *linkedHashMap[K, V]) Get(k K) (v V, err error) {
	if !m.Contains(k) {
		return v, ErrValueNotExisted
	}
	return m.entries[k], nil
}

func (m *linkedHashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	i := m.index[k]
	m.order = append(m.order[:i], m.order[i+1:]...)
	for j := i; j < len(m.order); j++ {
		m.index[m.order[j]] = j
	}
	delete(m.index, k)
	delete(m.entries, k)
	return nil
}

func (m *linkedHashMap[K, V]) Size() int {
	return len(m.order)
}

func (m *linkedHashMap[K, V]) Keys() []K {
	arr := make([]K, len(m.order))
	copy(arr, m.order)
	return arr
}

func (m *linkedHashMap[K, V]) Values() []V {
	arr := make([]V, 0, m.Size())
	for _, k := range m.order {
		arr = append(arr, m.entries[k])
	}
	return arr
}

func (m *linkedHashMap[K, V]) KeyAt(i int) (k K, ok bool) {
	if i < 0 || i >= len(m.order) {
		return k, false
	}
	return m.order[i], true
}

func (m *linkedHashMap[K, V]) Range(f func(k K, v V) bool) {
	for _, k := range m.order {
		if !f(k, m.entries[k]) {
			return
		}
	}
}
