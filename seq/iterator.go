package seq

import (
	"github.com/tuannh982/keyedseq/utils/collections"
)

// Iterator is a single-pass, forward-only cursor. Next advances and reports
// whether Value holds an element. An exhausted iterator stays exhausted.
//
// The cursor walks positions of the live sequence: nothing is copied when it
// is created, and each Next reads one entry. Mutating the sequence while an
// iterator is in use is the caller's responsibility; a deletion before the
// cursor shifts later entries back by one.
type Iterator[T any] interface {
	Next() bool
	Value() T
}

type cursor[V any] struct {
	entries collections.Map[string, V]
	next    int
	done    bool
	key     string
}

func (c *cursor[V]) advance() bool {
	if c.done {
		return false
	}
	k, ok := c.entries.KeyAt(c.next)
	if !ok {
		c.done = true
		c.key = ""
		return false
	}
	c.next++
	c.key = k
	return true
}

type keyIterator[V any] struct {
	cursor[V]
}

func (it *keyIterator[V]) Next() bool {
	return it.advance()
}

func (it *keyIterator[V]) Value() string {
	return it.key
}

type valueIterator[V any] struct {
	cursor[V]
	current V
}

func (it *valueIterator[V]) Next() bool {
	var zero V
	it.current = zero
	if !it.advance() {
		return false
	}
	it.current, _ = it.entries.Get(it.key)
	return true
}

func (it *valueIterator[V]) Value() V {
	return it.current
}
