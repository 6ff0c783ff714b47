package commons

import (
	"github.com/facette/natsort"
	"golang.org/x/exp/constraints"
)

// Comparator is a three-way comparison: negative when a sorts before b,
// positive when after, zero when they tie.
type Comparator[V any] func(a, b V) int

func Ascending[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Descending[T constraints.Ordered](a, b T) int {
	return Ascending(b, a)
}

// By orders values by an extracted ordered key.
func By[V any, T constraints.Ordered](extract func(V) T) Comparator[V] {
	return func(a, b V) int {
		return Ascending(extract(a), extract(b))
	}
}

func Reverse[V any](cmp Comparator[V]) Comparator[V] {
	return func(a, b V) int {
		return cmp(b, a)
	}
}

// NaturalStrings compares digit runs numerically, so "item2" < "item10".
func NaturalStrings(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}
