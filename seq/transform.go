package seq

import (
	"sort"

	"github.com/tuannh982/keyedseq/seq/commons"
	"github.com/tuannh982/keyedseq/utils/math"

	log "github.com/sirupsen/logrus"
)

type entry[V any] struct {
	key   string
	value V
}

// SortBy returns a new sequence ordered by cmp over the values. The sort is
// stable and keys travel with their values. A nil cmp keeps the current order.
func (s *KeyedSequence[V]) SortBy(cmp commons.Comparator[V]) *KeyedSequence[V] {
	arr := make([]entry[V], 0, s.Len())
	s.store().Range(func(k string, v V) bool {
		arr = append(arr, entry[V]{key: k, value: v})
		return true
	})
	if cmp != nil {
		sort.SliceStable(arr, func(i, j int) bool {
			return cmp(arr[i].value, arr[j].value) < 0
		})
	}
	res := s.derive()
	for _, e := range arr {
		res.put(e.key, e.value)
	}
	s.logger().WithField("count", res.Len()).Debug("sorted")
	return res
}

// PageCount is the number of pages of pageSize entries, the last one
// possibly short. It is 0 when pageSize <= 0.
func (s *KeyedSequence[V]) PageCount(pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return math.DivCeil(s.Len(), pageSize)
}

// Paginate returns a new sequence holding the entries at 1-based positions
// ((page-1)*pageSize, page*pageSize]. Pages below 1 count as 1. With a
// comparator, positions are taken over SortBy(cmp) order.
func (s *KeyedSequence[V]) Paginate(page, pageSize int, cmp ...commons.Comparator[V]) *KeyedSequence[V] {
	page = math.Max(page, 1)
	res := s.derive()
	if page > s.PageCount(pageSize) {
		return res
	}
	src := s
	if len(cmp) > 0 && cmp[0] != nil {
		src = s.SortBy(cmp[0])
	}
	lo := (page - 1) * pageSize
	hi := math.Min(lo+pageSize, src.Len())
	for i := lo; i < hi; i++ {
		k, _ := src.store().KeyAt(i)
		v, _ := src.Get(k)
		res.put(k, v)
	}
	s.logger().WithFields(log.Fields{
		"page":  page,
		"size":  pageSize,
		"count": res.Len(),
	}).Debug("paginated")
	return res
}

// Filter returns a new sequence of the entries accepted by handler, order kept.
func (s *KeyedSequence[V]) Filter(handler func(value V, key string) bool) *KeyedSequence[V] {
	res := s.derive()
	s.store().Range(func(k string, v V) bool {
		if handler(v, k) {
			res.put(k, v)
		}
		return true
	})
	return res
}
