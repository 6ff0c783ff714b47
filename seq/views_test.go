package seq

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestToArrayIsACopy(t *testing.T) {
	s := abc(t)
	arr := s.ToArray()
	require.Equal(t, []int{1, 2, 3}, arr)
	arr[0] = 100
	v, _ := s.Get("a")
	require.Equal(t, 1, v)
}

func TestToMapIsByReference(t *testing.T) {
	s := abc(t)
	m := s.ToMap()
	require.Nil(t, m.Put("d", 4, false))
	require.Equal(t, 4, s.Len())
	require.Nil(t, m.Delete("a"))
	require.Equal(t, []string{"b", "c", "d"}, s.Keys())
}

func TestIterKeysAndValues(t *testing.T) {
	s := abc(t)
	keys := make([]string, 0)
	for it := s.IterKeys(); it.Next(); {
		keys = append(keys, it.Value())
	}
	require.Equal(t, []string{"a", "b", "c"}, keys)

	it := s.IterValues()
	values := make([]int, 0)
	for it.Next() {
		values = append(values, it.Value())
	}
	require.Equal(t, []int{1, 2, 3}, values)
	// exhausted iterators do not restart
	require.False(t, it.Next())
	require.Equal(t, 0, it.Value())
}

func TestIterValuesReadsLazily(t *testing.T) {
	s := abc(t)
	it := s.IterValues()
	require.True(t, it.Next())
	require.Equal(t, 1, it.Value())
	require.Nil(t, s.Set("b", 20))
	s.Delete("c")
	require.True(t, it.Next())
	require.Equal(t, 20, it.Value())
	require.False(t, it.Next())
}

func TestRangeValuesAndAll(t *testing.T) {
	s := abc(t)
	values := make([]int, 0)
	for v := range s.Values() {
		values = append(values, v)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	keys := make([]string, 0)
	for k, v := range s.All() {
		keys = append(keys, k)
		if v == 2 {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, keys)
}

func TestForEach(t *testing.T) {
	s := abc(t)
	visited := make([]string, 0)
	sum := 0
	s.ForEach(func(value int, key string) {
		visited = append(visited, key)
		sum += value
	})
	require.Equal(t, []string{"a", "b", "c"}, visited)
	require.Equal(t, 6, sum)
}

func TestOrderPreservation(t *testing.T) {
	s := New[int]()
	order := []string{"z", "y", "x", "w", "v"}
	for i, k := range order {
		require.Nil(t, s.Set(k, i))
	}
	require.Nil(t, s.Set("x", 100))
	keys := make([]string, 0)
	for it := s.IterKeys(); it.Next(); {
		keys = append(keys, it.Value())
	}
	require.Equal(t, order, keys)
	require.Equal(t, []int{0, 1, 100, 3, 4}, s.ToArray())
}

func TestIteratorsWalkLivePositions(t *testing.T) {
	s := abc(t)
	keys := s.IterKeys()
	require.True(t, keys.Next())
	require.Equal(t, "a", keys.Value())
	require.Nil(t, s.Set("d", 4))
	rest := make([]string, 0)
	for keys.Next() {
		rest = append(rest, keys.Value())
	}
	require.Equal(t, []string{"b", "c", "d"}, rest)
	require.Equal(t, "", keys.Value())

	// an exhausted iterator ignores later appends
	require.Nil(t, s.Set("e", 5))
	require.False(t, keys.Next())

	empty := New[int]().IterValues()
	require.False(t, empty.Next())
	require.Equal(t, 0, empty.Value())
}
