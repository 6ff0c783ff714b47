package seq

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSONKeepsOrder(t *testing.T) {
	s := New[int]()
	require.Nil(t, s.Set("z", 1))
	require.Nil(t, s.Set("a", 2))
	require.Nil(t, s.Set("m", 3))
	data, err := json.Marshal(s)
	require.Nil(t, err)
	require.Equal(t, `{"z":1,"a":2,"m":3}`, string(data))

	data, err = json.Marshal(New[int]())
	require.Nil(t, err)
	require.Equal(t, `{}`, string(data))
}

func TestUnmarshalJSONKeepsOrder(t *testing.T) {
	s := New[user]()
	err := json.Unmarshal([]byte(`{"u2":{"name":"bob"},"u1":{"name":"ann","level":3},"u2":{"name":"bo"}}`), s)
	require.Nil(t, err)
	require.Equal(t, []string{"u2", "u1"}, s.Keys())
	u, _ := s.Get("u2")
	require.Equal(t, "bo", u.Name)
	u, _ = s.Get("u1")
	require.Equal(t, 3, u.Level)
}

func TestMarshalJSONNested(t *testing.T) {
	inner := New[int]()
	require.Nil(t, inner.Set("y", 1))
	require.Nil(t, inner.Set("x", 2))
	outer := New[*KeyedSequence[int]]()
	require.Nil(t, outer.Set("b", inner))
	require.Nil(t, outer.Set("a", New[int]()))
	data, err := json.Marshal(outer)
	require.Nil(t, err)
	require.Equal(t, `{"b":{"y":1,"x":2},"a":{}}`, string(data))
}

func TestUnmarshalJSONErrors(t *testing.T) {
	s := New[int]()
	err := json.Unmarshal([]byte(`[1,2]`), s)
	require.True(t, errors.Is(err, ErrNotObject))

	err = json.Unmarshal([]byte(`{"a":"x"}`), s)
	require.NotNil(t, err)

	strict := New[int](WithReservedKeyPolicy(ReservedKeysReject))
	err = json.Unmarshal([]byte(`{"a":1,"filter":2}`), strict)
	require.True(t, errors.Is(err, ErrReservedKey))
	require.Equal(t, 0, strict.Len())

	require.Nil(t, json.Unmarshal([]byte(`null`), s))
}

func TestYAMLRoundTripKeepsOrder(t *testing.T) {
	s := New[user]()
	require.Nil(t, s.Set("zed", user{Name: "zed", Level: 1}))
	require.Nil(t, s.Set("amy", user{Name: "amy", Level: 2}))
	data, err := yaml.Marshal(s)
	require.Nil(t, err)

	decoded := New[user]()
	require.Nil(t, yaml.Unmarshal(data, decoded))
	require.Equal(t, []string{"zed", "amy"}, decoded.Keys())
	require.Equal(t, s.ToArray(), decoded.ToArray())
}

func TestUnmarshalYAML(t *testing.T) {
	doc := `
c: 3
a: 1
b: 2
`
	s := New[int]()
	require.Nil(t, yaml.Unmarshal([]byte(doc), s))
	require.Equal(t, []string{"c", "a", "b"}, s.Keys())
	require.Equal(t, []int{3, 1, 2}, s.ToArray())

	err := yaml.Unmarshal([]byte("- 1\n- 2\n"), s)
	require.True(t, errors.Is(err, ErrNotObject))
}

func TestString(t *testing.T) {
	require.Equal(t, "{a:1, b:2, c:3}", abc(t).String())
	require.Equal(t, "{}", New[int]().String())
}

func TestUnmarshalJSONTruncatedKeepsContent(t *testing.T) {
	s := abc(t)
	for _, data := range []string{`{"a":1`, `{"a":1,`, `{"a"`, `{`} {
		err := s.UnmarshalJSON([]byte(data))
		require.NotNil(t, err, data)
		require.Equal(t, []string{"a", "b", "c"}, s.Keys())
		require.Equal(t, []int{1, 2, 3}, s.ToArray())
	}
}
