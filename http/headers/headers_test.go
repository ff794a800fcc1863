package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	getHeaders := func() *Headers {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("hello", "Pavlo")
	}

	t.Run("grouping", func(t *testing.T) {
		h := getHeaders()
		require.Equal(t, 3, h.Len())
		require.Equal(t, []string{"Foo", "Hello", "Lorem"}, h.Keys())
		require.Equal(t, []string{"World", "Pavlo"}, h.Values("HELLO"))
		require.Equal(t, "World", h.Value("hello"))
		require.Equal(t, "World, Pavlo", h.Line("Hello"))
	})

	t.Run("absent", func(t *testing.T) {
		h := getHeaders()
		value, found := h.Get("Content-Type")
		require.False(t, found)
		require.Empty(t, value)
		require.Nil(t, h.Values("Content-Type"))
		require.False(t, h.Has("Content-Type"))
		require.Empty(t, h.Line("Content-Type"))
	})

	t.Run("set", func(t *testing.T) {
		h := getHeaders().Set("HELLO", "no more Pavlo")
		require.Equal(t, []string{"Foo", "HELLO", "Lorem"}, h.Keys())
		require.Equal(t, []string{"no more Pavlo"}, h.Values("hello"))

		h.Set("Accept", "text/html", "text/plain")
		require.Equal(t, []string{"Foo", "HELLO", "Lorem", "Accept"}, h.Keys())
		require.Equal(t, []string{"text/html", "text/plain"}, h.Values("accept"))

		h.Set("Foo")
		require.False(t, h.Has("foo"))
	})

	t.Run("delete", func(t *testing.T) {
		h := getHeaders()
		h.Del("HELLO")
		require.Equal(t, []string{"Foo", "Lorem"}, h.Keys())
		h.Del("nonexistent")
		require.Equal(t, 2, h.Len())
	})

	t.Run("fold", func(t *testing.T) {
		h := New().Add("X-Foo-Bar", "Baz").Add("X-Foo-Bar", "Baz;")
		require.True(t, h.Fold("x-foo-bar", "Bat"))
		require.Equal(t, []string{"Baz", "Baz;Bat"}, h.Values("X-Foo-Bar"))
		require.False(t, h.Fold("Content-Type", "x"))
	})

	t.Run("iter", func(t *testing.T) {
		var keys []string
		for key, values := range getHeaders().Iter() {
			keys = append(keys, key)
			require.NotEmpty(t, values)
		}

		require.Equal(t, []string{"Foo", "Hello", "Lorem"}, keys)

		for key := range getHeaders().Iter() {
			require.Equal(t, "Foo", key)
			break
		}
	})

	t.Run("expose", func(t *testing.T) {
		require.Equal(t, []Header{
			{Key: "Foo", Values: []string{"bar"}},
			{Key: "Hello", Values: []string{"World", "Pavlo"}},
			{Key: "Lorem", Values: []string{"ipsum"}},
		}, getHeaders().Expose())
		require.Empty(t, New().Expose())
	})

	t.Run("clone", func(t *testing.T) {
		original := getHeaders()
		cloned := original.Clone()
		cloned.Add("Foo", "baz")
		require.True(t, cloned.Fold("Hello", "!"))
		require.Equal(t, []string{"bar"}, original.Values("Foo"))
		require.Equal(t, []string{"World", "Pavlo"}, original.Values("Hello"))
	})

	t.Run("from map", func(t *testing.T) {
		h := NewFromMap(map[string][]string{
			"b": {"2"},
			"a": {"1", "11"},
		})
		require.Equal(t, []string{"a", "b"}, h.Keys())
		require.Equal(t, map[string][]string{"a": {"1", "11"}, "b": {"2"}}, h.Map())
	})

	t.Run("clear", func(t *testing.T) {
		h := getHeaders()
		h.Clear()
		require.True(t, h.Empty())
	})
}
