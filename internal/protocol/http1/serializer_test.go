package http1

import (
	"testing"

	"github.com/indigo-web/msgwire/http/headers"
	"github.com/indigo-web/msgwire/http/status"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	for _, tc := range []struct{ name, want string }{
		{"x-foo-bar", "X-Foo-Bar"},
		{"content-type", "Content-Type"},
		{"Content-Type", "Content-Type"},
		{"ETag", "ETag"},
		{"x-FOO", "X-FOO"},
		{"www-authenticate", "Www-Authenticate"},
		{"a--b", "A--B"},
		{"foo bar", "Foo-Bar"},
		{"x_foo.bar", "X_foo.bar"},
		{"", ""},
	} {
		require.Equal(t, tc.want, NormalizeName(tc.name), tc.name)
	}
}

func TestAppendHeaders(t *testing.T) {
	t.Run("lines", func(t *testing.T) {
		hdrs := headers.New().
			Add("content-type", "text/plain").
			Add("x-foo-bar", "Baz").
			Add("X-FOO-BAR", "Bat")

		require.Equal(t,
			"Content-Type: text/plain\r\nX-Foo-Bar: Baz\r\nX-Foo-Bar: Bat",
			string(AppendHeaders(nil, hdrs)),
		)
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, AppendHeaders(nil, headers.New()))
	})

	t.Run("names are not validated", func(t *testing.T) {
		hdrs := headers.New().Add("thi;-i()-invalid", "value")
		require.Equal(t, "Thi;-I()-Invalid: value", string(AppendHeaders(nil, hdrs)))
	})
}

func TestAppendStartLine(t *testing.T) {
	require.Equal(t, "GET /foo?bar HTTP/1.1", string(AppendRequestLine(nil, "GET", "/foo?bar", "1.1")))
	require.Equal(t, "HTTP/1.1 200 OK", string(AppendStatusLine(nil, "1.1", status.OK, "OK")))
	require.Equal(t, "HTTP/1.1 299", string(AppendStatusLine(nil, "1.1", 299, "")))
}
