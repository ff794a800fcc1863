package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indigo-web/msgwire/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out, zerolog.Nop())
	return out.String(), err
}

func TestRun(t *testing.T) {
	t.Run("request as text", func(t *testing.T) {
		out, err := runWith(t, "GET /foo HTTP/1.1\r\nx-foo-bar: baz\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "GET /foo HTTP/1.1\r\nX-Foo-Bar: baz", out)
	})

	t.Run("response as json", func(t *testing.T) {
		out, err := runWith(t, "HTTP/1.1 200 OK\r\ncontent-type: text/plain\r\n\r\nhello", "-kind", "response", "-out", "json")
		require.NoError(t, err)
		require.JSONEq(t, `{
			"status_code": 200,
			"reason_phrase": "OK",
			"protocol_version": "1.1",
			"headers": {"content-type": ["text/plain"]},
			"body": "hello"
		}`, out)
	})

	t.Run("from file with config", func(t *testing.T) {
		dir := t.TempDir()
		message := filepath.Join(dir, "request.http")
		require.NoError(t, os.WriteFile(message, []byte("GET / HTTP/1.1\r\nAccept: */*\r\n\r\n"), 0o644))
		cfg := filepath.Join(dir, "config.toml")
		require.NoError(t, os.WriteFile(cfg, []byte("[request]\nalways_delimit_body = true\n"), 0o644))

		out, err := runWith(t, "", "-config", cfg, message)
		require.NoError(t, err)
		require.Equal(t, "GET / HTTP/1.1\r\nAccept: */*\r\n\r\n", out)
	})

	t.Run("malformed message", func(t *testing.T) {
		_, err := runWith(t, "What is this mess?")
		require.ErrorIs(t, err, errors.ErrInvalidRequestLine)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := runWith(t, "", "-kind", "trailer")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runWith(t, "", filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})
}
