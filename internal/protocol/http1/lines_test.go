package http1

import (
	"io"
	"strings"
	"testing"

	"github.com/indigo-web/msgwire/errors"
	"github.com/indigo-web/msgwire/stream"
	"github.com/indigo-web/utils/buffer"
	"github.com/stretchr/testify/require"
)

func newReader(data string) (*LineReader, *stream.Memory) {
	src := stream.FromString(data)
	return NewLineReader(src, buffer.NewBuffer[byte](0, 4096)), src
}

func readAll(t *testing.T, r *LineReader) (lines []string) {
	for {
		line, err := r.ReadLine()
		require.NoError(t, err)
		if len(line) == 0 {
			return lines
		}

		lines = append(lines, line)
	}
}

func TestLineReader(t *testing.T) {
	t.Run("crlf lines", func(t *testing.T) {
		r, _ := newReader("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n")
		require.Equal(t, []string{"GET / HTTP/1.1", "Host: example.com"}, readAll(t, r))
	})

	t.Run("stops right after the terminator", func(t *testing.T) {
		r, src := newReader("first\r\nsecond\r\nbody")
		line, err := r.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "first", line)

		pos, err := src.Seek(0, io.SeekCurrent)
		require.NoError(t, err)
		require.EqualValues(t, 7, pos)
	})

	t.Run("lines stay intact", func(t *testing.T) {
		r, _ := newReader("first\r\nsecond\r\n")
		first, err := r.ReadLine()
		require.NoError(t, err)
		second, err := r.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "first", first)
		require.Equal(t, "second", second)
	})

	t.Run("unterminated last line", func(t *testing.T) {
		r, _ := newReader("HTTP/1.0 204")
		line, err := r.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.0 204", line)

		line, err = r.ReadLine()
		require.NoError(t, err)
		require.Empty(t, line)
	})

	t.Run("bare CR", func(t *testing.T) {
		r, _ := newReader("Foo: bar\rBaz: qux\r\n")
		_, err := r.ReadLine()
		require.ErrorIs(t, err, errors.ErrUnexpectedCR)
		require.ErrorIs(t, err, errors.ErrMalformedLineEnding)
	})

	t.Run("bare LF", func(t *testing.T) {
		r, _ := newReader("Foo: bar\nBaz: qux\r\n")
		_, err := r.ReadLine()
		require.ErrorIs(t, err, errors.ErrUnexpectedLF)
		require.ErrorIs(t, err, errors.ErrMalformedLineEnding)
	})

	t.Run("CR at the end", func(t *testing.T) {
		r, _ := newReader("Foo: bar\r")
		_, err := r.ReadLine()
		require.ErrorIs(t, err, errors.ErrUnterminatedHeaders)
	})

	t.Run("too large head", func(t *testing.T) {
		src := strings.NewReader(strings.Repeat("a", 100) + "\r\n")
		r := NewLineReader(src, buffer.NewBuffer[byte](0, 64))
		_, err := r.ReadLine()
		require.ErrorIs(t, err, errors.ErrHeadTooLarge)
	})

	t.Run("one byte at a time", func(t *testing.T) {
		src := io.MultiReader(strings.NewReader("Foo: b"), strings.NewReader("ar\r"), strings.NewReader("\nrest"))
		r := NewLineReader(src, buffer.NewBuffer[byte](0, 4096))
		line, err := r.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "Foo: bar", line)

		rest, err := io.ReadAll(src)
		require.NoError(t, err)
		require.Equal(t, "rest", string(rest))
	})
}
