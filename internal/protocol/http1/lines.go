package http1

import (
	"io"

	"github.com/indigo-web/msgwire/errors"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
)

// LineReader extracts CRLF-terminated lines from the stream. It reads strictly one byte
// at a time, so the stream is never consumed beyond the terminator of the last returned
// line. That's what makes it possible to stop right at the beginning of the body and
// hand the rest of the stream over without copying it.
type LineReader struct {
	src  io.Reader
	buff *buffer.Buffer[byte]
	char [1]byte
}

// NewLineReader returns a reader over the src. Lines are accumulated in the buff, which
// must not be cleared as long as returned lines are in use: they aren't copied.
func NewLineReader(src io.Reader, buff *buffer.Buffer[byte]) *LineReader {
	return &LineReader{
		src:  src,
		buff: buff,
	}
}

// ReadLine returns the next line without its terminator. Reaching the end of the stream
// isn't an error: whatever was accumulated by then is returned, so an empty line is
// returned either on a blank line or at the end.
func (l *LineReader) ReadLine() (string, error) {
	var crFound bool

	for {
		char, err := l.readByte()
		switch err {
		case nil:
		case io.EOF:
			if crFound {
				l.buff.Finish()
				return "", errors.ErrUnterminatedHeaders
			}

			return uf.B2S(l.buff.Finish()), nil
		default:
			l.buff.Finish()
			return "", err
		}

		if crFound {
			if char != '\n' {
				l.buff.Finish()
				return "", errors.ErrUnexpectedCR
			}

			return uf.B2S(l.buff.Finish()), nil
		}

		switch char {
		case '\n':
			l.buff.Finish()
			return "", errors.ErrUnexpectedLF
		case '\r':
			crFound = true
		default:
			if !l.buff.Append(char) {
				l.buff.Finish()
				return "", errors.ErrHeadTooLarge
			}
		}
	}
}

func (l *LineReader) readByte() (byte, error) {
	if br, ok := l.src.(io.ByteReader); ok {
		return br.ReadByte()
	}

	_, err := io.ReadFull(l.src, l.char[:])

	return l.char[0], err
}
