package stream

import (
	"io"

	"github.com/indigo-web/msgwire/errors"
	"github.com/indigo-web/utils/uf"
)

// Memory is an in-memory stream, supporting reading, writing and seeking. Writes happen
// at the current position, overriding existing data and growing the stream if needed.
type Memory struct {
	data []byte
	pos  int64
}

func NewMemory(data []byte) *Memory {
	return &Memory{data: data}
}

func FromString(str string) *Memory {
	return NewMemory([]byte(str))
}

func (m *Memory) Read(b []byte) (n int, err error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}

	n = copy(b, m.data[m.pos:])
	m.pos += int64(n)

	return n, nil
}

func (m *Memory) Write(b []byte) (n int, err error) {
	if gap := m.pos - int64(len(m.data)); gap > 0 {
		m.data = append(m.data, make([]byte, gap)...)
	}

	end := m.pos + int64(len(b))
	if end > int64(len(m.data)) {
		m.data = append(m.data[:m.pos], b...)
	} else {
		copy(m.data[m.pos:], b)
	}

	m.pos = end

	return len(b), nil
}

func (m *Memory) WriteString(str string) (n int, err error) {
	return m.Write(uf.S2B(str))
}

func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	var pos int64

	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = m.pos + offset
	case io.SeekEnd:
		pos = int64(len(m.data)) + offset
	default:
		return m.pos, errors.New(errors.InvalidArgument, "invalid whence")
	}

	if pos < 0 {
		return m.pos, errors.New(errors.InvalidArgument, "negative position")
	}

	m.pos = pos

	return pos, nil
}

// Size returns the total length of the stream, regardless of the current position.
func (m *Memory) Size() int64 {
	return int64(len(m.data))
}

// String returns the whole content without moving the position.
func (m *Memory) String() string {
	return string(m.data)
}

// Bytes returns the whole content. The returned slice must not be modified.
func (m *Memory) Bytes() []byte {
	return m.data
}

func (m *Memory) Close() error {
	return nil
}
