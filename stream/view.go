package stream

import (
	"io"

	"github.com/indigo-web/msgwire/errors"
	"github.com/indigo-web/utils/uf"
)

// View exposes the underlying stream starting from the offset as if the offset was
// the very beginning of it. The data isn't copied: every operation is delegated to
// the underlying stream with positions rebased. The view and whatever else holds the
// underlying stream share the position, so only one of them must be advancing it at
// a time.
type View struct {
	src    io.Reader
	offset int64
}

func NewView(src io.Reader, offset int64) *View {
	return &View{
		src:    src,
		offset: offset,
	}
}

// Offset is the absolute position in the underlying stream the view begins at.
func (v *View) Offset() int64 {
	return v.offset
}

func (v *View) Seekable() bool {
	_, ok := v.src.(io.Seeker)
	return ok
}

func (v *View) Writable() bool {
	_, ok := v.src.(io.Writer)
	return ok
}

// Tell returns the current position relative to the offset. The position is negative
// if the underlying stream was rewound beyond the offset.
func (v *View) Tell() (int64, error) {
	seeker, err := v.seeker()
	if err != nil {
		return 0, err
	}

	pos, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	return pos - v.offset, nil
}

// Size returns the number of bytes the view spans.
func (v *View) Size() (int64, error) {
	if v.src == nil {
		return 0, errors.ErrDetached
	}

	if sized, ok := v.src.(interface{ Size() int64 }); ok {
		return sized.Size() - v.offset, nil
	}

	seeker, err := v.seeker()
	if err != nil {
		return 0, err
	}

	current, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	end, err := seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	if _, err = seeker.Seek(current, io.SeekStart); err != nil {
		return 0, err
	}

	return end - v.offset, nil
}

// Seek translates absolute positions by the offset, relative ones are passed as is. The
// returned position is relative to the offset.
func (v *View) Seek(offset int64, whence int) (int64, error) {
	seeker, err := v.seeker()
	if err != nil {
		return 0, err
	}

	if whence == io.SeekStart {
		offset += v.offset
	}

	pos, err := seeker.Seek(offset, whence)
	if err != nil {
		return 0, err
	}

	return pos - v.offset, nil
}

func (v *View) Rewind() error {
	_, err := v.Seek(0, io.SeekStart)
	return err
}

// EOF reports whether there's nothing left to read. Non-seekable streams can't tell
// that in advance, so false is returned.
func (v *View) EOF() bool {
	pos, err := v.Tell()
	if err != nil {
		return false
	}

	size, err := v.Size()
	if err != nil {
		return false
	}

	return pos >= size
}

func (v *View) Read(b []byte) (n int, err error) {
	if err = v.checkPosition(); err != nil {
		return 0, err
	}

	return v.src.Read(b)
}

func (v *View) Write(b []byte) (n int, err error) {
	if err = v.checkPosition(); err != nil {
		return 0, err
	}

	w, ok := v.src.(io.Writer)
	if !ok {
		return 0, errors.ErrNotWritable
	}

	return w.Write(b)
}

// Contents returns the rest of the view, starting from the current position.
func (v *View) Contents() (string, error) {
	if err := v.checkPosition(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(v.src)

	return uf.B2S(data), err
}

// ReadString returns the whole content of the view. Seekable streams are rewound to the
// beginning of the view first, otherwise only the rest is returned.
func (v *View) ReadString() (string, error) {
	if v.Seekable() {
		if err := v.Rewind(); err != nil {
			return "", err
		}
	}

	return v.Contents()
}

// Bytes behaves the same way as ReadString does.
func (v *View) Bytes() ([]byte, error) {
	str, err := v.ReadString()
	return uf.S2B(str), err
}

// Close closes the underlying stream, if it can be closed.
func (v *View) Close() error {
	if c, ok := v.src.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// Detach returns the underlying stream, leaving the view unusable.
func (v *View) Detach() io.Reader {
	src := v.src
	v.src = nil

	return src
}

// Unwrap returns the underlying stream, leaving the view intact.
func (v *View) Unwrap() io.Reader {
	return v.src
}

func (v *View) seeker() (io.Seeker, error) {
	if v.src == nil {
		return nil, errors.ErrDetached
	}

	seeker, ok := v.src.(io.Seeker)
	if !ok {
		return nil, errors.ErrNotSeekable
	}

	return seeker, nil
}

// checkPosition guards against acting on bytes before the view's beginning. The
// position of non-seekable streams is unknown, so they always pass.
func (v *View) checkPosition() error {
	if v.src == nil {
		return errors.ErrDetached
	}

	if !v.Seekable() {
		return nil
	}

	pos, err := v.Tell()
	if err != nil {
		return err
	}

	if pos < 0 {
		return errors.ErrInvalidPointerPosition
	}

	return nil
}
