package serializer

import (
	"io"
	"math"

	"github.com/indigo-web/msgwire/config"
	"github.com/indigo-web/msgwire/errors"
	"github.com/indigo-web/msgwire/http/headers"
	"github.com/indigo-web/msgwire/internal/protocol/http1"
	"github.com/indigo-web/msgwire/stream"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
	"github.com/rs/zerolog"
)

// Option customizes a codec.
type Option func(*text)

// WithConfig replaces the default settings.
func WithConfig(cfg *config.Config) Option {
	return func(t *text) {
		t.cfg = cfg
	}
}

// WithLogger sets the logger decoding failures are reported to. Nothing is logged by
// default.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *text) {
		t.log = logger
	}
}

// text is the common part of the request and response wire-format codecs.
type text struct {
	cfg *config.Config
	log zerolog.Logger
}

func newText(opts []Option) text {
	t := text{
		cfg: config.Default(),
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&t)
	}

	return t
}

// open rewinds the stream and prepares a line reader over it. Only seekable streams
// are accepted, as the body is later exposed as a view into the very same stream.
func (t text) open(src io.Reader) (io.ReadSeeker, *http1.LineReader, error) {
	rs, ok := src.(io.ReadSeeker)
	if !ok {
		return nil, nil, errors.ErrInvalidArgument
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, nil, err
	}

	maximal := t.cfg.Head.Maximal
	if maximal == 0 {
		maximal = math.MaxInt
	}

	buff := buffer.NewBuffer[byte](t.cfg.Head.Default, maximal)

	return rs, http1.NewLineReader(rs, buff), nil
}

// split parses the header block and anchors the body view at wherever it ended.
func (t text) split(rs io.ReadSeeker, lines *http1.LineReader) (*headers.Headers, *stream.View, error) {
	hdrs := headers.NewPrealloc(t.cfg.Headers.Prealloc)
	if err := http1.ParseHeaders(lines, hdrs); err != nil {
		return nil, nil, err
	}

	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, nil, err
	}

	return hdrs, stream.NewView(rs, pos), nil
}

// frame completes the already serialized start line with the header block, the blank
// line delimiting the body, if requested, and the body itself.
func (t text) frame(buff []byte, hdrs *headers.Headers, delimit bool, body string) string {
	if hdrs != nil && !hdrs.Empty() {
		buff = append(buff, '\r', '\n')
		buff = http1.AppendHeaders(buff, hdrs)
	}

	if delimit {
		buff = append(buff, "\r\n\r\n"...)
	}

	return uf.B2S(append(buff, body...))
}

func (t text) reject(what string, err error) error {
	t.log.Debug().
		Str("kind", errors.KindOf(err).String()).
		Err(err).
		Msg(what + " rejected")

	return err
}

// inject replaces the headers of the message by the parsed ones, name by name.
func inject(dst, src *headers.Headers) {
	for key, values := range src.Iter() {
		dst.Set(key, values...)
	}
}
