package http1

import (
	"strings"

	"github.com/indigo-web/msgwire/errors"
	"github.com/indigo-web/msgwire/http/headers"
	"github.com/indigo-web/msgwire/internal/strutil"
	"golang.org/x/net/http/httpguts"
)

// ParseHeaders consumes header lines until a blank line or the end of the stream,
// storing them into hdrs. Obsolete line folding is supported: a line starting with
// whitespace is concatenated onto the previous value, without any separator.
func ParseHeaders(r *LineReader, hdrs *headers.Headers) error {
	var current string

	for {
		line, err := r.ReadLine()
		if err != nil {
			return err
		}

		if len(line) == 0 {
			return nil
		}

		if key, value, ok := cutHeader(line); ok {
			current = key
			hdrs.Add(key, strutil.LStripWS(value))
			continue
		}

		if len(current) == 0 {
			return errors.ErrInvalidHeader
		}

		if line[0] != ' ' && line[0] != '\t' {
			return errors.ErrInvalidHeaderContinuation
		}

		hdrs.Fold(current, strutil.LStripWS(line))
	}
}

func cutHeader(line string) (key, value string, ok bool) {
	colon := strings.IndexByte(line, ':')
	if colon == -1 {
		return "", "", false
	}

	key = line[:colon]
	if !httpguts.ValidHeaderFieldName(key) {
		return "", "", false
	}

	return key, line[colon+1:], true
}
