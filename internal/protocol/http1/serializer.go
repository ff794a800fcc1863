package http1

import (
	"strconv"

	"github.com/indigo-web/msgwire/http/headers"
	"github.com/indigo-web/msgwire/http/status"
	"github.com/indigo-web/utils/uf"
)

var crlf = []byte("\r\n")

// AppendRequestLine appends the request line without the trailing CRLF.
func AppendRequestLine(buff []byte, method, target, version string) []byte {
	buff = append(buff, method...)
	buff = append(buff, ' ')
	buff = append(buff, target...)
	buff = append(buff, ' ')
	buff = append(buff, httpScheme...)

	return append(buff, version...)
}

// AppendStatusLine appends the status line without the trailing CRLF. Empty reason is
// omitted together with the separating space.
func AppendStatusLine(buff []byte, version string, code status.Code, reason string) []byte {
	buff = append(buff, httpScheme...)
	buff = append(buff, version...)
	buff = append(buff, ' ')
	buff = strconv.AppendUint(buff, uint64(code), 10)

	if len(reason) > 0 {
		buff = append(buff, ' ')
		buff = append(buff, reason...)
	}

	return buff
}

// AppendHeaders appends every value of every header as a separate line, normalizing
// the names. Lines are separated by CRLF, however the last one isn't terminated. Names
// aren't validated.
func AppendHeaders(buff []byte, hdrs *headers.Headers) []byte {
	first := true

	for key, values := range hdrs.Iter() {
		for _, value := range values {
			if !first {
				buff = append(buff, crlf...)
			}

			first = false
			buff = appendName(buff, key)
			buff = append(buff, ':', ' ')
			buff = append(buff, value...)
		}
	}

	return buff
}

// NormalizeName upper-cases the first letter of every word of the name, treating dashes
// and whitespaces as word separators. Spaces are then replaced by dashes, so e.g.
// x-foo-bar becomes X-Foo-Bar. Other letters are left intact.
func NormalizeName(name string) string {
	return uf.B2S(appendName(make([]byte, 0, len(name)), name))
}

func appendName(buff []byte, name string) []byte {
	upper := true

	for i := 0; i < len(name); i++ {
		switch c := name[i]; c {
		case '-', ' ':
			buff = append(buff, '-')
			upper = true
		case '\t', '\n', '\v', '\f', '\r':
			buff = append(buff, c)
			upper = true
		default:
			if upper && c >= 'a' && c <= 'z' {
				c &^= 0x20
			}

			buff = append(buff, c)
			upper = false
		}
	}

	return buff
}
