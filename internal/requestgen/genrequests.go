package requestgen

import (
	"strconv"
	"strings"

	"github.com/indigo-web/msgwire/http/headers"
	"github.com/indigo-web/msgwire/internal/protocol/http1"
)

// Headers returns n headers, the last of which is always Host.
func Headers(n int) *headers.Headers {
	hdrs := headers.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Add("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), strings.Repeat("b", 100))
	}

	return hdrs.Add("Host", "localhost")
}

// Generate returns a complete GET request with the headers and no body.
func Generate(uri string, n int) []byte {
	request := http1.AppendRequestLine(nil, "GET", "/"+uri, "1.1")
	request = append(request, '\r', '\n')
	request = http1.AppendHeaders(request, Headers(n))

	return append(request, "\r\n\r\n"...)
}

// GenerateResponse returns a complete 200 OK response with the headers and the body.
func GenerateResponse(n int, body string) []byte {
	response := http1.AppendStatusLine(nil, "1.1", 200, "OK")
	response = append(response, '\r', '\n')
	response = http1.AppendHeaders(response, Headers(n))
	response = append(response, "\r\n\r\n"...)

	return append(response, body...)
}
