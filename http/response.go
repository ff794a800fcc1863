package http

import (
	"io"

	"github.com/indigo-web/msgwire/http/headers"
	"github.com/indigo-web/msgwire/http/status"
)

// Response represents HTTP response
type Response struct {
	Code status.Code
	// Reason is the reason phrase. Empty reason is omitted from the status line.
	Reason string
	// Protocol is the version without the HTTP/ prefix, e.g. 1.1
	Protocol string
	Headers  *headers.Headers
	// Body is nil for empty bodies. Decoded responses hold a *stream.View here.
	Body io.Reader
}

// NewResponse returns a response of protocol version 1.1. Empty reason is substituted
// by the code's registered reason phrase, if there's one.
func NewResponse(code status.Code, reason string) *Response {
	if len(reason) == 0 {
		reason = status.Text(code)
	}

	return &Response{
		Code:     code,
		Reason:   reason,
		Protocol: DefaultProtocol,
		Headers:  headers.New(),
	}
}
