package http

import (
	"io"
	"net"
	"net/url"

	"github.com/indigo-web/msgwire/http/headers"
)

// DefaultProtocol is the protocol version newly constructed messages carry.
const DefaultProtocol = "1.1"

// Request represents HTTP request
type Request struct {
	// Method is any token, not limited to well-known methods.
	Method string
	// Target is the request-target as it appears in the request line. If empty, it's
	// derived from the URI.
	Target string
	// URI is never nil. Requests with authority-form or asterisk-form targets carry an
	// empty one.
	URI *url.URL
	// Protocol is the version without the HTTP/ prefix, e.g. 1.1
	Protocol string
	Headers  *headers.Headers
	// Body is nil for empty bodies. Decoded requests hold a *stream.View here.
	Body io.Reader
}

// NewRequest returns a request of protocol version 1.1. If the URI contains a host, the
// Host header is set from it.
func NewRequest(method string, uri *url.URL) *Request {
	if uri == nil {
		uri = new(url.URL)
	}

	request := &Request{
		Method:   method,
		URI:      uri,
		Protocol: DefaultProtocol,
		Headers:  headers.New(),
	}

	if host := hostHeader(uri); len(host) > 0 {
		request.Headers.Add("Host", host)
	}

	return request
}

// RequestTarget returns the Target, if set. Otherwise, it's built from the URI's path
// and query, defaulting to /
func (r *Request) RequestTarget() string {
	if len(r.Target) > 0 {
		return r.Target
	}

	if r.URI == nil {
		return "/"
	}

	target := r.URI.EscapedPath()
	if len(target) == 0 {
		target = "/"
	}

	if len(r.URI.RawQuery) > 0 {
		target += "?" + r.URI.RawQuery
	}

	return target
}

// hostHeader returns the URI's host, with the port if it isn't the scheme's default one.
func hostHeader(uri *url.URL) string {
	host := uri.Hostname()
	if len(host) == 0 {
		return ""
	}

	port := uri.Port()
	switch {
	case len(port) == 0,
		port == "80" && uri.Scheme == "http",
		port == "443" && uri.Scheme == "https":
		if len(uri.Host) > 0 && uri.Host[0] == '[' {
			return "[" + host + "]"
		}

		return host
	}

	return net.JoinHostPort(host, port)
}
