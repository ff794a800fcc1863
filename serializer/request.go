package serializer

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/indigo-web/msgwire/errors"
	"github.com/indigo-web/msgwire/http"
	"github.com/indigo-web/msgwire/internal/protocol/http1"
	"github.com/indigo-web/msgwire/stream"
)

// RequestString converts requests to and from their wire format. It's safe for
// concurrent use.
type RequestString struct {
	text
}

func NewRequestString(opts ...Option) *RequestString {
	return &RequestString{text: newText(opts)}
}

// Decode parses the message. The message is copied into an in-memory stream, which
// then backs the body of the returned request.
func (r *RequestString) Decode(message string) (*http.Request, error) {
	return r.DecodeStream(stream.FromString(message))
}

// DecodeStream parses the message from the stream, which must be an io.ReadSeeker.
// The stream is rewound first. The body of the returned request is a *stream.View
// into the src, so the src must outlive the request.
func (r *RequestString) DecodeStream(src io.Reader) (*http.Request, error) {
	request, err := r.decode(src)
	if err != nil {
		return nil, r.reject("request", err)
	}

	return request, nil
}

func (r *RequestString) decode(src io.Reader) (*http.Request, error) {
	rs, lines, err := r.open(src)
	if err != nil {
		return nil, err
	}

	line, err := lines.ReadLine()
	if err != nil {
		return nil, err
	}

	requestLine, err := http1.ParseRequestLine(line)
	if err != nil {
		return nil, err
	}

	uri, err := uriFromTarget(requestLine.Target)
	if err != nil {
		return nil, err
	}

	hdrs, body, err := r.split(rs, lines)
	if err != nil {
		return nil, err
	}

	request := http.NewRequest(requestLine.Method, uri)
	request.Protocol = requestLine.Version
	request.Target = requestLine.Target
	request.Body = body
	inject(request.Headers, hdrs)

	return request, nil
}

// Encode serializes the request. The blank line delimiting the body is emitted only
// if the body isn't empty, unless configured otherwise.
func (r *RequestString) Encode(request *http.Request) (string, error) {
	body, err := http.BodyString(request.Body)
	if err != nil {
		return "", err
	}

	buff := http1.AppendRequestLine(nil, request.Method, request.RequestTarget(), request.Protocol)
	delimit := len(body) > 0 || r.cfg.Request.AlwaysDelimitBody

	return r.frame(buff, request.Headers, delimit, body), nil
}

// uriFromTarget returns a full URI for absolute-form targets and an empty one for
// authority-form and asterisk-form targets. Origin-form targets have only path and
// query set.
func uriFromTarget(target string) (*url.URL, error) {
	switch {
	case strings.HasPrefix(target, "http://"), strings.HasPrefix(target, "https://"):
	case target[0] != '/':
		return new(url.URL), nil
	}

	uri, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidRequestLine, err)
	}

	return uri, nil
}
