package serializer

import (
	"io"

	"github.com/indigo-web/msgwire/http"
	"github.com/indigo-web/msgwire/internal/protocol/http1"
	"github.com/indigo-web/msgwire/stream"
)

// ResponseString converts responses to and from their wire format. It's safe for
// concurrent use.
type ResponseString struct {
	text
}

func NewResponseString(opts ...Option) *ResponseString {
	return &ResponseString{text: newText(opts)}
}

// Decode parses the message. The message is copied into an in-memory stream, which
// then backs the body of the returned response.
func (r *ResponseString) Decode(message string) (*http.Response, error) {
	return r.DecodeStream(stream.FromString(message))
}

// DecodeStream parses the message from the stream, which must be an io.ReadSeeker.
// The stream is rewound first. The body of the returned response is a *stream.View
// into the src, so the src must outlive the response.
func (r *ResponseString) DecodeStream(src io.Reader) (*http.Response, error) {
	response, err := r.decode(src)
	if err != nil {
		return nil, r.reject("response", err)
	}

	return response, nil
}

func (r *ResponseString) decode(src io.Reader) (*http.Response, error) {
	rs, lines, err := r.open(src)
	if err != nil {
		return nil, err
	}

	line, err := lines.ReadLine()
	if err != nil {
		return nil, err
	}

	statusLine, err := http1.ParseStatusLine(line)
	if err != nil {
		return nil, err
	}

	hdrs, body, err := r.split(rs, lines)
	if err != nil {
		return nil, err
	}

	response := http.NewResponse(statusLine.Code, statusLine.Reason)
	response.Protocol = statusLine.Version
	response.Body = body
	inject(response.Headers, hdrs)

	return response, nil
}

// Encode serializes the response. Unlike requests, the blank line after the headers
// is always emitted.
func (r *ResponseString) Encode(response *http.Response) (string, error) {
	body, err := http.BodyString(response.Body)
	if err != nil {
		return "", err
	}

	buff := http1.AppendStatusLine(nil, response.Protocol, response.Code, response.Reason)

	return r.frame(buff, response.Headers, true, body), nil
}
