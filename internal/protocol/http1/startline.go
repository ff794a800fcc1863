package http1

import (
	"strings"

	"github.com/indigo-web/msgwire/errors"
	"github.com/indigo-web/msgwire/http/status"
	"golang.org/x/net/http/httpguts"
)

const httpScheme = "HTTP/"

type RequestLine struct {
	Method, Target, Version string
}

type StatusLine struct {
	Version string
	Code    status.Code
	Reason  string
}

// ParseRequestLine parses `METHOD SP request-target SP "HTTP/" 1*DIGIT "." 1*DIGIT`. The
// major version must not start with zero.
func ParseRequestLine(line string) (RequestLine, error) {
	method, rest, found := strings.Cut(line, " ")
	if !found || !httpguts.ValidHeaderFieldName(method) {
		return RequestLine{}, errors.ErrInvalidRequestLine
	}

	target, rest, found := strings.Cut(rest, " ")
	if !found || len(target) == 0 || strings.IndexAny(target, whitespace) != -1 {
		return RequestLine{}, errors.ErrInvalidRequestLine
	}

	version, found := strings.CutPrefix(rest, httpScheme)
	if !found || !validVersion(version, false) {
		return RequestLine{}, errors.ErrInvalidRequestLine
	}

	return RequestLine{
		Method:  method,
		Target:  target,
		Version: version,
	}, nil
}

// ParseStatusLine parses `"HTTP/" 1*DIGIT "." DIGIT SP 3DIGIT [ 1*WSP reason-phrase ]`.
// The code must fit into [100, 599]. The reason phrase may be absent or empty.
func ParseStatusLine(line string) (StatusLine, error) {
	rest, found := strings.CutPrefix(line, httpScheme)
	if !found {
		return StatusLine{}, errors.ErrInvalidStatusLine
	}

	version, rest, found := strings.Cut(rest, " ")
	if !found || !validVersion(version, true) {
		return StatusLine{}, errors.ErrInvalidStatusLine
	}

	if len(rest) < 3 || rest[0] < '1' || rest[0] > '5' || !isDigit(rest[1]) || !isDigit(rest[2]) {
		return StatusLine{}, errors.ErrInvalidStatusLine
	}

	code := status.Code(rest[0]-'0')*100 + status.Code(rest[1]-'0')*10 + status.Code(rest[2]-'0')
	rest = rest[3:]

	if len(rest) > 0 && strings.IndexByte(whitespace, rest[0]) == -1 {
		return StatusLine{}, errors.ErrInvalidStatusLine
	}

	return StatusLine{
		Version: version,
		Code:    code,
		Reason:  strings.TrimLeft(rest, whitespace),
	}, nil
}

const whitespace = " \t\n\v\f\r"

func validVersion(version string, singleMinor bool) bool {
	major, minor, found := strings.Cut(version, ".")
	if !found || len(major) == 0 || len(minor) == 0 || major[0] == '0' {
		return false
	}

	if singleMinor && len(minor) != 1 {
		return false
	}

	return isNumber(major) && isNumber(minor)
}

func isNumber(str string) bool {
	for i := 0; i < len(str); i++ {
		if !isDigit(str[i]) {
			return false
		}
	}

	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
