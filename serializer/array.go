package serializer

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/indigo-web/msgwire/errors"
	"github.com/indigo-web/msgwire/http"
	"github.com/indigo-web/msgwire/http/headers"
	"github.com/indigo-web/msgwire/http/status"
	"github.com/indigo-web/msgwire/stream"
	json "github.com/json-iterator/go"
)

const (
	keyMethod          = "method"
	keyRequestTarget   = "request_target"
	keyURI             = "uri"
	keyProtocolVersion = "protocol_version"
	keyHeaders         = "headers"
	keyBody            = "body"
	keyStatusCode      = "status_code"
	keyReasonPhrase    = "reason_phrase"
)

// the standard library compatible config sorts map keys, so the output is stable
var jsonAPI = json.ConfigCompatibleWithStandardLibrary

// RequestArray converts requests to and from a flat map of their fields, which is
// also how they're carried as JSON.
type RequestArray struct{}

func NewRequestArray() RequestArray {
	return RequestArray{}
}

// ToMap returns the request's fields. The body is read whole.
func (RequestArray) ToMap(request *http.Request) (map[string]any, error) {
	body, err := http.BodyString(request.Body)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		keyMethod:          request.Method,
		keyRequestTarget:   request.RequestTarget(),
		keyURI:             uriString(request),
		keyProtocolVersion: request.Protocol,
		keyHeaders:         headersMap(request.Headers),
		keyBody:            body,
	}, nil
}

// FromMap builds the request back. Every key produced by ToMap must be present.
func (a RequestArray) FromMap(m map[string]any) (*http.Request, error) {
	request, err := a.fromMap(m)
	if err != nil {
		return nil, fmt.Errorf("cannot deserialize request: %w", err)
	}

	return request, nil
}

func (RequestArray) fromMap(m map[string]any) (*http.Request, error) {
	f := fields{m: m, kind: "request"}
	rawURI := f.string(keyURI)
	method := f.string(keyMethod)
	body := f.string(keyBody)
	hdrs := f.headers(keyHeaders)
	target := f.string(keyRequestTarget)
	protocol := f.protocol(keyProtocolVersion)
	if f.err != nil {
		return nil, f.err
	}

	uri, err := url.Parse(rawURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidField, err)
	}

	request := http.NewRequest(method, uri)
	request.Protocol = protocol
	request.Target = target
	request.Body = stream.FromString(body)
	inject(request.Headers, hdrs)

	return request, nil
}

// ToJSON returns the request's fields as a JSON object.
func (a RequestArray) ToJSON(request *http.Request) ([]byte, error) {
	m, err := a.ToMap(request)
	if err != nil {
		return nil, err
	}

	return jsonAPI.Marshal(m)
}

func (a RequestArray) FromJSON(data []byte) (*http.Request, error) {
	var m map[string]any
	if err := jsonAPI.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("cannot deserialize request: %w", err)
	}

	return a.FromMap(m)
}

// ResponseArray converts responses to and from a flat map of their fields.
type ResponseArray struct{}

func NewResponseArray() ResponseArray {
	return ResponseArray{}
}

func (ResponseArray) ToMap(response *http.Response) (map[string]any, error) {
	body, err := http.BodyString(response.Body)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		keyStatusCode:      int(response.Code),
		keyReasonPhrase:    response.Reason,
		keyProtocolVersion: response.Protocol,
		keyHeaders:         headersMap(response.Headers),
		keyBody:            body,
	}, nil
}

// FromMap builds the response back. Every key produced by ToMap must be present. Empty
// reason phrase is substituted by the default one.
func (a ResponseArray) FromMap(m map[string]any) (*http.Response, error) {
	response, err := a.fromMap(m)
	if err != nil {
		return nil, fmt.Errorf("cannot deserialize response: %w", err)
	}

	return response, nil
}

func (ResponseArray) fromMap(m map[string]any) (*http.Response, error) {
	f := fields{m: m, kind: "response"}
	body := f.string(keyBody)
	code := f.code(keyStatusCode)
	hdrs := f.headers(keyHeaders)
	protocol := f.protocol(keyProtocolVersion)
	reason := f.string(keyReasonPhrase)
	if f.err != nil {
		return nil, f.err
	}

	response := http.NewResponse(code, reason)
	response.Protocol = protocol
	response.Body = stream.FromString(body)
	inject(response.Headers, hdrs)

	return response, nil
}

func (a ResponseArray) ToJSON(response *http.Response) ([]byte, error) {
	m, err := a.ToMap(response)
	if err != nil {
		return nil, err
	}

	return jsonAPI.Marshal(m)
}

func (a ResponseArray) FromJSON(data []byte) (*http.Response, error) {
	var m map[string]any
	if err := jsonAPI.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("cannot deserialize response: %w", err)
	}

	return a.FromMap(m)
}

func uriString(request *http.Request) string {
	if request.URI == nil {
		return ""
	}

	return request.URI.String()
}

func headersMap(hdrs *headers.Headers) map[string][]string {
	if hdrs == nil {
		return map[string][]string{}
	}

	return hdrs.Map()
}

// fields extracts typed values from the map. The first failure is memorized and all
// the following extractions become no-op.
type fields struct {
	m    map[string]any
	kind string
	err  error
}

func (f *fields) get(key string) (any, bool) {
	if f.err != nil {
		return nil, false
	}

	value, found := f.m[key]
	if !found || value == nil {
		f.err = fmt.Errorf("%w: missing %q key in serialized %s", errors.ErrMissingKey, key, f.kind)
		return nil, false
	}

	return value, true
}

func (f *fields) invalid(key string, value any) {
	f.err = fmt.Errorf("%w: unexpected %q value of type %T", errors.ErrInvalidField, key, value)
}

func (f *fields) string(key string) string {
	value, ok := f.get(key)
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		f.invalid(key, value)
		return ""
	}
}

// protocol accepts numbers as well, as 1.1 is a valid JSON number.
func (f *fields) protocol(key string) string {
	value, ok := f.get(key)
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		f.invalid(key, value)
		return ""
	}
}

func (f *fields) code(key string) status.Code {
	value, ok := f.get(key)
	if !ok {
		return 0
	}

	var code int

	switch v := value.(type) {
	case int:
		code = v
	case int64:
		code = int(v)
	case status.Code:
		code = int(v)
	case float64:
		code = int(v)
		if float64(code) != v {
			f.invalid(key, value)
			return 0
		}
	case string:
		c, err := strconv.Atoi(v)
		if err != nil {
			f.invalid(key, value)
			return 0
		}

		code = c
	default:
		f.invalid(key, value)
		return 0
	}

	if code < 0 || code > 999 || !status.Valid(status.Code(code)) {
		f.invalid(key, value)
		return 0
	}

	return status.Code(code)
}

func (f *fields) headers(key string) *headers.Headers {
	value, ok := f.get(key)
	if !ok {
		return nil
	}

	switch v := value.(type) {
	case *headers.Headers:
		return v
	case map[string][]string:
		return headers.NewFromMap(v)
	case map[string]string:
		m := make(map[string][]string, len(v))
		for name, val := range v {
			m[name] = []string{val}
		}

		return headers.NewFromMap(m)
	case map[string]any:
		m := make(map[string][]string, len(v))
		for name, val := range v {
			values, ok := headerValues(val)
			if !ok {
				f.invalid(key, val)
				return nil
			}

			m[name] = values
		}

		return headers.NewFromMap(m)
	default:
		f.invalid(key, value)
		return nil
	}
}

func headerValues(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	case []any:
		values := make([]string, len(v))
		for i, val := range v {
			str, ok := val.(string)
			if !ok {
				return nil, false
			}

			values[i] = str
		}

		return values, true
	default:
		return nil, false
	}
}
