package apiclient

import (
	"net/http"
	"strings"

	werror "github.com/palantir/witchcraft-go-error"
)

type requestBuilder struct {
	operationID string
	headers     http.Header
	query       map[string][]string
	queryOrder  []string
	accept      string

	// paramHeaders are operation header parameters, applied after the API
	// wrapper.
	paramHeaders http.Header

	hasBody     bool
	body        interface{}
	contentType string

	beforeSend []func(*http.Request) error
}

// RequestParam configures a single request sent by APIClient.Send.
type RequestParam interface {
	apply(*requestBuilder) error
}

type requestParamFunc func(*requestBuilder) error

func (f requestParamFunc) apply(b *requestBuilder) error {
	return f(b)
}

// WithOperationID names the request in spans and log lines, e.g. "getFruit".
func WithOperationID(operationID string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.operationID = operationID
		return nil
	})
}

// WithRequestHeader sets a header on the request, replacing any default value.
func WithRequestHeader(key, value string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		if strings.TrimSpace(key) == "" {
			return werror.Error("apiclient: header name can not be empty")
		}
		b.headers.Set(key, value)
		return nil
	})
}

// WithHeaderParam sets a header the operation declares as a parameter. Unlike
// WithRequestHeader, the value is applied after the configuration's API
// wrapper and wins over anything the wrapper set.
func WithHeaderParam(key, value string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		if strings.TrimSpace(key) == "" {
			return werror.Error("apiclient: header name can not be empty")
		}
		if b.paramHeaders == nil {
			b.paramHeaders = make(http.Header)
		}
		b.paramHeaders.Set(key, value)
		return nil
	})
}

// WithHeaders replaces the whole header set, including the configuration's
// default headers. Headers set by later params are kept.
func WithHeaders(headers http.Header) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.headers = headers.Clone()
		if b.headers == nil {
			b.headers = make(http.Header)
		}
		return nil
	})
}

// WithQuery adds query values under key.
func WithQuery(key string, values ...string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		if _, ok := b.query[key]; !ok {
			b.queryOrder = append(b.queryOrder, key)
		}
		b.query[key] = append(b.query[key], values...)
		return nil
	})
}

// WithBody encodes input with the codec registered for contentType.
func WithBody(input interface{}, contentType string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.hasBody = true
		b.body = input
		b.contentType = contentType
		return nil
	})
}

// WithJSONBody encodes input as application/json.
func WithJSONBody(input interface{}) RequestParam {
	return WithBody(input, contentTypeJSON)
}

// WithAccept sets the Accept header unless the caller already set one.
func WithAccept(contentType string) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		b.accept = contentType
		return nil
	})
}

// WithBeforeSend runs fn on the fully built request right before it is sent.
// Hooks run in the order they were given, after the configuration's API
// wrapper, header parameters and body.
func WithBeforeSend(fn func(*http.Request) error) RequestParam {
	return requestParamFunc(func(b *requestBuilder) error {
		if fn != nil {
			b.beforeSend = append(b.beforeSend, fn)
		}
		return nil
	})
}
