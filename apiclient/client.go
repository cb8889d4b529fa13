package apiclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/palantir/pkg/bytesbuffers"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/mark3labs/petstore-client/apiclient"

// APIClient sends requests described by RequestParams against a Configuration.
// It issues exactly one HTTP request per Send call and never retries.
type APIClient struct {
	cfg        *Configuration
	bufferPool bytesbuffers.Pool
	tracer     trace.Tracer
}

// NewAPIClient returns a client for cfg. A nil cfg uses DefaultConfiguration.
func NewAPIClient(cfg *Configuration) *APIClient {
	if cfg == nil {
		cfg = DefaultConfiguration()
	}
	return &APIClient{
		cfg:        cfg,
		bufferPool: bytesbuffers.NewSizedPool(4, 4096),
		tracer:     otel.Tracer(tracerName),
	}
}

// Configuration returns the configuration the client was built with.
func (c *APIClient) Configuration() *Configuration {
	return c.cfg
}

// Send builds the request for method and path (appended to the base path),
// sends it, and returns the response as-is. The caller owns the response body.
func (c *APIClient) Send(ctx context.Context, method, path string, params ...RequestParam) (*http.Response, error) {
	if method == "" {
		return nil, werror.ErrorWithContextParams(ctx, "apiclient: request method can not be empty")
	}
	if path == "" {
		return nil, werror.ErrorWithContextParams(ctx, "apiclient: request path can not be empty")
	}
	method = strings.ToUpper(method)

	b := &requestBuilder{
		headers: c.cfg.CustomHeaders(),
		query:   make(map[string][]string),
	}
	for _, p := range params {
		if p == nil {
			continue
		}
		if err := p.apply(b); err != nil {
			return nil, err
		}
	}

	spanName := b.operationID
	if spanName == "" {
		spanName = method + " " + path
	}
	ctx, span := c.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.template", path),
		),
	)
	defer span.End()

	req, cleanup, err := c.newRequest(ctx, method, path, b)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return nil, err
	}
	defer cleanup()

	logger := svc1log.FromContext(ctx)
	logger.Debug("Sending request",
		svc1log.SafeParam("operationId", b.operationID),
		svc1log.SafeParam("method", method),
		svc1log.SafeParam("path", path))

	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		err = unwrapURLError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "send request")
		logger.Debug("Request failed",
			svc1log.SafeParam("operationId", b.operationID),
			svc1log.Stacktrace(err))
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	logger.Debug("Received response",
		svc1log.SafeParam("operationId", b.operationID),
		svc1log.SafeParam("statusCode", resp.StatusCode))
	return resp, nil
}

// newRequest returns the request and a func releasing its body buffer once
// the request has been sent. The configuration's API wrapper sees the request
// with default and caller headers only; operation header parameters and the
// encoded body are applied after it, so the wrapper can not override them.
// beforeSend hooks see the final request.
func (c *APIClient) newRequest(ctx context.Context, method, path string, b *requestBuilder) (*http.Request, func(), error) {
	cleanup := func() {}
	var (
		body        []byte
		contentType string
	)
	if b.hasBody && b.body != nil {
		enc, err := c.cfg.RequireEncoder(b.contentType)
		if err != nil {
			return nil, nil, err
		}
		buf := c.bufferPool.Get()
		cleanup = func() { c.bufferPool.Put(buf) }
		if err := enc.Encode(buf, b.body); err != nil {
			cleanup()
			return nil, nil, werror.WrapWithContextParams(ctx, err, "failed to encode request body",
				werror.SafeParam("contentType", enc.ContentType()))
		}
		body = buf.Bytes()
		contentType = enc.ContentType()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.basePath+path, nil)
	if err != nil {
		cleanup()
		return nil, nil, werror.WrapWithContextParams(ctx, err, "failed to build new HTTP request",
			werror.UnsafeParam("path", path))
	}
	req.Header = b.headers
	if q := encodeQuery(b.query, b.queryOrder); q != "" {
		if req.URL.RawQuery != "" {
			req.URL.RawQuery += "&" + q
		} else {
			req.URL.RawQuery = q
		}
	}
	if b.accept != "" && req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", b.accept)
	}
	if c.cfg.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.cfg.userAgent)
	}

	if c.cfg.apiWrapper != nil {
		if err := c.cfg.apiWrapper(req); err != nil {
			cleanup()
			return nil, nil, werror.WrapWithContextParams(ctx, err, "api wrapper rejected request")
		}
	}

	for key, values := range b.paramHeaders {
		req.Header[key] = append([]string(nil), values...)
	}
	if body != nil {
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.ContentLength = int64(len(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		req.Header.Set("Content-Type", contentType)
	}

	for _, fn := range b.beforeSend {
		if err := fn(req); err != nil {
			cleanup()
			return nil, nil, werror.WrapWithContextParams(ctx, err, "beforeSend hook rejected request")
		}
	}
	return req, cleanup, nil
}

func encodeQuery(query map[string][]string, order []string) string {
	var sb strings.Builder
	for _, key := range order {
		for _, v := range query[key] {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(url.QueryEscape(key))
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(v))
		}
	}
	return sb.String()
}

// unwrapURLError converts the *url.Error returned by http.Client.Do into a
// werror so the method and host travel as safe params.
func unwrapURLError(respErr error) error {
	urlErr, ok := respErr.(*url.Error)
	if !ok {
		return respErr
	}
	params := []werror.Param{werror.SafeParam("requestMethod", urlErr.Op)}
	if parsedURL, _ := url.Parse(urlErr.URL); parsedURL != nil {
		params = append(params,
			werror.SafeParam("requestHost", parsedURL.Host),
			werror.UnsafeParam("requestPath", parsedURL.Path))
	}
	return werror.Wrap(urlErr.Err, "apiclient request failed", params...)
}
