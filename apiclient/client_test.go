package apiclient_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/petstore-client/apiclient"
)

type captured struct {
	req  *http.Request
	body []byte
}

func newServer(t *testing.T, status int, respBody string) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.req = r.Clone(context.Background())
		c.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(server.Close)
	return server, c
}

func TestNewConfiguration(t *testing.T) {
	cfg := apiclient.DefaultConfiguration()
	assert.Equal(t, apiclient.DefaultBasePath, cfg.BasePath())
	assert.Equal(t, apiclient.DefaultUserAgent, cfg.UserAgent())
	require.NotNil(t, cfg.HTTPClient())

	cfg = apiclient.NewConfiguration(
		apiclient.WithBasePath(" http://petstore.swagger.io:80/v2/ "),
		apiclient.WithDefaultHeader("X-Api-Key", "secret"),
		apiclient.WithUserAgent("tests/1.0"),
	)
	assert.Equal(t, "http://petstore.swagger.io:80/v2", cfg.BasePath())
	assert.Equal(t, "tests/1.0", cfg.UserAgent())

	headers := cfg.CustomHeaders()
	assert.Equal(t, "secret", headers.Get("X-Api-Key"))
	headers.Set("X-Api-Key", "changed")
	assert.Equal(t, "secret", cfg.CustomHeaders().Get("X-Api-Key"), "configuration is read-only")
}

func TestRequireCodecs(t *testing.T) {
	cfg := apiclient.NewConfiguration()

	dec, err := cfg.RequireDecoder("")
	require.NoError(t, err)
	assert.Equal(t, "application/json", dec.Accept())

	dec, err = cfg.RequireDecoder("Application/JSON; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "application/json", dec.Accept())

	enc, err := cfg.RequireEncoder("application/x-yaml")
	require.NoError(t, err)
	assert.Equal(t, "application/x-yaml", enc.ContentType())

	_, err = cfg.RequireEncoder("application/xml")
	assert.Error(t, err)
	_, err = cfg.RequireDecoder("application/xml")
	assert.Error(t, err)
}

func TestSendBuildsRequest(t *testing.T) {
	server, got := newServer(t, http.StatusOK, `{"ok":true}`)
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(
		apiclient.WithBasePath(server.URL+"/v2/"),
		apiclient.WithDefaultHeader("X-Default", "yes"),
	))

	resp, err := client.Send(context.Background(), "patch", "/pets-filtered",
		apiclient.WithOperationID("petsFilteredPatch"),
		apiclient.WithRequestHeader("X-Call", "1"),
		apiclient.WithQuery("tag", "a", "b"),
		apiclient.WithQuery("limit", "10"),
		apiclient.WithAccept("application/json"),
		apiclient.WithJSONBody(map[string]interface{}{"name": "<Rex>"}),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.MethodPatch, got.req.Method)
	assert.Equal(t, "/v2/pets-filtered", got.req.URL.Path)
	assert.Equal(t, "tag=a&tag=b&limit=10", got.req.URL.RawQuery)
	assert.Equal(t, "yes", got.req.Header.Get("X-Default"))
	assert.Equal(t, "1", got.req.Header.Get("X-Call"))
	assert.Equal(t, "application/json", got.req.Header.Get("Accept"))
	assert.Equal(t, "application/json", got.req.Header.Get("Content-Type"))
	assert.Equal(t, apiclient.DefaultUserAgent, got.req.Header.Get("User-Agent"))
	assert.JSONEq(t, `{"name":"<Rex>"}`, string(got.body))
	assert.Contains(t, string(got.body), `<Rex>`, "html escaping is disabled")
}

func TestSendWithHeadersReplacesDefaults(t *testing.T) {
	server, got := newServer(t, http.StatusOK, `{}`)
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(
		apiclient.WithBasePath(server.URL),
		apiclient.WithDefaultHeader("X-Default", "yes"),
	))

	resp, err := client.Send(context.Background(), http.MethodGet, "/example",
		apiclient.WithHeaders(http.Header{"X-Only": []string{"this"}}),
		apiclient.WithRequestHeader("X-After", "kept"),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, got.req.Header.Get("X-Default"))
	assert.Equal(t, "this", got.req.Header.Get("X-Only"))
	assert.Equal(t, "kept", got.req.Header.Get("X-After"))
}

func TestSendRunsWrapperThenHooks(t *testing.T) {
	server, got := newServer(t, http.StatusOK, `{}`)
	var order []string
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(
		apiclient.WithBasePath(server.URL),
		apiclient.WithAPIWrapper(func(r *http.Request) error {
			order = append(order, "wrapper")
			r.Header.Set("Authorization", "Bearer token")
			return nil
		}),
	))

	resp, err := client.Send(context.Background(), http.MethodGet, "/example",
		apiclient.WithBeforeSend(func(r *http.Request) error {
			order = append(order, "hook:"+r.Header.Get("Authorization"))
			return nil
		}),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, []string{"wrapper", "hook:Bearer token"}, order)
	assert.Equal(t, "Bearer token", got.req.Header.Get("Authorization"))
}

func TestSendAppliesOperationValuesAfterWrapper(t *testing.T) {
	server, got := newServer(t, http.StatusOK, `{}`)
	var wrapperSaw http.Header
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(
		apiclient.WithBasePath(server.URL),
		apiclient.WithAPIWrapper(func(r *http.Request) error {
			wrapperSaw = r.Header.Clone()
			r.Header.Set("uuid_test", "from-wrapper")
			r.Header.Set("Content-Type", "text/plain")
			r.Header.Set("X-Signed", "yes")
			return nil
		}),
	))

	var hookSaw string
	resp, err := client.Send(context.Background(), http.MethodPatch, "/another-fake/dummy",
		apiclient.WithHeaderParam("uuid_test", "from-operation"),
		apiclient.WithJSONBody(map[string]string{"client": "c"}),
		apiclient.WithBeforeSend(func(r *http.Request) error {
			hookSaw = r.Header.Get("uuid_test")
			return nil
		}),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, wrapperSaw.Get("uuid_test"), "header parameters are applied after the wrapper")
	assert.Empty(t, wrapperSaw.Get("Content-Type"))
	assert.Equal(t, "from-operation", hookSaw)
	assert.Equal(t, "from-operation", got.req.Header.Get("uuid_test"))
	assert.Equal(t, "application/json", got.req.Header.Get("Content-Type"))
	assert.Equal(t, "yes", got.req.Header.Get("X-Signed"))
	assert.JSONEq(t, `{"client":"c"}`, string(got.body))
}

func TestSendHookErrorStopsRequest(t *testing.T) {
	server, got := newServer(t, http.StatusOK, `{}`)
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(apiclient.WithBasePath(server.URL)))

	_, err := client.Send(context.Background(), http.MethodGet, "/example",
		apiclient.WithBeforeSend(func(*http.Request) error { return errors.New("blocked") }))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")
	assert.Nil(t, got.req, "no request reached the server")
}

func TestSendRejectsInvalidInput(t *testing.T) {
	client := apiclient.NewAPIClient(nil)
	ctx := context.Background()

	_, err := client.Send(ctx, "", "/example")
	assert.Error(t, err)
	_, err = client.Send(ctx, http.MethodGet, "")
	assert.Error(t, err)
	_, err = client.Send(ctx, http.MethodGet, "/example", apiclient.WithRequestHeader(" ", "x"))
	assert.Error(t, err)
	_, err = client.Send(ctx, http.MethodPost, "/example", apiclient.WithBody("x", "application/xml"))
	assert.Error(t, err)
}

func TestSendDoesNotRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(apiclient.WithBasePath(server.URL)))

	resp, err := client.Send(context.Background(), http.MethodGet, "/example")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSendLogsAtDebug(t *testing.T) {
	server, _ := newServer(t, http.StatusOK, `{}`)
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(apiclient.WithBasePath(server.URL)))

	var buf bytes.Buffer
	logger := svc1log.NewFromCreator(&buf, wlog.DebugLevel, wlog.NewJSONMarshalLoggerProvider().NewLeveledLogger)
	ctx := svc1log.WithLogger(context.Background(), logger)

	resp, err := client.Send(ctx, http.MethodGet, "/example", apiclient.WithOperationID("getFruit"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, buf.String(), "Sending request")
	assert.Contains(t, buf.String(), "getFruit")
	assert.Contains(t, buf.String(), "Received response")
}

func TestDecodeBody(t *testing.T) {
	server, _ := newServer(t, http.StatusOK, `{"count":3}`)
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(apiclient.WithBasePath(server.URL)))

	resp, err := client.Send(context.Background(), http.MethodGet, "/example")
	require.NoError(t, err)
	var out struct {
		Count int `json:"count"`
	}
	require.NoError(t, client.DecodeBody(resp, "application/json", &out))
	assert.Equal(t, 3, out.Count)

	data, err := apiclient.ReadBody(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"count":3}`, string(data), "body stays readable")
}

func TestDecodeBodyIgnoresResponseContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, `{"count":7}`)
	}))
	t.Cleanup(server.Close)
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(apiclient.WithBasePath(server.URL)))

	resp, err := client.Send(context.Background(), http.MethodGet, "/example")
	require.NoError(t, err)
	var out struct {
		Count int `json:"count"`
	}
	require.NoError(t, client.DecodeBody(resp, "application/json", &out))
	assert.Equal(t, 7, out.Count)
}

func TestDecodeBodyUnknownMediaType(t *testing.T) {
	server, _ := newServer(t, http.StatusOK, `{"count":3}`)
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(apiclient.WithBasePath(server.URL)))

	resp, err := client.Send(context.Background(), http.MethodGet, "/example")
	require.NoError(t, err)
	var out map[string]interface{}
	assert.Error(t, client.DecodeBody(resp, "application/x-unknown", &out))
}

func TestDecodeBodyRejectsEmptyBody(t *testing.T) {
	server, _ := newServer(t, http.StatusOK, "")
	client := apiclient.NewAPIClient(apiclient.NewConfiguration(apiclient.WithBasePath(server.URL)))

	resp, err := client.Send(context.Background(), http.MethodGet, "/example")
	require.NoError(t, err)
	var out map[string]interface{}
	assert.Error(t, client.DecodeBody(resp, "application/json", &out))
}
