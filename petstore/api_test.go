package petstore_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/petstore-client/apiclient"
	"github.com/mark3labs/petstore-client/openapi"
	"github.com/mark3labs/petstore-client/petstore"
)

type recorded struct {
	method string
	path   string
	header http.Header
	body   []byte
}

type recorder struct {
	mu       sync.Mutex
	requests []recorded
}

func (r *recorder) last(t *testing.T) recorded {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.requests)
	return r.requests[len(r.requests)-1]
}

// newTestClient starts a server that records each request and answers with
// respond.
func newTestClient(t *testing.T, respond http.HandlerFunc) (*petstore.APIClient, *recorder) {
	t.Helper()
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		rec.mu.Lock()
		rec.requests = append(rec.requests, recorded{method: r.Method, path: r.URL.Path, header: r.Header.Clone(), body: body})
		rec.mu.Unlock()
		if respond == nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		respond(w, r)
	}))
	t.Cleanup(server.Close)
	cfg := apiclient.NewConfiguration(apiclient.WithBasePath(server.URL))
	return petstore.NewAPIClient(cfg), rec
}

func writeJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func operation(t *testing.T, api string) apiclient.OperationInfo {
	t.Helper()
	for _, op := range petstore.Operations() {
		if op.API == api {
			return op
		}
	}
	t.Fatalf("no operation for %s", api)
	return apiclient.OperationInfo{}
}

func TestOperationsTargetDeclaredMethodAndPath(t *testing.T) {
	ctx := context.Background()
	client, rec := newTestClient(t, writeJSON(http.StatusOK, `{"kind":"gala"}`))

	_, err := client.DefaultAPI.GetFruitRaw(ctx)
	require.NoError(t, err)
	op := operation(t, "DefaultAPI")
	assert.Equal(t, op.Method, rec.last(t).method)
	assert.Equal(t, op.Path, rec.last(t).path)

	op = operation(t, "AnotherFakeAPI")
	for _, c := range []petstore.Client{{}, {Client: petstore.PtrString("/../pets?x=1")}} {
		_, err := client.AnotherFakeAPI.Call123testSpecialTagsRaw(ctx, uuid.New(), c)
		require.NoError(t, err)
		assert.Equal(t, op.Method, rec.last(t).method)
		assert.Equal(t, op.Path, rec.last(t).path)
	}

	op = operation(t, "PetsAPI")
	for _, body := range []*petstore.PetsFilteredPatchRequest{
		nil,
		petstore.NewPetsFilteredPatchRequest(2, petstore.PetsFilteredPatchRequestPetTypeEnumDog),
	} {
		_, err := client.PetsAPI.PetsFilteredPatchRaw(ctx, body)
		require.NoError(t, err)
		assert.Equal(t, op.Method, rec.last(t).method)
		assert.Equal(t, op.Path, rec.last(t).path)
	}
}

func TestGetFruit(t *testing.T) {
	client, rec := newTestClient(t, writeJSON(http.StatusOK, `{"count":12}`))

	resp, err := client.DefaultAPI.GetFruit(context.Background())
	require.NoError(t, err)
	ok, isOK := resp.(petstore.GetFruit200JSONResponse)
	require.True(t, isOK, "got %T", resp)
	assert.Equal(t, http.StatusOK, ok.StatusCode())
	require.NotNil(t, ok.Body.Banana)
	assert.Equal(t, 12.0, ok.Body.Banana.GetCount())
	assert.Equal(t, "application/json", rec.last(t).header.Get("Accept"))
	assert.Equal(t, apiclient.DefaultUserAgent, rec.last(t).header.Get("User-Agent"))
}

func TestGetFruitFallsBackToDefault(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "down for maintenance")
	})

	resp, err := client.DefaultAPI.GetFruit(context.Background())
	require.NoError(t, err)
	def, ok := resp.(petstore.GetFruitDefaultResponse)
	require.True(t, ok, "got %T", resp)
	assert.Equal(t, http.StatusServiceUnavailable, def.StatusCode())
	assert.Equal(t, "down for maintenance", string(def.Body))
	assert.Equal(t, http.StatusServiceUnavailable, def.Response.StatusCode)
}

func TestGetFruitRejectsUndecodableBody(t *testing.T) {
	client, _ := newTestClient(t, writeJSON(http.StatusOK, `{}`))

	_, err := client.DefaultAPI.GetFruit(context.Background())
	assert.Error(t, err)
}

func TestGetFruitDecodesMislabelledBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, `{"kind":"gala"}`)
	})

	resp, err := client.DefaultAPI.GetFruit(context.Background())
	require.NoError(t, err)
	ok, isOK := resp.(petstore.GetFruit200JSONResponse)
	require.True(t, isOK, "got %T", resp)
	require.NotNil(t, ok.Body.Apple)
	assert.Equal(t, "gala", ok.Body.Apple.GetKind())
}

func TestCall123testSpecialTags(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.Copy(w, r.Body)
	})
	id := uuid.MustParse("5bd0c6c4-3b4f-4a44-8d2a-5d0e8f2f0f5e")
	body := petstore.Client{Client: petstore.PtrString("special")}

	resp, err := client.AnotherFakeAPI.Call123testSpecialTags(context.Background(), id, body,
		petstore.WithHeader("X-Request-Id", "req-1"))
	require.NoError(t, err)

	got := rec.last(t)
	assert.Equal(t, id.String(), got.header.Get("uuid_test"))
	assert.Equal(t, "req-1", got.header.Get("X-Request-Id"))
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.JSONEq(t, `{"client":"special"}`, string(got.body))

	ok, isOK := resp.(petstore.Call123testSpecialTags200JSONResponse)
	require.True(t, isOK, "got %T", resp)
	assert.Equal(t, "special", ok.Body.GetClient())
}

func TestCall123testSpecialTagsWrapperCannotOverrideParameters(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(http.StatusOK, `{"client":"ok"}`)(w, r)
	}))
	t.Cleanup(server.Close)
	client := petstore.NewAPIClient(apiclient.NewConfiguration(
		apiclient.WithBasePath(server.URL),
		apiclient.WithAPIWrapper(func(r *http.Request) error {
			r.Header.Set("uuid_test", "wrapper")
			r.Header.Set("Authorization", "Bearer t")
			return nil
		}),
	))
	id := uuid.New()

	_, err := client.AnotherFakeAPI.Call123testSpecialTags(context.Background(), id, petstore.Client{})
	require.NoError(t, err)
	assert.Equal(t, id.String(), got.Get("uuid_test"))
	assert.Equal(t, "Bearer t", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
}

func TestCall123testSpecialTagsDefault(t *testing.T) {
	client, _ := newTestClient(t, writeJSON(http.StatusBadRequest, `{"message":"bad uuid"}`))

	resp, err := client.AnotherFakeAPI.Call123testSpecialTags(context.Background(), uuid.New(), petstore.Client{})
	require.NoError(t, err)
	def, ok := resp.(petstore.Call123testSpecialTagsDefaultResponse)
	require.True(t, ok, "got %T", resp)
	assert.Equal(t, http.StatusBadRequest, def.StatusCode())
	assert.JSONEq(t, `{"message":"bad uuid"}`, string(def.Body))
}

func TestPetsFilteredPatch(t *testing.T) {
	client, rec := newTestClient(t, nil)

	req := petstore.NewPetsFilteredPatchRequest(5, petstore.PetsFilteredPatchRequestPetTypeEnumCat)
	req.SetHunts(true)
	resp, err := client.PetsAPI.PetsFilteredPatch(context.Background(), req)
	require.NoError(t, err)
	_, ok := resp.(petstore.PetsFilteredPatch200Response)
	require.True(t, ok, "got %T", resp)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.last(t).body, &sent))
	assert.Equal(t, map[string]interface{}{"age": 5.0, "pet_type": "Cat", "hunts": true}, sent)

	_, err = client.PetsAPI.PetsFilteredPatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).body)
	assert.Empty(t, rec.last(t).header.Get("Content-Type"))
}

func TestRequestHookSeesFinalRequest(t *testing.T) {
	client, _ := newTestClient(t, nil)
	var seen *http.Request
	_, err := client.PetsAPI.PetsFilteredPatch(context.Background(), nil,
		petstore.WithRequestHook(func(r *http.Request) error {
			seen = r
			return nil
		}))
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, http.MethodPatch, seen.Method)
	assert.Equal(t, "/pets-filtered", seen.URL.Path)
}

// TestRequestsMatchDocument validates every request the services send against
// the embedded document.
func TestRequestsMatchDocument(t *testing.T) {
	ctx := context.Background()
	doc, err := openapi3.NewLoader().LoadFromData(openapi.Document)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(ctx))
	doc.Servers = nil
	router, err := legacy.NewRouter(doc)
	require.NoError(t, err)

	var (
		mu       sync.Mutex
		failures []string
		matched  = map[string]bool{}
	)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		route, pathParams, err := router.FindRoute(r)
		if err == nil {
			err = openapi3filter.ValidateRequest(r.Context(), &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
			})
		}
		mu.Lock()
		if err != nil {
			failures = append(failures, r.Method+" "+r.URL.Path+": "+err.Error())
		} else {
			matched[operationID(route)] = true
		}
		mu.Unlock()
		writeJSON(http.StatusOK, `{"kind":"gala"}`)(w, r)
	})

	_, err = client.DefaultAPI.GetFruitRaw(ctx)
	require.NoError(t, err)
	_, err = client.AnotherFakeAPI.Call123testSpecialTagsRaw(ctx, uuid.New(), petstore.Client{Client: petstore.PtrString("c")})
	require.NoError(t, err)
	_, err = client.PetsAPI.PetsFilteredPatchRaw(ctx, petstore.NewPetsFilteredPatchRequest(1, petstore.PetsFilteredPatchRequestPetTypeEnumDog))
	require.NoError(t, err)
	_, err = client.PetsAPI.PetsFilteredPatchRaw(ctx, nil)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, failures)
	for _, op := range petstore.Operations() {
		assert.True(t, matched[op.OperationID], "operation %s was exercised", op.OperationID)
	}
}

func operationID(route *routers.Route) string {
	if route == nil || route.Operation == nil {
		return ""
	}
	return route.Operation.OperationID
}
