package petstore

import (
	"net/http"

	"github.com/mark3labs/petstore-client/apiclient"
)

// APIClient exposes one service per tag of the petstore document. All
// services share a single runtime client and its Configuration.
type APIClient struct {
	runtime *apiclient.APIClient
	common  service

	AnotherFakeAPI *AnotherFakeAPIService
	DefaultAPI     *DefaultAPIService
	PetsAPI        *PetsAPIService
}

type service struct {
	client *apiclient.APIClient
}

// RequestOption adjusts a single operation call, e.g. to add a header or
// inspect the outgoing request.
type RequestOption = apiclient.RequestParam

// WithHeader sets header key on this call only.
func WithHeader(key, value string) RequestOption {
	return apiclient.WithRequestHeader(key, value)
}

// WithRequestHook runs fn on the outgoing request just before it is sent.
func WithRequestHook(fn func(*http.Request) error) RequestOption {
	return apiclient.WithBeforeSend(fn)
}

// NewAPIClient creates a client for cfg. A nil cfg uses
// apiclient.DefaultConfiguration.
func NewAPIClient(cfg *apiclient.Configuration) *APIClient {
	c := &APIClient{runtime: apiclient.NewAPIClient(cfg)}
	c.common.client = c.runtime

	c.AnotherFakeAPI = (*AnotherFakeAPIService)(&c.common)
	c.DefaultAPI = (*DefaultAPIService)(&c.common)
	c.PetsAPI = (*PetsAPIService)(&c.common)
	return c
}

// Runtime returns the underlying runtime client.
func (c *APIClient) Runtime() *apiclient.APIClient {
	return c.runtime
}

// Configuration returns the configuration the client was built with.
func (c *APIClient) Configuration() *apiclient.Configuration {
	return c.runtime.Configuration()
}

// readDefault buffers the body of an undocumented response.
func readDefault(resp *http.Response) ([]byte, error) {
	return apiclient.ReadBody(resp)
}
