package petstore

import (
	"context"
	"net/http"

	"github.com/mark3labs/petstore-client/apiclient"
)

type DefaultAPIService service

// GetFruitResponse is one of GetFruit200JSONResponse or
// GetFruitDefaultResponse.
type GetFruitResponse interface {
	StatusCode() int
	getFruitResponse()
}

// GetFruit200JSONResponse is returned for a 200 response.
type GetFruit200JSONResponse struct {
	Body     Fruit
	Response *http.Response
}

func (GetFruit200JSONResponse) StatusCode() int { return http.StatusOK }

func (GetFruit200JSONResponse) getFruitResponse() {}

// GetFruitDefaultResponse is returned for any status the document does not
// list. Body holds the raw response body.
type GetFruitDefaultResponse struct {
	Status   int
	Body     []byte
	Response *http.Response
}

func (r GetFruitDefaultResponse) StatusCode() int { return r.Status }

func (GetFruitDefaultResponse) getFruitResponse() {}

// GetFruitRaw sends GET /example and returns the response unread.
func (a *DefaultAPIService) GetFruitRaw(ctx context.Context, opts ...RequestOption) (*http.Response, error) {
	params := []apiclient.RequestParam{
		apiclient.WithOperationID("getFruit"),
		apiclient.WithAccept("application/json"),
	}
	params = append(params, opts...)
	return a.client.Send(ctx, http.MethodGet, "/example", params...)
}

// GetFruit sends GET /example.
func (a *DefaultAPIService) GetFruit(ctx context.Context, opts ...RequestOption) (GetFruitResponse, error) {
	resp, err := a.GetFruitRaw(ctx, opts...)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		var out GetFruit200JSONResponse
		out.Response = resp
		if err := a.client.DecodeBody(resp, "application/json", &out.Body); err != nil {
			return nil, err
		}
		return out, nil
	default:
		body, err := readDefault(resp)
		if err != nil {
			return nil, err
		}
		return GetFruitDefaultResponse{Status: resp.StatusCode, Body: body, Response: resp}, nil
	}
}
