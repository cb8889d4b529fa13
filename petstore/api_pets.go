package petstore

import (
	"context"
	"net/http"

	"github.com/mark3labs/petstore-client/apiclient"
)

type PetsAPIService service

// PetsFilteredPatchResponse is one of PetsFilteredPatch200Response or
// PetsFilteredPatchDefaultResponse.
type PetsFilteredPatchResponse interface {
	StatusCode() int
	petsFilteredPatchResponse()
}

// PetsFilteredPatch200Response carries no body.
type PetsFilteredPatch200Response struct {
	Response *http.Response
}

func (PetsFilteredPatch200Response) StatusCode() int { return http.StatusOK }

func (PetsFilteredPatch200Response) petsFilteredPatchResponse() {}

type PetsFilteredPatchDefaultResponse struct {
	Status   int
	Body     []byte
	Response *http.Response
}

func (r PetsFilteredPatchDefaultResponse) StatusCode() int { return r.Status }

func (PetsFilteredPatchDefaultResponse) petsFilteredPatchResponse() {}

// PetsFilteredPatchRaw sends PATCH /pets-filtered. A nil body sends no body.
func (a *PetsAPIService) PetsFilteredPatchRaw(ctx context.Context, body *PetsFilteredPatchRequest, opts ...RequestOption) (*http.Response, error) {
	params := []apiclient.RequestParam{
		apiclient.WithOperationID("petsFilteredPatch"),
	}
	params = append(params, opts...)
	if body != nil {
		params = append(params, apiclient.WithJSONBody(body))
	}
	return a.client.Send(ctx, http.MethodPatch, "/pets-filtered", params...)
}

// PetsFilteredPatch sends PATCH /pets-filtered.
func (a *PetsAPIService) PetsFilteredPatch(ctx context.Context, body *PetsFilteredPatchRequest, opts ...RequestOption) (PetsFilteredPatchResponse, error) {
	resp, err := a.PetsFilteredPatchRaw(ctx, body, opts...)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		if _, err := apiclient.ReadBody(resp); err != nil {
			return nil, err
		}
		return PetsFilteredPatch200Response{Response: resp}, nil
	default:
		data, err := readDefault(resp)
		if err != nil {
			return nil, err
		}
		return PetsFilteredPatchDefaultResponse{Status: resp.StatusCode, Body: data, Response: resp}, nil
	}
}
