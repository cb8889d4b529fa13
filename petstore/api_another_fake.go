package petstore

import (
	"context"
	"net/http"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	werror "github.com/palantir/witchcraft-go-error"

	"github.com/mark3labs/petstore-client/apiclient"
)

type AnotherFakeAPIService service

// Call123testSpecialTagsResponse is one of Call123testSpecialTags200JSONResponse
// or Call123testSpecialTagsDefaultResponse.
type Call123testSpecialTagsResponse interface {
	StatusCode() int
	call123testSpecialTagsResponse()
}

type Call123testSpecialTags200JSONResponse struct {
	Body     Client
	Response *http.Response
}

func (Call123testSpecialTags200JSONResponse) StatusCode() int { return http.StatusOK }

func (Call123testSpecialTags200JSONResponse) call123testSpecialTagsResponse() {}

type Call123testSpecialTagsDefaultResponse struct {
	Status   int
	Body     []byte
	Response *http.Response
}

func (r Call123testSpecialTagsDefaultResponse) StatusCode() int { return r.Status }

func (Call123testSpecialTagsDefaultResponse) call123testSpecialTagsResponse() {}

// Call123testSpecialTagsRaw sends PATCH /another-fake/dummy with the uuid_test
// header and client as the JSON body.
func (a *AnotherFakeAPIService) Call123testSpecialTagsRaw(ctx context.Context, uuidTest openapi_types.UUID, client Client, opts ...RequestOption) (*http.Response, error) {
	headerValue, err := runtime.StyleParamWithLocation("simple", false, "uuid_test", runtime.ParamLocationHeader, uuidTest.String())
	if err != nil {
		return nil, werror.WrapWithContextParams(ctx, err, "invalid format for parameter uuid_test")
	}
	params := []apiclient.RequestParam{
		apiclient.WithOperationID("123_test_@#$%_special_tags"),
		apiclient.WithAccept("application/json"),
	}
	params = append(params, opts...)
	params = append(params,
		apiclient.WithHeaderParam("uuid_test", headerValue),
		apiclient.WithJSONBody(client),
	)
	return a.client.Send(ctx, http.MethodPatch, "/another-fake/dummy", params...)
}

// Call123testSpecialTags sends PATCH /another-fake/dummy. To test special tags
// and operation ID starting with number.
func (a *AnotherFakeAPIService) Call123testSpecialTags(ctx context.Context, uuidTest openapi_types.UUID, client Client, opts ...RequestOption) (Call123testSpecialTagsResponse, error) {
	resp, err := a.Call123testSpecialTagsRaw(ctx, uuidTest, client, opts...)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		var out Call123testSpecialTags200JSONResponse
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
		return Call123testSpecialTagsDefaultResponse{Status: resp.StatusCode, Body: body, Response: resp}, nil
	}
}
