package apiclient

import (
	"bytes"
	"io"
	"net/http"

	werror "github.com/palantir/witchcraft-go-error"
)

// ReadBody reads and closes the response body, then replaces it with an
// in-memory copy so the response stays readable by callers holding it.
func ReadBody(resp *http.Response) ([]byte, error) {
	if resp == nil || resp.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return nil, werror.Wrap(err, "failed to read response body",
			werror.SafeParam("statusCode", resp.StatusCode))
	}
	return data, nil
}

// DecodeBody decodes the response body into v with the decoder registered
// for contentType, the media type the operation documents for this response.
// The response's own Content-Type header is not consulted. An empty body is
// an error.
func (c *APIClient) DecodeBody(resp *http.Response, contentType string, v interface{}) error {
	data, err := ReadBody(resp)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return werror.Error("response body is empty",
			werror.SafeParam("statusCode", resp.StatusCode))
	}
	dec, err := c.cfg.RequireDecoder(contentType)
	if err != nil {
		return err
	}
	if err := dec.Unmarshal(data, v); err != nil {
		return werror.Wrap(err, "failed to decode response body",
			werror.SafeParam("statusCode", resp.StatusCode),
			werror.SafeParam("contentType", contentType),
			werror.SafeParam("responseContentType", resp.Header.Get("Content-Type")))
	}
	return nil
}
