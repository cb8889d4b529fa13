package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/palantir/pkg/safejson"
	werror "github.com/palantir/witchcraft-go-error"
	"gopkg.in/yaml.v3"
)

const (
	contentTypeJSON  = "application/json"
	contentTypeYAML  = "application/x-yaml"
	contentTypePlain = "text/plain"
)

// Encoder writes a value in a single wire format.
type Encoder interface {
	// ContentType is the media type set on requests carrying an encoded body.
	ContentType() string
	Encode(w io.Writer, v interface{}) error
	Marshal(v interface{}) ([]byte, error)
}

// Decoder reads a value from a single wire format.
type Decoder interface {
	// Accept is the media type advertised in the Accept header.
	Accept() string
	Decode(r io.Reader, v interface{}) error
	Unmarshal(data []byte, v interface{}) error
}

// Codec is both an Encoder and a Decoder for the same media type.
type Codec interface {
	Encoder
	Decoder
}

// JSON encodes with HTML escaping disabled and decodes numbers as json.Number.
var JSON Codec = codecJSON{}

// YAML uses gopkg.in/yaml.v3.
var YAML Codec = codecYAML{}

// Plain handles text/plain bodies for string and []byte values.
var Plain Codec = codecPlain{}

type codecJSON struct{}

func (codecJSON) Accept() string      { return contentTypeJSON }
func (codecJSON) ContentType() string { return contentTypeJSON }

func (codecJSON) Decode(r io.Reader, v interface{}) error {
	if err := safejson.Decoder(r).Decode(v); err != nil {
		return werror.Wrap(err, "json.Decode")
	}
	return nil
}

func (codecJSON) Unmarshal(data []byte, v interface{}) error {
	if err := safejson.Unmarshal(data, v); err != nil {
		return werror.Wrap(err, "json.Unmarshal")
	}
	return nil
}

func (codecJSON) Encode(w io.Writer, v interface{}) error {
	err := safejson.Encoder(w).Encode(v)
	return werror.Wrap(err, "json.Encode")
}

func (codecJSON) Marshal(v interface{}) ([]byte, error) {
	out, err := safejson.Marshal(v)
	return out, werror.Wrap(err, "json.Marshal")
}

type codecYAML struct{}

func (codecYAML) Accept() string      { return contentTypeYAML }
func (codecYAML) ContentType() string { return contentTypeYAML }

func (codecYAML) Decode(r io.Reader, v interface{}) error {
	if err := yaml.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("failed to decode YAML-encoded value: %s", err.Error())
	}
	return nil
}

func (codecYAML) Unmarshal(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}

func (codecYAML) Encode(w io.Writer, v interface{}) error {
	if err := yaml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to YAML-encode value: %s", err.Error())
	}
	return nil
}

func (codecYAML) Marshal(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

type codecPlain struct{}

func (codecPlain) Accept() string      { return contentTypePlain }
func (codecPlain) ContentType() string { return contentTypePlain }

func (c codecPlain) Decode(r io.Reader, v interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return werror.Wrap(err, "read failed")
	}
	return c.Unmarshal(data, v)
}

func (codecPlain) Unmarshal(data []byte, v interface{}) error {
	switch out := v.(type) {
	case *string:
		*out = string(data)
	case *[]byte:
		*out = append((*out)[:0], data...)
	default:
		return werror.Error("text/plain can only decode into *string or *[]byte",
			werror.SafeParam("type", fmt.Sprintf("%T", v)))
	}
	return nil
}

func (c codecPlain) Encode(w io.Writer, v interface{}) error {
	data, err := c.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return werror.Wrap(err, "write failed")
}

func (codecPlain) Marshal(v interface{}) ([]byte, error) {
	switch in := v.(type) {
	case string:
		return []byte(in), nil
	case []byte:
		return bytes.Clone(in), nil
	case fmt.Stringer:
		return []byte(in.String()), nil
	default:
		return nil, werror.Error("text/plain can only encode string, []byte or fmt.Stringer",
			werror.SafeParam("type", fmt.Sprintf("%T", v)))
	}
}

// mediaType strips parameters such as charset and lowercases the result.
func mediaType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
