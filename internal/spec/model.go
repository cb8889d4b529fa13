package spec

import "strings"

// Internal model of an OpenAPI document, reduced to what the generated client
// and its tooling compare against.

type HttpMethod string

const (
	GET     HttpMethod = "get"
	POST    HttpMethod = "post"
	PUT     HttpMethod = "put"
	DELETE  HttpMethod = "delete"
	PATCH   HttpMethod = "patch"
	HEAD    HttpMethod = "head"
	OPTIONS HttpMethod = "options"
	TRACE   HttpMethod = "trace"
)

type ServiceModel struct {
	Title       string
	Version     string
	Description string
	Servers     []Server
	Tags        []string
	Endpoints   []EndpointModel
	Schemas     map[string]Schema // by component name
}

type Server struct {
	URL         string
	Description string
}

type EndpointModel struct {
	ID          string // method+path
	OperationID string
	Method      HttpMethod
	Path        string
	Summary     string
	Description string
	Tags        []string
	Parameters  []ParameterModel
	RequestBody *RequestBodyModel
	Responses   []ResponseModel
}

type ParameterModel struct {
	Name     string
	In       string // path|query|header|cookie
	Required bool
	Schema   *SchemaOrRef
}

type RequestBodyModel struct {
	Content  []Media
	Required bool
}

type ResponseModel struct {
	Status      string // 200, 4xx, default
	Description string
	Content     []Media
}

type Media struct {
	Mime   string
	Schema *SchemaOrRef
}

type Schema struct {
	Name        string
	Type        string
	Format      string
	Nullable    bool
	Properties  map[string]*SchemaOrRef
	Required    []string
	Items       *SchemaOrRef
	AllOf       []*SchemaOrRef
	AnyOf       []*SchemaOrRef
	OneOf       []*SchemaOrRef
	Description string
	Enum        []any

	// Discriminator names the property selecting a oneOf member; Mapping maps
	// its values to member refs.
	Discriminator string
	Mapping       map[string]string
}

type SchemaRef struct{ Ref string }

type SchemaOrRef struct {
	Schema *Schema
	Ref    *SchemaRef
}

// RefName returns the component name a local $ref points to, e.g. "Pet" for
// "#/components/schemas/Pet".
func (r *SchemaRef) RefName() string {
	if r == nil {
		return ""
	}
	return r.Ref[strings.LastIndexByte(r.Ref, '/')+1:]
}
