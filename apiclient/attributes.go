package apiclient

// Attribute is one entry of a model's attribute type map.
type Attribute struct {
	// Name is the Go field name.
	Name string `json:"name" yaml:"name"`
	// BaseName is the wire name used in JSON bodies.
	BaseName string `json:"baseName" yaml:"baseName"`
	// Type is the Go type of the field without pointer or nullable wrappers.
	Type   string `json:"type" yaml:"type"`
	Format string `json:"format" yaml:"format"`

	Required bool `json:"required" yaml:"required"`
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

// Model is implemented by every generated model.
type Model interface {
	ModelName() string
	AttributeTypeMap() []Attribute
}

// Union is implemented by oneOf models. The wire shape is the actual
// instance's; the union itself declares no attributes.
type Union interface {
	Model
	// GetActualInstance returns the member that is set, or nil.
	GetActualInstance() Model
}

// Enum is implemented by every generated string enum.
type Enum interface {
	EnumValues() []string
	IsValid() bool
}

// EnumInfo describes a closed string enum declared beside a model.
type EnumInfo struct {
	Name   string   `json:"name" yaml:"name"`
	Values []string `json:"values" yaml:"values"`
}

// ModelInfo is the table entry tooling uses to inspect a model without
// instantiating it.
type ModelInfo struct {
	Name          string            `json:"name" yaml:"name"`
	Attributes    []Attribute       `json:"attributes" yaml:"attributes"`
	Enums         []EnumInfo        `json:"enums,omitempty" yaml:"enums,omitempty"`
	OneOf         []string          `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	Discriminator string            `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
	Mapping       map[string]string `json:"mapping,omitempty" yaml:"mapping,omitempty"`
}

// OperationInfo describes one generated operation.
type OperationInfo struct {
	API         string `json:"api" yaml:"api"`
	OperationID string `json:"operationId" yaml:"operationId"`
	Method      string `json:"method" yaml:"method"`
	Path        string `json:"path" yaml:"path"`

	// Statuses lists the documented status codes in ascending order.
	Statuses []int `json:"statuses" yaml:"statuses"`

	// Headers lists header parameters sorted by name.
	Headers []HeaderInfo `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body    *BodyInfo    `json:"body,omitempty" yaml:"body,omitempty"`

	// Accept is the media type of the documented success response body, empty
	// when no success response has one.
	Accept string `json:"accept,omitempty" yaml:"accept,omitempty"`
}

// HeaderInfo describes a header parameter of an operation.
type HeaderInfo struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Format   string `json:"format,omitempty" yaml:"format,omitempty"`
	Required bool   `json:"required" yaml:"required"`
}

// BodyInfo describes the request body of an operation.
type BodyInfo struct {
	Model       string `json:"model" yaml:"model"`
	ContentType string `json:"contentType" yaml:"contentType"`
	Required    bool   `json:"required" yaml:"required"`
}

// LookupAttribute finds the attribute with the given wire name.
func LookupAttribute(attrs []Attribute, baseName string) (Attribute, bool) {
	for _, a := range attrs {
		if a.BaseName == baseName {
			return a, true
		}
	}
	return Attribute{}, false
}
