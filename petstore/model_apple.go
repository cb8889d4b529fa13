package petstore

import "github.com/mark3labs/petstore-client/apiclient"

type Apple struct {
	Kind *string `json:"kind,omitempty"`
}

var appleAttributeTypeMap = []apiclient.Attribute{
	{Name: "Kind", BaseName: "kind", Type: "string", Format: ""},
}

func NewApple() *Apple {
	return &Apple{}
}

func (o *Apple) GetKind() string {
	if o == nil || o.Kind == nil {
		return ""
	}
	return *o.Kind
}

func (o *Apple) GetKindOk() (*string, bool) {
	if o == nil || o.Kind == nil {
		return nil, false
	}
	return o.Kind, true
}

func (o *Apple) HasKind() bool { return o != nil && o.Kind != nil }

func (o *Apple) SetKind(v string) { o.Kind = &v }

func (Apple) ModelName() string { return "Apple" }

func (Apple) AttributeTypeMap() []apiclient.Attribute {
	return copyAttributes(appleAttributeTypeMap)
}

func (o Apple) Validate() error {
	return apiclient.Validate(o)
}
