package petstore

import "github.com/mark3labs/petstore-client/apiclient"

type Banana struct {
	Count *float64 `json:"count,omitempty"`
}

var bananaAttributeTypeMap = []apiclient.Attribute{
	{Name: "Count", BaseName: "count", Type: "float64", Format: ""},
}

func NewBanana() *Banana {
	return &Banana{}
}

func (o *Banana) GetCount() float64 {
	if o == nil || o.Count == nil {
		return 0
	}
	return *o.Count
}

func (o *Banana) GetCountOk() (*float64, bool) {
	if o == nil || o.Count == nil {
		return nil, false
	}
	return o.Count, true
}

func (o *Banana) HasCount() bool { return o != nil && o.Count != nil }

func (o *Banana) SetCount(v float64) { o.Count = &v }

func (Banana) ModelName() string { return "Banana" }

func (Banana) AttributeTypeMap() []apiclient.Attribute {
	return copyAttributes(bananaAttributeTypeMap)
}

func (o Banana) Validate() error {
	return apiclient.Validate(o)
}
