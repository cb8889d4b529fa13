package petstore

import "github.com/mark3labs/petstore-client/apiclient"

type Client struct {
	Client *string `json:"client,omitempty"`
}

var clientAttributeTypeMap = []apiclient.Attribute{
	{Name: "Client", BaseName: "client", Type: "string", Format: ""},
}

func NewClient() *Client {
	return &Client{}
}

func (o *Client) GetClient() string {
	if o == nil || o.Client == nil {
		return ""
	}
	return *o.Client
}

func (o *Client) GetClientOk() (*string, bool) {
	if o == nil || o.Client == nil {
		return nil, false
	}
	return o.Client, true
}

func (o *Client) HasClient() bool { return o != nil && o.Client != nil }

func (o *Client) SetClient(v string) { o.Client = &v }

func (Client) ModelName() string { return "Client" }

func (Client) AttributeTypeMap() []apiclient.Attribute {
	return copyAttributes(clientAttributeTypeMap)
}

func (o Client) Validate() error {
	return apiclient.Validate(o)
}
