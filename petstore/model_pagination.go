package petstore

import (
	"github.com/oapi-codegen/nullable"

	"github.com/mark3labs/petstore-client/apiclient"
)

// Pagination links to neighbouring pages. Each link is absent, explicitly
// null, or an absolute URL.
type Pagination struct {
	// PrevUrl points to the previous page, null on the first page.
	PrevUrl nullable.Nullable[string] `json:"prevUrl,omitempty"`
	// NextUrl points to the next page, null on the last page.
	NextUrl nullable.Nullable[string] `json:"nextUrl,omitempty"`
}

var paginationAttributeTypeMap = []apiclient.Attribute{
	{Name: "PrevUrl", BaseName: "prevUrl", Type: "string", Format: "url", Nullable: true},
	{Name: "NextUrl", BaseName: "nextUrl", Type: "string", Format: "url", Nullable: true},
}

func NewPagination() *Pagination {
	return &Pagination{}
}

// GetPrevUrl returns the previous page link, or "" when unset or null.
func (o *Pagination) GetPrevUrl() string {
	if o == nil || !o.PrevUrl.IsSpecified() || o.PrevUrl.IsNull() {
		return ""
	}
	return o.PrevUrl.MustGet()
}

func (o *Pagination) GetPrevUrlOk() (string, bool) {
	if o == nil || !o.PrevUrl.IsSpecified() || o.PrevUrl.IsNull() {
		return "", false
	}
	return o.PrevUrl.MustGet(), true
}

func (o *Pagination) HasPrevUrl() bool { return o != nil && o.PrevUrl.IsSpecified() }

func (o *Pagination) SetPrevUrl(v string) { o.PrevUrl.Set(v) }

// SetPrevUrlNil sends prevUrl as an explicit null.
func (o *Pagination) SetPrevUrlNil() { o.PrevUrl.SetNull() }

// UnsetPrevUrl omits prevUrl from the encoded object.
func (o *Pagination) UnsetPrevUrl() { o.PrevUrl.SetUnspecified() }

func (o *Pagination) GetNextUrl() string {
	if o == nil || !o.NextUrl.IsSpecified() || o.NextUrl.IsNull() {
		return ""
	}
	return o.NextUrl.MustGet()
}

func (o *Pagination) GetNextUrlOk() (string, bool) {
	if o == nil || !o.NextUrl.IsSpecified() || o.NextUrl.IsNull() {
		return "", false
	}
	return o.NextUrl.MustGet(), true
}

func (o *Pagination) HasNextUrl() bool { return o != nil && o.NextUrl.IsSpecified() }

func (o *Pagination) SetNextUrl(v string) { o.NextUrl.Set(v) }

func (o *Pagination) SetNextUrlNil() { o.NextUrl.SetNull() }

func (o *Pagination) UnsetNextUrl() { o.NextUrl.SetUnspecified() }

func (Pagination) ModelName() string { return "Pagination" }

func (Pagination) AttributeTypeMap() []apiclient.Attribute {
	return copyAttributes(paginationAttributeTypeMap)
}

func (o Pagination) Validate() error {
	return apiclient.Validate(o)
}
