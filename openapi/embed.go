// Package openapi embeds the OpenAPI document the petstore client is generated from.
package openapi

import _ "embed"

// Location names the embedded document in error messages and reports.
const Location = "openapi/petstore.yaml"

// Document is the raw OpenAPI 3 document.
//
//go:embed petstore.yaml
var Document []byte
