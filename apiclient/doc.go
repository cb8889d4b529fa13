// Package apiclient is the runtime shared by the generated petstore models and
// APIs: a read-only Configuration, an APIClient that sends one request per
// call, wire codecs, and the attribute type map used to inspect, validate and
// round-trip models.
package apiclient
