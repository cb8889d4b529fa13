// Package petstore contains the models and API services for the petstore
// document embedded in package openapi.
//
// Every model carries an attribute type map describing its wire shape, and
// every operation comes in two forms: a Raw method returning the
// *http.Response, and a typed method returning a sealed response value with
// one variant per documented status plus a default.
//
//	client := petstore.NewAPIClient(apiclient.NewConfiguration(
//		apiclient.WithBasePath("http://petstore.swagger.io:80/v2"),
//	))
//	resp, err := client.DefaultAPI.GetFruit(ctx)
package petstore
