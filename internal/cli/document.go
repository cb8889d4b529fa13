package cli

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"

	"github.com/mark3labs/petstore-client/internal/spec"
	"github.com/mark3labs/petstore-client/openapi"
)

// loadDocument reads cfg.Input, or the embedded document when no input is
// configured.
func loadDocument(ctx context.Context, cfg *Config) (*openapi3.T, error) {
	var opts []spec.Option
	if cfg.Timeout > 0 {
		opts = append(opts, spec.WithHTTPTimeout(cfg.Timeout))
	}
	var (
		doc *openapi3.T
		err error
	)
	if cfg.Input == "" {
		svc1log.FromContext(ctx).Debug("Loading embedded document",
			svc1log.SafeParam("location", openapi.Location))
		doc, err = spec.LoadData(ctx, openapi.Document, openapi.Location, opts...)
	} else {
		svc1log.FromContext(ctx).Debug("Loading document",
			svc1log.SafeParam("location", cfg.Input))
		doc, err = spec.Load(ctx, cfg.Input, opts...)
	}
	if err != nil {
		return nil, documentError(err)
	}
	return doc, nil
}

// loadServiceModel loads the document and normalizes it with cfg's tag filters.
func loadServiceModel(ctx context.Context, cfg *Config) (*spec.ServiceModel, error) {
	doc, err := loadDocument(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return spec.BuildServiceModel(ctx, doc,
		spec.WithIncludeTags(cfg.IncludeTags),
		spec.WithExcludeTags(cfg.ExcludeTags),
	)
}
