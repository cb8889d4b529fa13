package spec

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// BuildOption configures how the ServiceModel is built from an OpenAPI doc.
type BuildOption func(*buildConfig)

type buildConfig struct {
	includeTags map[string]struct{}
	excludeTags map[string]struct{}
	methods     map[HttpMethod]struct{}
	pathRes     []*regexp.Regexp
	err         error
}

// WithIncludeTags keeps only endpoints that have at least one of the given tags.
func WithIncludeTags(tags []string) BuildOption {
	return func(c *buildConfig) {
		c.includeTags = addTags(c.includeTags, tags)
	}
}

// WithExcludeTags removes endpoints that have any of the given tags.
func WithExcludeTags(tags []string) BuildOption {
	return func(c *buildConfig) {
		c.excludeTags = addTags(c.excludeTags, tags)
	}
}

func addTags(set map[string]struct{}, tags []string) map[string]struct{} {
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if set == nil {
			set = make(map[string]struct{}, len(tags))
		}
		set[t] = struct{}{}
	}
	return set
}

// WithMethods keeps only endpoints using one of the provided HTTP methods.
func WithMethods(methods []HttpMethod) BuildOption {
	return func(c *buildConfig) {
		for _, m := range methods {
			if c.methods == nil {
				c.methods = make(map[HttpMethod]struct{}, len(methods))
			}
			c.methods[HttpMethod(strings.ToLower(string(m)))] = struct{}{}
		}
	}
}

// WithPathPatterns keeps only endpoints whose path matches at least one of
// the given regular expressions. An invalid pattern fails the build.
func WithPathPatterns(patterns []string) BuildOption {
	return func(c *buildConfig) {
		for _, p := range patterns {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			re, err := regexp.Compile(p)
			if err != nil {
				if c.err == nil {
					c.err = fmt.Errorf("invalid path pattern %q: %w", p, err)
				}
				continue
			}
			c.pathRes = append(c.pathRes, re)
		}
	}
}

// BuildServiceModel converts an OpenAPI v3 document into the internal model,
// applying tag, method and path filters to endpoints. Schemas are never
// filtered.
func BuildServiceModel(ctx context.Context, doc *openapi3.T, opts ...BuildOption) (*ServiceModel, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}
	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	sm := &ServiceModel{Schemas: map[string]Schema{}}
	if doc.Info != nil {
		sm.Title = safeStr(doc.Info.Title)
		sm.Version = safeStr(doc.Info.Version)
		sm.Description = safeStr(doc.Info.Description)
	}
	for _, s := range doc.Servers {
		if s == nil {
			continue
		}
		sm.Servers = append(sm.Servers, Server{URL: safeStr(s.URL), Description: safeStr(s.Description)})
	}

	if doc.Components != nil {
		for _, name := range sortedKeys(doc.Components.Schemas) {
			sor := toSchemaOrRef(doc.Components.Schemas[name])
			if sor == nil {
				continue
			}
			if sor.Ref != nil {
				// Component aliasing another component.
				sm.Schemas[name] = Schema{Name: name, AllOf: []*SchemaOrRef{sor}}
				continue
			}
			schema := *sor.Schema
			schema.Name = name
			sm.Schemas[name] = schema
		}
	}

	for _, p := range sortedKeys(doc.Paths) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := doc.Paths[p]
		if item == nil || !cfg.allowPath(p) {
			continue
		}
		baseParams := make(map[string]*ParameterModel)
		for _, pref := range item.Parameters {
			if pm := toParameterModel(pref); pm != nil {
				baseParams[paramKey(pm.In, pm.Name)] = pm
			}
		}

		ops := []struct {
			m HttpMethod
			o *openapi3.Operation
		}{
			{GET, item.Get},
			{POST, item.Post},
			{PUT, item.Put},
			{DELETE, item.Delete},
			{PATCH, item.Patch},
			{HEAD, item.Head},
			{OPTIONS, item.Options},
			{TRACE, item.Trace},
		}
		for _, pair := range ops {
			if pair.o == nil || !cfg.allowMethod(pair.m) {
				continue
			}
			tags := make([]string, 0, len(pair.o.Tags))
			for _, t := range pair.o.Tags {
				if t = strings.TrimSpace(t); t != "" {
					tags = append(tags, t)
				}
			}
			if !allowByTags(tags, cfg) {
				continue
			}
			sm.Endpoints = append(sm.Endpoints, EndpointModel{
				ID:          string(pair.m) + " " + p,
				OperationID: strings.TrimSpace(pair.o.OperationID),
				Method:      pair.m,
				Path:        p,
				Summary:     safeStr(pair.o.Summary),
				Description: safeStr(pair.o.Description),
				Tags:        tags,
				Parameters:  mergeParameters(baseParams, pair.o.Parameters),
				RequestBody: toRequestBody(pair.o.RequestBody),
				Responses:   toResponses(pair.o.Responses),
			})
		}
	}

	sm.Tags = collectSortedTags(sm.Endpoints)
	return sm, nil
}

func (c *buildConfig) allowMethod(m HttpMethod) bool {
	if len(c.methods) == 0 {
		return true
	}
	_, ok := c.methods[m]
	return ok
}

func (c *buildConfig) allowPath(p string) bool {
	if len(c.pathRes) == 0 {
		return true
	}
	for _, re := range c.pathRes {
		if re.MatchString(p) {
			return true
		}
	}
	return false
}

func allowByTags(tags []string, cfg *buildConfig) bool {
	if len(cfg.includeTags) > 0 {
		ok := false
		for _, t := range tags {
			if _, yes := cfg.includeTags[t]; yes {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	for _, t := range tags {
		if _, blocked := cfg.excludeTags[t]; blocked {
			return false
		}
	}
	return true
}

// mergeParameters overlays operation parameters on path-level ones and
// sorts the result by location then name.
func mergeParameters(base map[string]*ParameterModel, refs openapi3.Parameters) []ParameterModel {
	merged := make(map[string]*ParameterModel, len(base)+len(refs))
	for k, v := range base {
		merged[k] = v
	}
	for _, pref := range refs {
		if pm := toParameterModel(pref); pm != nil {
			merged[paramKey(pm.In, pm.Name)] = pm
		}
	}
	if len(merged) == 0 {
		return nil
	}
	params := make([]ParameterModel, 0, len(merged))
	for _, v := range merged {
		params = append(params, *v)
	}
	sort.Slice(params, func(i, j int) bool {
		if params[i].In == params[j].In {
			return params[i].Name < params[j].Name
		}
		return params[i].In < params[j].In
	})
	return params
}

func toRequestBody(ref *openapi3.RequestBodyRef) *RequestBodyModel {
	if ref == nil || ref.Value == nil {
		return nil
	}
	return &RequestBodyModel{
		Required: ref.Value.Required,
		Content:  toMediaList(ref.Value.Content),
	}
}

func toResponses(responses openapi3.Responses) []ResponseModel {
	var out []ResponseModel
	for _, code := range sortedKeys(responses) {
		rref := responses[code]
		if rref == nil || rref.Value == nil {
			continue
		}
		desc := ""
		if rref.Value.Description != nil {
			desc = safeStr(*rref.Value.Description)
		}
		out = append(out, ResponseModel{
			Status:      code,
			Description: desc,
			Content:     toMediaList(rref.Value.Content),
		})
	}
	return out
}

func paramKey(in, name string) string { return in + ":" + name }

func safeStr(s string) string { return strings.TrimSpace(s) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toParameterModel(pref *openapi3.ParameterRef) *ParameterModel {
	if pref == nil || pref.Value == nil {
		return nil
	}
	p := pref.Value
	pm := &ParameterModel{
		Name:     safeStr(p.Name),
		In:       safeStr(p.In),
		Required: p.Required,
	}
	if p.Schema != nil {
		pm.Schema = toSchemaOrRef(p.Schema)
	}
	return pm
}

func toMediaList(content openapi3.Content) []Media {
	var out []Media
	for _, mime := range sortedKeys(content) {
		mt := content[mime]
		if mt == nil {
			continue
		}
		out = append(out, Media{Mime: mime, Schema: toSchemaOrRef(mt.Schema)})
	}
	return out
}

func toSchemaOrRef(ref *openapi3.SchemaRef) *SchemaOrRef {
	if ref == nil {
		return nil
	}
	if ref.Ref != "" {
		return &SchemaOrRef{Ref: &SchemaRef{Ref: ref.Ref}}
	}
	if ref.Value == nil {
		return nil
	}
	v := ref.Value
	s := &Schema{
		Type:        safeStr(v.Type),
		Format:      safeStr(v.Format),
		Nullable:    v.Nullable,
		Description: safeStr(v.Description),
		Required:    append([]string(nil), v.Required...),
	}
	if len(v.Enum) > 0 {
		s.Enum = append([]any(nil), v.Enum...)
	}
	if v.Items != nil {
		s.Items = toSchemaOrRef(v.Items)
	}
	if len(v.Properties) > 0 {
		s.Properties = make(map[string]*SchemaOrRef, len(v.Properties))
		for name, prop := range v.Properties {
			s.Properties[name] = toSchemaOrRef(prop)
		}
	}
	for _, r := range v.AllOf {
		s.AllOf = append(s.AllOf, toSchemaOrRef(r))
	}
	for _, r := range v.AnyOf {
		s.AnyOf = append(s.AnyOf, toSchemaOrRef(r))
	}
	for _, r := range v.OneOf {
		s.OneOf = append(s.OneOf, toSchemaOrRef(r))
	}
	if d := v.Discriminator; d != nil {
		s.Discriminator = d.PropertyName
		if len(d.Mapping) > 0 {
			s.Mapping = make(map[string]string, len(d.Mapping))
			for k, ref := range d.Mapping {
				s.Mapping[k] = ref
			}
		}
	}
	return &SchemaOrRef{Schema: s}
}

func collectSortedTags(endpoints []EndpointModel) []string {
	set := make(map[string]struct{})
	for _, ep := range endpoints {
		for _, t := range ep.Tags {
			set[t] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return sortedKeys(set)
}
