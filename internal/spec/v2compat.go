package spec

import (
	"strings"

	"gopkg.in/yaml.v3"
)

var v2Methods = map[string]bool{
	"get": true, "post": true, "put": true, "delete": true,
	"patch": true, "options": true, "head": true,
}

// preprocessV2ForCompatibility rewrites Swagger v2 operations that
// openapi2conv rejects:
//   - several body parameters are merged into one object-typed body;
//   - body parameters mixed with formData become formData fields and the
//     operation consumes multipart/form-data.
//
// The input is returned unchanged with modified=false when nothing applies
// or the document cannot be parsed.
func preprocessV2ForCompatibility(data []byte) ([]byte, bool, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return data, false, err
	}
	paths, _ := doc["paths"].(map[string]any)
	modified := false
	for _, item := range paths {
		ops, _ := item.(map[string]any)
		for method, raw := range ops {
			op, ok := raw.(map[string]any)
			if !ok || !v2Methods[strings.ToLower(method)] {
				continue
			}
			if fixV2Operation(op) {
				modified = true
			}
		}
	}
	if !modified {
		return data, false, nil
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return data, false, err
	}
	return out, true, nil
}

func fixV2Operation(op map[string]any) bool {
	params, _ := op["parameters"].([]any)
	var bodies, others []map[string]any
	hasFormData := false
	for _, p := range params {
		pm, _ := p.(map[string]any)
		switch {
		case pm == nil:
		case strings.EqualFold(asString(pm["in"]), "body"):
			bodies = append(bodies, pm)
		default:
			if strings.EqualFold(asString(pm["in"]), "formData") {
				hasFormData = true
			}
			others = append(others, pm)
		}
	}

	switch {
	case len(bodies) == 0:
		return false
	case hasFormData:
		out := make([]any, 0, len(params))
		for _, pm := range others {
			out = append(out, pm)
		}
		for _, pm := range bodies {
			out = append(out, formDataFromBodyParam(pm))
		}
		op["parameters"] = out
		consumes, _ := op["consumes"].([]any)
		if !containsString(consumes, "multipart/form-data") {
			op["consumes"] = append(consumes, "multipart/form-data")
		}
		return true
	case len(bodies) > 1:
		props := map[string]any{}
		var required []any
		for _, pm := range bodies {
			name := paramName(pm)
			schema := extractSchemaFromParam(pm)
			if schema == nil {
				schema = map[string]any{"type": "string"}
			}
			props[name] = schema
			if req, _ := pm["required"].(bool); req {
				required = append(required, name)
			}
		}
		bodySchema := map[string]any{"type": "object", "properties": props}
		if len(required) > 0 {
			bodySchema["required"] = required
		}
		out := []any{map[string]any{"in": "body", "name": "body", "schema": bodySchema}}
		for _, pm := range others {
			out = append(out, pm)
		}
		op["parameters"] = out
		return true
	}
	return false
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func paramName(pm map[string]any) string {
	if name := asString(pm["name"]); name != "" {
		return name
	}
	return "field"
}

func containsString(list []any, want string) bool {
	for _, v := range list {
		if s, ok := v.(string); ok && s == want {
			return true
		}
	}
	return false
}

// extractSchemaFromParam returns the body schema, or one synthesized from a
// non-body parameter's type, items and format.
func extractSchemaFromParam(pm map[string]any) map[string]any {
	if sch, ok := pm["schema"].(map[string]any); ok {
		return sch
	}
	t := asString(pm["type"])
	if t == "" {
		return nil
	}
	m := map[string]any{"type": t}
	if it, ok := pm["items"].(map[string]any); ok {
		m["items"] = it
	}
	if f := asString(pm["format"]); f != "" {
		m["format"] = f
	}
	return m
}

// formDataFromBodyParam degrades a body parameter to a formData field.
// Referenced objects cannot be expressed in formData and become strings.
func formDataFromBodyParam(pm map[string]any) map[string]any {
	out := map[string]any{"in": "formData", "name": paramName(pm)}
	if desc := asString(pm["description"]); desc != "" {
		out["description"] = desc
	}
	if req, ok := pm["required"].(bool); ok {
		out["required"] = req
	}
	src := pm
	if sch, ok := pm["schema"].(map[string]any); ok {
		src = sch
	}
	typ := asString(src["type"])
	if typ == "" {
		typ = "string"
	}
	out["type"] = typ
	if it, ok := src["items"].(map[string]any); ok {
		out["items"] = it
	}
	if f := asString(src["format"]); f != "" {
		out["format"] = f
	}
	return out
}
