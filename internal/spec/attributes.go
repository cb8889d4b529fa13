package spec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mark3labs/petstore-client/apiclient"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

// GoName converts a wire or tag name into an exported Go identifier:
// "pet_type" becomes "PetType", "$another-fake?" becomes "AnotherFake".
func GoName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(titleCaser.String(p))
	}
	name := sb.String()
	if name == "" {
		return ""
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "Var" + name
	}
	return name
}

// ServiceName returns the API service an endpoint tagged with tag belongs to.
// Untagged endpoints belong to DefaultAPI.
func ServiceName(tags []string) string {
	if len(tags) == 0 {
		return "DefaultAPI"
	}
	return GoName(tags[0]) + "API"
}

// DeriveModels derives the expected model description of every component
// schema, sorted by name.
func DeriveModels(sm *ServiceModel) ([]apiclient.ModelInfo, error) {
	out := make([]apiclient.ModelInfo, 0, len(sm.Schemas))
	for _, name := range sortedKeys(sm.Schemas) {
		info, err := DeriveModel(sm, name)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

// DeriveModel derives the attribute type map, enums and union members a
// generated model for the named schema should declare. allOf and anyOf
// members are merged into one property set; oneOf schemas become unions
// without attributes of their own. Attributes are sorted by wire name.
func DeriveModel(sm *ServiceModel, name string) (apiclient.ModelInfo, error) {
	schema, ok := sm.Schemas[name]
	if !ok {
		return apiclient.ModelInfo{}, fmt.Errorf("schema %q not found", name)
	}
	info := apiclient.ModelInfo{Name: name, Attributes: []apiclient.Attribute{}}
	if len(schema.OneOf) > 0 {
		for _, member := range schema.OneOf {
			if member == nil || member.Ref == nil {
				return apiclient.ModelInfo{}, fmt.Errorf("schema %q: inline oneOf members are not supported", name)
			}
			info.OneOf = append(info.OneOf, member.Ref.RefName())
		}
		info.Discriminator = schema.Discriminator
		if len(schema.Mapping) > 0 {
			info.Mapping = make(map[string]string, len(schema.Mapping))
			for value, ref := range schema.Mapping {
				info.Mapping[value] = (&SchemaRef{Ref: ref}).RefName()
			}
		}
		return info, nil
	}

	props := map[string]*SchemaOrRef{}
	required := map[string]bool{}
	if err := collectProperties(sm, &schema, props, required, map[string]bool{name: true}); err != nil {
		return apiclient.ModelInfo{}, fmt.Errorf("schema %q: %w", name, err)
	}
	for _, baseName := range sortedKeys(props) {
		prop := props[baseName]
		field := GoName(baseName)
		attr := apiclient.Attribute{
			Name:     field,
			BaseName: baseName,
			Type:     goType(prop, name+field+"Enum"),
			Required: required[baseName],
		}
		if prop.Schema != nil {
			attr.Format = prop.Schema.Format
			attr.Nullable = prop.Schema.Nullable
			if values := enumValues(prop.Schema); values != nil {
				info.Enums = append(info.Enums, apiclient.EnumInfo{Name: attr.Type, Values: values})
			}
		}
		info.Attributes = append(info.Attributes, attr)
	}
	return info, nil
}

// collectProperties merges the properties and required names of s and its
// allOf/anyOf members. seen guards against reference cycles.
func collectProperties(sm *ServiceModel, s *Schema, props map[string]*SchemaOrRef, required map[string]bool, seen map[string]bool) error {
	members := append(append([]*SchemaOrRef(nil), s.AllOf...), s.AnyOf...)
	for _, m := range members {
		if m == nil {
			continue
		}
		member := m.Schema
		if m.Ref != nil {
			refName := m.Ref.RefName()
			if seen[refName] {
				return fmt.Errorf("reference cycle through %q", refName)
			}
			resolved, ok := sm.Schemas[refName]
			if !ok {
				return fmt.Errorf("unresolved ref %q", m.Ref.Ref)
			}
			seen[refName] = true
			member = &resolved
		}
		if err := collectProperties(sm, member, props, required, seen); err != nil {
			return err
		}
		if m.Ref != nil {
			delete(seen, m.Ref.RefName())
		}
	}
	for name, prop := range s.Properties {
		if prop != nil {
			props[name] = prop
		}
	}
	for _, r := range s.Required {
		required[r] = true
	}
	return nil
}

// goType maps a property schema to the Go type the generated field carries,
// without pointer or nullable wrappers. enumName names inline string enums.
func goType(sor *SchemaOrRef, enumName string) string {
	if sor == nil {
		return "interface{}"
	}
	if sor.Ref != nil {
		return sor.Ref.RefName()
	}
	s := sor.Schema
	if enumValues(s) != nil {
		return enumName
	}
	switch s.Type {
	case "integer":
		if s.Format == "int64" {
			return "int64"
		}
		return "int32"
	case "number":
		if s.Format == "float" {
			return "float32"
		}
		return "float64"
	case "boolean":
		return "bool"
	case "string":
		switch s.Format {
		case "uuid":
			return "uuid.UUID"
		case "date-time":
			return "time.Time"
		case "binary":
			return "*os.File"
		}
		return "string"
	case "array":
		return "[]" + goType(s.Items, enumName)
	}
	return "map[string]interface{}"
}

func enumValues(s *Schema) []string {
	if s == nil || s.Type != "string" || len(s.Enum) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.Enum))
	for _, v := range s.Enum {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

// DeriveOperations derives the operation table the generated services should
// expose, sorted by service then operation ID. Header parameters, the request
// body and the success response media type come from the endpoint; JSON is
// preferred when several media types are documented.
func DeriveOperations(sm *ServiceModel) []apiclient.OperationInfo {
	out := make([]apiclient.OperationInfo, 0, len(sm.Endpoints))
	for _, ep := range sm.Endpoints {
		op := apiclient.OperationInfo{
			API:         ServiceName(ep.Tags),
			OperationID: ep.OperationID,
			Method:      strings.ToUpper(string(ep.Method)),
			Path:        ep.Path,
			Statuses:    []int{},
		}
		for _, p := range ep.Parameters {
			if p.In != "header" {
				continue
			}
			h := apiclient.HeaderInfo{
				Name:     p.Name,
				Type:     goType(p.Schema, GoName(p.Name)+"Enum"),
				Required: p.Required,
			}
			if p.Schema != nil && p.Schema.Schema != nil {
				h.Format = p.Schema.Schema.Format
			}
			op.Headers = append(op.Headers, h)
		}
		sort.SliceStable(op.Headers, func(i, j int) bool { return op.Headers[i].Name < op.Headers[j].Name })
		if ep.RequestBody != nil {
			if m, ok := preferredMedia(ep.RequestBody.Content); ok {
				op.Body = &apiclient.BodyInfo{
					Model:       goType(m.Schema, GoName(ep.OperationID)+"Body"),
					ContentType: m.Mime,
					Required:    ep.RequestBody.Required,
				}
			}
		}
		var accept string
		for _, r := range ep.Responses {
			code, err := strconv.Atoi(r.Status)
			if err != nil {
				continue
			}
			op.Statuses = append(op.Statuses, code)
			if code >= 200 && code < 300 && accept == "" {
				if m, ok := preferredMedia(r.Content); ok {
					accept = m.Mime
				}
			}
		}
		op.Accept = accept
		sort.Ints(op.Statuses)
		out = append(out, op)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].API != out[j].API {
			return out[i].API < out[j].API
		}
		return out[i].OperationID < out[j].OperationID
	})
	return out
}

// preferredMedia returns the JSON media entry when present, else the first.
func preferredMedia(content []Media) (Media, bool) {
	if len(content) == 0 {
		return Media{}, false
	}
	for _, m := range content {
		if m.Mime == "application/json" {
			return m, true
		}
	}
	return content[0], true
}
