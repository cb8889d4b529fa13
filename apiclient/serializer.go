package apiclient

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/google/uuid"
	werror "github.com/palantir/witchcraft-go-error"
)

// ToMap converts m into a map keyed by wire name. Only attributes declared in
// the model's type map are kept; unset optional fields are absent and
// explicit nulls are present with a nil value. Numbers are json.Number.
// A union converts through its actual instance.
func ToMap(m Model) (map[string]interface{}, error) {
	if u, ok := m.(Union); ok {
		inst := u.GetActualInstance()
		if inst == nil {
			return nil, werror.Error("union has no actual instance",
				werror.SafeParam("model", m.ModelName()))
		}
		return ToMap(inst)
	}
	data, err := JSON.Marshal(m)
	if err != nil {
		return nil, werror.Wrap(err, "failed to encode model",
			werror.SafeParam("model", m.ModelName()))
	}
	var raw map[string]interface{}
	if err := JSON.Unmarshal(data, &raw); err != nil {
		return nil, werror.Wrap(err, "model does not encode as an object",
			werror.SafeParam("model", m.ModelName()))
	}
	attrs := m.AttributeTypeMap()
	out := make(map[string]interface{}, len(attrs))
	for _, a := range attrs {
		if v, ok := raw[a.BaseName]; ok {
			out[a.BaseName] = v
		}
	}
	return out, nil
}

// FromMap populates m from a map keyed by wire name. Keys outside the
// attribute type map and missing required attributes are rejected. A union
// decodes into the single member that accepts data; data accepted by no
// member or by more than one is rejected.
func FromMap(data map[string]interface{}, m Model) error {
	if _, ok := m.(Union); ok {
		return decodeMap(data, m)
	}
	attrs := m.AttributeTypeMap()
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := LookupAttribute(attrs, k); !ok {
			return werror.Error("unknown attribute",
				werror.SafeParam("model", m.ModelName()),
				werror.UnsafeParam("attribute", k))
		}
	}
	for _, a := range attrs {
		if _, ok := data[a.BaseName]; a.Required && !ok {
			return werror.Error("missing required attribute",
				werror.SafeParam("model", m.ModelName()),
				werror.SafeParam("attribute", a.BaseName))
		}
	}
	return decodeMap(data, m)
}

func decodeMap(data map[string]interface{}, m Model) error {
	encoded, err := JSON.Marshal(data)
	if err != nil {
		return err
	}
	if err := JSON.Unmarshal(encoded, m); err != nil {
		return werror.Wrap(err, "failed to decode model",
			werror.SafeParam("model", m.ModelName()))
	}
	return nil
}

// Validate checks m against its attribute type map: required attributes are
// present, nulls only appear on nullable attributes, primitive values match
// their declared type, enum fields hold a declared value, and url, uuid,
// int32 and int64 formats hold. A union validates its actual instance.
func Validate(m Model) error {
	if u, ok := m.(Union); ok {
		inst := u.GetActualInstance()
		if inst == nil {
			return werror.Error("invalid "+m.ModelName()+": no member is set",
				werror.SafeParam("model", m.ModelName()))
		}
		return Validate(inst)
	}
	raw, err := ToMap(m)
	if err != nil {
		return err
	}
	for _, a := range m.AttributeTypeMap() {
		v, present := raw[a.BaseName]
		if !present {
			if a.Required {
				return attributeError(m, a, "required attribute is missing")
			}
			continue
		}
		if v == nil {
			if !a.Nullable {
				return attributeError(m, a, "attribute is not nullable")
			}
			continue
		}
		if msg := checkValue(a, v); msg != "" {
			return attributeError(m, a, msg)
		}
		if e, ok := enumField(m, a.Name); ok && !e.IsValid() {
			return attributeError(m, a, "value is not one of "+strings.Join(e.EnumValues(), ", "))
		}
	}
	return nil
}

// enumField returns the named struct field of m when it holds an Enum.
// Pointer fields are dereferenced; nil pointers report false.
func enumField(m Model, name string) (Enum, bool) {
	v := reflect.ValueOf(m)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	f := v.FieldByName(name)
	for f.IsValid() && f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return nil, false
		}
		f = f.Elem()
	}
	if !f.IsValid() || !f.CanInterface() {
		return nil, false
	}
	e, ok := f.Interface().(Enum)
	return e, ok
}

func checkValue(a Attribute, v interface{}) string {
	switch a.Type {
	case "string":
		s, ok := v.(string)
		if !ok {
			return fmt.Sprintf("expected string, got %T", v)
		}
		return checkStringFormat(a.Format, s)
	case "bool":
		if _, ok := v.(bool); !ok {
			return fmt.Sprintf("expected bool, got %T", v)
		}
	case "int32", "int64":
		n, ok := v.(json.Number)
		if !ok {
			return fmt.Sprintf("expected integer, got %T", v)
		}
		i, err := n.Int64()
		if err != nil {
			return "expected integer, got " + n.String()
		}
		if a.Type == "int32" && (i < math.MinInt32 || i > math.MaxInt32) {
			return "value overflows int32"
		}
	case "float32", "float64":
		n, ok := v.(json.Number)
		if !ok {
			return fmt.Sprintf("expected number, got %T", v)
		}
		if _, err := n.Float64(); err != nil {
			return "expected number, got " + n.String()
		}
	case "uuid.UUID":
		s, ok := v.(string)
		if !ok {
			return fmt.Sprintf("expected uuid string, got %T", v)
		}
		return checkStringFormat("uuid", s)
	}
	return ""
}

func checkStringFormat(format, s string) string {
	switch format {
	case "url", "uri":
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "value is not an absolute URL"
		}
	case "uuid":
		if _, err := uuid.Parse(s); err != nil {
			return "value is not a UUID"
		}
	}
	return ""
}

func attributeError(m Model, a Attribute, msg string) error {
	return werror.Error("invalid "+m.ModelName()+"."+a.Name+": "+msg,
		werror.SafeParam("model", m.ModelName()),
		werror.SafeParam("attribute", a.BaseName),
		werror.SafeParam("type", a.Type),
		werror.SafeParam("format", a.Format))
}
