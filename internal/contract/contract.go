// Package contract reports drift between an OpenAPI document and the model
// and operation tables of the generated client.
package contract

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mark3labs/petstore-client/apiclient"
	"github.com/mark3labs/petstore-client/internal/spec"
)

// Kind classifies a Finding.
type Kind string

const (
	MissingModel      Kind = "MissingModel"
	ExtraModel        Kind = "ExtraModel"
	MissingAttribute  Kind = "MissingAttribute"
	ExtraAttribute    Kind = "ExtraAttribute"
	AttributeMismatch Kind = "AttributeMismatch"
	EnumMismatch      Kind = "EnumMismatch"
	UnionMismatch     Kind = "UnionMismatch"
	MissingOperation  Kind = "MissingOperation"
	ExtraOperation    Kind = "ExtraOperation"
	OperationMismatch Kind = "OperationMismatch"
)

// Finding is one difference between the document and the client.
type Finding struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Subject string `json:"subject" yaml:"subject"` // e.g. "Pagination.prevUrl" or "PATCH /pets-filtered"
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func (f Finding) String() string {
	if f.Detail == "" {
		return fmt.Sprintf("%s %s", f.Kind, f.Subject)
	}
	return fmt.Sprintf("%s %s: %s", f.Kind, f.Subject, f.Detail)
}

// Report lists findings sorted by subject then kind.
type Report struct {
	Models     int       `json:"models" yaml:"models"`
	Operations int       `json:"operations" yaml:"operations"`
	Findings   []Finding `json:"findings" yaml:"findings"`
}

// Err returns a *DriftError when the report has findings.
func (r Report) Err() error {
	if len(r.Findings) == 0 {
		return nil
	}
	return &DriftError{Findings: append([]Finding(nil), r.Findings...)}
}

// DriftError carries every finding of a failed check.
type DriftError struct {
	Findings []Finding
}

func (e *DriftError) Error() string {
	lines := make([]string, 0, len(e.Findings)+1)
	lines = append(lines, fmt.Sprintf("client drifted from document (%d findings)", len(e.Findings)))
	for _, f := range e.Findings {
		lines = append(lines, "  "+f.String())
	}
	return strings.Join(lines, "\n")
}

// Check compares the models and operations derived from sm with the given
// tables.
func Check(sm *spec.ServiceModel, models []apiclient.ModelInfo, operations []apiclient.OperationInfo) (Report, error) {
	expected, err := spec.DeriveModels(sm)
	if err != nil {
		return Report{}, err
	}
	var findings []Finding
	findings = append(findings, checkModels(expected, models)...)
	findings = append(findings, checkOperations(spec.DeriveOperations(sm), operations)...)
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Subject != findings[j].Subject {
			return findings[i].Subject < findings[j].Subject
		}
		return findings[i].Kind < findings[j].Kind
	})
	return Report{Models: len(models), Operations: len(operations), Findings: findings}, nil
}

func checkModels(expected, actual []apiclient.ModelInfo) []Finding {
	byName := make(map[string]apiclient.ModelInfo, len(actual))
	for _, m := range actual {
		byName[m.Name] = m
	}
	var out []Finding
	for _, want := range expected {
		got, ok := byName[want.Name]
		if !ok {
			out = append(out, Finding{Kind: MissingModel, Subject: want.Name})
			continue
		}
		delete(byName, want.Name)
		out = append(out, compareModel(want, got)...)
	}
	for name := range byName {
		out = append(out, Finding{Kind: ExtraModel, Subject: name})
	}
	return out
}

func compareModel(want, got apiclient.ModelInfo) []Finding {
	var out []Finding
	if !reflect.DeepEqual(nonNil(want.OneOf), nonNil(got.OneOf)) {
		out = append(out, Finding{Kind: UnionMismatch, Subject: want.Name,
			Detail: fmt.Sprintf("oneOf %v, client has %v", want.OneOf, got.OneOf)})
	}
	if want.Discriminator != got.Discriminator {
		out = append(out, Finding{Kind: UnionMismatch, Subject: want.Name,
			Detail: fmt.Sprintf("discriminator %q, client has %q", want.Discriminator, got.Discriminator)})
	}
	if len(want.Mapping) > 0 || len(got.Mapping) > 0 {
		if !reflect.DeepEqual(want.Mapping, got.Mapping) {
			out = append(out, Finding{Kind: UnionMismatch, Subject: want.Name,
				Detail: fmt.Sprintf("mapping %v, client has %v", want.Mapping, got.Mapping)})
		}
	}

	for _, w := range want.Attributes {
		subject := want.Name + "." + w.BaseName
		g, ok := apiclient.LookupAttribute(got.Attributes, w.BaseName)
		if !ok {
			out = append(out, Finding{Kind: MissingAttribute, Subject: subject})
			continue
		}
		if diff := attributeDiff(w, g); diff != "" {
			out = append(out, Finding{Kind: AttributeMismatch, Subject: subject, Detail: diff})
		}
	}
	for _, g := range got.Attributes {
		if _, ok := apiclient.LookupAttribute(want.Attributes, g.BaseName); !ok {
			out = append(out, Finding{Kind: ExtraAttribute, Subject: want.Name + "." + g.BaseName})
		}
	}

	gotEnums := make(map[string][]string, len(got.Enums))
	for _, e := range got.Enums {
		gotEnums[e.Name] = e.Values
	}
	for _, e := range want.Enums {
		values, ok := gotEnums[e.Name]
		if !ok || !sameSet(e.Values, values) {
			out = append(out, Finding{Kind: EnumMismatch, Subject: e.Name,
				Detail: fmt.Sprintf("document declares %v, client has %v", e.Values, values)})
		}
	}
	return out
}

func attributeDiff(want, got apiclient.Attribute) string {
	var diffs []string
	if want.Name != got.Name {
		diffs = append(diffs, fmt.Sprintf("name %q != %q", got.Name, want.Name))
	}
	if want.Type != got.Type {
		diffs = append(diffs, fmt.Sprintf("type %q != %q", got.Type, want.Type))
	}
	if want.Format != got.Format {
		diffs = append(diffs, fmt.Sprintf("format %q != %q", got.Format, want.Format))
	}
	if want.Required != got.Required {
		diffs = append(diffs, fmt.Sprintf("required %t != %t", got.Required, want.Required))
	}
	if want.Nullable != got.Nullable {
		diffs = append(diffs, fmt.Sprintf("nullable %t != %t", got.Nullable, want.Nullable))
	}
	return strings.Join(diffs, ", ")
}

func checkOperations(expected, actual []apiclient.OperationInfo) []Finding {
	key := func(op apiclient.OperationInfo) string { return op.Method + " " + op.Path }
	byKey := make(map[string]apiclient.OperationInfo, len(actual))
	for _, op := range actual {
		byKey[key(op)] = op
	}
	var out []Finding
	for _, want := range expected {
		k := key(want)
		got, ok := byKey[k]
		if !ok {
			out = append(out, Finding{Kind: MissingOperation, Subject: k, Detail: want.OperationID})
			continue
		}
		delete(byKey, k)
		var diffs []string
		if want.API != got.API {
			diffs = append(diffs, fmt.Sprintf("api %q != %q", got.API, want.API))
		}
		if want.OperationID != got.OperationID {
			diffs = append(diffs, fmt.Sprintf("operationId %q != %q", got.OperationID, want.OperationID))
		}
		if !reflect.DeepEqual(nonNilInts(want.Statuses), nonNilInts(got.Statuses)) {
			diffs = append(diffs, fmt.Sprintf("statuses %v != %v", got.Statuses, want.Statuses))
		}
		if !reflect.DeepEqual(sortedHeaders(want.Headers), sortedHeaders(got.Headers)) {
			diffs = append(diffs, fmt.Sprintf("headers %s != %s", headerList(got.Headers), headerList(want.Headers)))
		}
		if !reflect.DeepEqual(want.Body, got.Body) {
			diffs = append(diffs, fmt.Sprintf("body %s != %s", bodyString(got.Body), bodyString(want.Body)))
		}
		if want.Accept != got.Accept {
			diffs = append(diffs, fmt.Sprintf("accept %q != %q", got.Accept, want.Accept))
		}
		if len(diffs) > 0 {
			out = append(out, Finding{Kind: OperationMismatch, Subject: k, Detail: strings.Join(diffs, ", ")})
		}
	}
	for k, op := range byKey {
		out = append(out, Finding{Kind: ExtraOperation, Subject: k, Detail: op.OperationID})
	}
	return out
}

func sortedHeaders(h []apiclient.HeaderInfo) []apiclient.HeaderInfo {
	out := append([]apiclient.HeaderInfo{}, h...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func headerList(h []apiclient.HeaderInfo) string {
	parts := make([]string, 0, len(h))
	for _, x := range sortedHeaders(h) {
		part := x.Name + ":" + x.Type
		if x.Format != "" {
			part += "(" + x.Format + ")"
		}
		if x.Required {
			part += "!"
		}
		parts = append(parts, part)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func bodyString(b *apiclient.BodyInfo) string {
	if b == nil {
		return "none"
	}
	s := b.Model + " as " + b.ContentType
	if b.Required {
		s += " (required)"
	}
	return s
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	return reflect.DeepEqual(as, bs)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
