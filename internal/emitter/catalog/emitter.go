// Package catalog exports the wire contract of the generated client (every
// model's attribute type map and every operation descriptor) as JSON and
// YAML files.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mark3labs/petstore-client/apiclient"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Catalog is the exported contract.
type Catalog struct {
	Title      string                    `json:"title" yaml:"title"`
	Version    string                    `json:"version" yaml:"version"`
	Models     []apiclient.ModelInfo     `json:"models" yaml:"models"`
	Operations []apiclient.OperationInfo `json:"operations" yaml:"operations"`
}

// Options controls where and how the catalog is written.
type Options struct {
	OutDir  string   // required
	Formats []string // json, yaml; defaults to json
	Force   bool     // overwrite a non-empty OutDir
	DryRun  bool     // plan only
}

// PlannedFile describes a file the emitter intends to write.
type PlannedFile struct {
	RelPath string
	Size    int
	Mode    os.FileMode
}

type Result struct {
	Planned []PlannedFile
}

// Emit renders c into OutDir in the canonical order of sorted, so the same
// contract yields identical bytes whatever order its tables were built in.
func Emit(ctx context.Context, c Catalog, opts Options) (*Result, error) {
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("catalog: OutDir is required")
	}
	formats, err := normalizeFormats(opts.Formats)
	if err != nil {
		return nil, err
	}
	c = sorted(c)

	files := map[string][]byte{}
	if formats[FormatJSON] {
		if files["models.json"], err = marshalJSON(c.Models); err != nil {
			return nil, fmt.Errorf("marshal models.json: %w", err)
		}
		if files["operations.json"], err = marshalJSON(c.Operations); err != nil {
			return nil, fmt.Errorf("marshal operations.json: %w", err)
		}
	}
	if formats[FormatYAML] {
		if files["catalog.yaml"], err = marshalYAML(c); err != nil {
			return nil, fmt.Errorf("marshal catalog.yaml: %w", err)
		}
	}

	rels := make([]string, 0, len(files))
	for p := range files {
		rels = append(rels, p)
	}
	sort.Strings(rels)
	planned := make([]PlannedFile, 0, len(rels))
	for _, rel := range rels {
		planned = append(planned, PlannedFile{RelPath: rel, Size: len(files[rel]), Mode: 0o644})
	}

	if !opts.DryRun {
		if err := writeFiles(ctx, opts.OutDir, files, opts.Force); err != nil {
			return nil, err
		}
	}
	return &Result{Planned: planned}, nil
}

func normalizeFormats(in []string) (map[string]bool, error) {
	out := map[string]bool{}
	for _, f := range in {
		f = strings.ToLower(strings.TrimSpace(f))
		switch f {
		case "":
		case FormatJSON, FormatYAML:
			out[f] = true
		default:
			return nil, fmt.Errorf("catalog: unsupported format %q (use json or yaml)", f)
		}
	}
	if len(out) == 0 {
		out[FormatJSON] = true
	}
	return out, nil
}

// sorted returns a copy of c in canonical order: models by name with their
// attributes by wire name and enums by name, operations by service then
// operation ID with headers by name. A model without attributes gets an
// empty list.
func sorted(c Catalog) Catalog {
	models := make([]apiclient.ModelInfo, len(c.Models))
	for i, m := range c.Models {
		m.Attributes = append([]apiclient.Attribute{}, m.Attributes...)
		sort.SliceStable(m.Attributes, func(i, j int) bool { return m.Attributes[i].BaseName < m.Attributes[j].BaseName })
		if m.Enums != nil {
			m.Enums = append([]apiclient.EnumInfo(nil), m.Enums...)
			sort.SliceStable(m.Enums, func(i, j int) bool { return m.Enums[i].Name < m.Enums[j].Name })
		}
		models[i] = m
	}
	sort.SliceStable(models, func(i, j int) bool { return models[i].Name < models[j].Name })

	ops := make([]apiclient.OperationInfo, len(c.Operations))
	for i, op := range c.Operations {
		if op.Headers != nil {
			op.Headers = append([]apiclient.HeaderInfo(nil), op.Headers...)
			sort.SliceStable(op.Headers, func(i, j int) bool { return op.Headers[i].Name < op.Headers[j].Name })
		}
		ops[i] = op
	}
	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].API != ops[j].API {
			return ops[i].API < ops[j].API
		}
		return ops[i].OperationID < ops[j].OperationID
	})
	c.Models, c.Operations = models, ops
	return c
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFiles(ctx context.Context, outDir string, files map[string][]byte, force bool) error {
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolve out dir: %w", err)
	}
	if st, err := os.Stat(abs); err == nil && st.IsDir() && !force {
		if entries, rerr := os.ReadDir(abs); rerr == nil && len(entries) > 0 {
			return fmt.Errorf("catalog: output directory %q is not empty (use --force to overwrite)", abs)
		}
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	for rel, content := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := filepath.Join(abs, rel)
		tmp := p + ".tmp-" + time.Now().Format("20060102150405")
		if err := os.WriteFile(tmp, content, 0o644); err != nil {
			return fmt.Errorf("write temp %s: %w", rel, err)
		}
		if err := os.Rename(tmp, p); err != nil {
			_ = os.Remove(tmp)
			return fmt.Errorf("rename %s: %w", rel, err)
		}
	}
	return nil
}
