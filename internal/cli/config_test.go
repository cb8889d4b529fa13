package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func captureCatalogConfig(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var captured *Config
	catalogRunner = func(ctx context.Context, cfg *Config, out io.Writer) error {
		captured = cfg
		return nil
	}
	t.Cleanup(func() { catalogRunner = runCatalog })

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return captured, err
}

func TestCatalogConfigFromFlags(t *testing.T) {
	captured, err := captureCatalogConfig(t,
		"--verbose",
		"catalog",
		"--input", "spec.yaml",
		"--out", "./build",
		"--format", "JSON,yaml",
		"--source", "document",
		"--include-tags", "foo,bar,foo",
		"--exclude-tags", "baz",
		"--timeout", "5s",
		"--dry-run",
		"--force",
	)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if captured == nil {
		t.Fatalf("expected config to be captured")
	}

	if captured.Input != "spec.yaml" {
		t.Errorf("input mismatch: got %q", captured.Input)
	}
	if captured.Out != "./build" {
		t.Errorf("out mismatch: got %q", captured.Out)
	}
	if want := []string{"json", "yaml"}; !equalStringSlices(captured.Formats, want) {
		t.Errorf("formats mismatch: got %v", captured.Formats)
	}
	if captured.Source != SourceDocument {
		t.Errorf("source mismatch: got %q", captured.Source)
	}
	if want := []string{"foo", "bar"}; !equalStringSlices(captured.IncludeTags, want) {
		t.Errorf("include tags mismatch: got %v", captured.IncludeTags)
	}
	if want := []string{"baz"}; !equalStringSlices(captured.ExcludeTags, want) {
		t.Errorf("exclude tags mismatch: got %v", captured.ExcludeTags)
	}
	if captured.Timeout != 5*time.Second {
		t.Errorf("timeout mismatch: got %s", captured.Timeout)
	}
	if !captured.DryRun || !captured.Force || !captured.Verbose {
		t.Errorf("expected dry-run, force and verbose: %+v", captured)
	}
}

func TestCatalogConfigDefaults(t *testing.T) {
	captured, err := captureCatalogConfig(t, "catalog")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if captured.Out != "catalog" || captured.Source != SourceClient || captured.Timeout != 30*time.Second {
		t.Fatalf("unexpected defaults: %+v", captured)
	}
	if want := []string{"json"}; !equalStringSlices(captured.Formats, want) {
		t.Fatalf("formats mismatch: got %v", captured.Formats)
	}
}

func TestConfigLayering_FileEnvFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "input: from-file.yaml\n" +
		"out: file-out\n" +
		"formats: json\n" +
		"force: true\n" +
		"timeout: 10\n" +
		"include_tags: [pets]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PETSTORE_OUT", "env-out")
	t.Setenv("PETSTORE_FORMATS", "json,yaml")

	captured, err := captureCatalogConfig(t, "--config", path, "catalog", "--format", "yaml")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if captured.ConfigPath != path {
		t.Errorf("config path mismatch: got %q", captured.ConfigPath)
	}
	if captured.Input != "from-file.yaml" {
		t.Errorf("input should come from the file, got %q", captured.Input)
	}
	if captured.Out != "env-out" {
		t.Errorf("out should come from the environment, got %q", captured.Out)
	}
	if want := []string{"yaml"}; !equalStringSlices(captured.Formats, want) {
		t.Errorf("formats should come from flags, got %v", captured.Formats)
	}
	if !captured.Force {
		t.Errorf("force should come from the file")
	}
	if captured.Timeout != 10*time.Second {
		t.Errorf("timeout mismatch: got %s", captured.Timeout)
	}
	if want := []string{"pets"}; !equalStringSlices(captured.IncludeTags, want) {
		t.Errorf("include tags mismatch: got %v", captured.IncludeTags)
	}
}

func TestConfigRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("lang: go\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	badBool := filepath.Join(dir, "bool.yaml")
	if err := os.WriteFile(badBool, []byte("force: sometimes\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := map[string][]string{
		"unknown field":  {"--config", unknown, "catalog"},
		"bad bool":       {"--config", badBool, "catalog"},
		"missing file":   {"--config", filepath.Join(dir, "missing.yaml"), "catalog"},
		"bad source":     {"catalog", "--source", "registry"},
		"bad format":     {"catalog", "--format", "xml"},
		"tag overlap":    {"catalog", "--include-tags", "pets", "--exclude-tags", "pets"},
		"negative limit": {"catalog", "--timeout", "-1s"},
	}
	for name, args := range cases {
		captured, err := captureCatalogConfig(t, args...)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !errors.Is(err, ErrUsage) {
			t.Fatalf("%s: expected usage error, got %T: %v", name, err, err)
		}
		if captured != nil {
			t.Fatalf("%s: runner must not run", name)
		}
	}
}

func TestEnvironmentParseError(t *testing.T) {
	t.Setenv("PETSTORE_TIMEOUT", "soon")
	_, err := captureCatalogConfig(t, "catalog")
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
