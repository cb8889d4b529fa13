package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/mark3labs/petstore-client/internal/emitter/catalog"
)

const (
	SourceClient   = "client"
	SourceDocument = "document"
)

// Config captures every input that influences a command after merging
// defaults, the config file, PETSTORE_* environment variables and flags, in
// that order.
type Config struct {
	Input       string        `env:"PETSTORE_INPUT"`
	BasePath    string        `env:"PETSTORE_BASE_PATH"`
	UserAgent   string        `env:"PETSTORE_USER_AGENT"`
	Timeout     time.Duration `env:"PETSTORE_TIMEOUT"`
	Out         string        `env:"PETSTORE_OUT"`
	Formats     []string      `env:"PETSTORE_FORMATS" envSeparator:","`
	Source      string        `env:"PETSTORE_SOURCE"`
	IncludeTags []string      `env:"PETSTORE_INCLUDE_TAGS" envSeparator:","`
	ExcludeTags []string      `env:"PETSTORE_EXCLUDE_TAGS" envSeparator:","`
	DryRun      bool          `env:"PETSTORE_DRY_RUN"`
	Force       bool          `env:"PETSTORE_FORCE"`
	Verbose     bool          `env:"PETSTORE_VERBOSE"`

	ConfigPath string
}

func defaultConfig() Config {
	return Config{
		Out:     "catalog",
		Formats: []string{catalog.FormatJSON},
		Source:  SourceClient,
		Timeout: 30 * time.Second,
	}
}

func resolveConfig(cmd *cobra.Command) (*Config, error) {
	cfg := defaultConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	configPath = strings.TrimSpace(configPath)
	if configPath != "" {
		cfg.ConfigPath = configPath
		if err := applyConfigFromFile(&cfg, configPath); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, newUsageError(fmt.Sprintf("environment: %v", err))
	}

	if err := applyFlagOverrides(cmd.Flags(), &cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyFlagOverrides copies flags the user set explicitly. Commands register
// only the flags they use, so unknown names are skipped.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *Config) error {
	for name, dst := range map[string]*string{
		"input":      &cfg.Input,
		"base-path":  &cfg.BasePath,
		"user-agent": &cfg.UserAgent,
		"out":        &cfg.Out,
		"source":     &cfg.Source,
	} {
		if !changed(flags, name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = strings.TrimSpace(value)
	}
	for name, dst := range map[string]*[]string{
		"format":       &cfg.Formats,
		"include-tags": &cfg.IncludeTags,
		"exclude-tags": &cfg.ExcludeTags,
	} {
		if !changed(flags, name) {
			continue
		}
		value, err := flags.GetStringSlice(name)
		if err != nil {
			return err
		}
		*dst = sanitizeList(value)
	}
	for name, dst := range map[string]*bool{
		"dry-run": &cfg.DryRun,
		"force":   &cfg.Force,
		"verbose": &cfg.Verbose,
	} {
		if !changed(flags, name) {
			continue
		}
		value, err := flags.GetBool(name)
		if err != nil {
			return err
		}
		*dst = value
	}
	if changed(flags, "timeout") {
		value, err := flags.GetDuration("timeout")
		if err != nil {
			return err
		}
		cfg.Timeout = value
	}
	return nil
}

func changed(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

func (c *Config) normalize() {
	c.Input = strings.TrimSpace(c.Input)
	c.BasePath = strings.TrimRight(strings.TrimSpace(c.BasePath), "/")
	c.UserAgent = strings.TrimSpace(c.UserAgent)
	c.Out = strings.TrimSpace(c.Out)
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	c.IncludeTags = sanitizeList(c.IncludeTags)
	c.ExcludeTags = sanitizeList(c.ExcludeTags)
	formats := sanitizeList(c.Formats)
	for i, f := range formats {
		formats[i] = strings.ToLower(f)
	}
	c.Formats = formats
}

func (c *Config) validate() error {
	switch c.Source {
	case "":
		c.Source = SourceClient
	case SourceClient, SourceDocument:
	default:
		return newUsageError(fmt.Sprintf("unsupported --source %q (allowed: client, document)", c.Source))
	}
	for _, f := range c.Formats {
		if f != catalog.FormatJSON && f != catalog.FormatYAML {
			return newUsageError(fmt.Sprintf("unsupported --format %q (allowed: json, yaml)", f))
		}
	}
	if c.Timeout < 0 {
		return newUsageError(fmt.Sprintf("--timeout must not be negative, got %s", c.Timeout))
	}
	if overlap := intersect(c.IncludeTags, c.ExcludeTags); len(overlap) > 0 {
		return newUsageError(fmt.Sprintf("include/exclude tags overlap: %s", strings.Join(overlap, ", ")))
	}
	return nil
}

func sanitizeList(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(a))
	for _, item := range a {
		set[item] = struct{}{}
	}
	var result []string
	for _, item := range b {
		if _, ok := set[item]; ok {
			result = append(result, item)
		}
	}
	return result
}

func applyConfigFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newUsageError(fmt.Sprintf("read config file %q: %v", path, err))
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return newUsageError(fmt.Sprintf("parse config file %q: %v", path, err))
	}

	for key, value := range raw {
		var ferr error
		switch normalizeKey(key) {
		case "input":
			cfg.Input, ferr = valueAsString(value)
		case "basepath":
			cfg.BasePath, ferr = valueAsString(value)
		case "useragent":
			cfg.UserAgent, ferr = valueAsString(value)
		case "out":
			cfg.Out, ferr = valueAsString(value)
		case "source":
			cfg.Source, ferr = valueAsString(value)
		case "timeout":
			cfg.Timeout, ferr = valueAsDuration(value)
		case "formats", "format":
			cfg.Formats, ferr = valueAsStringSlice(value)
		case "includetags":
			cfg.IncludeTags, ferr = valueAsStringSlice(value)
		case "excludetags":
			cfg.ExcludeTags, ferr = valueAsStringSlice(value)
		case "dryrun":
			cfg.DryRun, ferr = valueAsBool(value)
		case "force":
			cfg.Force, ferr = valueAsBool(value)
		case "verbose":
			cfg.Verbose, ferr = valueAsBool(value)
		default:
			return newUsageError(fmt.Sprintf("config file %q: unknown field %q", path, key))
		}
		if ferr != nil {
			return newUsageError(fmt.Sprintf("config field %q: %v", key, ferr))
		}
	}
	return nil
}

func normalizeKey(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	lowered = strings.ReplaceAll(lowered, "-", "")
	lowered = strings.ReplaceAll(lowered, "_", "")
	return lowered
}

func valueAsString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}

func valueAsStringSlice(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return sanitizeList(strings.Split(val, ",")), nil
	case []any:
		items := make([]string, 0, len(val))
		for idx, elem := range val {
			str, err := valueAsString(elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", idx, err)
			}
			items = append(items, str)
		}
		return sanitizeList(items), nil
	default:
		return nil, fmt.Errorf("expected string or list, got %T", v)
	}
}

func valueAsBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "t", "1", "yes", "y":
			return true, nil
		case "false", "f", "0", "no", "n", "":
			return false, nil
		default:
			return false, fmt.Errorf("invalid boolean value %q", val)
		}
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
}

// valueAsDuration accepts Go duration strings and whole seconds.
func valueAsDuration(v any) (time.Duration, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case int:
		return time.Duration(val) * time.Second, nil
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", val)
		}
		return d, nil
	default:
		return 0, fmt.Errorf("expected duration, got %T", v)
	}
}
