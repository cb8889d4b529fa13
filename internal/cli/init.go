package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const defaultInitPath = "petstore-cli.yaml"

// InitConfig captures the options for the init command.
type InitConfig struct {
	OutputPath string
	Force      bool
}

var initRunner = runInit

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a sample petstore CLI configuration file",
		Long:  "Scaffold a commented configuration file that documents every option and its environment variable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			return initRunner(cmd.Context(), &InitConfig{OutputPath: out, Force: force}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("out", defaultInitPath, "Where to write the sample config file")
	cmd.Flags().Bool("force", false, "Overwrite the target file if it already exists")
	return cmd
}

func runInit(ctx context.Context, cfg *InitConfig, w io.Writer) error {
	_ = ctx

	out := strings.TrimSpace(cfg.OutputPath)
	if out == "" {
		out = defaultInitPath
	}
	absPath, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("init: resolve output path: %w", err)
	}

	if st, err := os.Stat(absPath); err == nil && !cfg.Force && st.Mode().IsRegular() {
		return newUsageError(fmt.Sprintf("init: %q already exists (use --force to overwrite)", absPath))
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return newUsageError(fmt.Sprintf("init: cannot create parent directory: %v", err))
	}

	content := strings.TrimSpace(sampleConfigYAML) + "\n"
	tmp := absPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return newUsageError(fmt.Sprintf("init: cannot write temp file: %v\nHint: choose a different --out or check directory permissions.", err))
	}
	if err := os.Rename(tmp, absPath); err != nil {
		_ = os.Remove(tmp)
		return newUsageError(fmt.Sprintf("init: cannot place file at %s: %v", absPath, err))
	}
	fmt.Fprintf(w, "Wrote sample config to %s\n", absPath)
	return nil
}

const sampleConfigYAML = `# petstore CLI configuration (YAML)
# All fields are optional. PETSTORE_* environment variables override this
# file and command-line flags override both.

# Path or URL to the OpenAPI document. The embedded document is used when
# omitted. (PETSTORE_INPUT)
# input: ./openapi/petstore.yaml

# Server base URL for the call command. (PETSTORE_BASE_PATH)
# basePath: http://localhost

# User-Agent sent by the call command. (PETSTORE_USER_AGENT)
# userAgent: petstore-cli

# HTTP timeout for document fetches and calls. (PETSTORE_TIMEOUT)
# timeout: 30s

# Catalog output directory. (PETSTORE_OUT)
# out: ./catalog

# Catalog formats, json and/or yaml. (PETSTORE_FORMATS)
# formats: [json, yaml]

# Catalog source, client or document. (PETSTORE_SOURCE)
# source: client

# Only include operations with these tags (document source). (PETSTORE_INCLUDE_TAGS)
# includeTags: [pets]

# Exclude operations with these tags (document source). (PETSTORE_EXCLUDE_TAGS)
# excludeTags: [internal]

# Preview planned outputs without writing files. (PETSTORE_DRY_RUN)
# dryRun: false

# Overwrite a non-empty output directory. (PETSTORE_FORCE)
# force: false

# Enable debug logging on stderr. (PETSTORE_VERBOSE)
# verbose: false
`
