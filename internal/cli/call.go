package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mark3labs/petstore-client/apiclient"
	"github.com/mark3labs/petstore-client/petstore"
)

// CallInput holds the per-call arguments of the call command.
type CallInput struct {
	OperationID string
	Body        string
	UUID        string
	Headers     []string
}

var callRunner = runCall

func newCallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <operationId>",
		Short: "Send one request through the generated client",
		Long: "Send one request for the named operation and print the status and body. " +
			"--body takes inline JSON or @file.",
		Example: strings.TrimSpace(`  petstore call getFruit --base-path http://localhost:8080
  petstore call petsFilteredPatch --body '{"age":3,"pet_type":"Cat"}'
  petstore call '123_test_@#$%_special_tags' --uuid 1b4e28ba-2fa1-11d2-883f-0016d3cca427 --body '{"client":"me"}'`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			in := &CallInput{OperationID: args[0]}
			if in.Body, err = cmd.Flags().GetString("body"); err != nil {
				return err
			}
			if in.UUID, err = cmd.Flags().GetString("uuid"); err != nil {
				return err
			}
			if in.Headers, err = cmd.Flags().GetStringArray("header"); err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), cmd.ErrOrStderr(), cfg.Verbose)
			return callRunner(ctx, cfg, in, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.String("base-path", "", "Server base URL (default \""+apiclient.DefaultBasePath+"\")")
	flags.String("user-agent", "", "User-Agent header value")
	flags.Duration("timeout", 0, "HTTP client timeout")
	flags.StringArray("header", nil, "Extra request header as 'Name: value' (repeatable)")
	flags.String("body", "", "JSON request body, or @path to read it from a file")
	flags.String("uuid", "", "Value of the uuid_test header")
	return cmd
}

func runCall(ctx context.Context, cfg *Config, in *CallInput, out io.Writer) error {
	client := petstore.NewAPIClient(newConfiguration(cfg))

	var opts []petstore.RequestOption
	for _, h := range in.Headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return newUsageError(fmt.Sprintf("call: invalid --header %q (want 'Name: value')", h))
		}
		opts = append(opts, petstore.WithHeader(strings.TrimSpace(name), strings.TrimSpace(value)))
	}
	body, err := readBodyArg(in.Body)
	if err != nil {
		return err
	}

	switch in.OperationID {
	case "getFruit":
		resp, err := client.DefaultAPI.GetFruit(ctx, opts...)
		if err != nil {
			return err
		}
		switch r := resp.(type) {
		case petstore.GetFruit200JSONResponse:
			return printResult(out, r.StatusCode(), r.Body)
		case petstore.GetFruitDefaultResponse:
			return printRaw(out, r.Status, r.Body)
		}
	case "petsFilteredPatch":
		var req *petstore.PetsFilteredPatchRequest
		if body != nil {
			req = &petstore.PetsFilteredPatchRequest{}
			if err := decodeBodyArg(body, req); err != nil {
				return err
			}
		}
		resp, err := client.PetsAPI.PetsFilteredPatch(ctx, req, opts...)
		if err != nil {
			return err
		}
		switch r := resp.(type) {
		case petstore.PetsFilteredPatch200Response:
			return printRaw(out, r.StatusCode(), nil)
		case petstore.PetsFilteredPatchDefaultResponse:
			return printRaw(out, r.Status, r.Body)
		}
	case "123_test_@#$%_special_tags":
		id, err := uuid.Parse(strings.TrimSpace(in.UUID))
		if err != nil {
			return newUsageError(fmt.Sprintf("call: --uuid must be a UUID: %v", err))
		}
		var c petstore.Client
		if body != nil {
			if err := decodeBodyArg(body, &c); err != nil {
				return err
			}
		}
		resp, err := client.AnotherFakeAPI.Call123testSpecialTags(ctx, id, c, opts...)
		if err != nil {
			return err
		}
		switch r := resp.(type) {
		case petstore.Call123testSpecialTags200JSONResponse:
			return printResult(out, r.StatusCode(), r.Body)
		case petstore.Call123testSpecialTagsDefaultResponse:
			return printRaw(out, r.Status, r.Body)
		}
	default:
		return newUsageError(fmt.Sprintf("call: unknown operation %q (known: %s)", in.OperationID, strings.Join(operationIDs(), ", ")))
	}
	return fmt.Errorf("call: unexpected response for %s", in.OperationID)
}

func newConfiguration(cfg *Config) *apiclient.Configuration {
	opts := []apiclient.ConfigOption{
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BasePath != "" {
		opts = append(opts, apiclient.WithBasePath(cfg.BasePath))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, apiclient.WithUserAgent(cfg.UserAgent))
	}
	return apiclient.NewConfiguration(opts...)
}

func readBodyArg(arg string) ([]byte, error) {
	arg = strings.TrimSpace(arg)
	switch {
	case arg == "":
		return nil, nil
	case strings.HasPrefix(arg, "@"):
		data, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return nil, newUsageError(fmt.Sprintf("call: read --body file: %v", err))
		}
		return data, nil
	default:
		return []byte(arg), nil
	}
}

// decodeBodyArg applies the model's own decoding, so required properties and
// enum values are checked before anything is sent.
func decodeBodyArg(data []byte, m apiclient.Model) error {
	if err := apiclient.JSON.Unmarshal(data, m); err != nil {
		return newUsageError(fmt.Sprintf("call: invalid %s body: %v", m.ModelName(), err))
	}
	return nil
}

func printResult(out io.Writer, status int, body interface{}) error {
	data, err := apiclient.JSON.Marshal(body)
	if err != nil {
		return err
	}
	return printRaw(out, status, data)
}

func printRaw(out io.Writer, status int, body []byte) error {
	fmt.Fprintf(out, "%d %s\n", status, http.StatusText(status))
	if len(body) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(out, strings.TrimSpace(string(body)))
	return err
}

func operationIDs() []string {
	ops := petstore.Operations()
	ids := make([]string, 0, len(ops))
	for _, op := range ops {
		ids = append(ids, op.OperationID)
	}
	sort.Strings(ids)
	return ids
}
