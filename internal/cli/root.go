package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs the petstore CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "petstore",
		Short: "Inspect and call the generated petstore client",
		Long: "petstore checks the generated client against its OpenAPI document, " +
			"exports the model and operation catalog, and calls operations from the command line.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Config file path (YAML or JSON)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	for _, sub := range []*cobra.Command{
		newVerifyCmd(),
		newCatalogCmd(),
		newCallCmd(),
		newInitCmd(),
	} {
		cmd.AddCommand(sub)
	}

	// Cobra flag errors (like unknown flags) become usage errors carrying the
	// command's help text.
	for _, c := range append([]*cobra.Command{cmd}, cmd.Commands()...) {
		c.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
			return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
		})
	}
	return cmd
}
