package cmd

import (
	"fmt"

	"github.com/siddsp02/creation-vs-initialization/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a hand file",
	Long: `Validate reads a TOML hand file and checks that every [[card]] entry
has a rank between 1 and 13 and a known suit.

Example hand file:
  name = "royal"

  [[card]]
  rank = 12
  suit = "hearts"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handPath := args[0]
		out := cmd.OutOrStdout()

		v := validator.NewValidator(handPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Hand '%s' is valid (%d cards).\n", handPath, len(v.Cards()))
		} else {
			fmt.Fprintf(out, "❌ Hand '%s' has %d validation errors:\n", handPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
