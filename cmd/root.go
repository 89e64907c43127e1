package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/siddsp02/creation-vs-initialization/internal/card"
	"github.com/spf13/cobra"
)

var verbose bool

// RootCmd represents the base command. Without a subcommand it builds the
// sample card and prints it.
var RootCmd = &cobra.Command{
	Use:   "cardsmith",
	Short: "Build and validate playing cards",
	Long: `Cardsmith builds playing cards from a rank (1-13) and a suit
(clubs, diamonds, hearts, spades). Invalid arguments are rejected before
a card exists; ranks 1, 11, 12 and 13 are stored by name.

Run without arguments to print a sample card.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.New(12, card.Hearts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), c)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
