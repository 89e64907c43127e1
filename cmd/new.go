package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/siddsp02/creation-vs-initialization/internal/card"
	"github.com/siddsp02/creation-vs-initialization/internal/config"
	"github.com/siddsp02/creation-vs-initialization/internal/render"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [rank] [suit]",
	Short: "Build a card and print it",
	Long: `New validates a rank and suit and prints the resulting card.

Examples:
  cardsmith new 12 hearts
  cardsmith new 7 clubs -o json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseCard(args[0], args[1])
		if err != nil {
			return err
		}

		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		return render.Write(cmd.OutOrStdout(), format, []card.Card{c})
	},
}

func init() {
	RootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("output", "o", "", "Output format: text, json, yaml or toml (default from config)")
}

// parseCard converts CLI arguments and builds the card
func parseCard(rankArg, suit string) (card.Card, error) {
	rank, err := strconv.Atoi(rankArg)
	if err != nil {
		return card.Card{}, fmt.Errorf("invalid rank %q: not an integer", rankArg)
	}

	c, err := card.New(rank, suit)
	if err != nil {
		return card.Card{}, err
	}

	slog.Debug("built card", "rank", rank, "suit", suit, "value", c.Value())
	return c, nil
}

// outputFormat returns the --output flag, falling back to the config file
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format != "" {
		return format, nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return "", fmt.Errorf("error loading config: %w", err)
	}
	slog.Debug("using output format from config", "format", cfg.Output)
	return cfg.Output, nil
}
