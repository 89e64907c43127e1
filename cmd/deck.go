package cmd

import (
	"fmt"

	"github.com/siddsp02/creation-vs-initialization/internal/card"
	"github.com/siddsp02/creation-vs-initialization/internal/deck"
	"github.com/siddsp02/creation-vs-initialization/internal/render"
	"github.com/spf13/cobra"
)

// deckCmd lists the standard deck
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "List the standard 52-card deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cards := deck.Standard()

		suit, _ := cmd.Flags().GetString("suit")
		if suit != "" {
			if !card.IsSuit(suit) {
				return fmt.Errorf("unknown suit %q (want one of %v)", suit, card.Suits())
			}
			cards = deck.FilterSuit(cards, suit)
		}

		if sorted, _ := cmd.Flags().GetBool("sort"); sorted {
			deck.Sort(cards)
		}

		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		return render.Write(cmd.OutOrStdout(), format, cards)
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)

	deckCmd.Flags().StringP("suit", "s", "", "Only list cards of this suit")
	deckCmd.Flags().Bool("sort", false, "Sort by value then suit instead of deck order")
	deckCmd.Flags().StringP("output", "o", "", "Output format: text, json, yaml or toml (default from config)")
}
