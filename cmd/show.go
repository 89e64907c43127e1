package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/siddsp02/creation-vs-initialization/internal/card"
	"github.com/siddsp02/creation-vs-initialization/internal/config"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [rank] [suit]",
	Short: "Display a card with labeled, colored fields",
	Long: `Show builds a card and prints its fields one per line.

Suit colors are read from the [suit_colors] table of the config file.
Use --color to force colors on or off; by default they are used only
when stdout is a terminal.

Examples:
  cardsmith show 12 hearts
  cardsmith show 7 clubs --color never`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseCard(args[0], args[1])
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		mode, _ := cmd.Flags().GetString("color")
		if mode == "" {
			mode = cfg.Color
		}
		if !slices.Contains(config.ColorModes, mode) {
			return fmt.Errorf("unknown color mode %q (want one of %v)", mode, config.ColorModes)
		}

		colorize.NoColor = !useColor(mode)

		displayCard(cmd.OutOrStdout(), c, cfg)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().String("color", "", "Color mode: auto, always or never (default from config)")
}

// useColor resolves a color mode against the terminal
func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func getSuitSymbol(suit string) string {
	switch suit {
	case card.Clubs:
		return "♣"
	case card.Diamonds:
		return "♦"
	case card.Hearts:
		return "♥"
	case card.Spades:
		return "♠"
	default:
		return "•"
	}
}

// suitString paints s in the configured suit color when colors are on
func suitString(s, suit string, cfg *config.Config) string {
	if colorize.NoColor {
		return s
	}
	col, ok := cfg.SuitColor(suit)
	if !ok {
		return colorize.HiWhiteString("%s", s)
	}
	return ansiColorString(s, col)
}

// ansiColorString formats text with a 24-bit foreground color
func ansiColorString(s string, c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}

// displayCard prints the labeled card fields
func displayCard(w io.Writer, c card.Card, cfg *config.Config) {
	value, suit := c.Unpack()
	symbol := getSuitSymbol(suit)

	kind := "Pip"
	if value.IsName() {
		kind = "Face"
	}

	infoLines := []string{
		colorize.CyanString("Card:  ") + suitString(c.Name()+" "+symbol, suit, cfg),
		colorize.CyanString("Value: ") + colorize.HiWhiteString("%s", value) + " (" + kind + ")",
		colorize.CyanString("Suit:  ") + suitString(suit+" · "+symbol, suit, cfg),
		colorize.CyanString("Repr:  ") + c.String(),
	}

	fmt.Fprintln(w)
	for _, line := range infoLines {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w)
}
