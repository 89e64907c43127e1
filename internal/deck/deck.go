package deck

import (
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/siddsp02/creation-vs-initialization/internal/card"
)

// Standard returns the 52-card deck in canonical order: suits clubs,
// diamonds, hearts, spades and ranks 1 through 13 within each suit.
func Standard() []card.Card {
	cards := make([]card.Card, 0, 52)
	for _, suit := range card.Suits() {
		for rank := card.MinRank; rank <= card.MaxRank; rank++ {
			cards = append(cards, card.Must(rank, suit))
		}
	}
	return cards
}

// Sort orders cards in place using card.Compare
func Sort(cards []card.Card) {
	slices.SortStableFunc(cards, card.Compare)
}

// FilterSuit returns the cards of the given suit, keeping their order
func FilterSuit(cards []card.Card, suit string) []card.Card {
	var out []card.Card
	for _, c := range cards {
		if c.Suit() == suit {
			out = append(out, c)
		}
	}
	return out
}

// Hand is a named list of raw card entries as read from a hand file
type Hand struct {
	Name    string  `toml:"name"`
	Entries []Entry `toml:"card"`

	Path string `toml:"-"`
}

// Entry is one unvalidated [[card]] table
type Entry struct {
	Rank int    `toml:"rank"`
	Suit string `toml:"suit"`
}

// LoadHand decodes a TOML hand file. Entries are not validated here.
func LoadHand(path string) (*Hand, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("hand file not found: %s", path)
	}

	var hand Hand
	md, err := toml.DecodeFile(path, &hand)
	if err != nil {
		return nil, fmt.Errorf("error parsing hand file: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key in hand file: %s", undecoded[0])
	}

	hand.Path = path
	return &hand, nil
}

// Cards builds every entry, stopping at the first invalid one
func (h *Hand) Cards() ([]card.Card, error) {
	cards := make([]card.Card, 0, len(h.Entries))
	for i, e := range h.Entries {
		c, err := card.New(e.Rank, e.Suit)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}
