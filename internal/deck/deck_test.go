package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/siddsp02/creation-vs-initialization/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHand(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hand.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStandard(t *testing.T) {
	cards := Standard()
	require.Len(t, cards, 52)

	seen := make(map[card.Card]bool)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}

	assert.Equal(t, card.Must(1, card.Clubs), cards[0])
	assert.Equal(t, card.Must(13, card.Spades), cards[51])
}

func TestFilterSuit(t *testing.T) {
	hearts := FilterSuit(Standard(), card.Hearts)
	require.Len(t, hearts, 13)
	for _, c := range hearts {
		assert.Equal(t, card.Hearts, c.Suit())
	}

	assert.Empty(t, FilterSuit(Standard(), "stars"))
}

func TestSort(t *testing.T) {
	cards := []card.Card{
		card.Must(12, card.Hearts),
		card.Must(3, card.Spades),
		card.Must(1, card.Clubs),
		card.Must(3, card.Clubs),
	}
	Sort(cards)

	assert.Equal(t, []card.Card{
		card.Must(3, card.Clubs),
		card.Must(3, card.Spades),
		card.Must(1, card.Clubs),
		card.Must(12, card.Hearts),
	}, cards)
}

func TestLoadHand(t *testing.T) {
	path := writeHand(t, `
name = "royal"

[[card]]
rank = 12
suit = "hearts"

[[card]]
rank = 7
suit = "clubs"
`)

	hand, err := LoadHand(path)
	require.NoError(t, err)
	assert.Equal(t, "royal", hand.Name)
	assert.Equal(t, path, hand.Path)
	require.Len(t, hand.Entries, 2)

	cards, err := hand.Cards()
	require.NoError(t, err)
	assert.Equal(t, []card.Card{card.Must(12, card.Hearts), card.Must(7, card.Clubs)}, cards)
}

func TestLoadHand_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadHand(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorContains(t, err, "hand file not found")
	})

	t.Run("bad toml", func(t *testing.T) {
		_, err := LoadHand(writeHand(t, "name = "))
		assert.ErrorContains(t, err, "error parsing hand file")
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadHand(writeHand(t, "[[card]]\nrank = 2\nsuit = \"clubs\"\ncolour = \"red\"\n"))
		assert.ErrorContains(t, err, "unknown key")
	})
}

func TestHand_CardsInvalidEntry(t *testing.T) {
	hand := &Hand{Entries: []Entry{{Rank: 2, Suit: "clubs"}, {Rank: 14, Suit: "clubs"}}}

	cards, err := hand.Cards()
	assert.Nil(t, cards)
	assert.ErrorIs(t, err, card.ErrInvalidCard)
	assert.ErrorContains(t, err, "card 2")
}
