package card

import (
	"cmp"
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MinRank = 1
	MaxRank = 13
)

// Suit identifiers, in canonical order
const (
	Clubs    = "clubs"
	Diamonds = "diamonds"
	Hearts   = "hearts"
	Spades   = "spades"
)

var suits = []string{Clubs, Diamonds, Hearts, Spades}

// faceNames maps the ranks that display by name
var faceNames = map[int]string{
	1:  "Ace",
	11: "Jack",
	12: "Queen",
	13: "King",
}

// Suits returns the valid suits in canonical order
func Suits() []string {
	out := make([]string, len(suits))
	copy(out, suits)
	return out
}

// IsSuit reports whether s is one of the four suits. Matching is exact.
func IsSuit(s string) bool {
	for _, suit := range suits {
		if s == suit {
			return true
		}
	}
	return false
}

// Value is the first field of a card: either a face name or a pip number (2-10)
type Value struct {
	number int
	name   string
}

// IsName reports whether the value was normalized to a face name
func (v Value) IsName() bool {
	return v.name != ""
}

// Number returns the pip number and true, or 0 and false for named values
func (v Value) Number() (int, bool) {
	if v.IsName() {
		return 0, false
	}
	return v.number, true
}

// Interface returns the raw value: an int for pips, a string for face names
func (v Value) Interface() any {
	if v.IsName() {
		return v.name
	}
	return v.number
}

func (v Value) String() string {
	if v.IsName() {
		return v.name
	}
	return strconv.Itoa(v.number)
}

// repr quotes names and leaves numbers bare
func (v Value) repr() string {
	if v.IsName() {
		return "'" + v.name + "'"
	}
	return strconv.Itoa(v.number)
}

// Card is an immutable (value, suit) pair. The zero Card is not a valid card;
// use New to build one.
type Card struct {
	value Value
	suit  string
}

// New validates rank and suit and returns the normalized card.
// Rank is checked before suit.
func New(rank int, suit string) (Card, error) {
	if rank < MinRank || rank > MaxRank {
		return Card{}, &InvalidCardError{Rank: rank, Suit: suit, Reason: ReasonRank}
	}
	if !IsSuit(suit) {
		return Card{}, &InvalidCardError{Rank: rank, Suit: suit, Reason: ReasonSuit}
	}

	v := Value{number: rank}
	if name, ok := faceNames[rank]; ok {
		v = Value{name: name}
	}

	return Card{value: v, suit: suit}, nil
}

// Must is like New but panics on invalid input
func Must(rank int, suit string) Card {
	c, err := New(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Value() Value {
	return c.value
}

func (c Card) Suit() string {
	return c.suit
}

// Unpack returns both fields in order
func (c Card) Unpack() (Value, string) {
	return c.value, c.suit
}

// Name returns the long English name, e.g. "Queen of Hearts"
func (c Card) Name() string {
	caser := cases.Title(language.English)
	return fmt.Sprintf("%s of %s", c.value, caser.String(c.suit))
}

// String renders the card with labeled fields, e.g. Card(value='Queen', suit='hearts')
func (c Card) String() string {
	return fmt.Sprintf("Card(value=%s, suit='%s')", c.value.repr(), c.suit)
}

// Compare orders cards like two-element tuples. Pip values sort before face
// names; names compare as strings. Ties are broken by suit.
func Compare(a, b Card) int {
	if r := compareValue(a.value, b.value); r != 0 {
		return r
	}
	return cmp.Compare(a.suit, b.suit)
}

func compareValue(a, b Value) int {
	switch {
	case !a.IsName() && !b.IsName():
		return cmp.Compare(a.number, b.number)
	case !a.IsName():
		return -1
	case !b.IsName():
		return 1
	default:
		return cmp.Compare(a.name, b.name)
	}
}
