package validator

import (
	"fmt"
	"log/slog"

	"github.com/siddsp02/creation-vs-initialization/internal/card"
	"github.com/siddsp02/creation-vs-initialization/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	HandPath string
	Results  ValidationResults

	cards []card.Card
}

func NewValidator(handPath string) *Validator {
	return &Validator{
		HandPath: handPath,
		Results:  ValidationResults{},
	}
}

// Validate loads the hand file and checks every entry. A file that cannot be
// read or decoded is returned as an error; problems with entries are
// collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	hand, err := deck.LoadHand(v.HandPath)
	if err != nil {
		return v.Results, err
	}

	slog.Debug("validating hand", "path", v.HandPath, "entries", len(hand.Entries))

	v.validateName(hand)
	v.validateEntries(hand)
	v.validateDuplicates()

	return v.Results, nil
}

// Cards returns the entries that passed construction, in file order
func (v *Validator) Cards() []card.Card {
	return v.cards
}

func (v *Validator) validateName(hand *deck.Hand) {
	if hand.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings, "hand has no name")
	}
}

// validateEntries constructs each entry and records rejections
func (v *Validator) validateEntries(hand *deck.Hand) {
	if len(hand.Entries) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "hand has no cards")
		return
	}

	for i, e := range hand.Entries {
		c, err := card.New(e.Rank, e.Suit)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: %v", i+1, err))
			continue
		}
		v.cards = append(v.cards, c)
	}
}

// validateDuplicates warns once per repeated card
func (v *Validator) validateDuplicates() {
	seen := make(map[card.Card]int)
	for _, c := range v.cards {
		seen[c]++
		if seen[c] == 2 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("duplicate card: %s", c))
		}
	}
}
