package card

import (
	"errors"
	"fmt"
)

// ErrInvalidCard matches every construction failure via errors.Is
var ErrInvalidCard = errors.New("invalid card")

// Reason says which check rejected the arguments
type Reason string

const (
	ReasonRank Reason = "rank out of range"
	ReasonSuit Reason = "unknown suit"
)

// InvalidCardError is returned by New when rank or suit is rejected
type InvalidCardError struct {
	Rank   int
	Suit   string
	Reason Reason
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("invalid card (rank=%d, suit=%q): %s", e.Rank, e.Suit, e.Reason)
}

func (e *InvalidCardError) Is(target error) bool {
	return target == ErrInvalidCard
}
