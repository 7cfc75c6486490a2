package poker

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Ten   = 10 // T
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 1  // A (low in straights, high in value)
)

var suitNames = [4]string{"Clubs", "Diamonds", "Hearts", "Spades"}

var rankNames = [14]string{
	"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

// Card represents a playing card with suit and rank.
// Rank 0 indicates an uninitialized card.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// highRank orders ranks with the ace on top (2..14).
func (c Card) highRank() int {
	if c.rank == Ace {
		return 14
	}
	return int(c.rank)
}

// RankName returns the English name of the card rank, e.g. "Queen".
func (c Card) RankName() string {
	if int(c.rank) >= len(rankNames) {
		return "?"
	}
	return rankNames[c.rank]
}

// Name returns the long uncolored form of the card, e.g. "Ace of Hearts".
func (c Card) Name() string {
	if c.suit > 3 || c.rank == 0 {
		return "Unknown card"
	}
	return rankNames[c.rank] + " of " + suitNames[c.suit]
}

// Descriptor returns the two-character input form of the card, e.g. "AH".
func (c Card) Descriptor() string {
	if c.suit > 3 || c.rank == 0 || c.rank > 13 {
		return "??"
	}
	return string(rankSymbols[c.rank]) + string(suitSymbols[c.suit])
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Ten:
		rankStr = "T"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	if c.rank == 0 {
		return "?"
	}
	return rankStr + suit
}
