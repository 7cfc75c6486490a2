package poker

import (
	"errors"
)

// DeckSize is the number of distinct cards in a standard deck.
const DeckSize = 52

// Pool is the set of cards still available in a session. It starts with the
// full deck and cards are only ever removed from it.
type Pool struct {
	available map[Card]struct{}
}

// NewPool returns a pool holding all 52 cards.
func NewPool() *Pool {
	p := &Pool{available: make(map[Card]struct{}, DeckSize)}
	for i := 1; i <= DeckSize; i++ {
		c, _ := IntToCard(i)
		p.available[c] = struct{}{}
	}
	return p
}

// Has reports whether the card has not been claimed yet.
func (p *Pool) Has(c Card) bool {
	_, ok := p.available[c]
	return ok
}

// Claim removes the card from the pool. It returns false when the card was
// already gone.
func (p *Pool) Claim(c Card) bool {
	if !p.Has(c) {
		return false
	}
	delete(p.available, c)
	return true
}

// Len returns the number of cards still available.
func (p *Pool) Len() int {
	return len(p.available)
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Ace through King)
//   - 14-26: Diamonds (Ace through King)
//   - 27-39: Hearts (Ace through King)
//   - 40-52: Spades (Ace through King)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := uint8((rawCard - 1) / 13)
	rank := uint8(((rawCard - 1) % 13) + 1)
	return NewCard(suit, rank)
}
