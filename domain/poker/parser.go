package poker

import "strings"

// Index is the rank value, position 0 unused.
const rankSymbols = "?A23456789TJQK"

// Index is the suit value.
const suitSymbols = "CDHS"

// ParseCard resolves a two-character descriptor (rank then suit, case
// insensitive, e.g. "Th" or "AS") and claims the card from the pool.
//
// An unresolvable descriptor yields *UnknownCardError; a card no longer in
// the pool yields *CardAlreadyUsedError. The pool is only modified on success.
func ParseCard(descriptor string, pool *Pool) (Card, error) {
	normalized := strings.ToUpper(strings.TrimSpace(descriptor))
	if len(normalized) != 2 {
		return Card{}, &UnknownCardError{Descriptor: descriptor}
	}

	rank := strings.IndexByte(rankSymbols, normalized[0])
	suit := strings.IndexByte(suitSymbols, normalized[1])
	if rank < 1 || suit < 0 {
		return Card{}, &UnknownCardError{Descriptor: descriptor}
	}

	card, err := NewCard(uint8(suit), uint8(rank))
	if err != nil {
		return Card{}, &UnknownCardError{Descriptor: descriptor}
	}
	if !pool.Claim(card) {
		return Card{}, &CardAlreadyUsedError{Card: card}
	}
	return card, nil
}

// parseCards parses descriptors left to right and stops at the first failure.
// Cards parsed before the failing one stay claimed.
func parseCards(descriptors []string, pool *Pool) ([]Card, error) {
	cards := make([]Card, 0, len(descriptors))
	for _, d := range descriptors {
		c, err := ParseCard(d, pool)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
