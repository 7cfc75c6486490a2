package poker

import (
	"fmt"
	"sort"

	"github.com/paulhankin/poker"
)

// Evaluator is the Scorer backed by github.com/paulhankin/poker.
type Evaluator struct{}

// NewEvaluator returns the default Scorer.
func NewEvaluator() Evaluator {
	return Evaluator{}
}

// Score evaluates the best five-card hand of every player from their hole
// cards and the board. Results are returned in player order.
func (e Evaluator) Score(players []Player, board Board) ([]ScoredResult, error) {
	results := make([]ScoredResult, 0, len(players))
	for _, p := range players {
		r, err := evaluate(p.Hand, board)
		if err != nil {
			return nil, fmt.Errorf("cannot score %s: %w", p.Name, err)
		}
		results = append(results, ScoredResult{PlayerID: p.ID, Result: r})
	}
	return results, nil
}

func evaluate(hand Hand, board Board) (HandResult, error) {
	var seven [7]Card
	copy(seven[:], board[:])
	seven[5] = hand[0]
	seven[6] = hand[1]

	finalHand, err := makeFinalHand(seven)
	if err != nil {
		return HandResult{}, err
	}
	score := poker.Eval7(&finalHand)

	// drop every pair of the seven and keep the strongest remainder
	var best [5]Card
	bestScore := int16(-1 << 15)
	for a := 0; a < 7; a++ {
		for b := a + 1; b < 7; b++ {
			var five [5]Card
			var libFive [5]poker.Card
			k := 0
			for i := 0; i < 7; i++ {
				if i == a || i == b {
					continue
				}
				five[k] = seven[i]
				libFive[k] = finalHand[i]
				k++
			}
			if s := poker.Eval5(&libFive); s > bestScore {
				bestScore = s
				best = five
			}
		}
	}

	handType, scoring, kickers := classify(best)
	return HandResult{
		Type:         handType,
		Value:        int(score),
		ScoringCards: scoring,
		Kickers:      kickers,
		Description:  handType.String(),
	}, nil
}

func makeFinalHand(cards [7]Card) ([7]poker.Card, error) {
	var finalHand [7]poker.Card
	for i, c := range cards {
		card, err := poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.rank))
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		finalHand[i] = card
	}
	return finalHand, nil
}

type rankGroup struct {
	rank  int
	cards []Card
}

// classify splits five cards into the hand type, the cards making it and the
// kickers. Both lists are ordered by descending rank; groups of equal rank
// come before singles.
func classify(five [5]Card) (HandType, []Card, []Card) {
	ordered := append([]Card(nil), five[:]...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].highRank() > ordered[j].highRank()
	})

	flush := true
	for _, c := range ordered[1:] {
		if c.suit != ordered[0].suit {
			flush = false
			break
		}
	}

	var groups []rankGroup
	for _, c := range ordered {
		if n := len(groups); n > 0 && groups[n-1].rank == c.highRank() {
			groups[n-1].cards = append(groups[n-1].cards, c)
			continue
		}
		groups = append(groups, rankGroup{rank: c.highRank(), cards: []Card{c}})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].cards) > len(groups[j].cards)
	})

	straight := false
	if len(groups) == 5 {
		switch {
		case ordered[0].highRank()-ordered[4].highRank() == 4:
			straight = true
		case ordered[0].highRank() == 14 && ordered[1].highRank() == 5:
			// wheel: the ace plays low
			ordered = append(ordered[1:], ordered[0])
			straight = true
		}
	}

	flatten := func(gs []rankGroup) []Card {
		var cards []Card
		for _, g := range gs {
			cards = append(cards, g.cards...)
		}
		return cards
	}

	switch {
	case straight && flush:
		return StraightFlush, ordered, nil
	case len(groups[0].cards) == 4:
		return FourOfAKind, groups[0].cards, flatten(groups[1:])
	case len(groups[0].cards) == 3 && len(groups[1].cards) == 2:
		return FullHouse, flatten(groups), nil
	case flush:
		return Flush, ordered, nil
	case straight:
		return Straight, ordered, nil
	case len(groups[0].cards) == 3:
		return ThreeOfAKind, groups[0].cards, flatten(groups[1:])
	case len(groups[0].cards) == 2 && len(groups[1].cards) == 2:
		return TwoPair, flatten(groups[:2]), flatten(groups[2:])
	case len(groups[0].cards) == 2:
		return OnePair, groups[0].cards, flatten(groups[1:])
	default:
		return HighCard, ordered[:1], ordered[1:]
	}
}
