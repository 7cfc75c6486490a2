package poker

import "github.com/google/uuid"

// BoardSize is the number of community cards.
const BoardSize = 5

// Hand holds a player's two hole cards.
type Hand [2]Card

// Board holds the five community cards.
type Board [BoardSize]Card

// Player is a named participant with a generated ID and two hole cards.
type Player struct {
	ID   uuid.UUID
	Name string
	Hand Hand
}

// HandType classifies a five-card poker hand, weakest first.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown Hand"
	}
}

// HandResult is the classification of a player's best hand.
type HandResult struct {
	Type HandType
	// Value orders hands: higher is better, equal means a split.
	Value int
	// ScoringCards are the cards forming the hand type, e.g. the pair.
	ScoringCards []Card
	// Kickers are the remaining cards of the best five, descending.
	Kickers     []Card
	Description string
}

func (r HandResult) String() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Type.String()
}

// ScoredResult binds a HandResult to the player it was computed for.
type ScoredResult struct {
	PlayerID uuid.UUID
	Result   HandResult
}

// Scorer evaluates the hands of all players against the board. It returns
// one result per player.
type Scorer interface {
	Score(players []Player, board Board) ([]ScoredResult, error)
}
