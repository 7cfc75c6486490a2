package poker

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Stage is the position of a Collector in the input protocol.
type Stage int

const (
	AwaitingCommunity Stage = iota
	AwaitingPlayer
	Finalized
)

func (s Stage) String() string {
	switch s {
	case AwaitingCommunity:
		return "awaiting-community"
	case AwaitingPlayer:
		return "awaiting-player"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Collector consumes the input protocol one line at a time: a line of five
// community cards, then one line per player, then a blank line.
//
// Every error it returns is meant to be fatal. After an error the pool may
// already have lost cards parsed earlier on the same line.
type Collector struct {
	stage   Stage
	pool    *Pool
	board   Board
	players []Player
	newID   func() uuid.UUID
	logger  *slog.Logger
}

type option func(Collector) Collector

// NewCollector returns a Collector in the AwaitingCommunity stage with a
// full pool.
func NewCollector(opts ...option) *Collector {
	c := Collector{
		stage:  AwaitingCommunity,
		pool:   NewPool(),
		newID:  uuid.New,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		c = opt(c)
	}
	return &c
}

// WithPool makes the collector claim cards from the given pool.
func WithPool(pool *Pool) option {
	return func(c Collector) Collector {
		c.pool = pool
		return c
	}
}

// WithIDGenerator replaces uuid.New for player identifiers.
func WithIDGenerator(newID func() uuid.UUID) option {
	return func(c Collector) Collector {
		c.newID = newID
		return c
	}
}

// WithLogger sets the logger used for debug traces of accepted lines.
func WithLogger(logger *slog.Logger) option {
	return func(c Collector) Collector {
		c.logger = logger
		return c
	}
}

// Stage returns the current stage.
func (c *Collector) Stage() Stage {
	return c.stage
}

// Board returns the community cards. It is only meaningful once the
// collector has left AwaitingCommunity.
func (c *Collector) Board() Board {
	return c.board
}

// Players returns a copy of the players collected so far, in input order.
func (c *Collector) Players() []Player {
	return append([]Player(nil), c.players...)
}

// Prompt returns the question to ask before the next line.
func (c *Collector) Prompt() string {
	switch c.stage {
	case AwaitingCommunity:
		return "What are the five community cards?"
	case AwaitingPlayer:
		return fmt.Sprintf("What is player %d's name and two cards?", len(c.players)+1)
	default:
		return ""
	}
}

// Feed processes one line of input. A blank line while awaiting players
// finalizes the collection. Lines fed after that are ignored.
func (c *Collector) Feed(line string) error {
	input := strings.TrimSpace(line)
	switch c.stage {
	case AwaitingCommunity:
		return c.handleCommunityCards(input)
	case AwaitingPlayer:
		if input == "" {
			return c.finalize()
		}
		return c.handlePlayerCards(input)
	default:
		return nil
	}
}

// Close signals the end of input. It behaves like feeding a blank line.
func (c *Collector) Close() error {
	return c.Feed("")
}

func (c *Collector) handleCommunityCards(input string) error {
	descriptors := strings.Fields(input)
	if len(descriptors) != BoardSize {
		return &InvalidCommunityCountError{Received: len(descriptors)}
	}

	cards, err := parseCards(descriptors, c.pool)
	if err != nil {
		return err
	}
	copy(c.board[:], cards)
	c.stage = AwaitingPlayer
	c.logger.Debug("community cards set", "board", cardsString(cards))
	return nil
}

func (c *Collector) handlePlayerCards(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) < 3 {
		return ErrMissingPlayerOrCard
	}

	name := strings.Join(tokens[:len(tokens)-2], " ")
	cards, err := parseCards(tokens[len(tokens)-2:], c.pool)
	if err != nil {
		return err
	}
	p := Player{
		ID:   c.newID(),
		Name: name,
		Hand: Hand{cards[0], cards[1]},
	}
	c.players = append(c.players, p)
	c.logger.Debug("player added", "name", p.Name, "id", p.ID.String(), "hand", cardsString(cards))
	return nil
}

func (c *Collector) finalize() error {
	if len(c.players) == 0 {
		return ErrNoPlayers
	}
	c.stage = Finalized
	c.logger.Debug("input finalized", "players", len(c.players), "remaining", c.pool.Len())
	return nil
}

// cardsString renders cards in their colored short form for log records.
func cardsString(cards []Card) string {
	ss := make([]string, len(cards))
	for i, c := range cards {
		ss[i] = c.String()
	}
	return strings.Join(ss, " ")
}
