package poker

import (
	"errors"
	"fmt"
)

// Error messages are printed to the user as they are, so they start with a
// capital letter.

// ErrMissingPlayerOrCard is returned for a player line with fewer than three tokens.
var ErrMissingPlayerOrCard = errors.New("Missing player name or card")

// ErrNoPlayers is returned when input ends before any player was entered.
var ErrNoPlayers = errors.New("No players entered")

// UnknownCardError reports a descriptor that does not name one of the 52 cards.
type UnknownCardError struct {
	Descriptor string
}

func (e *UnknownCardError) Error() string {
	return fmt.Sprintf("Unknown card '%s'", e.Descriptor)
}

// CardAlreadyUsedError reports a card claimed a second time in the same session.
type CardAlreadyUsedError struct {
	Card Card
}

func (e *CardAlreadyUsedError) Error() string {
	return e.Card.Name() + " already used"
}

// InvalidCommunityCountError reports a community line without exactly five cards.
type InvalidCommunityCountError struct {
	Received int
}

func (e *InvalidCommunityCountError) Error() string {
	return fmt.Sprintf("Expected %d community cards but received %d", BoardSize, e.Received)
}
