// Package poker implements the domain logic of the hand ranker: cards, the
// pool of cards still available, descriptor parsing, the line-oriented input
// collector and the scoring collaborator.
//
// # Core Types
//
// Card: Represents a playing card with suit and rank.
//
// Pool: The set of cards not yet claimed in the session. Every card can be
// claimed once.
//
// Player: A named player with a generated ID and two hole cards.
//
// Collector: The input state machine. It moves from AwaitingCommunity to
// AwaitingPlayer after five community cards and to Finalized on a blank line.
//
// # Scoring
//
// Hand evaluation is delegated to a Scorer. Evaluator is the implementation
// backed by 7-card evaluation from github.com/paulhankin/poker; it reports
// the hand type, the scoring cards and the kickers of each player's best
// five cards.
package poker
