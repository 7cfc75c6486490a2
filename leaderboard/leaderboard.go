// Package leaderboard turns scored hands into a ranked, tie-aware listing.
package leaderboard

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/holdem-ranker/domain/poker"
)

// UnknownPlayer is the name shown for a result whose player is not known.
const UnknownPlayer = "Unknown"

// Row is one line of the leaderboard.
type Row struct {
	Rank        int
	PlayerID    uuid.UUID
	Name        string
	Description string
	Result      poker.HandResult
}

func (r Row) String() string {
	return fmt.Sprintf("%d %s with a %s", r.Rank, r.Name, r.Description)
}

// Presenter scores players through a poker.Scorer and prints the ranking.
type Presenter struct {
	scorer poker.Scorer
	out    io.Writer
}

type option func(Presenter) Presenter

// New returns a Presenter that prints to stdout unless WithOutput is given.
func New(scorer poker.Scorer, opts ...option) *Presenter {
	p := Presenter{
		scorer: scorer,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		p = opt(p)
	}
	return &p
}

// WithOutput sends the printed leaderboard to w.
func WithOutput(w io.Writer) option {
	return func(p Presenter) Presenter {
		p.out = w
		return p
	}
}

// Rank scores the players once and returns the rows sorted from best to
// worst hand.
func (p *Presenter) Rank(players []poker.Player, board poker.Board) ([]Row, error) {
	results, err := p.scorer.Score(players, board)
	if err != nil {
		return nil, err
	}
	return Rows(players, results), nil
}

// Print scores the players and writes one line per player.
func (p *Presenter) Print(players []poker.Player, board poker.Board) error {
	rows, err := p.Rank(players, board)
	if err != nil {
		return err
	}
	for _, r := range rows {
		pterm.Fprintln(p.out, fmt.Sprintf("%s %s with a %s",
			pterm.Bold.Sprint(r.Rank), pterm.Cyan(r.Name), r.Description))
	}
	return nil
}

// Rows orders the results by descending value and assigns ranks and
// descriptions. Results with equal values keep the order they came in.
//
// A row shares the rank of the row above it only when the two hands are
// fully equal (type, scoring cards and kickers).
func Rows(players []poker.Player, results []poker.ScoredResult) []Row {
	sorted := append([]poker.ScoredResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Result.Value > sorted[j].Result.Value
	})

	names := make(map[uuid.UUID]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	rows := make([]Row, 0, len(sorted))
	activeRank := 1
	for i, scored := range sorted {
		var above, below *poker.HandResult
		if i > 0 {
			above = &sorted[i-1].Result
		}
		if i < len(sorted)-1 {
			below = &sorted[i+1].Result
		}
		eqAbove := compare(scored.Result, above)
		eqBelow := compare(scored.Result, below)

		if !eqAbove.hand {
			activeRank = i + 1
		}
		name, ok := names[scored.PlayerID]
		if !ok {
			name = UnknownPlayer
		}
		rows = append(rows, Row{
			Rank:        activeRank,
			PlayerID:    scored.PlayerID,
			Name:        name,
			Description: describe(scored.Result, eqAbove, eqBelow),
			Result:      scored.Result,
		})
	}
	return rows
}

type equality struct {
	handType bool
	cards    bool
	hand     bool
}

func (e equality) or(o equality) equality {
	return equality{
		handType: e.handType || o.handType,
		cards:    e.cards || o.cards,
		hand:     e.hand || o.hand,
	}
}

// compare checks a against its neighbor b. A missing neighbor is never equal.
func compare(a poker.HandResult, b *poker.HandResult) equality {
	if b == nil || a.Type != b.Type {
		return equality{}
	}
	cards := sameRanks(a.ScoringCards, b.ScoringCards)
	return equality{
		handType: true,
		cards:    cards,
		hand:     cards && sameRanks(a.Kickers, b.Kickers),
	}
}

// sameRanks compares card ranks position by position; suits never break ties.
func sameRanks(a, b []poker.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rank() != b[i].Rank() {
			return false
		}
	}
	return true
}

func describe(r poker.HandResult, above, below equality) string {
	eq := above.or(below)
	switch {
	case eq.hand:
		return fmt.Sprintf("%s using %s; Tied!", r, rankNames(r.ScoringCards))
	case eq.cards:
		return fmt.Sprintf("%s using %s; Tie breaker using %s", r, rankNames(r.ScoringCards), rankNames(r.Kickers))
	case eq.handType:
		return fmt.Sprintf("%s using %s", r, rankNames(r.ScoringCards))
	default:
		return r.String()
	}
}

func rankNames(cards []poker.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.RankName()
	}
	return strings.Join(names, ", ")
}
