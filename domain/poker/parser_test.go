package poker

import (
	"errors"
	"testing"
)

func TestParseCardCaseInsensitive(t *testing.T) {
	pool := NewPool()
	c, err := ParseCard("th", pool)
	if err != nil {
		t.Fatal(err)
	}
	expected := Card{suit: Heart, rank: Ten}
	if c != expected {
		t.Fatalf("expected %s, got %s", expected.Name(), c.Name())
	}
	if pool.Has(expected) {
		t.Fatal("parsed card should be claimed")
	}
}

func TestParseCardAllDescriptorsUnique(t *testing.T) {
	pool := NewPool()
	seen := make(map[Card]string)
	for _, r := range "23456789TJQKA" {
		for _, s := range "DSHC" {
			d := string(r) + string(s)
			c, err := ParseCard(d, pool)
			if err != nil {
				t.Fatalf("descriptor %s: %v", d, err)
			}
			if prev, ok := seen[c]; ok {
				t.Fatalf("%s and %s resolve to the same card", prev, d)
			}
			seen[c] = d
		}
	}
	if len(seen) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(seen))
	}
	if pool.Len() != 0 {
		t.Fatalf("expected empty pool, got %d cards", pool.Len())
	}
}

func TestParseCardTwiceFails(t *testing.T) {
	pool := NewPool()
	if _, err := ParseCard("AS", pool); err != nil {
		t.Fatal(err)
	}
	_, err := ParseCard("as", pool)
	var used *CardAlreadyUsedError
	if !errors.As(err, &used) {
		t.Fatalf("expected CardAlreadyUsedError, got %v", err)
	}
	if used.Error() != "Ace of Spades already used" {
		t.Fatalf("unexpected message %q", used.Error())
	}
}

func TestParseCardUnknown(t *testing.T) {
	for _, d := range []string{"XX", "1H", "AX", "", "A", "10H", "ASD"} {
		pool := NewPool()
		_, err := ParseCard(d, pool)
		var unknown *UnknownCardError
		if !errors.As(err, &unknown) {
			t.Fatalf("descriptor %q: expected UnknownCardError, got %v", d, err)
		}
		if unknown.Descriptor != d {
			t.Fatalf("expected descriptor %q in error, got %q", d, unknown.Descriptor)
		}
		if pool.Len() != DeckSize {
			t.Fatalf("descriptor %q: pool changed on failure", d)
		}
	}
}

func TestUnknownCardMessage(t *testing.T) {
	_, err := ParseCard("XX", NewPool())
	if err.Error() != "Unknown card 'XX'" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestParseCardsStopsAtFirstFailure(t *testing.T) {
	pool := NewPool()
	_, err := parseCards([]string{"2C", "3C", "2C", "4C"}, pool)
	var used *CardAlreadyUsedError
	if !errors.As(err, &used) {
		t.Fatalf("expected CardAlreadyUsedError, got %v", err)
	}
	// cards before the duplicate stay claimed, the ones after are untouched
	c2, _ := NewCard(Club, 2)
	c3, _ := NewCard(Club, 3)
	c4, _ := NewCard(Club, 4)
	if pool.Has(c2) || pool.Has(c3) {
		t.Fatal("cards before the failure should be claimed")
	}
	if !pool.Has(c4) {
		t.Fatal("cards after the failure should not be claimed")
	}
}
