package poker

import (
	"testing"

	"github.com/pterm/pterm"
)

func TestIntToCard(t *testing.T) {
	expectedCard := Card{suit: Heart, rank: 2}
	testCard, err := IntToCard(28)
	if err != nil {
		t.Fatal(err)
	}
	if testCard != expectedCard {
		t.Fatalf("expected %v, get %v", expectedCard, testCard)
	}
}

func TestAllCardConvert(t *testing.T) {
	for i := 1; i <= DeckSize; i++ {
		_, err := IntToCard(i)
		if err != nil {
			t.Fatal(err)
		}
	}
	if _, err := IntToCard(0); err == nil {
		t.Fatal("expected error for card 0")
	}
	if _, err := IntToCard(53); err == nil {
		t.Fatal("expected error for card 53")
	}
}

func TestNewCardInvalid(t *testing.T) {
	if _, err := NewCard(4, 1); err == nil {
		t.Fatal("expected error for suit 4")
	}
	if _, err := NewCard(Spade, 14); err == nil {
		t.Fatal("expected error for rank 14")
	}
}

func TestCardStringFaces(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	c := Card{suit: Heart, rank: 1}
	if c.String() != "A♥" {
		t.Fatalf("expected A♥, got %s", c.String())
	}
	c = Card{suit: Club, rank: 11}
	if c.String() != "J♣" {
		t.Fatalf("expected J♣, got %s", c.String())
	}
}

func TestCardStringMatchesDescriptorRank(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	c := Card{suit: Diamond, rank: Ten}
	if c.String() != "T♦" {
		t.Fatalf("expected T♦, got %s", c.String())
	}
	if c.String()[:1] != c.Descriptor()[:1] {
		t.Fatalf("rank of %s does not match descriptor %s", c.String(), c.Descriptor())
	}
}

func TestCardName(t *testing.T) {
	c := Card{suit: Heart, rank: Ace}
	if c.Name() != "Ace of Hearts" {
		t.Fatalf("expected Ace of Hearts, got %s", c.Name())
	}
	c = Card{suit: Diamond, rank: Ten}
	if c.Name() != "Ten of Diamonds" {
		t.Fatalf("expected Ten of Diamonds, got %s", c.Name())
	}
	if c.RankName() != "Ten" {
		t.Fatalf("expected Ten, got %s", c.RankName())
	}
}

func TestCardDescriptorRoundTrip(t *testing.T) {
	pool := NewPool()
	for i := 1; i <= DeckSize; i++ {
		c, _ := IntToCard(i)
		parsed, err := ParseCard(c.Descriptor(), pool)
		if err != nil {
			t.Fatalf("descriptor %s: %v", c.Descriptor(), err)
		}
		if parsed != c {
			t.Fatalf("expected %s, got %s", c.Name(), parsed.Name())
		}
	}
}
