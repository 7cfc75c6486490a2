package poker

import "testing"

func TestNewPoolIsFull(t *testing.T) {
	pool := NewPool()
	if pool.Len() != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, pool.Len())
	}
	for i := 1; i <= DeckSize; i++ {
		c, _ := IntToCard(i)
		if !pool.Has(c) {
			t.Fatalf("expected %s in a fresh pool", c.Name())
		}
	}
}

func TestPoolClaimOnce(t *testing.T) {
	pool := NewPool()
	c, _ := NewCard(Spade, King)
	if !pool.Claim(c) {
		t.Fatal("first claim should succeed")
	}
	if pool.Claim(c) {
		t.Fatal("second claim should fail")
	}
	if pool.Has(c) {
		t.Fatal("claimed card still in pool")
	}
	if pool.Len() != DeckSize-1 {
		t.Fatalf("expected %d cards, got %d", DeckSize-1, pool.Len())
	}
}
