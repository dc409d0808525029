package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckIsCanonical(t *testing.T) {
	d := NewDeck()
	require.Len(t, d.Cards, 40)

	seen := make(map[Card]bool)
	for _, c := range d.Cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
		assert.NotContains(t, []Rank{"8", "9", "10"}, c.Rank)
	}
	assert.Equal(t, Card{Rank: Four, Suit: Diamonds}, d.Cards[0])
	assert.Equal(t, Card{Rank: Three, Suit: Spades}, d.Cards[39])
	assert.Equal(t, NewDeck().Cards, d.Cards, "build must be deterministic")
}

func TestShuffleIsPermutation(t *testing.T) {
	reference := make(map[Card]bool)
	for _, c := range NewDeck().Cards {
		reference[c] = true
	}

	for i := 0; i < 200; i++ {
		d := NewDeck()
		d.Shuffle()
		require.Len(t, d.Cards, 40)
		seen := make(map[Card]bool)
		for _, c := range d.Cards {
			require.True(t, reference[c], "unexpected card %s", c)
			require.False(t, seen[c], "duplicate card %s", c)
			seen[c] = true
		}
	}
}

func TestShuffleSpreadsFirstPosition(t *testing.T) {
	// Every card should reach the top of the deck over enough shuffles.
	firsts := make(map[Card]int)
	for i := 0; i < 4000; i++ {
		d := NewDeck()
		d.Shuffle()
		firsts[d.Cards[0]]++
	}
	assert.Len(t, firsts, 40)
}

func TestDrawTurnedCard(t *testing.T) {
	d := NewDeck()
	turned, err := d.DrawTurnedCard()
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Three, Suit: Spades}, turned)
	assert.Equal(t, 39, d.Len())

	empty := &Deck{}
	_, err = empty.DrawTurnedCard()
	assert.ErrorIs(t, err, ErrInsufficientCards)
}

func TestDeal(t *testing.T) {
	d := NewDeck()
	_, err := d.DrawTurnedCard()
	require.NoError(t, err)

	hands, err := d.Deal(4)
	require.NoError(t, err)
	require.Len(t, hands, 4)
	for _, h := range hands {
		assert.Len(t, h, CardsPerPlayer)
	}
	assert.Equal(t, NewDeck().Cards[0:3], hands[0], "first player gets the front of the deck")
	assert.Equal(t, 39-12, d.Len())
}

func TestDealInsufficientCards(t *testing.T) {
	d := &Deck{Cards: NewDeck().Cards[:12]}
	_, err := d.Deal(4)
	assert.ErrorIs(t, err, ErrInsufficientCards)
	assert.Equal(t, 12, d.Len(), "a failed deal must not consume cards")

	d = &Deck{Cards: NewDeck().Cards[:13]}
	_, err = d.Deal(4)
	assert.NoError(t, err)
}
