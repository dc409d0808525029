package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessor(t *testing.T) {
	tests := []struct {
		turned   Rank
		expected Rank
	}{
		{Four, Five},
		{Seven, Queen},
		{Queen, Jack},
		{Ace, Two},
		{Two, Three},
		{Three, Four},
	}
	for _, tt := range tests {
		t.Run(string(tt.turned), func(t *testing.T) {
			assert.Equal(t, tt.expected, ManilhaFor(Card{Rank: tt.turned, Suit: Hearts}))
		})
	}
}

func TestStrengthIsStrictTotalOrder(t *testing.T) {
	cards := NewDeck().Cards
	for _, manilha := range rankLadder {
		keys := make(map[int]Card)
		for _, c := range cards {
			s := Strength(c, manilha)
			other, dup := keys[s]
			require.False(t, dup, "manilha %s: %s and %s share strength %d", manilha, c, other, s)
			keys[s] = c
		}
	}
}

func TestManilhaBeatsEverything(t *testing.T) {
	cards := NewDeck().Cards
	for _, manilha := range rankLadder {
		weakest := Strength(Card{Rank: manilha, Suit: Diamonds}, manilha)
		for _, c := range cards {
			if c.IsManilha(manilha) {
				continue
			}
			assert.Greater(t, weakest, Strength(c, manilha), "%s should lose to any %s", c, manilha)
		}
	}
}

func TestManilhaSuitOrder(t *testing.T) {
	m := Queen
	d := Strength(Card{Rank: m, Suit: Diamonds}, m)
	c := Strength(Card{Rank: m, Suit: Clubs}, m)
	h := Strength(Card{Rank: m, Suit: Hearts}, m)
	s := Strength(Card{Rank: m, Suit: Spades}, m)
	assert.True(t, d < c && c < h && h < s)
}

func TestBaseRankOrder(t *testing.T) {
	// Manilha Q so 3 and 4 stay ordinary cards.
	assert.Greater(t, Strength(Card{Rank: Three, Suit: Diamonds}, Queen), Strength(Card{Rank: Two, Suit: Spades}, Queen))
	assert.Greater(t, Strength(Card{Rank: Five, Suit: Diamonds}, Queen), Strength(Card{Rank: Four, Suit: Spades}, Queen))
}

func TestParseCard(t *testing.T) {
	c, err := ParseCard(Ace, Spades)
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, c)

	_, err = ParseCard("9", Spades)
	assert.ErrorIs(t, err, ErrUnknownCard)
	_, err = ParseCard(Ace, "swords")
	assert.ErrorIs(t, err, ErrUnknownCard)
}
