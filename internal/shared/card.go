package shared

import "fmt"

// Suit represents the suit of a card. Suits only matter for strength when the
// card is a manilha, or to break ties between cards of the same rank.
type Suit string

const (
	Diamonds Suit = "diamonds" // Ouros
	Clubs    Suit = "clubs"    // Paus
	Hearts   Suit = "hearts"   // Copas
	Spades   Suit = "spades"   // Espadas
)

// Rank is one of the ten ranks of the Truco deck (no 8, 9 or 10).
type Rank string

const (
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Queen Rank = "Q"
	Jack  Rank = "J"
	King  Rank = "K"
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
)

// Card represents a single card. It is an immutable value and comparable with ==.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// rankLadder lists ranks from weakest to strongest. It is also the successor
// order used to derive the manilha from the turned card.
var rankLadder = []Rank{Four, Five, Six, Seven, Queen, Jack, King, Ace, Two, Three}

// suitLadder lists suits from weakest to strongest manilha.
var suitLadder = []Suit{Diamonds, Clubs, Hearts, Spades}

// Define rank order for easier comparison
var rankOrder = map[Rank]int{
	Four:  1,
	Five:  2,
	Six:   3,
	Seven: 4,
	Queen: 5,
	Jack:  6,
	King:  7,
	Ace:   8,
	Two:   9,
	Three: 10,
}

var suitOrder = map[Suit]int{
	Diamonds: 1,
	Clubs:    2,
	Hearts:   3,
	Spades:   4,
}

const manilhaBase = 200

// ValidRank reports whether r is one of the ten deck ranks.
func ValidRank(r Rank) bool {
	_, ok := rankOrder[r]
	return ok
}

// ValidSuit reports whether s is one of the four suits.
func ValidSuit(s Suit) bool {
	_, ok := suitOrder[s]
	return ok
}

// ParseCard validates a rank/suit pair coming from a client.
func ParseCard(rank Rank, suit Suit) (Card, error) {
	if !ValidRank(rank) || !ValidSuit(suit) {
		return Card{}, fmt.Errorf("%w: %s of %s", ErrUnknownCard, rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// Successor returns the next rank on the ladder, wrapping from 3 back to 4.
func (r Rank) Successor() Rank {
	i := rankOrder[r] // 1-based, so i is the index of the successor
	return rankLadder[i%len(rankLadder)]
}

// ManilhaFor returns the manilha rank produced by the turned card.
func ManilhaFor(turned Card) Rank {
	return turned.Rank.Successor()
}

// Strength returns the ordering key of a card for the given manilha rank.
// Manilhas outrank every other card and are ordered by suit; the rest order by
// rank with the suit as tie-break, so no two distinct cards compare equal.
func Strength(c Card, manilha Rank) int {
	if c.Rank == manilha {
		return manilhaBase + suitOrder[c.Suit]
	}
	return rankOrder[c.Rank]*10 + suitOrder[c.Suit]
}

// IsManilha reports whether the card carries the manilha rank.
func (c Card) IsManilha(manilha Rank) bool {
	return c.Rank == manilha
}

func (c Card) String() string {
	return string(c.Rank) + " of " + string(c.Suit)
}
