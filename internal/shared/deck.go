package shared

import (
	"fmt"
	"math/rand/v2"
)

// CardsPerPlayer is the size of a Truco hand.
const CardsPerPlayer = 3

// Deck represents the cards still to be drawn. A fresh deck is built for
// every hand and discarded after dealing.
type Deck struct {
	Cards []Card
}

// NewDeck creates the canonical 40-card deck, suit by suit, ranks weakest first.
func NewDeck() *Deck {
	cards := make([]Card, 0, len(suitLadder)*len(rankLadder))
	for _, suit := range suitLadder {
		for _, rank := range rankLadder {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck (Fisher-Yates).
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// DrawTurnedCard removes and returns the last card of the deck.
func (d *Deck) DrawTurnedCard() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrInsufficientCards
	}
	last := len(d.Cards) - 1
	card := d.Cards[last]
	d.Cards = d.Cards[:last]
	return card, nil
}

// Deal removes CardsPerPlayer cards per player from the front of the deck,
// in player order. It fails when fewer than 3*n+1 cards remain.
func (d *Deck) Deal(numPlayers int) ([][]Card, error) {
	needed := numPlayers*CardsPerPlayer + 1
	if len(d.Cards) < needed {
		return nil, fmt.Errorf("%w: have %d, need %d for %d players", ErrInsufficientCards, len(d.Cards), needed, numPlayers)
	}

	dealt := make([][]Card, numPlayers)
	start := 0
	for i := 0; i < numPlayers; i++ {
		end := start + CardsPerPlayer
		// Copy so the hand does not alias the deck's backing array
		hand := make([]Card, CardsPerPlayer)
		copy(hand, d.Cards[start:end])
		dealt[i] = hand
		start = end
	}
	d.Cards = d.Cards[start:]
	return dealt, nil
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.Cards)
}
