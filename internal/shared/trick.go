package shared

// PlayedCard stores a card along with who played it.
type PlayedCard struct {
	PlayerID string `json:"player_id"`
	Team     int    `json:"team"`
	Card     Card   `json:"card"`
}

// Trick holds the cards played in the current trick, in play order.
type Trick struct {
	Cards []PlayedCard
}

// NewTrick creates a new trick instance.
func NewTrick() *Trick {
	return &Trick{Cards: []PlayedCard{}}
}

// AddCard appends a play to the trick.
func (t *Trick) AddCard(playerID string, team int, card Card) {
	t.Cards = append(t.Cards, PlayedCard{PlayerID: playerID, Team: team, Card: card})
}

// HasPlayed reports whether the player already has a card in this trick.
func (t *Trick) HasPlayed(playerID string) bool {
	for _, pc := range t.Cards {
		if pc.PlayerID == playerID {
			return true
		}
	}
	return false
}

// Withdraw removes the player's entry, if any. Used when a player leaves mid-trick.
func (t *Trick) Withdraw(playerID string) bool {
	for i, pc := range t.Cards {
		if pc.PlayerID == playerID {
			t.Cards = append(t.Cards[:i], t.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of cards played so far.
func (t *Trick) Len() int {
	return len(t.Cards)
}

// Resolve returns the winning play of the trick.
func (t *Trick) Resolve(manilha Rank) (PlayedCard, error) {
	return ResolveTrick(t.Cards, manilha)
}

// ResolveTrick returns the entry holding the strongest card. The result does
// not depend on the order of entries because Strength is a strict total order.
func ResolveTrick(entries []PlayedCard, manilha Rank) (PlayedCard, error) {
	if len(entries) == 0 {
		return PlayedCard{}, ErrEmptyTrick
	}
	best := entries[0]
	bestStrength := Strength(best.Card, manilha)
	for _, pc := range entries[1:] {
		if s := Strength(pc.Card, manilha); s > bestStrength {
			best, bestStrength = pc, s
		}
	}
	return best, nil
}
