package shared

// Player represents a seated player. The ID is an opaque identity issued at
// join time and is independent of the transport connection.
type Player struct {
	ID   string // Unique identifier for the player
	Name string // Player's chosen name
	Team int    // 0 or 1
	Hand []Card // Cards currently held by the player
}

// NewPlayer creates a new player with the given ID, name and team.
func NewPlayer(id string, name string, team int) *Player {
	return &Player{
		ID:   id,
		Name: name,
		Team: team,
		Hand: []Card{},
	}
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasCard reports whether the card is in the player's hand.
func (p *Player) HasCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// ClearHand discards whatever the player still holds.
func (p *Player) ClearHand() {
	p.Hand = []Card{}
}
