package shared

// Team represents one of the two partnerships in a match.
type Team struct {
	Index   int      `json:"index"`
	Members []string `json:"members"` // player IDs in seating order
	Score   int      `json:"score"`   // match points
	Tricks  int      `json:"tricks"`  // tricks won in the current hand
}

// NewTeam creates an empty team.
func NewTeam(index int) *Team {
	return &Team{
		Index:   index,
		Members: []string{},
	}
}

// AddMember seats a player on the team.
func (t *Team) AddMember(playerID string) {
	t.Members = append(t.Members, playerID)
}

// RemoveMember drops a player from the team.
func (t *Team) RemoveMember(playerID string) bool {
	for i, id := range t.Members {
		if id == playerID {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			return true
		}
	}
	return false
}

// Size returns the number of seated members.
func (t *Team) Size() int {
	return len(t.Members)
}

// AddScore adds points to the team's match score. Points are never negative.
func (t *Team) AddScore(points int) {
	if points > 0 {
		t.Score += points
	}
}

// ResetScore resets the match score to 0.
func (t *Team) ResetScore() {
	t.Score = 0
}

// ResetTricks clears the per-hand trick count.
func (t *Team) ResetTricks() {
	t.Tricks = 0
}
