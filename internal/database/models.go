package database

import (
	"time"

	"truco-game/internal/game"
)

// GameResult is one finished match. Unused player slots are empty.
type GameResult struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	CreatedAt   string `json:"created_at"`
	Player1     string `json:"player1"`
	Player2     string `json:"player2"`
	Player3     string `json:"player3"`
	Player4     string `json:"player4"`
	Player1Team int    `json:"player1_team"`
	Player2Team int    `json:"player2_team"`
	Player3Team int    `json:"player3_team"`
	Player4Team int    `json:"player4_team"`
	Team1Score  int    `json:"team1_score"`
	Team2Score  int    `json:"team2_score"`
	WinningTeam int    `json:"winning_team"`
	Hands       int    `json:"hands"`
}

// FromMatch flattens a finished match into a result row.
func FromMatch(m game.MatchResult) GameResult {
	result := GameResult{
		ID:          m.MatchID,
		RoomID:      m.RoomID,
		CreatedAt:   m.FinishedAt.Format(time.RFC3339),
		Team1Score:  m.Scores[0],
		Team2Score:  m.Scores[1],
		WinningTeam: m.WinningTeam,
		Hands:       m.Hands,
	}
	names := []*string{&result.Player1, &result.Player2, &result.Player3, &result.Player4}
	teams := []*int{&result.Player1Team, &result.Player2Team, &result.Player3Team, &result.Player4Team}
	for i, p := range m.Players {
		if i >= len(names) {
			break
		}
		*names[i] = p.Name
		*teams[i] = p.Team
	}
	return result
}
