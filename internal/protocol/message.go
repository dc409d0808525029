package protocol

import (
	"encoding/json"

	"truco-game/internal/shared"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "join", "play_card")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// Inbound action types.
const (
	ActionJoin         = "join"
	ActionStart        = "start"
	ActionPlayCard     = "play_card"
	ActionProposeRaise = "propose_raise"
	ActionRespondRaise = "respond_raise"
	ActionChat         = "chat"
	ActionLeave        = "leave"
	ActionPing         = "ping"
)

// Outbound notification types.
const (
	EventJoined           = "joined"
	EventRosterUpdated    = "roster-updated"
	EventHandDealt        = "hand-dealt"
	EventRoomState        = "room-state"
	EventCardPlayed       = "card-played"
	EventTrickResolved    = "trick-resolved"
	EventHandResolved     = "hand-resolved"
	EventMatchFinished    = "match-finished"
	EventRaiseProposed    = "raise-proposed"
	EventRaiseAccepted    = "raise-accepted"
	EventRaiseRejected    = "raise-rejected"
	EventPlayerLeft       = "player-left"
	EventTurnChanged      = "turn-changed"
	EventMatchInterrupted = "match-interrupted"
	EventChat             = "chat"
	EventError            = "error"
	EventPong             = "pong"
)

// --- Client -> Server Payload Structs ---

type JoinPayload struct {
	Name   string `json:"name"`
	RoomID string `json:"room_id"`
}

type PlayCardPayload struct {
	Rank shared.Rank `json:"rank"`
	Suit shared.Suit `json:"suit"`
}

type RespondRaisePayload struct {
	Accept bool `json:"accept"`
}

type ChatPayload struct {
	Text string `json:"text"`
}

// --- Server -> Client Payload Structs ---

type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team int    `json:"team"`
	Seat int    `json:"seat"`
}

type TeamInfo struct {
	Index   int      `json:"index"`
	Members []string `json:"members"`
	Score   int      `json:"score"`
	Tricks  int      `json:"tricks"`
}

type JoinedPayload struct {
	RoomID   string       `json:"room_id"`
	PlayerID string       `json:"player_id"`
	Team     int          `json:"team"`
	Players  []PlayerInfo `json:"players"`
}

type RosterPayload struct {
	RoomID  string       `json:"room_id"`
	Players []PlayerInfo `json:"players"`
}

type HandDealtPayload struct {
	Hand        []shared.Card `json:"hand"`
	TurnedCard  shared.Card   `json:"turned_card"`
	ManilhaRank shared.Rank   `json:"manilha_rank"`
}

type RaiseInfo struct {
	Value int `json:"value"`
	Team  int `json:"team"`
}

type RoomStatePayload struct {
	RoomID       string              `json:"room_id"`
	Phase        string              `json:"phase"`
	Turn         string              `json:"turn,omitempty"`
	Stake        int                 `json:"stake"`
	PendingRaise *RaiseInfo          `json:"pending_raise,omitempty"`
	Hand         int                 `json:"hand"`
	Trick        int                 `json:"trick"`
	TurnedCard   *shared.Card        `json:"turned_card,omitempty"`
	ManilhaRank  shared.Rank         `json:"manilha_rank,omitempty"`
	Table        []shared.PlayedCard `json:"table"`
	Players      []PlayerInfo        `json:"players"`
	Teams        []TeamInfo          `json:"teams"`
}

type CardPlayedPayload struct {
	PlayerID string      `json:"player_id"`
	Card     shared.Card `json:"card"`
}

type TrickResolvedPayload struct {
	WinnerID   string              `json:"winner_id"`
	WinnerTeam int                 `json:"winner_team"`
	Cards      []shared.PlayedCard `json:"cards"`
	Tricks     [2]int              `json:"tricks"` // running tally per team
	Trick      int                 `json:"trick"`
}

type HandResolvedPayload struct {
	WinningTeam int    `json:"winning_team"` // -1 when the hand is undecided
	Points      int    `json:"points"`
	Scores      [2]int `json:"scores"`
	Forfeit     bool   `json:"forfeit"`
}

type MatchFinishedPayload struct {
	WinningTeam int    `json:"winning_team"`
	Scores      [2]int `json:"scores"`
}

type RaiseProposedPayload struct {
	PlayerID  string `json:"player_id"`
	Team      int    `json:"team"`
	NextValue int    `json:"next_value"`
}

type RaiseAcceptedPayload struct {
	PlayerID string `json:"player_id"`
	Stake    int    `json:"stake"`
}

type RaiseRejectedPayload struct {
	PlayerID      string `json:"player_id"`
	ProposingTeam int    `json:"proposing_team"`
	Points        int    `json:"points"`
	Scores        [2]int `json:"scores"`
}

type PlayerLeftPayload struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type TurnChangedPayload struct {
	PlayerID string `json:"player_id"`
}

type MatchInterruptedPayload struct {
	Reason string `json:"reason"`
}

type ChatRelayPayload struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Text     string `json:"text"`
}

type ErrorPayload struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}

// Decode unmarshals the payload of msg into v.
func Decode(msg Message, v interface{}) error {
	if len(msg.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(msg.Payload, v)
}
