package game

import (
	"errors"

	"truco-game/internal/shared"
)

// Protocol violations. None of them changes room state.
var (
	ErrNotYourTurn     = errors.New("not your turn")
	ErrCardNotHeld     = errors.New("card not in your hand")
	ErrIllegalRaise    = errors.New("raise not allowed")
	ErrIllegalResponse = errors.New("response not allowed")
	ErrRoomFull        = errors.New("room is full")
	ErrWrongPhase      = errors.New("action not allowed in the current phase")
	ErrCannotStart     = errors.New("match needs 2 or 4 seated players")
	ErrUnknownPlayer   = errors.New("player is not seated in this room")
	ErrMatchFinished   = errors.New("match is already over")
	ErrNameTaken       = errors.New("name already taken in this room")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrRoomClosed      = errors.New("room is closed")
)

// ErrorCode maps an error to the code sent to the offending client.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotYourTurn):
		return "NotYourTurn"
	case errors.Is(err, ErrCardNotHeld):
		return "CardNotHeld"
	case errors.Is(err, ErrIllegalRaise):
		return "IllegalRaise"
	case errors.Is(err, ErrIllegalResponse):
		return "IllegalResponse"
	case errors.Is(err, ErrRoomFull):
		return "RoomFull"
	case errors.Is(err, ErrWrongPhase):
		return "WrongPhase"
	case errors.Is(err, ErrCannotStart):
		return "CannotStart"
	case errors.Is(err, ErrUnknownPlayer):
		return "UnknownPlayer"
	case errors.Is(err, ErrMatchFinished):
		return "MatchFinished"
	case errors.Is(err, ErrNameTaken):
		return "NameTaken"
	case errors.Is(err, ErrEmptyName):
		return "EmptyName"
	case errors.Is(err, ErrRoomClosed):
		return "RoomClosed"
	case errors.Is(err, shared.ErrUnknownCard):
		return "UnknownCard"
	case errors.Is(err, shared.ErrInsufficientCards):
		return "InsufficientCards"
	default:
		return "Internal"
	}
}
