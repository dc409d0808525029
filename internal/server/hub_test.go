package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"truco-game/internal/protocol"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := newTestHub()
	go hub.Run()
	srv := httptest.NewServer(NewRouter(hub, nil, ""))
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msgType string, payload interface{}) {
	t.Helper()
	msg, err := protocol.NewMessage(msgType, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, msg))
}

// expect reads until a message of msgType arrives and decodes its payload into v.
func expect(t *testing.T, conn *websocket.Conn, msgType string, v interface{}) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err, "waiting for %s", msgType)
		var msg protocol.Message
		require.NoError(t, json.Unmarshal(data, &msg))
		if msg.Type != msgType {
			continue
		}
		if v != nil {
			require.NoError(t, protocol.Decode(msg, v))
		}
		return
	}
}

func TestJoinAndStartOverWebsocket(t *testing.T) {
	hub, url := startServer(t)
	ana, bia := dial(t, url), dial(t, url)

	send(t, ana, protocol.ActionJoin, protocol.JoinPayload{Name: "Ana", RoomID: "mesa1"})
	var anaJoined protocol.JoinedPayload
	expect(t, ana, protocol.EventJoined, &anaJoined)
	assert.Equal(t, "MESA1", anaJoined.RoomID)
	assert.NotEmpty(t, anaJoined.PlayerID)
	assert.Equal(t, 0, anaJoined.Team)

	send(t, bia, protocol.ActionJoin, protocol.JoinPayload{Name: "Bia", RoomID: "MESA1"})
	var biaJoined protocol.JoinedPayload
	expect(t, bia, protocol.EventJoined, &biaJoined)
	assert.Equal(t, 1, biaJoined.Team)
	assert.Len(t, biaJoined.Players, 2)

	send(t, ana, protocol.ActionStart, nil)
	for _, conn := range []*websocket.Conn{ana, bia} {
		var dealt protocol.HandDealtPayload
		expect(t, conn, protocol.EventHandDealt, &dealt)
		assert.Len(t, dealt.Hand, 3)
		assert.NotEmpty(t, dealt.ManilhaRank)
	}

	var turn protocol.TurnChangedPayload
	expect(t, bia, protocol.EventTurnChanged, &turn)
	assert.Equal(t, anaJoined.PlayerID, turn.PlayerID)

	room, ok := hub.Registry().Get("MESA1")
	require.True(t, ok)
	assert.Equal(t, 2, room.PlayerCount())
}

func TestActionErrorsGoToSender(t *testing.T) {
	_, url := startServer(t)
	conn := dial(t, url)

	var e protocol.ErrorPayload
	send(t, conn, protocol.ActionPlayCard, protocol.PlayCardPayload{Rank: "3", Suit: "spades"})
	expect(t, conn, protocol.EventError, &e)
	assert.Equal(t, "NotSeated", e.Code)

	send(t, conn, protocol.ActionJoin, protocol.JoinPayload{Name: "  ", RoomID: "X"})
	expect(t, conn, protocol.EventError, &e)
	assert.Equal(t, "EmptyName", e.Code)

	send(t, conn, "shuffle", nil)
	expect(t, conn, protocol.EventError, &e)
	assert.Equal(t, "UnknownMessage", e.Code)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	expect(t, conn, protocol.EventError, &e)
	assert.Equal(t, "BadMessage", e.Code)

	send(t, conn, protocol.ActionPing, nil)
	expect(t, conn, protocol.EventPong, nil)
}

func TestNotYourTurnOverWebsocket(t *testing.T) {
	_, url := startServer(t)
	ana, bia := dial(t, url), dial(t, url)

	send(t, ana, protocol.ActionJoin, protocol.JoinPayload{Name: "Ana", RoomID: "T"})
	expect(t, ana, protocol.EventJoined, nil)
	send(t, bia, protocol.ActionJoin, protocol.JoinPayload{Name: "Bia", RoomID: "T"})
	expect(t, bia, protocol.EventJoined, nil)
	send(t, ana, protocol.ActionStart, nil)

	var dealt protocol.HandDealtPayload
	expect(t, bia, protocol.EventHandDealt, &dealt)
	card := dealt.Hand[0]
	send(t, bia, protocol.ActionPlayCard, protocol.PlayCardPayload{Rank: card.Rank, Suit: card.Suit})

	var e protocol.ErrorPayload
	expect(t, bia, protocol.EventError, &e)
	assert.Equal(t, "NotYourTurn", e.Code)
}

func TestDisconnectLeavesRoom(t *testing.T) {
	hub, url := startServer(t)
	ana := dial(t, url)
	send(t, ana, protocol.ActionJoin, protocol.JoinPayload{Name: "Ana", RoomID: "BYE"})
	expect(t, ana, protocol.EventJoined, nil)
	require.Equal(t, 1, hub.Registry().Len())

	ana.Close()
	assert.Eventually(t, func() bool { return hub.Registry().Len() == 0 }, 5*time.Second, 10*time.Millisecond)
}
