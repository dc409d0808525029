package server

import (
	"sync"

	"truco-game/internal/game"
	"truco-game/internal/protocol"
	"truco-game/internal/shared"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Hub tracks live connections and maps player identities to them. Room state
// lives in the registry; the hub only translates messages into room actions.
type Hub struct {
	clients    map[*Client]bool
	players    map[string]*Client // player identity -> connection
	registry   *game.Registry
	register   chan *Client
	unregister chan *Client
	clientMu   sync.RWMutex
	log        *logrus.Logger
}

// NewHub creates a Hub and the room registry it dispatches to.
func NewHub(opts game.Options) *Hub {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	h := &Hub{
		clients:    make(map[*Client]bool),
		players:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        opts.Logger,
	}
	h.registry = game.NewRegistry(h.sendMessageToPlayer, opts)
	return h
}

// Registry exposes the room registry, e.g. for the HTTP API.
func (h *Hub) Registry() *game.Registry {
	return h.registry
}

// Run starts the Hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()
			h.log.Debugf("Client %s connected.", client.conn.RemoteAddr())

		case client := <-h.unregister:
			h.clientMu.Lock()
			_, exists := h.clients[client]
			delete(h.clients, client)
			h.clientMu.Unlock()
			if !exists {
				continue
			}
			h.leaveRoom(client)
			client.close()
			h.log.Debugf("Client %s disconnected.", client.conn.RemoteAddr())
		}
	}
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case protocol.ActionPing:
		h.sendTo(client, protocol.EventPong, nil)
	case protocol.ActionJoin:
		h.handleJoin(client, msg)
	case protocol.ActionLeave:
		h.leaveRoom(client)
	case protocol.ActionStart, protocol.ActionPlayCard, protocol.ActionProposeRaise,
		protocol.ActionRespondRaise, protocol.ActionChat:
		h.handleRoomAction(client, msg)
	default:
		h.log.Debugf("Received unknown message type '%s'.", msg.Type)
		h.sendError(client, "UnknownMessage", "Unknown message type.")
	}
}

// handleJoin issues a player identity and seats it in the addressed room.
func (h *Hub) handleJoin(client *Client, msg protocol.Message) {
	if playerID, _ := client.seat(); playerID != "" {
		h.sendError(client, "AlreadySeated", "Already in a room.")
		return
	}
	var payload protocol.JoinPayload
	if err := protocol.Decode(msg, &payload); err != nil {
		h.sendError(client, "BadMessage", "Invalid join message format.")
		return
	}

	// Bind before joining so the room's first messages reach the client.
	playerID := uuid.NewString()
	client.bind(playerID, "", payload.Name)
	h.clientMu.Lock()
	h.players[playerID] = client
	h.clientMu.Unlock()

	room, player, err := h.registry.Join(payload.RoomID, playerID, payload.Name)
	if err != nil {
		h.clientMu.Lock()
		delete(h.players, playerID)
		h.clientMu.Unlock()
		client.unbind()
		h.log.WithField("room", payload.RoomID).Debugf("Join refused for '%s': %v", payload.Name, err)
		h.sendError(client, game.ErrorCode(err), err.Error())
		return
	}
	client.bind(player.ID, room.ID, player.Name)
}

// leaveRoom removes the client's player from its room, if any.
func (h *Hub) leaveRoom(client *Client) {
	playerID, roomID := client.seat()
	if playerID == "" {
		return
	}
	h.clientMu.Lock()
	delete(h.players, playerID)
	h.clientMu.Unlock()
	client.unbind()

	if err := h.registry.Leave(roomID, playerID); err != nil {
		h.log.WithFields(logrus.Fields{"room": roomID, "player": playerID}).Debugf("Leave failed: %v", err)
	}
}

// handleRoomAction forwards an in-room action to the client's room.
func (h *Hub) handleRoomAction(client *Client, msg protocol.Message) {
	playerID, roomID := client.seat()
	if playerID == "" || roomID == "" {
		h.sendError(client, "NotSeated", "You are not in a room.")
		return
	}
	room, ok := h.registry.Get(roomID)
	if !ok {
		h.sendError(client, game.ErrorCode(game.ErrRoomClosed), game.ErrRoomClosed.Error())
		return
	}

	var err error
	switch msg.Type {
	case protocol.ActionStart:
		err = room.Start(playerID)
	case protocol.ActionPlayCard:
		var payload protocol.PlayCardPayload
		if err = protocol.Decode(msg, &payload); err != nil {
			h.sendError(client, "BadMessage", "Invalid play_card message.")
			return
		}
		var card shared.Card
		if card, err = shared.ParseCard(payload.Rank, payload.Suit); err == nil {
			err = room.PlayCard(playerID, card)
		}
	case protocol.ActionProposeRaise:
		err = room.ProposeRaise(playerID)
	case protocol.ActionRespondRaise:
		var payload protocol.RespondRaisePayload
		if err = protocol.Decode(msg, &payload); err != nil {
			h.sendError(client, "BadMessage", "Invalid respond_raise message.")
			return
		}
		err = room.RespondRaise(playerID, payload.Accept)
	case protocol.ActionChat:
		var payload protocol.ChatPayload
		if err = protocol.Decode(msg, &payload); err != nil {
			h.sendError(client, "BadMessage", "Invalid chat message.")
			return
		}
		err = room.Chat(playerID, payload.Text)
	}

	if err != nil {
		h.log.WithFields(logrus.Fields{"room": roomID, "player": playerID}).Debugf("Rejected %s: %v", msg.Type, err)
		h.sendError(client, game.ErrorCode(err), err.Error())
	}
}

// sendMessageToPlayer allows the rooms to send messages back via the hub.
// This is passed as a callback to the registry.
func (h *Hub) sendMessageToPlayer(playerID string, message []byte) {
	h.clientMu.RLock()
	client := h.players[playerID]
	h.clientMu.RUnlock()

	if client == nil {
		h.log.Debugf("Could not find player %s to send message (already disconnected?).", playerID)
		return
	}
	if !client.deliver(message) {
		h.log.Warnf("Failed to send message to player %s (channel full or closed), initiating cleanup.", playerID)
		// Use a goroutine to avoid blocking the room that is sending
		go func() {
			h.clientMu.RLock()
			_, stillConnected := h.clients[client]
			h.clientMu.RUnlock()
			if stillConnected {
				h.unregister <- client
			}
		}()
	}
}

func (h *Hub) sendTo(client *Client, msgType string, payload interface{}) {
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		h.log.Errorf("Error creating %s message: %v", msgType, err)
		return
	}
	client.deliver(msg)
}

// sendError sends a targeted error to the offending client only.
func (h *Hub) sendError(client *Client, code, message string) {
	h.sendTo(client, protocol.EventError, protocol.ErrorPayload{Code: code, Message: message})
}
