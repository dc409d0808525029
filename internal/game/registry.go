package game

import (
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"truco-game/internal/protocol"
	"truco-game/internal/shared"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const roomCodeLength = 5 // Length of generated room codes

// Registry maps room identifiers to rooms. Rooms are created on first join
// and destroyed as soon as their last player leaves.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Room
	send  MessageSender
	opts  Options
	log   *logrus.Logger
}

// NewRegistry creates an empty registry. Every room it creates shares send and opts.
func NewRegistry(send MessageSender, opts Options) *Registry {
	opts = opts.withDefaults()
	return &Registry{
		rooms: make(map[string]*Room),
		send:  send,
		opts:  opts,
		log:   opts.Logger,
	}
}

// NormalizeRoomID trims and upper-cases a client supplied room code.
func NormalizeRoomID(roomID string) string {
	return strings.ToUpper(strings.TrimSpace(roomID))
}

// generateRoomCode creates an unused alphanumeric room code. Assumes lock is held.
func (g *Registry) generateRoomCode() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for {
		var sb strings.Builder
		for i := 0; i < roomCodeLength; i++ {
			sb.WriteByte(letters[rand.IntN(len(letters))])
		}
		code := sb.String()
		if _, exists := g.rooms[code]; !exists {
			return code
		}
		g.log.Debugf("Generated room code %s collided, retrying...", code)
	}
}

// Join seats a player in the addressed room, creating it when needed. An
// empty roomID creates a room with a fresh code; an empty playerID gets a
// fresh identity.
func (g *Registry) Join(roomID, playerID, name string) (*Room, *shared.Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	roomID = NormalizeRoomID(roomID)
	if roomID == "" {
		roomID = g.generateRoomCode()
	}
	if playerID == "" {
		playerID = uuid.NewString()
	}

	room, exists := g.rooms[roomID]
	if !exists {
		room = NewRoom(roomID, g.send, g.opts)
	}
	player, err := room.Join(playerID, name)
	if err != nil {
		if !exists {
			room.Close()
		}
		return nil, nil, err
	}
	if !exists {
		g.rooms[roomID] = room
		g.log.WithField("room", roomID).Infof("Room %s created (%d active).", roomID, len(g.rooms))
	}
	return room, player, nil
}

// Leave removes a player from a room and destroys the room if it is now empty.
func (g *Registry) Leave(roomID, playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	roomID = NormalizeRoomID(roomID)
	room, exists := g.rooms[roomID]
	if !exists {
		return ErrRoomClosed
	}
	remaining, err := room.Leave(playerID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		room.Close()
		delete(g.rooms, roomID)
		g.log.WithField("room", roomID).Infof("Room %s destroyed (%d active).", roomID, len(g.rooms))
	}
	return nil
}

// Get returns the room for roomID.
func (g *Registry) Get(roomID string) (*Room, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms[NormalizeRoomID(roomID)]
	return room, ok
}

// Len returns the number of live rooms.
func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rooms)
}

// Snapshots returns the public state of every room, ordered by room ID.
func (g *Registry) Snapshots() []protocol.RoomStatePayload {
	g.mu.Lock()
	rooms := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		rooms = append(rooms, room)
	}
	g.mu.Unlock()

	snapshots := make([]protocol.RoomStatePayload, 0, len(rooms))
	for _, room := range rooms {
		snapshots = append(snapshots, room.Snapshot())
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].RoomID < snapshots[j].RoomID })
	return snapshots
}
