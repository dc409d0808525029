package game

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"truco-game/internal/protocol"
	"truco-game/internal/shared"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Phase represents the current state of a room.
type Phase string

const (
	Waiting      Phase = "waiting"       // Seating players, match not started
	Playing      Phase = "playing"       // Players are playing tricks
	RaisePending Phase = "raise_pending" // Play frozen until the other team answers a raise
	Resolving    Phase = "resolving"     // Outcome shown, next trick or hand is scheduled
	Finished     Phase = "finished"      // A team reached WinningScore
)

const (
	MaxPlayers    = 4
	WinningScore  = 12
	TricksToWin   = 2
	TricksPerHand = 3
)

// MessageSender defines the function signature for sending messages back to clients.
// The Hub will provide an implementation of this.
type MessageSender func(playerID string, message []byte)

// Scheduler runs fn after d and returns a function that cancels it.
type Scheduler func(d time.Duration, fn func()) (stop func() bool)

// AfterFunc is the default Scheduler, backed by time.AfterFunc.
func AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// SeatRecord identifies a player in match and hand results.
type SeatRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team int    `json:"team"`
}

// HandResult is reported to Options.OnHandEnd after every hand.
type HandResult struct {
	RoomID      string `json:"room_id"`
	MatchID     string `json:"match_id"`
	Hand        int    `json:"hand"`
	WinningTeam int    `json:"winning_team"`
	Points      int    `json:"points"`
	Forfeit     bool   `json:"forfeit"`
	Scores      [2]int `json:"scores"`
}

// MatchResult is reported to Options.OnMatchEnd when a match finishes.
type MatchResult struct {
	RoomID      string       `json:"room_id"`
	MatchID     string       `json:"match_id"`
	Players     []SeatRecord `json:"players"`
	WinningTeam int          `json:"winning_team"`
	Scores      [2]int       `json:"scores"`
	Hands       int          `json:"hands"`
	FinishedAt  time.Time    `json:"finished_at"`
}

// Options configures rooms. Zero values fall back to defaults.
// The hooks run with the room locked and must not call back into it.
type Options struct {
	HandDelay  time.Duration
	TrickDelay time.Duration
	Schedule   Scheduler
	OnHandEnd  func(HandResult)
	OnMatchEnd func(MatchResult)
	Logger     *logrus.Logger
}

func (o Options) withDefaults() Options {
	if o.Schedule == nil {
		o.Schedule = AfterFunc
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}

// Room owns the state of one match. Every exported method takes the room
// lock, so actions addressed to a room are serialized.
type Room struct {
	ID      string
	MatchID string

	phase            Phase
	players          []*shared.Player // seating order
	teams            [2]*shared.Team
	turn             string
	bid              *BidLadder
	handNo           int
	trickNo          int
	trick            *shared.Trick
	turned           *shared.Card
	manilha          shared.Rank
	anchor           string // who led the current hand
	firstTrickWinner string

	epoch        int
	stopDeferred func() bool
	closed       bool

	mu   sync.Mutex
	send MessageSender
	opts Options
	log  *logrus.Entry
}

// NewRoom creates an empty room in the waiting phase.
func NewRoom(id string, send MessageSender, opts Options) *Room {
	opts = opts.withDefaults()
	return &Room{
		ID:    id,
		phase: Waiting,
		teams: [2]*shared.Team{shared.NewTeam(0), shared.NewTeam(1)},
		bid:   NewBidLadder(),
		trick: shared.NewTrick(),
		send:  send,
		opts:  opts,
		log:   opts.Logger.WithField("room", id),
	}
}

// Join seats a new player. The team with fewer members gets the player,
// ties going to team 0, which alternates teams in join order.
func (r *Room) Join(playerID, name string) (*shared.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	switch {
	case r.closed:
		return nil, ErrRoomClosed
	case name == "":
		return nil, ErrEmptyName
	case len(r.players) >= MaxPlayers:
		return nil, ErrRoomFull
	case r.phase == Finished:
		return nil, ErrMatchFinished
	case r.phase != Waiting:
		return nil, fmt.Errorf("%w: match in progress", ErrWrongPhase)
	}
	for _, p := range r.players {
		if p.Name == name {
			return nil, ErrNameTaken
		}
	}

	team := 0
	if r.teams[1].Size() < r.teams[0].Size() {
		team = 1
	}
	player := shared.NewPlayer(playerID, name, team)
	r.players = append(r.players, player)
	r.teams[team].AddMember(player.ID)
	r.log.WithField("player", player.ID).Infof("Room %s: %s joined team %d (%d seated).", r.ID, name, team, len(r.players))

	r.sendTo(player.ID, protocol.EventJoined, protocol.JoinedPayload{
		RoomID:   r.ID,
		PlayerID: player.ID,
		Team:     team,
		Players:  r.roster(),
	})
	r.broadcastRoster()
	return player, nil
}

// Start begins a match once 2 or 4 players are seated.
func (r *Room) Start(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(playerID) == -1 {
		return ErrUnknownPlayer
	}
	if r.phase == Finished {
		return ErrMatchFinished
	}
	if r.phase != Waiting {
		return ErrWrongPhase
	}
	if n := len(r.players); n != 2 && n != MaxPlayers {
		return fmt.Errorf("%w: %d seated", ErrCannotStart, n)
	}

	r.arrangeSeats()
	for _, t := range r.teams {
		t.ResetScore()
	}
	r.MatchID = uuid.NewString()
	r.handNo = 0
	r.anchor = ""
	r.firstTrickWinner = ""
	r.log.Infof("Room %s: Match %s started with %d players.", r.ID, r.MatchID, len(r.players))

	r.startHand()
	return nil
}

// arrangeSeats interleaves the teams so that turns alternate between them.
// Teams left unbalanced by departures are reassigned by seat.
func (r *Room) arrangeSeats() {
	var byTeam [2][]*shared.Player
	for _, p := range r.players {
		byTeam[p.Team] = append(byTeam[p.Team], p)
	}
	if len(byTeam[0]) != len(byTeam[1]) {
		for i, p := range r.players {
			p.Team = i % 2
		}
	} else {
		seats := make([]*shared.Player, 0, len(r.players))
		for i := range byTeam[0] {
			seats = append(seats, byTeam[0][i], byTeam[1][i])
		}
		r.players = seats
	}
	for i, t := range r.teams {
		t.Members = []string{}
		for _, p := range r.players {
			if p.Team == i {
				t.AddMember(p.ID)
			}
		}
	}
}

// startHand shuffles, turns the manilha card and deals. Assumes lock is held.
func (r *Room) startHand() {
	r.handNo++
	r.trickNo = 0
	r.bid.Reset()
	r.trick = shared.NewTrick()
	for _, t := range r.teams {
		t.ResetTricks()
	}

	deck := shared.NewDeck()
	deck.Shuffle()
	turned, err := deck.DrawTurnedCard()
	if err != nil {
		r.interrupt(fmt.Sprintf("dealing failed: %v", err))
		return
	}
	hands, err := deck.Deal(len(r.players))
	if err != nil {
		r.interrupt(fmt.Sprintf("dealing failed: %v", err))
		return
	}
	r.turned = &turned
	r.manilha = shared.ManilhaFor(turned)
	for i, p := range r.players {
		p.Hand = hands[i]
	}

	r.anchor = r.handAnchor()
	r.firstTrickWinner = ""
	r.turn = r.anchor
	r.phase = Playing
	r.log.Infof("Room %s: Hand %d dealt. Turned %s, manilha %s, %s leads.", r.ID, r.handNo, turned, r.manilha, r.nameOf(r.turn))

	for _, p := range r.players {
		r.sendTo(p.ID, protocol.EventHandDealt, protocol.HandDealtPayload{
			Hand:        append([]shared.Card(nil), p.Hand...),
			TurnedCard:  turned,
			ManilhaRank: r.manilha,
		})
	}
	r.broadcastState()
	r.broadcastTurn()
}

// handAnchor picks who leads the hand: first seat for hand 1, then the
// previous hand's first trick winner, else the seat after the previous leader.
func (r *Room) handAnchor() string {
	if r.handNo == 1 || r.anchor == "" {
		return r.players[0].ID
	}
	if r.indexOf(r.firstTrickWinner) != -1 {
		return r.firstTrickWinner
	}
	return r.seatAfter(r.anchor)
}

// PlayCard plays a card from the acting player's hand.
func (r *Room) PlayCard(playerID string, card shared.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	player := r.player(playerID)
	if player == nil {
		return ErrUnknownPlayer
	}
	if err := r.requirePhase(Playing); err != nil {
		return err
	}
	if r.turn != playerID {
		return ErrNotYourTurn
	}
	if !player.RemoveCard(card) {
		return fmt.Errorf("%w: %s", ErrCardNotHeld, card)
	}

	r.trick.AddCard(player.ID, player.Team, card)
	r.log.WithField("player", player.ID).Debugf("Room %s: %s played %s.", r.ID, player.Name, card)
	r.broadcast(protocol.EventCardPlayed, protocol.CardPlayedPayload{PlayerID: player.ID, Card: card})

	if r.trick.Len() >= len(r.players) {
		r.completeTrick()
		return nil
	}
	r.turn = r.nextToPlay(player.ID)
	r.broadcastTurn()
	r.broadcastState()
	return nil
}

// completeTrick resolves the current trick and decides whether the hand is
// over. Assumes lock is held.
func (r *Room) completeTrick() {
	winner, err := r.trick.Resolve(r.manilha)
	if err != nil {
		r.log.Errorf("Room %s: Cannot resolve trick: %v", r.ID, err)
		return
	}
	team := r.teams[winner.Team]
	team.Tricks++
	r.trickNo++
	if r.trickNo == 1 {
		r.firstTrickWinner = winner.PlayerID
	}
	cards := r.trick.Cards
	r.trick = shared.NewTrick()
	r.turn = winner.PlayerID
	r.log.Infof("Room %s: Trick %d won by %s (team %d).", r.ID, r.trickNo, r.nameOf(winner.PlayerID), winner.Team)

	r.broadcast(protocol.EventTrickResolved, protocol.TrickResolvedPayload{
		WinnerID:   winner.PlayerID,
		WinnerTeam: winner.Team,
		Cards:      cards,
		Tricks:     [2]int{r.teams[0].Tricks, r.teams[1].Tricks},
		Trick:      r.trickNo,
	})

	switch {
	case team.Tricks >= TricksToWin:
		stake := r.bid.Current()
		team.AddScore(stake)
		r.closeHand(team.Index, stake, false)
	case r.trickNo >= TricksPerHand:
		// No majority: nobody scores.
		r.closeHand(-1, 0, false)
	default:
		r.phase = Resolving
		r.broadcastState()
		r.schedule(r.opts.TrickDelay, func() {
			r.phase = Playing
			r.broadcastTurn()
			r.broadcastState()
		})
	}
}

// closeHand reports an already scored hand, then finishes the match or
// schedules the next hand. Assumes lock is held.
func (r *Room) closeHand(winningTeam, points int, forfeit bool) {
	scores := r.scores()
	r.trick = shared.NewTrick()
	for _, p := range r.players {
		p.ClearHand()
	}
	r.log.Infof("Room %s: Hand %d resolved. Team %d +%d, score %d x %d.", r.ID, r.handNo, winningTeam, points, scores[0], scores[1])

	r.broadcast(protocol.EventHandResolved, protocol.HandResolvedPayload{
		WinningTeam: winningTeam,
		Points:      points,
		Scores:      scores,
		Forfeit:     forfeit,
	})
	if r.opts.OnHandEnd != nil {
		r.opts.OnHandEnd(HandResult{
			RoomID:      r.ID,
			MatchID:     r.MatchID,
			Hand:        r.handNo,
			WinningTeam: winningTeam,
			Points:      points,
			Forfeit:     forfeit,
			Scores:      scores,
		})
	}

	if winningTeam >= 0 && r.teams[winningTeam].Score >= WinningScore {
		r.finish(winningTeam)
		return
	}
	r.phase = Resolving
	r.turn = ""
	r.broadcastState()
	r.schedule(r.opts.HandDelay, r.startHand)
}

// finish ends the match. Assumes lock is held.
func (r *Room) finish(winningTeam int) {
	r.cancelDeferred()
	r.phase = Finished
	r.turn = ""
	scores := r.scores()
	r.log.Infof("Room %s: Match %s over. Team %d wins %d x %d.", r.ID, r.MatchID, winningTeam, scores[0], scores[1])

	r.broadcast(protocol.EventMatchFinished, protocol.MatchFinishedPayload{
		WinningTeam: winningTeam,
		Scores:      scores,
	})
	r.broadcastState()

	if r.opts.OnMatchEnd != nil {
		seats := make([]SeatRecord, len(r.players))
		for i, p := range r.players {
			seats[i] = SeatRecord{ID: p.ID, Name: p.Name, Team: p.Team}
		}
		r.opts.OnMatchEnd(MatchResult{
			RoomID:      r.ID,
			MatchID:     r.MatchID,
			Players:     seats,
			WinningTeam: winningTeam,
			Scores:      scores,
			Hands:       r.handNo,
			FinishedAt:  time.Now().UTC(),
		})
	}
}

// ProposeRaise asks the other team to raise the stake to the next rung.
func (r *Room) ProposeRaise(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	player := r.player(playerID)
	if player == nil {
		return ErrUnknownPlayer
	}
	if r.phase == RaisePending {
		return fmt.Errorf("%w: a raise is already pending", ErrIllegalRaise)
	}
	if err := r.requirePhase(Playing); err != nil {
		return err
	}
	if r.turn != playerID {
		return ErrNotYourTurn
	}
	next, err := r.bid.Propose(player.Team)
	if err != nil {
		return err
	}

	r.phase = RaisePending
	r.log.WithField("player", player.ID).Infof("Room %s: %s (team %d) asks to raise to %d.", r.ID, player.Name, player.Team, next)
	r.broadcast(protocol.EventRaiseProposed, protocol.RaiseProposedPayload{
		PlayerID:  player.ID,
		Team:      player.Team,
		NextValue: next,
	})
	r.broadcastState()
	return nil
}

// RespondRaise accepts or rejects the pending raise. Only the team that did
// not propose may answer.
func (r *Room) RespondRaise(playerID string, accept bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	player := r.player(playerID)
	if player == nil {
		return ErrUnknownPlayer
	}
	if r.phase == Finished {
		return ErrMatchFinished
	}
	if r.phase != RaisePending {
		return fmt.Errorf("%w: no raise pending", ErrIllegalResponse)
	}

	if accept {
		stake, err := r.bid.Accept(player.Team)
		if err != nil {
			return err
		}
		r.phase = Playing
		r.log.Infof("Room %s: %s accepted, hand now worth %d.", r.ID, player.Name, stake)
		r.broadcast(protocol.EventRaiseAccepted, protocol.RaiseAcceptedPayload{PlayerID: player.ID, Stake: stake})
		r.broadcastState()
		return nil
	}

	proposer, err := r.bid.Reject(player.Team)
	if err != nil {
		return err
	}
	r.teams[proposer].AddScore(1)
	r.log.Infof("Room %s: %s rejected the raise, team %d takes 1 point.", r.ID, player.Name, proposer)
	r.broadcast(protocol.EventRaiseRejected, protocol.RaiseRejectedPayload{
		PlayerID:      player.ID,
		ProposingTeam: proposer,
		Points:        1,
		Scores:        r.scores(),
	})
	r.closeHand(proposer, 1, true)
	return nil
}

// Chat relays a message to everyone in the room. It has no effect on state.
func (r *Room) Chat(playerID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	player := r.player(playerID)
	if player == nil {
		return ErrUnknownPlayer
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	r.broadcast(protocol.EventChat, protocol.ChatRelayPayload{PlayerID: player.ID, Name: player.Name, Text: text})
	return nil
}

// Leave removes a player and returns how many remain. A room left empty is
// closed; the registry is expected to drop it.
func (r *Room) Leave(playerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(playerID)
	if idx == -1 {
		return len(r.players), ErrUnknownPlayer
	}
	player := r.players[idx]
	r.players = append(r.players[:idx], r.players[idx+1:]...)
	r.teams[player.Team].RemoveMember(player.ID)
	r.trick.Withdraw(player.ID)
	r.log.WithField("player", player.ID).Infof("Room %s: %s left (%d remaining).", r.ID, player.Name, len(r.players))

	if len(r.players) == 0 {
		r.closeLocked()
		return 0, nil
	}

	r.broadcast(protocol.EventPlayerLeft, protocol.PlayerLeftPayload{PlayerID: player.ID, Name: player.Name})
	r.broadcastRoster()

	switch r.phase {
	case Playing, RaisePending, Resolving:
	default:
		r.broadcastState()
		return len(r.players), nil
	}

	if len(r.players) < 2 {
		r.interrupt("not enough players")
		return len(r.players), nil
	}
	if r.teams[0].Size() == 0 || r.teams[1].Size() == 0 {
		r.interrupt(fmt.Sprintf("team %d has no players left", player.Team))
		return len(r.players), nil
	}

	if r.phase == RaisePending {
		r.bid.Cancel()
		r.phase = Playing
	}
	if r.turn == player.ID {
		if r.phase == Playing && r.trick.Len() > 0 && r.trick.Len() >= len(r.players) {
			r.completeTrick()
			return len(r.players), nil
		}
		r.turn = r.firstToPlay()
		r.broadcastTurn()
	}
	r.broadcastState()
	return len(r.players), nil
}

// interrupt abandons the current hand and returns to waiting. Scores of the
// abandoned hand are not touched. Assumes lock is held.
func (r *Room) interrupt(reason string) {
	r.cancelDeferred()
	r.bid.Reset()
	r.trick = shared.NewTrick()
	for _, p := range r.players {
		p.ClearHand()
	}
	for _, t := range r.teams {
		t.ResetTricks()
	}
	r.turn = ""
	r.turned = nil
	r.manilha = ""
	r.phase = Waiting
	r.log.Errorf("Room %s: Match interrupted: %s.", r.ID, reason)

	r.broadcast(protocol.EventMatchInterrupted, protocol.MatchInterruptedPayload{Reason: reason})
	r.broadcastState()
}

// Close drops any pending deferred transition. The room accepts no new players afterwards.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closeLocked()
}

func (r *Room) closeLocked() {
	if r.closed {
		return
	}
	r.closed = true
	r.cancelDeferred()
	r.log.Infof("Room %s: Closed.", r.ID)
}

// schedule arranges fn to run under the room lock after d. Any earlier
// deferred transition is dropped. Assumes lock is held.
func (r *Room) schedule(d time.Duration, fn func()) {
	r.cancelDeferred()
	epoch := r.epoch
	r.stopDeferred = r.opts.Schedule(d, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed || r.epoch != epoch {
			return
		}
		r.stopDeferred = nil
		fn()
	})
}

func (r *Room) cancelDeferred() {
	r.epoch++
	if r.stopDeferred != nil {
		r.stopDeferred()
		r.stopDeferred = nil
	}
}

func (r *Room) requirePhase(want Phase) error {
	if r.phase == Finished {
		return ErrMatchFinished
	}
	if r.phase != want {
		return fmt.Errorf("%w: room is %s", ErrWrongPhase, r.phase)
	}
	return nil
}

// --- Read access ---

// Phase returns the current phase.
func (r *Room) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// PlayerCount returns the number of seated players.
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// Turn returns the ID of the player expected to act, if any.
func (r *Room) Turn() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.turn
}

// Hand returns a copy of the cards a player holds.
func (r *Room) Hand(playerID string) []shared.Card {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.player(playerID); p != nil {
		return append([]shared.Card(nil), p.Hand...)
	}
	return nil
}

// Snapshot returns the public state of the room.
func (r *Room) Snapshot() protocol.RoomStatePayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state()
}

// --- Seating helpers (assume lock is held) ---

func (r *Room) indexOf(playerID string) int {
	for i, p := range r.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

func (r *Room) player(playerID string) *shared.Player {
	if i := r.indexOf(playerID); i != -1 {
		return r.players[i]
	}
	return nil
}

func (r *Room) nameOf(playerID string) string {
	if p := r.player(playerID); p != nil {
		return p.Name
	}
	return playerID
}

// seatAfter returns the player seated after playerID, wrapping around.
func (r *Room) seatAfter(playerID string) string {
	i := r.indexOf(playerID)
	if i == -1 {
		return r.players[0].ID
	}
	return r.players[(i+1)%len(r.players)].ID
}

// nextToPlay returns the next player after playerID who has no card in the current trick.
func (r *Room) nextToPlay(playerID string) string {
	i := r.indexOf(playerID)
	for step := 1; step <= len(r.players); step++ {
		p := r.players[(i+step)%len(r.players)]
		if !r.trick.HasPlayed(p.ID) {
			return p.ID
		}
	}
	return r.players[0].ID
}

// firstToPlay returns the first seated player with no card in the current trick.
func (r *Room) firstToPlay() string {
	for _, p := range r.players {
		if !r.trick.HasPlayed(p.ID) {
			return p.ID
		}
	}
	return r.players[0].ID
}

func (r *Room) scores() [2]int {
	return [2]int{r.teams[0].Score, r.teams[1].Score}
}

// --- Messaging Helpers (assume lock is held) ---

func (r *Room) roster() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, len(r.players))
	for i, p := range r.players {
		infos[i] = protocol.PlayerInfo{ID: p.ID, Name: p.Name, Team: p.Team, Seat: i}
	}
	return infos
}

func (r *Room) state() protocol.RoomStatePayload {
	teams := make([]protocol.TeamInfo, len(r.teams))
	for i, t := range r.teams {
		teams[i] = protocol.TeamInfo{
			Index:   t.Index,
			Members: append([]string(nil), t.Members...),
			Score:   t.Score,
			Tricks:  t.Tricks,
		}
	}
	payload := protocol.RoomStatePayload{
		RoomID:      r.ID,
		Phase:       string(r.phase),
		Turn:        r.turn,
		Stake:       r.bid.Current(),
		Hand:        r.handNo,
		Trick:       r.trickNo,
		ManilhaRank: r.manilha,
		Table:       append([]shared.PlayedCard{}, r.trick.Cards...),
		Players:     r.roster(),
		Teams:       teams,
	}
	if r.turned != nil {
		turned := *r.turned
		payload.TurnedCard = &turned
	}
	if pending := r.bid.Pending(); pending != nil {
		payload.PendingRaise = &protocol.RaiseInfo{Value: pending.NextValue, Team: pending.ProposingTeam}
	}
	return payload
}

func (r *Room) broadcastState() {
	r.broadcast(protocol.EventRoomState, r.state())
}

func (r *Room) broadcastRoster() {
	r.broadcast(protocol.EventRosterUpdated, protocol.RosterPayload{RoomID: r.ID, Players: r.roster()})
}

func (r *Room) broadcastTurn() {
	if r.turn == "" {
		return
	}
	r.broadcast(protocol.EventTurnChanged, protocol.TurnChangedPayload{PlayerID: r.turn})
}

// broadcast sends a message to all players in the room.
func (r *Room) broadcast(msgType string, payload interface{}) {
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		r.log.Errorf("Room %s: Error creating %s message: %v", r.ID, msgType, err)
		return
	}
	for _, p := range r.players {
		r.deliver(p.ID, msg)
	}
}

// sendTo sends a message to a single player.
func (r *Room) sendTo(playerID, msgType string, payload interface{}) {
	msg, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		r.log.Errorf("Room %s: Error creating %s message for %s: %v", r.ID, msgType, playerID, err)
		return
	}
	r.deliver(playerID, msg)
}

func (r *Room) deliver(playerID string, msg []byte) {
	if r.send == nil {
		r.log.Warnf("Room %s: sendMessage callback is nil, dropping message for %s.", r.ID, playerID)
		return
	}
	r.send(playerID, msg)
}
