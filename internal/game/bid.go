package game

import "fmt"

// stakeLadder holds the values a hand can be worth.
var stakeLadder = []int{1, 3, 6, 9, 12}

// MaxStake is the top of the ladder.
const MaxStake = 12

// PendingRaise is a raise proposal waiting for the other team's answer.
type PendingRaise struct {
	NextValue     int
	ProposingTeam int
}

// BidLadder tracks the stake of the current hand and the raise in flight.
// Turn and phase checks belong to the Room; the ladder only guards its own
// transitions.
type BidLadder struct {
	current int
	pending *PendingRaise
}

// NewBidLadder returns a ladder at stake 1 with nothing pending.
func NewBidLadder() *BidLadder {
	return &BidLadder{current: stakeLadder[0]}
}

// Reset puts the ladder back to stake 1 for a new hand.
func (b *BidLadder) Reset() {
	b.current = stakeLadder[0]
	b.pending = nil
}

// Current returns the stake the hand is worth.
func (b *BidLadder) Current() int {
	return b.current
}

// Pending returns the raise in flight, or nil.
func (b *BidLadder) Pending() *PendingRaise {
	if b.pending == nil {
		return nil
	}
	p := *b.pending
	return &p
}

// nextRung returns the first ladder value strictly above v.
func nextRung(v int) (int, bool) {
	for _, rung := range stakeLadder {
		if rung > v {
			return rung, true
		}
	}
	return 0, false
}

// Propose records a raise by team and returns the proposed value.
func (b *BidLadder) Propose(team int) (int, error) {
	if b.pending != nil {
		return 0, fmt.Errorf("%w: a raise to %d is already pending", ErrIllegalRaise, b.pending.NextValue)
	}
	next, ok := nextRung(b.current)
	if !ok {
		return 0, fmt.Errorf("%w: stake is already %d", ErrIllegalRaise, b.current)
	}
	b.pending = &PendingRaise{NextValue: next, ProposingTeam: team}
	return next, nil
}

func (b *BidLadder) checkResponder(team int) error {
	if b.pending == nil {
		return fmt.Errorf("%w: no raise pending", ErrIllegalResponse)
	}
	if team == b.pending.ProposingTeam {
		return fmt.Errorf("%w: team %d proposed this raise", ErrIllegalResponse, team)
	}
	return nil
}

// Accept raises the stake to the pending value and returns the new stake.
func (b *BidLadder) Accept(team int) (int, error) {
	if err := b.checkResponder(team); err != nil {
		return 0, err
	}
	b.current = b.pending.NextValue
	b.pending = nil
	return b.current, nil
}

// Reject clears the pending raise and returns the proposing team, which is
// owed one point. The stake is left untouched.
func (b *BidLadder) Reject(team int) (int, error) {
	if err := b.checkResponder(team); err != nil {
		return 0, err
	}
	proposer := b.pending.ProposingTeam
	b.pending = nil
	return proposer, nil
}

// Cancel drops a pending raise without effect.
func (b *BidLadder) Cancel() {
	b.pending = nil
}
