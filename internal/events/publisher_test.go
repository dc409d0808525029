package events

import (
	"testing"

	"truco-game/internal/game"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDisabled(t *testing.T) {
	p, err := Connect("", logrus.New())
	require.NoError(t, err)
	assert.Nil(t, p)

	// A disabled publisher swallows events.
	assert.NotPanics(t, func() {
		p.PublishHand(game.HandResult{RoomID: "R"})
		p.PublishMatch(game.MatchResult{RoomID: "R"})
		p.Close()
	})
}

func TestConnectUnreachable(t *testing.T) {
	_, err := Connect("nats://127.0.0.1:1", logrus.New())
	assert.Error(t, err)
}
