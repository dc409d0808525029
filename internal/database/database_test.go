package database

import (
	"database/sql"
	"testing"
	"time"

	"truco-game/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := New("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func match(id string, finished time.Time, names ...string) game.MatchResult {
	m := game.MatchResult{
		RoomID:      "ROOM1",
		MatchID:     id,
		WinningTeam: 1,
		Scores:      [2]int{7, 12},
		Hands:       9,
		FinishedAt:  finished,
	}
	for i, n := range names {
		m.Players = append(m.Players, game.SeatRecord{ID: n + "-id", Name: n, Team: i % 2})
	}
	return m
}

func TestFromMatch(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := FromMatch(match("m1", at, "Ana", "Bia"))

	assert.Equal(t, "m1", r.ID)
	assert.Equal(t, "ROOM1", r.RoomID)
	assert.Equal(t, "2026-03-01T12:00:00Z", r.CreatedAt)
	assert.Equal(t, "Ana", r.Player1)
	assert.Equal(t, "Bia", r.Player2)
	assert.Empty(t, r.Player3)
	assert.Equal(t, 1, r.Player2Team)
	assert.Equal(t, 12, r.Team2Score)
	assert.Equal(t, 1, r.WinningTeam)
}

func TestRecordAndQuery(t *testing.T) {
	s := newTestService(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordMatch(match("m1", base, "Ana", "Bia")))
	require.NoError(t, s.RecordMatch(match("m2", base.Add(time.Hour), "Ana", "Caio", "Duda", "Edu")))

	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "m1", all[0].ID)

	byID, err := s.GetByID("m2")
	require.NoError(t, err)
	assert.Equal(t, "Edu", byID.Player4)
	assert.Equal(t, 1, byID.Player4Team)

	ana, err := s.GetByPlayer("Ana")
	require.NoError(t, err)
	assert.Len(t, ana, 2)

	duda, err := s.GetByPlayer("Duda")
	require.NoError(t, err)
	require.Len(t, duda, 1)
	assert.Equal(t, "m2", duda[0].ID)

	_, err = s.GetByPlayer("Nobody")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDuplicateMatchRejected(t *testing.T) {
	s := newTestService(t)
	m := match("dup", time.Now(), "Ana", "Bia")
	require.NoError(t, s.RecordMatch(m))
	assert.Error(t, s.RecordMatch(m))
}

func TestRebind(t *testing.T) {
	s := &Service{driver: "pgx"}
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 OR b = $2", s.rebind("SELECT * FROM t WHERE a = ? OR b = ?"))

	s.driver = "sqlite3"
	assert.Equal(t, "a = ?", s.rebind("a = ?"))
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := New("mysql", "whatever")
	assert.Error(t, err)
}
