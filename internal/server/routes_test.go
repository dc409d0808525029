package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"truco-game/internal/database"
	"truco-game/internal/game"
	"truco-game/internal/protocol"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	results []database.GameResult
	err     error
}

func (f *fakeStore) GetAll() ([]database.GameResult, error) {
	return f.results, f.err
}

func (f *fakeStore) GetByPlayer(name string) ([]database.GameResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []database.GameResult
	for _, r := range f.results {
		if r.Player1 == name || r.Player2 == name || r.Player3 == name || r.Player4 == name {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, sql.ErrNoRows
	}
	return out, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestHub() *Hub {
	return NewHub(game.Options{Logger: quietLogger()})
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	h.ServeHTTP(w, req)
	return w
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHealthz(t *testing.T) {
	hub := newTestHub()
	_, _, err := hub.Registry().Join("ABC", "p1", "Ana")
	require.NoError(t, err)

	w := get(t, NewRouter(hub, nil, ""), "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 1, body["rooms"])
}

func TestListRooms(t *testing.T) {
	hub := newTestHub()
	for _, id := range []string{"ROOMB", "ROOMA"} {
		_, _, err := hub.Registry().Join(id, id+"-p", "Ana")
		require.NoError(t, err)
	}

	w := get(t, NewRouter(hub, nil, ""), "/api/rooms")
	require.Equal(t, http.StatusOK, w.Code)

	var rooms []protocol.RoomStatePayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 2)
	assert.Equal(t, "ROOMA", rooms[0].RoomID)
	assert.Equal(t, "waiting", rooms[0].Phase)
	assert.Len(t, rooms[0].Players, 1)
}

func TestResults(t *testing.T) {
	store := &fakeStore{results: []database.GameResult{
		{ID: "m1", Player1: "Ana", Player2: "Bia"},
		{ID: "m2", Player1: "Caio", Player2: "Ana"},
	}}
	r := NewRouter(newTestHub(), store, "")

	w := get(t, r, "/api/results")
	require.Equal(t, http.StatusOK, w.Code)
	var all []database.GameResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	w = get(t, r, "/api/results/player/Bia")
	require.Equal(t, http.StatusOK, w.Code)
	var byPlayer []database.GameResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &byPlayer))
	require.Len(t, byPlayer, 1)
	assert.Equal(t, "m1", byPlayer[0].ID)

	w = get(t, r, "/api/results/player/Nobody")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResultsEmptyIsArray(t *testing.T) {
	w := get(t, NewRouter(newTestHub(), &fakeStore{}, ""), "/api/results")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestResultsErrors(t *testing.T) {
	w := get(t, NewRouter(newTestHub(), nil, ""), "/api/results")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = get(t, NewRouter(newTestHub(), &fakeStore{err: errors.New("boom")}, ""), "/api/results")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
