package mux

import (
	"blackjack-server/pkg/playable"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

type wsResponse struct {
	Key     string          `json:"key"`
	Value   string          `json:"value"`
	Data    json.RawMessage `json:"data"`
	Context string          `json:"context"`
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/game/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}

	return conn
}

func readWS(t *testing.T, conn *websocket.Conn) wsResponse {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 5))
	var res wsResponse
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatal(err)
	}

	return res
}

func TestGameWS(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(newTestMux(t, 5))
	defer ts.Close()

	conn := dialWS(t, ts)
	defer conn.Close()

	// the current state is sent on connect
	res := readWS(t, conn)
	a.Equal("game", res.Key)
	a.Equal("blackjack", res.Value)

	var view testView
	a.NoError(json.Unmarshal(res.Data, &view))
	a.Equal("idle", view.State)

	a.NoError(conn.WriteJSON(playable.PayloadIn{Action: "hit", Context: "1"}))
	res = readWS(t, conn)
	a.Equal("error", res.Key)
	a.Equal("cannot hit from state: idle", res.Value)
	a.Equal("1", res.Context)

	a.NoError(conn.WriteJSON(playable.PayloadIn{
		Action:         "add-funds",
		AdditionalData: playable.AdditionalData{"amount": 300},
		Context:        "2",
	}))

	res = readWS(t, conn)
	a.Equal("game", res.Key)
	a.NoError(json.Unmarshal(res.Data, &view))
	a.Equal(1300, view.Balance)

	res = readWS(t, conn)
	a.Equal("status", res.Key)
	a.Equal("OK", res.Value)
	a.Equal("2", res.Context)
}

func TestGameWS_broadcastsHTTPActions(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(newTestMux(t, 5))
	defer ts.Close()

	conn := dialWS(t, ts)
	defer conn.Close()
	readWS(t, conn)

	var view testView
	assertPost(t, ts, "/game/deal", map[string]int{"bet": 25}, &view, 200)

	res := readWS(t, conn)
	a.Equal("game", res.Key)

	var pushed testView
	a.NoError(json.Unmarshal(res.Data, &pushed))
	a.Equal(view.RoundID, pushed.RoundID)
	a.Equal(25, pushed.CurrentBet)
}
