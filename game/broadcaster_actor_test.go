// File: game/broadcaster_actor_test.go
package game

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

// dialTestSocket spins up a websocket endpoint and returns both ends of one
// connection: the server side to register with the broadcaster, the client
// side to read broadcasts from.
func dialTestSocket(t *testing.T) (serverConn, clientConn *websocket.Conn) {
	t.Helper()

	accepted := make(chan *websocket.Conn, 1)
	hold := make(chan struct{})
	srv := httptest.NewServer(websocket.Handler(func(ws *websocket.Conn) {
		accepted <- ws
		<-hold // keep the server side open for the test's lifetime
	}))
	t.Cleanup(func() {
		close(hold)
		srv.Close()
	})

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, err := websocket.Dial(wsURL, "", "http://localhost/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	select {
	case server := <-accepted:
		return server, client
	case <-time.After(time.Second):
		t.Fatal("websocket was never accepted")
		return nil, nil
	}
}

func TestBroadcasterActor_FansOutSnapshots(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(askTestTimeout)

	pid := engine.Spawn(bollywood.NewProps(NewBroadcasterProducer()))
	require.NotNil(t, pid)

	serverConn, clientConn := dialTestSocket(t)
	engine.Send(pid, AddClient{Conn: serverConn}, nil)

	sent := Snapshot{MessageType: "snapshot", Tick: 42, Phase: "PLAYING", Server: "left"}
	payload, err := json.Marshal(sent)
	require.NoError(t, err)
	engine.Send(pid, BroadcastSnapshotCommand{Payload: payload}, nil)

	_ = clientConn.SetReadDeadline(time.Now().Add(time.Second))
	var received Snapshot
	require.NoError(t, websocket.JSON.Receive(clientConn, &received))

	assert.Equal(t, sent.MessageType, received.MessageType)
	assert.Equal(t, sent.Tick, received.Tick)
	assert.Equal(t, sent.Phase, received.Phase)
}

func TestBroadcasterActor_RemovedClientStopsReceiving(t *testing.T) {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(askTestTimeout)

	pid := engine.Spawn(bollywood.NewProps(NewBroadcasterProducer()))
	require.NotNil(t, pid)

	serverConn, clientConn := dialTestSocket(t)
	engine.Send(pid, AddClient{Conn: serverConn}, nil)
	engine.Send(pid, RemoveClient{Conn: serverConn}, nil)
	engine.Send(pid, BroadcastSnapshotCommand{Payload: []byte(`{"messageType":"snapshot"}`)}, nil)

	_ = clientConn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	var received Snapshot
	err := websocket.JSON.Receive(clientConn, &received)
	assert.Error(t, err, "removed client still received a broadcast")
}
