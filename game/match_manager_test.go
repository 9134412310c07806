// File: game/match_manager_test.go
package game

import (
	"testing"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func spawnTestManager(t *testing.T) (*bollywood.Engine, *bollywood.PID) {
	t.Helper()
	engine := bollywood.NewEngine()
	t.Cleanup(func() { engine.Shutdown(askTestTimeout) })

	pid := engine.Spawn(bollywood.NewProps(NewMatchManagerProducer(engine, testConfig(), nil)))
	require.NotNil(t, pid)
	return engine, pid
}

func askMatchList(t *testing.T, engine *bollywood.Engine, managerPID *bollywood.PID) map[string]int {
	t.Helper()
	reply, err := engine.Ask(managerPID, GetMatchListRequest{}, askTestTimeout)
	require.NoError(t, err, "match list ask failed")
	list, ok := reply.(MatchListResponse)
	require.True(t, ok, "unexpected reply type %T", reply)
	return list.Matches
}

func TestMatchManager_FindMatchSpawnsFreshMatch(t *testing.T) {
	engine, managerPID := spawnTestManager(t)

	recorder := &recorderActor{received: make(chan interface{}, 8)}
	replyPID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return recorder }))
	require.NotNil(t, replyPID)

	engine.Send(managerPID, FindMatchRequest{ReplyTo: replyPID}, replyPID)

	var assigned *bollywood.PID
	select {
	case msg := <-recorder.received:
		resp, ok := msg.(AssignMatchResponse)
		require.True(t, ok, "expected AssignMatchResponse, got %T", msg)
		require.NotNil(t, resp.MatchPID, "manager replied without a match")
		assigned = resp.MatchPID
	case <-time.After(askTestTimeout):
		t.Fatal("manager never replied to FindMatchRequest")
	}

	matches := askMatchList(t, engine, managerPID)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[assigned.String()], "no client has connected yet")

	// The assigned match must answer snapshot queries.
	snapshot := askSnapshot(t, engine, assigned)
	assert.Equal(t, "MENU", snapshot.Phase)
}

func TestMatchManager_EachConnectionGetsItsOwnMatch(t *testing.T) {
	engine, managerPID := spawnTestManager(t)

	recorder := &recorderActor{received: make(chan interface{}, 8)}
	replyPID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return recorder }))
	require.NotNil(t, replyPID)

	engine.Send(managerPID, FindMatchRequest{ReplyTo: replyPID}, replyPID)
	engine.Send(managerPID, FindMatchRequest{ReplyTo: replyPID}, replyPID)

	pids := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case msg := <-recorder.received:
			resp, ok := msg.(AssignMatchResponse)
			require.True(t, ok)
			require.NotNil(t, resp.MatchPID)
			pids[resp.MatchPID.String()] = true
		case <-time.After(askTestTimeout):
			t.Fatal("manager never replied")
		}
	}
	assert.Len(t, pids, 2, "both connections were assigned the same match")
	assert.Len(t, askMatchList(t, engine, managerPID), 2)
}

func TestMatchManager_TracksClientCounts(t *testing.T) {
	engine, managerPID := spawnTestManager(t)

	recorder := &recorderActor{received: make(chan interface{}, 8)}
	replyPID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return recorder }))
	require.NotNil(t, replyPID)

	engine.Send(managerPID, FindMatchRequest{ReplyTo: replyPID}, replyPID)

	var assigned *bollywood.PID
	select {
	case msg := <-recorder.received:
		resp, ok := msg.(AssignMatchResponse)
		require.True(t, ok)
		require.NotNil(t, resp.MatchPID)
		assigned = resp.MatchPID
	case <-time.After(askTestTimeout):
		t.Fatal("manager never replied")
	}

	countIs := func(want int) func() bool {
		return func() bool {
			reply, err := engine.Ask(managerPID, GetMatchListRequest{}, askTestTimeout)
			if err != nil {
				return false
			}
			list, ok := reply.(MatchListResponse)
			return ok && list.Matches[assigned.String()] == want
		}
	}

	conn1, conn2 := &websocket.Conn{}, &websocket.Conn{}
	engine.Send(assigned, PlayerConnectRequest{WsConn: conn1}, nil)
	engine.Send(assigned, PlayerConnectRequest{WsConn: conn2}, nil)
	assert.Eventually(t, countIs(2), askTestTimeout, 10*time.Millisecond, "connects never reached the listing")

	engine.Send(assigned, PlayerDisconnect{WsConn: conn2}, nil)
	assert.Eventually(t, countIs(1), askTestTimeout, 10*time.Millisecond, "disconnect never reached the listing")
}

func TestMatchManager_EmptyMatchIsReaped(t *testing.T) {
	engine, managerPID := spawnTestManager(t)

	recorder := &recorderActor{received: make(chan interface{}, 8)}
	replyPID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return recorder }))
	require.NotNil(t, replyPID)

	engine.Send(managerPID, FindMatchRequest{ReplyTo: replyPID}, replyPID)

	var assigned *bollywood.PID
	select {
	case msg := <-recorder.received:
		resp := msg.(AssignMatchResponse)
		require.NotNil(t, resp.MatchPID)
		assigned = resp.MatchPID
	case <-time.After(askTestTimeout):
		t.Fatal("manager never replied")
	}

	engine.Send(managerPID, MatchEmpty{MatchPID: assigned}, nil)

	assert.Eventually(t, func() bool {
		reply, err := engine.Ask(managerPID, GetMatchListRequest{}, askTestTimeout)
		if err != nil {
			return false
		}
		list, ok := reply.(MatchListResponse)
		return ok && len(list.Matches) == 0
	}, askTestTimeout, 10*time.Millisecond, "empty match was never removed")
}
