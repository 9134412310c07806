// File: game/broadcaster_actor.go
package game

import (
	"fmt"
	"runtime/debug"

	"github.com/lguibr/bollywood"
	"golang.org/x/net/websocket"
)

// BroadcasterActor fans match snapshots out to subscribed clients so a slow
// socket never stalls the MatchActor's tick loop.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	selfPID *bollywood.PID
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]bool),
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			pidStr := "unknown"
			if a.selfPID != nil {
				pidStr = a.selfPID.String()
			}
			fmt.Printf("PANIC recovered in BroadcasterActor %s Receive: %v\nStack trace:\n%s\n", pidStr, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case AddClient:
		if msg.Conn != nil {
			a.clients[msg.Conn] = true
		}

	case RemoveClient:
		if msg.Conn != nil {
			delete(a.clients, msg.Conn)
		}

	case BroadcastSnapshotCommand:
		a.broadcast(msg.Payload)

	case bollywood.Stopping:
		for conn := range a.clients {
			_ = conn.Close()
		}
		a.clients = make(map[*websocket.Conn]bool)

	case bollywood.Stopped:

	default:
		fmt.Printf("BroadcasterActor %s: unknown message type: %T\n", a.selfPID, msg)
	}
}

// broadcast writes the pre-marshalled snapshot to every client, dropping
// connections that fail to write.
func (a *BroadcasterActor) broadcast(payload []byte) {
	frame := string(payload)
	var failed []*websocket.Conn
	for conn := range a.clients {
		if err := websocket.Message.Send(conn, frame); err != nil {
			failed = append(failed, conn)
		}
	}
	for _, conn := range failed {
		delete(a.clients, conn)
		_ = conn.Close()
	}
}
