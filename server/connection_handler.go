// File: server/connection_handler.go
package server

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/volleygo/game"
	"golang.org/x/net/websocket"
)

// ConnectionHandlerActor manages a single WebSocket connection lifecycle:
// match assignment, the read loop, and disconnect signalling.
type ConnectionHandlerActor struct {
	conn       *websocket.Conn
	engine     *bollywood.Engine
	managerPID *bollywood.PID
	matchPID   *bollywood.PID
	selfPID    *bollywood.PID
	connAddr   string
	done       chan struct{} // closed when the handler is finished
	closeOnce  sync.Once
}

// ConnectionHandlerArgs holds arguments for creating the actor.
type ConnectionHandlerArgs struct {
	Conn       *websocket.Conn
	Engine     *bollywood.Engine
	ManagerPID *bollywood.PID
	Done       chan struct{}
}

// internalClientMessage wraps one decoded client message for the actor loop.
type internalClientMessage struct {
	Msg game.ClientMessage
}

// internalReadLoopDone signals that the socket read loop exited.
type internalReadLoopDone struct{}

// NewConnectionHandlerProducer creates a producer for ConnectionHandlerActor.
func NewConnectionHandlerProducer(args ConnectionHandlerArgs) bollywood.Producer {
	return func() bollywood.Actor {
		addr := "unknown"
		if args.Conn != nil {
			addr = args.Conn.RemoteAddr().String()
		}
		return &ConnectionHandlerActor{
			conn:       args.Conn,
			engine:     args.Engine,
			managerPID: args.ManagerPID,
			connAddr:   addr,
			done:       args.Done,
		}
	}
}

// Receive handles messages for the ConnectionHandlerActor.
func (a *ConnectionHandlerActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in ConnectionHandlerActor %s Receive: %v\nStack trace:\n%s\n", a.connAddr, r, string(debug.Stack()))
			a.finish(ctx)
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.engine.Send(a.managerPID, game.FindMatchRequest{ReplyTo: a.selfPID}, a.selfPID)

	case game.AssignMatchResponse:
		if msg.MatchPID == nil {
			fmt.Printf("ConnectionHandler %s: no match available, closing.\n", a.connAddr)
			a.finish(ctx)
			return
		}
		a.matchPID = msg.MatchPID
		a.engine.Send(a.matchPID, game.PlayerConnectRequest{WsConn: a.conn}, a.selfPID)
		go a.readLoop(ctx)

	case internalClientMessage:
		a.forward(msg.Msg)

	case internalReadLoopDone:
		a.finish(ctx)

	case bollywood.Stopping:
		a.finish(ctx)

	case bollywood.Stopped:

	default:
		fmt.Printf("ConnectionHandler %s: unknown message type: %T\n", a.connAddr, msg)
	}
}

// forward translates a client message into the match actor's protocol.
func (a *ConnectionHandlerActor) forward(msg game.ClientMessage) {
	if a.matchPID == nil {
		return
	}
	if msg.Action == "start" {
		a.engine.Send(a.matchPID, game.StartMatch{}, a.selfPID)
		return
	}
	a.engine.Send(a.matchPID, game.ForwardedInput{
		WsConn: a.conn,
		Keys:   game.Input{Left: msg.Left, Right: msg.Right, Jump: msg.Jump},
	}, a.selfPID)
}

// readLoop decodes client messages until the socket fails, then signals the
// actor. Runs on its own goroutine; all state changes go through the mailbox.
func (a *ConnectionHandlerActor) readLoop(ctx bollywood.Context) {
	defer a.engine.Send(a.selfPID, internalReadLoopDone{}, nil)

	for {
		var msg game.ClientMessage
		err := websocket.JSON.Receive(a.conn, &msg)
		if err != nil {
			isClosed := err == io.EOF ||
				strings.Contains(err.Error(), "use of closed network connection") ||
				strings.Contains(err.Error(), "closed")
			if !isClosed {
				fmt.Printf("ConnectionHandler %s: read error: %v\n", a.connAddr, err)
			}
			return
		}
		a.engine.Send(a.selfPID, internalClientMessage{Msg: msg}, nil)
	}
}

// finish detaches from the match, closes the socket, and releases the
// handler exactly once.
func (a *ConnectionHandlerActor) finish(ctx bollywood.Context) {
	a.closeOnce.Do(func() {
		if a.matchPID != nil {
			a.engine.Send(a.matchPID, game.PlayerDisconnect{WsConn: a.conn}, a.selfPID)
		}
		if a.conn != nil {
			_ = a.conn.Close()
		}
		if a.done != nil {
			close(a.done)
		}
	})
}
