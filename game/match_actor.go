// File: game/match_actor.go
package game

import (
	"encoding/json"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/volleygo/commentary"
	"github.com/lguibr/volleygo/utils"
	"golang.org/x/net/websocket"
)

// MatchActor owns one Simulation and coordinates its child actors. All
// entity mutation happens inside its message loop; the mailbox is the
// cooperative scheduler. The only asynchronous work is the commentary call,
// delegated to the CommentatorActor and never awaited.
type MatchActor struct {
	cfg        utils.Config
	sim        *Simulation
	engine     *bollywood.Engine
	gateway    commentary.Gateway
	managerPID *bollywood.PID
	selfPID    *bollywood.PID

	broadcasterPID *bollywood.PID
	commentatorPID *bollywood.PID

	input Input // latest sampled key state for the human player
	tick  uint64

	// Commentary display state: a monotonic sequence number is attached to
	// each request; the latest applied seq wins, stale results are dropped.
	nextSeq        uint64
	lastSeqApplied uint64
	lastRemark     *commentary.Remark
	pending        bool

	clients map[*websocket.Conn]bool

	ticker       *time.Ticker
	stopTickerCh chan struct{}
}

// NewMatchActorProducer creates a producer for the MatchActor.
func NewMatchActorProducer(engine *bollywood.Engine, cfg utils.Config, managerPID *bollywood.PID, gateway commentary.Gateway) bollywood.Producer {
	return func() bollywood.Actor {
		return &MatchActor{
			cfg:          cfg,
			sim:          NewSimulation(cfg),
			engine:       engine,
			gateway:      gateway,
			managerPID:   managerPID,
			clients:      make(map[*websocket.Conn]bool),
			stopTickerCh: make(chan struct{}),
		}
	}
}

// Receive is the main message handler for the MatchActor.
func (a *MatchActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			pidStr := "unknown"
			if a.selfPID != nil {
				pidStr = a.selfPID.String()
			}
			fmt.Printf("PANIC recovered in MatchActor %s Receive: %v\nStack trace:\n%s\n", pidStr, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch m := ctx.Message().(type) {
	case bollywood.Started:
		a.broadcasterPID = a.engine.Spawn(bollywood.NewProps(NewBroadcasterProducer()))
		a.commentatorPID = a.engine.Spawn(bollywood.NewProps(NewCommentatorProducer(a.gateway, a.selfPID, a.cfg.CommentaryTimeout)))
		a.ticker = time.NewTicker(a.cfg.SimTickPeriod)
		go a.runTickerLoop()

	case *MatchTick:
		a.handleTick()

	case StartMatch:
		a.sim.Start()

	case ForwardedInput:
		a.input = m.Keys

	case PlayerConnectRequest:
		if m.WsConn != nil {
			a.clients[m.WsConn] = true
			if a.broadcasterPID != nil {
				a.engine.Send(a.broadcasterPID, AddClient{Conn: m.WsConn}, a.selfPID)
			}
			a.reportClientCount()
		}

	case PlayerDisconnect:
		a.handleDisconnect(m.WsConn)

	case GetSnapshotRequest:
		if ctx.RequestID() != "" {
			ctx.Reply(a.buildSnapshot())
		}

	case CommentaryResult:
		a.handleCommentaryResult(m)

	case bollywood.Stopping:
		if a.ticker != nil {
			a.ticker.Stop()
			select {
			case <-a.stopTickerCh:
			default:
				close(a.stopTickerCh)
			}
		}
		if a.broadcasterPID != nil {
			a.engine.Stop(a.broadcasterPID)
		}
		if a.commentatorPID != nil {
			a.engine.Stop(a.commentatorPID)
		}

	case bollywood.Stopped:

	default:
		fmt.Printf("MatchActor %s: unknown message type: %T\n", a.selfPID, m)
	}
}

// handleTick advances the simulation one step and fans out the results. The
// snapshot is marshalled once here so N clients cost one encode per tick.
func (a *MatchActor) handleTick() {
	a.tick++

	event := a.sim.Step(a.input)
	if event != nil {
		a.dispatchCommentary(event)
	}

	if a.broadcasterPID == nil || len(a.clients) == 0 {
		return
	}
	payload, err := json.Marshal(a.buildSnapshot())
	if err != nil {
		fmt.Println("Error marshalling snapshot:", err)
		return
	}
	a.engine.Send(a.broadcasterPID, BroadcastSnapshotCommand{Payload: payload}, a.selfPID)
}

// dispatchCommentary fires a remark request for a scored point. The call is
// fire-and-forget relative to the simulation: the result re-enters the
// mailbox as CommentaryResult and only updates display state.
func (a *MatchActor) dispatchCommentary(event *PointEvent) {
	if a.commentatorPID == nil {
		return
	}
	a.nextSeq++
	a.pending = true
	a.engine.Send(a.commentatorPID, GenerateRemark{
		Seq:         a.nextSeq,
		PlayerScore: event.Score.Player,
		CpuScore:    event.Score.Cpu,
		Event:       event.Description,
	}, a.selfPID)
}

// handleCommentaryResult applies a remark latest-wins by sequence number.
func (a *MatchActor) handleCommentaryResult(m CommentaryResult) {
	if m.Seq < a.lastSeqApplied {
		return
	}
	a.lastSeqApplied = m.Seq
	remark := m.Remark
	a.lastRemark = &remark
	if m.Seq >= a.nextSeq {
		a.pending = false
	}
}

func (a *MatchActor) handleDisconnect(conn *websocket.Conn) {
	if conn == nil {
		return
	}
	delete(a.clients, conn)
	if a.broadcasterPID != nil {
		a.engine.Send(a.broadcasterPID, RemoveClient{Conn: conn}, a.selfPID)
	}
	a.reportClientCount()
	if len(a.clients) == 0 && a.managerPID != nil {
		a.engine.Send(a.managerPID, MatchEmpty{MatchPID: a.selfPID}, a.selfPID)
	}
}

// reportClientCount keeps the manager's match listing current.
func (a *MatchActor) reportClientCount() {
	if a.managerPID != nil {
		a.engine.Send(a.managerPID, MatchClientCount{MatchPID: a.selfPID, Count: len(a.clients)}, a.selfPID)
	}
}

// buildSnapshot copies the current state into a read-only view. Entities are
// copied by value so nothing downstream can reach live simulation state.
func (a *MatchActor) buildSnapshot() Snapshot {
	return Snapshot{
		MessageType:       "snapshot",
		Tick:              a.tick,
		Phase:             a.sim.Phase.String(),
		Score:             a.sim.Score,
		Server:            a.sim.Server.String(),
		Player:            *a.sim.Player,
		Opponent:          *a.sim.Opponent,
		Ball:              *a.sim.Ball,
		Court:             a.sim.Court(),
		Commentary:        a.lastRemark,
		CommentaryPending: a.pending,
	}
}

// runTickerLoop sends MatchTick messages to the actor's own mailbox at the
// configured simulation rate.
func (a *MatchActor) runTickerLoop() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in MatchActor ticker loop: %v\nStack trace:\n%s\n", r, string(debug.Stack()))
		}
	}()

	actorPID := a.selfPID
	if actorPID == nil {
		fmt.Println("ERROR: MatchActor ticker loop cannot start, self PID not set.")
		return
	}

	tickMsg := &MatchTick{}
	for {
		select {
		case <-a.stopTickerCh:
			return
		case _, ok := <-a.ticker.C:
			if !ok {
				return
			}
			select {
			case <-a.stopTickerCh:
				return
			default:
				a.engine.Send(actorPID, tickMsg, nil)
			}
		}
	}
}
