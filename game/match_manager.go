// File: game/match_manager.go
package game

import (
	"fmt"
	"runtime/debug"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/volleygo/commentary"
	"github.com/lguibr/volleygo/utils"
)

// maxMatches limits the number of concurrent matches.
const maxMatches = 64

// MatchInfo holds information about an active match. ClientCount follows the
// match's MatchClientCount reports.
type MatchInfo struct {
	PID         *bollywood.PID
	ClientCount int
}

// MatchManagerActor spawns one MatchActor per playing connection and reaps
// matches that report themselves empty.
type MatchManagerActor struct {
	engine  *bollywood.Engine
	cfg     utils.Config
	gateway commentary.Gateway
	matches map[string]*MatchInfo
	selfPID *bollywood.PID
}

// NewMatchManagerProducer creates a producer for the MatchManagerActor.
func NewMatchManagerProducer(engine *bollywood.Engine, cfg utils.Config, gateway commentary.Gateway) bollywood.Producer {
	return func() bollywood.Actor {
		return &MatchManagerActor{
			engine:  engine,
			cfg:     cfg,
			gateway: gateway,
			matches: make(map[string]*MatchInfo),
		}
	}
}

// Receive handles messages for the MatchManagerActor.
func (a *MatchManagerActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			pidStr := "unknown"
			if a.selfPID != nil {
				pidStr = a.selfPID.String()
			}
			fmt.Printf("PANIC recovered in MatchManagerActor %s Receive: %v\nStack trace:\n%s\n", pidStr, r, string(debug.Stack()))
			if ctx.RequestID() != "" {
				ctx.Reply(fmt.Errorf("match manager panicked: %v", r))
			}
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		fmt.Printf("MatchManagerActor %s: Started.\n", a.selfPID)

	case FindMatchRequest:
		a.handleFindMatch(msg.ReplyTo)

	case MatchEmpty:
		a.handleMatchEmpty(msg.MatchPID)

	case MatchClientCount:
		a.handleClientCount(msg)

	case GetMatchListRequest:
		a.handleGetMatchList(ctx)

	case bollywood.Stopping:
		fmt.Printf("MatchManagerActor %s: Stopping. Shutting down all matches.\n", a.selfPID)
		pidsToStop := []*bollywood.PID{}
		for _, info := range a.matches {
			if info.PID != nil {
				pidsToStop = append(pidsToStop, info.PID)
			}
		}
		a.matches = make(map[string]*MatchInfo)
		for _, pid := range pidsToStop {
			a.engine.Stop(pid)
		}

	case bollywood.Stopped:

	default:
		fmt.Printf("MatchManagerActor %s: unknown message type: %T\n", a.selfPID, msg)
		if ctx.RequestID() != "" {
			ctx.Reply(fmt.Errorf("unknown message type: %T", msg))
		}
	}
}

// handleFindMatch spawns a fresh match for the connection. Each human player
// gets their own court against the scripted opponent.
func (a *MatchManagerActor) handleFindMatch(replyTo *bollywood.PID) {
	if replyTo == nil {
		return
	}

	if len(a.matches) >= maxMatches {
		fmt.Printf("MatchManagerActor %s: max matches (%d) reached. Rejecting request from %s.\n", a.selfPID, maxMatches, replyTo)
		a.engine.Send(replyTo, AssignMatchResponse{MatchPID: nil}, a.selfPID)
		return
	}

	matchProps := bollywood.NewProps(NewMatchActorProducer(a.engine, a.cfg, a.selfPID, a.gateway))
	matchPID := a.engine.Spawn(matchProps)
	if matchPID == nil {
		fmt.Printf("ERROR: MatchManagerActor %s: failed to spawn MatchActor. Replying nil to %s.\n", a.selfPID, replyTo)
		a.engine.Send(replyTo, AssignMatchResponse{MatchPID: nil}, a.selfPID)
		return
	}

	// Count starts at zero; the match reports connects and disconnects.
	a.matches[matchPID.String()] = &MatchInfo{PID: matchPID}
	a.engine.Send(replyTo, AssignMatchResponse{MatchPID: matchPID}, a.selfPID)
}

func (a *MatchManagerActor) handleClientCount(msg MatchClientCount) {
	if msg.MatchPID == nil {
		return
	}
	if info, exists := a.matches[msg.MatchPID.String()]; exists {
		info.ClientCount = msg.Count
	}
}

func (a *MatchManagerActor) handleMatchEmpty(matchPID *bollywood.PID) {
	if matchPID == nil {
		return
	}
	info, exists := a.matches[matchPID.String()]
	if !exists {
		return // already removed
	}
	fmt.Printf("MatchManagerActor %s: match %s reported empty. Removing and stopping.\n", a.selfPID, matchPID)
	delete(a.matches, matchPID.String())
	if info.PID != nil {
		a.engine.Stop(info.PID)
	}
}

// handleGetMatchList replies via Ask with the active match map.
func (a *MatchManagerActor) handleGetMatchList(ctx bollywood.Context) {
	matchList := make(map[string]int)
	for id, info := range a.matches {
		if info != nil {
			matchList[id] = info.ClientCount
		}
	}
	if ctx.RequestID() != "" {
		ctx.Reply(MatchListResponse{Matches: matchList})
	} else {
		fmt.Printf("WARN: MatchManagerActor %s received GetMatchListRequest not via Ask.\n", a.selfPID)
	}
}
