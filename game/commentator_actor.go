// File: game/commentator_actor.go
package game

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/volleygo/commentary"
)

// CommentatorActor performs the gateway call for each scored point off the
// simulation's critical path. Requests are processed from its own mailbox, so
// a slow or dead gateway can delay commentary but never a tick. Replies are
// seq-tagged; the MatchActor decides which one to display.
type CommentatorActor struct {
	gateway  commentary.Gateway
	matchPID *bollywood.PID
	timeout  time.Duration
}

// NewCommentatorProducer creates a producer for the CommentatorActor.
func NewCommentatorProducer(gateway commentary.Gateway, matchPID *bollywood.PID, timeout time.Duration) bollywood.Producer {
	return func() bollywood.Actor {
		return &CommentatorActor{
			gateway:  gateway,
			matchPID: matchPID,
			timeout:  timeout,
		}
	}
}

// Receive handles messages for the CommentatorActor.
func (a *CommentatorActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in CommentatorActor Receive: %v\nStack trace:\n%s\n", r, string(debug.Stack()))
		}
	}()

	switch m := ctx.Message().(type) {
	case bollywood.Started:

	case GenerateRemark:
		remark := commentary.FallbackRemark()
		if a.gateway != nil {
			callCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
			remark = a.gateway.Remark(callCtx, m.PlayerScore, m.CpuScore, m.Event)
			cancel()
		}
		if a.matchPID != nil {
			ctx.Engine().Send(a.matchPID, CommentaryResult{Seq: m.Seq, Remark: remark}, ctx.Self())
		}

	case bollywood.Stopping:
	case bollywood.Stopped:

	default:
		fmt.Printf("CommentatorActor: unknown message type: %T\n", m)
	}
}
