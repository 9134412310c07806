// File: game/messages.go
package game

import (
	"github.com/lguibr/bollywood"
	"github.com/lguibr/volleygo/commentary"
	"golang.org/x/net/websocket"
)

// --- WebSocket Messages (Client <-> Server) ---

// ClientMessage is the single message shape read from a client: either an
// action ("start") or a held key-state sample.
type ClientMessage struct {
	Action string `json:"action,omitempty"`
	Left   bool   `json:"left"`
	Right  bool   `json:"right"`
	Jump   bool   `json:"jump"`
}

// Snapshot is the read-only view of the match broadcast to clients every
// tick. It carries no references into live simulation state.
type Snapshot struct {
	MessageType       string            `json:"messageType"` // "snapshot"
	Tick              uint64            `json:"tick"`
	Phase             string            `json:"phase"`
	Score             Score             `json:"score"`
	Server            string            `json:"server"`
	Player            Body              `json:"player"`
	Opponent          Body              `json:"opponent"`
	Ball              Ball              `json:"ball"`
	Court             Court             `json:"court"`
	Commentary        *commentary.Remark `json:"commentary,omitempty"`
	CommentaryPending bool              `json:"commentaryPending"`
}

// --- MatchManagerActor Messages ---

// FindMatchRequest asks the MatchManager to create or assign a match.
type FindMatchRequest struct {
	ReplyTo *bollywood.PID // PID of the requesting ConnectionHandlerActor
}

// AssignMatchResponse is the reply with the assigned MatchActor PID.
type AssignMatchResponse struct {
	MatchPID *bollywood.PID // nil if no match could be assigned
}

// MatchEmpty notifies the MatchManager that a match has no clients left.
type MatchEmpty struct {
	MatchPID *bollywood.PID
}

// MatchClientCount reports a match's current client total to the MatchManager.
type MatchClientCount struct {
	MatchPID *bollywood.PID
	Count    int
}

// GetMatchListRequest asks the MatchManager for active matches (via Ask).
type GetMatchListRequest struct{}

// MatchListResponse maps match PID strings to client counts.
type MatchListResponse struct {
	Matches map[string]int
}

// --- MatchActor Messages ---

// MatchTick signals the MatchActor to advance the simulation one step.
type MatchTick struct{}

// StartMatch triggers the MENU -> PLAYING transition (user start action).
type StartMatch struct{}

// PlayerConnectRequest attaches a WebSocket connection to the match.
type PlayerConnectRequest struct {
	WsConn *websocket.Conn
}

// PlayerDisconnect detaches a connection from the match.
type PlayerDisconnect struct {
	WsConn *websocket.Conn
}

// ForwardedInput carries a sampled key state from a connection handler.
type ForwardedInput struct {
	WsConn *websocket.Conn
	Keys   Input
}

// GetSnapshotRequest asks the MatchActor for the current Snapshot (via Ask).
type GetSnapshotRequest struct{}

// --- CommentatorActor Messages ---

// GenerateRemark asks the CommentatorActor for commentary on a scored point.
// Seq is a monotonic request number; the MatchActor applies results
// latest-wins, so overlapping in-flight requests are tolerated.
type GenerateRemark struct {
	Seq         uint64
	PlayerScore int
	CpuScore    int
	Event       string
}

// CommentaryResult is the CommentatorActor's reply. Always carries a usable
// remark: gateway failures already degraded to the fallback.
type CommentaryResult struct {
	Seq    uint64
	Remark commentary.Remark
}

// --- BroadcasterActor Messages ---

// AddClient tells the Broadcaster to start sending snapshots to a connection.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient tells the Broadcaster to stop sending to a connection.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastSnapshotCommand fans the tick's snapshot out to all clients. The
// payload is the snapshot marshalled once by the MatchActor.
type BroadcastSnapshotCommand struct {
	Payload []byte
}
