package game

// Phase is the match state machine. Exactly one phase holds at any instant.
// PhaseGameOver is representable but unreached: no win condition is wired.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePointScored
	PhaseGameOver
)

// String returns the phase name used in snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhasePlaying:
		return "PLAYING"
	case PhasePointScored:
		return "POINT_SCORED"
	case PhaseGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// Score is monotonically non-decreasing; each point increments exactly one
// counter by exactly 1. Reset only on a full game restart.
type Score struct {
	Player int `json:"player"`
	Cpu    int `json:"cpu"`
}

// Event descriptions sent to the commentary gateway, keyed by point winner.
const (
	EventPlayerPoint = "the player smashed one down on the cpu side"
	EventCpuPoint    = "the cpu put the ball away on the player side"
)

// PointEvent describes a scoring event: the winner, the already-updated
// score, and the fixed winner-keyed description for the commentary gateway.
type PointEvent struct {
	Winner      Side
	Score       Score
	Description string
}
