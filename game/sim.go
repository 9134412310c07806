package game

import (
	"github.com/lguibr/volleygo/utils"
)

// Simulation owns all match state for the lifetime of a game: the three
// entities, the phase machine, the score and the serve assignment. Entities
// are mutated in place every tick and never shared outside the simulation
// boundary; callers read state through Snapshot copies. All mutation happens
// synchronously inside Step, one invocation per tick.
type Simulation struct {
	cfg   utils.Config
	court Court

	Player   *Body
	Opponent *Body
	Ball     *Ball

	Phase  Phase
	Score  Score
	Server Side

	// opponentIn is the policy decision computed at the end of the previous
	// tick; the controller feeds the NEXT tick's integration.
	opponentIn Input

	// pauseLeft is the explicit point-scored pause, counted in ticks and
	// checked every Step instead of a scheduled callback.
	pauseLeft int
}

// NewSimulation builds a match in the MENU phase with the left side serving
// first.
func NewSimulation(cfg utils.Config) *Simulation {
	return &Simulation{
		cfg:      cfg,
		court:    NewCourt(cfg),
		Player:   NewBody(cfg, SideLeft),
		Opponent: NewBody(cfg, SideRight),
		Ball:     NewBall(cfg),
		Phase:    PhaseMenu,
		Server:   SideLeft,
	}
}

// Court exposes the derived court geometry.
func (s *Simulation) Court() Court { return s.court }

// Start transitions MENU -> PLAYING and serves the first ball. A no-op in any
// other phase.
func (s *Simulation) Start() {
	if s.Phase != PhaseMenu {
		return
	}
	s.serve()
	s.Phase = PhasePlaying
}

// Step advances the match one tick with the given sampled key state:
// integrate, resolve collisions in fixed order, re-evaluate the opponent
// policy for the next tick, then run the scoring machine. Returns a non-nil
// PointEvent on the tick a point is scored.
func (s *Simulation) Step(in Input) *PointEvent {
	switch s.Phase {
	case PhaseMenu, PhaseGameOver:
		return nil
	case PhasePointScored:
		s.pauseLeft--
		if s.pauseLeft <= 0 {
			s.Phase = PhasePlaying
		}
		return nil
	}

	s.Player.Move(s.cfg, in)
	s.Opponent.Move(s.cfg, s.opponentIn)
	s.Ball.Move(s.cfg)

	s.resolve()

	s.opponentIn = OpponentIntent(s.cfg, s.Ball, s.Opponent)

	return s.checkScore()
}

// resolve enforces all boundary and pairwise constraints. The order is fixed:
// later resolutions may reintroduce earlier violations on the same tick, and
// that is the source behavior.
func (s *Simulation) resolve() {
	for _, body := range []*Body{s.Player, s.Opponent} {
		body.CollideFloor(s.court)
		body.CollideWalls(s.court)
		body.CollideNetBarrier(s.court)
	}

	s.Ball.CollideWalls(s.cfg, s.court)
	s.Ball.CollideCeiling(s.cfg)
	if !s.Ball.CollideNetPost(s.cfg, s.court) {
		s.Ball.CollideNetFace(s.cfg, s.court)
	}
	s.Ball.CollideBody(s.cfg, s.Player)
	s.Ball.CollideBody(s.cfg, s.Opponent)
}

// checkScore fires PLAYING -> POINT_SCORED when the ball reaches the floor.
// Winner attribution, score increment and serve reset happen atomically here;
// the loser serves next.
func (s *Simulation) checkScore() *PointEvent {
	if !s.Ball.OnFloor(s.court) {
		return nil
	}

	var winner Side
	var description string
	if s.court.SideOf(s.Ball.X) == SideLeft {
		winner = SideRight
		description = EventCpuPoint
		s.Score.Cpu++
	} else {
		winner = SideLeft
		description = EventPlayerPoint
		s.Score.Player++
	}

	if winner == SideLeft {
		s.Server = SideRight
	} else {
		s.Server = SideLeft
	}
	s.serve()

	s.Phase = PhasePointScored
	s.pauseLeft = int(s.cfg.PointPause / s.cfg.SimTickPeriod)
	if s.pauseLeft < 1 {
		s.pauseLeft = 1
	}

	return &PointEvent{Winner: winner, Score: s.Score, Description: description}
}

// serve reinitializes entity positions and velocities for the next rally
// without reallocating identities.
func (s *Simulation) serve() {
	s.Player.Rehome(s.cfg)
	s.Opponent.Rehome(s.cfg)
	s.Ball.Serve(s.cfg, s.Server)
	s.opponentIn = Input{}
}
