package server

import (
	"github.com/lguibr/bollywood"
)

// Server holds the actor engine and the MatchManager PID used by the HTTP
// and WebSocket handlers.
type Server struct {
	engine     *bollywood.Engine
	managerPID *bollywood.PID
}

// NewServer creates a server bound to an engine and match manager.
func NewServer(engine *bollywood.Engine, managerPID *bollywood.PID) *Server {
	return &Server{
		engine:     engine,
		managerPID: managerPID,
	}
}

// GetEngine returns the actor engine.
func (s *Server) GetEngine() *bollywood.Engine { return s.engine }

// GetManagerPID returns the MatchManager PID.
func (s *Server) GetManagerPID() *bollywood.PID { return s.managerPID }
