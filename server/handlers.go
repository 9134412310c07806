// File: server/handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/volleygo/game"
	"golang.org/x/net/websocket"
)

// askTimeout bounds actor queries issued from HTTP handlers.
const askTimeout = 250 * time.Millisecond

// HandleSubscribe sets up the WebSocket connection and hands it to a
// ConnectionHandlerActor. The handler function blocks until the connection
// is finished, keeping the socket alive.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.RemoteAddr().String()

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s\n", connectionAddr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		if s.engine == nil || s.managerPID == nil {
			fmt.Printf("HandleSubscribe: engine or manager missing, closing %s.\n", connectionAddr)
			return
		}

		done := make(chan struct{})
		props := bollywood.NewProps(NewConnectionHandlerProducer(ConnectionHandlerArgs{
			Conn:       ws,
			Engine:     s.engine,
			ManagerPID: s.managerPID,
			Done:       done,
		}))
		handlerPID := s.engine.Spawn(props)
		if handlerPID == nil {
			fmt.Printf("HandleSubscribe: failed to spawn handler for %s.\n", connectionAddr)
			return
		}

		<-done
		s.engine.Stop(handlerPID)
	}
}

// HandleGetMatches lists active matches and their client counts.
func (s *Server) HandleGetMatches() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		reply, err := s.engine.Ask(s.managerPID, game.GetMatchListRequest{}, askTimeout)
		if err != nil {
			http.Error(w, "match manager unavailable", http.StatusServiceUnavailable)
			return
		}
		list, ok := reply.(game.MatchListResponse)
		if !ok {
			http.Error(w, "unexpected reply from match manager", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(list.Matches); err != nil {
			fmt.Println("Error writing match list:", err)
		}
	}
}

// HandleGetState serves a match snapshot by PID: GET /state?match=<pid>.
func (s *Server) HandleGetState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("match")
		if matchID == "" {
			http.Error(w, "missing match query parameter", http.StatusBadRequest)
			return
		}

		reply, err := s.engine.Ask(&bollywood.PID{ID: matchID}, game.GetSnapshotRequest{}, askTimeout)
		if err != nil {
			http.Error(w, "match not found", http.StatusNotFound)
			return
		}
		snapshot, ok := reply.(game.Snapshot)
		if !ok {
			http.Error(w, "unexpected reply from match", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			fmt.Println("Error writing snapshot:", err)
		}
	}
}

// HandleHealthz is a liveness probe.
func (s *Server) HandleHealthz() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
