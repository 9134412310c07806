package main

import (
	"fmt"
	"net/http"

	"github.com/lguibr/bollywood"
	"github.com/lguibr/volleygo/commentary"
	"github.com/lguibr/volleygo/game"
	"github.com/lguibr/volleygo/server"
	"github.com/lguibr/volleygo/utils"
	"golang.org/x/net/websocket"
)

func main() {
	cfg := utils.DefaultConfig()
	engine := bollywood.NewEngine()
	gateway := commentary.NewClientFromEnv(cfg.CommentaryTimeout)

	managerProps := bollywood.NewProps(game.NewMatchManagerProducer(engine, cfg, gateway))
	managerPID := engine.Spawn(managerProps)
	if managerPID == nil {
		panic("failed to spawn match manager")
	}

	srv := server.NewServer(engine, managerPID)

	http.Handle("/subscribe", websocket.Handler(srv.HandleSubscribe()))
	http.HandleFunc("/matches", srv.HandleGetMatches())
	http.HandleFunc("/state", srv.HandleGetState())
	http.HandleFunc("/healthz", srv.HandleHealthz())

	fmt.Println("volleygo listening on :3001")
	panic(http.ListenAndServe(":3001", nil))
}
