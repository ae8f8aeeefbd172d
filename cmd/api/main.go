package main

import (
	"log"

	"github.com/SAADSTACK/ergoassess/internal/bootstrap"
	"github.com/SAADSTACK/ergoassess/internal/shared/config"
	"github.com/SAADSTACK/ergoassess/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
