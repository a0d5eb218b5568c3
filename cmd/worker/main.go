package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/En0rm0s/Blockchain/internal/app/bootstrap"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring.
// 3) Run schedulers (outbox relay, session reaping) until interrupted.
func main() {
	log.Println("marketplace worker starting")
	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("bootstrap worker failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("worker shutdown close failed: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("marketplace worker stopped with error: %v", err)
	}
}
