package main

import (
	"log"

	"github.com/officinaverde/blog-api/cmd/server"
)

func main() {
	app, err := server.NewApp()
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
