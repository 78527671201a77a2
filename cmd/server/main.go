package main

import (
	"log"

	"idms/internal/app/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
