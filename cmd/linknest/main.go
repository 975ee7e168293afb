package main

import (
	"log"

	"github.com/linknest/linknest/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ linknest failed to start: %v", err)
	}
}
