package main

import (
	"log"

	"github.com/sggtools/boapi/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("boapi failed to initialize: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("boapi failed to start: %v", err)
	}
}
