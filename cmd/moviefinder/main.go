package main

import (
	"log"

	"moviefinder/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("moviefinder failed to start: %v", err)
	}
}
