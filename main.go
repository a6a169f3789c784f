package main

import (
	"log"

	"github.com/francislhj094/pocket-worlds/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("Error starting app: %v", err)
	}
}
