// Command server runs the journal HTTP API.
//
// Configuration is read from the YAML file named by CONFIG_PATH (default
// ./config.yaml) with environment variable overrides.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"

	"github.com/akarpov/journal-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
