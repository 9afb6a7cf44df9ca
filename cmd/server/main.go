// Command server runs the LINE webhook, the quiz trigger and the health
// probes.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/vocab-line-bot/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
