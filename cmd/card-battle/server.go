package main

import (
	"context"
	"time"

	"github.com/Hariz09/game-hub-sub001/internal/logging"
	"github.com/Hariz09/game-hub-sub001/internal/service"
)

// janitorInterval is how often idle sessions are scanned for.
const janitorInterval = time.Minute

// startJanitor evicts idle sessions in the background until ctx is done.
func startJanitor(ctx context.Context, m *service.Manager) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.Error("session janitor crashed", nil, logging.Fields{"panic": r})
			}
		}()
		m.RunJanitor(ctx, janitorInterval)
	}()
}
