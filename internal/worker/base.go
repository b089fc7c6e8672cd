package worker

import (
	"context"
	"sync"

	"github.com/osse101/InvestSim_Go/internal/logger"
)

// waitWithContext waits for wg or gives up when ctx ends
func waitWithContext(ctx context.Context, wg *sync.WaitGroup, name string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + name)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(name + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(name + " shutdown timeout, some jobs may still be running")
		return ctx.Err()
	}
}
