package application

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// SweepWorker periodically reclaims expired commitments so abandoned
// purchased credits flow back to their owners without player action.
type SweepWorker struct {
	app       *App
	batchSize int
}

// NewSweepWorker creates a new sweep worker
func NewSweepWorker(app *App, batchSize int) *SweepWorker {
	return &SweepWorker{
		app:       app,
		batchSize: batchSize,
	}
}

// Start begins the sweep loop and returns a cleanup function
func (w *SweepWorker) Start(ctx context.Context, interval time.Duration) func() {
	stopChan := make(chan struct{})

	go func() {
		log.Infof("Sweep worker started, running every %v", interval)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Sweep worker shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Sweep worker shutting down (stop requested)...")
				return
			case <-ticker.C:
				w.sweep(ctx)
			}
		}
	}()

	return func() {
		close(stopChan)
	}
}

func (w *SweepWorker) sweep(ctx context.Context) {
	removed, err := w.app.Sweep(ctx, w.batchSize)
	if err != nil {
		log.Errorf("Error sweeping expired commits: %v", err)
		return
	}
	if removed > 0 {
		log.WithFields(log.Fields{
			"removed": removed,
		}).Info("Swept expired commits")
	}
}
