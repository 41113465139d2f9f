package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Worker refreshes the catalogue in the background so draft pricing rarely
// waits on a fetch.
type Worker struct {
	catalog  *Catalog
	interval time.Duration
	stopCh   chan struct{}
}

// NewWorker creates a new catalogue worker.
func NewWorker(catalog *Catalog, interval time.Duration) *Worker {
	if interval == 0 {
		interval = 5 * time.Minute
	}
	return &Worker{
		catalog:  catalog,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background worker.
func (w *Worker) Start() {
	log.Info().Dur("interval", w.interval).Msg("Starting catalogue worker...")
	go w.loop()
}

// Stop stops the background worker.
func (w *Worker) Stop() {
	log.Info().Msg("Stopping catalogue worker...")
	close(w.stopCh)
}

func (w *Worker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run once immediately on startup
	w.refresh()

	for {
		select {
		case <-ticker.C:
			w.refresh()
		case <-w.stopCh:
			return
		}
	}
}

func (w *Worker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := w.catalog.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("Catalogue refresh failed")
		return
	}
	log.Debug().
		Int("equipment", len(w.catalog.EquipmentOffers())).
		Int("services", len(w.catalog.ServiceOffers())).
		Msg("Catalogue refreshed")
}
