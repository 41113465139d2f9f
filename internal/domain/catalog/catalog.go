// Package catalog keeps the latest fetched equipment and service offers used to price drafts.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/splus/splus-api/internal/domain/addon"
	"github.com/splus/splus-api/internal/domain/equipment"
	"github.com/splus/splus-api/internal/pkg/logger"
	"github.com/splus/splus-api/internal/pkg/store"
	"github.com/splus/splus-api/internal/pkg/studioapi"
	"github.com/splus/splus-api/internal/pricing"
)

const (
	fetchLimit = 100
	// maxPages bounds a refresh against a backend that ignores the page parameter.
	maxPages = 50
)

// Catalog holds one store slot per offer type.
type Catalog struct {
	equipmentRepo equipment.Repository
	addonRepo     addon.Repository
	equipment     *store.Slot[equipment.Equipment]
	services      *store.Slot[addon.Addon]
	maxAge        time.Duration

	mu          sync.Mutex
	refreshedAt time.Time
	attemptedAt time.Time
	now         func() time.Time
}

// New creates a catalogue. Offers older than maxAge are refetched on demand.
func New(equipmentRepo equipment.Repository, addonRepo addon.Repository, maxAge time.Duration) *Catalog {
	return &Catalog{
		equipmentRepo: equipmentRepo,
		addonRepo:     addonRepo,
		equipment:     store.NewSlot[equipment.Equipment](),
		services:      store.NewSlot[addon.Addon](),
		maxAge:        maxAge,
		now:           time.Now,
	}
}

// Refresh fetches every page of both offer lists and commits them unless a
// newer fetch already did.
func (c *Catalog) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.attemptedAt = c.now()
	c.mu.Unlock()

	eqSeq := c.equipment.Begin()
	eqItems, err := fetchAll(ctx, c.equipmentRepo.List)
	if err != nil {
		return fmt.Errorf("refresh equipment: %w", err)
	}
	if !c.equipment.Commit(eqSeq, eqItems) {
		logger.LogDebug(ctx, "Discarded stale equipment list", "seq", eqSeq)
	}

	svSeq := c.services.Begin()
	svItems, err := fetchAll(ctx, c.addonRepo.List)
	if err != nil {
		return fmt.Errorf("refresh services: %w", err)
	}
	if !c.services.Commit(svSeq, svItems) {
		logger.LogDebug(ctx, "Discarded stale service list", "seq", svSeq)
	}

	c.mu.Lock()
	c.refreshedAt = c.now()
	c.mu.Unlock()
	return nil
}

// fetchAll walks pages until the reported total is reached or a page comes back empty.
func fetchAll[T any](ctx context.Context, list func(context.Context, string, studioapi.ListQuery) (*studioapi.Page[T], error)) ([]T, error) {
	var items []T
	for page := 1; page <= maxPages; page++ {
		p, err := list(ctx, "", studioapi.ListQuery{Page: page, Limit: fetchLimit})
		if err != nil {
			return nil, err
		}
		items = append(items, p.Items...)
		if len(p.Items) == 0 || len(items) >= p.Total {
			break
		}
	}
	return items, nil
}

// EnsureFresh refreshes when nothing is loaded yet or the data is older than maxAge.
// After a failed attempt it waits maxAge before trying again; lines then price
// from their snapshots.
func (c *Catalog) EnsureFresh(ctx context.Context) {
	c.mu.Lock()
	now := c.now()
	age := now.Sub(c.refreshedAt)
	attempted := !c.attemptedAt.IsZero()
	sinceAttempt := now.Sub(c.attemptedAt)
	c.mu.Unlock()

	loaded := c.equipment.Loaded() && c.services.Loaded()
	if loaded && (c.maxAge <= 0 || age < c.maxAge) {
		return
	}
	if attempted && c.maxAge > 0 && sinceAttempt < c.maxAge {
		return
	}
	if err := c.Refresh(ctx); err != nil {
		logger.LogWarn(ctx, "Catalogue refresh failed, using snapshots", "error", err.Error())
	}
}

// Equipment returns the cached equipment record.
func (c *Catalog) Equipment(id string) (equipment.Equipment, bool) {
	return c.equipment.Get(id)
}

// Service returns the cached service record.
func (c *Catalog) Service(id string) (addon.Addon, bool) {
	return c.services.Get(id)
}

// EquipmentOffers lists the cached equipment offers.
func (c *Catalog) EquipmentOffers() []pricing.EquipmentOffer {
	items := c.equipment.Items()
	out := make([]pricing.EquipmentOffer, 0, len(items))
	for _, e := range items {
		out = append(out, e.Offer())
	}
	return out
}

// ServiceOffers lists the cached service offers.
func (c *Catalog) ServiceOffers() []pricing.ServiceOffer {
	items := c.services.Items()
	out := make([]pricing.ServiceOffer, 0, len(items))
	for _, a := range items {
		out = append(out, a.Offer())
	}
	return out
}

// Lookup resolves the live price of a line's offer.
func (c *Catalog) Lookup(kind pricing.LineKind, refID string) (float64, bool) {
	switch kind {
	case pricing.KindEquipment:
		if e, ok := c.equipment.Get(refID); ok {
			return e.PricePerHour, true
		}
	case pricing.KindService:
		if a, ok := c.services.Get(refID); ok {
			return a.PricePerUse, true
		}
	}
	return 0, false
}

// UpsertEquipment implements equipment.Cache.
func (c *Catalog) UpsertEquipment(e equipment.Equipment) { c.equipment.Upsert(e) }

// RemoveEquipment implements equipment.Cache.
func (c *Catalog) RemoveEquipment(id string) { c.equipment.Remove(id) }

// UpsertService implements addon.Cache.
func (c *Catalog) UpsertService(a addon.Addon) { c.services.Upsert(a) }

// RemoveService implements addon.Cache.
func (c *Catalog) RemoveService(id string) { c.services.Remove(id) }
